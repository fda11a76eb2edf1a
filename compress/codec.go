package compress

import (
	"fmt"

	"github.com/arloliu/lzstring/errs"
	"github.com/arloliu/lzstring/format"
)

// Compressor compresses a payload.
//
// Memory management:
//   - The input slice is not modified
//   - The returned slice is owned by the caller unless the implementation documents
//     otherwise (NoOpCompressor returns its input)
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// It returns an error if the data is corrupted or was produced by a different
// algorithm. No partial output is returned with an error.
//
// Example:
//
//	codec, _ := compress.GetCodec(format.CompressionLZString)
//	payload, err := codec.Decompress(stored)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
//
// Every Codec in this package is stateless or pools its state, and is safe for
// concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a Codec for the specified compression type.
//
// The LZString codec is created with its default configuration; use
// NewLZStringCodec to choose a format.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, LZ4 or LZString)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: errs.ErrInvalidFormat for an unknown compression type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionLZString:
		return NewLZStringCodec()
	default:
		return nil, fmt.Errorf("%w: invalid %s compression: %s", errs.ErrInvalidFormat, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:     NewNoOpCompressor(),
	format.CompressionZstd:     NewZstdCompressor(),
	format.CompressionS2:       NewS2Compressor(),
	format.CompressionLZ4:      NewLZ4Compressor(),
	format.CompressionLZString: mustLZStringCodec(),
}

// GetCodec retrieves the shared built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: unsupported compression type: %s", errs.ErrInvalidFormat, compressionType)
}

// BuiltinTypes returns the compression types GetCodec supports, in ascending order.
func BuiltinTypes() []format.CompressionType {
	return []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
		format.CompressionLZString,
	}
}
