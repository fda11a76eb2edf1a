package compress

import (
	"fmt"
	"time"

	"github.com/arloliu/lzstring/format"
	"github.com/arloliu/lzstring/internal/hash"
)

// CompressionStats describes one compress/decompress round trip of a payload.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// Ratio is CompressedSize / OriginalSize (< 1.0 for effective compression)
	Ratio float64

	CompressionTimeNs   int64
	DecompressionTimeNs int64

	// Checksum is the xxHash64 of the payload, verified after decompression
	Checksum uint64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage. It is negative when the
// codec expands the payload, as the text formats of lz-string do on short input.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

func (s CompressionStats) String() string {
	return fmt.Sprintf("%s: %d -> %d bytes (%.1f%% saved, compress %s, decompress %s)",
		s.Algorithm, s.OriginalSize, s.CompressedSize, s.SpaceSavings(),
		time.Duration(s.CompressionTimeNs), time.Duration(s.DecompressionTimeNs))
}

// Measure compresses data with codec, decompresses the result and reports sizes and
// timings.
//
// The decompressed payload is verified against the original with xxHash64; a
// mismatch is returned as an error, as is any codec error.
//
// Parameters:
//   - codec: Codec under test
//   - algorithm: Label stored in the stats
//   - data: Payload to compress
func Measure(codec Codec, algorithm format.CompressionType, data []byte) (CompressionStats, error) {
	stats := CompressionStats{
		Algorithm:    algorithm,
		OriginalSize: int64(len(data)),
		Checksum:     hash.Bytes(data),
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	stats.CompressionTimeNs = time.Since(start).Nanoseconds()
	if err != nil {
		return stats, fmt.Errorf("%s compress: %w", algorithm, err)
	}
	stats.CompressedSize = int64(len(compressed))

	start = time.Now()
	restored, err := codec.Decompress(compressed)
	stats.DecompressionTimeNs = time.Since(start).Nanoseconds()
	if err != nil {
		return stats, fmt.Errorf("%s decompress: %w", algorithm, err)
	}

	if len(restored) != len(data) || hash.Bytes(restored) != stats.Checksum {
		return stats, fmt.Errorf("%s round trip mismatch: %d bytes in, %d bytes out", algorithm, len(data), len(restored))
	}
	stats.Ratio = stats.CompressionRatio()

	return stats, nil
}
