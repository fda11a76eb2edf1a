// Package compress provides byte codecs for payloads, lz-string among them.
//
// lz-string trades compression ratio for output that survives text-only channels.
// This package puts it behind the same interface as general-purpose compressors, so
// a service can pick a codec per channel and compare them on its own data:
//
//	type Codec interface {
//	    Compress(data []byte) ([]byte, error)
//	    Decompress(data []byte) ([]byte, error)
//	}
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): pass-through baseline
//   - Zstd (format.CompressionZstd): best ratio; klauspost/compress by default,
//     libzstd through valyala/gozstd when built with cgo and the gozstd tag
//   - S2 (format.CompressionS2): fast, moderate ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression, block format
//   - LZString (format.CompressionLZString): lz-string in any format.Format
//
// # LZString
//
// The payload is taken as UTF-8 text and compressed with the lzstring package:
//
//	codec, err := compress.NewLZStringCodec(
//	    compress.WithFormat(format.FormatURIComponent),
//	    compress.WithStrictUTF8(true),
//	)
//	fragment, err := codec.Compress(state)
//
// The text formats return the UTF-8 bytes of the compressed string. FormatBytes is
// the most compact and matches CompressToUint8Array.
//
// # Comparing Codecs
//
// Measure runs one round trip and verifies it with xxHash64:
//
//	for _, t := range compress.BuiltinTypes() {
//	    codec, _ := compress.GetCodec(t)
//	    stats, err := compress.Measure(codec, t, payload)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(stats)
//	}
//
// # Thread Safety
//
// All codecs are safe for concurrent use. Zstd and LZ4 pool their encoder state.
//
// # Errors
//
// Factories return errs.ErrInvalidFormat for unknown compression types and formats.
// LZString errors wrap the sentinels of the errs package; the other codecs wrap the
// errors of their underlying library.
package compress
