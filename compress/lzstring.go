package compress

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/lzstring"
	"github.com/arloliu/lzstring/endian"
	"github.com/arloliu/lzstring/errs"
	"github.com/arloliu/lzstring/format"
	"github.com/arloliu/lzstring/internal/options"
)

// rawOrder is the byte order of FormatRaw payloads.
var rawOrder = endian.GetLittleEndianEngine()

// LZStringConfig holds the configuration of an LZStringCodec.
type LZStringConfig struct {
	// Format selects the compressed representation. Default: format.FormatBytes.
	Format format.Format
	// StrictUTF8 rejects input that is not valid UTF-8 instead of compressing
	// invalid bytes as U+FFFD. Default: false.
	StrictUTF8 bool
}

// LZStringOption configures an LZStringCodec.
type LZStringOption = options.Option[*LZStringConfig]

// WithFormat selects the compressed representation.
//
// Returns errs.ErrInvalidFormat from NewLZStringCodec for an unknown format.
func WithFormat(f format.Format) LZStringOption {
	return options.New(func(cfg *LZStringConfig) error {
		if !f.IsValid() {
			return fmt.Errorf("%w: lz-string format %d", errs.ErrInvalidFormat, f)
		}
		cfg.Format = f

		return nil
	})
}

// WithStrictUTF8 controls whether invalid UTF-8 input is rejected.
func WithStrictUTF8(strict bool) LZStringOption {
	return options.NoError(func(cfg *LZStringConfig) {
		cfg.StrictUTF8 = strict
	})
}

// LZStringCodec exposes lz-string compression as a byte codec.
//
// The payload is treated as UTF-8 text. The compressed bytes are, by format:
//   - FormatRaw: the code units as little-endian byte pairs
//   - FormatUTF16, FormatURIComponent, FormatBase64: the UTF-8 bytes of the
//     compressed string
//   - FormatBytes: the code units as big-endian byte pairs, as CompressToUint8Array
//
// Unlike the general-purpose codecs an empty payload still produces a stream, so
// Decompress of empty data is an error.
type LZStringCodec struct {
	cfg LZStringConfig
}

var _ Codec = (*LZStringCodec)(nil)

// NewLZStringCodec creates an lz-string codec.
//
// Example:
//
//	codec, err := compress.NewLZStringCodec(compress.WithFormat(format.FormatBase64))
//	if err != nil {
//	    return err
//	}
//	cookie, err := codec.Compress(session)
func NewLZStringCodec(opts ...LZStringOption) (LZStringCodec, error) {
	cfg := LZStringConfig{Format: format.FormatBytes}
	if err := options.Apply(&cfg, opts...); err != nil {
		return LZStringCodec{}, err
	}

	return LZStringCodec{cfg: cfg}, nil
}

func mustLZStringCodec() LZStringCodec {
	c, err := NewLZStringCodec()
	if err != nil {
		panic(err)
	}

	return c
}

// Config returns the codec configuration.
func (c LZStringCodec) Config() LZStringConfig {
	return c.cfg
}

// Compress compresses data as UTF-8 text in the configured format.
func (c LZStringCodec) Compress(data []byte) ([]byte, error) {
	if c.cfg.StrictUTF8 && !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: payload is not valid UTF-8", errs.ErrInvalidEncoding)
	}
	text := string(data)

	switch c.cfg.Format {
	case format.FormatRaw:
		units := lzstring.Compress(text)
		out := make([]byte, 0, 2*len(units))
		for _, u := range units {
			out = rawOrder.AppendUint16(out, u)
		}

		return out, nil
	case format.FormatUTF16:
		return []byte(lzstring.CompressToUTF16(text)), nil
	case format.FormatURIComponent:
		return []byte(lzstring.CompressToEncodedURIComponent(text)), nil
	case format.FormatBase64:
		return []byte(lzstring.CompressToBase64(text)), nil
	case format.FormatBytes:
		return lzstring.CompressToUint8Array(text), nil
	default:
		return nil, fmt.Errorf("%w: lz-string format %s", errs.ErrInvalidFormat, c.cfg.Format)
	}
}

// Decompress restores a payload produced by Compress with the same format.
func (c LZStringCodec) Decompress(data []byte) ([]byte, error) {
	var (
		text string
		err  error
	)

	switch c.cfg.Format {
	case format.FormatRaw:
		if len(data)%2 != 0 {
			return nil, fmt.Errorf("%w: raw lz-string payload has odd length %d", errs.ErrInvalidEncoding, len(data))
		}
		units := make([]uint16, len(data)/2)
		for i := range units {
			units[i] = rawOrder.Uint16(data[2*i:])
		}
		text, err = lzstring.Decompress(units)
	case format.FormatUTF16:
		text, err = decompressString(lzstring.DecompressFromUTF16, data)
	case format.FormatURIComponent:
		text, err = decompressString(lzstring.DecompressFromEncodedURIComponent, data)
	case format.FormatBase64:
		text, err = decompressString(lzstring.DecompressFromBase64, data)
	case format.FormatBytes:
		text, err = lzstring.DecompressFromUint8Array(data)
	default:
		return nil, fmt.Errorf("%w: lz-string format %s", errs.ErrInvalidFormat, c.cfg.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("lz-string %s decompression failed: %w", c.cfg.Format, err)
	}

	return []byte(text), nil
}

func decompressString(fn func(string) (string, error), data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: compressed text is not valid UTF-8", errs.ErrInvalidEncoding)
	}

	return fn(string(data))
}
