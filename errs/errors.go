// Package errs defines the sentinel errors returned by lzstring.
//
// Errors are wrapped with context using fmt.Errorf("%w: ...") at the point of
// failure. Match them with errors.Is:
//
//	text, err := lzstring.DecompressFromBase64(input)
//	if errors.Is(err, errs.ErrInvalidEncoding) {
//	    // input was not produced by CompressToBase64
//	}
package errs

import "errors"

// Stream errors.
var (
	// ErrCorruptStream is returned when a compressed code-unit stream is malformed:
	// a code references a dictionary entry that does not exist, the stream ends
	// before the end-of-stream marker, or the stream is empty.
	ErrCorruptStream = errors.New("corrupt compressed stream")

	// ErrInvalidCharacterWidth is returned when a literal escape carries a character
	// value outside the range addressable by its width marker.
	ErrInvalidCharacterWidth = errors.New("invalid literal character width")
)

// Adapter errors.
var (
	// ErrInvalidEncoding is returned when the input of an adapter contains a character
	// outside the adapter's alphabet, or when decompressed code units do not form
	// well-formed UTF-16 text.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrInvalidFormat is returned when an unknown format or compression type is requested.
	ErrInvalidFormat = errors.New("invalid format")
)
