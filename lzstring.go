// Package lzstring compresses Unicode text into compact strings that survive
// restricted channels: browser local storage, URI query strings, cookies and other
// transports that cannot carry arbitrary binary data.
//
// The compressor is an adaptive LZ78-family dictionary coder. Its output is a stream
// of 16-bit code units which is then re-expressed in one of several alphabets. The
// output of every function is bit-compatible with the lz-string JavaScript library
// and its ports, so data can be exchanged with browser code.
//
// # Formats
//
//	Function pair                                  Output
//	Compress / Decompress                          []uint16, raw code units
//	CompressToUTF16 / DecompressFromUTF16          text in U+0020..U+801F, surrogate free
//	CompressToEncodedURIComponent / ...FromEncoded  A-Z a-z 0-9 + -
//	CompressToBase64 / DecompressFromBase64        standard Base64 alphabet with '=' padding
//	CompressToUint8Array / DecompressFromUint8Array  []byte, two bytes per code unit
//
// # Basic Usage
//
//	encoded := lzstring.CompressToEncodedURIComponent(state)
//	url := "https://example.com/#" + encoded
//
//	state, err := lzstring.DecompressFromEncodedURIComponent(encoded)
//	if err != nil {
//	    return err
//	}
//
// # Text Model
//
// Input text is processed as UTF-16 code units, the unit lz-string was defined on.
// Characters outside the Basic Multilingual Plane therefore occupy two units. Invalid
// UTF-8 in an input string is compressed as U+FFFD. CompressUnits and
// DecompressUnits work on raw code units and accept unpaired surrogates.
//
// # Errors
//
// Compression cannot fail. Decompression returns, wrapped with context:
//   - errs.ErrInvalidEncoding when the input has characters outside the format's
//     alphabet or the decoded units are not well-formed UTF-16
//   - errs.ErrCorruptStream when the stream is empty, truncated, or inconsistent
//   - errs.ErrInvalidCharacterWidth when a literal has a non-canonical width
//
// No partial result is ever returned with an error.
//
// # Concurrency
//
// Every call owns its dictionary and bit state. All functions are safe for
// concurrent use.
package lzstring

import (
	"github.com/arloliu/lzstring/encoding"
	"github.com/arloliu/lzstring/internal/codec"
	"github.com/arloliu/lzstring/internal/pool"
)

// rawUnitBits is the unit width of the raw and byte-array formats.
const rawUnitBits = 16

// Compress compresses text into raw 16-bit code units.
//
// The result is the canonical form the other formats are derived from. It may
// contain any 16-bit value, surrogates included, so it is not valid text by itself.
func Compress(text string) []uint16 {
	return compressText(text, rawUnitBits)
}

// CompressUnits compresses a sequence of UTF-16 code units into raw 16-bit code units.
//
// Unlike Compress it accepts unpaired surrogates, matching the behavior of
// lz-string on arbitrary JavaScript strings.
func CompressUnits(units []uint16) []uint16 {
	return codec.Compress(units, rawUnitBits)
}

// Decompress restores the text compressed by Compress.
//
// Returns:
//   - string: The original text
//   - error: errs.ErrCorruptStream or errs.ErrInvalidCharacterWidth for a damaged
//     stream, errs.ErrInvalidEncoding if the decoded units are not valid UTF-16
func Decompress(compressed []uint16) (string, error) {
	return decompressText(compressed, rawUnitBits)
}

// DecompressUnits restores the code units compressed by Compress or CompressUnits
// without validating them as text.
func DecompressUnits(compressed []uint16) ([]uint16, error) {
	out, err := codec.Decompress(nil, compressed, rawUnitBits)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []uint16{}
	}

	return out, nil
}

// CompressToUTF16 compresses text into a string of code points between U+0020 and
// U+801F. The result never contains surrogates or control characters, so it can be
// stored wherever arbitrary Unicode text is accepted, such as browser local storage.
func CompressToUTF16(text string) string {
	return encoding.UTF16().Encode(compressText(text, encoding.UTF16().UnitBits()))
}

// DecompressFromUTF16 restores the text compressed by CompressToUTF16.
func DecompressFromUTF16(compressed string) (string, error) {
	return decompressScheme(encoding.UTF16(), compressed)
}

// CompressToEncodedURIComponent compresses text into characters that need no
// percent-encoding inside a URI component.
func CompressToEncodedURIComponent(text string) string {
	return encoding.URIComponent().Encode(compressText(text, encoding.URIComponent().UnitBits()))
}

// DecompressFromEncodedURIComponent restores the text compressed by
// CompressToEncodedURIComponent. Spaces are read as '+', so input that went
// through form decoding is accepted.
func DecompressFromEncodedURIComponent(compressed string) (string, error) {
	return decompressScheme(encoding.URIComponent(), compressed)
}

// CompressToBase64 compresses text into standard Base64 characters, padded with '='
// to a multiple of four.
func CompressToBase64(text string) string {
	return encoding.Base64().Encode(compressText(text, encoding.Base64().UnitBits()))
}

// DecompressFromBase64 restores the text compressed by CompressToBase64.
//
// The input is not standard Base64 of a byte string; only output of CompressToBase64
// (or another lz-string implementation) can be decompressed.
func DecompressFromBase64(compressed string) (string, error) {
	return decompressScheme(encoding.Base64(), compressed)
}

// CompressToUint8Array compresses text into bytes, two per code unit, high byte first.
func CompressToUint8Array(text string) []byte {
	return encoding.PackBytes(compressText(text, encoding.ByteUnitBits))
}

// DecompressFromUint8Array restores the text compressed by CompressToUint8Array.
//
// An odd trailing byte is read as the high byte of a final code unit.
func DecompressFromUint8Array(compressed []byte) (string, error) {
	buf := pool.GetUnitBuffer()
	defer pool.PutUnitBuffer(buf)

	buf.U = encoding.UnpackBytes(buf.U, compressed)

	return decompressText(buf.U, encoding.ByteUnitBits)
}

func compressText(text string, unitBits int) []uint16 {
	buf := pool.GetUnitBuffer()
	defer pool.PutUnitBuffer(buf)

	buf.U = appendUTF16(buf.U, text)

	return codec.Compress(buf.U, unitBits)
}

func decompressScheme(scheme *encoding.TextScheme, compressed string) (string, error) {
	buf := pool.GetUnitBuffer()
	defer pool.PutUnitBuffer(buf)

	units, err := scheme.Decode(buf.U, compressed)
	if err != nil {
		return "", err
	}
	buf.U = units

	return decompressText(units, scheme.UnitBits())
}

func decompressText(compressed []uint16, unitBits int) (string, error) {
	buf := pool.GetUnitBuffer()
	defer pool.PutUnitBuffer(buf)

	out, err := codec.Decompress(buf.U, compressed, unitBits)
	if err != nil {
		return "", err
	}
	buf.U = out

	return utf16String(out)
}
