// Package encoding maps compressed code-unit streams onto restricted alphabets.
//
// The dictionary codec produces a sequence of fixed-width code units. The adapters in
// this package re-express that sequence so it survives channels that cannot carry
// arbitrary binary data, and reverse the mapping on the way back.
//
// # Text Schemes
//
// The three text adapters are instances of a single parameterized component,
// TextScheme, which combines a unit width, an alphabet and a padding policy:
//
//	Scheme        Unit  Alphabet                          Padding
//	UTF16         15    U+0020 .. U+801F (unit + 32)      one trailing space
//	URIComponent   6    A-Z a-z 0-9 + -                   none
//	Base64         6    A-Z a-z 0-9 + /                   '=' to a multiple of 4
//
// The UTF-16 alphabet never reaches the surrogate range, so the output is valid text
// in any UTF-16 or UTF-8 container. The URI alphabet needs no percent-encoding in a
// query component; a '+' turned into a space by form decoding is accepted back,
// and '$', which older encoders list as a 65th symbol, decodes as zero.
//
// Decoding validates the whole input against the alphabet before returning any
// units, so the codec never sees a partially valid stream.
//
// # Byte Arrays
//
// PackBytes and UnpackBytes serialize 16-bit units as big-endian byte pairs. An odd
// trailing byte is read as the high byte of a final unit.
//
// All schemes use the constants of the reference lz-string implementations, so
// their output can be exchanged with those libraries.
package encoding
