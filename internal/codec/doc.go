// Package codec implements the adaptive dictionary coder behind lzstring.
//
// The coder is an LZ78-family scheme. During a single forward pass both sides build
// the same implicit dictionary of substrings, give every new entry the next integer
// identifier and exchange codes whose width grows with the dictionary.
//
// # Stream Layout
//
// Three identifiers are reserved:
//
//	0  literal escape, followed by an 8-bit character value
//	1  literal escape, followed by a 16-bit character value
//	2  end of stream
//
// Dictionary identifiers start at 3. Codes and literal payloads are written least
// significant bit first, the convention shared by every lz-string implementation, and
// the resulting bit sequence is packed most significant bit first into units of a
// caller-chosen width (see package bitstream).
//
// # Code Width
//
// The width starts at 2 bits and grows by one each time a countdown of pending
// dictionary insertions reaches zero; the countdown is then reset to the number of
// identifiers the old width could address. A code is always written with the width
// in effect before the insertion it triggers, and the decoder applies the same
// countdown one step behind, so both sides switch widths at the same code.
//
// # Concurrency
//
// All state lives in a context value created per call. Compress and Decompress may
// run concurrently from any number of goroutines.
package codec
