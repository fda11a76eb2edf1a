// Package bitstream packs variable-width values into fixed-width units and reads them back.
//
// Both directions are most-significant-bit first: the first bit written becomes the
// highest bit of the first unit. Unit widths from 1 to 16 bits are supported, which
// covers the 6-bit text alphabets, the 15-bit UTF-16 alphabet and raw 16-bit code units.
//
// The package knows nothing about what the values mean. Callers that need a different
// bit order inside a value (the dictionary codec writes codes least-significant bit
// first) reverse the value before writing it.
package bitstream
