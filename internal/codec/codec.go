package codec

import "math/bits"

// Reserved codes.
const (
	codeNewChar8    uint32 = 0
	codeNewChar16   uint32 = 1
	codeEndOfStream uint32 = 2

	// firstEntryID is the identifier given to the first dictionary entry.
	firstEntryID uint32 = 3
)

const (
	initialNumBits   = 2
	initialEnlargeIn = 2
)

// bitWidth is the bit-width register shared by both directions.
//
// enlargeIn counts the dictionary insertions left before numBits has to grow. When it
// reaches zero numBits is incremented and the countdown restarts at 2^(old numBits).
type bitWidth struct {
	numBits   int
	enlargeIn uint64
}

func newBitWidth() bitWidth {
	return bitWidth{numBits: initialNumBits, enlargeIn: initialEnlargeIn}
}

// consume accounts for one dictionary insertion.
func (b *bitWidth) consume() {
	b.enlargeIn--
	if b.enlargeIn == 0 {
		b.enlargeIn = 1 << b.numBits
		b.numBits++
	}
}

// reverse mirrors the low width bits of v.
func reverse(v uint32, width int) uint32 {
	return bits.Reverse32(v) >> (32 - width)
}
