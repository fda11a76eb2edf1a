package bitstream

import (
	"errors"
	"fmt"
)

// ErrExhausted is returned by Reader.ReadBits when fewer bits remain than requested.
//
// It is distinct from reading zero-valued padding: padding bits inside the last unit
// are readable, exhaustion means the unit sequence itself ran out.
var ErrExhausted = errors.New("bitstream: not enough bits remaining")

// Reader pulls values of arbitrary width out of a sequence of fixed-width units.
//
// Only the low unitBits bits of every unit are used. A Reader is not safe for
// concurrent use.
//
// The reader does not take the writer's padding count: padding bits of the last
// unit read as zeros, and the caller's own end-of-stream code tells it where to stop.
// The padding count is not transmitted by any of the text or byte formats.
type Reader struct {
	units    []uint16
	pos      int // index of the next unit to load
	acc      uint64
	accBits  int
	unitBits int
	unitMask uint64
}

// NewReader creates a reader over units of unitBits bits each.
//
// It panics if unitBits is outside [1, MaxUnitBits].
func NewReader(units []uint16, unitBits int) *Reader {
	if unitBits < 1 || unitBits > MaxUnitBits {
		panic(fmt.Sprintf("bitstream: invalid unit width %d", unitBits))
	}

	return &Reader{
		units:    units,
		unitBits: unitBits,
		unitMask: lowMask(unitBits),
	}
}

// ReadBits reads the next width bits, most significant bit first.
//
// Units are loaded lazily, only when the accumulator cannot satisfy the request.
// When the units run out it returns ErrExhausted and consumes nothing further.
func (r *Reader) ReadBits(width int) (uint32, error) {
	if width <= 0 {
		return 0, nil
	}
	if width > MaxValueBits {
		panic(fmt.Sprintf("bitstream: invalid value width %d", width))
	}

	for r.accBits < width {
		if r.pos >= len(r.units) {
			return 0, fmt.Errorf("%w: need %d bits, have %d", ErrExhausted, width, r.accBits)
		}
		r.acc = r.acc<<r.unitBits | uint64(r.units[r.pos])&r.unitMask
		r.accBits += r.unitBits
		r.pos++
	}

	r.accBits -= width
	value := uint32(r.acc >> r.accBits & lowMask(width)) //nolint:gosec // G115: masked to width <= 32 bits
	r.acc &= lowMask(r.accBits)

	return value, nil
}

// Remaining returns the number of bits that can still be read.
func (r *Reader) Remaining() int {
	return r.accBits + (len(r.units)-r.pos)*r.unitBits
}
