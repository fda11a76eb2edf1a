package bitstream

import "fmt"

// MaxUnitBits is the widest unit a Writer or Reader can produce or consume.
const MaxUnitBits = 16

// MaxValueBits is the widest value accepted by a single WriteBits or ReadBits call.
const MaxValueBits = 32

// Writer accumulates values of irregular width and emits them as fixed-width units.
//
// A Writer is single-use and not safe for concurrent use. Create one per stream.
type Writer struct {
	units    []uint16
	acc      uint64 // pending bits, right-aligned
	accBits  int    // number of valid bits in acc, always < unitBits between calls
	unitBits int
	padding  int
	finished bool
}

// NewWriter creates a writer producing units of unitBits bits.
//
// sizeHint is the expected number of units and only affects the initial allocation.
// It panics if unitBits is outside [1, MaxUnitBits].
func NewWriter(unitBits int, sizeHint int) *Writer {
	if unitBits < 1 || unitBits > MaxUnitBits {
		panic(fmt.Sprintf("bitstream: invalid unit width %d", unitBits))
	}
	if sizeHint < 1 {
		sizeHint = 1
	}

	return &Writer{
		units:    make([]uint16, 0, sizeHint),
		unitBits: unitBits,
	}
}

// UnitBits returns the unit width of the writer.
func (w *Writer) UnitBits() int {
	return w.unitBits
}

// WriteBits appends the low width bits of value, most significant bit first.
//
// Every time the accumulator holds at least one unit worth of bits, the oldest
// unitBits bits are emitted as a unit.
func (w *Writer) WriteBits(value uint32, width int) {
	if w.finished {
		panic("bitstream: write after Finish")
	}
	if width <= 0 {
		return
	}
	if width > MaxValueBits {
		panic(fmt.Sprintf("bitstream: invalid value width %d", width))
	}

	// accBits < unitBits <= 16, so at most 47 bits are live here.
	w.acc = w.acc<<width | uint64(value)&lowMask(width)
	w.accBits += width

	for w.accBits >= w.unitBits {
		w.accBits -= w.unitBits
		w.units = append(w.units, uint16(w.acc>>w.accBits)) //nolint:gosec // G115: at most unitBits <= 16 bits remain above accBits
		w.acc &= lowMask(w.accBits)
	}
}

// Finish pads the pending bits with zeros on the low end, emits the final unit and
// returns all units written.
//
// A final unit is always emitted: when the stream is already unit-aligned the
// terminating unit consists only of padding. This keeps the output identical to
// the reference lz-string implementations, and readers stop at the end-of-stream
// code anyway, so the padding is never interpreted.
//
// The writer cannot be used after Finish.
func (w *Writer) Finish() []uint16 {
	if w.finished {
		return w.units
	}

	w.padding = w.unitBits - w.accBits
	w.units = append(w.units, uint16(w.acc<<w.padding)) //nolint:gosec // G115: exactly unitBits bits
	w.acc, w.accBits = 0, 0
	w.finished = true

	return w.units
}

// Padding returns the number of zero bits appended by Finish, in [1, UnitBits].
// It returns 0 before Finish is called.
func (w *Writer) Padding() int {
	return w.padding
}

// Len returns the number of complete units emitted so far.
func (w *Writer) Len() int {
	return len(w.units)
}

func lowMask(n int) uint64 {
	return 1<<n - 1
}
