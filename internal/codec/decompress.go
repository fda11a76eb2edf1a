package codec

import (
	"fmt"

	"github.com/arloliu/lzstring/errs"
	"github.com/arloliu/lzstring/internal/bitstream"
)

// BitReader is the source of a decoder.
type BitReader interface {
	ReadBits(width int) (uint32, error)
}

// Decompress decodes a stream of unitBits-wide units and appends the recovered UTF-16
// code units to dst.
//
// It returns errs.ErrCorruptStream when the stream is empty, truncated, or references
// an unknown dictionary entry, and errs.ErrInvalidCharacterWidth when a 16-bit literal
// carries a value that a conforming encoder writes as an 8-bit literal. No partial
// output is returned on error.
func Decompress(dst []uint16, units []uint16, unitBits int) ([]uint16, error) {
	if len(units) == 0 {
		return nil, fmt.Errorf("%w: empty stream", errs.ErrCorruptStream)
	}

	return Decode(dst, bitstream.NewReader(units, unitBits))
}

// Decode reads codes from r until the end-of-stream code and appends the decoded code
// units to dst.
func Decode(dst []uint16, r BitReader) ([]uint16, error) {
	d := newDecoder(dst, r)
	if err := d.run(); err != nil {
		return nil, err
	}

	return d.out, nil
}

// span locates a dictionary entry inside the decoded output.
//
// Every entry is either a literal, which is written to the output when it is
// defined, or the previous match followed by the first character of the entry that
// comes right after it in the output. Both are contiguous runs of the output, so the
// dictionary never stores characters of its own.
type span struct {
	off int
	n   int
}

// decoder holds the per-call decompression context.
type decoder struct {
	in    BitReader
	out   []uint16
	dict  []span // indexed by identifier, reserved codes included
	width bitWidth
}

func newDecoder(dst []uint16, in BitReader) *decoder {
	d := &decoder{
		in:    in,
		out:   dst,
		dict:  make([]span, firstEntryID, 64),
		width: newBitWidth(),
	}

	return d
}

func (d *decoder) run() error {
	// The first code is always read at the initial width and must be a literal or
	// the end of an empty stream.
	code, err := d.readCode()
	if err != nil {
		return err
	}

	var prev span
	switch code {
	case codeEndOfStream:
		return nil
	case codeNewChar8, codeNewChar16:
		if prev, err = d.readLiteral(code); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: stream starts with code %d instead of a literal", errs.ErrCorruptStream, code)
	}

	// The encoder has already accounted for two insertions by the time it writes
	// its second code: the first literal and the entry that ended the first match.
	d.width.numBits = initialNumBits + 1
	d.width.enlargeIn = 1 << initialNumBits

	for {
		code, err := d.readCode()
		if err != nil {
			return err
		}

		var entry span
		switch code {
		case codeEndOfStream:
			return nil
		case codeNewChar8, codeNewChar16:
			if entry, err = d.readLiteral(code); err != nil {
				return err
			}
			d.width.consume()
		default:
			if entry, err = d.resolve(code, prev); err != nil {
				return err
			}
		}

		// previous match + first character of this entry
		d.dict = append(d.dict, span{off: prev.off, n: prev.n + 1})
		d.width.consume()
		prev = entry
	}
}

// resolve appends the entry identified by code to the output.
func (d *decoder) resolve(code uint32, prev span) (span, error) {
	size := uint64(len(d.dict))
	start := len(d.out)

	switch {
	case uint64(code) < size:
		e := d.dict[code]
		d.out = append(d.out, d.out[e.off:e.off+e.n]...)

		return span{off: start, n: e.n}, nil

	case uint64(code) == size:
		// Forward reference: the encoder emitted the entry it created one step
		// earlier, before the decoder could define it. That entry is the previous
		// match followed by its own first character.
		d.out = append(d.out, d.out[prev.off:prev.off+prev.n]...)
		d.out = append(d.out, d.out[prev.off])

		return span{off: start, n: prev.n + 1}, nil

	default:
		return span{}, fmt.Errorf("%w: code %d references undefined entry (dictionary size %d)",
			errs.ErrCorruptStream, code, size)
	}
}

// readLiteral reads the payload of a literal escape, appends the character to the
// output and defines it as a new dictionary entry.
func (d *decoder) readLiteral(code uint32) (span, error) {
	width := 8
	if code == codeNewChar16 {
		width = 16
	}

	v, err := d.readBits(width)
	if err != nil {
		return span{}, err
	}
	if code == codeNewChar16 && v < 1<<8 {
		return span{}, fmt.Errorf("%w: character 0x%02X written as a 16-bit literal",
			errs.ErrInvalidCharacterWidth, v)
	}

	d.out = append(d.out, uint16(v)) //nolint:gosec // G115: v has at most 16 bits
	s := span{off: len(d.out) - 1, n: 1}
	d.dict = append(d.dict, s)

	return s, nil
}

func (d *decoder) readCode() (uint32, error) {
	return d.readBits(d.width.numBits)
}

func (d *decoder) readBits(width int) (uint32, error) {
	v, err := d.in.ReadBits(width)
	if err != nil {
		return 0, fmt.Errorf("%w: stream ended before the end-of-stream code: %w", errs.ErrCorruptStream, err)
	}

	return reverse(v, width), nil
}
