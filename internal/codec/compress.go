package codec

import "github.com/arloliu/lzstring/internal/bitstream"

// BitWriter is the sink of an encoder.
type BitWriter interface {
	WriteBits(value uint32, width int)
}

// Compress encodes a sequence of UTF-16 code units and packs the codes into units of
// unitBits bits.
//
// Compression is total: every input, including the empty one and sequences holding
// unpaired surrogates, produces a valid stream.
func Compress(input []uint16, unitBits int) []uint16 {
	w := bitstream.NewWriter(unitBits, estimateUnits(len(input), unitBits))
	Encode(w, input)

	return w.Finish()
}

// Encode writes the code stream for input to w, terminated by the end-of-stream code.
// It does not flush w.
func Encode(w BitWriter, input []uint16) {
	e := newEncoder(w)
	for _, c := range input {
		e.next(c)
	}
	e.finish()
}

func estimateUnits(inputLen, unitBits int) int {
	// Natural text typically shrinks to well under 8 bits per character.
	return inputLen*8/unitBits + 1
}

// charEntry is the dictionary entry of a single character.
type charEntry struct {
	id uint32
	// pending is true until the character has been written as a literal.
	pending bool
}

// encoder holds the per-call compression context.
type encoder struct {
	out      BitWriter
	chars    map[uint16]*charEntry
	children map[uint64]uint32 // (parent id << 16 | next char) -> child id
	dictSize uint32
	width    bitWidth

	// current match w
	hasMatch bool
	match    uint32 // dictionary id of w
	single   bool   // w is a single character
	char     uint16 // the character of w when single
}

func newEncoder(out BitWriter) *encoder {
	return &encoder{
		out:      out,
		chars:    make(map[uint16]*charEntry),
		children: make(map[uint64]uint32),
		dictSize: firstEntryID,
		width:    newBitWidth(),
	}
}

// next extends the current match with c, or emits the match and starts a new one.
func (e *encoder) next(c uint16) {
	ce, ok := e.chars[c]
	if !ok {
		ce = &charEntry{id: e.dictSize, pending: true}
		e.chars[c] = ce
		e.dictSize++
	}

	if !e.hasMatch {
		e.startMatch(c, ce)
		return
	}

	key := uint64(e.match)<<16 | uint64(c)
	if id, found := e.children[key]; found {
		e.match = id
		e.single = false

		return
	}

	e.emitMatch()
	e.children[key] = e.dictSize
	e.dictSize++
	e.startMatch(c, ce)
}

func (e *encoder) startMatch(c uint16, ce *charEntry) {
	e.hasMatch = true
	e.match = ce.id
	e.single = true
	e.char = c
}

// emitMatch writes the code of the current match. The first occurrence of a
// character is written as a literal escape instead of its identifier.
func (e *encoder) emitMatch() {
	if e.single {
		if ce := e.chars[e.char]; ce.pending {
			if e.char < 1<<8 {
				e.writeCode(codeNewChar8)
				e.out.WriteBits(reverse(uint32(e.char), 8), 8)
			} else {
				e.writeCode(codeNewChar16)
				e.out.WriteBits(reverse(uint32(e.char), 16), 16)
			}
			ce.pending = false
			e.width.consume()
			e.width.consume()

			return
		}
	}

	e.writeCode(e.match)
	e.width.consume()
}

func (e *encoder) finish() {
	if e.hasMatch {
		e.emitMatch()
	}
	e.writeCode(codeEndOfStream)
}

func (e *encoder) writeCode(code uint32) {
	n := e.width.numBits
	e.out.WriteBits(reverse(code, n), n)
}
