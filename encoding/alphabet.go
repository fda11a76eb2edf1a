package encoding

// alphabet maps code units to symbols and back.
type alphabet interface {
	symbol(unit uint16) rune
	value(r rune) (uint16, bool)
}

// tableAlphabet assigns the i-th character of an ASCII table to unit i.
type tableAlphabet struct {
	chars string
	index [128]int8
}

func newTableAlphabet(chars string) *tableAlphabet {
	a := &tableAlphabet{chars: chars}
	for i := range a.index {
		a.index[i] = -1
	}
	for i := 0; i < len(chars); i++ {
		a.index[chars[i]] = int8(i) //nolint:gosec // G115: tables hold at most 64 characters
	}

	return a
}

func (a *tableAlphabet) symbol(unit uint16) rune {
	return rune(a.chars[unit])
}

func (a *tableAlphabet) value(r rune) (uint16, bool) {
	if r < 0 || r >= rune(len(a.index)) {
		return 0, false
	}
	v := a.index[r]
	if v < 0 {
		return 0, false
	}

	return uint16(v), true
}

// offsetAlphabet shifts units into a contiguous code point range.
type offsetAlphabet struct {
	offset rune
	size   rune
}

func (a offsetAlphabet) symbol(unit uint16) rune {
	return rune(unit) + a.offset
}

func (a offsetAlphabet) value(r rune) (uint16, bool) {
	v := r - a.offset
	if v < 0 || v >= a.size {
		return 0, false
	}

	return uint16(v), true //nolint:gosec // G115: v < size <= 1<<16
}
