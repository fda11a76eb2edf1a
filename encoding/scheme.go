package encoding

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arloliu/lzstring/errs"
	"github.com/arloliu/lzstring/internal/pool"
)

const (
	base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	uriChars    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+-$"

	utf16Offset = 32
)

// TextScheme describes how a stream of fixed-width units is written as text.
//
// Schemes are immutable and obtained from UTF16, URIComponent and Base64.
type TextScheme struct {
	name     string
	unitBits int
	alpha    alphabet

	// padChar, when non-zero, pads the encoded text to a multiple of padBlock symbols.
	padChar  rune
	padBlock int
	// terminator is appended after the symbols.
	terminator string
	// spaceAs, when non-zero, is substituted for spaces before decoding.
	spaceAs rune
}

var (
	utf16Scheme = &TextScheme{
		name:       "utf16",
		unitBits:   15,
		alpha:      offsetAlphabet{offset: utf16Offset, size: 1 << 15},
		terminator: " ",
	}

	uriScheme = &TextScheme{
		name:     "uri",
		unitBits: 6,
		alpha:    newTableAlphabet(uriChars),
		spaceAs:  '+',
	}

	base64Scheme = &TextScheme{
		name:     "base64",
		unitBits: 6,
		alpha:    newTableAlphabet(base64Chars),
		padChar:  '=',
		padBlock: 4,
	}
)

// UTF16 returns the scheme that writes 15-bit units as the code points U+0020 to
// U+801F followed by a space.
func UTF16() *TextScheme {
	return utf16Scheme
}

// URIComponent returns the scheme that writes 6-bit units with an alphabet that is
// safe in URI components.
func URIComponent() *TextScheme {
	return uriScheme
}

// Base64 returns the scheme that writes 6-bit units with the standard Base64
// alphabet and '=' padding.
func Base64() *TextScheme {
	return base64Scheme
}

// Name returns the short name of the scheme.
func (s *TextScheme) Name() string {
	return s.name
}

// UnitBits returns the unit width the codec must pack for this scheme.
func (s *TextScheme) UnitBits() int {
	return s.unitBits
}

// Contains reports whether r may appear in text produced by Encode.
func (s *TextScheme) Contains(r rune) bool {
	if s.padChar != 0 && r == s.padChar {
		return true
	}
	if strings.ContainsRune(s.terminator, r) {
		return true
	}
	_, ok := s.alpha.value(r)

	return ok
}

// Encode writes units as text. Every unit must be below 1<<UnitBits().
func (s *TextScheme) Encode(units []uint16) string {
	bb := pool.GetTextBuffer()
	defer pool.PutTextBuffer(bb)

	bb.Grow(len(units)*utf8.UTFMax + s.padBlock + len(s.terminator))
	for _, u := range units {
		_, _ = bb.WriteRune(s.alpha.symbol(u))
	}

	if s.padChar != 0 {
		for n := len(units); n%s.padBlock != 0; n++ {
			_, _ = bb.WriteRune(s.padChar)
		}
	}
	_, _ = bb.WriteString(s.terminator)

	return bb.String()
}

// Decode converts text back to units and appends them to dst.
//
// It returns errs.ErrInvalidEncoding if text contains a character outside the
// scheme's alphabet or malformed padding, and a nil slice with it.
func (s *TextScheme) Decode(dst []uint16, text string) ([]uint16, error) {
	text, err := s.trimPadding(text)
	if err != nil {
		return nil, err
	}

	for i, r := range text {
		if r == ' ' && s.spaceAs != 0 {
			r = s.spaceAs
		}

		v, ok := s.alpha.value(r)
		if !ok {
			return nil, fmt.Errorf("%w: %s: unexpected character %q at byte offset %d",
				errs.ErrInvalidEncoding, s.name, r, i)
		}
		dst = append(dst, v)
	}

	return dst, nil
}

func (s *TextScheme) trimPadding(text string) (string, error) {
	if s.padChar == 0 {
		return text, nil
	}

	trimmed := strings.TrimRight(text, string(s.padChar))
	if len(text)-len(trimmed) >= s.padBlock {
		return "", fmt.Errorf("%w: %s: %d padding characters", errs.ErrInvalidEncoding, s.name, len(text)-len(trimmed))
	}

	return trimmed, nil
}
