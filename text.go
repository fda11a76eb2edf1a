package lzstring

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/arloliu/lzstring/errs"
)

// appendUTF16 appends the UTF-16 encoding of s to dst.
func appendUTF16(dst []uint16, s string) []uint16 {
	for _, r := range s {
		dst = utf16.AppendRune(dst, r)
	}

	return dst
}

// utf16String converts well-formed UTF-16 to a string.
//
// Unlike utf16.Decode it does not substitute U+FFFD for unpaired surrogates; they
// are reported as errs.ErrInvalidEncoding.
func utf16String(units []uint16) (string, error) {
	var sb strings.Builder
	sb.Grow(len(units))

	for i := 0; i < len(units); i++ {
		r := rune(units[i])
		if !utf16.IsSurrogate(r) {
			sb.WriteRune(r)
			continue
		}

		if i+1 < len(units) {
			if pair := utf16.DecodeRune(r, rune(units[i+1])); pair != unicode.ReplacementChar {
				sb.WriteRune(pair)
				i++

				continue
			}
		}

		return "", fmt.Errorf("%w: unpaired surrogate 0x%04X at code unit %d", errs.ErrInvalidEncoding, units[i], i)
	}

	return sb.String(), nil
}
