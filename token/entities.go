package token

import (
	"strings"
	"unicode/utf8"
)

// UnescapeEntities decodes numeric character references (&#NNNN; and
// &#xHH;) in already percent-decoded text. The terminating semicolon is
// optional, as browsers accept. Text that does not scan as a numeric
// reference stays literal.
func UnescapeEntities(s string) string {
	i := strings.Index(s, "&#")
	if i < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for i < len(s) {
		if !strings.HasPrefix(s[i:], "&#") {
			b.WriteByte(s[i])
			i++
			continue
		}
		r, next, ok := scanEntity(s, i)
		if !ok {
			b.WriteByte(s[i])
			i++
			continue
		}
		b.WriteRune(r)
		i = next
	}
	return b.String()
}

func scanEntity(s string, i int) (rune, int, bool) {
	j := i + 2
	hex := false
	if j < len(s) && (s[j] == 'x' || s[j] == 'X') {
		hex = true
		j++
	}
	v := 0
	digits := 0
	for j < len(s) {
		d := -1
		if hex {
			d = hexVal(s[j])
		} else if asciiDigit(s[j]) {
			d = int(s[j] - '0')
		}
		if d < 0 {
			break
		}
		if v <= 0x10FFFF {
			if hex {
				v = v<<4 | d
			} else {
				v = v*10 + d
			}
		}
		digits++
		j++
	}
	if digits == 0 {
		return 0, i, false
	}
	if j < len(s) && s[j] == ';' {
		j++
	}
	r := rune(v)
	if v == 0 || v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
		r = utf8.RuneError
	}
	return r, j, true
}
