package token

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// Decode resolves %XX escapes in s. Escaped byte runs are interpreted
// under the charset; unescaped text passes through untouched, and '+'
// is not a space at this layer. A '%' not followed by two hex digits is
// malformed input.
func Decode(s string, cs Charset) (string, error) {
	if strings.IndexByte(s, '%') < 0 {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	var run []byte
	for i := 0; i < len(s); {
		c := s[i]
		if c != '%' {
			run = flushRun(&b, run, cs)
			b.WriteByte(c)
			i++
			continue
		}
		if i+2 >= len(s) {
			return "", fmt.Errorf("%w: truncated escape %q", ErrMalformedInput, s[i:])
		}
		hi := hexVal(s[i+1])
		lo := hexVal(s[i+2])
		if hi < 0 || lo < 0 {
			return "", fmt.Errorf("%w: bad escape %q", ErrMalformedInput, s[i:i+3])
		}
		run = append(run, byte(hi<<4|lo))
		i += 3
	}
	flushRun(&b, run, cs)
	return b.String(), nil
}

// DecodeLenient never fails: '+' becomes a space, broken escapes stay
// literal. This is the decoding the flat fallback uses.
func DecodeLenient(s string, cs Charset) string {
	var b strings.Builder
	b.Grow(len(s))
	var run []byte
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '+':
			run = flushRun(&b, run, cs)
			b.WriteByte(' ')
			i++
		case c != '%':
			run = flushRun(&b, run, cs)
			b.WriteByte(c)
			i++
		case i+2 < len(s) && hexVal(s[i+1]) >= 0 && hexVal(s[i+2]) >= 0:
			run = append(run, byte(hexVal(s[i+1])<<4|hexVal(s[i+2])))
			i += 3
		default:
			run = flushRun(&b, run, cs)
			b.WriteByte('%')
			i++
		}
	}
	flushRun(&b, run, cs)
	return b.String()
}

func flushRun(b *strings.Builder, run []byte, cs Charset) []byte {
	if len(run) == 0 {
		return run
	}
	switch cs {
	case ISO88591:
		for _, c := range run {
			b.WriteRune(rune(c))
		}
	default:
		for len(run) > 0 {
			r, size := utf8.DecodeRune(run)
			if r == utf8.RuneError && size == 1 {
				b.WriteRune(utf8.RuneError)
				run = run[1:]
				continue
			}
			b.WriteRune(r)
			run = run[size:]
		}
	}
	return run[:0]
}

// Encode percent-escapes everything outside the unreserved set plus
// '/'. Under iso-8859-1, runes above U+00FF are first written as
// numeric character references so the result stays representable.
func Encode(s string, cs Charset) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case cs == ISO88591 && r > 0xFF:
			ent := fmt.Sprintf("&#%d;", r)
			for i := 0; i < len(ent); i++ {
				encodeByte(&b, ent[i])
			}
		case cs == ISO88591:
			encodeByte(&b, byte(r))
		default:
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], r)
			for i := 0; i < n; i++ {
				encodeByte(&b, buf[i])
			}
		}
	}
	return b.String()
}

func encodeByte(b *strings.Builder, c byte) {
	if unreservedByte(c) {
		b.WriteByte(c)
		return
	}
	b.WriteByte('%')
	b.WriteByte(upperhex[c>>4])
	b.WriteByte(upperhex[c&0xF])
}

func unreservedByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '_', '.', '-', '~', '/':
		return true
	default:
		return false
	}
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}
