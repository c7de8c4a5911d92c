package token

import (
	"fmt"
	"strings"
)

// Charset selects how percent-escaped byte runs map to text. Only the
// two charsets that appear in real form submissions are supported.
type Charset int

const (
	UTF8 Charset = iota
	ISO88591
)

func (c Charset) String() string {
	switch c {
	case ISO88591:
		return "iso-8859-1"
	default:
		return "utf-8"
	}
}

func ParseCharset(v string) (Charset, error) {
	switch strings.ToLower(v) {
	case "", "utf8", "utf-8":
		return UTF8, nil
	case "iso-8859-1", "iso8859-1", "latin1", "latin-1":
		return ISO88591, nil
	}
	return UTF8, fmt.Errorf("%w: %q", ErrBadCharset, v)
}
