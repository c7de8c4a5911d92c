package token

import (
	"fmt"
	"strings"
)

// SplitKey breaks a decoded key into its notation tokens: the base
// segment followed by one bracket group per sub-key. With allowDots the
// base segment additionally splits on '.', so a.b[c] tokenizes like
// a[b][c]. Bracket groups must be flat and contiguous: an opener inside
// a group, a closer outside one, or trailing text after the last group
// all fail.
func SplitKey(key string, allowDots bool) ([]string, error) {
	open := strings.IndexByte(key, '[')
	base := key
	if open >= 0 {
		base = key[:open]
	}
	if strings.IndexByte(base, ']') >= 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnbalancedBrackets, key)
	}
	var toks []string
	if allowDots {
		toks = strings.Split(base, ".")
	} else {
		toks = []string{base}
	}
	if open < 0 {
		return toks, nil
	}
	i := open
	n := len(key)
	for i < n {
		if key[i] != '[' {
			return nil, fmt.Errorf("%w: trailing %q in %q", ErrUnbalancedBrackets, key[i:], key)
		}
		j := i + 1
		for j < n && key[j] != ']' {
			if key[j] == '[' {
				return nil, fmt.Errorf("%w: nested '[' in %q", ErrUnbalancedBrackets, key)
			}
			j++
		}
		if j == n {
			return nil, fmt.Errorf("%w: unterminated '[' in %q", ErrUnbalancedBrackets, key)
		}
		toks = append(toks, key[i+1:j])
		i = j + 1
	}
	return toks, nil
}

// IsIndex reports whether a sub-key token is a pure decimal index.
func IsIndex(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if !asciiDigit(tok[i]) {
			return false
		}
	}
	return true
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}
