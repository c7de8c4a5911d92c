package token

import (
	"fmt"
	"regexp"
	"strings"
)

// SplitPairs cuts a raw query into key=value pieces on the delimiter.
// A compiled regexp wins over the literal delimiter when both are set.
// Empty pieces, such as those produced by a trailing '&', are dropped.
func SplitPairs(input string, lit string, re *regexp.Regexp) []string {
	var parts []string
	if re != nil {
		parts = re.Split(input, -1)
	} else {
		if lit == "" {
			lit = "&"
		}
		parts = strings.Split(input, lit)
	}
	res := parts[:0]
	for _, p := range parts {
		if p == "" {
			continue
		}
		res = append(res, p)
	}
	return res
}

// CutPair splits a single pair on '='. A structural pair carries exactly
// one separator; anything else cannot be keyed.
func CutPair(pair string) (string, string, error) {
	i := strings.IndexByte(pair, '=')
	if i < 0 {
		return "", "", fmt.Errorf("%w: no separator in %q", ErrMalformedInput, pair)
	}
	if strings.IndexByte(pair[i+1:], '=') >= 0 {
		return "", "", fmt.Errorf("%w: multiple separators in %q", ErrMalformedInput, pair)
	}
	return pair[:i], pair[i+1:], nil
}
