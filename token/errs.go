package token

import (
	"errors"
)

var (
	ErrMalformedInput     = errors.New("malformed input")
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")
	ErrBadCharset         = errors.New("bad charset")
)
