package parse

import (
	"errors"
)

var (
	// ErrEmptyKey reports an empty notation token where the options do
	// not allow one. Like every structural error it triggers the flat
	// fallback rather than surfacing from Parse.
	ErrEmptyKey = errors.New("empty key in notation")
	// ErrUnknownSentinel reports a utf8= pair whose value matches no
	// known checkmark form.
	ErrUnknownSentinel = errors.New("unknown charset sentinel")
)
