package stringify

import (
	"errors"
)

var (
	// ErrArrayFormat reports an array format outside the known set.
	ErrArrayFormat = errors.New("unknown array format")
	// ErrFilterItem reports a filter selector that is neither a string
	// nor an int.
	ErrFilterItem = errors.New("bad filter selector")
)
