package node

import (
	"errors"
)

var (
	// ErrArrayLimit reports an array index beyond the configured limit.
	// The parser recovers from it by demoting the key group to object
	// notation; it never reaches callers of Parse.
	ErrArrayLimit = errors.New("array limit reached")
)
