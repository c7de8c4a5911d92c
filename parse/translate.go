package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/queryforge/qs/node"
	"github.com/queryforge/qs/token"
)

// errArrayDepth rejects array notation nested past the depth budget.
// It never escapes the package: the caller demotes the key group and
// retries with lhsParse, which folds the leftover tokens instead.
var errArrayDepth = errors.New("array notation too deep")

// arrayParse builds a spine from array-notation sub-tokens. The tail
// builds first, then the head token wraps it. nil with a nil error
// means no tokens at all: the value hangs directly off the base key.
//
// A [] token wraps the tail under a pending key unless the tail is
// already integer or pending keyed, in which case it passes through
// unchanged. A named token yields a named spine; the caller detects
// that by the top key kind and rejects the group as array notation.
func arrayParse(toks []string, value any, depth, arrayLimit int) (*node.Node, error) {
	if len(toks) == 0 {
		return nil, nil
	}
	if len(toks) >= 2 && depth <= 0 {
		return nil, errArrayDepth
	}
	rest, err := arrayParse(toks[1:], value, depth-1, arrayLimit)
	if err != nil {
		return nil, err
	}
	tok := toks[0]
	switch {
	case token.IsIndex(tok):
		idx, err := strconv.Atoi(tok)
		if err != nil || idx > arrayLimit {
			return nil, fmt.Errorf("%w: %q over %d", node.ErrArrayLimit, tok, arrayLimit)
		}
		if rest == nil {
			return node.Leaf(node.Indexed(idx), value), nil
		}
		return node.Wrap(node.Indexed(idx), rest), nil
	case tok == "":
		if rest == nil {
			return node.Leaf(node.Pending(), value), nil
		}
		if rest.Key.Kind != node.KeyNamed {
			return rest, nil
		}
		return node.Wrap(node.Pending(), rest), nil
	default:
		if rest == nil {
			return node.Leaf(node.Named(tok), value), nil
		}
		return node.Wrap(node.Named(tok), rest), nil
	}
}

// lhsParse builds a spine from object-notation sub-tokens. The depth
// budget is spent on intermediate tokens only; once it runs out the
// remaining tokens fold into one literal key, so over-deep paths stay
// addressable rather than erroring. A single remaining token is always
// free.
func lhsParse(toks []string, value any, depth int, allowDots, allowEmpty bool) (*node.Node, error) {
	if len(toks) == 0 {
		return nil, nil
	}
	if len(toks) >= 2 && depth <= 0 {
		return node.Leaf(node.Named(foldKey(toks, allowDots)), value), nil
	}
	tok := toks[0]
	if tok == "" && !allowEmpty {
		return nil, ErrEmptyKey
	}
	if len(toks) == 1 {
		return node.Leaf(node.Named(tok), value), nil
	}
	rest, err := lhsParse(toks[1:], value, depth-1, allowDots, allowEmpty)
	if err != nil {
		return nil, err
	}
	return node.Wrap(node.Named(tok), rest), nil
}

// foldKey renders leftover tokens back in the notation they arrived in.
func foldKey(toks []string, allowDots bool) string {
	if allowDots {
		return strings.Join(toks, ".")
	}
	var b strings.Builder
	for _, t := range toks {
		b.WriteByte('[')
		b.WriteString(t)
		b.WriteByte(']')
	}
	return b.String()
}
