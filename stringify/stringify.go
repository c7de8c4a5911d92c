package stringify

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/queryforge/qs/debug"
	"github.com/queryforge/qs/node"
	"github.com/queryforge/qs/token"
)

// Stringify renders nested Go values as a query string. Maps walk in
// sorted key order at every level, so the same data always renders the
// same string. Only configuration problems, an unknown array format,
// charset, or filter selector, return an error.
func Stringify(data map[string]any, options ...StringifyOption) (string, error) {
	o := defaultStringifyOpts()
	for _, f := range options {
		f(o)
	}
	cs, err := o.resolveCharset()
	if err != nil {
		return "", err
	}
	format, err := o.resolveFormat()
	if err != nil {
		return "", err
	}
	for _, sel := range o.filter {
		switch sel.(type) {
		case string, int:
		default:
			return "", fmt.Errorf("%w: %T", ErrFilterItem, sel)
		}
	}

	s := &stringifier{opts: o, format: format}
	for _, k := range slices.Sorted(maps.Keys(data)) {
		root := node.Load(node.Named(k), data[k], o.filter)
		if root == nil {
			continue
		}
		s.flatten(root, k)
	}
	entries := s.combine()
	if o.sort || o.sortReverse {
		slices.SortStableFunc(entries, func(a, b *entry) int {
			return strings.Compare(a.key, b.key)
		})
		if o.sortReverse {
			slices.Reverse(entries)
		}
	}
	out := s.render(entries, cs)
	if debug.Stringify() {
		debug.Logf("stringified %d keys into %d bytes\n", len(data), len(out))
	}
	return out, nil
}

type pair struct {
	key string
	val string
}

// entry collects the values that rendered to the same key, in emission
// order. Brackets and repeat re-emit one pair per value; the other
// formats join.
type entry struct {
	key    string
	values []string
}

type stringifier struct {
	opts   *stringifyOpts
	format ArrayFormat
	pairs  []pair
}

// flatten walks a tree depth-first emitting key/value pairs. key is
// the rendered path down to n. A leaf with a nil value yields nothing;
// an explicit empty string still yields a pair.
func (s *stringifier) flatten(n *node.Node, key string) {
	if n.IsLeaf() {
		if n.Value == nil {
			return
		}
		s.pairs = append(s.pairs, pair{key, node.StringForm(n.Value)})
		return
	}
	if s.format == Comma && n.IsDefaultArray() {
		var parts []string
		for _, c := range n.Children {
			if c.Value == nil {
				continue
			}
			parts = append(parts, node.StringForm(c.Value))
		}
		if parts == nil {
			return
		}
		s.pairs = append(s.pairs, pair{key, strings.Join(parts, ",")})
		return
	}
	for _, c := range n.Children {
		s.flatten(c, key+s.segment(c.Key))
	}
}

// segment renders one path step. Array positions follow the format;
// comma only collapses arrays of plain values, anything deeper falls
// back to explicit indexes.
func (s *stringifier) segment(k node.Key) string {
	if k.Kind == node.KeyIndexed {
		switch s.format {
		case Brackets:
			return "[]"
		case Repeat:
			return ""
		default:
			return "[" + strconv.Itoa(k.Index) + "]"
		}
	}
	if s.opts.allowDots {
		return "." + k.Name
	}
	return "[" + k.Name + "]"
}

func (s *stringifier) combine() []*entry {
	var entries []*entry
	index := map[string]*entry{}
	for _, p := range s.pairs {
		if e, ok := index[p.key]; ok {
			e.values = append(e.values, p.val)
			continue
		}
		e := &entry{key: p.key, values: []string{p.val}}
		index[p.key] = e
		entries = append(entries, e)
	}
	return entries
}

func (s *stringifier) render(entries []*entry, cs token.Charset) string {
	var parts []string
	for _, e := range entries {
		switch s.format {
		case Brackets, Repeat:
			for _, v := range e.values {
				parts = append(parts, s.pair(e.key, v, cs))
			}
		default:
			parts = append(parts, s.pair(e.key, strings.Join(e.values, ","), cs))
		}
	}
	if s.opts.charsetSentinel {
		parts = append([]string{token.SentinelPair(cs)}, parts...)
	}
	return strings.Join(parts, s.opts.delimiter)
}

func (s *stringifier) pair(k, v string, cs token.Charset) string {
	switch {
	case s.opts.encodeValuesOnly:
		return k + "=" + token.Encode(v, cs)
	case s.opts.encode:
		return token.Encode(k, cs) + "=" + token.Encode(v, cs)
	default:
		return k + "=" + v
	}
}
