package qs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/queryforge/qs/merge"
	"github.com/queryforge/qs/parse"
	"github.com/queryforge/qs/qsdiff"
	"github.com/queryforge/qs/stringify"
)

// Parse parses a query string into nested Go values.
func Parse(input string, options ...parse.ParseOption) (map[string]any, error) {
	return parse.Parse(input, options...)
}

// ParseURL parses the query component of a whole URL.
func ParseURL(url string, options ...parse.ParseOption) (map[string]any, error) {
	options = append(options, parse.FromURL(true))
	return parse.Parse(url, options...)
}

// ParseFlat parses without notation: literal keys, each mapped to the
// list of its values in arrival order.
func ParseFlat(input string, options ...parse.ParseOption) (map[string]any, error) {
	return parse.ParseFlat(input, options...)
}

// Stringify renders nested Go values as a query string.
func Stringify(data map[string]any, options ...stringify.StringifyOption) (string, error) {
	return stringify.Stringify(data, options...)
}

// Diff compares two parsed queries. See qsdiff.
func Diff(from, to map[string]any) map[string]any {
	return qsdiff.Diff(from, to)
}

// Merge applies patch to base with merge-patch semantics. See merge.
func Merge(base, patch map[string]any) (map[string]any, error) {
	return merge.Merge(base, patch)
}

// Get walks a parsed result along a dotted path: name segments index
// maps, decimal segments index arrays. An empty path returns data.
func Get(data map[string]any, path string) (any, error) {
	var cur any = data
	if path == "" {
		return cur, nil
	}
	for _, seg := range strings.Split(path, ".") {
		switch v := cur.(type) {
		case map[string]any:
			next, ok := v[seg]
			if !ok {
				return nil, fmt.Errorf("no key %q in path %q", seg, path)
			}
			cur = next
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil {
				return nil, fmt.Errorf("segment %q indexes an array in path %q", seg, path)
			}
			if i < 0 || i >= len(v) {
				return nil, fmt.Errorf("index %d out of range in path %q", i, path)
			}
			cur = v[i]
		default:
			return nil, fmt.Errorf("segment %q descends into a scalar in path %q", seg, path)
		}
	}
	return cur, nil
}
