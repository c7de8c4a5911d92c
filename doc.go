// Package qs converts between flat percent-encoded query strings and
// nested Go values under bracket and dot notation.
//
// # Overview
//
// A query string like filter[age][gte]=10&sort_by[]=-name is flat text
// addressing nested structure. Parse turns it into maps, arrays, and
// scalars; Stringify renders such values back into a query string
// under configurable array formats, sorting, filtering, and charsets.
//
//	res, _ := qs.Parse("filter[age][gte]=10")
//	// res = map[string]any{"filter": map[string]any{"age": map[string]any{"gte": "10"}}}
//
//	s, _ := qs.Stringify(res)
//	// s = "filter%5Bage%5D%5Bgte%5D=10"
//
// The root package holds conveniences over the working packages:
// parse and stringify carry the two transforms, node the tree model
// they share, token the lexical layer. qsdiff, merge, and Eval operate
// on parsed results; model defines the vocabulary downstream filter
// builders compile against.
//
// # Robustness
//
// Parse never rejects input content. Malformed notation anywhere in
// the input drops the whole call to a flat reading: literal keys,
// lenient escape decoding, every key mapped to the ordered list of its
// values. Only configuration problems, a bad delimiter pattern or an
// unknown charset name, surface as errors. Stringify is the opposite:
// configuration errors fail immediately.
package qs
