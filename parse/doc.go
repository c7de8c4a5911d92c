// Package parse turns query strings into nested Go values.
//
// # Overview
//
// A query string addresses structure through its keys: a[b][c]=d puts
// "d" three mappings deep, a[]=x appends to an array, a.b=c does the
// same as a[b]=c when dot notation is on. Parse reads each pair,
// translates its key into a spine of nodes, and merges spines for the
// same top-level key into one tree. Trees serialize to map[string]any,
// []any, and scalars.
//
//	res, err := parse.Parse("a[b]=c&a[d]=e")
//	// res = map[string]any{"a": map[string]any{"b": "c", "d": "e"}}
//
// # Limits
//
// Three limits keep hostile input bounded. Depth caps how many levels
// a key may address; leftover notation folds into a single literal
// key. ParameterLimit caps distinct top-level keys; pairs beyond it
// are dropped. ArrayLimit caps the largest array index; beyond it the
// key group demotes to object notation with decimal string keys, and
// array parsing switches off for the rest of the call.
//
// # Fallback
//
// Parse never rejects content. Any malformed pair, unbalanced
// brackets, a stray separator, an empty key, an unknown charset
// sentinel, aborts structural parsing and the whole input re-parses
// flat: literal keys, lenient decoding, '+' as space, every key mapped
// to the list of its values. ParseFlat exposes the same reading
// directly.
// The only errors Parse returns are configuration errors.
//
// # Charsets
//
// Percent escapes decode as utf-8 by default or iso-8859-1 on request.
// With CharsetSentinel a utf8=✓ pair in the input overrides the
// configured charset: the checkmark's encoding tells the parser how
// the form that produced the input was encoded.
//
// # Related Packages
//
//   - github.com/queryforge/qs/node - The tree the parser builds
//   - github.com/queryforge/qs/stringify - The reverse transform
//   - github.com/queryforge/qs/token - Splitting and escape decoding
package parse
