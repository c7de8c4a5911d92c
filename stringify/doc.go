// Package stringify renders nested Go values back into query strings.
//
// # Overview
//
// Stringify is the reverse of parse: maps become bracket paths, arrays
// render in one of four formats, scalars percent-escape into values.
// Maps walk in sorted key order at every level, so equal data always
// renders equal strings.
//
//	s, err := stringify.Stringify(map[string]any{
//	    "a": map[string]any{"b": "c"},
//	})
//	// s = "a%5Bb%5D=c"
//
// # Array Formats
//
// The same array {"a": ["b", "c"]} renders four ways:
//
//	Indices   a[0]=b&a[1]=c
//	Brackets  a[]=b&a[]=c
//	Repeat    a=b&a=c
//	Comma     a=b,c
//
// Comma only collapses arrays of plain values; arrays holding maps or
// other arrays keep explicit indexes.
//
// # Filtering
//
// Filter keeps a subset of the data: string selectors admit object
// keys, int selectors admit array indexes, checked at every level of
// the walk. Filtered array members keep their original positions.
//
// # Related Packages
//
//   - github.com/queryforge/qs/parse - The reverse transform
//   - github.com/queryforge/qs/node - The tree walked here
//   - github.com/queryforge/qs/token - Percent-escape encoding
package stringify
