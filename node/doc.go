// Package node provides the tree representation shared by the query
// string parser and stringifier.
//
// # Overview
//
// A query string like a[b][0]=c describes a path through nested
// mappings and arrays ending in a scalar. Each parsed pair becomes a
// spine of Node values, and spines for the same top-level key merge
// into one tree. The stringifier walks the same trees in the other
// direction. The tree is the only structure the two sides agree on:
// neither ever sees the other's intermediate state.
//
// # Node Structure
//
// A Node is a leaf or an internal node:
//
//   - A leaf has a Value (nil, string, int64, float64, bool, or []any
//     of those) and no children.
//   - An internal node has a nil Value and ordered children addressed
//     by Key.
//
// Keys come in three kinds. Named keys address object members, indexed
// keys address array slots, and pending keys mark [] appends whose
// index is not yet known. Pending keys exist only between translation
// and SetIndex; merged trees never contain them.
//
// # Creating Nodes
//
// Use the constructors to build spines:
//
//	leaf := node.Leaf(node.Named("a"), "b")
//	spine := node.Wrap(node.Named("a"), node.Leaf(node.Indexed(0), "b"))
//	tree := node.Load(node.Named("a"), data, nil)
//
// Load builds whole trees from nested Go values with children in
// sorted key order, so stringifying the same data twice renders the
// same string.
//
// # Merging
//
// Update merges one tree into another. Leaves joining leaves collect
// values into a list; a leaf meeting structure demotes its scalar to a
// synthetic marker child keyed by the scalar's string form with value
// true. Children stay unique by key, and arrays re-sort by index after
// every merge.
//
// # Serialization
//
// Serialize renders a tree as plain Go values: map[string]any for
// objects, []any for arrays, the value itself for leaves. An array is
// a node whose children all carry integer keys; anything mixed
// serializes as an object with decimal string keys.
//
// # Thread Safety
//
// Node structures are not thread-safe. Trees returned by the parser
// are freshly built and safe to hand to another goroutine; concurrent
// mutation of one tree must be synchronized by the caller.
//
// # Related Packages
//
//   - github.com/queryforge/qs/parse - Parses query strings into trees
//   - github.com/queryforge/qs/stringify - Renders trees back to query strings
package node
