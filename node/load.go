package node

import (
	"maps"
	"slices"
)

// Load builds a tree from nested Go values: maps become object nodes
// with children in sorted key order, slices arrays with indexed
// children, anything else a leaf. A non-empty filter admits keys at
// every level — string selectors match object keys, int selectors
// match array indexes — and returns nil for a key it rejects.
func Load(key Key, data any, filter []any) *Node {
	if !admitted(key, filter) {
		return nil
	}
	switch v := data.(type) {
	case map[string]any:
		root := &Node{Key: key}
		for _, k := range slices.Sorted(maps.Keys(v)) {
			if child := Load(Named(k), v[k], filter); child != nil {
				root.Children = append(root.Children, child)
			}
		}
		return root
	case []any:
		root := &Node{Key: key}
		for i, e := range v {
			if child := Load(Indexed(i), e, filter); child != nil {
				root.Children = append(root.Children, child)
			}
		}
		return root
	default:
		return Leaf(key, data)
	}
}

func admitted(key Key, filter []any) bool {
	if len(filter) == 0 {
		return true
	}
	for _, f := range filter {
		switch s := f.(type) {
		case string:
			if key.Kind == KeyNamed && key.Name == s {
				return true
			}
		case int:
			if key.Kind == KeyIndexed && key.Index == s {
				return true
			}
		}
	}
	return false
}
