package node

// Node is one vertex of a query tree. A leaf carries a value; an
// internal node carries ordered children with unique keys and a nil
// value. Values are nil, string, int64, float64, bool, or []any of
// those.
type Node struct {
	Key      Key
	Value    any
	Children []*Node
}

// Leaf makes a terminal node holding value.
func Leaf(key Key, value any) *Node {
	return &Node{Key: key, Value: value}
}

// Wrap makes an internal node with a single child.
func Wrap(key Key, child *Node) *Node {
	return &Node{Key: key, Children: []*Node{child}}
}

func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsArray reports whether the node is internal and fully
// integer-keyed. Pending keys do not count until resolved.
func (n *Node) IsArray() bool {
	if n.Value != nil {
		return false
	}
	for _, c := range n.Children {
		if !c.Key.IsInt() {
			return false
		}
	}
	return true
}

// IsDefaultArray reports an array whose members are all leaves; only
// those collapse to a joined value under the comma array format.
func (n *Node) IsDefaultArray() bool {
	if !n.IsArray() {
		return false
	}
	for _, c := range n.Children {
		if !c.IsLeaf() {
			return false
		}
	}
	return true
}

// MaxIndex is the largest child index, -1 for anything that is not an
// array or has no children.
func (n *Node) MaxIndex() int {
	if !n.IsArray() {
		return -1
	}
	max := -1
	for _, c := range n.Children {
		if c.Key.Index > max {
			max = c.Key.Index
		}
	}
	return max
}

func (n *Node) get(key Key) *Node {
	for _, c := range n.Children {
		if c.Key == key {
			return c
		}
	}
	return nil
}

// Get returns the child with the given key, nil if absent.
func (n *Node) Get(key Key) *Node {
	return n.get(key)
}
