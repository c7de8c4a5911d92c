package node

import (
	"fmt"
	"slices"
	"strconv"
)

// Update merges another tree into this one. The four cases:
//
//   - leaf + leaf: values join into one list.
//   - leaf + internal: the scalar demotes to a synthetic child keyed by
//     its string form with value true, then children merge.
//   - internal + leaf: if the leaf's key matches an existing child,
//     recurse; otherwise the leaf's value becomes a synthetic true
//     child.
//   - internal + internal: children merge by key, recursing on
//     collisions.
//
// Arrays re-sort by index after each merge.
func (n *Node) Update(other *Node) {
	switch {
	case n.IsLeaf() && other.IsLeaf():
		n.mergeValue(other)
	case n.IsLeaf():
		n.Children = []*Node{Leaf(Named(StringForm(n.Value)), true)}
		n.Value = nil
		for _, child := range other.Children {
			if ex := n.get(child.Key); ex != nil {
				ex.Update(child)
				continue
			}
			n.Children = append(n.Children, child)
		}
		n.Reorder()
	case other.IsLeaf():
		if ex := n.get(other.Key); ex != nil {
			ex.Update(other)
			return
		}
		n.Children = append(n.Children, Leaf(Named(StringForm(other.Value)), true))
		n.Reorder()
	default:
		for _, child := range other.Children {
			if ex := n.get(child.Key); ex != nil {
				ex.Update(child)
				continue
			}
			n.Children = append(n.Children, child)
		}
		n.Reorder()
	}
}

func (n *Node) mergeValue(other *Node) {
	vs, ok := n.Value.([]any)
	if !ok {
		vs = []any{n.Value}
	}
	ovs, ok := other.Value.([]any)
	if !ok {
		ovs = []any{other.Value}
	}
	n.Value = append(vs, ovs...)
}

// Reorder sorts array children by index, recursively. Non-arrays are
// left alone.
func (n *Node) Reorder() {
	if !n.IsArray() {
		return
	}
	slices.SortStableFunc(n.Children, func(a, b *Node) int {
		return a.Key.Index - b.Key.Index
	})
	for _, c := range n.Children {
		c.Reorder()
	}
}

// SetIndex resolves pending keys against base, the tree already merged
// for the same top-level key: next index after base's maximum, or 0
// without a base. Any integer key beyond arrayLimit, resolved or
// explicit, is ErrArrayLimit.
func (n *Node) SetIndex(base *Node, arrayLimit int) error {
	for _, child := range n.Children {
		var match *Node
		if base != nil {
			match = base.get(child.Key)
		}
		if err := child.SetIndex(match, arrayLimit); err != nil {
			return err
		}
	}
	for _, child := range n.Children {
		if child.Key.Kind == KeyPending {
			idx := 0
			if base != nil {
				idx = base.MaxIndex() + 1
			}
			child.Key = Indexed(idx)
		}
		if child.Key.IsInt() && child.Key.Index > arrayLimit {
			return fmt.Errorf("%w: index %d over %d", ErrArrayLimit, child.Key.Index, arrayLimit)
		}
	}
	return nil
}

// ToObjectNotation restringifies integer keys to their decimal names,
// recursively. Used when array grammar breaks down for a key group.
func (n *Node) ToObjectNotation() {
	if n.Key.IsInt() {
		n.Key = Named(strconv.Itoa(n.Key.Index))
	}
	for _, c := range n.Children {
		c.ToObjectNotation()
	}
}
