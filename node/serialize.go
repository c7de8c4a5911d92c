package node

import (
	"fmt"
	"strconv"
	"strings"
)

// Serialize renders the subtree as plain Go values: leaves yield their
// value, arrays a []any, everything else a map[string]any with keys in
// string form. Arrays assume index order (see Reorder); with sparse
// set, missing indexes surface as nil entries instead of compacting.
func (n *Node) Serialize(sparse bool) any {
	if n.IsLeaf() {
		return n.Value
	}
	if n.IsArray() {
		if sparse {
			res := make([]any, n.MaxIndex()+1)
			for _, c := range n.Children {
				res[c.Key.Index] = c.Serialize(sparse)
			}
			return res
		}
		res := make([]any, 0, len(n.Children))
		for _, c := range n.Children {
			res = append(res, c.Serialize(sparse))
		}
		return res
	}
	res := make(map[string]any, len(n.Children))
	for _, c := range n.Children {
		res[c.Key.String()] = c.Serialize(sparse)
	}
	return res
}

// StringForm is the canonical text of a value, shared by synthetic
// merge keys and value formatting: decimal numbers, true/false, null,
// lists as "[a, b]".
func StringForm(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = StringForm(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", x)
	}
}
