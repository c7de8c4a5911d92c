package qsdiff

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/queryforge/qs/debug"
)

// Marker keys of a diff document. Wherever the two sides disagree, a
// key maps to exactly one of these; everything equal is omitted.
const (
	InsertKey  = "$insert"
	DeleteKey  = "$delete"
	ReplaceKey = "$replace"
)

// Diff compares two parsed queries and returns a document holding only
// their differences, nil when they are equal. Replaced strings carry
// an "edits" rendering of how one became the other.
func Diff(from, to map[string]any) map[string]any {
	res := diffObject(from, to)
	if debug.Diff() {
		debug.Logf("diff produced %d entries\n", len(res))
	}
	return res
}

// diffObject diffs key sequences by mapping each distinct key to a
// rune and running the rune differ over the two sorted sequences.
// Deleted keys get delete markers, inserted keys insert markers, and
// common keys recurse on their values.
func diffObject(from, to map[string]any) map[string]any {
	keyRunes := map[string]rune{}
	runeKeys := map[rune]string{}
	fromRunes := mapKeysTo(keyRunes, runeKeys, from)
	toRunes := mapKeysTo(keyRunes, runeKeys, to)
	dmp := diffpatch.New()
	diffs := dmp.DiffMainRunes(fromRunes, toRunes, false)
	res := map[string]any{}
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			for _, r := range d.Text {
				k := runeKeys[r]
				res[k] = map[string]any{DeleteKey: from[k]}
			}
		case diffpatch.DiffEqual:
			for _, r := range d.Text {
				k := runeKeys[r]
				if sub := diffValue(from[k], to[k]); sub != nil {
					res[k] = sub
				}
			}
		case diffpatch.DiffInsert:
			for _, r := range d.Text {
				k := runeKeys[r]
				res[k] = map[string]any{InsertKey: to[k]}
			}
		}
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

func mapKeysTo(m map[string]rune, names map[rune]string, data map[string]any) []rune {
	ks := slices.Sorted(maps.Keys(data))
	rs := make([]rune, len(ks))
	for i, k := range ks {
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
			names[r] = k
		}
		rs[i] = r
	}
	return rs
}

func diffValue(from, to any) any {
	switch f := from.(type) {
	case map[string]any:
		if t, ok := to.(map[string]any); ok {
			if sub := diffObject(f, t); sub != nil {
				return sub
			}
			return nil
		}
	case []any:
		if t, ok := to.([]any); ok {
			if sub := diffArray(f, t); sub != nil {
				return sub
			}
			return nil
		}
	default:
		if from == to {
			return nil
		}
	}
	return replace(from, to)
}

// diffArray compares arrays by position; length differences become
// insert or delete markers on the tail.
func diffArray(from, to []any) map[string]any {
	res := map[string]any{}
	n := min(len(from), len(to))
	for i := 0; i < n; i++ {
		if sub := diffValue(from[i], to[i]); sub != nil {
			res[strconv.Itoa(i)] = sub
		}
	}
	for i := n; i < len(from); i++ {
		res[strconv.Itoa(i)] = map[string]any{DeleteKey: from[i]}
	}
	for i := n; i < len(to); i++ {
		res[strconv.Itoa(i)] = map[string]any{InsertKey: to[i]}
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

func replace(from, to any) map[string]any {
	body := map[string]any{"from": from, "to": to}
	fs, fok := from.(string)
	ts, tok := to.(string)
	if fok && tok {
		body["edits"] = renderEdits(fs, ts)
	}
	return map[string]any{ReplaceKey: body}
}

// renderEdits shows how one string becomes the other in wdiff
// notation: deletions in [-...], insertions in {+...}.
func renderEdits(from, to string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			b.WriteString("[-")
			b.WriteString(d.Text)
			b.WriteString("]")
		case diffpatch.DiffInsert:
			b.WriteString("{+")
			b.WriteString(d.Text)
			b.WriteString("}")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
