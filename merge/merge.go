// Package merge combines parsed queries with RFC 7386 merge-patch
// semantics.
package merge

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/queryforge/qs/debug"
)

// Merge applies patch to base over their JSON forms: patch fields
// replace base fields, objects merge recursively, explicit nulls
// delete. Values come back JSON-typed, so numbers are float64 no
// matter how they parsed.
func Merge(base, patch map[string]any) (map[string]any, error) {
	bd, err := json.Marshal(base)
	if err != nil {
		return nil, err
	}
	pd, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}
	if debug.Merge() {
		debug.Logf("merging %d byte base with %d byte patch\n", len(bd), len(pd))
	}
	out, err := jsonpatch.MergePatch(bd, pd)
	if err != nil {
		return nil, err
	}
	var res map[string]any
	if err := json.Unmarshal(out, &res); err != nil {
		return nil, err
	}
	return res, nil
}
