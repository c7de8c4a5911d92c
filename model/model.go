package model

import (
	"fmt"
)

// Reserved keys of a parsed query that address the query itself rather
// than a field: sorting and pagination. They are never filter keys.
var Keywords = []string{"sort_by", "limit", "offset"}

// FieldSpec declares what a query may do with one output field.
type FieldSpec struct {
	Sortable   bool
	Filterable bool
}

// Registry maps field names to their specs.
type Registry map[string]FieldSpec

// FilterFactory is the capability a query-builder layer implements: it
// turns a parsed query into a native query against a registry and owns
// the sort item grammar it accepts.
type FilterFactory interface {
	BuildQuery(parsed map[string]any, fields Registry) (any, error)
	ParseSortItem(item string) (Direction, string, error)
}

// OutputModel names a response shape and the registry describing it.
type OutputModel struct {
	Name   string
	Fields Registry
}

// NewOutputModel builds a model from field names, marking the listed
// ones sortable and filterable.
func NewOutputModel(name string, fields []string, sortable, filterable []string) *OutputModel {
	reg := make(Registry, len(fields))
	for _, f := range fields {
		reg[f] = FieldSpec{
			Sortable:   contains(sortable, f),
			Filterable: contains(filterable, f),
		}
	}
	return &OutputModel{Name: name, Fields: reg}
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Validate checks a parsed query against the model: every non-keyword
// key must name a filterable field, and every sort_by item must parse
// under the factory's grammar and name a sortable field. sort_by may
// be a single item or a list of items.
func (m *OutputModel) Validate(parsed map[string]any, f FilterFactory) error {
	for key := range parsed {
		if contains(Keywords, key) {
			continue
		}
		spec, ok := m.Fields[key]
		if !ok {
			return fmt.Errorf("unknown field %q in model %q", key, m.Name)
		}
		if !spec.Filterable {
			return fmt.Errorf("field %q in model %q is not filterable", key, m.Name)
		}
	}
	return m.validateSort(parsed["sort_by"], f)
}

func (m *OutputModel) validateSort(sortBy any, f FilterFactory) error {
	if sortBy == nil {
		return nil
	}
	var items []any
	switch v := sortBy.(type) {
	case []any:
		items = v
	default:
		items = []any{v}
	}
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return fmt.Errorf("sort item %v is not a string", item)
		}
		_, name, err := f.ParseSortItem(s)
		if err != nil {
			return err
		}
		spec, ok := m.Fields[name]
		if !ok {
			return fmt.Errorf("unknown sort field %q in model %q", name, m.Name)
		}
		if !spec.Sortable {
			return fmt.Errorf("field %q in model %q is not sortable", name, m.Name)
		}
	}
	return nil
}
