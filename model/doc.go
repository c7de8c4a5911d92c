// Package model defines the vocabulary between parsed queries and the
// layers that turn them into native queries: field registries marking
// what may be filtered or sorted, the sort item grammar, and the
// FilterFactory capability a query builder implements. The core never
// calls into this package; it exists so downstream builders and
// validators compile against one set of types.
package model
