// Package qsdiff compares two parsed queries and reports their
// differences as a document of $insert, $delete, and $replace markers,
// plus a line-oriented rendering for terminals. Object keys diff as
// rune-mapped sequences, arrays by position, and replaced strings
// carry a wdiff-style edit script.
package qsdiff
