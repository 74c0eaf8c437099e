// Package query implements the pure filter-and-project engine behind every
// list view: a conjunction of predicates applied over an in-memory record
// store, preserving order and never mutating the input.
package query

import "strings"

// MatchAll is the sentinel value that deactivates a categorical filter.
const MatchAll = "全部"

// Predicate reports whether a single record matches one filter dimension.
type Predicate[T any] func(T) bool

// Project returns the ordered subsequence of records matching every
// predicate. With no predicates the input is returned unchanged.
func Project[T any](records []T, preds ...Predicate[T]) []T {
	if len(preds) == 0 {
		return records
	}

	out := make([]T, 0, len(records))
	for _, record := range records {
		if matchesAll(record, preds) {
			out = append(out, record)
		}
	}
	return out
}

func matchesAll[T any](record T, preds []Predicate[T]) bool {
	for _, pred := range preds {
		if !pred(record) {
			return false
		}
	}
	return true
}

// Text builds a free-text predicate: case-insensitive substring match
// against the designated fields, matching when ANY field contains the
// term. An empty term matches every record.
func Text[T any](term string, fields func(T) []string) Predicate[T] {
	lowered := strings.ToLower(strings.TrimSpace(term))
	return func(record T) bool {
		if lowered == "" {
			return true
		}
		for _, field := range fields(record) {
			if strings.Contains(strings.ToLower(field), lowered) {
				return true
			}
		}
		return false
	}
}

// Equal builds a categorical predicate: inactive (matches everything) when
// value is MatchAll, otherwise an exact equality check against key.
func Equal[T any](value string, key func(T) string) Predicate[T] {
	return func(record T) bool {
		if value == MatchAll || value == "" {
			return true
		}
		return key(record) == value
	}
}
