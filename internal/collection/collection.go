// Package collection provides an in-memory stand-in for a query-backed
// dataset. A Collection is an ordered, fully materialized result set: the
// data behind it was fetched in full from the remote API before the
// Collection existed, so there is no query engine to delegate to. Only two
// operations change its contents: Search and Slice. The structural
// queryset methods (Filter, Exclude, OrderBy, ...) exist because the
// change-list machinery calls them, and every one is an identity no-op.
// Read the per-method comments before assuming any of them filters.
package collection

import (
	"fmt"
	"reflect"
	"strings"
)

// Collection wraps a materialized list of entities.
type Collection[T any] struct {
	items []T
}

// New wraps items in a Collection. The slice is not copied.
func New[T any](items []T) *Collection[T] {
	return &Collection[T]{items: items}
}

// Items returns the backing slice.
func (c *Collection[T]) Items() []T {
	return c.items
}

// Count returns the number of records.
func (c *Collection[T]) Count() int {
	return len(c.items)
}

// Exists reports whether the collection holds any record.
func (c *Collection[T]) Exists() bool {
	return len(c.items) > 0
}

// First returns the first record, if any.
func (c *Collection[T]) First() (T, bool) {
	if len(c.items) == 0 {
		var zero T
		return zero, false
	}
	return c.items[0], true
}

// Last returns the last record, if any.
func (c *Collection[T]) Last() (T, bool) {
	if len(c.items) == 0 {
		var zero T
		return zero, false
	}
	return c.items[len(c.items)-1], true
}

// Slice returns the half-open range [from, to) as a new Collection, not a
// bare slice, so pagination code can keep calling collection operations on
// the page. Out-of-range bounds are clamped.
func (c *Collection[T]) Slice(from, to int) *Collection[T] {
	if from < 0 {
		from = 0
	}
	if to > len(c.items) {
		to = len(c.items)
	}
	if from >= to {
		return New([]T{})
	}
	return New(c.items[from:to])
}

// Search returns the records where any of the given fields contains term,
// case-insensitively. A field is a dotted path ("user.first_name") resolved
// by successive attribute lookup on the record; a path segment that does not
// exist, or a nil link along the way, means "no match for this field" rather
// than an error. An empty term matches everything.
func (c *Collection[T]) Search(term string, fields []string) *Collection[T] {
	if term == "" {
		return c
	}
	needle := strings.ToLower(term)
	matched := make([]T, 0, len(c.items))
	for _, item := range c.items {
		for _, field := range fields {
			value, ok := fieldValue(item, field)
			if !ok {
				continue
			}
			if strings.Contains(strings.ToLower(fmt.Sprint(value)), needle) {
				matched = append(matched, item)
				break
			}
		}
	}
	return New(matched)
}

// Filter does not filter. The dataset is already fully materialized and any
// real narrowing happens on the raw slice before it is wrapped (see the
// change-list adapter); this method only satisfies the queryset surface.
func (c *Collection[T]) Filter(_ ...any) *Collection[T] { return c }

// Exclude does not exclude; identity, same rationale as Filter.
func (c *Collection[T]) Exclude(_ ...any) *Collection[T] { return c }

// OrderBy does not reorder. Ordering is whatever the remote API returned.
func (c *Collection[T]) OrderBy(_ ...string) *Collection[T] { return c }

// Distinct is identity: the materialized list is served as-is.
func (c *Collection[T]) Distinct() *Collection[T] { return c }

// SelectRelated is identity: related entities were embedded at fetch time.
func (c *Collection[T]) SelectRelated(_ ...string) *Collection[T] { return c }

// All returns the collection itself.
func (c *Collection[T]) All() *Collection[T] { return c }

// fieldValue walks a dotted path with reflection. Struct fields are matched
// by their snake_case form with underscores ignored, so "first_name" finds
// FirstName and "photo_url" finds PhotoURL. Pointers are dereferenced along
// the way; a nil pointer or missing field short-circuits to no value.
func fieldValue(item any, path string) (any, bool) {
	v := reflect.ValueOf(item)
	for _, segment := range strings.Split(path, ".") {
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return nil, false
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return nil, false
		}
		target := strings.ReplaceAll(strings.ToLower(segment), "_", "")
		v = v.FieldByNameFunc(func(name string) bool {
			return strings.ToLower(name) == target
		})
		if !v.IsValid() {
			return nil, false
		}
	}
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	return v.Interface(), true
}
