package jsarray

import (
	"slices"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Folding & iteration
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds the values left to right. Without initial the first value
// seeds the accumulator; reducing an empty array without a seed returns nil.
//
//	sum := jsarray.Of(1, 2, 3).Reduce(jsarray.ValueReducer(func(acc, v any) any {
//	    return acc.(int) + v.(int)
//	}))
func (a *Array) Reduce(fn Reducer, initial ...any) any {
	self := a.view()
	entries := self.entries
	var acc any
	if len(initial) > 0 {
		acc = initial[0]
	} else {
		if len(entries) == 0 {
			return nil
		}
		acc, entries = entries[0].Value, entries[1:]
	}
	for _, e := range entries {
		acc = fn(acc, e.Value, e.Key, self)
	}
	return acc
}

// ForEach calls fn for every entry in order.
func (a *Array) ForEach(fn Visitor) {
	self := a.view()
	for _, e := range self.entries {
		fn(e.Value, e.Key, self)
	}
}

// Some reports whether fn returns true for at least one entry.
func (a *Array) Some(fn Predicate) bool {
	self := a.view()
	for _, e := range self.entries {
		if fn(e.Value, e.Key, self) {
			return true
		}
	}
	return false
}

// Every reports whether fn returns true for all entries. It is true for an
// empty array.
func (a *Array) Every(fn Predicate) bool {
	self := a.view()
	for _, e := range self.entries {
		if !fn(e.Value, e.Key, self) {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first value for which fn returns true.
// Returns nil and false when nothing matches.
func (a *Array) Find(fn Predicate) (any, bool) {
	self := a.view()
	for _, e := range self.entries {
		if fn(e.Value, e.Key, self) {
			return e.Value, true
		}
	}
	return nil, false
}

// FindIndex returns the key of the first entry for which fn returns true.
//
// For lists the key is the position and IntKey(-1) signals no match. For
// associative arrays the original key is returned and the nil key signals no
// match.
func (a *Array) FindIndex(fn Predicate) Key {
	self := a.view()
	for _, e := range self.entries {
		if fn(e.Value, e.Key, self) {
			return e.Key
		}
	}
	if self.IsList() {
		return IntKey(-1)
	}
	return Key{}
}

// Includes reports whether value is present. Comparison is strict: values of
// different types are never equal.
func (a *Array) Includes(value any) bool {
	return a.IndexOf(value) >= 0
}

// IndexOf returns the position of the first value strictly equal to value,
// or -1. The search starts at fromIndex[0] when given; a negative start
// counts from the end.
func (a *Array) IndexOf(value any, fromIndex ...int) int {
	start := 0
	if len(fromIndex) > 0 {
		start = clampIndex(fromIndex[0], len(a.entries))
	}
	for i := start; i < len(a.entries); i++ {
		if strictEqual(a.entries[i].Value, value) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the position of the last value strictly equal to
// value, or -1. The backward scan starts at fromIndex[0] inclusive when
// given; a negative start counts from the end.
//
//	jsarray.Of(1, 2, 3, 2, 1).LastIndexOf(2, 2) // 1
func (a *Array) LastIndexOf(value any, fromIndex ...int) int {
	n := len(a.entries)
	start := n - 1
	if len(fromIndex) > 0 {
		start = fromIndex[0]
		if start < 0 {
			start += n
		}
		start = min(start, n-1)
	}
	for i := start; i >= 0; i-- {
		if strictEqual(a.entries[i].Value, value) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Positional access
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first value. Returns nil and false when a is empty.
func (a *Array) First() (any, bool) { return a.At(0) }

// Last returns the last value. Returns nil and false when a is empty.
func (a *Array) Last() (any, bool) { return a.At(-1) }

// At returns the value at position i. A negative i counts from the end.
// Returns nil and false when the position is out of range.
func (a *Array) At(i int) (any, bool) {
	n := len(a.entries)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return nil, false
	}
	return a.entries[i].Value, true
}

// Join stringifies the values and joins them with sep (default ",").
// nil renders as the empty string; nested arrays and slices are joined
// with ",". An array nested inside itself renders as the empty string.
func (a *Array) Join(sep ...string) string {
	s := ","
	if len(sep) > 0 {
		s = sep[0]
	}
	return a.join(s, nil)
}

func (a *Array) join(sep string, stack []*Array) string {
	if slices.Contains(stack, a) {
		return ""
	}
	stack = append(stack, a)
	parts := make([]string, len(a.entries))
	for i, e := range a.entries {
		parts[i] = stringify(e.Value, stack)
	}
	return strings.Join(parts, sep)
}
