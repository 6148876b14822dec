// Package jsarray provides Array, an ordered key/value container that
// reproduces the JavaScript Array method set (map, filter, reduce, slice,
// splice, sort, …) with a per-instance choice between immutable and mutable
// behaviour.
//
// # Overview
//
//	evens := jsarray.From([]int{1, 2, 3, 4, 5}).
//	    Filter(jsarray.ValuePredicate(func(v any) bool { return v.(int)%2 == 0 }))
//	// → [2, 4], keys 0 and 1
//
// Keys are either non-negative integers or strings ([Key]); a label such as
// "7" is always the integer key 7. An Array whose keys are exactly 0..n-1
// in order is a list; anything else is associative. Filter,
// Slice, Flat and Sort always produce lists. Concat, Reverse and Splice
// re-index lists but keep the keys of associative arrays.
//
// # Immutability
//
// Arrays built with [From], [Of], [FromEntries] and [FromJSON] are immutable:
// every producing method returns a new Array and leaves the receiver
// unchanged. Arrays built with [Mutable] (or switched with
// [Array.ToMutable]) replace their own contents and return themselves:
//
//	m := jsarray.Mutable([]int{1, 2, 3})
//	m.Push(4, 5) == m // true
//
// Keys() and Values() always return a new immutable Array.
//
// # Absence is not an error
//
// Methods that find nothing return sentinels instead of errors: (nil, false)
// from At/First/Last/Find, -1 from IndexOf/LastIndexOf, IntKey(-1) or the nil
// key from FindIndex, nil from Reduce over an empty array without a seed.
// Errors are reserved for invalid property access, writes to immutable
// arrays, malformed JSON and unknown macros.
//
// # Callbacks
//
// Callbacks always receive (value, key, self). Adapters such as
// [ValueMapper] and [EntryPredicate] lift shorter functions.
//
// # JSON
//
// Arrays marshal to JSON arrays (lists) or insertion-ordered JSON objects,
// and [FromJSON] parses either back with the same keys. Whole-number floats
// are written as 1.0 so they stay floats.
package jsarray
