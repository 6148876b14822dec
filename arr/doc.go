// Package arr provides Laravel Arr-style helpers for nested
// [jsarray.Array] values: dot-notation access and a few whole-array
// reshaping functions.
//
// # Dot-notation access
//
// A dot path walks nested arrays one key per segment. Segments that are
// canonical integers ("0", "12") address integer keys, everything else
// addresses string keys (see [jsarray.StringKey]):
//
//	a, _ := jsarray.FromJSON([]byte(`{"user": {"name": "Alice", "tags": ["a", "b"]}}`))
//	arr.Get(a, "user.name")          // → "Alice"
//	arr.Get(a, "user.tags.1")        // → "b"
//	arr.Has(a, "user.email")         // → false
//	a = arr.Set(a, "user.email", "alice@example.com")
//	flat := arr.Dot(a)               // → {"user.name": "Alice", "user.tags.0": "a", …}
//
// Set and Forget follow the array's mode: a mutable array is changed in place
// and returned, an immutable one yields a new array.
package arr
