package arr

import (
	"strings"

	"github.com/hasbyte1/go-jsarray/jsarray"
)

// Dot flattens nested arrays into a single-level array whose keys are dot
// paths. Empty nested arrays are kept as values.
//
//	Dot({"a": {"b": 1}, "c": [2, 3]})
//	// → {"a.b": 1, "c.0": 2, "c.1": 3}
func Dot(a *jsarray.Array) *jsarray.Array {
	var entries []jsarray.Entry
	dotFlatten("", a, &entries)
	return jsarray.New(entries, false)
}

func dotFlatten(prefix string, a *jsarray.Array, out *[]jsarray.Entry) {
	for k, v := range a.All() {
		key := k.String()
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := v.(*jsarray.Array); ok && nested != nil && !nested.IsEmpty() {
			dotFlatten(key, nested, out)
			continue
		}
		*out = append(*out, jsarray.Entry{Key: jsarray.StringKey(key), Value: v})
	}
}

// Undot expands a single-level array with dot-path keys into nested arrays.
//
//	Undot({"a.b": 1, "a.c": 2})
//	// → {"a": {"b": 1, "c": 2}}
func Undot(a *jsarray.Array) *jsarray.Array {
	out := jsarray.Empty()
	for k, v := range a.All() {
		out = Set(out, k.String(), v)
	}
	return out
}

// Get retrieves a value using a dot path.
// Returns def[0] (or nil) when the path does not exist.
//
//	Get(a, "user.address.city")        // "London"
//	Get(a, "user.missing", "default")  // "default"
func Get(a *jsarray.Array, path string, def ...any) any {
	current := a
	segments := strings.Split(path, ".")
	for i, seg := range segments {
		val, ok := current.Get(jsarray.StringKey(seg))
		if !ok {
			break
		}
		if i == len(segments)-1 {
			return val
		}
		nested, ok := val.(*jsarray.Array)
		if !ok || nested == nil {
			break
		}
		current = nested
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Set writes value at the dot path, creating intermediate associative arrays
// as needed. A non-array value in the way is replaced.
//
//	a = Set(a, "user.address.postcode", "EC1")
func Set(a *jsarray.Array, path string, value any) *jsarray.Array {
	seg, rest, deeper := strings.Cut(path, ".")
	k := jsarray.StringKey(seg)
	if !deeper {
		return put(a, k, value)
	}
	child, _ := childArray(a, k)
	if child == nil {
		child = jsarray.Empty()
	}
	return put(a, k, Set(child, rest, value))
}

// put stores v under k following a's mode.
func put(a *jsarray.Array, k jsarray.Key, v any) *jsarray.Array {
	if a.IsMutable() {
		_ = a.Set(k, v) // cannot fail on a mutable array
		return a
	}
	m := a.MutableCopy()
	_ = m.Set(k, v)
	return m.ToImmutable()
}

func childArray(a *jsarray.Array, k jsarray.Key) (*jsarray.Array, bool) {
	v, ok := a.Get(k)
	if !ok {
		return nil, false
	}
	nested, ok := v.(*jsarray.Array)
	return nested, ok && nested != nil
}

// Has reports whether the dot path exists in a.
func Has(a *jsarray.Array, path string) bool {
	current := a
	segments := strings.Split(path, ".")
	for i, seg := range segments {
		k := jsarray.StringKey(seg)
		if i == len(segments)-1 {
			return current.Has(k)
		}
		nested, ok := childArray(current, k)
		if !ok {
			return false
		}
		current = nested
	}
	return false
}

// HasAll reports whether all dot paths exist in a.
func HasAll(a *jsarray.Array, paths ...string) bool {
	for _, path := range paths {
		if !Has(a, path) {
			return false
		}
	}
	return true
}

// HasAny reports whether any of the dot paths exist in a.
func HasAny(a *jsarray.Array, paths ...string) bool {
	for _, path := range paths {
		if Has(a, path) {
			return true
		}
	}
	return false
}

// Forget removes the value at the dot path. Intermediate arrays are kept
// even when they become empty. A missing path leaves a unchanged (an
// immutable a is still copied).
func Forget(a *jsarray.Array, path string) *jsarray.Array {
	seg, rest, deeper := strings.Cut(path, ".")
	k := jsarray.StringKey(seg)
	if !deeper {
		if a.IsMutable() {
			_ = a.Unset(k)
			return a
		}
		m := a.MutableCopy()
		_ = m.Unset(k)
		return m.ToImmutable()
	}
	child, ok := childArray(a, k)
	if !ok {
		if a.IsMutable() {
			return a
		}
		return a.ImmutableCopy()
	}
	return put(a, k, Forget(child, rest))
}

// Only returns a new immutable array holding only the given top-level keys,
// in a's order.
func Only(a *jsarray.Array, keys ...string) *jsarray.Array {
	keep := make(map[jsarray.Key]struct{}, len(keys))
	for _, k := range keys {
		keep[jsarray.StringKey(k)] = struct{}{}
	}
	return filterKeys(a, func(k jsarray.Key) bool {
		_, ok := keep[k]
		return ok
	})
}

// Except returns a new immutable array without the given top-level keys.
func Except(a *jsarray.Array, keys ...string) *jsarray.Array {
	drop := make(map[jsarray.Key]struct{}, len(keys))
	for _, k := range keys {
		drop[jsarray.StringKey(k)] = struct{}{}
	}
	return filterKeys(a, func(k jsarray.Key) bool {
		_, skip := drop[k]
		return !skip
	})
}

func filterKeys(a *jsarray.Array, keep func(jsarray.Key) bool) *jsarray.Array {
	entries := make([]jsarray.Entry, 0, a.Length())
	for k, v := range a.All() {
		if keep(k) {
			entries = append(entries, jsarray.Entry{Key: k, Value: v})
		}
	}
	return jsarray.New(entries, false)
}

// Merge returns a new immutable array with src merged into dst.
// Values in src overwrite values in dst for matching keys; nested arrays
// present on both sides are merged recursively.
func Merge(dst, src *jsarray.Array) *jsarray.Array {
	out := dst.MutableCopy()
	for k, srcVal := range src.All() {
		if dstChild, ok := childArray(out, k); ok {
			if srcChild, ok := srcVal.(*jsarray.Array); ok && srcChild != nil {
				_ = out.Set(k, Merge(dstChild, srcChild))
				continue
			}
		}
		_ = out.Set(k, srcVal)
	}
	return out.ToImmutable()
}
