package arr

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-jsarray/jsarray"
)

// Wrap returns value as an array: nil becomes an empty array, an array is
// returned as is, a slice becomes a list of its elements and anything else
// a single-element list.
func Wrap(value any) *jsarray.Array {
	switch v := value.(type) {
	case nil:
		return jsarray.Empty()
	case *jsarray.Array:
		if v == nil {
			return jsarray.Empty()
		}
		return v
	case []any:
		return jsarray.From(v)
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8 {
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return jsarray.From(items)
	}
	return jsarray.Of(value)
}

// Pluck returns a list holding the value at path for every nested array in
// a. Entries that are not arrays, or lack the path, yield nil.
//
//	Pluck([{"name": "a"}, {"name": "b"}], "name") // → ["a", "b"]
func Pluck(a *jsarray.Array, path string) *jsarray.Array {
	return a.Values().Map(jsarray.ValueMapper(func(v any) any {
		item, ok := v.(*jsarray.Array)
		if !ok || item == nil {
			return nil
		}
		return Get(item, path)
	}))
}

// KeyBy returns an associative array of the nested arrays in a, keyed by
// the value found at path. When several items share a key, the last one
// wins. Items without the path are skipped.
func KeyBy(a *jsarray.Array, path string) *jsarray.Array {
	entries := make([]jsarray.Entry, 0, a.Length())
	for _, v := range a.All() {
		item, ok := v.(*jsarray.Array)
		if !ok || item == nil || !Has(item, path) {
			continue
		}
		entries = append(entries, jsarray.Entry{Key: keyFor(Get(item, path)), Value: item})
	}
	return jsarray.New(entries, false)
}

// GroupBy groups the nested arrays in a by the value found at path. Each
// group is an immutable list; group order follows first appearance.
// Items without the path are skipped.
func GroupBy(a *jsarray.Array, path string) *jsarray.Array {
	var order []jsarray.Key
	groups := make(map[jsarray.Key][]any)
	for _, v := range a.All() {
		item, ok := v.(*jsarray.Array)
		if !ok || item == nil || !Has(item, path) {
			continue
		}
		k := keyFor(Get(item, path))
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], item)
	}
	entries := make([]jsarray.Entry, len(order))
	for i, k := range order {
		entries[i] = jsarray.Entry{Key: k, Value: jsarray.From(groups[k])}
	}
	return jsarray.New(entries, false)
}

// keyFor turns a value into an array key the way PHP coerces array keys.
func keyFor(v any) jsarray.Key {
	switch k := v.(type) {
	case int:
		if k >= 0 {
			return jsarray.IntKey(k)
		}
	case string:
		return jsarray.StringKey(k)
	case nil:
		return jsarray.StringKey("")
	}
	return jsarray.StringKey(fmt.Sprint(v))
}
