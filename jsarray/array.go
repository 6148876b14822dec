package jsarray

import (
	"reflect"
	"slices"
)

// Array is an ordered mapping from [Key] to arbitrary values that offers the
// JavaScript Array method set.
//
// Each Array is either immutable or mutable, fixed at construction:
//
//   - immutable: every producing method (Map, Filter, Push, Sort, …) returns a
//     new immutable Array and leaves the receiver untouched;
//   - mutable: the same methods replace the receiver's contents and return
//     the receiver itself.
//
// Keys() and Values() always return a new immutable Array.
//
// # Creating an array
//
//	a := jsarray.From([]int{1, 2, 3})
//	a := jsarray.Of(1, "two", 3.0)
//	a := jsarray.FromEntries(jsarray.Entry{Key: jsarray.StringKey("a"), Value: 1})
//	m := jsarray.Mutable([]string{"x", "y"})
//
// # Lists and associative arrays
//
// An Array whose keys are exactly 0..n-1 in order is a list (see
// [Array.IsList]). Several methods re-index lists after they change them and
// preserve the keys of associative arrays, mirroring the difference between
// JavaScript arrays and plain objects.
//
// An Array is meant for single-owner use; mutable arrays must not be shared
// between goroutines without external locking.
type Array struct {
	entries []Entry
	index   map[Key]int
	mutable bool
	cursor  int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an Array from entries with an explicit mutability flag.
//
// Keys are kept in the given order; the result is a list only when they
// already read 0..n-1. A repeated key overwrites the earlier value but keeps
// its position. Entries with the nil key are appended under the next integer
// key.
func New(entries []Entry, mutable bool) *Array {
	return builderFrom(entries).array(mutable)
}

// From creates an immutable list from a slice (the slice is copied).
func From[T any](items []T) *Array {
	return listOf(toAny(items)).array(false)
}

// FromEntries creates an immutable Array from key/value pairs.
func FromEntries(entries ...Entry) *Array { return New(entries, false) }

// FromMap creates an immutable Array from a Go map. Go maps are unordered,
// so entries are inserted in key order: integer keys ascending, then string
// keys ascending. Labels go through [StringKey].
func FromMap[V any](m map[string]V) *Array {
	keys := make([]Key, 0, len(m))
	for label := range m {
		keys = append(keys, StringKey(label))
	}
	slices.SortFunc(keys, compareKeys)
	b := newBuilder(len(m))
	for _, k := range keys {
		b.set(k, m[k.String()])
	}
	return b.array(false)
}

// Of creates an immutable list over the given values.
func Of(values ...any) *Array { return From(values) }

// Empty creates an empty immutable Array.
func Empty() *Array { return newBuilder(0).array(false) }

// Mutable creates a mutable list from a slice (the slice is copied).
func Mutable[T any](items []T) *Array {
	return listOf(toAny(items)).array(true)
}

// MutableEntries creates a mutable Array from key/value pairs, keyed the
// same way as [New].
func MutableEntries(entries ...Entry) *Array { return New(entries, true) }

func toAny[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Mode
// ─────────────────────────────────────────────────────────────────────────────

// IsMutable reports whether producing methods modify the receiver.
func (a *Array) IsMutable() bool { return a.mutable }

// ToImmutable returns an immutable copy. The receiver is not changed.
func (a *Array) ToImmutable() *Array { return a.copyWith(false) }

// ToMutable switches the receiver itself to mutable mode and returns it.
// Unlike [Array.MutableCopy] this does not copy.
func (a *Array) ToMutable() *Array {
	a.mutable = true
	return a
}

// MutableCopy returns a mutable copy. The receiver is not changed.
func (a *Array) MutableCopy() *Array { return a.copyWith(true) }

// ImmutableCopy returns an immutable copy. The receiver is not changed.
func (a *Array) ImmutableCopy() *Array { return a.copyWith(false) }

func (a *Array) copyWith(mutable bool) *Array {
	return builderFrom(a.entries).array(mutable)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Length returns the number of entries.
func (a *Array) Length() int { return len(a.entries) }

// Count is an alias for [Array.Length].
func (a *Array) Count() int { return len(a.entries) }

// IsEmpty reports whether the array has no entries.
func (a *Array) IsEmpty() bool { return len(a.entries) == 0 }

// IsList reports whether the keys are exactly 0..n-1 in iteration order.
// It is evaluated on every call; mutation can change the answer.
func (a *Array) IsList() bool {
	for i, e := range a.entries {
		if e.Key.kind != kindInt || e.Key.i != i {
			return false
		}
	}
	return true
}

// ToArray returns a copy of the underlying entries in order.
func (a *Array) ToArray() []Entry {
	return slices.Clone(a.entries)
}

// ToSlice returns the values in order, discarding keys.
func (a *Array) ToSlice() []any { return a.values() }

// ToMap returns the entries as a Go map keyed by [Key.String]. Order is
// lost.
func (a *Array) ToMap() map[string]any {
	out := make(map[string]any, len(a.entries))
	for _, e := range a.entries {
		out[e.Key.String()] = e.Value
	}
	return out
}

// Equal reports whether a and other hold the same keys in the same order
// with deeply equal values. Nested arrays are compared with Equal; the
// mutability flag is ignored.
func (a *Array) Equal(other *Array) bool {
	if a == other {
		return true
	}
	if a == nil || other == nil || len(a.entries) != len(other.entries) {
		return false
	}
	for i, e := range a.entries {
		o := other.entries[i]
		if e.Key != o.Key || !deepEqual(e.Value, o.Value) {
			return false
		}
	}
	return true
}

func deepEqual(x, y any) bool {
	xa, xok := x.(*Array)
	ya, yok := y.(*Array)
	if xok || yok {
		return xok && yok && xa.Equal(ya)
	}
	return reflect.DeepEqual(x, y)
}

// Tap calls fn(a) for side effects and returns a unchanged.
func (a *Array) Tap(fn func(*Array)) *Array {
	fn(a)
	return a
}

// When calls fn(a) if condition is true and returns the result.
// Otherwise returns a unchanged.
func (a *Array) When(condition bool, fn func(*Array) *Array) *Array {
	if condition {
		return fn(a)
	}
	return a
}

// String returns the JSON projection of the array. When the array cannot
// be encoded (a cycle, an unsupported value) it falls back to the
// bracketed [Array.Join] form. It implements [fmt.Stringer].
func (a *Array) String() string {
	b, err := a.ToJSON()
	if err != nil {
		return "[" + a.Join() + "]"
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Internals
// ─────────────────────────────────────────────────────────────────────────────

// produce applies the mutability rule to a freshly computed result.
func (a *Array) produce(b *builder) *Array {
	if a.mutable {
		a.entries, a.index = b.entries, b.index
		return a
	}
	return b.array(false)
}

// view is the read-only reference handed to callbacks. Mutable receivers
// pass a snapshot so callbacks never observe a replacement in progress.
func (a *Array) view() *Array {
	if a.mutable {
		return a.ImmutableCopy()
	}
	return a
}

func (a *Array) values() []any {
	out := make([]any, len(a.entries))
	for i, e := range a.entries {
		out[i] = e.Value
	}
	return out
}

// builder accumulates ordered entries with unique keys.
type builder struct {
	entries []Entry
	index   map[Key]int
	next    int
}

func newBuilder(capacity int) *builder {
	return &builder{
		entries: make([]Entry, 0, capacity),
		index:   make(map[Key]int, capacity),
	}
}

func builderFrom(entries []Entry) *builder {
	b := newBuilder(len(entries))
	for _, e := range entries {
		b.set(e.Key, e.Value)
	}
	return b
}

func listOf(values []any) *builder {
	b := newBuilder(len(values))
	for _, v := range values {
		b.push(v)
	}
	return b
}

func (b *builder) set(k Key, v any) {
	if k.IsNil() {
		b.push(v)
		return
	}
	k = k.stored()
	if i, ok := b.index[k]; ok {
		b.entries[i].Value = v
		return
	}
	b.index[k] = len(b.entries)
	b.entries = append(b.entries, Entry{Key: k, Value: v})
	if k.kind == kindInt && k.i >= b.next {
		b.next = k.i + 1
	}
}

func (b *builder) push(v any) { b.set(IntKey(b.next), v) }

func (b *builder) array(mutable bool) *Array {
	return &Array{entries: b.entries, index: b.index, mutable: mutable}
}
