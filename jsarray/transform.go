package jsarray

import (
	"math"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map transforms every value with fn. Keys are preserved.
func (a *Array) Map(fn Mapper) *Array {
	self := a.view()
	b := newBuilder(len(self.entries))
	for _, e := range self.entries {
		b.set(e.Key, fn(e.Value, e.Key, self))
	}
	return a.produce(b)
}

// Filter keeps the values for which fn returns true. The result is always
// re-indexed 0..k-1 in the original relative order.
func (a *Array) Filter(fn Predicate) *Array {
	self := a.view()
	kept := make([]any, 0, len(self.entries))
	for _, e := range self.entries {
		if fn(e.Value, e.Key, self) {
			kept = append(kept, e.Value)
		}
	}
	return a.produce(listOf(kept))
}

// Flat unwraps nested arrays and slices up to depth levels and re-indexes the
// result. Without an argument every level is unwrapped. A depth of zero or
// less returns a copy. An array nested inside itself is kept as a value
// rather than unwrapped again.
//
//	jsarray.Of(1, []any{2, []any{3}}).Flat(1) // [1, 2, [3]]
func (a *Array) Flat(depth ...int) *Array {
	d := math.MaxInt
	if len(depth) > 0 {
		d = depth[0]
	}
	if d <= 0 {
		return a.produce(builderFrom(a.entries))
	}
	out := make([]any, 0, len(a.entries))
	stack := []*Array{a}
	for _, e := range a.entries {
		out = flatten(out, e.Value, d, stack)
	}
	return a.produce(listOf(out))
}

// flatten appends v to out, unwrapping up to depth levels. An array already
// on stack is one of its own ancestors and is appended as is.
func flatten(out []any, v any, depth int, stack []*Array) []any {
	if depth <= 0 {
		return append(out, v)
	}
	if inner, ok := v.(*Array); ok {
		if slices.Contains(stack, inner) {
			return append(out, v)
		}
		stack = append(stack, inner)
	}
	vals, ok := nested(v)
	if !ok {
		return append(out, v)
	}
	for _, item := range vals {
		out = flatten(out, item, depth-1, stack)
	}
	return out
}

// FlatMap is Map followed by Flat(1).
func (a *Array) FlatMap(fn Mapper) *Array {
	return a.Map(fn).Flat(1)
}

// Concat joins other arrays, slices and plain values onto a.
//
// A list receiver appends the values of every argument (arrays and slices are
// spread one level) and re-indexes. An associative receiver merges by key:
// later keys overwrite earlier ones in place, and plain values are appended
// under the next integer key.
func (a *Array) Concat(others ...any) *Array {
	if a.IsList() {
		out := a.values()
		for _, o := range others {
			if vals, ok := nested(o); ok {
				out = append(out, vals...)
				continue
			}
			out = append(out, o)
		}
		return a.produce(listOf(out))
	}
	b := builderFrom(a.entries)
	for _, o := range others {
		if other, ok := o.(*Array); ok && other != nil {
			for _, e := range other.entries {
				b.set(e.Key, e.Value)
			}
			continue
		}
		if vals, ok := nested(o); ok {
			for i, v := range vals {
				b.set(IntKey(i), v)
			}
			continue
		}
		b.push(o)
	}
	return a.produce(b)
}

// Reverse reverses the order of the entries. Lists are re-indexed;
// associative arrays keep each key with its value.
func (a *Array) Reverse() *Array {
	if a.IsList() {
		vals := a.values()
		slices.Reverse(vals)
		return a.produce(listOf(vals))
	}
	entries := slices.Clone(a.entries)
	slices.Reverse(entries)
	return a.produce(builderFrom(entries))
}

// Sort orders the values with cmp, or in ascending value order when cmp is
// omitted (nil < bools < numbers < strings < anything else). The sort is
// stable and the result is always re-indexed.
func (a *Array) Sort(cmp ...Comparator) *Array {
	less := compareValues
	if len(cmp) > 0 && cmp[0] != nil {
		less = cmp[0]
	}
	vals := a.values()
	slices.SortStableFunc(vals, less)
	return a.produce(listOf(vals))
}

// Keys returns a new immutable list of the keys as plain int or string
// values, regardless of the receiver's mode.
func (a *Array) Keys() *Array {
	keys := make([]any, len(a.entries))
	for i, e := range a.entries {
		keys[i] = e.Key.Value()
	}
	return listOf(keys).array(false)
}

// Values returns a new immutable list of the values, regardless of the
// receiver's mode.
func (a *Array) Values() *Array {
	return listOf(a.values()).array(false)
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove
// ─────────────────────────────────────────────────────────────────────────────

// Push appends values in argument order under the next integer keys.
func (a *Array) Push(values ...any) *Array {
	b := builderFrom(a.entries)
	for _, v := range values {
		b.push(v)
	}
	return a.produce(b)
}

// Unshift prepends values in argument order. Integer keys are renumbered
// after the new values; string keys are kept.
func (a *Array) Unshift(values ...any) *Array {
	b := newBuilder(len(values) + len(a.entries))
	for _, v := range values {
		b.push(v)
	}
	for _, e := range a.entries {
		if e.Key.IsInt() {
			b.push(e.Value)
			continue
		}
		b.set(e.Key, e.Value)
	}
	return a.produce(b)
}

// Pop removes the last entry and returns its value together with the
// remaining array. On an empty array it returns nil, an empty array and
// false.
func (a *Array) Pop() (any, *Array, bool) {
	n := len(a.entries)
	if n == 0 {
		return nil, a.produce(newBuilder(0)), false
	}
	last := a.entries[n-1].Value
	return last, a.produce(builderFrom(a.entries[:n-1])), true
}

// Shift removes the first entry and returns its value together with the
// remaining array, re-indexed when a is a list. On an empty array it
// returns nil, an empty array and false.
func (a *Array) Shift() (any, *Array, bool) {
	if len(a.entries) == 0 {
		return nil, a.produce(newBuilder(0)), false
	}
	first := a.entries[0].Value
	if a.IsList() {
		return first, a.produce(listOf(a.values()[1:])), true
	}
	return first, a.produce(builderFrom(a.entries[1:])), true
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// clampIndex resolves a negative position against n and clamps to [0, n].
func clampIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}

// Slice returns the entries at positions [start, end) as a re-indexed list.
// Negative positions count from the end; end defaults to the length.
func (a *Array) Slice(start int, end ...int) *Array {
	n := len(a.entries)
	s, e := clampIndex(start, n), n
	if len(end) > 0 {
		e = clampIndex(end[0], n)
	}
	if s >= e {
		return a.produce(newBuilder(0))
	}
	vals := make([]any, 0, e-s)
	for _, entry := range a.entries[s:e] {
		vals = append(vals, entry.Value)
	}
	return a.produce(listOf(vals))
}

// Splice removes deleteCount entries starting at start and inserts the
// given values in their place. A negative start counts from the end;
// deleteCount is clamped to the entries available.
//
// For lists both results are re-indexed. For associative arrays the deleted
// view and the retained entries keep their keys, and inserted values get
// integer keys after the largest existing one.
//
// deleted is always a new immutable array; array follows the receiver's mode.
func (a *Array) Splice(start, deleteCount int, insert ...any) (deleted, array *Array) {
	n := len(a.entries)
	s := clampIndex(start, n)
	deleteCount = min(max(deleteCount, 0), n-s)
	return a.splice(s, deleteCount, insert)
}

// SpliceRest removes every entry from start to the end, like Splice with
// the delete count omitted.
func (a *Array) SpliceRest(start int) (deleted, array *Array) {
	n := len(a.entries)
	s := clampIndex(start, n)
	return a.splice(s, n-s, nil)
}

func (a *Array) splice(s, count int, insert []any) (*Array, *Array) {
	removed := a.entries[s : s+count]
	tail := a.entries[s+count:]
	if a.IsList() {
		vals := make([]any, 0, len(a.entries)-count+len(insert))
		for _, e := range a.entries[:s] {
			vals = append(vals, e.Value)
		}
		vals = append(vals, insert...)
		for _, e := range tail {
			vals = append(vals, e.Value)
		}
		deleted := make([]any, len(removed))
		for i, e := range removed {
			deleted[i] = e.Value
		}
		return listOf(deleted).array(false), a.produce(listOf(vals))
	}
	deleted := builderFrom(removed).array(false)
	b := newBuilder(len(a.entries) - count + len(insert))
	b.next = builderFrom(a.entries).next
	for _, e := range a.entries[:s] {
		b.set(e.Key, e.Value)
	}
	for _, v := range insert {
		b.push(v)
	}
	for _, e := range tail {
		b.set(e.Key, e.Value)
	}
	return deleted, a.produce(b)
}
