package jsarray

// This file contains the callback types accepted by Array methods and
// adapters for the shorter call-site forms.
//
// Every callback type carries the full (value, key, self) signature; nothing
// inspects a function's parameter count at run time. Callers either write the
// full form and ignore what they do not need:
//
//	a.Map(func(v any, _ jsarray.Key, _ *jsarray.Array) any { return v.(int) * 2 })
//
// or lift a shorter function with an adapter:
//
//	a.Map(jsarray.ValueMapper(func(v any) any { return v.(int) * 2 }))
//
// self is the receiver for immutable arrays and an immutable snapshot for
// mutable ones.

// Mapper transforms a value.
type Mapper func(value any, key Key, self *Array) any

// Predicate tests a value.
type Predicate func(value any, key Key, self *Array) bool

// Visitor is called for side effects.
type Visitor func(value any, key Key, self *Array)

// Reducer folds a value into the accumulator.
type Reducer func(acc, value any, key Key, self *Array) any

// Comparator orders two values: negative when a sorts before b, positive
// when after, zero when equal.
type Comparator func(a, b any) int

// ValueMapper lifts a value-only function into a [Mapper].
func ValueMapper(fn func(value any) any) Mapper {
	return func(v any, _ Key, _ *Array) any { return fn(v) }
}

// EntryMapper lifts a (value, key) function into a [Mapper].
func EntryMapper(fn func(value any, key Key) any) Mapper {
	return func(v any, k Key, _ *Array) any { return fn(v, k) }
}

// ValuePredicate lifts a value-only function into a [Predicate].
func ValuePredicate(fn func(value any) bool) Predicate {
	return func(v any, _ Key, _ *Array) bool { return fn(v) }
}

// EntryPredicate lifts a (value, key) function into a [Predicate].
func EntryPredicate(fn func(value any, key Key) bool) Predicate {
	return func(v any, k Key, _ *Array) bool { return fn(v, k) }
}

// ValueVisitor lifts a value-only function into a [Visitor].
func ValueVisitor(fn func(value any)) Visitor {
	return func(v any, _ Key, _ *Array) { fn(v) }
}

// EntryVisitor lifts a (value, key) function into a [Visitor].
func EntryVisitor(fn func(value any, key Key)) Visitor {
	return func(v any, k Key, _ *Array) { fn(v, k) }
}

// ValueReducer lifts an (acc, value) function into a [Reducer].
func ValueReducer(fn func(acc, value any) any) Reducer {
	return func(acc, v any, _ Key, _ *Array) any { return fn(acc, v) }
}

// ValuesOf returns the values of a as a []T. The second result is false
// when any value is not a T.
//
//	ns, ok := jsarray.ValuesOf[int](jsarray.Of(1, 2, 3)) // [1 2 3], true
func ValuesOf[T any](a *Array) ([]T, bool) {
	out := make([]T, 0, len(a.entries))
	for _, e := range a.entries {
		v, ok := e.Value.(T)
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}
