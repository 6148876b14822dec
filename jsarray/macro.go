package jsarray

import (
	"fmt"
	"sync"
)

// MacroFunc is a named, reusable array operation. It receives an immutable
// view of the array and returns the produced array; a nil result leaves the
// contents unchanged.
type MacroFunc func(a *Array, args ...any) *Array

// macros is the package-wide registry behind [RegisterMacro].
var macros = macroSet{fns: make(map[string]MacroFunc)}

type macroSet struct {
	mu  sync.RWMutex
	fns map[string]MacroFunc
}

func (s *macroSet) lookup(name string) (MacroFunc, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn, ok := s.fns[name]
	return fn, ok
}

// RegisterMacro makes fn callable as a.Macro(name, ...). Registering an
// existing name replaces it; a nil fn removes it.
//
//	jsarray.RegisterMacro("evens", func(a *jsarray.Array, _ ...any) *jsarray.Array {
//	    return a.Filter(jsarray.ValuePredicate(func(v any) bool { return v.(int)%2 == 0 }))
//	})
//
//	jsarray.Of(1, 2, 3, 4).Macro("evens") // [2, 4]
func RegisterMacro(name string, fn MacroFunc) {
	macros.mu.Lock()
	defer macros.mu.Unlock()
	if fn == nil {
		delete(macros.fns, name)
		return
	}
	macros.fns[name] = fn
}

// HasMacro reports whether name is registered.
func HasMacro(name string) bool {
	_, ok := macros.lookup(name)
	return ok
}

// FlushMacros removes every registered macro.
func FlushMacros() {
	macros.mu.Lock()
	defer macros.mu.Unlock()
	clear(macros.fns)
}

// CallMacro runs the named macro on a. The result follows a's mode like any
// producing method: a mutable a takes the macro's result as its contents
// and is returned; an immutable a is left alone and the result comes back
// as a new immutable array.
//
// Unknown names return [ErrMacroNotFound].
func CallMacro(name string, a *Array, args ...any) (*Array, error) {
	fn, ok := macros.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	out := fn(a.view(), args...)
	if out == nil {
		out = a
	}
	return a.produce(builderFrom(out.entries)), nil
}

// Macro is the method form of [CallMacro].
func (a *Array) Macro(name string, args ...any) (*Array, error) {
	return CallMacro(name, a, args...)
}
