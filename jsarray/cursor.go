package jsarray

import (
	"fmt"
	"iter"
)

// Cursor is the external-iterator protocol satisfied by [*Array].
//
// A caller drives the loop:
//
//	for c.Rewind(); c.Valid(); c.Next() {
//	    fmt.Println(c.Key(), c.Current())
//	}
//
// Accept Cursor in your own functions so other ordered sources can be fed
// to [FromCursor].
type Cursor interface {
	// Current returns the value under the cursor, or nil when !Valid().
	Current() any

	// Key returns the key under the cursor, or the nil key when !Valid().
	Key() Key

	// Valid reports whether the cursor points at an entry.
	Valid() bool

	// Next advances the cursor.
	Next()

	// Rewind moves the cursor to the first entry.
	Rewind()
}

var _ Cursor = (*Array)(nil)

// FromCursor drains c from the start into a new immutable Array, keyed
// like [New].
func FromCursor(c Cursor) *Array {
	b := newBuilder(0)
	for c.Rewind(); c.Valid(); c.Next() {
		b.set(c.Key(), c.Current())
	}
	return b.array(false)
}

// Current implements [Cursor].
func (a *Array) Current() any {
	if !a.Valid() {
		return nil
	}
	return a.entries[a.cursor].Value
}

// Key implements [Cursor].
func (a *Array) Key() Key {
	if !a.Valid() {
		return Key{}
	}
	return a.entries[a.cursor].Key
}

// Valid implements [Cursor].
func (a *Array) Valid() bool { return a.cursor >= 0 && a.cursor < len(a.entries) }

// Next implements [Cursor].
func (a *Array) Next() { a.cursor++ }

// Rewind implements [Cursor].
func (a *Array) Rewind() { a.cursor = 0 }

// All returns an iterator over the entries in order, for use with range:
//
//	for k, v := range a.All() { ... }
func (a *Array) All() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		for _, e := range a.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// ValuesSeq returns an iterator over the values in order.
func (a *Array) ValuesSeq() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, e := range a.entries {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Keyed access
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value stored under k.
func (a *Array) Get(k Key) (any, bool) {
	i, ok := a.index[k.stored()]
	if !ok {
		return nil, false
	}
	return a.entries[i].Value, true
}

// Has reports whether an entry with key k exists.
func (a *Array) Has(k Key) bool {
	_, ok := a.index[k.stored()]
	return ok
}

// Set stores v under k in a mutable array. An existing key keeps its
// position; the nil key appends under the next integer key. Keys are not
// re-indexed. Immutable arrays return [ErrIllegalMutation].
func (a *Array) Set(k Key, v any) error {
	if !a.mutable {
		return fmt.Errorf("%w: set %q on an immutable array", ErrIllegalMutation, k)
	}
	if i, ok := a.index[k.stored()]; ok {
		a.entries[i].Value = v
		return nil
	}
	b := builderFrom(a.entries)
	b.set(k, v)
	a.entries, a.index = b.entries, b.index
	return nil
}

// Unset removes the entry with key k from a mutable array. Remaining keys
// are not re-indexed, so unsetting inside a list leaves an associative
// array. Immutable arrays return [ErrIllegalMutation].
func (a *Array) Unset(k Key) error {
	if !a.mutable {
		return fmt.Errorf("%w: unset %q on an immutable array", ErrIllegalMutation, k)
	}
	i, ok := a.index[k.stored()]
	if !ok {
		return nil
	}
	remaining := make([]Entry, 0, len(a.entries)-1)
	remaining = append(remaining, a.entries[:i]...)
	remaining = append(remaining, a.entries[i+1:]...)
	b := builderFrom(remaining)
	a.entries, a.index = b.entries, b.index
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Computed properties
// ─────────────────────────────────────────────────────────────────────────────

// Property reads a computed property by name: "length" or "isMutable".
// Any other name returns [ErrInvalidAccess].
func (a *Array) Property(name string) (any, error) {
	switch name {
	case "length":
		return a.Length(), nil
	case "isMutable":
		return a.mutable, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidAccess, name)
}

// SetProperty always returns [ErrIllegalMutation]: state only changes
// through the array's methods.
func (a *Array) SetProperty(name string, _ any) error {
	return fmt.Errorf("%w: cannot assign property %q", ErrIllegalMutation, name)
}
