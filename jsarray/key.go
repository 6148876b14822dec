package jsarray

import (
	"cmp"
	"fmt"
	"strconv"
)

type keyKind uint8

const (
	kindNil keyKind = iota
	kindInt
	kindString
)

// Key identifies an entry of an [Array]: either a non-negative integer
// index or a string label.
//
// The zero value is the nil key. It never identifies a stored entry and is
// returned by [Array.FindIndex] on associative arrays when nothing matches.
// Passing the nil key to [Array.Set] appends the value under the next
// integer key.
type Key struct {
	kind keyKind
	i    int
	s    string
}

// IntKey returns an integer key. Stored keys are non-negative: a negative
// i addresses the entry labelled with its decimal form, so IntKey(-3) and
// StringKey("-3") refer to the same entry. IntKey(-1) is also the "not
// found" result of [Array.FindIndex] on lists.
func IntKey(i int) Key { return Key{kind: kindInt, i: i} }

// StringKey returns a key for the label s. Canonical decimal integers ("0",
// "42") become integer keys, the way PHP and JSON object member names
// coerce; anything else ("042", "-1", "a") stays a string key. Every key
// therefore has exactly one textual form.
func StringKey(s string) Key {
	if n, ok := canonicalInt(s); ok {
		return IntKey(n)
	}
	return Key{kind: kindString, s: s}
}

// stored returns the form k is stored under.
func (k Key) stored() Key {
	if k.kind == kindInt && k.i < 0 {
		return Key{kind: kindString, s: strconv.Itoa(k.i)}
	}
	return k
}

func canonicalInt(s string) (int, bool) {
	if s == "" || len(s) > 1 && s[0] == '0' {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// compareKeys orders integer keys numerically before string keys.
func compareKeys(x, y Key) int {
	if x.kind != y.kind {
		return cmp.Compare(x.kind, y.kind)
	}
	if x.kind == kindInt {
		return cmp.Compare(x.i, y.i)
	}
	return cmp.Compare(x.s, y.s)
}

// IsNil reports whether k is the nil key.
func (k Key) IsNil() bool { return k.kind == kindNil }

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool { return k.kind == kindInt }

// Int returns the integer value of k and whether k is an integer key.
func (k Key) Int() (int, bool) { return k.i, k.kind == kindInt }

// Value returns the key as a plain Go value: an int, a string, or nil.
func (k Key) Value() any {
	switch k.kind {
	case kindInt:
		return k.i
	case kindString:
		return k.s
	}
	return nil
}

// String returns the textual form of the key. The nil key renders as "".
func (k Key) String() string {
	switch k.kind {
	case kindInt:
		return strconv.Itoa(k.i)
	case kindString:
		return k.s
	}
	return ""
}

// Entry is a single key/value pair of an [Array].
type Entry struct {
	Key   Key
	Value any
}

// String returns a human-readable representation: "key: value".
func (e Entry) String() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Value)
}
