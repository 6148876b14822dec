package jsarray

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// strictEqual mirrors ===: no coercion between types. Arrays compare by
// identity, other uncomparable values by deep equality.
func strictEqual(x, y any) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	if xa, ok := x.(*Array); ok {
		ya, ok := y.(*Array)
		return ok && xa == ya
	}
	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	if vx.Type() != vy.Type() {
		return false
	}
	if vx.Comparable() && vy.Comparable() {
		return x == y
	}
	return reflect.DeepEqual(x, y)
}

const (
	rankNil = iota
	rankBool
	rankNumber
	rankString
	rankOther
)

func rank(v any) int {
	if v == nil {
		return rankNil
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool:
		return rankBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return rankNumber
	case reflect.String:
		return rankString
	}
	return rankOther
}

// compareValues is the default sort order: nil < bools < numbers < strings <
// everything else. Numbers compare numerically across kinds; the rest by
// their fmt.Sprint form.
func compareValues(x, y any) int {
	rx, ry := rank(x), rank(y)
	if rx != ry {
		return cmp.Compare(rx, ry)
	}
	switch rx {
	case rankNil:
		return 0
	case rankBool:
		bx, by := reflect.ValueOf(x).Bool(), reflect.ValueOf(y).Bool()
		switch {
		case bx == by:
			return 0
		case by:
			return -1
		}
		return 1
	case rankNumber:
		return compareNumbers(reflect.ValueOf(x), reflect.ValueOf(y))
	case rankString:
		return cmp.Compare(reflect.ValueOf(x).String(), reflect.ValueOf(y).String())
	}
	return cmp.Compare(fmt.Sprint(x), fmt.Sprint(y))
}

// compareNumbers compares across numeric kinds without going through
// float64 when both sides are integers, and compares integers against
// floats exactly.
func compareNumbers(x, y reflect.Value) int {
	switch {
	case x.CanInt() && y.CanInt():
		return cmp.Compare(x.Int(), y.Int())
	case x.CanUint() && y.CanUint():
		return cmp.Compare(x.Uint(), y.Uint())
	case x.CanInt() && y.CanUint():
		return compareIntUint(x.Int(), y.Uint())
	case x.CanUint() && y.CanInt():
		return -compareIntUint(y.Int(), x.Uint())
	case x.CanFloat() && y.CanFloat():
		return cmp.Compare(x.Float(), y.Float())
	case x.CanFloat():
		return -compareIntegerFloat(y, x.Float())
	}
	return compareIntegerFloat(x, y.Float())
}

func compareIntUint(i int64, u uint64) int {
	if i < 0 {
		return -1
	}
	return cmp.Compare(uint64(i), u)
}

// compareIntegerFloat compares an int or uint value with f. NaN sorts
// before every number, as with [cmp.Compare].
func compareIntegerFloat(v reflect.Value, f float64) int {
	switch {
	case math.IsNaN(f):
		return 1
	case math.IsInf(f, 1):
		return -1
	case math.IsInf(f, -1):
		return 1
	}
	whole, frac := math.Modf(f)
	var c int
	if v.CanInt() {
		switch {
		case whole < -(1 << 63):
			return 1
		case whole >= 1<<63:
			return -1
		}
		c = cmp.Compare(v.Int(), int64(whole))
	} else {
		switch {
		case whole < 0:
			return 1
		case whole >= 1<<64:
			return -1
		}
		c = cmp.Compare(v.Uint(), uint64(whole))
	}
	if c != 0 {
		return c
	}
	return cmp.Compare(0, frac)
}

// stringify renders a value for Join: nil is empty, nested sequences are
// joined with ",". stack holds the arrays being joined; an array that
// contains itself renders as "" at the repeat.
func stringify(v any, stack []*Array) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case *Array:
		if t == nil {
			return ""
		}
		return t.join(",", stack)
	}
	if vals, ok := nested(v); ok {
		parts := make([]string, len(vals))
		for i, e := range vals {
			parts[i] = stringify(e, stack)
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v)
}

// nested returns the elements of a value that Flat unwraps: arrays and
// slices or arrays of any element type except bytes.
func nested(v any) ([]any, bool) {
	switch t := v.(type) {
	case nil, []byte:
		return nil, false
	case *Array:
		if t == nil {
			return nil, false
		}
		return t.values(), true
	case []any:
		return t, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
