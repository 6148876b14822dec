package jsarray

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
)

// MarshalJSON implements [json.Marshaler]. Lists encode as JSON arrays;
// every other array encodes as a JSON object whose members appear in
// insertion order. Nested arrays encode recursively, and an array that
// contains itself returns [ErrCyclicValue]. Whole-number floats keep a
// ".0" so they decode back to float64.
func (a *Array) MarshalJSON() ([]byte, error) {
	var e encoder
	if err := e.array(a); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

// encoder writes JSON and tracks the arrays currently being written.
type encoder struct {
	buf   bytes.Buffer
	stack []*Array
}

func (e *encoder) array(a *Array) error {
	if slices.Contains(e.stack, a) {
		return fmt.Errorf("%w: array contains itself", ErrCyclicValue)
	}
	e.stack = append(e.stack, a)
	defer func() { e.stack = e.stack[:len(e.stack)-1] }()

	if a.IsList() {
		e.buf.WriteByte('[')
		for i, entry := range a.entries {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			if err := e.value(entry.Value); err != nil {
				return err
			}
		}
		e.buf.WriteByte(']')
		return nil
	}
	e.buf.WriteByte('{')
	for i, entry := range a.entries {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		if err := e.value(entry.Key.String()); err != nil {
			return err
		}
		e.buf.WriteByte(':')
		if err := e.value(entry.Value); err != nil {
			return err
		}
	}
	e.buf.WriteByte('}')
	return nil
}

func (e *encoder) value(v any) error {
	switch t := v.(type) {
	case *Array:
		if t != nil {
			return e.array(t)
		}
	case []any:
		if t != nil {
			e.buf.WriteByte('[')
			for i, item := range t {
				if i > 0 {
					e.buf.WriteByte(',')
				}
				if err := e.value(item); err != nil {
					return err
				}
			}
			e.buf.WriteByte(']')
			return nil
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	e.buf.Write(b)
	switch v.(type) {
	case float64, float32:
		if !bytes.ContainsAny(b, ".eE") {
			e.buf.WriteString(".0")
		}
	}
	return nil
}

// ToJSON serialises the array to JSON.
func (a *Array) ToJSON() ([]byte, error) {
	return json.Marshal(a)
}

// FromJSON parses a JSON array or object into a new immutable Array.
//
// Object members keep their order; member names that are canonical integers
// become integer keys (see [StringKey]); other keys are kept as they are.
// Nested arrays and objects decode to nested immutable Arrays.
// Integer literals decode to int; literals with a fraction or exponent
// ("1.0", "2e3") decode to float64.
//
// Text that is not valid JSON, or whose top-level value is not an array or
// object, returns an error wrapping [ErrMalformedInput].
func FromJSON(data []byte) (*Array, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '[' && delim != '{' {
		return nil, fmt.Errorf("%w: top-level value must be an array or object", ErrMalformedInput)
	}
	a, err := decodeContainer(dec, delim)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrMalformedInput)
	}
	return a, nil
}

// UnmarshalJSON implements [json.Unmarshaler]. The receiver's contents are
// replaced; its mode is kept.
func (a *Array) UnmarshalJSON(data []byte) error {
	parsed, err := FromJSON(data)
	if err != nil {
		return err
	}
	a.entries, a.index, a.cursor = parsed.entries, parsed.index, 0
	return nil
}

func decodeContainer(dec *json.Decoder, delim json.Delim) (*Array, error) {
	b := newBuilder(0)
	for dec.More() {
		if delim == '[' {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			b.push(v)
			continue
		}
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		b.set(StringKey(name), v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return b.array(false), nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		inner, err := decodeContainer(dec, t)
		if err != nil {
			return nil, err
		}
		return inner, nil
	case json.Number:
		if i, err := t.Int64(); err == nil && int64(int(i)) == i {
			return int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return tok, nil
}
