package jsarray_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-jsarray/internal/testutil"
	"github.com/hasbyte1/go-jsarray/jsarray"
)

func TestFromJSON_Golden(t *testing.T) {
	for _, tc := range testutil.LoadTestCases(t, "testdata/json") {
		t.Run(tc.Name, func(t *testing.T) {
			tc.Run(t, func(input []byte) (map[string][]byte, error) {
				a, err := jsarray.FromJSON(input)
				if err != nil {
					return nil, err
				}
				out := map[string][]byte{"join.txt": []byte(a.Join())}
				for name, derived := range map[string]*jsarray.Array{
					"to_json.json": a,
					"keys.json":    a.Keys(),
					"reverse.json": a.Reverse(),
					"sort.json":    a.Sort(),
					"flat.json":    a.Flat(),
				} {
					b, err := derived.ToJSON()
					if err != nil {
						return nil, err
					}
					out[name] = b
				}
				return out, nil
			})
		})
	}
}

func TestFromJSON_Malformed(t *testing.T) {
	for name, input := range map[string]string{
		"empty":          ``,
		"syntax":         `[1, 2`,
		"trailing comma": `[1,]`,
		"scalar":         `42`,
		"string":         `"text"`,
		"trailing data":  `[1] [2]`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := jsarray.FromJSON([]byte(input))
			require.ErrorIs(t, err, jsarray.ErrMalformedInput)
		})
	}
}

func TestFromJSON_ObjectKeys(t *testing.T) {
	a, err := jsarray.FromJSON([]byte(`{"a": 1, "b": {"c": [true]}}`))
	require.NoError(t, err)
	assert.False(t, a.IsMutable())
	assert.False(t, a.IsList())

	v, ok := a.Get(jsarray.StringKey("a"))
	require.True(t, ok)
	assert.Equal(t, 1, v)

	inner, ok := a.Get(jsarray.StringKey("b"))
	require.True(t, ok)
	require.IsType(t, &jsarray.Array{}, inner)
	c, ok := inner.(*jsarray.Array).Get(jsarray.StringKey("c"))
	require.True(t, ok)
	assert.Equal(t, []any{true}, c.(*jsarray.Array).ToSlice())
}

func TestJSONRoundTrip(t *testing.T) {
	for name, a := range map[string]*jsarray.Array{
		"list":   jsarray.Of(1, "two", 3.5, true, nil),
		"object": assoc("x", 1, "y", "z"),
		"nested": jsarray.Of(jsarray.Of(1, 2), assoc("k", jsarray.Of("v"))),
		"empty":  jsarray.Empty(),
	} {
		t.Run(name, func(t *testing.T) {
			b, err := a.ToJSON()
			require.NoError(t, err)
			back, err := jsarray.FromJSON(b)
			require.NoError(t, err)
			if diff := cmp.Diff(a.String(), back.String()); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
			assert.True(t, a.Equal(back), "got %s", back)
		})
	}
}

func TestJSONRoundTrip_WholeFloats(t *testing.T) {
	a := jsarray.From([]float64{1, 2.5, -4, 1e21})

	b, err := a.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `[1.0,2.5,-4.0,1e+21]`, string(b))

	back, err := jsarray.FromJSON(b)
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, 2.5, -4.0, 1e21}, back.ToSlice())
	assert.True(t, a.Equal(back), "got %s", back)

	mixed, err := jsarray.FromJSON([]byte(`[1, 1.0]`))
	require.NoError(t, err)
	assert.Equal(t, []any{1, 1.0}, mixed.ToSlice())
}

func TestJSONRoundTrip_Keys(t *testing.T) {
	reopened := jsarray.Mutable([]string{"a", "b", "c"})
	require.NoError(t, reopened.Unset(jsarray.IntKey(0)))
	require.NoError(t, reopened.Set(jsarray.IntKey(0), "z"))

	for name, a := range map[string]*jsarray.Array{
		"numeric label":   jsarray.FromEntries(jsarray.Entry{Key: jsarray.StringKey("7"), Value: 1}),
		"negative key":    jsarray.FromEntries(jsarray.Entry{Key: jsarray.IntKey(-3), Value: 1}),
		"concat slice":    jsarray.FromEntries(jsarray.Entry{Key: jsarray.IntKey(1), Value: "b"}).Concat([]any{"c"}),
		"set after unset": reopened,
		"sparse":          jsarray.FromEntries(jsarray.Entry{Key: jsarray.IntKey(4), Value: "x"}),
	} {
		t.Run(name, func(t *testing.T) {
			b, err := a.ToJSON()
			require.NoError(t, err)
			back, err := jsarray.FromJSON(b)
			require.NoError(t, err)
			assert.Equal(t, keysOf(a), keysOf(back), string(b))
			assert.True(t, a.Equal(back), "got %s from %s", back, b)
		})
	}
}

func TestToJSON_Cycle(t *testing.T) {
	m := jsarray.Mutable([]int{1})
	m.Push(m)

	_, err := m.ToJSON()
	assert.ErrorIs(t, err, jsarray.ErrCyclicValue)
	assert.Equal(t, "[1,]", m.String())

	shared := jsarray.Of(1)
	b, err := jsarray.Of(shared, shared).ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `[[1],[1]]`, string(b))
}

func TestMarshalJSON_Embedded(t *testing.T) {
	type doc struct {
		Tags *jsarray.Array `json:"tags"`
	}
	b, err := json.Marshal(doc{Tags: assoc("z", 1, "a", 2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tags":{"z":1,"a":2}}`, string(b))
	assert.Equal(t, `{"tags":{"z":1,"a":2}}`, string(b))

	var got doc
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, []any{"z", "a"}, got.Tags.Keys().ToSlice())
}

func TestUnmarshalJSON_KeepsMode(t *testing.T) {
	m := jsarray.Mutable([]int{9})
	require.NoError(t, json.Unmarshal([]byte(`[1,2]`), m))
	assert.True(t, m.IsMutable())
	assert.Equal(t, []any{1, 2}, m.ToSlice())

	err := json.Unmarshal([]byte(`7`), m)
	assert.ErrorIs(t, err, jsarray.ErrMalformedInput)
}

func TestString(t *testing.T) {
	assert.Equal(t, `[1,2,3]`, jsarray.Of(1, 2, 3).String())
	assert.Equal(t, `{"a":[1]}`, assoc("a", jsarray.Of(1)).String())
}
