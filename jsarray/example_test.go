package jsarray_test

import (
	"fmt"

	"github.com/hasbyte1/go-jsarray/jsarray"
)

func ExampleFrom() {
	a := jsarray.From([]int{1, 2, 3, 4, 5})
	fmt.Println(a.Length(), a.IsList(), a.IsMutable())
	// Output: 5 true false
}

func ExampleArray_Filter() {
	evens := jsarray.From([]int{1, 2, 3, 4, 5}).
		Filter(jsarray.ValuePredicate(func(v any) bool { return v.(int)%2 == 0 }))
	fmt.Println(evens, evens.Keys())
	// Output: [2,4] [0,1]
}

func ExampleArray_FindIndex() {
	a := jsarray.FromEntries(
		jsarray.Entry{Key: jsarray.StringKey("a"), Value: 1},
		jsarray.Entry{Key: jsarray.StringKey("b"), Value: 2},
		jsarray.Entry{Key: jsarray.StringKey("c"), Value: 3},
	)
	fmt.Println(a.FindIndex(jsarray.ValuePredicate(func(v any) bool { return v == 2 })))
	// Output: b
}

func ExampleMutable() {
	m := jsarray.Mutable([]int{1, 2, 3})
	same := m.Push(4, 5) == m
	fmt.Println(same, m)
	// Output: true [1,2,3,4,5]
}

func ExampleArray_Flat() {
	fmt.Println(jsarray.Of(1, []any{2, 3}, 4).Flat())
	// Output: [1,2,3,4]
}

func ExampleArray_Reduce() {
	sum := jsarray.Of().Reduce(jsarray.ValueReducer(func(acc, v any) any {
		return acc.(int) + v.(int)
	}))
	fmt.Println(sum)
	// Output: <nil>
}

func ExampleArray_LastIndexOf() {
	fmt.Println(jsarray.Of(1, 2, 3, 2, 1).LastIndexOf(2, 2))
	// Output: 1
}

func ExampleArray_Splice() {
	deleted, rest := jsarray.Of("a", "b", "c", "d").Splice(1, 2, "x")
	fmt.Println(deleted, rest)
	// Output: ["b","c"] ["a","x","d"]
}

func ExampleFromJSON() {
	a, err := jsarray.FromJSON([]byte(`{"name": "ada", "langs": ["go", "js"]}`))
	if err != nil {
		panic(err)
	}
	for k, v := range a.All() {
		fmt.Printf("%s=%v\n", k, v)
	}
	// Output:
	// name=ada
	// langs=["go","js"]
}
