package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-lodash-utils/arr"
)

func ExampleFilter() {
	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
	fmt.Println(evens)
	// Output: [2 4]
}

func ExampleMap() {
	doubled := arr.Map([]int{1, 2, 3}, func(n, _ int) int { return n * 2 })
	fmt.Println(doubled)
	// Output: [2 4 6]
}

func ExampleTake() {
	fmt.Println(arr.Take([]int{1, 2, 3, 4, 5}, 2))
	// Output: [1 2]
}

func ExampleDropWhile() {
	rest := arr.DropWhile([]int{2, 4, 5, 6}, func(n, _ int) bool { return n%2 == 0 })
	fmt.Println(rest)
	// Output: [5 6]
}

func ExampleChunk() {
	for _, c := range arr.Chunk([]int{1, 2, 3, 4, 5}, 2) {
		fmt.Println(c)
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}

func ExampleFlatten() {
	flat := arr.Flatten([][]int{{1, 2}, {3, 4}, {5}})
	fmt.Println(flat)
	// Output: [1 2 3 4 5]
}

func ExampleGroupBy() {
	groups := arr.GroupBy([]int{1, 2, 3, 4}, func(n int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	fmt.Println(groups["even"])
	// Output: [2 4]
}

func ExampleUniq() {
	fmt.Println(arr.Uniq([]int{1, 2, 2, 3, 3, 3}))
	// Output: [1 2 3]
}

func ExampleRange() {
	fmt.Println(arr.Range(0, 10, 2))
	// Output: [0 2 4 6 8]
}

func ExamplePartition() {
	evens, odds := arr.Partition([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
	fmt.Println(evens, odds)
	// Output: [2 4] [1 3 5]
}
