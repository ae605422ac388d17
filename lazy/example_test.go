package lazy_test

import (
	"fmt"

	"github.com/hasbyte1/go-lodash-utils/lazy"
)

func ExamplePipeline() {
	result := lazy.From([]int{1, 2, 3, 4, 5, 6, 7, 8}).
		Filter(func(n int) bool { return n%2 == 0 }).
		Map(func(n int) int { return n * n }).
		Take(2).
		Value()
	fmt.Println(result)
	// Output: [4 16]
}

func ExamplePipeline_Reverse() {
	result := lazy.From([]int{1, 2, 3, 4}).Reverse().Take(2).Value()
	fmt.Println(result)
	// Output: [4 3]
}

func ExamplePipeline_TakeWhile() {
	result := lazy.From([]int{2, 4, 6, 7, 8}).
		TakeWhile(func(n int) bool { return n%2 == 0 }).
		Value()
	fmt.Println(result)
	// Output: [2 4 6]
}

func ExamplePipeline_Slice() {
	result := lazy.From([]int{10, 20, 30, 40, 50}).Slice(1, 4).Value()
	fmt.Println(result)
	// Output: [20 30 40]
}

func ExamplePipeline_Instrument() {
	lazy.From([]int{1, 2, 3, 4, 5, 6}).
		Filter(func(n int) bool { return n%2 == 0 }).
		Take(2).
		Instrument(func(s lazy.EvalStats) {
			fmt.Printf("scanned=%d emitted=%d\n", s.Scanned, s.Emitted)
		}).
		Value()
	// Output: scanned=4 emitted=2
}
