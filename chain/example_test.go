package chain_test

import (
	"fmt"

	"github.com/hasbyte1/go-lodash-utils/chain"
)

func ExampleWrap() {
	result := chain.Wrap([]int{1, 2, 3, 4, 5, 6}).
		Filter(func(n int) bool { return n%2 == 0 }).
		Map(func(n int) int { return n * n }).
		Take(2).
		Value()
	fmt.Println(result)
	// Output: [4 16]
}

func ExampleWrapper_Where() {
	type city struct {
		Name    string
		Country string
	}
	cities := []city{
		{"London", "UK"},
		{"Paris", "FR"},
		{"Leeds", "UK"},
	}
	uk := chain.Wrap(cities).Where(map[string]any{"Country": "UK"}).Value()
	for _, c := range uk {
		fmt.Println(c.Name)
	}
	// Output:
	// London
	// Leeds
}

func ExampleWrapper_Tap() {
	chain.Wrap([]int{3, 1, 2}).
		Sort(func(a, b int) bool { return a < b }).
		Tap(func(items []int) { fmt.Println("sorted:", items) }).
		Value()
	// Output: sorted: [1 2 3]
}

func ExampleWrapper_Reduce() {
	total := chain.Wrap([]int{1, 2, 3, 4}).Reduce(func(acc, n int) int { return acc + n }, 0)
	fmt.Println(total)
	// Output: 10
}

func ExampleMapTo() {
	labels := chain.MapTo(chain.New(1, 2, 3), func(n int) string {
		return fmt.Sprintf("#%d", n)
	}).Value()
	fmt.Println(labels)
	// Output: [#1 #2 #3]
}

func ExampleWrapper_Plant() {
	pipeline := chain.Wrap([]int{1, 2, 3}).Map(func(n int) int { return n * 10 })
	fmt.Println(pipeline.Value())
	fmt.Println(pipeline.Plant([]int{7, 8}).Value())
	// Output:
	// [10 20 30]
	// [70 80]
}

func ExampleWrapper_ToJSON() {
	b, _ := chain.Wrap([]string{"a", "b"}).ToJSON()
	fmt.Println(string(b))
	// Output: ["a","b"]
}
