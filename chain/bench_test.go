package chain_test

import (
	"testing"

	"github.com/hasbyte1/go-lodash-utils/chain"
)

// benchInts creates a source slice of size n for benchmarks.
func benchInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func BenchmarkFilterMapTake(b *testing.B) {
	src := benchInts(100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chain.Wrap(src).
			Filter(func(n int) bool { return n%2 == 0 }).
			Map(func(n int) int { return n * 2 }).
			Take(100).
			Value()
	}
}

func BenchmarkHead(b *testing.B) {
	src := benchInts(100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chain.Wrap(src).Filter(func(n int) bool { return n > 50_000 }).Head()
	}
}

func BenchmarkSortAction(b *testing.B) {
	src := benchInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chain.Wrap(src).Shuffle().Sort(func(x, y int) bool { return x < y }).Value()
	}
}

func BenchmarkChainBuildOnly(b *testing.B) {
	src := benchInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chain.Wrap(src).
			Filter(func(n int) bool { return n%2 == 0 }).
			Map(func(n int) int { return n * 2 }).
			Take(10)
	}
}
