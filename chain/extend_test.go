package chain_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-lodash-utils/arr"
	"github.com/hasbyte1/go-lodash-utils/chain"
)

func TestRegisterAndExtend(t *testing.T) {
	t.Cleanup(chain.FlushExtensions)
	chain.RegisterExtension("evens", func(items any, _ ...any) any {
		ns := items.([]int)
		return arr.Filter(ns, func(n, _ int) bool { return n%2 == 0 })
	})
	if !chain.HasExtension("evens") {
		t.Fatal("HasExtension should be true after registration")
	}
	out, err := chain.New(1, 2, 3, 4, 5).Extend("evens")
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, out.([]int), []int{2, 4})
}

func TestExtendWithArgs(t *testing.T) {
	t.Cleanup(chain.FlushExtensions)
	chain.RegisterExtension("multiply", func(items any, args ...any) any {
		factor := args[0].(int)
		return arr.Map(items.([]int), func(n, _ int) int { return n * factor })
	})
	out, err := chain.New(1, 2, 3).Extend("multiply", 10)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, out.([]int), []int{10, 20, 30})
}

func TestExtendNotFound(t *testing.T) {
	_, err := chain.New(1).Extend("nope")
	if !errors.Is(err, chain.ErrExtensionNotFound) {
		t.Fatalf("err = %v; want ErrExtensionNotFound", err)
	}
}

func TestExtendEvaluatesPendingOperations(t *testing.T) {
	t.Cleanup(chain.FlushExtensions)
	chain.RegisterExtension("identity", func(items any, _ ...any) any { return items })
	out, err := chain.Wrap([]int{1, 2, 3, 4}).
		Filter(func(n int) bool { return n > 2 }).
		Extend("identity")
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, out.([]int), []int{3, 4})
}

func TestExtendChainedRewraps(t *testing.T) {
	t.Cleanup(chain.FlushExtensions)
	chain.RegisterExtension("doubled", func(items any, _ ...any) any {
		return arr.Map(items.([]int), func(n, _ int) int { return n * 2 })
	})
	out, err := chain.Chain([]int{1, 2}).Extend("doubled")
	if err != nil {
		t.Fatal(err)
	}
	w, ok := out.(*chain.Wrapper[int])
	if !ok {
		t.Fatalf("chained Extend should re-wrap; got %T", out)
	}
	assertSlice(t, w.Value(), []int{2, 4})
}

func TestExtendChainedNonSliceResultPassesThrough(t *testing.T) {
	t.Cleanup(chain.FlushExtensions)
	chain.RegisterExtension("total", func(items any, _ ...any) any {
		sum := 0
		for _, n := range items.([]int) {
			sum += n
		}
		return sum
	})
	out, err := chain.Chain([]int{1, 2, 3}).Extend("total")
	if err != nil {
		t.Fatal(err)
	}
	if out != 6 {
		t.Fatalf("Extend total = %v; want 6", out)
	}
}

func TestRewrap(t *testing.T) {
	chained := chain.Chain([]int{1, 2})
	plain := chain.Rewrap(chained)
	if plain == chained {
		t.Fatal("Rewrap of a chained wrapper should return a copy")
	}
	assertSlice(t, plain.Value(), []int{1, 2})

	already := chain.Wrap([]int{1})
	if chain.Rewrap(already) != already {
		t.Fatal("Rewrap of an unchained wrapper should be a no-op")
	}
}

func TestFlushExtensions(t *testing.T) {
	chain.RegisterExtension("tmp", func(items any, _ ...any) any { return items })
	chain.FlushExtensions()
	if chain.HasExtension("tmp") {
		t.Fatal("FlushExtensions should clear the registry")
	}
}
