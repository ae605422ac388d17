// Package chain provides a lodash-style fluent wrapper over slices, with
// lazy evaluation of array pipelines.
//
// # Overview
//
// The central type is [Wrapper][T], a chainable handle created by [Wrap],
// [New], or [Chain]:
//
//	result := chain.New(1, 2, 3, 4, 5, 6).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Map(func(n int) int { return n * 10 }).
//	    Take(2).
//	    Value() // → [20 40]
//
// Nothing runs until a terminal call. Consecutive Map/Filter/Take/Drop steps
// (and their Right/While variants, Reverse, and Slice) are fused by the lazy
// package into a single pass over the source — the chain above touches four
// source elements, not eighteen. Operations needing the whole materialised
// slice (Sort, UniqBy, Shuffle, Concat, Tap, …) are recorded as deferred
// actions and replayed, in order, after the fused pass. Either way the
// observable results are identical to running each step eagerly.
//
// # Terminals
//
// [Wrapper.Value] (alias [Wrapper.All]), [Wrapper.ToJSON], and
// [Wrapper.String] materialise the sequence. Scalar-contract methods —
// [Wrapper.Head], [Wrapper.Last], [Wrapper.Find], [Wrapper.Some],
// [Wrapper.Every], [Wrapper.Reduce], [Wrapper.Count] — always return
// unwrapped Go values. Head, Last, and Find bound the fused pass (a Take
// under the hood), so they stop scanning as soon as the answer is known.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
// [MapTo], [FlatMapTo], [PluckTo], [ReduceTo], [GroupBy], [KeyBy],
// [CountBy], plus comparable-constrained [Uniq], [Without], [Includes].
//
// # Explicit chaining and extensions
//
// [Chain] (or [Wrapper.Chain]) marks a wrapper as explicitly chained. The
// distinction matters for the extension surface: named functions registered
// with [RegisterExtension] and invoked through [Wrapper.Extend] return
// re-wrapped results on a chained wrapper and raw values otherwise.
//
// # Aliasing
//
// Wrappers reference the wrapped slice until evaluation. Mutating the source
// slice while a derived, unevaluated wrapper exists produces undefined
// results; derive or [Wrapper.Commit] first.
package chain
