// Package lazy implements a deferred, fusing execution engine for slice
// pipelines.
//
// A [Pipeline] records a sequence of operations — Map, Filter, Reject,
// Take/Drop and their Right/While variants, Slice, Reverse — without running
// any of them. The terminal [Pipeline.Value] call then performs one physical
// pass over the source, applying the whole queue to each element in turn:
//
//	out := lazy.From([]int{1, 2, 3, 4, 5, 6}).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Map(func(n int) int { return n * 10 }).
//	    Take(2).
//	    Value() // → [20 40], after visiting only 4 source elements
//
// Three mechanisms cooperate:
//
//   - Pure slicing (Take, Drop, TakeRight, DropRight) before any filter or
//     map is recorded as view transforms, folded into a [start, end) window
//     at evaluation time with zero per-element cost.
//   - Filters, maps, and while-variants form the operation queue, applied in
//     order within the single pass; a failing take-while terminates the pass
//     and a satisfied take count stops it early.
//   - Reverse flips a direction flag instead of materialising; a pipeline
//     that already filters or maps is wrapped as the source of a new
//     reversed pipeline, because while-predicate progress is relative to the
//     iteration direction.
//
// Pipelines are copy-on-write: every chainable method returns a new
// Pipeline, so handles derived from a common ancestor are independent. The
// source slice is referenced, not copied — treat it as immutable for the
// lifetime of any derived pipeline.
//
// Results are identical to applying the equivalent eager operations from the
// arr package one step at a time; fusion is observable only as performance.
package lazy
