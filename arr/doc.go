// Package arr provides standalone, framework-agnostic helper functions for
// Go slices, modelled after lodash's Array and Collection methods.
//
// # Slice helpers
//
// All helpers are generic and operate on plain []T values — no wrapper type
// required:
//
//	evens  := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	firstThree := arr.Take([]int{1, 2, 3, 4, 5}, 3)         // → [1 2 3]
//	chunks := arr.Chunk([]int{1, 2, 3, 4, 5}, 2)            // → [[1 2] [3 4] [5]]
//	byDept := arr.GroupBy(employees, func(e Employee) string { return e.Dept })
//
// Every function returns a new slice and never mutates its input, with two
// documented exceptions — [Pull] and [Remove] — which take a *[]T precisely
// so the mutation is visible at the call site.
//
// # Numeric permissiveness
//
// Size and count arguments are coerced rather than rejected: a negative n to
// [Take] or [Drop] behaves as 0, and out-of-range bounds to [Slice] or [Fill]
// are clamped. Nil slices are treated as empty inputs everywhere.
//
// # Relationship to the chain package
//
// These are the eager building blocks. The chain package composes the same
// operations lazily, fusing consecutive Map/Filter/Take/Drop steps into a
// single pass; the two always produce identical results.
package arr
