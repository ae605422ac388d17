package arr

import (
	"math/rand"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
//
// Size arguments are coerced, never rejected: a negative n to Take, TakeRight,
// Drop, or DropRight behaves as 0. Nil slices are valid empty inputs
// throughout the package.
// ─────────────────────────────────────────────────────────────────────────────

// Take returns at most the first n elements as a new slice.
// Take(items, -5) is Take(items, 0), not an error.
func Take[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// TakeRight returns at most the last n elements as a new slice.
func TakeRight[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	start := len(items) - n
	if start < 0 {
		start = 0
	}
	out := make([]T, len(items)-start)
	copy(out, items[start:])
	return out
}

// TakeWhile returns leading elements for which fn(item, index) returns true,
// stopping at the first failure.
func TakeWhile[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0)
	for i, item := range items {
		if !fn(item, i) {
			break
		}
		out = append(out, item)
	}
	return out
}

// Drop returns a copy of items without the first n elements.
func Drop[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, len(items)-n)
	copy(out, items[n:])
	return out
}

// DropRight returns a copy of items without the last n elements.
func DropRight[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	end := len(items) - n
	if end < 0 {
		end = 0
	}
	out := make([]T, end)
	copy(out, items[:end])
	return out
}

// DropWhile returns elements from the first one for which fn(item, index)
// returns false onwards.
func DropWhile[T any](items []T, fn func(T, int) bool) []T {
	for i, item := range items {
		if !fn(item, i) {
			out := make([]T, len(items)-i)
			copy(out, items[i:])
			return out
		}
	}
	return []T{}
}

// Slice returns items[start:end) as a new slice. Negative bounds count from
// the end; out-of-range bounds are clamped rather than panicking.
func Slice[T any](items []T, start, end int) []T {
	total := len(items)
	if start < 0 {
		start += total
	}
	if start < 0 {
		start = 0
	}
	if end < 0 {
		end += total
	}
	if end > total {
		end = total
	}
	if start >= end {
		return []T{}
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// Head returns the first element.
// Returns the zero value and false when items is empty.
func Head[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Last returns the last element.
// Returns the zero value and false when items is empty.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// Initial returns all elements except the last.
func Initial[T any](items []T) []T {
	return DropRight(items, 1)
}

// Tail returns all elements except the first.
func Tail[T any](items []T) []T {
	return Drop(items, 1)
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns elements for which fn returns false.
// It is the complement of [Filter].
func Reject[T any](items []T, fn func(T, int) bool) []T {
	return Filter(items, func(item T, i int) bool { return !fn(item, i) })
}

// Reduce folds items left-to-right into a single value of type U.
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range items {
		result = fn(result, item, i)
	}
	return result
}

// ReduceRight folds items right-to-left into a single value of type U.
func ReduceRight[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i := len(items) - 1; i >= 0; i-- {
		result = fn(result, items[i], i)
	}
	return result
}

// FlatMap applies fn to each element (producing a []U) and flattens the
// results one level.
func FlatMap[T, U any](items []T, fn func(T, int) []U) []U {
	out := make([]U, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i)...)
	}
	return out
}

// Flatten flattens a slice of slices one level.
func Flatten[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}

// Compact returns elements for which fn returns true.
// For the common "drop zero values" case use [CompactZero].
func Compact[T any](items []T, fn func(T) bool) []T {
	return Filter(items, func(item T, _ int) bool { return fn(item) })
}

// CompactZero returns elements that are not the zero value of T.
func CompactZero[T comparable](items []T) []T {
	var zero T
	return Filter(items, func(item T, _ int) bool { return item != zero })
}

// Concat returns a new slice with all the given slices appended in order.
func Concat[T any](slices ...[]T) []T {
	total := 0
	for _, s := range slices {
		total += len(s)
	}
	out := make([]T, 0, total)
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}

// Fill returns a copy of items with positions [start, end) replaced by value.
// Bounds are clamped.
func Fill[T any](items []T, value T, start, end int) []T {
	out := make([]T, len(items))
	copy(out, items)
	if start < 0 {
		start = 0
	}
	if end > len(out) {
		end = len(out)
	}
	for i := start; i < end; i++ {
		out[i] = value
	}
	return out
}

// Range returns the integers from start towards end stepping by step.
// step's sign is ignored; direction is derived from start and end.
// A zero step produces an empty slice.
func Range(start, end, step int) []int {
	if step < 0 {
		step = -step
	}
	if step == 0 {
		return []int{}
	}
	out := make([]int, 0)
	if start <= end {
		for v := start; v < end; v += step {
			out = append(out, v)
		}
	} else {
		for v := start; v > end; v -= step {
			out = append(out, v)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns a new slice with duplicates removed, preserving the first
// occurrence (requires comparable T).
func Uniq[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// UniqBy returns elements with duplicates removed using a key function.
func UniqBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// Without returns elements of items not equal to any of values.
func Without[T comparable](items []T, values ...T) []T {
	return Difference(items, values)
}

// Difference returns elements in a that are not in b.
func Difference[T comparable](a, b []T) []T {
	set := make(map[T]struct{}, len(b))
	for _, item := range b {
		set[item] = struct{}{}
	}
	out := make([]T, 0)
	for _, item := range a {
		if _, found := set[item]; !found {
			out = append(out, item)
		}
	}
	return out
}

// Intersection returns elements that appear in both a and b, in a's order.
func Intersection[T comparable](a, b []T) []T {
	set := make(map[T]struct{}, len(b))
	for _, item := range b {
		set[item] = struct{}{}
	}
	out := make([]T, 0)
	for _, item := range a {
		if _, found := set[item]; found {
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element satisfying fn.
// Returns the zero value and false when no element matches.
func Find[T any](items []T, fn func(T) bool) (T, bool) {
	var zero T
	for _, item := range items {
		if fn(item) {
			return item, true
		}
	}
	return zero, false
}

// FindLast returns the last element satisfying fn.
// Returns the zero value and false when no element matches.
func FindLast[T any](items []T, fn func(T) bool) (T, bool) {
	var zero T
	for i := len(items) - 1; i >= 0; i-- {
		if fn(items[i]) {
			return items[i], true
		}
	}
	return zero, false
}

// FindIndex returns the index of the first element satisfying fn, or -1.
func FindIndex[T any](items []T, fn func(T) bool) int {
	for i, item := range items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// Includes reports whether items contains value.
func Includes[T comparable](items []T, value T) bool {
	return IndexOf(items, value) >= 0
}

// Every reports whether all elements satisfy fn.
// Returns true for an empty slice.
func Every[T any](items []T, fn func(T) bool) bool {
	for _, item := range items {
		if !fn(item) {
			return false
		}
	}
	return true
}

// Some reports whether at least one element satisfies fn.
func Some[T any](items []T, fn func(T) bool) bool {
	for _, item := range items {
		if fn(item) {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements.
// Returns an empty [][]T if size <= 0.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// GroupBy groups items by the comparable key K extracted by fn, preserving
// encounter order within each group.
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// KeyBy creates a map[K]T from items keyed by fn.
// When multiple items share the same key, the last one wins.
func KeyBy[T any, K comparable](items []T, fn func(T) K) map[K]T {
	out := make(map[K]T, len(items))
	for _, item := range items {
		out[fn(item)] = item
	}
	return out
}

// CountBy counts items per comparable key K extracted by fn.
func CountBy[T any, K comparable](items []T, fn func(T) K) map[K]int {
	out := make(map[K]int)
	for _, item := range items {
		out[fn(item)]++
	}
	return out
}

// Partition splits items into two slices: those satisfying fn and those that
// do not.
func Partition[T any](items []T, fn func(T) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip].
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs elements from a and b at the same index.
// Stops at the length of the shorter slice.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}

// Unzip splits pairs back into two slices.
func Unzip[A, B any](pairs []Pair[A, B]) ([]A, []B) {
	as := make([]A, len(pairs))
	bs := make([]B, len(pairs))
	for i, p := range pairs {
		as[i] = p.First
		bs[i] = p.Second
	}
	return as, bs
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a randomly shuffled copy of items.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Sample returns one randomly selected element.
// Returns the zero value and false when items is empty.
func Sample[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[rand.Intn(len(items))], true
}

// SampleSize returns n randomly selected elements (without replacement).
// If n >= len(items), a shuffled copy of all elements is returned.
func SampleSize[T any](items []T, n int) []T {
	s := Shuffle(items)
	if n < 0 {
		n = 0
	}
	if n >= len(s) {
		return s
	}
	return s[:n]
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a sorted copy of items using less.
// The sort is stable: equal elements preserve their original order.
func Sort[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// SortBy returns a copy of items sorted ascending by the float64 value
// extracted by fn.
func SortBy[T any](items []T, fn func(T) float64) []T {
	return Sort(items, func(a, b T) bool { return fn(a) < fn(b) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of items via fn.
func Sum[T any](items []T, fn func(T) float64) float64 {
	var total float64
	for _, item := range items {
		total += fn(item)
	}
	return total
}

// Mean returns the arithmetic mean of items via fn, or 0 for an empty slice.
func Mean[T any](items []T, fn func(T) float64) float64 {
	if len(items) == 0 {
		return 0
	}
	return Sum(items, fn) / float64(len(items))
}

// MinBy returns the element with the smallest value extracted by fn.
// Returns the zero value and false if items is empty.
func MinBy[T any](items []T, fn func(T) float64) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	minItem, minVal := items[0], fn(items[0])
	for _, item := range items[1:] {
		if v := fn(item); v < minVal {
			minVal, minItem = v, item
		}
	}
	return minItem, true
}

// MaxBy returns the element with the largest value extracted by fn.
// Returns the zero value and false if items is empty.
func MaxBy[T any](items []T, fn func(T) float64) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	maxItem, maxVal := items[0], fn(items[0])
	for _, item := range items[1:] {
		if v := fn(item); v > maxVal {
			maxVal, maxItem = v, item
		}
	}
	return maxItem, true
}
