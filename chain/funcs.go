package chain

// This file contains package-level generic functions for operations that
// change the element type (T → U) or need a comparable constraint.
//
// Go generics do not allow methods to introduce their own type parameters,
// so these operations must be stand-alone functions. A type-changing step
// materialises the pending pipeline first; lazy fusion resumes on the new
// wrapper:
//
//	labels := chain.MapTo(
//	    chain.Wrap(users).Filter(active),
//	    func(u User) string { return u.Name },
//	)

import (
	"github.com/hasbyte1/go-lodash-utils/arr"
	"github.com/hasbyte1/go-lodash-utils/iteratee"
)

// MapTo evaluates w and wraps each element transformed to type U.
func MapTo[T, U any](w *Wrapper[T], fn func(T) U) *Wrapper[U] {
	out := Wrap(arr.Map(w.Value(), func(v T, _ int) U { return fn(v) }))
	out.chainAll = w.chainAll
	return out
}

// FlatMapTo evaluates w, maps each element to a []U, and wraps the
// one-level-flattened result.
func FlatMapTo[T, U any](w *Wrapper[T], fn func(T) []U) *Wrapper[U] {
	out := Wrap(arr.FlatMap(w.Value(), func(v T, _ int) []U { return fn(v) }))
	out.chainAll = w.chainAll
	return out
}

// PluckTo evaluates w and wraps the value of the named flat property of each
// element (see [iteratee.Property]).
func PluckTo[T any](w *Wrapper[T], key string) *Wrapper[any] {
	prop := iteratee.Property[T](key)
	return MapTo(w, func(v T) any { return prop(v) })
}

// ReduceTo evaluates w and folds the result into a value of type U.
func ReduceTo[T, U any](w *Wrapper[T], fn func(U, T) U, initial U) U {
	result := initial
	for _, item := range w.Value() {
		result = fn(result, item)
	}
	return result
}

// GroupBy evaluates w and groups elements by the key extracted by fn.
func GroupBy[T any, K comparable](w *Wrapper[T], fn func(T) K) map[K][]T {
	return arr.GroupBy(w.Value(), fn)
}

// KeyBy evaluates w and keys elements by the value extracted by fn.
func KeyBy[T any, K comparable](w *Wrapper[T], fn func(T) K) map[K]T {
	return arr.KeyBy(w.Value(), fn)
}

// CountBy evaluates w and counts elements per key extracted by fn.
func CountBy[T any, K comparable](w *Wrapper[T], fn func(T) K) map[K]int {
	return arr.CountBy(w.Value(), fn)
}

// Includes evaluates w and reports whether the result contains value.
func Includes[T comparable](w *Wrapper[T], value T) bool {
	return arr.Includes(w.Value(), value)
}

// Uniq defers duplicate removal on w (requires comparable T).
func Uniq[T comparable](w *Wrapper[T]) *Wrapper[T] {
	return w.withAction(func(items []T) []T { return arr.Uniq(items) })
}

// Without defers removal of the given values from w (requires comparable T).
func Without[T comparable](w *Wrapper[T], values ...T) *Wrapper[T] {
	return w.withAction(func(items []T) []T { return arr.Without(items, values...) })
}
