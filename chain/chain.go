package chain

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-lodash-utils/arr"
	"github.com/hasbyte1/go-lodash-utils/iteratee"
	"github.com/hasbyte1/go-lodash-utils/lazy"
)

// Action is a deferred non-fusable operation, replayed against the fully
// evaluated slice in registration order at terminal-evaluation time.
type Action[T any] func([]T) []T

// Wrapper is the user-facing fluent handle over a slice.
//
// Chainable calls never execute immediately. Operations the lazy engine can
// fuse (Map, Filter, Take, Drop, their variants, Reverse, Slice) accumulate
// on a [lazy.Pipeline]; operations that need the whole materialised slice
// (Sort, UniqBy, Shuffle, Concat, …) accumulate as deferred actions. A
// terminal call — [Wrapper.Value], [Wrapper.ToJSON], [Wrapper.String], or
// any scalar-returning method — runs the fused pass once and then replays
// the actions in order.
//
// Once any action is pending, later fusable calls also become actions:
// order of operations is always preserved, and fusion is observable only as
// a performance characteristic.
//
// Wrappers are immutable: every chainable call returns a new Wrapper, so
// handles derived from a common ancestor are independent. The wrapped slice
// is referenced, not copied, until evaluation — treat it as immutable while
// any derived wrapper is unevaluated.
type Wrapper[T any] struct {
	source   []T
	pipe     *lazy.Pipeline[T]
	actions  []Action[T]
	chainAll bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Wrap returns a Wrapper over items. The slice is referenced, not copied.
func Wrap[T any](items []T) *Wrapper[T] {
	return &Wrapper[T]{source: items}
}

// New returns a Wrapper over a variadic list of items.
func New[T any](items ...T) *Wrapper[T] {
	return Wrap(items)
}

// Chain returns an explicitly chained Wrapper over items: results of the
// extension surface stay wrapped until [Wrapper.Value].
func Chain[T any](items []T) *Wrapper[T] {
	return &Wrapper[T]{source: items, chainAll: true}
}

// Rewrap normalises an existing wrapper for reuse as a plain one: an
// unchained wrapper is returned unchanged; a chained wrapper yields a copy
// with its pending action list cloned.
func Rewrap[T any](w *Wrapper[T]) *Wrapper[T] {
	if !w.chainAll {
		return w
	}
	out := w.clone()
	out.chainAll = false
	return out
}

func (w *Wrapper[T]) clone() *Wrapper[T] {
	out := &Wrapper[T]{
		source:   w.source,
		pipe:     w.pipe,
		chainAll: w.chainAll,
	}
	if len(w.actions) > 0 {
		out.actions = append(make([]Action[T], 0, len(w.actions)+1), w.actions...)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Dispatch
// ─────────────────────────────────────────────────────────────────────────────

func (w *Wrapper[T]) lazyPipe() *lazy.Pipeline[T] {
	if w.pipe != nil {
		return w.pipe
	}
	return lazy.From(w.source)
}

func (w *Wrapper[T]) withPipe(p *lazy.Pipeline[T]) *Wrapper[T] {
	out := w.clone()
	out.pipe = p
	return out
}

func (w *Wrapper[T]) withAction(a Action[T]) *Wrapper[T] {
	out := w.clone()
	out.actions = append(out.actions, a)
	return out
}

// dispatch routes one logical operation: onto the pipeline while the wrapper
// is still lazy-eligible, as a deferred eager action once it is not.
func (w *Wrapper[T]) dispatch(fuse func(*lazy.Pipeline[T]) *lazy.Pipeline[T], eager Action[T]) *Wrapper[T] {
	if len(w.actions) > 0 {
		return w.withAction(eager)
	}
	return w.withPipe(fuse(w.lazyPipe()))
}

// ─────────────────────────────────────────────────────────────────────────────
// Fusable operations
// ─────────────────────────────────────────────────────────────────────────────

// Map transforms every element with fn.
func (w *Wrapper[T]) Map(fn func(T) T) *Wrapper[T] {
	return w.dispatch(
		func(p *lazy.Pipeline[T]) *lazy.Pipeline[T] { return p.Map(fn) },
		func(items []T) []T { return arr.Map(items, func(v T, _ int) T { return fn(v) }) },
	)
}

// Filter keeps the elements for which pred returns true.
func (w *Wrapper[T]) Filter(pred func(T) bool) *Wrapper[T] {
	return w.dispatch(
		func(p *lazy.Pipeline[T]) *lazy.Pipeline[T] { return p.Filter(pred) },
		func(items []T) []T { return arr.Filter(items, func(v T, _ int) bool { return pred(v) }) },
	)
}

// Reject drops the elements for which pred returns true.
func (w *Wrapper[T]) Reject(pred func(T) bool) *Wrapper[T] {
	return w.Filter(func(v T) bool { return !pred(v) })
}

// Where keeps elements partially matching pattern (see [iteratee.Matches]).
func (w *Wrapper[T]) Where(pattern map[string]any) *Wrapper[T] {
	return w.Filter(iteratee.Matches[T](pattern))
}

// Take keeps at most the first n elements. Negative n behaves as 0.
func (w *Wrapper[T]) Take(n int) *Wrapper[T] {
	return w.dispatch(
		func(p *lazy.Pipeline[T]) *lazy.Pipeline[T] { return p.Take(n) },
		func(items []T) []T { return arr.Take(items, n) },
	)
}

// TakeRight keeps at most the last n elements.
func (w *Wrapper[T]) TakeRight(n int) *Wrapper[T] {
	return w.dispatch(
		func(p *lazy.Pipeline[T]) *lazy.Pipeline[T] { return p.TakeRight(n) },
		func(items []T) []T { return arr.TakeRight(items, n) },
	)
}

// TakeWhile keeps leading elements while pred holds.
func (w *Wrapper[T]) TakeWhile(pred func(T) bool) *Wrapper[T] {
	return w.dispatch(
		func(p *lazy.Pipeline[T]) *lazy.Pipeline[T] { return p.TakeWhile(pred) },
		func(items []T) []T { return arr.TakeWhile(items, func(v T, _ int) bool { return pred(v) }) },
	)
}

// Drop skips the first n elements. Negative n behaves as 0.
func (w *Wrapper[T]) Drop(n int) *Wrapper[T] {
	return w.dispatch(
		func(p *lazy.Pipeline[T]) *lazy.Pipeline[T] { return p.Drop(n) },
		func(items []T) []T { return arr.Drop(items, n) },
	)
}

// DropRight skips the last n elements.
func (w *Wrapper[T]) DropRight(n int) *Wrapper[T] {
	return w.dispatch(
		func(p *lazy.Pipeline[T]) *lazy.Pipeline[T] { return p.DropRight(n) },
		func(items []T) []T { return arr.DropRight(items, n) },
	)
}

// DropWhile skips leading elements while pred holds.
func (w *Wrapper[T]) DropWhile(pred func(T) bool) *Wrapper[T] {
	return w.dispatch(
		func(p *lazy.Pipeline[T]) *lazy.Pipeline[T] { return p.DropWhile(pred) },
		func(items []T) []T { return arr.DropWhile(items, func(v T, _ int) bool { return pred(v) }) },
	)
}

// Slice keeps the window [start, end); pass [lazy.Unbounded] as end to keep
// everything from start on. Negative bounds count from the end of the
// materialised slice and are therefore never fused.
func (w *Wrapper[T]) Slice(start, end int) *Wrapper[T] {
	eager := func(items []T) []T {
		e := end
		if e == lazy.Unbounded {
			e = len(items)
		}
		return arr.Slice(items, start, e)
	}
	if start < 0 || (end < 0 && end != lazy.Unbounded) {
		return w.withAction(eager)
	}
	return w.dispatch(
		func(p *lazy.Pipeline[T]) *lazy.Pipeline[T] { return p.Slice(start, end) },
		eager,
	)
}

// Initial drops the last element.
func (w *Wrapper[T]) Initial() *Wrapper[T] { return w.DropRight(1) }

// Tail drops the first element.
func (w *Wrapper[T]) Tail() *Wrapper[T] { return w.Drop(1) }

// Reverse flips the element order.
func (w *Wrapper[T]) Reverse() *Wrapper[T] {
	return w.dispatch(
		func(p *lazy.Pipeline[T]) *lazy.Pipeline[T] { return p.Reverse() },
		arr.Reverse[T],
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// Non-fusable operations (always deferred actions)
// ─────────────────────────────────────────────────────────────────────────────

// Sort defers a stable sort by less.
func (w *Wrapper[T]) Sort(less func(a, b T) bool) *Wrapper[T] {
	return w.withAction(func(items []T) []T { return arr.Sort(items, less) })
}

// SortBy defers a stable ascending sort by the float64 value from fn.
func (w *Wrapper[T]) SortBy(fn func(T) float64) *Wrapper[T] {
	return w.withAction(func(items []T) []T { return arr.SortBy(items, fn) })
}

// UniqBy defers duplicate removal using fn to extract the comparison key.
// Pass nil to compare by fmt.Sprintf("%v") representation.
func (w *Wrapper[T]) UniqBy(fn func(T) any) *Wrapper[T] {
	if fn == nil {
		fn = func(item T) any { return fmt.Sprintf("%v", item) }
	}
	return w.withAction(func(items []T) []T { return arr.UniqBy(items, fn) })
}

// Shuffle defers a random reordering.
func (w *Wrapper[T]) Shuffle() *Wrapper[T] {
	return w.withAction(arr.Shuffle[T])
}

// Compact defers removal of elements for which pred returns false.
func (w *Wrapper[T]) Compact(pred func(T) bool) *Wrapper[T] {
	return w.withAction(func(items []T) []T { return arr.Compact(items, pred) })
}

// Concat defers appending items to the end of the sequence.
func (w *Wrapper[T]) Concat(items ...T) *Wrapper[T] {
	return w.withAction(func(current []T) []T { return arr.Concat(current, items) })
}

// Tap defers a side-effecting peek at the materialised slice; the sequence
// itself is unchanged.
func (w *Wrapper[T]) Tap(fn func([]T)) *Wrapper[T] {
	return w.withAction(func(items []T) []T {
		fn(items)
		return items
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Explicit chaining, planting, instrumentation
// ─────────────────────────────────────────────────────────────────────────────

// Chain marks the wrapper as explicitly chained (see [Chain]).
func (w *Wrapper[T]) Chain() *Wrapper[T] {
	out := w.clone()
	out.chainAll = true
	return out
}

// Plant returns a copy of the whole pending operation sequence — fused
// pipeline and deferred actions alike — applied to a fresh source.
func (w *Wrapper[T]) Plant(source []T) *Wrapper[T] {
	out := w.clone()
	if out.pipe != nil {
		out.pipe = out.pipe.Plant(source)
	} else {
		out.source = source
	}
	return out
}

// Commit evaluates now and returns a wrapper over the materialised result,
// discarding all pending state.
func (w *Wrapper[T]) Commit() *Wrapper[T] {
	out := Wrap(w.Value())
	out.chainAll = w.chainAll
	return out
}

// Instrument registers fn to receive [lazy.EvalStats] after each evaluation
// of the fused pass.
func (w *Wrapper[T]) Instrument(fn func(lazy.EvalStats)) *Wrapper[T] {
	return w.withPipe(w.lazyPipe().Instrument(fn))
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminal evaluation
// ─────────────────────────────────────────────────────────────────────────────

// Value runs the fused pass, replays deferred actions in order, and returns
// the result. Repeated calls are idempotent as long as the underlying source
// is not mutated.
func (w *Wrapper[T]) Value() []T {
	var out []T
	if w.pipe != nil {
		out = w.pipe.Value()
	} else {
		out = make([]T, len(w.source))
		copy(out, w.source)
	}
	for _, action := range w.actions {
		out = action(out)
	}
	return out
}

// All is an alias for [Wrapper.Value].
func (w *Wrapper[T]) All() []T { return w.Value() }

// ToJSON evaluates and serialises the result to a JSON array.
func (w *Wrapper[T]) ToJSON() ([]byte, error) {
	return json.Marshal(w.Value())
}

// String evaluates and returns a JSON representation of the result.
// It implements [fmt.Stringer].
func (w *Wrapper[T]) String() string {
	b, err := w.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", w.Value())
	}
	return string(b)
}

// Head evaluates and returns the first element.
// Returns the zero value and false when the result is empty.
func (w *Wrapper[T]) Head() (T, bool) {
	if len(w.actions) == 0 {
		return arr.Head(w.withPipe(w.lazyPipe().Take(1)).Value())
	}
	return arr.Head(w.Value())
}

// Last evaluates and returns the last element.
// Returns the zero value and false when the result is empty.
func (w *Wrapper[T]) Last() (T, bool) {
	if len(w.actions) == 0 {
		return arr.Last(w.withPipe(w.lazyPipe().TakeRight(1)).Value())
	}
	return arr.Last(w.Value())
}

// Find evaluates and returns the first element satisfying pred.
// Returns the zero value and false when no element matches.
func (w *Wrapper[T]) Find(pred func(T) bool) (T, bool) {
	return w.Filter(pred).Head()
}

// Some evaluates and reports whether any element satisfies pred.
func (w *Wrapper[T]) Some(pred func(T) bool) bool {
	_, ok := w.Find(pred)
	return ok
}

// Every evaluates and reports whether all elements satisfy pred.
func (w *Wrapper[T]) Every(pred func(T) bool) bool {
	return !w.Some(func(v T) bool { return !pred(v) })
}

// Reduce evaluates and folds the result left-to-right into a value of the
// same element type. For reductions to another type use [ReduceTo].
func (w *Wrapper[T]) Reduce(fn func(acc, item T) T, initial T) T {
	result := initial
	for _, item := range w.Value() {
		result = fn(result, item)
	}
	return result
}

// Count evaluates and returns the number of elements in the result.
func (w *Wrapper[T]) Count() int { return len(w.Value()) }

// IsEmpty evaluates and reports whether the result has no elements.
func (w *Wrapper[T]) IsEmpty() bool { return w.Count() == 0 }

// Each evaluates and calls fn(item, index) for every element of the result.
func (w *Wrapper[T]) Each(fn func(T, int)) {
	for i, item := range w.Value() {
		fn(item, i)
	}
}

// Chunk evaluates and splits the result into consecutive groups of size.
func (w *Wrapper[T]) Chunk(size int) [][]T {
	return arr.Chunk(w.Value(), size)
}

// Partition evaluates and splits the result by pred.
func (w *Wrapper[T]) Partition(pred func(T) bool) ([]T, []T) {
	return arr.Partition(w.Value(), pred)
}
