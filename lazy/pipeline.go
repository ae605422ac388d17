package lazy

import "math"

// Unbounded is the takeCount and slice bound meaning "no limit".
const Unbounded = math.MaxInt

// Operation queue entry kinds, applied in queue order per element.
type opKind uint8

const (
	opDropWhile opKind = iota + 1
	opFilter
	opMap
	opTakeWhile
)

// operation is one entry of the fused queue. Exactly one of pred/mapFn is
// set, per kind. limit >= 0 turns a dropWhile entry into a bounded drop — the
// fused form of Drop(n) once filtering or mapping is already pending.
type operation[T any] struct {
	kind  opKind
	pred  func(T) bool
	mapFn func(T) T
	limit int
}

// Pipeline is a deferred, fusable computation over a source slice.
//
// A Pipeline is immutable from the caller's perspective: every chainable
// method returns a new Pipeline with copied view and operation queues, so
// derived pipelines never disturb their siblings. The source slice itself is
// referenced, not copied — callers must not mutate it while derived
// pipelines remain unevaluated.
//
// Evaluation ([Pipeline.Value]) runs a single fused pass: the whole queue is
// applied to each candidate element in turn, so a chain of Filter → Map →
// Take touches each element once instead of materialising an intermediate
// slice per step.
type Pipeline[T any] struct {
	source    []T
	parent    *Pipeline[T]
	dir       int
	takeCount int
	views     []view
	ops       []operation[T]
	observers []func(EvalStats)
}

// From creates a Pipeline over source. The slice is referenced, not copied.
func From[T any](source []T) *Pipeline[T] {
	return &Pipeline[T]{source: source, dir: 1, takeCount: Unbounded}
}

// filtered reports whether a filter or map is already pending, which
// forecloses folding further slicing into the view window.
func (p *Pipeline[T]) filtered() bool { return len(p.ops) > 0 }

// clone returns a structural copy with fresh view/op/observer backing arrays.
func (p *Pipeline[T]) clone() *Pipeline[T] {
	out := &Pipeline[T]{
		source:    p.source,
		parent:    p.parent,
		dir:       p.dir,
		takeCount: p.takeCount,
	}
	if len(p.views) > 0 {
		out.views = append(make([]view, 0, len(p.views)+1), p.views...)
	}
	if len(p.ops) > 0 {
		out.ops = append(make([]operation[T], 0, len(p.ops)+1), p.ops...)
	}
	if len(p.observers) > 0 {
		out.observers = append(make([]func(EvalStats), 0, len(p.observers)), p.observers...)
	}
	return out
}

// wrap starts a fresh Pipeline whose source is p itself. Used when pending
// filter state cannot be reinterpreted in place (reversal, some slices).
func (p *Pipeline[T]) wrap() *Pipeline[T] {
	return &Pipeline[T]{parent: p, dir: 1, takeCount: Unbounded}
}

// restrict returns the pipeline a new emission-restricting entry may attach
// to. Once takeCount has been clamped the pending stage must materialise
// first: appending to the same queue would run the new entry ahead of the
// take bound, turning "take then drop/filter" into "drop/filter then take".
func (p *Pipeline[T]) restrict() *Pipeline[T] {
	if p.takeCount != Unbounded {
		return p.wrap()
	}
	return p
}

func (p *Pipeline[T]) pushOp(op operation[T]) *Pipeline[T] {
	out := p.clone()
	out.ops = append(out.ops, op)
	return out
}

func (p *Pipeline[T]) pushView(kind viewKind, size int) *Pipeline[T] {
	out := p.clone()
	out.views = append(out.views, view{kind: kind, size: size})
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Chainable operations
// ─────────────────────────────────────────────────────────────────────────────

// Map appends a transform to the operation queue.
func (p *Pipeline[T]) Map(fn func(T) T) *Pipeline[T] {
	return p.pushOp(operation[T]{kind: opMap, mapFn: fn, limit: -1})
}

// Filter appends a keep-predicate to the operation queue.
func (p *Pipeline[T]) Filter(pred func(T) bool) *Pipeline[T] {
	return p.restrict().pushOp(operation[T]{kind: opFilter, pred: pred, limit: -1})
}

// Reject appends the complement of pred to the operation queue.
func (p *Pipeline[T]) Reject(pred func(T) bool) *Pipeline[T] {
	return p.Filter(func(v T) bool { return !pred(v) })
}

// TakeWhile emits leading elements while pred holds, then terminates the
// whole evaluation at the first failure.
func (p *Pipeline[T]) TakeWhile(pred func(T) bool) *Pipeline[T] {
	return p.restrict().pushOp(operation[T]{kind: opTakeWhile, pred: pred, limit: -1})
}

// DropWhile skips leading elements while pred holds, then emits everything
// after the first failure.
func (p *Pipeline[T]) DropWhile(pred func(T) bool) *Pipeline[T] {
	return p.restrict().pushOp(operation[T]{kind: opDropWhile, pred: pred, limit: -1})
}

// Take bounds the output to at most n elements. Negative n behaves as 0.
// On an unfiltered pipeline this folds into the view window; once filtering
// is pending it clamps the evaluation's take count instead.
func (p *Pipeline[T]) Take(n int) *Pipeline[T] {
	if n < 0 {
		n = 0
	}
	if p.filtered() {
		out := p.clone()
		if n < out.takeCount {
			out.takeCount = n
		}
		return out
	}
	kind := viewTake
	if p.dir < 0 {
		kind = viewTakeRight
	}
	return p.pushView(kind, n)
}

// Drop skips the first n logical elements. Negative n behaves as 0.
// On an unfiltered pipeline this folds into the view window; once filtering
// is pending it becomes a bounded drop entry in the operation queue. A
// pipeline whose takeCount is already clamped is staged first, so the drop
// applies to the taken elements rather than racing the take bound.
func (p *Pipeline[T]) Drop(n int) *Pipeline[T] {
	if n < 0 {
		n = 0
	}
	src := p.restrict()
	if src.filtered() {
		return src.pushOp(operation[T]{kind: opDropWhile, limit: n})
	}
	kind := viewDrop
	if src.dir < 0 {
		kind = viewDropRight
	}
	return src.pushView(kind, n)
}

// TakeRight bounds the output to at most the last n logical elements.
func (p *Pipeline[T]) TakeRight(n int) *Pipeline[T] {
	return p.Reverse().Take(n).Reverse()
}

// DropRight skips the last n logical elements.
func (p *Pipeline[T]) DropRight(n int) *Pipeline[T] {
	return p.Reverse().Drop(n).Reverse()
}

// Initial drops the last logical element.
func (p *Pipeline[T]) Initial() *Pipeline[T] { return p.DropRight(1) }

// Tail drops the first logical element.
func (p *Pipeline[T]) Tail() *Pipeline[T] { return p.Drop(1) }

// Slice bounds the output to the logical window [start, end). A negative
// start keeps the last -start elements and a negative end drops the last
// -end; pass [Unbounded] as end to leave the window open. Mixing a negative
// start with a bounded non-negative end interprets end relative to the
// retained tail window, since the source length is unknown before
// evaluation — callers needing array-relative semantics for that mix should
// slice eagerly. A filtered pipeline with a positive start or a negative end
// is wrapped first, since its pending filter state cannot be re-windowed.
func (p *Pipeline[T]) Slice(start, end int) *Pipeline[T] {
	result := p
	if result.filtered() && (start > 0 || end < 0) {
		result = result.wrap()
	}
	if start < 0 {
		result = result.TakeRight(-start)
	} else if start > 0 {
		result = result.Drop(start)
	}
	if end != Unbounded {
		if end < 0 {
			result = result.DropRight(-end)
		} else {
			result = result.Take(end - start)
		}
	}
	return result
}

// Reverse flips the logical iteration order. An unfiltered pipeline just
// flips its direction flag; a filtered one is wrapped, because pending
// while-predicate tracking is direction-relative and cannot be
// reinterpreted retroactively.
func (p *Pipeline[T]) Reverse() *Pipeline[T] {
	if p.filtered() {
		out := p.wrap()
		out.dir = -1
		return out
	}
	out := p.clone()
	out.dir = -out.dir
	return out
}

// Plant returns a copy of the pipeline — including any wrapped ancestors —
// with the ultimate source slice replaced.
func (p *Pipeline[T]) Plant(source []T) *Pipeline[T] {
	out := p.clone()
	if p.parent != nil {
		out.parent = p.parent.Plant(source)
	} else {
		out.source = source
	}
	return out
}

// Instrument registers fn to receive [EvalStats] after every evaluation of
// the returned pipeline. The hook is carried by derived pipelines.
func (p *Pipeline[T]) Instrument(fn func(EvalStats)) *Pipeline[T] {
	out := p.clone()
	out.observers = append(out.observers, fn)
	return out
}
