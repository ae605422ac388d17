package lazy

// EvalStats describes one completed evaluation, reported to hooks registered
// with [Pipeline.Instrument].
type EvalStats struct {
	// Scanned is the number of source elements examined.
	Scanned int
	// Emitted is the number of elements in the result.
	Emitted int
	// Ops is the length of the fused operation queue.
	Ops int
	// Reversed reports whether the pass ran back-to-front.
	Reversed bool
}

// whileProgress is the per-evaluation scratch state of one while-variant
// queue entry. It lives here, not on the operation itself, so that a live
// evaluation can never corrupt a sibling clone and every run starts fresh.
// While-tracking is direction-relative, but a direction change always wraps
// a filtered pipeline rather than reusing its queue, so within one run the
// scanned index moves monotonically and progress never needs resetting.
type whileProgress struct {
	done  bool
	count int
}

// Value evaluates the pipeline in a single fused pass and returns the
// materialised result. Repeated calls are idempotent as long as the source
// slice is not mutated. Panics raised by user callbacks propagate unchanged.
func (p *Pipeline[T]) Value() []T {
	src := p.source
	if p.parent != nil {
		src = p.parent.Value()
	}
	length := len(src)
	start, end := computeView(length, p.views)
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	n := end - start
	if n < 0 {
		n = 0
	}
	take := p.takeCount
	if take > n {
		take = n
	}

	// Whole-window pass-through: nothing to fuse, just copy.
	if p.dir > 0 && len(p.ops) == 0 && n == length && take == n {
		out := make([]T, length)
		copy(out, src)
		p.notify(EvalStats{Scanned: length, Emitted: length, Reversed: false})
		return out
	}

	idx := start - 1
	if p.dir < 0 {
		idx = end
	}
	result := make([]T, 0, take)
	progress := make([]whileProgress, len(p.ops))
	scanned := 0

outer:
	for remaining := n; remaining > 0 && len(result) < take; remaining-- {
		idx += p.dir
		scanned++
		value := src[idx]
		for oi := range p.ops {
			op := &p.ops[oi]
			switch op.kind {
			case opMap:
				value = op.mapFn(value)
			case opFilter:
				if !op.pred(value) {
					continue outer
				}
			case opTakeWhile:
				// Once a take-while fails no later element can qualify.
				if !op.pred(value) {
					break outer
				}
			case opDropWhile:
				st := &progress[oi]
				if !st.done {
					if op.limit >= 0 {
						if st.count < op.limit {
							st.count++
							continue outer
						}
						st.done = true
					} else if op.pred(value) {
						continue outer
					} else {
						st.done = true
					}
				}
			}
		}
		result = append(result, value)
	}

	p.notify(EvalStats{
		Scanned:  scanned,
		Emitted:  len(result),
		Reversed: p.dir < 0,
	})
	return result
}

func (p *Pipeline[T]) notify(stats EvalStats) {
	if len(p.observers) == 0 {
		return
	}
	stats.Ops = len(p.ops)
	for _, fn := range p.observers {
		fn(stats)
	}
}
