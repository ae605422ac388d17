package lazy

// A view is one pending size-bounding transform. Views are folded into a
// concrete [start, end) window at evaluation time; recording them costs no
// allocation per element regardless of how many are chained.
type viewKind uint8

const (
	viewDrop viewKind = iota + 1
	viewDropRight
	viewTake
	viewTakeRight
)

type view struct {
	kind viewKind
	size int
}

// computeView folds the pending transforms over the base range [0, length)
// and returns the effective window. The result may be inverted (start > end)
// or out of range when oversized transforms stack up; callers clamp.
func computeView(length int, views []view) (start, end int) {
	start, end = 0, length
	for _, v := range views {
		switch v.kind {
		case viewDrop:
			start += v.size
		case viewDropRight:
			end -= v.size
		case viewTake:
			if end > start+v.size {
				end = start + v.size
			}
		case viewTakeRight:
			if start < end-v.size {
				start = end - v.size
			}
		}
	}
	return start, end
}
