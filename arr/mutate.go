package arr

// Mutating helpers. Unlike the rest of the package these operate on the
// caller's slice in place, through a pointer, so the mutation is explicit at
// the call site. Use [Without] / [Reject] for the non-mutating equivalents.

// Pull removes every occurrence of the given values from *items in place.
// Returns the number of elements removed.
func Pull[T comparable](items *[]T, values ...T) int {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	s := *items
	kept := s[:0]
	for _, item := range s {
		if _, drop := set[item]; !drop {
			kept = append(kept, item)
		}
	}
	removed := len(s) - len(kept)
	clearTail(s, len(kept))
	*items = kept
	return removed
}

// Remove removes every element satisfying fn from *items in place and
// returns the removed elements in their original order.
func Remove[T any](items *[]T, fn func(T, int) bool) []T {
	s := *items
	kept := s[:0]
	removed := make([]T, 0)
	for i, item := range s {
		if fn(item, i) {
			removed = append(removed, item)
		} else {
			kept = append(kept, item)
		}
	}
	clearTail(s, len(kept))
	*items = kept
	return removed
}

// clearTail zeroes the abandoned tail of s so removed elements do not pin
// memory through the retained backing array.
func clearTail[T any](s []T, from int) {
	var zero T
	for i := from; i < len(s); i++ {
		s[i] = zero
	}
}
