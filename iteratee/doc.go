// Package iteratee normalises lodash-style callback shorthands into
// canonical Go callables.
//
// Collection operations in lodash accept a function, a property-key string, a
// partial-match pattern object, or nothing at all. This package resolves any
// of those forms — once, at resolution time — into a plain closure that the
// lazy and eager engines invoke per element without further inspection:
//
//	pred, _ := iteratee.Predicate[map[string]any]("active")      // property truthiness
//	pred, _ := iteratee.Predicate[User](map[string]any{"Age": 30}) // partial match
//	pred, _ := iteratee.Predicate[int](func(n int) bool { return n > 0 })
//
// The resolved forms are modelled as a closed set (identity, function,
// property path, matcher) reported by [KindOf]; there is no per-element
// duck typing.
//
// Property access supports a single flat key on map[string]any elements,
// string-keyed maps, and exported struct fields. Deep dot-paths are the
// domain of the obj package; the lazy engine only requires flat keys.
package iteratee
