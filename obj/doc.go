// Package obj provides helper functions for Go maps, modelled after lodash's
// Object methods.
//
// # Generic map helpers
//
//	keys := obj.Keys(m)
//	subset := obj.Pick(m, "id", "name")
//	doubled := obj.MapValues(m, func(n int) int { return n * 2 })
//
// # Dot-notation access
//
// Nested map[string]any structures can be read and written with dot-separated
// paths, mirroring lodash's _.get / _.set / _.has / _.unset:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//	obj.Get(m, "user.address.city")            // → "London"
//	obj.Set(m, "user.address.postcode", "EC1") // mutates m
//	obj.Has(m, "user.name")                    // → true
//	flat := obj.Dot(m)                         // → {"user.name": "Alice", …}
//
// [Get], [Has], [Dot], and the generic helpers never mutate their input;
// [Set], [Unset], [Merge], and [Defaults] mutate the destination map and say
// so in their doc comments.
//
// # Equality and cloning
//
// [DeepEqual], [Clone], and [CloneDeep] are the conventional collaborators
// consumed by the iteratee package's partial-match predicate.
package obj
