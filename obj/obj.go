package obj

import "sort"

// ─────────────────────────────────────────────────────────────────────────────
// Generic map helpers
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the keys of m in unspecified order.
func Keys[K comparable, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// SortedKeys returns the string keys of m in ascending order.
// Deterministic ordering for the common map[string]V case.
func SortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Values returns the values of m in unspecified order.
func Values[K comparable, V any](m map[K]V) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

// Entry is a single key/value pair of a map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Entries returns the key/value pairs of m in unspecified order.
func Entries[K comparable, V any](m map[K]V) []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}

// FromEntries builds a map from key/value pairs.
// When keys repeat, the last pair wins.
func FromEntries[K comparable, V any](entries []Entry[K, V]) map[K]V {
	out := make(map[K]V, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}
	return out
}

// Pick returns a new map containing only the specified keys.
func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Omit returns a shallow copy of m without the specified keys.
func Omit[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	drop := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		if _, skip := drop[k]; !skip {
			out[k] = v
		}
	}
	return out
}

// PickBy returns a new map with the entries for which fn(key, value) is true.
func PickBy[K comparable, V any](m map[K]V, fn func(K, V) bool) map[K]V {
	out := make(map[K]V)
	for k, v := range m {
		if fn(k, v) {
			out[k] = v
		}
	}
	return out
}

// MapValues returns a new map with each value transformed by fn.
func MapValues[K comparable, V, U any](m map[K]V, fn func(V) U) map[K]U {
	out := make(map[K]U, len(m))
	for k, v := range m {
		out[k] = fn(v)
	}
	return out
}

// MapKeys returns a new map with each key transformed by fn.
// When transformed keys collide, one of the colliding entries wins,
// non-deterministically.
func MapKeys[K, J comparable, V any](m map[K]V, fn func(K) J) map[J]V {
	out := make(map[J]V, len(m))
	for k, v := range m {
		out[fn(k)] = v
	}
	return out
}

// Invert returns a new map with keys and values swapped.
// When values repeat, one of the repeated entries wins, non-deterministically.
func Invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// Merge merges src into dst, returning dst. dst is mutated.
// Values in src overwrite values in dst for matching keys.
// Nested map[string]any values are merged recursively.
func Merge(dst, src map[string]any) map[string]any {
	for k, srcVal := range src {
		dstVal, ok := dst[k]
		if ok {
			dstMap, dstIsMap := dstVal.(map[string]any)
			srcMap, srcIsMap := srcVal.(map[string]any)
			if dstIsMap && srcIsMap {
				Merge(dstMap, srcMap)
				continue
			}
		}
		dst[k] = srcVal
	}
	return dst
}

// Defaults fills missing keys of dst from src, returning dst. dst is mutated.
// Existing keys in dst are never overwritten.
func Defaults[K comparable, V any](dst, src map[K]V) map[K]V {
	for k, v := range src {
		if _, ok := dst[k]; !ok {
			dst[k] = v
		}
	}
	return dst
}
