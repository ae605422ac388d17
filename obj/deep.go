package obj

import "reflect"

// DeepEqual reports whether a and b are deeply equal.
//
// It is a thin, named collaborator over [reflect.DeepEqual] so that callers
// (notably the iteratee matcher) depend on this package's equality contract
// rather than on the reflect package directly.
func DeepEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// Clone returns a shallow copy of m.
func Clone[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// CloneDeep returns a deep copy of a map[string]any / []any tree.
// Values that are neither map[string]any nor []any are copied by assignment;
// pointer-typed leaves therefore still alias the original.
func CloneDeep(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return CloneDeep(val)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = cloneValue(elem)
		}
		return out
	default:
		return val
	}
}
