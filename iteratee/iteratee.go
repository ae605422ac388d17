package iteratee

import (
	"math"
	"reflect"

	"github.com/hasbyte1/go-lodash-utils/obj"
)

// Kind identifies which shorthand form an iteratee value was resolved from.
type Kind uint8

const (
	// KindIdentity is a nil shorthand: the element itself.
	KindIdentity Kind = iota
	// KindFunc is an explicit callable.
	KindFunc
	// KindPath is a string property key.
	KindPath
	// KindMatcher is a partial-match pattern object.
	KindMatcher
)

// KindOf reports which shorthand form v would resolve as, without resolving
// it. Unrecognised values report KindFunc only when v is a Go function.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindIdentity
	case string:
		return KindPath
	case map[string]any:
		return KindMatcher
	default:
		if reflect.ValueOf(v).Kind() == reflect.Func {
			return KindFunc
		}
		return KindIdentity
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Resolution
//
// Shorthands are resolved once, up front, into a single canonical callable.
// The returned closures never re-inspect the shorthand per element.
// ─────────────────────────────────────────────────────────────────────────────

// Predicate resolves v into a canonical func(T) bool.
//
// Accepted forms:
//   - nil              → truthiness of the element itself
//   - func(T) bool     → used as-is
//   - string           → truthiness of the named property of the element
//   - map[string]any   → partial-match predicate (see [Matches])
//
// Any other value returns [ErrInvalidShorthand].
func Predicate[T any](v any) (func(T) bool, error) {
	switch iter := v.(type) {
	case nil:
		return func(el T) bool { return Truthy(el) }, nil
	case func(T) bool:
		return iter, nil
	case string:
		prop := Property[T](iter)
		return func(el T) bool { return Truthy(prop(el)) }, nil
	case map[string]any:
		return Matches[T](iter), nil
	default:
		return nil, ErrInvalidShorthand
	}
}

// Transform resolves v into a canonical func(T) T.
//
// Accepted forms:
//   - nil          → identity
//   - func(T) T    → used as-is
//   - string       → property accessor; the property value must be
//     assignable to T (typically T is any), otherwise the element maps to
//     the zero value of T
//
// Any other value returns [ErrInvalidShorthand].
func Transform[T any](v any) (func(T) T, error) {
	switch iter := v.(type) {
	case nil:
		return Identity[T](), nil
	case func(T) T:
		return iter, nil
	case string:
		prop := Property[T](iter)
		return func(el T) T {
			if t, ok := prop(el).(T); ok {
				return t
			}
			var zero T
			return zero
		}, nil
	default:
		return nil, ErrInvalidShorthand
	}
}

// Func requires v to be exactly a func(T) R.
// Returns [ErrNotCallable] otherwise — for contexts where none of the
// shorthand forms is tolerated.
func Func[T, R any](v any) (func(T) R, error) {
	fn, ok := v.(func(T) R)
	if !ok {
		return nil, ErrNotCallable
	}
	return fn, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Identity returns the element unchanged.
func Identity[T any]() func(T) T {
	return func(el T) T { return el }
}

// Property returns an accessor for a single flat property key.
// It understands map[string]any elements, other string-keyed maps, and
// exported struct fields (through pointers as well); any other element shape
// yields (nil, absent) → nil.
func Property[T any](key string) func(T) any {
	return func(el T) any {
		v, _ := lookup(el, key)
		return v
	}
}

// Matches returns a partial-match predicate: true iff every key of pattern is
// present on the element with a deeply-equal value.
//
// A single-key pattern with a primitive comparable value is special-cased to
// a direct equality check. The fast path is an optimization only — it returns
// the same boolean as the general deep-equal path for every input.
func Matches[T any](pattern map[string]any) func(T) bool {
	if len(pattern) == 1 {
		for key, want := range pattern {
			if isPrimitive(want) {
				return func(el T) bool {
					got, ok := lookup(el, key)
					return ok && got == want
				}
			}
		}
	}
	return func(el T) bool {
		for key, want := range pattern {
			got, ok := lookup(el, key)
			if !ok || !obj.DeepEqual(got, want) {
				return false
			}
		}
		return true
	}
}

// MatchesProperty returns a predicate checking a single property for deep
// equality with value.
func MatchesProperty[T any](key string, value any) func(T) bool {
	return Matches[T](map[string]any{key: value})
}

// ─────────────────────────────────────────────────────────────────────────────
// Support
// ─────────────────────────────────────────────────────────────────────────────

// Truthy reports whether v is a truthy value: non-nil, not the zero value of
// its type, and not NaN.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	if f, ok := v.(float64); ok && math.IsNaN(f) {
		return false
	}
	if f, ok := v.(float32); ok && math.IsNaN(float64(f)) {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return false
		}
	}
	return !rv.IsZero()
}

// lookup resolves a flat property key on an arbitrary element.
func lookup(el any, key string) (any, bool) {
	if m, ok := el.(map[string]any); ok {
		v, present := m[key]
		return v, present
	}
	rv := reflect.ValueOf(el)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(key))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Struct:
		f := rv.FieldByName(key)
		if !f.IsValid() || !f.CanInterface() {
			return nil, false
		}
		return f.Interface(), true
	default:
		return nil, false
	}
}

// isPrimitive reports whether v is a comparable scalar safe for the ==
// fast path.
func isPrimitive(v any) bool {
	switch v.(type) {
	case bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return true
	default:
		return false
	}
}
