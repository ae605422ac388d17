package iteratee_test

import (
	"errors"
	"math"
	"testing"

	"github.com/hasbyte1/go-lodash-utils/iteratee"
)

type user struct {
	Name   string
	Active bool
	Age    int
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		in   any
		want iteratee.Kind
	}{
		{nil, iteratee.KindIdentity},
		{"name", iteratee.KindPath},
		{map[string]any{"a": 1}, iteratee.KindMatcher},
		{func(int) bool { return true }, iteratee.KindFunc},
		{42, iteratee.KindIdentity},
	}
	for _, c := range cases {
		if got := iteratee.KindOf(c.in); got != c.want {
			t.Fatalf("KindOf(%v) = %v; want %v", c.in, got, c.want)
		}
	}
}

func TestPredicateNil(t *testing.T) {
	pred, err := iteratee.Predicate[int](nil)
	if err != nil {
		t.Fatal(err)
	}
	if !pred(1) {
		t.Fatal("nil predicate on 1 should be true")
	}
	if pred(0) {
		t.Fatal("nil predicate on 0 should be false")
	}
}

func TestPredicateFunc(t *testing.T) {
	pred, err := iteratee.Predicate[int](func(n int) bool { return n > 2 })
	if err != nil {
		t.Fatal(err)
	}
	if !pred(3) || pred(1) {
		t.Fatal("func predicate misbehaved")
	}
}

func TestPredicatePath(t *testing.T) {
	pred, err := iteratee.Predicate[user]("Active")
	if err != nil {
		t.Fatal(err)
	}
	if !pred(user{Active: true}) {
		t.Fatal("path predicate should be true for Active=true")
	}
	if pred(user{Active: false}) {
		t.Fatal("path predicate should be false for Active=false")
	}
}

func TestPredicateMatcher(t *testing.T) {
	pred, err := iteratee.Predicate[user](map[string]any{"Name": "Alice"})
	if err != nil {
		t.Fatal(err)
	}
	if !pred(user{Name: "Alice", Age: 30}) {
		t.Fatal("matcher should match on the pattern keys only")
	}
	if pred(user{Name: "Bob"}) {
		t.Fatal("matcher should not match different value")
	}
}

func TestPredicateInvalid(t *testing.T) {
	_, err := iteratee.Predicate[int](42)
	if !errors.Is(err, iteratee.ErrInvalidShorthand) {
		t.Fatalf("err = %v; want ErrInvalidShorthand", err)
	}
}

func TestTransform(t *testing.T) {
	fn, err := iteratee.Transform[int](func(n int) int { return n + 1 })
	if err != nil {
		t.Fatal(err)
	}
	if fn(1) != 2 {
		t.Fatal("func transform misbehaved")
	}
	id, err := iteratee.Transform[string](nil)
	if err != nil {
		t.Fatal(err)
	}
	if id("x") != "x" {
		t.Fatal("nil transform should be identity")
	}
}

func TestTransformPath(t *testing.T) {
	fn, err := iteratee.Transform[any]("Name")
	if err != nil {
		t.Fatal(err)
	}
	if fn(user{Name: "Alice"}) != "Alice" {
		t.Fatal("path transform should pluck the property")
	}
	if fn(42) != nil {
		t.Fatal("path transform on scalar should yield zero value")
	}
}

func TestFunc(t *testing.T) {
	fn, err := iteratee.Func[int, string](func(n int) string { return "x" })
	if err != nil {
		t.Fatal(err)
	}
	if fn(1) != "x" {
		t.Fatal("Func misbehaved")
	}
	_, err = iteratee.Func[int, string]("nope")
	if !errors.Is(err, iteratee.ErrNotCallable) {
		t.Fatalf("err = %v; want ErrNotCallable", err)
	}
}

func TestPropertyMap(t *testing.T) {
	prop := iteratee.Property[map[string]any]("city")
	if prop(map[string]any{"city": "London"}) != "London" {
		t.Fatal("Property on map[string]any failed")
	}
	if prop(map[string]any{}) != nil {
		t.Fatal("Property on absent key should be nil")
	}
}

func TestPropertyTypedMap(t *testing.T) {
	prop := iteratee.Property[map[string]int]("n")
	if prop(map[string]int{"n": 7}) != 7 {
		t.Fatal("Property on map[string]int failed")
	}
}

func TestPropertyStructPointer(t *testing.T) {
	prop := iteratee.Property[*user]("Age")
	if prop(&user{Age: 33}) != 33 {
		t.Fatal("Property through pointer failed")
	}
	if prop(nil) != nil {
		t.Fatal("Property on nil pointer should be nil")
	}
}

func TestMatchesDeepValue(t *testing.T) {
	type rec struct{ Tags []string }
	pred := iteratee.Matches[rec](map[string]any{"Tags": []string{"a", "b"}})
	if !pred(rec{Tags: []string{"a", "b"}}) {
		t.Fatal("Matches should deep-compare slice values")
	}
	if pred(rec{Tags: []string{"a"}}) {
		t.Fatal("Matches should reject different slice")
	}
}

func TestMatchesAbsentKey(t *testing.T) {
	pred := iteratee.Matches[map[string]any](map[string]any{"k": 1})
	if pred(map[string]any{}) {
		t.Fatal("Matches should be false when key absent")
	}
}

func TestMatchesEmptyPattern(t *testing.T) {
	pred := iteratee.Matches[user](map[string]any{})
	if !pred(user{}) {
		t.Fatal("empty pattern should match everything")
	}
}

func TestMatchesProperty(t *testing.T) {
	pred := iteratee.MatchesProperty[user]("Name", "Bob")
	if !pred(user{Name: "Bob"}) || pred(user{Name: "Alice"}) {
		t.Fatal("MatchesProperty misbehaved")
	}
}

func TestTruthy(t *testing.T) {
	truthy := []any{1, -1, "x", true, []int{0}, map[string]int{"a": 0}, user{Name: "a"}}
	for _, v := range truthy {
		if !iteratee.Truthy(v) {
			t.Fatalf("Truthy(%v) should be true", v)
		}
	}
	var nilSlice []int
	falsy := []any{nil, 0, 0.0, "", false, math.NaN(), nilSlice, user{}}
	for _, v := range falsy {
		if iteratee.Truthy(v) {
			t.Fatalf("Truthy(%v) should be false", v)
		}
	}
}
