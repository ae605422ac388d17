package lazy

import "testing"

func TestComputeView(t *testing.T) {
	cases := []struct {
		name      string
		length    int
		views     []view
		wantStart int
		wantEnd   int
	}{
		{"empty", 10, nil, 0, 10},
		{"drop", 10, []view{{viewDrop, 3}}, 3, 10},
		{"dropRight", 10, []view{{viewDropRight, 3}}, 0, 7},
		{"take", 10, []view{{viewTake, 4}}, 0, 4},
		{"takeUnderLength", 10, []view{{viewTake, 99}}, 0, 10},
		{"takeRight", 10, []view{{viewTakeRight, 4}}, 6, 10},
		{"dropThenTake", 10, []view{{viewDrop, 2}, {viewTake, 3}}, 2, 5},
		{"takeThenDrop", 10, []view{{viewTake, 5}, {viewDrop, 2}}, 2, 5},
		{"dropRightThenTakeRight", 10, []view{{viewDropRight, 2}, {viewTakeRight, 3}}, 5, 8},
		{"oversizedDropInverts", 5, []view{{viewDrop, 9}}, 9, 5},
		{"stacked", 10, []view{{viewDrop, 1}, {viewDropRight, 1}, {viewTake, 4}}, 1, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			start, end := computeView(c.length, c.views)
			if start != c.wantStart || end != c.wantEnd {
				t.Fatalf("computeView(%d, %v) = [%d, %d); want [%d, %d)",
					c.length, c.views, start, end, c.wantStart, c.wantEnd)
			}
		})
	}
}
