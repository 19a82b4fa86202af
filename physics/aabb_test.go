package physics

import "testing"

func TestAABBOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b AABB
		want bool
	}{
		{"identical", NewAABB(0, 0, 10, 10), NewAABB(0, 0, 10, 10), true},
		{"partial_overlap", NewAABB(0, 0, 10, 10), NewAABB(5, 5, 15, 15), true},
		{"contained", NewAABB(0, 0, 10, 10), NewAABB(2, 2, 4, 4), true},
		{"touching_edge", NewAABB(0, 0, 10, 10), NewAABB(10, 0, 20, 10), true},
		{"touching_corner", NewAABB(0, 0, 10, 10), NewAABB(10, 10, 20, 20), true},
		{"separated_x", NewAABB(0, 0, 10, 10), NewAABB(10.001, 0, 20, 10), false},
		{"separated_y", NewAABB(0, 0, 10, 10), NewAABB(0, 20, 10, 30), false},
		{"separated_diagonal", NewAABB(0, 0, 1, 1), NewAABB(5, 5, 6, 6), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Overlaps(c.b); got != c.want {
				t.Fatalf("Overlaps(a, b): expected %v, got %v", c.want, got)
			}
			// The predicate is symmetric.
			if got := c.b.Overlaps(c.a); got != c.want {
				t.Fatalf("Overlaps(b, a): expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestAABBDerived(t *testing.T) {
	box := NewAABB(-2, 1, 4, 5)
	if got := box.Width(); got != 6 {
		t.Fatalf("expected width 6, got %v", got)
	}
	if got := box.Height(); got != 4 {
		t.Fatalf("expected height 4, got %v", got)
	}
	if got := box.Center(); got != (Vec2{X: 1, Y: 3}) {
		t.Fatalf("expected center (1,3), got %+v", got)
	}
}
