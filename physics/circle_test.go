package physics

import (
	"errors"
	"math"
	"testing"
)

func mustCircle(t *testing.T, id uint64, pos, vel Vec2, radius float64) *Circle {
	t.Helper()
	c, err := NewCircle(id, pos, vel, radius)
	if err != nil {
		t.Fatalf("NewCircle: %v", err)
	}
	return c
}

func TestNewCircleValidation(t *testing.T) {
	cases := []struct {
		name   string
		pos    Vec2
		vel    Vec2
		radius float64
	}{
		{"zero_radius", Vec2{}, Vec2{}, 0},
		{"negative_radius", Vec2{}, Vec2{}, -3},
		{"nan_position", Vec2{X: math.NaN()}, Vec2{}, 5},
		{"inf_velocity", Vec2{}, Vec2{Y: math.Inf(1)}, 5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewCircle(1, c.pos, c.vel, c.radius); !errors.Is(err, ErrInvalidBody) {
				t.Fatalf("expected ErrInvalidBody, got %v", err)
			}
		})
	}
}

func TestCircleMassFromRadius(t *testing.T) {
	c := mustCircle(t, 1, Vec2{}, Vec2{}, 10)
	if got := c.Mass(); !almostEqual(got, 100*math.Pi) {
		t.Fatalf("expected mass 100*pi, got %v", got)
	}
}

func TestCircleBounds(t *testing.T) {
	c := mustCircle(t, 1, Vec2{X: 5, Y: -3}, Vec2{}, 2)
	box, ok := c.Bounds()
	if !ok {
		t.Fatalf("circle should have bounds")
	}
	want := NewAABB(3, -5, 7, -1)
	if box != want {
		t.Fatalf("expected %+v, got %+v", want, box)
	}
}

func TestCircleCollidesWith(t *testing.T) {
	cases := []struct {
		name   string
		p1, p2 Vec2
		r1, r2 float64
		want   bool
	}{
		{"overlapping", Vec2{}, Vec2{X: 19}, 10, 10, true},
		{"touching", Vec2{}, Vec2{X: 20}, 10, 10, true},
		{"separated", Vec2{}, Vec2{X: 21}, 10, 10, false},
		{"diagonal_overlap", Vec2{}, Vec2{X: 3, Y: 4}, 3, 3, true},
		{"diagonal_separated", Vec2{}, Vec2{X: 30, Y: 40}, 3, 3, false},
		{"unequal_radii", Vec2{}, Vec2{X: 12}, 2, 10, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := mustCircle(t, 1, c.p1, Vec2{}, c.r1)
			b := mustCircle(t, 2, c.p2, Vec2{}, c.r2)
			if got := a.CollidesWith(b); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
			if got := b.CollidesWith(a); got != c.want {
				t.Fatalf("reversed: expected %v, got %v", c.want, got)
			}
		})
	}
}

// Two radius-10 circles overlapping by 1 along x, closing at 5 each,
// e=0.8: resolution must separate the centers to exactly 20 and leave
// equal-and-opposite normal velocities of magnitude 4.
func TestCircleResolveHeadOn(t *testing.T) {
	a := mustCircle(t, 1, Vec2{}, Vec2{X: 5}, 10)
	b := mustCircle(t, 2, Vec2{X: 19}, Vec2{X: -5}, 10)

	if !a.CollidesWith(b) {
		t.Fatalf("circles should overlap before resolution")
	}
	if err := a.ResolveCollision(b); err != nil {
		t.Fatalf("ResolveCollision: %v", err)
	}

	if dist := b.Position().Subtracted(a.Position()).Magnitude(); !almostEqual(dist, 20) {
		t.Fatalf("expected center distance 20, got %v", dist)
	}
	if !vecAlmostEqual(a.Position(), Vec2{X: -0.5}) {
		t.Fatalf("expected a at (-0.5,0), got %+v", a.Position())
	}
	if !vecAlmostEqual(b.Position(), Vec2{X: 19.5}) {
		t.Fatalf("expected b at (19.5,0), got %+v", b.Position())
	}
	if !vecAlmostEqual(a.Velocity(), Vec2{X: -4}) {
		t.Fatalf("expected a velocity (-4,0), got %+v", a.Velocity())
	}
	if !vecAlmostEqual(b.Velocity(), Vec2{X: 4}) {
		t.Fatalf("expected b velocity (4,0), got %+v", b.Velocity())
	}
}

func TestCircleResolveConservation(t *testing.T) {
	cases := []struct {
		name   string
		p1, p2 Vec2
		v1, v2 Vec2
		r1, r2 float64
	}{
		{"head_on_equal", Vec2{}, Vec2{X: 19}, Vec2{X: 5}, Vec2{X: -5}, 10, 10},
		{"unequal_masses", Vec2{}, Vec2{X: 11}, Vec2{X: 8}, Vec2{}, 4, 8},
		{"oblique", Vec2{}, Vec2{X: 5, Y: 5}, Vec2{X: 3, Y: 1}, Vec2{X: -2, Y: 4}, 4, 4},
		{"overtaking", Vec2{}, Vec2{X: 9}, Vec2{X: 10}, Vec2{X: 2}, 5, 5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := mustCircle(t, 1, c.p1, c.v1, c.r1)
			b := mustCircle(t, 2, c.p2, c.v2, c.r2)
			if !a.CollidesWith(b) {
				t.Fatalf("case must start overlapping")
			}

			momentumBefore := a.Velocity().Scaled(a.Mass()).Added(b.Velocity().Scaled(b.Mass()))
			energyBefore := a.Mass()*a.Velocity().SquaredMagnitude() + b.Mass()*b.Velocity().SquaredMagnitude()

			if err := a.ResolveCollision(b); err != nil {
				t.Fatalf("ResolveCollision: %v", err)
			}

			momentumAfter := a.Velocity().Scaled(a.Mass()).Added(b.Velocity().Scaled(b.Mass()))
			energyAfter := a.Mass()*a.Velocity().SquaredMagnitude() + b.Mass()*b.Velocity().SquaredMagnitude()

			if !vecAlmostEqual(momentumBefore, momentumAfter) {
				t.Fatalf("momentum not conserved: %+v -> %+v", momentumBefore, momentumAfter)
			}
			if energyAfter > energyBefore+1e-9 {
				t.Fatalf("kinetic energy increased: %v -> %v", energyBefore, energyAfter)
			}

			// Positional correction leaves the pair exactly touching.
			rsum := c.r1 + c.r2
			if dist := b.Position().Subtracted(a.Position()).Magnitude(); !almostEqual(dist, rsum) {
				t.Fatalf("expected center distance %v, got %v", rsum, dist)
			}
		})
	}
}

func TestCircleResolveCoincidentCenters(t *testing.T) {
	a := mustCircle(t, 1, Vec2{X: 3, Y: 3}, Vec2{X: 1}, 5)
	b := mustCircle(t, 2, Vec2{X: 3, Y: 3}, Vec2{X: -1}, 5)

	if err := a.ResolveCollision(b); !errors.Is(err, ErrCoincidentCenters) {
		t.Fatalf("expected ErrCoincidentCenters, got %v", err)
	}
	// The pair is left untouched; no NaN leaks into the simulation.
	if !vecAlmostEqual(a.Position(), Vec2{X: 3, Y: 3}) || !vecAlmostEqual(a.Velocity(), Vec2{X: 1}) {
		t.Fatalf("body a mutated on degenerate resolution")
	}
}
