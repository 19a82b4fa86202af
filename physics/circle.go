package physics

import (
	"errors"
	"fmt"
	"math"
)

// Restitution is the coefficient applied to every circle-circle collision.
const Restitution = 0.8

var (
	// ErrInvalidBody is returned when a body is constructed with a
	// non-positive radius or non-finite position, velocity, or radius.
	ErrInvalidBody = errors.New("physics: invalid body parameters")
	// ErrCoincidentCenters is returned when collision resolution is
	// attempted between circles whose centers coincide. There is no
	// collision normal in that case, so the pair is left untouched
	// rather than propagating NaN through the simulation.
	ErrCoincidentCenters = errors.New("physics: coincident circle centers")
)

// Circle is a Body shaped as a circle. Mass is derived from the radius
// under a unit-density assumption and the radius is fixed after
// construction, so the two never disagree.
type Circle struct {
	baseBody
	radius float64
	mass   float64
}

// NewCircle returns a circle with the given id, position, velocity, and
// radius. The radius must be positive and all inputs finite.
func NewCircle(id uint64, pos, vel Vec2, radius float64) (*Circle, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: radius %v", ErrInvalidBody, radius)
	}
	if !isFinite(pos) || !isFinite(vel) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: non-finite input", ErrInvalidBody)
	}
	return &Circle{
		baseBody: baseBody{
			id:   id,
			pos:  pos,
			vel:  vel,
			tint: DefaultTint,
			base: DefaultTint,
		},
		radius: radius,
		mass:   math.Pi * radius * radius,
	}, nil
}

// Radius returns the circle's radius.
func (c *Circle) Radius() float64 { return c.radius }

// Mass returns the circle's mass (pi * r^2, unit density).
func (c *Circle) Mass() float64 { return c.mass }

// Bounds returns the box enclosing the circle at its current position.
func (c *Circle) Bounds() (AABB, bool) {
	return AABB{
		MinX: c.pos.X - c.radius,
		MinY: c.pos.Y - c.radius,
		MaxX: c.pos.X + c.radius,
		MaxY: c.pos.Y + c.radius,
	}, true
}

// CollidesWith reports whether c and o overlap, comparing squared center
// distance against the squared radius sum. Touching circles collide.
func (c *Circle) CollidesWith(o *Circle) bool {
	rsum := c.radius + o.radius
	return o.pos.Subtracted(c.pos).SquaredMagnitude() <= rsum*rsum
}

// ResolveCollision separates c and o and exchanges momentum along the
// line connecting their centers. Call only when CollidesWith is true.
//
// The velocity component along the center normal follows the 1D
// restitution formula for unequal masses; the tangential component is
// untouched (no friction, no rotation). Both circles are pushed apart by
// half the penetration depth each so the pair does not overlap on the
// next tick.
func (c *Circle) ResolveCollision(o *Circle) error {
	relative := c.pos.Subtracted(o.pos)
	distance := relative.Magnitude()
	if distance == 0 {
		return ErrCoincidentCenters
	}

	penetration := (c.radius + o.radius) - distance
	normal := relative.Scaled(1 / distance)

	vc := Dot(c.vel, normal)
	vo := Dot(o.vel, normal)
	tangentC := c.vel.Subtracted(normal.Scaled(vc))
	tangentO := o.vel.Subtracted(normal.Scaled(vo))

	// Positional correction: half the depth each, in opposite directions.
	c.Move(normal.Scaled(penetration / 2))
	o.Move(normal.Scaled(-penetration / 2))

	mc, mo := c.mass, o.mass
	total := mc + mo

	vcAfter := ((mc-Restitution*mo)*vc + (1+Restitution)*mo*vo) / total
	voAfter := ((1+Restitution)*mc*vc + (mo-Restitution*mc)*vo) / total

	c.vel = tangentC.Added(normal.Scaled(vcAfter))
	o.vel = tangentO.Added(normal.Scaled(voAfter))
	return nil
}

func isFinite(v Vec2) bool {
	return !math.IsInf(v.X, 0) && !math.IsNaN(v.X) &&
		!math.IsInf(v.Y, 0) && !math.IsNaN(v.Y)
}
