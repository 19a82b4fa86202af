package physics

// FloorRestitution damps the vertical velocity on a bottom-boundary
// bounce. Deliberately weaker than body-body restitution.
const FloorRestitution = 0.5

// World owns the live body collection, the gravity vector, and the
// per-tick simulation algorithm. It is single-threaded: a Step call runs
// to completion and the collection is never observed half-updated.
type World struct {
	bodies  []Body
	gravity Vec2
	bounds  AABB
	nextID  uint64
}

// NewWorld returns an empty world with the given gravity and boundary
// rectangle. Only the bottom edge of the boundary is solid.
func NewWorld(gravity Vec2, bounds AABB) *World {
	return &World{gravity: gravity, bounds: bounds}
}

// Gravity returns the world's gravity vector.
func (w *World) Gravity() Vec2 { return w.gravity }

// SetGravity replaces the world's gravity vector. Takes effect on the
// next Step.
func (w *World) SetGravity(g Vec2) { w.gravity = g }

// Bounds returns the world's boundary rectangle.
func (w *World) Bounds() AABB { return w.bounds }

// NextID allocates a fresh body identity. IDs are monotonic per world
// and never reused, so independent worlds don't share identity space.
func (w *World) NextID() uint64 {
	w.nextID++
	return w.nextID
}

// AddBody inserts a live body. The body must already carry a unique id,
// position, and velocity.
func (w *World) AddBody(b Body) {
	w.bodies = append(w.bodies, b)
}

// SpawnCircle allocates an id, constructs a circle, and inserts it.
func (w *World) SpawnCircle(pos, vel Vec2, radius float64) (*Circle, error) {
	c, err := NewCircle(w.NextID(), pos, vel, radius)
	if err != nil {
		return nil, err
	}
	w.AddBody(c)
	return c, nil
}

// RemoveBody removes and returns the body with the given id. The second
// return is false when no live body has that id; a missing id is an
// absence, not a fault, and the collection is left unchanged.
func (w *World) RemoveBody(id uint64) (Body, bool) {
	for i, b := range w.bodies {
		if b.ID() == id {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return b, true
		}
	}
	return nil, false
}

// Bodies returns a snapshot of the live bodies. The slice is a copy;
// mutating it does not affect the world.
func (w *World) Bodies() []Body {
	out := make([]Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Len returns the number of live bodies.
func (w *World) Len() int { return len(w.bodies) }

// Step advances the simulation by timeDeltaMs milliseconds:
//
//  1. integrate every body (gravity impulse, then displacement —
//     semi-implicit Euler, velocity before position)
//  2. bounce circles off the bottom boundary
//  3. reset highlight tints, then resolve every overlapping circle pair
//
// Each unordered pair is resolved at most once per tick, in index order.
// A resolution that reintroduces overlap with a third body is left for
// the next tick; there is no iterative solver.
func (w *World) Step(timeDeltaMs float64) {
	dt := timeDeltaMs / 1000
	gravityImpulse := w.gravity.Scaled(dt)

	for _, b := range w.bodies {
		b.Accelerate(gravityImpulse)
		b.Move(b.Velocity().Scaled(dt))
	}

	for _, b := range w.bodies {
		if c, ok := b.(*Circle); ok {
			w.bounceOffFloor(c)
		}
	}

	for _, b := range w.bodies {
		b.ResetColor()
	}
	for i := 0; i < len(w.bodies); i++ {
		boundsI, ok := w.bodies[i].Bounds()
		if !ok {
			continue
		}
		for k := i + 1; k < len(w.bodies); k++ {
			boundsK, ok := w.bodies[k].Bounds()
			if !ok {
				continue
			}
			if !boundsI.Overlaps(boundsK) {
				continue
			}
			a, ok := w.bodies[i].(*Circle)
			if !ok {
				continue
			}
			b, ok := w.bodies[k].(*Circle)
			if !ok {
				continue
			}
			if !a.CollidesWith(b) {
				continue
			}
			a.SetColor(HighlightTint)
			b.SetColor(HighlightTint)
			if err := a.ResolveCollision(b); err != nil {
				// Coincident centers have no collision normal; leave the
				// pair for a later tick once gravity separates them.
				continue
			}
			boundsI, _ = w.bodies[i].Bounds()
		}
	}
}

// bounceOffFloor reflects a circle whose bottom edge passed the boundary
// floor while moving downward. The bounce is treated as having happened
// at the sub-tick instant of contact: the vertical velocity is inverted
// and damped, and the position is corrected to where the circle would be
// had it bounced exactly at the penetration instant.
func (w *World) bounceOffFloor(c *Circle) {
	penetration := (c.pos.Y + c.radius) - w.bounds.MaxY
	if penetration <= 0 || c.vel.Y <= 0 {
		return
	}
	secondsFromCollision := penetration / c.vel.Y
	c.vel.Y = -c.vel.Y * FloorRestitution
	c.pos.Y += -penetration + c.vel.Y*secondsFromCollision
}
