package physics

import "image/color"

var (
	// DefaultTint is the color a body renders with when it was not part
	// of a collision this tick.
	DefaultTint = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	// HighlightTint marks both participants of a collision for one tick.
	// Visualization only; it has no physical meaning.
	HighlightTint = color.RGBA{R: 0xff, G: 0x5c, B: 0x5c, A: 0xff}
)

// Body is a simulated entity owned by a World. Implementations without a
// collidable shape report ok=false from Bounds and are skipped by every
// collision and visibility test.
type Body interface {
	// ID is the body's identity, allocated once by the owning World's
	// monotonic counter and never reused. It is the sole removal key.
	ID() uint64
	Position() Vec2
	Velocity() Vec2
	// Accelerate adds dv to the body's velocity.
	Accelerate(dv Vec2)
	// Move adds d to the body's position.
	Move(d Vec2)
	// Bounds returns the body's current bounding box, or ok=false when
	// the body has no collidable shape.
	Bounds() (AABB, bool)
	// Color is the body's current render tint.
	Color() color.RGBA
	// SetColor sets the current tint. World resets it to the base tint
	// at the start of every collision pass.
	SetColor(c color.RGBA)
	// SetBaseColor sets the tint the body returns to when unhighlighted.
	SetBaseColor(c color.RGBA)
	// ResetColor restores the base tint.
	ResetColor()
}

// baseBody carries the state shared by all body kinds.
type baseBody struct {
	id   uint64
	pos  Vec2
	vel  Vec2
	tint color.RGBA
	base color.RGBA
}

func (b *baseBody) ID() uint64 { return b.id }

func (b *baseBody) Position() Vec2 { return b.pos }

func (b *baseBody) Velocity() Vec2 { return b.vel }

func (b *baseBody) Accelerate(dv Vec2) { b.vel.Add(dv) }

func (b *baseBody) Move(d Vec2) { b.pos.Add(d) }

func (b *baseBody) Color() color.RGBA { return b.tint }

func (b *baseBody) SetColor(c color.RGBA) { b.tint = c }

func (b *baseBody) SetBaseColor(c color.RGBA) {
	b.base = c
	b.tint = c
}

// ResetColor restores the base tint at the start of a collision pass.
func (b *baseBody) ResetColor() { b.tint = b.base }
