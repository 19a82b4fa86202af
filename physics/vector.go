package physics

import "math"

// Vec2 is a 2D vector. Screen convention: +X right, +Y down.
type Vec2 struct {
	X, Y float64
}

// Added returns v + o without modifying v.
func (v Vec2) Added(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Subtracted returns v - o without modifying v.
func (v Vec2) Subtracted(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scaled returns v * s without modifying v.
func (v Vec2) Scaled(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Normalized returns v scaled to unit length. Precondition: v must not be
// the zero vector; the result is NaN otherwise.
func (v Vec2) Normalized() Vec2 {
	return v.Scaled(1 / v.Magnitude())
}

// Add sets v to v + o.
func (v *Vec2) Add(o Vec2) {
	v.X += o.X
	v.Y += o.Y
}

// Subtract sets v to v - o.
func (v *Vec2) Subtract(o Vec2) {
	v.X -= o.X
	v.Y -= o.Y
}

// Scale sets v to v * s.
func (v *Vec2) Scale(s float64) {
	v.X *= s
	v.Y *= s
}

// Normalize scales v to unit length in place. Same zero-vector
// precondition as Normalized.
func (v *Vec2) Normalize() {
	v.Scale(1 / v.Magnitude())
}

// Magnitude returns the length of v.
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// SquaredMagnitude returns the squared length of v. Cheaper than
// Magnitude; use it when only relative distances matter.
func (v Vec2) SquaredMagnitude() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Dot returns the inner product of a and b.
func Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the 2D outer product of a and b. The sign indicates
// rotational orientation.
func Cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
