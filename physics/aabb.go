package physics

// AABB is an axis-aligned bounding box. Invariant: MinX <= MaxX and
// MinY <= MaxY. Boxes are recomputed from a body's current shape each
// query, never stored.
type AABB struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewAABB returns the box spanning the given corners.
func NewAABB(minX, minY, maxX, maxY float64) AABB {
	return AABB{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Overlaps reports whether a and b share at least one point. Boxes that
// only touch along an edge count as overlapping.
func (a AABB) Overlaps(b AABB) bool {
	return !(a.MaxX < b.MinX || b.MaxX < a.MinX ||
		a.MaxY < b.MinY || b.MaxY < a.MinY)
}

// Width returns the horizontal extent of a.
func (a AABB) Width() float64 {
	return a.MaxX - a.MinX
}

// Height returns the vertical extent of a.
func (a AABB) Height() float64 {
	return a.MaxY - a.MinY
}

// Center returns the midpoint of a.
func (a AABB) Center() Vec2 {
	return Vec2{X: (a.MinX + a.MaxX) / 2, Y: (a.MinY + a.MaxY) / 2}
}
