package world

// Rect is an axis-aligned rectangle used to describe a candidate room.
// Bounds satisfy X1 < X2 and Y1 < Y2 when built through NewRect with
// positive dimensions.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a rectangle from a top-left origin and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center coordinates of the rectangle, truncating
// toward the lower value. The result is always inside the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other. The comparison is inclusive,
// so rectangles that merely touch edges count as intersecting; this keeps at
// least one wall tile between any two accepted rooms.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}
