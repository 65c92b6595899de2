package accessibility

// Rect is an axis-aligned rectangle given by two corners.
// Node bounds are expressed in the parent's coordinate space,
// except for windows and parentless widgets, which are origin-anchored.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// RectFromOriginSize builds a rectangle from an origin point and extent.
func RectFromOriginSize(x, y, w, h float64) Rect {
	return Rect{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Transform is a linear scale applied to a node's subtree.
// Only the root carries one, encoding the display's scale factor.
type Transform struct {
	ScaleX float64
	ScaleY float64
}

// Scale returns a uniform scale transform.
func Scale(factor float64) Transform {
	return Transform{ScaleX: factor, ScaleY: factor}
}
