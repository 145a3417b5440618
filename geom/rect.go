package geom

// Rect is an axis-aligned rectangle, used by the bounding pass to close
// off the unbounded edges of a Voronoi diagram.
type Rect struct {
	XLeft, YLeft   float64
	XRight, YRight float64
}

// NewRect builds a Rect from the four box coordinates, normalizing so that
// XLeft <= XRight and YLeft <= YRight regardless of the order the caller
// supplied them in.
func NewRect(xLeft, yLeft, xRight, yRight float64) Rect {
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}
	if yLeft > yRight {
		yLeft, yRight = yRight, yLeft
	}
	return Rect{XLeft: xLeft, YLeft: yLeft, XRight: xRight, YRight: yRight}
}

// Contains reports whether p lies within the rectangle (inclusive of its
// boundary).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.XLeft && p.X <= r.XRight && p.Y >= r.YLeft && p.Y <= r.YRight
}

// Expand grows the rectangle, if necessary, so that it encloses p. It
// returns the (possibly unchanged) expanded rectangle.
func (r Rect) Expand(p Point) Rect {
	if p.X < r.XLeft {
		r.XLeft = p.X
	}
	if p.X > r.XRight {
		r.XRight = p.X
	}
	if p.Y < r.YLeft {
		r.YLeft = p.Y
	}
	if p.Y > r.YRight {
		r.YRight = p.Y
	}
	return r
}
