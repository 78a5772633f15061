package geo

// Rectangle is an axis-aligned bounding box stored as its four corners.
// Storing corners (rather than just Left/Bottom/Right/Top) lets
// transform.Matrix.TransformRectangle map all four independently and hand the
// result back through NewRectangleFromCorners, which re-derives the
// axis-aligned edges — the rectangle type's concern, not the matrix's.
type Rectangle struct {
	TL, TR, BL, BR Point
}

// NewRectangle builds a Rectangle from its axis-aligned edges, using
// PDF's bottom-origin convention: Left <= Right, Bottom <= Top.
func NewRectangle(left, bottom, right, top D) Rectangle {
	return Rectangle{
		TL: Point{X: left, Y: top},
		TR: Point{X: right, Y: top},
		BL: Point{X: left, Y: bottom},
		BR: Point{X: right, Y: bottom},
	}
}

// NewRectangleFromCorners builds a Rectangle from four arbitrary corner
// points, re-deriving axis-aligned edges as the min/max of the supplied
// coordinates. This is the constructor transform.Matrix.TransformRectangle uses:
// transforming a rectangle's four corners independently can leave them
// out of axis-aligned order (under rotation, for instance), and this
// constructor restores the invariant.
func NewRectangleFromCorners(corners ...Point) Rectangle {
	if len(corners) == 0 {
		return Rectangle{}
	}
	minX, maxX := corners[0].X, corners[0].X
	minY, maxY := corners[0].Y, corners[0].Y
	for _, c := range corners[1:] {
		if c.X.Cmp(minX) < 0 {
			minX = c.X
		}
		if c.X.Cmp(maxX) > 0 {
			maxX = c.X
		}
		if c.Y.Cmp(minY) < 0 {
			minY = c.Y
		}
		if c.Y.Cmp(maxY) > 0 {
			maxY = c.Y
		}
	}
	return NewRectangle(minX, minY, maxX, maxY)
}

// Left returns the rectangle's left edge.
func (r Rectangle) Left() D { return r.TL.X }

// Right returns the rectangle's right edge.
func (r Rectangle) Right() D { return r.TR.X }

// Top returns the rectangle's top edge.
func (r Rectangle) Top() D { return r.TL.Y }

// Bottom returns the rectangle's bottom edge.
func (r Rectangle) Bottom() D { return r.BL.Y }

// Width returns Right - Left.
func (r Rectangle) Width() D { return r.Right().Sub(r.Left()) }

// Height returns Top - Bottom.
func (r Rectangle) Height() D { return r.Top().Sub(r.Bottom()) }

// Corners returns the rectangle's four corners in TL, TR, BL, BR order.
func (r Rectangle) Corners() [4]Point {
	return [4]Point{r.TL, r.TR, r.BL, r.BR}
}

// ContainsX reports whether x lies within [Left, Right] of the rectangle.
func (r Rectangle) ContainsX(x D) bool {
	return x.Cmp(r.Left()) >= 0 && x.Cmp(r.Right()) <= 0
}

// Equal reports whether two rectangles have identical corners.
func (r Rectangle) Equal(other Rectangle) bool {
	return r.TL.Equal(other.TL) && r.TR.Equal(other.TR) &&
		r.BL.Equal(other.BL) && r.BR.Equal(other.BR)
}

// LineSegment is an immutable line segment between two points, used by
// the nearest-neighbor search alongside Point.
type LineSegment struct {
	A, B Point
}

// NewLineSegment constructs a LineSegment from its two endpoints.
func NewLineSegment(a, b Point) LineSegment {
	return LineSegment{A: a, B: b}
}

// Midpoint returns the segment's midpoint, computed in floating point
// since it requires dividing by two — exact halving of a decimal128
// value is not guaranteed to stay exact for odd scales, and the source
// material already accepts float64 for derived geometric queries like
// this one.
func (s LineSegment) Midpoint() Point {
	ax, _ := s.A.X.Float64()
	ay, _ := s.A.Y.Float64()
	bx, _ := s.B.X.Float64()
	by, _ := s.B.Y.Float64()
	return NewPoint((ax+bx)/2, (ay+by)/2)
}
