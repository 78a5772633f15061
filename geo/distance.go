package geo

import "math"

// Euclidean returns the straight-line distance between p and q.
func Euclidean(p, q Point) float64 {
	dx, dy := delta(p, q)
	return math.Sqrt(dx*dx + dy*dy)
}

// WeightedEuclidean returns the straight-line distance between p and q
// with each axis scaled by wx, wy before squaring. wx=wy=1 reduces to
// Euclidean.
func WeightedEuclidean(p, q Point, wx, wy float64) float64 {
	dx, dy := delta(p, q)
	return math.Sqrt(wx*dx*dx + wy*dy*dy)
}

// Manhattan returns the L1 (taxicab) distance between p and q.
func Manhattan(p, q Point) float64 {
	dx, dy := delta(p, q)
	return math.Abs(dx) + math.Abs(dy)
}

// Angle returns the angle in degrees from p to q, via atan2(dy, dx).
func Angle(p, q Point) float64 {
	dx, dy := delta(p, q)
	return math.Atan2(dy, dx) * 180 / math.Pi
}

// Vertical returns the absolute difference in Y between p and q.
func Vertical(p, q Point) float64 {
	_, dy := delta(p, q)
	return math.Abs(dy)
}

// Horizontal returns the absolute difference in X between p and q.
func Horizontal(p, q Point) float64 {
	dx, _ := delta(p, q)
	return math.Abs(dx)
}

func delta(p, q Point) (dx, dy float64) {
	px, _ := p.X.Float64()
	py, _ := p.Y.Float64()
	qx, _ := q.X.Float64()
	qy, _ := q.Y.Float64()
	return qx - px, qy - py
}

// FindIndexNearest performs a linear scan over candidates and returns
// the index of the one nearest to element, measured as
// distance(candidateProjection(candidate), pivotProjection(element)).
// Candidates equal to element are excluded from consideration. Returns
// (-1, +Inf, nil) if no candidate qualifies, and ErrInvalidArgument if
// candidates is empty or distance is nil.
func FindIndexNearest[T comparable](
	element T,
	candidates []T,
	candidateProjection func(T) Point,
	pivotProjection func(T) Point,
	distance func(Point, Point) float64,
) (int, float64, error) {
	if len(candidates) == 0 || distance == nil {
		return -1, math.Inf(1), ErrInvalidArgument
	}
	pivot := pivotProjection(element)
	bestIndex := -1
	bestDist := math.Inf(1)
	for i, c := range candidates {
		if c == element {
			continue
		}
		d := distance(candidateProjection(c), pivot)
		if d < bestDist {
			bestDist = d
			bestIndex = i
		}
	}
	return bestIndex, bestDist, nil
}

// FindIndexNearestSegment is FindIndexNearest's line-segment variant:
// candidates and the pivot element project to LineSegments rather than
// Points, with identical exclusion and empty/nil-distance semantics.
func FindIndexNearestSegment[T comparable](
	element T,
	candidates []T,
	candidateProjection func(T) LineSegment,
	pivotProjection func(T) LineSegment,
	distance func(LineSegment, LineSegment) float64,
) (int, float64, error) {
	if len(candidates) == 0 || distance == nil {
		return -1, math.Inf(1), ErrInvalidArgument
	}
	pivot := pivotProjection(element)
	bestIndex := -1
	bestDist := math.Inf(1)
	for i, c := range candidates {
		if c == element {
			continue
		}
		d := distance(candidateProjection(c), pivot)
		if d < bestDist {
			bestDist = d
			bestIndex = i
		}
	}
	return bestIndex, bestDist, nil
}

// SegmentEuclidean returns the Euclidean distance between the midpoints
// of two line segments — the segment analogue of Euclidean(p, q), usable
// as the distance argument to FindIndexNearestSegment.
func SegmentEuclidean(a, b LineSegment) float64 {
	return Euclidean(a.Midpoint(), b.Midpoint())
}
