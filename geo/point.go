// Package geo provides the exact-decimal geometric primitives the
// segmenter and transform packages build on: points, vectors,
// axis-aligned rectangles, line segments, and a small distance toolkit.
package geo

import (
	"errors"

	"github.com/woodsbury/decimal128"
)

// ErrInvalidArgument is returned by functions given malformed input, such
// as an empty candidate set or a nil distance function.
var ErrInvalidArgument = errors.New("geo: invalid argument")

// D is the exact-decimal scalar used for every coordinate in this package.
// PDF coordinate math is decimal, not binary, so geometry here is built on
// decimal128.Decimal rather than float64; float64 only reappears at the
// edges (square roots, angles) where the source material itself drops to
// IEEE-754.
type D = decimal128.Decimal

// Zero is the exact-decimal zero value.
var Zero = decimal128.Zero

// Point is an immutable 2D point with exact-decimal coordinates.
type Point struct {
	X, Y D
}

// NewPoint constructs a Point from float64 coordinates, the common case
// when a caller already has device-space geometry in binary float form.
func NewPoint(x, y float64) Point {
	return Point{X: decimal128.FromFloat64(x), Y: decimal128.FromFloat64(y)}
}

// Vector is an immutable 2D displacement with exact-decimal components.
// It shares Point's representation; the distinction is purely semantic
// (a Vector has no position, only direction and magnitude). Matrix
// transforms apply the same formula to both, translation included — see
// transform.Matrix.TransformVector.
type Vector struct {
	X, Y D
}

// NewVector constructs a Vector from float64 components.
func NewVector(x, y float64) Vector {
	return Vector{X: decimal128.FromFloat64(x), Y: decimal128.FromFloat64(y)}
}

// Equal reports whether two points are exactly equal.
func (p Point) Equal(q Point) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Equal reports whether two vectors are exactly equal.
func (v Vector) Equal(w Vector) bool {
	return v.X.Cmp(w.X) == 0 && v.Y.Cmp(w.Y) == 0
}
