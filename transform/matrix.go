// Package transform provides the affine transformation matrix used to
// map PDF device-space geometry into analysis space, expressed in the
// full nine-entry PDF layout (the homogeneous third column, normally
// 0, 0, 1, included) rather than the usual six free parameters.
package transform

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tsawler/xycut/geo"
	"github.com/woodsbury/decimal128"
)

// ErrInvalidArgument is returned by FromArray when given the wrong
// number of values.
var ErrInvalidArgument = errors.New("transform: invalid argument")

// ErrOutOfRange is returned by Matrix.At when row or col falls outside
// [0, 3).
var ErrOutOfRange = errors.New("transform: index out of range")

// Matrix is a 3x3 homogeneous affine transform in PDF's column
// convention: (A, C, E) is column 0, (B, D, F) is column 1, and
// (Row1, Row2, Row3) is column 2. Row1/Row2/Row3 are 0, 0, 1 for every
// PDF content-stream transform and exist only so this type can compose
// with a genuinely projective matrix without losing information.
//
// Nine scalar fields, not a backing array: the value is small and
// cheap to copy by value.
type Matrix struct {
	A, B D
	C, D D
	E, F D

	Row1, Row2, Row3 D
}

// D is the exact-decimal scalar shared with package geo.
type D = geo.D

// Identity is the 3x3 identity matrix.
var Identity = Matrix{
	A: decimal128.FromInt64(1), D: decimal128.FromInt64(1),
	Row3: decimal128.FromInt64(1),
}

// FromValues builds a Matrix from its nine entries in row-major reading
// order (A, B, Row1, C, D, Row2, E, F, Row3).
func FromValues(a, b, r1, c, d, r2, e, f, r3 D) Matrix {
	return Matrix{A: a, B: b, Row1: r1, C: c, D: d, Row2: r2, E: e, F: f, Row3: r3}
}

// FromPDFTuple builds a Matrix from the canonical PDF 6-tuple
// (a, b, c, d, e, f); the third column defaults to (0, 0, 1).
func FromPDFTuple(a, b, c, d, e, f D) Matrix {
	return Matrix{A: a, B: b, C: c, D: d, E: e, F: f, Row3: decimal128.FromInt64(1)}
}

// FromScaleTranslate builds a Matrix from a 4-tuple (a, b, c, d); both
// translation components are zero.
func FromScaleTranslate(a, b, c, d D) Matrix {
	return Matrix{A: a, B: b, C: c, D: d, Row3: decimal128.FromInt64(1)}
}

// FromArray builds a Matrix from a slice of length 9, 6, or 4, matching
// FromValues, FromPDFTuple, and FromScaleTranslate respectively. Any
// other length is ErrInvalidArgument.
func FromArray(values []D) (Matrix, error) {
	switch len(values) {
	case 9:
		return FromValues(values[0], values[1], values[2], values[3], values[4],
			values[5], values[6], values[7], values[8]), nil
	case 6:
		return FromPDFTuple(values[0], values[1], values[2], values[3], values[4], values[5]), nil
	case 4:
		return FromScaleTranslate(values[0], values[1], values[2], values[3]), nil
	default:
		return Matrix{}, fmt.Errorf("transform: FromArray expects length 4, 6, or 9, got %d: %w",
			len(values), ErrInvalidArgument)
	}
}

// GetTranslation returns the identity matrix with E=x, F=y.
func GetTranslation(x, y D) Matrix {
	m := Identity
	m.E = x
	m.F = y
	return m
}

// At returns the entry at (row, col), both in [0, 3). Row 0 is
// (A, B, Row1), row 1 is (C, D, Row2), row 2 is (E, F, Row3).
func (m Matrix) At(row, col int) (D, error) {
	if row < 0 || row >= 3 || col < 0 || col >= 3 {
		return D{}, fmt.Errorf("transform: At(%d, %d): %w", row, col, ErrOutOfRange)
	}
	rows := [3][3]D{
		{m.A, m.B, m.Row1},
		{m.C, m.D, m.Row2},
		{m.E, m.F, m.Row3},
	}
	return rows[row][col], nil
}

// TransformPoint maps p by (A*x + C*y + E, B*x + D*y + F).
func (m Matrix) TransformPoint(p geo.Point) geo.Point {
	x := m.A.Mul(p.X).Add(m.C.Mul(p.Y)).Add(m.E)
	y := m.B.Mul(p.X).Add(m.D.Mul(p.Y)).Add(m.F)
	return geo.Point{X: x, Y: y}
}

// TransformVector maps v with the same formula as TransformPoint,
// translation included. Mathematically a direction ought to be
// invariant under translation; this matches the source behavior and is
// preserved here for bit-exact compatibility.
func (m Matrix) TransformVector(v geo.Vector) geo.Vector {
	x := m.A.Mul(v.X).Add(m.C.Mul(v.Y)).Add(m.E)
	y := m.B.Mul(v.X).Add(m.D.Mul(v.Y)).Add(m.F)
	return geo.Vector{X: x, Y: y}
}

// TransformRectangle maps each of r's four corners independently and
// rebuilds a rectangle from the results.
func (m Matrix) TransformRectangle(r geo.Rectangle) geo.Rectangle {
	corners := r.Corners()
	mapped := make([]geo.Point, len(corners))
	for i, c := range corners {
		mapped[i] = m.TransformPoint(c)
	}
	return geo.NewRectangleFromCorners(mapped...)
}

// TransformX returns A*x + E, the pure horizontal mapping with y=0.
func (m Matrix) TransformX(x D) D {
	return m.A.Mul(x).Add(m.E)
}

// Translate returns a copy of m with only the translation row updated:
// E' = x*A + y*C + E, F' = x*B + y*D + F, Row3' = x*Row1 + y*Row2 +
// Row3. Every other entry is unchanged. This is the direct-formula
// equivalent of GetTranslation(x, y).Multiply(m), with the translation
// matrix on the left.
func (m Matrix) Translate(x, y D) Matrix {
	out := m
	out.E = x.Mul(m.A).Add(y.Mul(m.C)).Add(m.E)
	out.F = x.Mul(m.B).Add(y.Mul(m.D)).Add(m.F)
	out.Row3 = x.Mul(m.Row1).Add(y.Mul(m.Row2)).Add(m.Row3)
	return out
}

// Multiply returns the standard 3x3 matrix product m * other.
func (m Matrix) Multiply(other Matrix) Matrix {
	mm := [3][3]D{
		{m.A, m.B, m.Row1},
		{m.C, m.D, m.Row2},
		{m.E, m.F, m.Row3},
	}
	om := [3][3]D{
		{other.A, other.B, other.Row1},
		{other.C, other.D, other.Row2},
		{other.E, other.F, other.Row3},
	}
	var out [3][3]D
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := geo.Zero
			for k := 0; k < 3; k++ {
				sum = sum.Add(mm[i][k].Mul(om[k][j]))
			}
			out[i][j] = sum
		}
	}
	return Matrix{
		A: out[0][0], B: out[0][1], Row1: out[0][2],
		C: out[1][0], D: out[1][1], Row2: out[1][2],
		E: out[2][0], F: out[2][1], Row3: out[2][2],
	}
}

// MultiplyScalar multiplies every entry by s.
func (m Matrix) MultiplyScalar(s D) Matrix {
	return Matrix{
		A: m.A.Mul(s), B: m.B.Mul(s), Row1: m.Row1.Mul(s),
		C: m.C.Mul(s), D: m.D.Mul(s), Row2: m.Row2.Mul(s),
		E: m.E.Mul(s), F: m.F.Mul(s), Row3: m.Row3.Mul(s),
	}
}

// GetScalingFactorX returns the horizontal scaling factor. When B and C
// are both zero the matrix is a pure scale (possibly negative) and A is
// returned directly, sign included. Otherwise the matrix decomposes as
// a rotation composed with a scale, and the magnitude sqrt(A^2 + B^2) is
// returned; this step is promoted to float64 for the square root and
// cast back to decimal, so callers accept that precision loss.
func (m Matrix) GetScalingFactorX() D {
	zero := geo.Zero
	if m.B.Cmp(zero) == 0 && m.C.Cmp(zero) == 0 {
		return m.A
	}
	a, _ := m.A.Float64()
	b, _ := m.B.Float64()
	mag := math.Sqrt(a*a + b*b)
	return decimal128.FromFloat64(mag)
}

// Equal reports whether two matrices are equal entry-by-entry.
func (m Matrix) Equal(other Matrix) bool {
	return m.A.Cmp(other.A) == 0 && m.B.Cmp(other.B) == 0 && m.Row1.Cmp(other.Row1) == 0 &&
		m.C.Cmp(other.C) == 0 && m.D.Cmp(other.D) == 0 && m.Row2.Cmp(other.Row2) == 0 &&
		m.E.Cmp(other.E) == 0 && m.F.Cmp(other.F) == 0 && m.Row3.Cmp(other.Row3) == 0
}

// String renders the matrix as three CRLF-separated, comma-joined rows.
func (m Matrix) String() string {
	rows := [][3]D{
		{m.A, m.B, m.Row1},
		{m.C, m.D, m.Row2},
		{m.E, m.F, m.Row3},
	}
	lines := make([]string, len(rows))
	for i, row := range rows {
		parts := make([]string, len(row))
		for j, v := range row {
			parts[j] = v.String()
		}
		lines[i] = strings.Join(parts, ",")
	}
	return strings.Join(lines, "\r\n")
}
