package canvas

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Point is a 2D point in canvas coordinates.
type Point struct {
	X, Y float64
}

// Matrix is a 2D affine transformation in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// mapping x' = a*x + b*y + c and y' = d*x + e*y + f.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate creates a rotation matrix. angle is in radians.
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply returns m * other: other is applied first.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// IsIdentity reports whether m is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// aff3 converts m to the x/image representation.
func (m Matrix) aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}
