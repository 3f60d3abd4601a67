package canvas

import (
	"math"

	"github.com/srwiley/rasterx"
)

// Point is a 2D point, in user or device space depending on context.
type Point struct {
	X, Y float64
}

// Matrix is a 2D affine transform laid out like the HTML canvas one:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
//
// Composition is rasterx's; the methods here only keep results typed as Matrix.
type Matrix struct {
	rasterx.Matrix2D
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{rasterx.Identity}
}

// Apply maps (x, y) through the transform.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.Transform(x, y)
}

// ApplyPoint maps p through the transform.
func (m Matrix) ApplyPoint(p Point) Point {
	x, y := m.Transform(p.X, p.Y)
	return Point{X: x, Y: y}
}

// Multiply returns the transform that applies n first and then m.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{m.Mult(n.Matrix2D)}
}

// Translate returns m followed by a translation in m's local space.
func (m Matrix) Translate(tx, ty float64) Matrix {
	return Matrix{m.Matrix2D.Translate(tx, ty)}
}

// Scale returns m with a local scale applied.
func (m Matrix) Scale(sx, sy float64) Matrix {
	return Matrix{m.Matrix2D.Scale(sx, sy)}
}

// Rotate returns m with a local rotation of theta radians (clockwise on a y-down surface).
func (m Matrix) Rotate(theta float64) Matrix {
	return Matrix{m.Matrix2D.Rotate(theta)}
}

// ScaleFactor is the average linear scale of the transform, used for line widths and radii.
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}
