// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// Point represents a 2D position or, contextually, a free vector
// (displacement or direction). Point is a value type: every operation
// returns a new Point and two Points compare equal with ==.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) vec() r2.Vec { return r2.Vec(p) }

// Add returns the componentwise sum p + q.
func (p Point) Add(q Point) Point {
	return Point(r2.Add(p.vec(), q.vec()))
}

// Sub returns the componentwise difference p − q.
func (p Point) Sub(q Point) Point {
	return Point(r2.Sub(p.vec(), q.vec()))
}

// Mul returns p scaled by k.
func (p Point) Mul(k float64) Point {
	return Point(r2.Scale(k, p.vec()))
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return r2.Dot(p.vec(), q.vec())
}

// Cross returns the z-component of the 3D cross product of p and q.
// Positive when q lies counter-clockwise from p.
func (p Point) Cross(q Point) float64 {
	return r2.Cross(p.vec(), q.vec())
}

// Length returns the Euclidean norm of p.
func (p Point) Length() float64 {
	return r2.Norm(p.vec())
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Rotate rotates p as a free vector about the origin by angle radians,
// counter-clockwise.
func (p Point) Rotate(angle float64) Point {
	return Point(r2.Rotate(p.vec(), angle, r2.Vec{}))
}

// Normalize returns the unit vector in the direction of p.
// Returns ErrDivisionByZero when p has zero length.
func (p Point) Normalize() (Point, error) {
	if p.Length() == 0 {
		return Point{}, fmt.Errorf("Point.Normalize: %w", ErrDivisionByZero)
	}

	return Point(r2.Unit(p.vec())), nil
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return p.Add(q).Mul(0.5)
}

// IsFinite reports whether both coordinates are neither NaN nor ±Inf.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// ApproxEqual reports whether each coordinate of p and q agrees within tol,
// absolutely or relatively.
func (p Point) ApproxEqual(q Point, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(p.X, q.X, tol, tol) &&
		scalar.EqualWithinAbsOrRel(p.Y, q.Y, tol, tol)
}

// String formats p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// LogValue renders p as a {x, y} group in structured logs.
func (p Point) LogValue() slog.Value {
	return slog.GroupValue(slog.Float64("x", p.X), slog.Float64("y", p.Y))
}

// Add returns a + b.
func Add(a, b Point) Point { return a.Add(b) }

// Subtract returns a − b.
func Subtract(a, b Point) Point { return a.Sub(b) }

// Multiply returns p scaled by k.
func Multiply(p Point, k float64) Point { return p.Mul(k) }

// Rotate returns p rotated counter-clockwise about the origin by angle radians.
func Rotate(p Point, angle float64) Point { return p.Rotate(angle) }

// Length returns the Euclidean norm of p.
func Length(p Point) float64 { return p.Length() }

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 { return a.Distance(b) }

// Normalize returns the unit vector of p, or ErrDivisionByZero.
func Normalize(p Point) (Point, error) { return p.Normalize() }
