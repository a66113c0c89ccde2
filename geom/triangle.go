// SPDX-License-Identifier: MIT

package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/planar/internal/linalg"
)

// Triangle is described by three non-collinear vertices A, B, C.
//
// Side lengths follow the opposite-vertex convention and are derived from
// the current vertices on every call:
//
//	a = |BC| (opposite A),  b = |CA| (opposite B),  c = |AB| (opposite C)
//
// Collinearity is judged relative to the triangle's size: the vertices are
// degenerate when |(B−A)×(C−A)| ≤ eps·max(a, b, c)², with eps set by
// WithEpsilon (DefaultEpsilon otherwise).
type Triangle struct {
	firstPoint  Point
	secondPoint Point
	thirdPoint  Point
	eps         float64
}

// NewTriangle creates a triangle. Returns ErrInvalidArgument for non-finite
// vertices and ErrDegenerateShape for collinear ones.
func NewTriangle(firstPoint, secondPoint, thirdPoint Point, opts ...Option) (*Triangle, error) {
	const op = "NewTriangle"
	if err := checkPoints(op, firstPoint, secondPoint, thirdPoint); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	t := &Triangle{firstPoint: firstPoint, secondPoint: secondPoint, thirdPoint: thirdPoint, eps: o.epsilon}
	if t.degenerate() {
		Logger().Debug("geom: rejected collinear triangle", "op", op,
			"a", firstPoint, "b", secondPoint, "c", thirdPoint)

		return nil, fmt.Errorf("%s: collinear vertices: %w", op, ErrDegenerateShape)
	}

	return t, nil
}

// FirstPoint returns vertex A.
func (t *Triangle) FirstPoint() Point { return t.firstPoint }

// SecondPoint returns vertex B.
func (t *Triangle) SecondPoint() Point { return t.secondPoint }

// ThirdPoint returns vertex C.
func (t *Triangle) ThirdPoint() Point { return t.thirdPoint }

// Vertices returns A, B, C.
func (t *Triangle) Vertices() [3]Point {
	return [3]Point{t.firstPoint, t.secondPoint, t.thirdPoint}
}

// Sides returns the side lengths opposite A, B and C respectively.
func (t *Triangle) Sides() (a, b, c float64) {
	a = t.secondPoint.Distance(t.thirdPoint)
	b = t.thirdPoint.Distance(t.firstPoint)
	c = t.firstPoint.Distance(t.secondPoint)

	return a, b, c
}

// degenerate reports whether the vertices are collinear under t.eps.
//
// The edge vectors are first rescaled by a power of two so their largest
// coordinate lies in [0.5, 1); the test then neither overflows for huge
// coordinates nor underflows for tiny ones, and an exact zero cross product
// stays exactly zero.
func (t *Triangle) degenerate() bool {
	ab := t.secondPoint.Sub(t.firstPoint)
	ac := t.thirdPoint.Sub(t.firstPoint)
	m := math.Max(math.Max(math.Abs(ab.X), math.Abs(ab.Y)), math.Max(math.Abs(ac.X), math.Abs(ac.Y)))
	if m == 0 || !isFinite(m) {
		return true
	}
	_, exp := math.Frexp(m)
	unit := math.Ldexp(1, -exp)
	ab, ac = ab.Mul(unit), ac.Mul(unit)
	side := math.Max(ab.Length(), math.Max(ac.Length(), ac.Sub(ab).Length()))

	return math.Abs(ab.Cross(ac))/(side*side) <= t.eps
}

// checkShape guards the derived constructions.
func (t *Triangle) checkShape(op string) error {
	if t.degenerate() {
		Logger().Debug("geom: degenerate triangle", "op", op,
			"a", t.firstPoint, "b", t.secondPoint, "c", t.thirdPoint)

		return fmt.Errorf("%s: collinear vertices: %w", op, ErrDegenerateShape)
	}

	return nil
}

// Center returns the centroid (A + B + C)/3.
func (t *Triangle) Center() Point {
	return t.firstPoint.Add(t.secondPoint).Add(t.thirdPoint).Mul(1.0 / 3)
}

// Perimeter returns a + b + c.
func (t *Triangle) Perimeter() float64 {
	a, b, c := t.Sides()

	return a + b + c
}

// Area returns the area by Heron's formula with p = Perimeter/2.
// A non-positive radicand (collinear vertices) yields 0.
func (t *Triangle) Area() float64 {
	a, b, c := t.Sides()
	p := (a + b + c) / 2
	r := p * (p - a) * (p - b) * (p - c)
	if r <= 0 {
		return 0
	}

	return math.Sqrt(r)
}

// CircumscribedCircle returns the circle through A, B and C.
//
// Implementation:
//   - Stage 1: reject collinear vertices (ErrDegenerateShape).
//   - Stage 2: with Q = O − A, the perpendicular bisectors of AB and AC give
//     2(B−A)·Q = |B−A|² and 2(C−A)·Q = |C−A|²; solve for Q.
//   - Stage 3: radius = a·b·c / (4·Area).
func (t *Triangle) CircumscribedCircle() (*Circle, error) {
	const op = "Triangle.CircumscribedCircle"
	center, err := t.circumcenter(op)
	if err != nil {
		return nil, err
	}
	a, b, c := t.Sides()
	area := t.Area()
	if area == 0 {
		return nil, fmt.Errorf("%s: zero area: %w", op, ErrDegenerateShape)
	}

	return &Circle{center: center, radius: a * b * c / (4 * area)}, nil
}

func (t *Triangle) circumcenter(op string) (Point, error) {
	if err := t.checkShape(op); err != nil {
		return Point{}, err
	}
	ab := t.secondPoint.Sub(t.firstPoint)
	ac := t.thirdPoint.Sub(t.firstPoint)
	x, y, err := linalg.Solve2(
		[2][2]float64{{2 * ab.X, 2 * ab.Y}, {2 * ac.X, 2 * ac.Y}},
		[2]float64{ab.Dot(ab), ac.Dot(ac)},
		t.eps,
	)
	if err != nil {
		return Point{}, degenerateSystem(op, err)
	}

	return t.firstPoint.Add(Pt(x, y)), nil
}

// InscribedCircle returns the circle tangent to all three sides.
// The incenter weights each vertex by the length of the opposite side:
// (a·A + b·B + c·C)/(a + b + c); the radius is 2·Area/Perimeter.
func (t *Triangle) InscribedCircle() (*Circle, error) {
	const op = "Triangle.InscribedCircle"
	if err := t.checkShape(op); err != nil {
		return nil, err
	}
	a, b, c := t.Sides()
	perimeter := a + b + c
	if perimeter == 0 {
		return nil, fmt.Errorf("%s: zero perimeter: %w", op, ErrDivisionByZero)
	}
	area := t.Area()
	if area == 0 {
		return nil, fmt.Errorf("%s: zero area: %w", op, ErrDegenerateShape)
	}
	center := t.firstPoint.Mul(a).
		Add(t.secondPoint.Mul(b)).
		Add(t.thirdPoint.Mul(c)).
		Mul(1 / perimeter)

	return &Circle{center: center, radius: 2 * area / perimeter}, nil
}

// Orthocenter returns the intersection of the altitudes.
//
// With Q = H − A the altitude conditions (H−A)·(C−B) = 0 and
// (H−B)·(C−A) = 0 become
//
//	(C−B)·Q = 0
//	(C−A)·Q = (B−A)·(C−A)
//
// which is singular exactly when the vertices are collinear.
func (t *Triangle) Orthocenter() (Point, error) {
	return t.orthocenter("Triangle.Orthocenter")
}

func (t *Triangle) orthocenter(op string) (Point, error) {
	if err := t.checkShape(op); err != nil {
		return Point{}, err
	}
	bc := t.thirdPoint.Sub(t.secondPoint)
	ab := t.secondPoint.Sub(t.firstPoint)
	ac := t.thirdPoint.Sub(t.firstPoint)
	x, y, err := linalg.Solve2(
		[2][2]float64{{bc.X, bc.Y}, {ac.X, ac.Y}},
		[2]float64{0, ab.Dot(ac)},
		t.eps,
	)
	if err != nil {
		return Point{}, degenerateSystem(op, err)
	}

	return t.firstPoint.Add(Pt(x, y)), nil
}

// NinePointsCircle returns the nine-point circle: centered halfway between
// the circumcenter and the orthocenter, with half the circumradius.
func (t *Triangle) NinePointsCircle() (*Circle, error) {
	const op = "Triangle.NinePointsCircle"
	circum, err := t.CircumscribedCircle()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ortho, err := t.orthocenter(op)
	if err != nil {
		return nil, err
	}

	return &Circle{center: circum.center.Midpoint(ortho), radius: circum.radius / 2}, nil
}

// Translate moves all vertices so that the centroid lands on newCenter.
func (t *Triangle) Translate(newCenter Point) error {
	if err := checkTarget("Triangle.Translate", newCenter); err != nil {
		return err
	}
	t.set(translated(t.Center(), newCenter, t.firstPoint, t.secondPoint, t.thirdPoint))

	return nil
}

// Rotate turns all vertices about the centroid by angle radians.
func (t *Triangle) Rotate(angle float64) error {
	if err := checkAngle("Triangle.Rotate", angle); err != nil {
		return err
	}
	t.set(rotated(t.Center(), angle, t.firstPoint, t.secondPoint, t.thirdPoint))

	return nil
}

// Scale multiplies every vertex offset from the centroid by coefficient.
func (t *Triangle) Scale(coefficient float64) error {
	if err := checkCoefficient("Triangle.Scale", coefficient); err != nil {
		return err
	}
	t.set(scaled(t.Center(), coefficient, t.firstPoint, t.secondPoint, t.thirdPoint))

	return nil
}

func (t *Triangle) set(p []Point) {
	t.firstPoint, t.secondPoint, t.thirdPoint = p[0], p[1], p[2]
}

// degenerateSystem maps a singular linear system onto ErrDegenerateShape
// while keeping the solver error in the chain.
func degenerateSystem(op string, err error) error {
	if errors.Is(err, linalg.ErrSingular) {
		Logger().Debug("geom: singular system", "op", op, "err", err)

		return fmt.Errorf("%s: %w: %w", op, ErrDegenerateShape, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}
