// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
)

// Rectangle is described by two anchors and the length of the side
// orthogonal to them.
//
// The anchors are the midpoints of the two sides of length SecondSide, so
// the segment between them has length FirstSide and passes through the
// center:
//
//	v3 ───────────── v2
//	│                 │
//	first ─────── second   ↑ SecondSide
//	│                 │
//	v0 ───────────── v1
//
// Only the anchors and SecondSide are stored; FirstSide, the vertices and the
// center are recomputed on every call.
type Rectangle struct {
	firstPoint  Point
	secondPoint Point
	secondSide  float64
}

// NewRectangle creates a rectangle from its anchors and orthogonal side length.
// Returns ErrInvalidArgument for non-finite anchors or a secondSide that is not
// positive and finite, and ErrDegenerateShape when the anchors coincide.
func NewRectangle(firstPoint, secondPoint Point, secondSide float64) (*Rectangle, error) {
	const op = "NewRectangle"
	if err := checkAnchors(op, firstPoint, secondPoint); err != nil {
		return nil, err
	}
	if err := checkLength(op, "secondSide", secondSide); err != nil {
		return nil, err
	}

	return &Rectangle{firstPoint: firstPoint, secondPoint: secondPoint, secondSide: secondSide}, nil
}

// checkAnchors validates the side-defining anchors shared by Rectangle and Square.
func checkAnchors(op string, firstPoint, secondPoint Point) error {
	if err := checkPoints(op, firstPoint, secondPoint); err != nil {
		return err
	}
	if firstPoint == secondPoint {
		Logger().Debug("geom: rejected coincident anchors", "op", op, "point", firstPoint)

		return fmt.Errorf("%s: coincident anchors %v: %w", op, firstPoint, ErrDegenerateShape)
	}

	return nil
}

// FirstPoint returns the first anchor.
func (r *Rectangle) FirstPoint() Point { return r.firstPoint }

// SecondPoint returns the second anchor.
func (r *Rectangle) SecondPoint() Point { return r.secondPoint }

// FirstSide returns the distance between the anchors.
func (r *Rectangle) FirstSide() float64 {
	return r.firstPoint.Distance(r.secondPoint)
}

// SecondSide returns the stored orthogonal side length.
func (r *Rectangle) SecondSide() float64 { return r.secondSide }

// Diagonal returns √(FirstSide² + SecondSide²).
func (r *Rectangle) Diagonal() float64 {
	return math.Hypot(r.FirstSide(), r.secondSide)
}

// Vertices returns the four corners in counter-clockwise order.
//
// Implementation:
//   - Stage 1: u = unit(second − first); fails with ErrDivisionByZero when
//     the anchors coincide.
//   - Stage 2: h = u rotated by 90°, scaled by SecondSide/2.
//   - Stage 3: first − h, second − h, second + h, first + h.
func (r *Rectangle) Vertices() ([4]Point, error) {
	u, err := r.secondPoint.Sub(r.firstPoint).Normalize()
	if err != nil {
		return [4]Point{}, fmt.Errorf("Rectangle.Vertices: %w", err)
	}
	h := u.Rotate(math.Pi / 2).Mul(r.secondSide / 2)

	return [4]Point{
		r.firstPoint.Sub(h),
		r.secondPoint.Sub(h),
		r.secondPoint.Add(h),
		r.firstPoint.Add(h),
	}, nil
}

// Center returns the midpoint of the anchors, which is also the mean of the
// four vertices.
func (r *Rectangle) Center() Point {
	return r.firstPoint.Midpoint(r.secondPoint)
}

// Perimeter returns 2·(FirstSide + SecondSide).
func (r *Rectangle) Perimeter() float64 {
	return 2 * (r.FirstSide() + r.secondSide)
}

// Area returns FirstSide · SecondSide.
func (r *Rectangle) Area() float64 {
	return r.FirstSide() * r.secondSide
}

// Translate moves both anchors so that the center lands on newCenter.
func (r *Rectangle) Translate(newCenter Point) error {
	return r.translate("Rectangle.Translate", newCenter)
}

// Rotate turns both anchors about the center by angle radians.
func (r *Rectangle) Rotate(angle float64) error {
	return r.rotate("Rectangle.Rotate", angle)
}

// Scale multiplies the anchor offsets by coefficient and SecondSide by
// |coefficient|, so both sides stay proportional.
func (r *Rectangle) Scale(coefficient float64) error {
	return r.scale("Rectangle.Scale", coefficient)
}

// translate, rotate and scale take the caller's op so that Square reports
// its own name in errors.
func (r *Rectangle) translate(op string, newCenter Point) error {
	if err := checkTarget(op, newCenter); err != nil {
		return err
	}
	p := translated(r.Center(), newCenter, r.firstPoint, r.secondPoint)
	r.firstPoint, r.secondPoint = p[0], p[1]

	return nil
}

func (r *Rectangle) rotate(op string, angle float64) error {
	if err := checkAngle(op, angle); err != nil {
		return err
	}
	p := rotated(r.Center(), angle, r.firstPoint, r.secondPoint)
	r.firstPoint, r.secondPoint = p[0], p[1]

	return nil
}

func (r *Rectangle) scale(op string, coefficient float64) error {
	if err := checkCoefficient(op, coefficient); err != nil {
		return err
	}
	p := scaled(r.Center(), coefficient, r.firstPoint, r.secondPoint)
	r.firstPoint, r.secondPoint = p[0], p[1]
	r.secondSide *= math.Abs(coefficient)

	return nil
}
