// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
)

// Shape is the capability set shared by every planar shape.
//
// Queries recompute from the current anchor points on every call; nothing is
// cached. Transforms mutate the receiver in place and are all-or-nothing: the
// arguments are validated and the new anchors computed before any field is
// written, so a returned error leaves the shape exactly as it was.
//
// Shapes are not safe for concurrent mutation. Concurrent queries on a shape
// nobody is mutating are safe.
type Shape interface {
	// Center returns the geometric center (centroid) of the shape.
	Center() Point

	// Perimeter returns the boundary length, ≥ 0.
	Perimeter() float64

	// Area returns the enclosed area, ≥ 0; 0 only for degenerate geometry.
	Area() float64

	// Translate shifts the shape rigidly so that Center() == newCenter.
	Translate(newCenter Point) error

	// Rotate turns the shape rigidly about Center() by angle radians,
	// counter-clockwise.
	Rotate(angle float64) error

	// Scale resizes the shape about Center() by |coefficient|. Area scales
	// by coefficient², perimeter by |coefficient|.
	Scale(coefficient float64) error
}

var (
	_ Shape = (*Ellipse)(nil)
	_ Shape = (*Circle)(nil)
	_ Shape = (*Rectangle)(nil)
	_ Shape = (*Square)(nil)
	_ Shape = (*Triangle)(nil)
)

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// checkTarget validates a Translate destination.
func checkTarget(op string, newCenter Point) error {
	if !newCenter.IsFinite() {
		return fmt.Errorf("%s: center %v: %w", op, newCenter, ErrInvalidArgument)
	}

	return nil
}

// checkAngle validates a Rotate angle.
func checkAngle(op string, angle float64) error {
	if !isFinite(angle) {
		return fmt.Errorf("%s: angle %g: %w", op, angle, ErrInvalidArgument)
	}

	return nil
}

// checkCoefficient validates a Scale coefficient. Zero collapses any shape.
func checkCoefficient(op string, k float64) error {
	if k == 0 || !isFinite(k) {
		return fmt.Errorf("%s: coefficient %g: %w", op, k, ErrInvalidArgument)
	}

	return nil
}

// checkLength validates a stored auxiliary length (radius, side, perifocus).
func checkLength(op, name string, v float64) error {
	if v <= 0 || !isFinite(v) {
		Logger().Debug("geom: rejected length", "op", op, name, v)

		return fmt.Errorf("%s: %s %g must be positive and finite: %w", op, name, v, ErrInvalidArgument)
	}

	return nil
}

// checkPoints validates anchor coordinates.
func checkPoints(op string, pts ...Point) error {
	for _, p := range pts {
		if !p.IsFinite() {
			Logger().Debug("geom: rejected point", "op", op, "point", p)

			return fmt.Errorf("%s: point %v: %w", op, p, ErrInvalidArgument)
		}
	}

	return nil
}

// translated returns anchors shifted by newCenter − center.
func translated(center, newCenter Point, anchors ...Point) []Point {
	d := newCenter.Sub(center)
	out := make([]Point, len(anchors))
	for i, p := range anchors {
		out[i] = p.Add(d)
	}

	return out
}

// rotated returns anchors rotated about center by angle.
func rotated(center Point, angle float64, anchors ...Point) []Point {
	out := make([]Point, len(anchors))
	for i, p := range anchors {
		out[i] = center.Add(p.Sub(center).Rotate(angle))
	}

	return out
}

// scaled returns anchors whose offsets from center are multiplied by k.
func scaled(center Point, k float64, anchors ...Point) []Point {
	out := make([]Point, len(anchors))
	for i, p := range anchors {
		out[i] = center.Add(p.Sub(center).Mul(k))
	}

	return out
}
