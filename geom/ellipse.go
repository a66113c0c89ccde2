// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
)

// Ellipse is described by its two foci and the perifocal distance: the
// distance from a focus to the nearest vertex on the major axis.
//
// Derived quantities, with c the focal distance:
//
//	a = c + perifocus          (major semi-axis)
//	b = √(a² − c²)             (minor semi-axis)
//	e = c / a ∈ [0, 1)         (eccentricity)
//
// Only the foci and perifocus are stored; everything else is recomputed.
type Ellipse struct {
	firstFocus  Point
	secondFocus Point
	perifocus   float64
}

// NewEllipse creates an ellipse from its foci and perifocal distance.
// Returns ErrInvalidArgument for non-finite foci or a perifocus that is not
// positive and finite.
func NewEllipse(firstFocus, secondFocus Point, perifocus float64) (*Ellipse, error) {
	const op = "NewEllipse"
	if err := checkPoints(op, firstFocus, secondFocus); err != nil {
		return nil, err
	}
	if err := checkLength(op, "perifocus", perifocus); err != nil {
		return nil, err
	}

	return &Ellipse{firstFocus: firstFocus, secondFocus: secondFocus, perifocus: perifocus}, nil
}

// NewEllipseFromEccentricity creates an ellipse from its foci and eccentricity.
//
// The major semi-axis is a = c/e and the perifocus a − c. The foci must be
// distinct, since a circle's size cannot be recovered from e = 0
// (ErrDegenerateShape), and e must lie in (0, 1) (ErrInvalidArgument).
func NewEllipseFromEccentricity(firstFocus, secondFocus Point, eccentricity float64) (*Ellipse, error) {
	const op = "NewEllipseFromEccentricity"
	if err := checkPoints(op, firstFocus, secondFocus); err != nil {
		return nil, err
	}
	if !(eccentricity > 0 && eccentricity < 1) {
		Logger().Debug("geom: rejected eccentricity", "op", op, "eccentricity", eccentricity)

		return nil, fmt.Errorf("%s: eccentricity %g outside (0, 1): %w", op, eccentricity, ErrInvalidArgument)
	}
	c := firstFocus.Distance(secondFocus) / 2
	if c == 0 {
		Logger().Debug("geom: rejected coincident foci", "op", op, "focus", firstFocus)

		return nil, fmt.Errorf("%s: coincident foci: %w", op, ErrDegenerateShape)
	}

	return NewEllipse(firstFocus, secondFocus, c/eccentricity-c)
}

// FirstFocus returns the first focus.
func (e *Ellipse) FirstFocus() Point { return e.firstFocus }

// SecondFocus returns the second focus.
func (e *Ellipse) SecondFocus() Point { return e.secondFocus }

// Perifocus returns the distance from a focus to the nearest major-axis vertex.
func (e *Ellipse) Perifocus() float64 { return e.perifocus }

// FocalDistance returns c, half the distance between the foci.
func (e *Ellipse) FocalDistance() float64 {
	return e.firstFocus.Distance(e.secondFocus) / 2
}

// MajorSemiAxis returns a = c + perifocus.
func (e *Ellipse) MajorSemiAxis() float64 {
	return e.FocalDistance() + e.perifocus
}

// MinorSemiAxis returns b = √(a² − c²).
func (e *Ellipse) MinorSemiAxis() float64 {
	a, c := e.MajorSemiAxis(), e.FocalDistance()

	return math.Sqrt((a - c) * (a + c))
}

// Eccentricity returns c / a; 0 for a circle.
func (e *Ellipse) Eccentricity() float64 {
	a := e.MajorSemiAxis()
	if a == 0 {
		return 0
	}

	return e.FocalDistance() / a
}

// Center returns the midpoint of the foci.
func (e *Ellipse) Center() Point {
	return e.firstFocus.Midpoint(e.secondFocus)
}

// Perimeter returns Ramanujan's approximation of the circumference.
func (e *Ellipse) Perimeter() float64 {
	return ellipsePerimeter(e.MajorSemiAxis(), e.MinorSemiAxis())
}

// Area returns π·a·b.
func (e *Ellipse) Area() float64 {
	return ellipseArea(e.MajorSemiAxis(), e.MinorSemiAxis())
}

// Translate moves both foci so that the center lands on newCenter.
func (e *Ellipse) Translate(newCenter Point) error {
	if err := checkTarget("Ellipse.Translate", newCenter); err != nil {
		return err
	}
	f := translated(e.Center(), newCenter, e.firstFocus, e.secondFocus)
	e.firstFocus, e.secondFocus = f[0], f[1]

	return nil
}

// Rotate turns both foci about the center by angle radians.
func (e *Ellipse) Rotate(angle float64) error {
	if err := checkAngle("Ellipse.Rotate", angle); err != nil {
		return err
	}
	f := rotated(e.Center(), angle, e.firstFocus, e.secondFocus)
	e.firstFocus, e.secondFocus = f[0], f[1]

	return nil
}

// Scale multiplies the focus offsets from the center by coefficient and the
// perifocus by |coefficient|, keeping the eccentricity fixed.
func (e *Ellipse) Scale(coefficient float64) error {
	if err := checkCoefficient("Ellipse.Scale", coefficient); err != nil {
		return err
	}
	f := scaled(e.Center(), coefficient, e.firstFocus, e.secondFocus)
	e.firstFocus, e.secondFocus = f[0], f[1]
	e.perifocus *= math.Abs(coefficient)

	return nil
}

// ellipsePerimeter is Ramanujan's approximation 4·(π·a·b + (a−b)²)/(a+b).
// It reduces to 2πr when a == b == r, and to 0 for the zero-sized ellipse.
func ellipsePerimeter(a, b float64) float64 {
	if a+b == 0 {
		return 0
	}

	return 4 * (math.Pi*a*b + (a-b)*(a-b)) / (a + b)
}

func ellipseArea(a, b float64) float64 {
	return math.Pi * a * b
}
