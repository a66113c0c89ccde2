// SPDX-License-Identifier: MIT

package geom

import "math"

// Circle is the degenerate ellipse whose foci coincide at the center and
// whose perifocus equals the radius. It stores {center, radius} directly and
// evaluates the ellipse formulas with a == b == radius.
//
// Circles returned by Triangle and Square queries are independent snapshots:
// mutating one never affects the shape that produced it.
type Circle struct {
	center Point
	radius float64
}

// NewCircle creates a circle. Returns ErrInvalidArgument for a non-finite
// center or a radius that is not positive and finite.
func NewCircle(center Point, radius float64) (*Circle, error) {
	const op = "NewCircle"
	if err := checkPoints(op, center); err != nil {
		return nil, err
	}
	if err := checkLength(op, "radius", radius); err != nil {
		return nil, err
	}

	return &Circle{center: center, radius: radius}, nil
}

// Radius returns the radius.
func (c *Circle) Radius() float64 { return c.radius }

// Center returns the center.
func (c *Circle) Center() Point { return c.center }

// FocalDistance is always 0.
func (c *Circle) FocalDistance() float64 { return 0 }

// MajorSemiAxis equals the radius.
func (c *Circle) MajorSemiAxis() float64 { return c.radius }

// MinorSemiAxis equals the radius.
func (c *Circle) MinorSemiAxis() float64 { return c.radius }

// Eccentricity is always 0.
func (c *Circle) Eccentricity() float64 { return 0 }

// Perimeter returns 2πr.
func (c *Circle) Perimeter() float64 {
	return ellipsePerimeter(c.radius, c.radius)
}

// Area returns πr².
func (c *Circle) Area() float64 {
	return ellipseArea(c.radius, c.radius)
}

// Ellipse returns an independent Ellipse describing the same circle.
func (c *Circle) Ellipse() *Ellipse {
	return &Ellipse{firstFocus: c.center, secondFocus: c.center, perifocus: c.radius}
}

// Translate moves the center to newCenter.
func (c *Circle) Translate(newCenter Point) error {
	if err := checkTarget("Circle.Translate", newCenter); err != nil {
		return err
	}
	c.center = newCenter

	return nil
}

// Rotate validates angle; a circle is invariant under rotation about its center.
func (c *Circle) Rotate(angle float64) error {
	return checkAngle("Circle.Rotate", angle)
}

// Scale multiplies the radius by |coefficient|.
func (c *Circle) Scale(coefficient float64) error {
	if err := checkCoefficient("Circle.Scale", coefficient); err != nil {
		return err
	}
	c.radius *= math.Abs(coefficient)

	return nil
}
