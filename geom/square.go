// SPDX-License-Identifier: MIT

package geom

// Square is a rectangle whose orthogonal side equals the anchor distance at
// construction. Every transform keeps both sides proportional, so the
// equality survives mutation without being re-checked.
type Square struct {
	rect Rectangle
}

// NewSquare creates a square from two anchors; the side equals their distance.
// Returns ErrInvalidArgument for non-finite anchors and ErrDegenerateShape
// when they coincide.
func NewSquare(firstPoint, secondPoint Point) (*Square, error) {
	if err := checkAnchors("NewSquare", firstPoint, secondPoint); err != nil {
		return nil, err
	}

	return &Square{rect: Rectangle{
		firstPoint:  firstPoint,
		secondPoint: secondPoint,
		secondSide:  firstPoint.Distance(secondPoint),
	}}, nil
}

// Side returns the side length.
func (s *Square) Side() float64 { return s.rect.FirstSide() }

// FirstPoint returns the first anchor.
func (s *Square) FirstPoint() Point { return s.rect.firstPoint }

// SecondPoint returns the second anchor.
func (s *Square) SecondPoint() Point { return s.rect.secondPoint }

// Diagonal returns Side·√2.
func (s *Square) Diagonal() float64 { return s.rect.Diagonal() }

// Vertices returns the four corners in counter-clockwise order.
func (s *Square) Vertices() ([4]Point, error) { return s.rect.Vertices() }

// Rectangle returns an independent copy of the square as a Rectangle.
func (s *Square) Rectangle() *Rectangle {
	r := s.rect

	return &r
}

// CircumscribedCircle returns the circle through all four vertices:
// radius Diagonal/2, centered at Center.
func (s *Square) CircumscribedCircle() *Circle {
	return &Circle{center: s.Center(), radius: s.Diagonal() / 2}
}

// InscribedCircle returns the circle tangent to all four sides:
// radius Side/2, centered at Center.
func (s *Square) InscribedCircle() *Circle {
	return &Circle{center: s.Center(), radius: s.rect.secondSide / 2}
}

// Center returns the midpoint of the anchors.
func (s *Square) Center() Point { return s.rect.Center() }

// Perimeter returns 4·Side.
func (s *Square) Perimeter() float64 { return s.rect.Perimeter() }

// Area returns Side².
func (s *Square) Area() float64 { return s.rect.Area() }

// Translate moves the square so that its center lands on newCenter.
func (s *Square) Translate(newCenter Point) error {
	return s.rect.translate("Square.Translate", newCenter)
}

// Rotate turns the square about its center by angle radians.
func (s *Square) Rotate(angle float64) error {
	return s.rect.rotate("Square.Rotate", angle)
}

// Scale multiplies the side by |coefficient| about the center; a negative
// coefficient also reflects the anchors through the center.
func (s *Square) Scale(coefficient float64) error {
	return s.rect.scale("Square.Scale", coefficient)
}
