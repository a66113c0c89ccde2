// Package geom is planar (2D) geometry: immutable point/vector algebra and a
// closed family of shapes with metric queries and in-place affine transforms.
//
// 🚀 What's inside?
//
//	Point     — value-type vector algebra: Add, Sub, Mul, Rotate, Length,
//	            Distance, Normalize (fails on the zero vector)
//	Shape     — Center, Perimeter, Area, Translate, Rotate, Scale
//	Ellipse   — two foci + perifocal distance; semi-axes, eccentricity,
//	            Ramanujan perimeter
//	Circle    — center + radius, the ellipse formulas with a == b
//	Rectangle — two anchors + orthogonal side; vertices, diagonal
//	Square    — circumscribed / inscribed circles
//	Triangle  — circumcircle, incircle, orthocenter, nine-point circle
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/planar/geom"
//
//	t, err := geom.NewTriangle(geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(0, 3))
//	if err != nil {
//	  // errors.Is(err, geom.ErrDegenerateShape) for collinear vertices
//	}
//	circ, _ := t.CircumscribedCircle() // center (2, 1.5), radius 2.5
//	_ = t.Rotate(math.Pi / 2)          // about the centroid
//	_ = t.Scale(2)                     // area ×4
//
// Transforms:
//
//	Every transform acts about the shape's own Center and is all-or-nothing:
//	arguments are validated and new anchors computed before any field is
//	written. Scale uses |coefficient| for stored lengths, so a negative
//	coefficient is a point reflection of the anchors, never a size flip.
//
// Errors:
//   - ErrDivisionByZero  — normalizing a zero vector, zero-length sides.
//   - ErrDegenerateShape — collinear triangles, coincident anchors or foci.
//   - ErrInvalidArgument — non-positive lengths, non-finite input, Scale(0).
//
// Concurrency:
//
//	Nothing blocks and nothing is cached. Shapes must not be mutated
//	concurrently; concurrent read-only queries are safe. Logging is silent
//	unless SetLogger is called.
package geom
