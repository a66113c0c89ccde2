// Package planar is a planar (2D) geometry toolkit: immutable point/vector
// algebra plus a small family of shapes that answer metric queries and
// transform themselves in place.
//
// 🚀 What is planar?
//
//	A pure-Go computation library that brings together:
//		• Vector algebra: add, subtract, scale, rotate, length, distance, normalize
//		• Shapes: ellipse, circle, rectangle, square, triangle
//		• Metrics: center, perimeter, area, semi-axes, eccentricity, diagonal
//		• Transforms: translate, rotate, scale about the shape's own center
//		• Constructions: circumscribed / inscribed / nine-point circles, orthocenter
//
// ✨ Why choose planar?
//
//   - Value-type points – no aliasing, structural equality with ==
//   - All-or-nothing transforms – a failed call never half-moves a shape
//   - Typed failures – errors.Is against ErrDegenerateShape & friends
//   - Silent by default – plug in any *slog.Logger for diagnostics
//
// Under the hood:
//
//	geom/            — Point, Shape, Ellipse, Circle, Rectangle, Square, Triangle
//	internal/linalg/ — 2×2 linear solves for circumcenter and orthocenter
//	examples/        — runnable walkthrough
//
// Quick ASCII example:
//
//	    C
//	    │╲
//	    │  ╲       A(0,0) B(4,0) C(0,3)
//	    │    ╲     area 6, circumradius 2.5, inradius 1
//	    A─────B
//
//	go get github.com/katalvlaran/planar/geom
package planar
