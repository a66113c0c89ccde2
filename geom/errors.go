// SPDX-License-Identifier: MIT
// Package geom: sentinel error set.
// Every constructor, derived construction and transform reports failures with
// one of these sentinels, wrapped with the failing operation's name:
//
//	fmt.Errorf("Triangle.Orthocenter: %w", ErrDegenerateShape)
//
// Callers and tests MUST match with errors.Is. No exported function panics on
// malformed geometric input; option constructors panic only on programmer error.

package geom

import "errors"

var (
	// ErrDivisionByZero is returned when a computation would divide by a zero
	// length, e.g. normalizing a zero vector.
	ErrDivisionByZero = errors.New("geom: division by zero")

	// ErrDegenerateShape is returned for geometry that collapses to a lower
	// dimension: collinear triangle vertices, coincident rectangle anchors,
	// an ellipse whose size cannot be derived.
	ErrDegenerateShape = errors.New("geom: degenerate shape")

	// ErrInvalidArgument is returned for non-positive lengths, non-finite
	// coordinates, angles or coefficients, and a zero scale coefficient.
	ErrInvalidArgument = errors.New("geom: invalid argument")
)
