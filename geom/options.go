// SPDX-License-Identifier: MIT

// Package geom: functional configuration for numeric policy.
//
// Only one knob exists today: the relative tolerance used to decide whether
// three points are collinear or a linear system is singular. Options are
// consumed by NewTriangle and remembered by the triangle, so every derived
// construction (circumcircle, orthocenter, ...) applies the same policy.
package geom

import "math"

// DefaultEpsilon is the relative tolerance for degeneracy checks.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "geom: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

type options struct {
	epsilon float64
}

// WithEpsilon sets the relative tolerance for degeneracy detection.
// Panics if eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.epsilon = eps }
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) options {
	o := options{epsilon: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
