// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned when the coefficient matrix has no unique inverse
// under the configured tolerance.
var ErrSingular = errors.New("linalg: system is singular")

// Solve2 solves the 2×2 system
//
//	a[0][0]·x + a[0][1]·y = b[0]
//	a[1][0]·x + a[1][1]·y = b[1]
//
// Blueprint:
//
//	Stage 1 (Validate): |det(A)| must exceed eps·‖row₀‖·‖row₁‖.
//	Stage 2 (Execute): LU solve through gonum.
//
// The bound in Stage 1 is Hadamard's inequality, so the test compares the
// sine of the angle between the two rows against eps and does not depend on
// the magnitude of the coordinates.
func Solve2(a [2][2]float64, b [2]float64, eps float64) (x, y float64, err error) {
	// Stage 1: relative singularity test
	m := mat.NewDense(2, 2, []float64{a[0][0], a[0][1], a[1][0], a[1][1]})
	scale := math.Hypot(a[0][0], a[0][1]) * math.Hypot(a[1][0], a[1][1])
	det := mat.Det(m)
	if scale == 0 || math.IsNaN(det) || math.Abs(det) <= eps*scale {
		return 0, 0, fmt.Errorf("Solve2: det=%g: %w", det, ErrSingular)
	}

	// Stage 2: LU solve
	var sol mat.VecDense
	if err = sol.SolveVec(m, mat.NewVecDense(2, []float64{b[0], b[1]})); err != nil {
		return 0, 0, fmt.Errorf("Solve2: %v: %w", err, ErrSingular)
	}

	return sol.AtVec(0), sol.AtVec(1), nil
}
