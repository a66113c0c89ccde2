// SPDX-License-Identifier: MIT

// Package linalg solves the small dense linear systems that arise in planar
// triangle constructions (perpendicular bisectors, altitudes).
//
// The heavy lifting is delegated to gonum's LU factorisation; this package
// only adds a scale-aware singularity policy so that nearly parallel rows are
// reported as ErrSingular instead of producing huge, meaningless solutions.
//
// Complexity:
//
//	Solve2 runs in O(1) time and allocates a 2×2 matrix and two 2-vectors.
package linalg
