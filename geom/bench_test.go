// SPDX-License-Identifier: MIT

package geom_test

import (
	"testing"

	"github.com/katalvlaran/planar/geom"
)

// benchTriangle is a scalene triangle reused by every triangle benchmark.
func benchTriangle(b *testing.B) *geom.Triangle {
	b.Helper()
	t, err := geom.NewTriangle(geom.Pt(-2, 1), geom.Pt(5, 0.5), geom.Pt(1, 6))
	if err != nil {
		b.Fatalf("NewTriangle failed: %v", err)
	}

	return t
}

// BenchmarkTriangle_NinePointsCircle covers the heaviest derived construction:
// one circumcircle and one orthocenter solve.
func BenchmarkTriangle_NinePointsCircle(b *testing.B) {
	t := benchTriangle(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := t.NinePointsCircle(); err != nil {
			b.Fatalf("NinePointsCircle failed: %v", err)
		}
	}
}

// BenchmarkTriangle_Area measures Heron's formula with fresh side lengths.
func BenchmarkTriangle_Area(b *testing.B) {
	t := benchTriangle(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = t.Area()
	}
}

// BenchmarkRectangle_Vertices measures normalize + rotate + 4 offsets.
func BenchmarkRectangle_Vertices(b *testing.B) {
	r, err := geom.NewRectangle(geom.Pt(1, 2), geom.Pt(4, 6), 2)
	if err != nil {
		b.Fatalf("NewRectangle failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = r.Vertices(); err != nil {
			b.Fatalf("Vertices failed: %v", err)
		}
	}
}

// BenchmarkEllipse_Transforms runs one rotate/scale/translate cycle per iteration.
func BenchmarkEllipse_Transforms(b *testing.B) {
	e, err := geom.NewEllipse(geom.Pt(-3, 0), geom.Pt(3, 0), 2)
	if err != nil {
		b.Fatalf("NewEllipse failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Rotate(0.1)
		_ = e.Scale(1.0001)
		_ = e.Translate(geom.Pt(0, 0))
	}
}
