// SPDX-License-Identifier: MIT

// Point vector algebra.

package geom_test

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/planar/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// requirePointNear fails the test when got and want differ by more than tol
// in either coordinate.
func requirePointNear(t *testing.T, want, got geom.Point, msgAndArgs ...interface{}) {
	t.Helper()
	require.InDelta(t, want.X, got.X, tol, msgAndArgs...)
	require.InDelta(t, want.Y, got.Y, tol, msgAndArgs...)
}

func TestPoint_Arithmetic(t *testing.T) {
	a, b := geom.Pt(1, 2), geom.Pt(-3, 5)

	assert.Equal(t, geom.Pt(-2, 7), a.Add(b))
	assert.Equal(t, geom.Pt(4, -3), a.Sub(b))
	assert.Equal(t, geom.Pt(2.5, 5), a.Mul(2.5))
	assert.Equal(t, 7.0, a.Dot(b))
	assert.Equal(t, 11.0, a.Cross(b))
	assert.Equal(t, geom.Pt(-1, 3.5), a.Midpoint(b))

	// package-level forms agree with methods
	assert.Equal(t, a.Add(b), geom.Add(a, b))
	assert.Equal(t, a.Sub(b), geom.Subtract(a, b))
	assert.Equal(t, a.Mul(-1), geom.Multiply(a, -1))
}

func TestPoint_Immutable(t *testing.T) {
	p := geom.Pt(1, 1)
	_ = p.Add(geom.Pt(5, 5))
	_ = p.Mul(10)
	_ = p.Rotate(1)
	assert.Equal(t, geom.Pt(1, 1), p, "operations must not modify the receiver")
}

func TestPoint_LengthAndDistance(t *testing.T) {
	assert.Equal(t, 5.0, geom.Pt(3, 4).Length())
	assert.Equal(t, 5.0, geom.Length(geom.Pt(-3, -4)))
	assert.Equal(t, 0.0, geom.Pt(0, 0).Length())
	assert.Equal(t, 5.0, geom.Distance(geom.Pt(1, 1), geom.Pt(4, 5)))
	assert.Equal(t, geom.Pt(1, 1).Distance(geom.Pt(4, 5)), geom.Pt(4, 5).Distance(geom.Pt(1, 1)))
}

func TestPoint_Rotate(t *testing.T) {
	for _, tc := range []struct {
		name  string
		p     geom.Point
		angle float64
		want  geom.Point
	}{
		{"quarter turn", geom.Pt(1, 0), math.Pi / 2, geom.Pt(0, 1)},
		{"half turn", geom.Pt(1, 2), math.Pi, geom.Pt(-1, -2)},
		{"clockwise", geom.Pt(0, 1), -math.Pi / 2, geom.Pt(1, 0)},
		{"eighth turn", geom.Pt(1, 0), math.Pi / 4, geom.Pt(math.Sqrt2/2, math.Sqrt2/2)},
		{"zero", geom.Pt(3, -7), 0, geom.Pt(3, -7)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			requirePointNear(t, tc.want, tc.p.Rotate(tc.angle))
			requirePointNear(t, tc.want, geom.Rotate(tc.p, tc.angle))
		})
	}
}

func TestPoint_RotatePreservesLength(t *testing.T) {
	p := geom.Pt(3, 4)
	for _, angle := range []float64{0.1, 1, 2.5, -4} {
		assert.InDelta(t, 5.0, p.Rotate(angle).Length(), tol)
	}
}

func TestPoint_Normalize(t *testing.T) {
	u, err := geom.Pt(3, 4).Normalize()
	require.NoError(t, err)
	requirePointNear(t, geom.Pt(0.6, 0.8), u)
	assert.InDelta(t, 1.0, u.Length(), tol)

	u, err = geom.Normalize(geom.Pt(0, -2))
	require.NoError(t, err)
	requirePointNear(t, geom.Pt(0, -1), u)
}

func TestPoint_NormalizeZero(t *testing.T) {
	_, err := geom.Pt(0, 0).Normalize()
	assert.ErrorIs(t, err, geom.ErrDivisionByZero)

	_, err = geom.Normalize(geom.Point{})
	assert.ErrorIs(t, err, geom.ErrDivisionByZero)
}

func TestPoint_ApproxEqualAndFinite(t *testing.T) {
	assert.True(t, geom.Pt(1, 2).ApproxEqual(geom.Pt(1+1e-12, 2-1e-12), tol))
	assert.False(t, geom.Pt(1, 2).ApproxEqual(geom.Pt(1.1, 2), tol))
	assert.True(t, geom.Pt(1e12, 0).ApproxEqual(geom.Pt(1e12+1, 0), tol), "relative tolerance")

	assert.True(t, geom.Pt(1, 2).IsFinite())
	assert.False(t, geom.Pt(math.NaN(), 0).IsFinite())
	assert.False(t, geom.Pt(0, math.Inf(-1)).IsFinite())
}

func TestPoint_StringAndLogValue(t *testing.T) {
	assert.Equal(t, "(1.5, -2)", geom.Pt(1.5, -2).String())

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	l.Info("moved", "to", geom.Pt(3, 4))
	assert.True(t, strings.Contains(buf.String(), "to.x=3 to.y=4"), buf.String())
}
