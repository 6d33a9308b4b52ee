package analytic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewtonPolynomials(t *testing.T) {
	xs := []float64{-1, 0.5, 2, 4}
	ys := []float64{3, -1, 2, 0.5}

	linear := LinearNewtonPolynomial(xs[0], xs[1], ys[0], ys[1])
	quadratic := QuadraticNewtonPolynomial(xs[0], xs[1], xs[2], ys[0], ys[1], ys[2])
	cubic := CubicNewtonPolynomial(xs[0], xs[1], xs[2], xs[3], ys[0], ys[1], ys[2], ys[3])

	for i := 0; i < 2; i++ {
		assert.InDelta(t, ys[i], linear.F(xs[i]), 1e-9)
	}
	for i := 0; i < 3; i++ {
		assert.InDelta(t, ys[i], quadratic.F(xs[i]), 1e-9)
	}
	for i := 0; i < 4; i++ {
		assert.InDelta(t, ys[i], cubic.F(xs[i]), 1e-9)
	}
	assert.LessOrEqual(t, cubic.Trim().Hi, 3)
	t.Logf("cubic: %v", cubic)
}

func TestCubicHermite(t *testing.T) {
	x0, x1, y0, y1, d0, d1 := 1.0, 3.0, 2.0, -1.0, 0.5, 4.0
	p := CubicHermite(x0, x1, y0, y1, d0, d1)
	assert.InDelta(t, y0, p.F(x0), 1e-9)
	assert.InDelta(t, y1, p.F(x1), 1e-9)
	assert.InDelta(t, d0, p.DerivativeAt(x0), 1e-9)
	assert.InDelta(t, d1, p.DerivativeAt(x1), 1e-9)
}

func TestLegendrePolynomial(t *testing.T) {
	assert.InDelta(t, 1.0, LegendrePolynomial(0).F(0.3), 1e-12)
	assert.InDelta(t, 0.3, LegendrePolynomial(1).F(0.3), 1e-12)
	assert.InDelta(t, -0.125, LegendrePolynomial(2).F(0.5), 1e-12)
	assert.InDelta(t, -0.4375, LegendrePolynomial(3).F(0.5), 1e-12)

	// Pₙ(1) = 1 and the Pₙ are orthogonal on [-1,1]
	for n := 0; n < 5; n++ {
		assert.InDelta(t, 1.0, LegendrePolynomial(n).F(1), 1e-9)
	}
	assert.InDelta(t, 0.0, LegendrePolynomial(2).Mul(LegendrePolynomial(3)).IntegralBetween(-1, 1), 1e-9)
}
