package analytic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolution(t *testing.T) {
	x, err := NewPolynomial(0, 1, 1, 2).Solution(5)
	require.NoError(t, err)
	assert.Equal(t, 2.0, x)

	_, err = NewPolynomial(0, 2, 1, 2, 3).Solution(5)
	require.ErrorIs(t, err, ErrDegree)
}

func TestSolutions(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	tests := []struct {
		name  string
		p     Polynomial
		y     float64
		reals []float64
	}{
		{"linear", NewPolynomial(0, 1, -4, 2), 0, []float64{2}},
		{"quadratic", NewPolynomial(0, 2, -1, 0, 1), 0, []float64{-1, 1}},
		{"quadratic at y", NewPolynomial(0, 2, 0, 0, 1), 4, []float64{-2, 2}},
		{"complex quadratic", NewPolynomial(0, 2, 1, 0, 1), 0, []float64{}},
		{"cubic", NewPolynomial(0, 3, -6, 11, -6, 1), 0, []float64{1, 2, 3}},
		{"cubic with one real root", NewPolynomial(0, 3, -1, 0, 0, 1), 0, []float64{1}},
		{"padded cubic", NewPolynomial(-1, 4, 0, -6, 11, -6, 1, 0), 0, []float64{1, 2, 3}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			zs, err := test.p.Solutions(test.y)
			require.NoError(t, err)
			if diff := cmp.Diff(test.reals, Reals(zs), approx); diff != "" {
				t.Errorf("real roots of %v (-want +got):\n%s", test.p, diff)
			}
			for _, z := range zs {
				t.Logf("root %v", z)
			}
		})
	}
}

func TestSolutionsUnsupported(t *testing.T) {
	_, err := NewPolynomial(0, 4, 1, 0, 0, 0, 1).Solutions(0)
	require.ErrorIs(t, err, ErrDegree)

	_, err = NewPolynomial(-1, 1, 1, 0, 1).Solutions(0)
	require.ErrorIs(t, err, ErrDegree)
}

func TestExtrema(t *testing.T) {
	xs, err := NewPolynomial(0, 3, 0, -3, 0, 1).Extrema()
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{-1, 1}, xs, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("extrema (-want +got):\n%s", diff)
	}

	xs, err = NewPolynomial(0, 1, 1, 1).Extrema()
	require.NoError(t, err)
	assert.Empty(t, xs)
}

func TestMaximumMinimum(t *testing.T) {
	p := NewPolynomial(0, 2, 2, 2, -1)

	x, err := p.Maximum(0, 3)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x, 1e-12)

	x, err = p.Minimum(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, x)

	// the critical point lies outside, so an endpoint wins
	x, err = p.Maximum(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2.0, x)

	_, err = NewPolynomial(0, 5, 0, 0, 0, 0, 0, 1).Maximum(0, 1)
	require.ErrorIs(t, err, ErrDegree)
}
