package analytic

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// split returns the train that is a below x and b from x on.
func split(x float64, a, b Polynomial) Train[Polynomial] {
	return NewTrain([]float64{negInf, x, posInf}, []Polynomial{a, b})
}

func TestNewTrainPanics(t *testing.T) {
	one := []Polynomial{Constant(1)}
	assert.Panics(t, func() { NewTrain([]float64{0, posInf}, one) })
	assert.Panics(t, func() { NewTrain([]float64{negInf, 1}, one) })
	assert.Panics(t, func() { NewTrain([]float64{negInf, posInf}, append(one, one...)) })
	assert.Panics(t, func() {
		NewTrain([]float64{negInf, 1, 1, posInf}, []Polynomial{Constant(1), Constant(2), Constant(3)})
	})
	assert.NotPanics(t, func() { NewTrain([]float64{negInf, posInf}, one) })
}

func TestTrainF(t *testing.T) {
	tr := split(1, Constant(-1), Identity{}.Polynomial())
	assert.Equal(t, -1.0, tr.F(-100))
	assert.Equal(t, -1.0, tr.F(0.999))
	assert.Equal(t, 1.0, tr.F(1))
	assert.Equal(t, 50.0, tr.F(50))
	assert.Equal(t, 0.0, Train[Polynomial]{}.F(1))
	assert.Equal(t, 2, tr.Len())
	t.Logf("train =\n%v", tr)
}

func TestToTrain(t *testing.T) {
	y := NewRailyard(NewRailcar(0, 2, Constant(1)), NewRailcar(1, 3, Constant(2)))
	tr := ToTrain(y)
	if diff := cmp.Diff([]float64{negInf, 0, 1, 2, 3, posInf}, tr.Couplers); diff != "" {
		t.Errorf("couplers (-want +got):\n%s", diff)
	}
	for i, want := range []float64{0, 1, 3, 2, 0} {
		_, _, c := tr.Segment(i)
		assert.Equal(t, want, c.F(0), "segment %d", i)
	}

	back := tr.Railyard()
	for _, x := range []float64{-1, 0, 0.5, 1, 2.5, 3, 7} {
		assert.Equal(t, y.F(x), back.F(x))
	}
}

func TestTrainArithmetic(t *testing.T) {
	a := split(1, Constant(2), Identity{}.Polynomial())
	b := split(-1, NewPolynomial(0, 2, 0, 0, 1), Constant(3))
	for _, x := range []float64{-2, -1, 0, 1, 2.5} {
		assert.InDelta(t, a.F(x)+b.F(x), a.Add(b).F(x), 1e-12)
		assert.InDelta(t, a.F(x)-b.F(x), a.Sub(b).F(x), 1e-12)
		assert.InDelta(t, a.F(x)*b.F(x), a.Mul(b).F(x), 1e-12)
		assert.InDelta(t, a.F(x)/b.F(x), Quo(a, b).F(x), 1e-12)
		assert.InDelta(t, a.F(x)+1, a.AddContent(Constant(1)).F(x), 1e-12)
		assert.InDelta(t, a.F(x)-1, a.SubContent(Constant(1)).F(x), 1e-12)
		assert.InDelta(t, a.F(x)*x, a.MulContent(Identity{}.Polynomial()).F(x), 1e-12)
		assert.InDelta(t, -a.F(x), a.Neg().F(x), 1e-12)
	}
	assert.Equal(t, 3, a.Add(b).Len())
}

func TestTrainAdditiveIdentity(t *testing.T) {
	a := split(1, Constant(2), Identity{}.Polynomial())
	zero := TrainOf(Constant(0))
	for _, x := range []float64{-2, 0, 1, 2.5} {
		assert.Equal(t, a.F(x), a.Add(zero).F(x))
		assert.Equal(t, a.F(x), zero.Add(a).F(x))
	}
}

func TestQuoZeroDenominator(t *testing.T) {
	q := Quo(TrainOf(Constant(1)), split(0, Constant(1), Identity{}.Polynomial()))
	assert.Equal(t, 1.0, q.F(-1))
	assert.True(t, math.IsInf(q.F(0), 1))
	assert.Equal(t, 0.5, q.F(2))
}

func TestTrainDerivative(t *testing.T) {
	tr := split(0, NewPolynomial(0, 2, 0, 0, 1), NewPolynomial(0, 1, 0, 3))
	assert.Equal(t, -4.0, tr.Derivative().F(-2))
	assert.Equal(t, 3.0, tr.Derivative().F(2))
	assert.Equal(t, -4.0, tr.DerivativeAt(-2))
	assert.Equal(t, 3.0, tr.DerivativeAt(0))
}

func TestTrainCompose(t *testing.T) {
	tr := split(1, Constant(2), Identity{}.Polynomial())

	// the couplers stay where they are
	g := NewPolynomial(0, 1, 1, 1)
	tg := tr.Compose(g)
	assert.Equal(t, 2.0, tg.F(0))
	assert.Equal(t, 4.0, tg.F(3))

	h := split(0, Constant(5), NewPolynomial(0, 1, 0, 2))
	th := tr.ComposeTrain(h)
	assert.Equal(t, 2.0, th.F(-1))
	assert.Equal(t, 2.0, th.F(0.5))
	assert.Equal(t, 6.0, th.F(3))
}

func TestTrainComposeAtoms(t *testing.T) {
	tr := split(1, Constant(2), Identity{}.Polynomial())

	shifted := tr.ComposeShifting(Shifting{Offset: 3})
	assert.Equal(t, 2.0, shifted.F(-2.5))
	assert.Equal(t, 1.0, shifted.F(-2))
	assert.Equal(t, 5.0, shifted.F(2))

	scaled := tr.ComposeScaling(Scaling{Factor: 2})
	assert.Equal(t, 2.0, scaled.F(0))
	assert.Equal(t, 6.0, scaled.F(3))

	mirrored := tr.ComposeScaling(Scaling{Factor: -1})
	require.Len(t, mirrored.Couplers, 3)
	assert.Equal(t, -1.0, mirrored.Couplers[1])
	assert.Equal(t, 2.0, mirrored.F(5))
	assert.Equal(t, 3.0, mirrored.F(-3))
	// the coupler keeps the segment on its right, which was on its left before
	assert.Equal(t, 1.0, tr.F(1))
	assert.Equal(t, 2.0, mirrored.F(-1))

	assert.Panics(t, func() { tr.ComposeScaling(Scaling{}) })
}

func TestTrainScalingNegativeExponents(t *testing.T) {
	tr := split(1, Constant(4), Monomial(-1, 2)).ComposeScaling(Scaling{Factor: 2})
	assert.Equal(t, 0.5, tr.F(2))
	assert.Equal(t, 4.0, tr.F(0.25))
	assert.Equal(t, 0.5, TrainOf(Monomial(-1, 2)).ComposeScaling(Scaling{Factor: 2}).F(2))
}

func TestTrainRestriction(t *testing.T) {
	tr := split(1, Constant(2), Identity{}.Polynomial()).Restriction(0, 3)
	assert.Equal(t, 0.0, tr.F(-1))
	assert.Equal(t, 2.0, tr.F(0))
	assert.Equal(t, 2.5, tr.F(2.5))
	assert.Equal(t, 0.0, tr.F(3))
	assert.Equal(t, 0.0, tr.F(10))
}

func TestTrainRational(t *testing.T) {
	tr := split(1, Constant(2), Identity{}.Polynomial())
	r := tr.Rational()
	for _, x := range []float64{-1, 1, 4} {
		assert.Equal(t, tr.F(x), r.F(x))
	}
}

func TestTrainDistance(t *testing.T) {
	a := TrainOf(Constant(0))
	b := TrainOf(Constant(1))
	c := split(1, Constant(2), Constant(2))

	assert.Equal(t, 0.0, a.Distance(a, 0, 2))
	assert.InDelta(t, 1.0, a.Distance(b, 0, 2), 1e-12)
	assert.InDelta(t, 1.0, b.Distance(c, 0, 2), 1e-12)
	assert.InDelta(t, 2.0, a.Distance(c, 0, 2), 1e-12)
	assert.InDelta(t, a.Distance(c, 0, 2), c.Distance(a, 0, 2), 1e-12)
	assert.LessOrEqual(t, a.Distance(c, 0, 2), a.Distance(b, 0, 2)+b.Distance(c, 0, 2)+1e-12)
}

func TestTrainTriangleInequality(t *testing.T) {
	trains := []Train[Polynomial]{
		TrainOf(Constant(0)),
		split(0.5, Identity{}.Polynomial(), Constant(-1)),
		split(1.5, NewPolynomial(0, 2, 1, -2, 1), NewPolynomial(0, 1, 3, -1)),
		NewTrain([]float64{negInf, 0.25, 1, posInf}, []Polynomial{Constant(4), Monomial(3, 1), Constant(0.5)}),
	}
	for _, a := range trains {
		for _, b := range trains {
			for _, c := range trains {
				ac := a.Distance(c, 0, 2)
				ab, bc := a.Distance(b, 0, 2), b.Distance(c, 0, 2)
				assert.LessOrEqual(t, ac, ab+bc+1e-9)
			}
		}
	}
}

func TestSegmentwiseDistance(t *testing.T) {
	a := TrainOf(Constant(0))
	b := TrainOf(Constant(1))
	c := split(1, Constant(2), Constant(2))

	// sqrt(4/2) on each half of [0,2]
	assert.InDelta(t, 2*math.Sqrt2, a.SegmentwiseDistance(c, 0, 2), 1e-12)
	assert.InDelta(t, 1.0, a.SegmentwiseDistance(b, 0, 2), 1e-12)
	assert.InDelta(t, math.Sqrt2, b.SegmentwiseDistance(c, 0, 2), 1e-12)
	assert.Greater(t, a.SegmentwiseDistance(c, 0, 2), a.SegmentwiseDistance(b, 0, 2)+b.SegmentwiseDistance(c, 0, 2))
}

func TestTrainIntegral(t *testing.T) {
	x := split(0, Constant(0), Identity{}.Polynomial())
	assert.InDelta(t, 2.0, TrainIntegral(x, 0, 2), 1e-12)
	assert.InDelta(t, 2.0, TrainIntegral(x, -3, 2), 1e-12)

	I := IntegrateTrain(x, 0)
	assert.InDelta(t, 0.0, I.F(-1), 1e-12)
	assert.InDelta(t, 0.5, I.F(1), 1e-12)
	assert.InDelta(t, 2.0, I.F(2), 1e-12)
}

func TestDotLengthSimilarity(t *testing.T) {
	x := TrainOf(Identity{}.Polynomial())
	assert.InDelta(t, 1.0/3, Dot(x, x, 0, 1), 1e-12)
	assert.InDelta(t, math.Sqrt(1.0/3), Length(x, 0, 1), 1e-12)
	assert.InDelta(t, 1.0, Similarity(x, x, 0, 1), 1e-12)
	assert.InDelta(t, -1.0, Similarity(x, x.Neg(), 0, 1), 1e-12)
	assert.InDelta(t, 1.0, Similarity(x, x.Scale(3), 0, 1), 1e-12)
}

func TestTrainExtremesEmptyInterval(t *testing.T) {
	tr := split(1, Constant(2), Identity{}.Polynomial())
	_, err := TrainMaximum(tr, 3, -1)
	assert.Error(t, err)
	_, err = TrainMinimum(tr, math.NaN(), 1)
	assert.Error(t, err)
}

func TestTrainExtremes(t *testing.T) {
	tr := Spline([]Point{{0, 0}, {1, 2}, {2, 0}}, 1)

	x, err := TrainMaximum(tr, -1, 3)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x, 1e-12)

	x, err = TrainMinimum(tr, -1, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, tr.F(x), 1e-12)
}
