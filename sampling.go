package analytic

import (
	"slices"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// Sample evaluates f at every x.
func Sample(f Expression, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f.F(x)
	}
	return ys
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return xs
}

// Summary describes the values a function takes on a grid.
type Summary struct {
	Min, Max       float64
	Mean, StdDev   float64
	ArgMin, ArgMax float64
	Samples        int
}

// Profile samples f at n evenly spaced points of [lo,hi] and summarizes
// the values it takes there.
func Profile(f Expression, lo, hi float64, n int) (Summary, error) {
	if n < 1 {
		return Summary{}, errors.Errorf("cannot profile with %d samples", n)
	}
	xs := Linspace(lo, hi, n)
	ys := Sample(f, xs)
	s := Summary{Samples: n}
	var err error
	if s.Min, err = stats.Min(ys); err != nil {
		return Summary{}, errors.Wrap(err, "minimum")
	}
	if s.Max, err = stats.Max(ys); err != nil {
		return Summary{}, errors.Wrap(err, "maximum")
	}
	if s.Mean, err = stats.Mean(ys); err != nil {
		return Summary{}, errors.Wrap(err, "mean")
	}
	if s.StdDev, err = stats.StandardDeviation(ys); err != nil {
		return Summary{}, errors.Wrap(err, "standard deviation")
	}
	if i := slices.Index(ys, s.Min); i >= 0 {
		s.ArgMin = xs[i]
	}
	if i := slices.Index(ys, s.Max); i >= 0 {
		s.ArgMax = xs[i]
	}
	return s, nil
}
