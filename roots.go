package analytic

import (
	"math"
	"math/cmplx"
	"slices"

	"github.com/pkg/errors"
)

// imaginary parts smaller than this, relative to the real part, are rounding
const realTolerance = 1e-9

// Solution returns the single x for which a linear p(x)=y.
func (p Polynomial) Solution(y float64) (float64, error) {
	t := p.Trim()
	if t.Lo < 0 || t.Hi != 1 {
		return 0, errors.Wrapf(ErrDegree, "expected a linear polynomial, got %v", p)
	}
	return (y - t.Coeff(0)) / t.Coeff(1), nil
}

// Solutions returns every complex x for which p(x)=y.
// Closed forms exist for degree 1 (one root), 2 (two roots) and 3 (three roots).
func (p Polynomial) Solutions(y float64) ([]complex128, error) {
	t := p.Trim()
	if t.Lo < 0 {
		return nil, errors.Wrapf(ErrDegree, "cannot solve a Laurent polynomial %v", p)
	}
	c0 := complex(t.Coeff(0)-y, 0)
	c1 := complex(t.Coeff(1), 0)
	c2 := complex(t.Coeff(2), 0)
	c3 := complex(t.Coeff(3), 0)
	switch t.Hi {
	case 1:
		return []complex128{-c0 / c1}, nil
	case 2:
		d := cmplx.Sqrt(c1*c1 - 4*c0*c2)
		return []complex128{
			(-c1 + d) / (2 * c2),
			(-c1 - d) / (2 * c2),
		}, nil
	case 3:
		return cardano(c0/c3, c1/c3, c2/c3), nil
	}
	return nil, errors.Wrapf(ErrDegree, "degree %d", t.Hi)
}

// cardano solves the monic cubic x³+a2x²+a1x+a0=0.
func cardano(a0, a1, a2 complex128) []complex128 {
	q := a1/3 - a2*a2/9
	r := (a1*a2-3*a0)/6 - a2*a2*a2/27
	d := cmplx.Sqrt(q*q*q + r*r)
	w := r + d
	if cmplx.Abs(r-d) > cmplx.Abs(w) {
		w = r - d
	}
	var s1, s2 complex128
	if w != 0 {
		s1 = cmplx.Pow(w, 1.0/3)
		s2 = -q / s1
	}
	shift := a2 / 3
	rot := complex(0, math.Sqrt(3)/2) * (s1 - s2)
	return []complex128{
		s1 + s2 - shift,
		-(s1+s2)/2 - shift + rot,
		-(s1+s2)/2 - shift - rot,
	}
}

// Reals returns the real parts of the values in zs that are real, sorted.
func Reals(zs []complex128) []float64 {
	xs := make([]float64, 0, len(zs))
	for _, z := range zs {
		if math.Abs(imag(z)) <= realTolerance*math.Max(1, math.Abs(real(z))) {
			xs = append(xs, real(z))
		}
	}
	slices.Sort(xs)
	return xs
}

// Extrema returns the real roots of the derivative of p.
func (p Polynomial) Extrema() ([]float64, error) {
	d := p.Derivative().Trim()
	if d.Lo >= 0 && d.Hi == 0 {
		// a constant derivative has no roots
		return nil, nil
	}
	zs, err := d.Solutions(0)
	if err != nil {
		return nil, errors.Wrap(err, "extrema")
	}
	return Reals(zs), nil
}

// Maximum returns the x in [lo,hi] where p is greatest.
func (p Polynomial) Maximum(lo, hi float64) (float64, error) {
	return p.extreme(lo, hi, func(a, b float64) bool { return a > b })
}

// Minimum returns the x in [lo,hi] where p is least.
func (p Polynomial) Minimum(lo, hi float64) (float64, error) {
	return p.extreme(lo, hi, func(a, b float64) bool { return a < b })
}

func (p Polynomial) extreme(lo, hi float64, better func(a, b float64) bool) (float64, error) {
	candidates, err := p.Extrema()
	if err != nil {
		return 0, err
	}
	best := lo
	for _, x := range append(candidates, hi) {
		x = math.Min(math.Max(x, lo), hi)
		if better(p.F(x), p.F(best)) {
			best = x
		}
	}
	return best, nil
}
