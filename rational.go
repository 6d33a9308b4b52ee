package analytic

import (
	"fmt"
	"math"
)

// Rational is f(x)=P(x)/Q(x).
// A zero of Q is not checked for; evaluating there yields ±Inf or NaN.
type Rational struct {
	P, Q Polynomial
}

func NewRational(p, q Polynomial) Rational {
	return Rational{P: p, Q: q}
}

func (r Rational) F(x float64) float64 {
	return r.P.F(x) / r.Q.F(x)
}

func (r Rational) Add(s Rational) Rational {
	return NewRational(r.P.Mul(s.Q).Add(s.P.Mul(r.Q)), r.Q.Mul(s.Q))
}

func (r Rational) Sub(s Rational) Rational {
	return NewRational(r.P.Mul(s.Q).Sub(s.P.Mul(r.Q)), r.Q.Mul(s.Q))
}

func (r Rational) Mul(s Rational) Rational {
	return NewRational(r.P.Mul(s.P), r.Q.Mul(s.Q))
}

func (r Rational) Div(s Rational) Rational {
	return NewRational(r.P.Mul(s.Q), r.Q.Mul(s.P))
}

func (r Rational) AddScalar(k float64) Rational {
	return NewRational(r.P.Add(r.Q.Scale(k)), r.Q)
}

func (r Rational) AddPolynomial(p Polynomial) Rational {
	return NewRational(r.P.Add(p.Mul(r.Q)), r.Q)
}

func (r Rational) MulPolynomial(p Polynomial) Rational {
	return NewRational(r.P.Mul(p), r.Q)
}

func (r Rational) Scale(k float64) Rational {
	return NewRational(r.P.Scale(k), r.Q)
}

func (r Rational) Neg() Rational {
	return r.Scale(-1)
}

// Inverse returns Q/P.
func (r Rational) Inverse() Rational {
	return NewRational(r.Q, r.P)
}

// Pow returns rⁿ; a negative n inverts r first.
func (r Rational) Pow(n int) Rational {
	if n < 0 {
		r, n = r.Inverse(), -n
	}
	return NewRational(r.P.Pow(n), r.Q.Pow(n))
}

// Zero returns 0/1.
func (Rational) Zero() Rational {
	return NewRational(Constant(0), Constant(1))
}

func (r Rational) Rational() Rational {
	return r
}

// Derivative follows the quotient rule, (P'Q-PQ')/Q².
func (r Rational) Derivative() Rational {
	return NewRational(
		r.P.Derivative().Mul(r.Q).Sub(r.P.Mul(r.Q.Derivative())),
		r.Q.Mul(r.Q),
	)
}

func (r Rational) DerivativeAt(x float64) float64 {
	return r.Derivative().F(x)
}

// Compose returns r∘g. Negative exponents in P or Q are cleared first by
// multiplying both by the same power of x, which leaves the ratio unchanged.
func (r Rational) Compose(g Polynomial) Rational {
	m := max(0, -r.P.Lo, -r.Q.Lo)
	p, q := r.P, r.Q
	if m > 0 {
		p, q = p.Mul(Monomial(m, 1)), q.Mul(Monomial(m, 1))
	}
	return NewRational(p.Compose(g), q.Compose(g))
}

// ComposeScaling returns r(ax).
func (r Rational) ComposeScaling(g Scaling) Rational {
	return NewRational(r.P.ComposeScaling(g), r.Q.ComposeScaling(g))
}

// ComposeShifting returns r(x+b).
func (r Rational) ComposeShifting(g Shifting) Rational {
	return r.Compose(g.Polynomial())
}

// SquaredDifference returns ∫(P₁Q₂-P₂Q₁)² over [lo,hi], the squared
// difference of the cross multiplied numerators.
func (r Rational) SquaredDifference(s Rational, lo, hi float64) float64 {
	return r.P.Mul(s.Q).SquaredDifference(s.P.Mul(r.Q), lo, hi)
}

// Distance is the polynomial distance between P₁Q₂ and P₂Q₁. It is zero
// exactly when r and s agree wherever both denominators are non-zero.
func (r Rational) Distance(s Rational, lo, hi float64) float64 {
	return math.Sqrt(math.Max(0, r.SquaredDifference(s, lo, hi)) / (hi - lo))
}

func (r Rational) String() string {
	return fmt.Sprintf("(%v) / (%v)", r.P, r.Q)
}
