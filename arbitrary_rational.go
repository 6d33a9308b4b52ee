package analytic

import "fmt"

// ArbitraryRational is P(x)/Q(x) over sparse polynomials. Dividing sparse
// polynomials, or cross multiplying sparse rationals, keeps the result sparse.
type ArbitraryRational struct {
	P, Q ArbitraryPolynomial
}

func NewArbitraryRational(p, q ArbitraryPolynomial) ArbitraryRational {
	return ArbitraryRational{P: p, Q: q}
}

// Quo returns p/q.
func (p ArbitraryPolynomial) Quo(q ArbitraryPolynomial) ArbitraryRational {
	return NewArbitraryRational(p, q)
}

// Sparse converts r to sparse numerator and denominator.
func (r Rational) Sparse() ArbitraryRational {
	return NewArbitraryRational(r.P.Sparse(), r.Q.Sparse())
}

func sparseOne() ArbitraryPolynomial {
	return NewArbitraryPolynomial(map[int]float64{0: 1})
}

func (r ArbitraryRational) F(x float64) float64 {
	return r.P.F(x) / r.Q.F(x)
}

func (r ArbitraryRational) Add(s ArbitraryRational) ArbitraryRational {
	return NewArbitraryRational(r.P.Mul(s.Q).Add(s.P.Mul(r.Q)), r.Q.Mul(s.Q))
}

func (r ArbitraryRational) Sub(s ArbitraryRational) ArbitraryRational {
	return NewArbitraryRational(r.P.Mul(s.Q).Sub(s.P.Mul(r.Q)), r.Q.Mul(s.Q))
}

func (r ArbitraryRational) Mul(s ArbitraryRational) ArbitraryRational {
	return NewArbitraryRational(r.P.Mul(s.P), r.Q.Mul(s.Q))
}

func (r ArbitraryRational) Div(s ArbitraryRational) ArbitraryRational {
	return NewArbitraryRational(r.P.Mul(s.Q), r.Q.Mul(s.P))
}

func (r ArbitraryRational) AddScalar(k float64) ArbitraryRational {
	return NewArbitraryRational(r.P.Add(r.Q.Scale(k)), r.Q)
}

func (r ArbitraryRational) AddPolynomial(p ArbitraryPolynomial) ArbitraryRational {
	return NewArbitraryRational(r.P.Add(p.Mul(r.Q)), r.Q)
}

func (r ArbitraryRational) MulPolynomial(p ArbitraryPolynomial) ArbitraryRational {
	return NewArbitraryRational(r.P.Mul(p), r.Q)
}

func (r ArbitraryRational) Scale(k float64) ArbitraryRational {
	return NewArbitraryRational(r.P.Scale(k), r.Q)
}

func (r ArbitraryRational) Neg() ArbitraryRational {
	return r.Scale(-1)
}

// Inverse returns Q/P.
func (r ArbitraryRational) Inverse() ArbitraryRational {
	return NewArbitraryRational(r.Q, r.P)
}

// Derivative follows the quotient rule, (P'Q-PQ')/Q².
func (r ArbitraryRational) Derivative() ArbitraryRational {
	return NewArbitraryRational(
		r.P.Derivative().Mul(r.Q).Sub(r.P.Mul(r.Q.Derivative())),
		r.Q.Mul(r.Q),
	)
}

// Rational converts r to dense numerator and denominator.
func (r ArbitraryRational) Rational() Rational {
	return NewRational(r.P.Polynomial(), r.Q.Polynomial())
}

// Distance is the sparse polynomial distance between P₁Q₂ and P₂Q₁.
func (r ArbitraryRational) Distance(s ArbitraryRational, lo, hi float64) float64 {
	return r.P.Mul(s.Q).Distance(s.P.Mul(r.Q), lo, hi)
}

func (r ArbitraryRational) String() string {
	return fmt.Sprintf("(%v) / (%v)", r.P, r.Q)
}
