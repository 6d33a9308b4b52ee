package analytic

import "math"

// Derivative returns dp/dx. The range shifts down by one, except that a
// lower bound of 0 stays at 0 since the constant term vanishes.
func (p Polynomial) Derivative() Polynomial {
	lo, hi := p.Lo-1, p.Hi-1
	if p.Lo == 0 {
		lo = 0
	}
	if hi < lo {
		return Constant(0)
	}
	y := NewPolynomial(lo, hi)
	for i := p.Lo; i <= p.Hi; i++ {
		if i == 0 {
			continue
		}
		y.K[i-1-lo] = float64(i) * p.Coeff(i)
	}
	return y
}

// DerivativeAt returns dp/dx at x.
func (p Polynomial) DerivativeAt(x float64) float64 {
	return p.Derivative().F(x)
}

// Integral returns the antiderivative with a zero constant of integration.
// It panics if p has a 1/x term, whose antiderivative is ln|x|;
// use IntegralBetween or IntegralAt for those.
func (p Polynomial) Integral() Polynomial {
	if p.Coeff(-1) != 0 {
		panic("the integral of a 1/x term is not a polynomial, use IntegralBetween")
	}
	y := NewPolynomial(p.Lo+1, p.Hi+1)
	for i := p.Lo; i <= p.Hi; i++ {
		if i == -1 {
			continue
		}
		y.K[i+1-y.Lo] = p.Coeff(i) / float64(i+1)
	}
	return y
}

// IntegralAt returns the antiderivative of p at x, including k₋₁ln|x|.
func (p Polynomial) IntegralAt(x float64) float64 {
	y := 0.0
	for i := p.Lo; i <= p.Hi; i++ {
		k := p.Coeff(i)
		if k == 0 {
			continue
		}
		if i == -1 {
			y += k * math.Log(math.Abs(x))
			continue
		}
		y += k * math.Pow(x, float64(i+1)) / float64(i+1)
	}
	return y
}

// IntegralBetween returns the definite integral of p over [lo,hi].
// A zero 1/x coefficient contributes exactly 0, even across x=0.
func (p Polynomial) IntegralBetween(lo, hi float64) float64 {
	y := 0.0
	for i := p.Lo; i <= p.Hi; i++ {
		k := p.Coeff(i)
		if k == 0 {
			continue
		}
		if i == -1 {
			y += k * (math.Log(math.Abs(hi)) - math.Log(math.Abs(lo)))
			continue
		}
		n := float64(i + 1)
		y += k * (math.Pow(hi, n)/n - math.Pow(lo, n)/n)
	}
	return y
}

// SquaredDifference returns ∫(p-q)² over [lo,hi].
func (p Polynomial) SquaredDifference(q Polynomial, lo, hi float64) float64 {
	d := p.Sub(q)
	return d.Mul(d).IntegralBetween(lo, hi)
}

// Distance is the root mean square difference between p and q over [lo,hi]:
//
//	sqrt(∫(p-q)²dx / (hi-lo))
//
// It is non-negative, symmetric and zero only when p=q on [lo,hi].
// It is expressed in the same units as the output of p.
func (p Polynomial) Distance(q Polynomial, lo, hi float64) float64 {
	return math.Sqrt(math.Max(0, p.SquaredDifference(q, lo, hi)) / (hi - lo))
}

// Compose returns p∘g. Neither p nor g may have negative exponents;
// use Rational.Compose for Laurent polynomials.
//
// It relies on the Horner identity p∘g = k₀ + g·(p₁∘g)
// where p₁ holds the coefficients of p above exponent 0.
func (p Polynomial) Compose(g Polynomial) Polynomial {
	if p.Lo < 0 || g.Lo < 0 {
		panic("polynomial composition requires non-negative exponents, use Rational.Compose")
	}
	y := Constant(p.Coeff(p.Hi))
	for i := p.Hi - 1; i >= 0; i-- {
		y = y.Mul(g).AddScalar(p.Coeff(i))
	}
	return y
}

// ComposeScaling returns p(ax).
func (p Polynomial) ComposeScaling(g Scaling) Polynomial {
	y := p.widen(p.Lo, p.Hi)
	for i := p.Lo; i <= p.Hi; i++ {
		y.K[i-p.Lo] *= math.Pow(g.Factor, float64(i))
	}
	return y
}

// ComposeShifting returns p(x+b) by binomial expansion.
//
//	p(x+b) = Σᵢkᵢ Σⱼ C(i,j) bⁱ⁻ʲ xʲ
func (p Polynomial) ComposeShifting(g Shifting) Polynomial {
	if p.Lo < 0 {
		panic("shifting a Laurent polynomial is not closed under polynomials, use Rational.Compose")
	}
	y := NewPolynomial(0, p.Hi)
	for i := p.Lo; i <= p.Hi; i++ {
		k := p.Coeff(i)
		for j := 0; j <= i; j++ {
			y.K[j] += k * combination(i, j) * math.Pow(g.Offset, float64(i-j))
		}
	}
	return y
}

func combination(n, k int) float64 {
	c := 1.0
	for i := 1; i <= k; i++ {
		c = c * float64(n-k+i) / float64(i)
	}
	return c
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
