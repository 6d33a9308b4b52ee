package analytic

import (
	"fmt"
	"math"
	"strings"
)

// Polynomial is a Laurent polynomial f(x)=Σᵢkᵢxⁱ for Lo≤i≤Hi.
// K holds the coefficients indexed by exponent-Lo.
// The zero value is the zero polynomial.
type Polynomial struct {
	Lo, Hi int
	K      []float64
}

// NewPolynomial creates a polynomial over exponents [lo,hi].
// Missing trailing coefficients are zero.
func NewPolynomial(lo, hi int, k ...float64) Polynomial {
	if lo > hi {
		panic(fmt.Sprintf("polynomial exponents must satisfy lo<=hi, got [%d,%d]", lo, hi))
	}
	if len(k) > hi-lo+1 {
		panic(fmt.Sprintf("polynomial over [%d,%d] cannot hold %d coefficients", lo, hi, len(k)))
	}
	p := Polynomial{Lo: lo, Hi: hi, K: make([]float64, hi-lo+1)}
	copy(p.K, k)
	return p
}

// Constant returns f(x)=k.
func Constant(k float64) Polynomial {
	return NewPolynomial(0, 0, k)
}

// Monomial returns f(x)=kxⁿ.
func Monomial(n int, k float64) Polynomial {
	return NewPolynomial(n, n, k)
}

// Coeff returns the coefficient of xⁱ, 0 outside the exponent range.
func (p Polynomial) Coeff(i int) float64 {
	if i < p.Lo || i > p.Hi || i-p.Lo >= len(p.K) {
		return 0
	}
	return p.K[i-p.Lo]
}

// F evaluates the polynomial.
func (p Polynomial) F(x float64) float64 {
	y := 0.0
	// negative exponents use pow to limit rounding, and zero terms are
	// skipped so that an absent 1/x term does not produce NaN at 0
	for i := p.Lo; i <= min(p.Hi, -1); i++ {
		if k := p.Coeff(i); k != 0 {
			y += k * math.Pow(x, float64(i))
		}
	}
	i0 := max(p.Lo, 0)
	xi := math.Pow(x, float64(i0))
	for i := i0; i <= p.Hi; i++ {
		y += p.Coeff(i) * xi
		xi *= x
	}
	return y
}

// widen returns a copy of p over [lo,hi], which must contain p's range.
func (p Polynomial) widen(lo, hi int) Polynomial {
	y := NewPolynomial(lo, hi)
	for i := p.Lo; i <= p.Hi; i++ {
		y.K[i-lo] = p.Coeff(i)
	}
	return y
}

func (p Polynomial) Add(q Polynomial) Polynomial {
	y := p.widen(min(p.Lo, q.Lo), max(p.Hi, q.Hi))
	for i := q.Lo; i <= q.Hi; i++ {
		y.K[i-y.Lo] += q.Coeff(i)
	}
	return y
}

func (p Polynomial) Sub(q Polynomial) Polynomial {
	y := p.widen(min(p.Lo, q.Lo), max(p.Hi, q.Hi))
	for i := q.Lo; i <= q.Hi; i++ {
		y.K[i-y.Lo] -= q.Coeff(i)
	}
	return y
}

// AddScalar returns p+k. The range is widened to hold exponent 0.
func (p Polynomial) AddScalar(k float64) Polynomial {
	y := p.widen(min(p.Lo, 0), max(p.Hi, 0))
	y.K[-y.Lo] += k
	return y
}

func (p Polynomial) SubScalar(k float64) Polynomial {
	return p.AddScalar(-k)
}

func (p Polynomial) Scale(k float64) Polynomial {
	y := p.widen(p.Lo, p.Hi)
	for i := range y.K {
		y.K[i] *= k
	}
	return y
}

func (p Polynomial) Neg() Polynomial {
	return p.Scale(-1)
}

// Mul returns the product over [p.Lo+q.Lo, p.Hi+q.Hi].
func (p Polynomial) Mul(q Polynomial) Polynomial {
	y := NewPolynomial(p.Lo+q.Lo, p.Hi+q.Hi)
	for i := p.Lo; i <= p.Hi; i++ {
		ki := p.Coeff(i)
		for j := q.Lo; j <= q.Hi; j++ {
			y.K[i+j-y.Lo] += ki * q.Coeff(j)
		}
	}
	return y
}

// monomial reports the single exponent and coefficient of q, if it has one.
func (q Polynomial) monomial() (n int, k float64, ok bool) {
	if q.Lo == q.Hi {
		return q.Lo, q.Coeff(q.Lo), true
	}
	found := false
	for i := q.Lo; i <= q.Hi; i++ {
		if c := q.Coeff(i); c != 0 {
			if found {
				return 0, 0, false
			}
			n, k, found = i, c, true
		}
	}
	return n, k, found
}

// Div divides p by a monomial q, shifting the range down by q's exponent.
// Division by a polynomial of more than one term panics; build a Rational instead.
func (p Polynomial) Div(q Polynomial) Polynomial {
	n, k, ok := q.monomial()
	if !ok {
		panic("polynomial division is only defined for a monomial divisor, use NewRational")
	}
	y := NewPolynomial(p.Lo-n, p.Hi-n)
	for i := p.Lo; i <= p.Hi; i++ {
		y.K[i-p.Lo] = p.Coeff(i) / k
	}
	return y
}

// Pow returns pⁿ. Negative n is only defined for a monomial.
func (p Polynomial) Pow(n int) Polynomial {
	if n < 0 {
		m, k, ok := p.monomial()
		if !ok {
			panic("negative powers are only defined for a monomial, use Rational.Pow")
		}
		return Monomial(-m, 1/k).Pow(-n)
	}
	y := Constant(1)
	for ; n > 0; n-- {
		y = y.Mul(p)
	}
	return y
}

// Trim returns p over the narrowest range that holds its non-zero terms.
func (p Polynomial) Trim() Polynomial {
	lo, hi := p.Lo, p.Hi
	for lo <= hi && p.Coeff(lo) == 0 {
		lo++
	}
	for hi >= lo && p.Coeff(hi) == 0 {
		hi--
	}
	if lo > hi {
		return Constant(0)
	}
	y := NewPolynomial(lo, hi)
	for i := lo; i <= hi; i++ {
		y.K[i-lo] = p.Coeff(i)
	}
	return y
}

// Zero returns the zero polynomial.
func (Polynomial) Zero() Polynomial {
	return Constant(0)
}

// Rational returns p/1.
func (p Polynomial) Rational() Rational {
	return NewRational(p, Constant(1))
}

func (p Polynomial) String() string {
	terms := make([]string, 0, p.Hi-p.Lo+1)
	for i := p.Lo; i <= p.Hi; i++ {
		s := fmt.Sprint(p.Coeff(i))
		if i != 0 {
			s += "x"
		}
		if i < 0 || i > 1 {
			s += fmt.Sprintf("^%d", i)
		}
		terms = append(terms, s)
	}
	return strings.Join(terms, " + ")
}
