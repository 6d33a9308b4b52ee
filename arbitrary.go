package analytic

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// ArbitraryPolynomial is a sparse Laurent polynomial for results whose
// exponents are not known ahead of time, such as sums of cross multiplied
// rationals. Absent exponents read as 0.
type ArbitraryPolynomial struct {
	k map[int]float64
}

// NewArbitraryPolynomial creates a sparse polynomial from exponent→coefficient pairs.
func NewArbitraryPolynomial(k map[int]float64) ArbitraryPolynomial {
	p := ArbitraryPolynomial{k: make(map[int]float64, len(k))}
	for i, c := range k {
		p.set(i, c)
	}
	return p
}

// Sparse converts p to its sparse form.
func (p Polynomial) Sparse() ArbitraryPolynomial {
	y := ArbitraryPolynomial{k: make(map[int]float64)}
	for i := p.Lo; i <= p.Hi; i++ {
		y.set(i, p.Coeff(i))
	}
	return y
}

// Coeff returns the coefficient of xⁱ.
func (p ArbitraryPolynomial) Coeff(i int) float64 {
	if c, ok := p.k[i]; ok {
		return c
	}
	return 0
}

func (p ArbitraryPolynomial) set(i int, c float64) {
	if c == 0 {
		delete(p.k, i)
		return
	}
	p.k[i] = c
}

func (p ArbitraryPolynomial) clone() ArbitraryPolynomial {
	y := ArbitraryPolynomial{k: make(map[int]float64, len(p.k))}
	maps.Copy(y.k, p.k)
	return y
}

// Exponents returns the exponents with non-zero coefficients in ascending order.
func (p ArbitraryPolynomial) Exponents() []int {
	is := maps.Keys(p.k)
	slices.Sort(is)
	return is
}

// F sums the terms in ascending order of exponent, so that repeated
// evaluations round the same way.
func (p ArbitraryPolynomial) F(x float64) float64 {
	y := 0.0
	for _, i := range p.Exponents() {
		y += p.k[i] * math.Pow(x, float64(i))
	}
	return y
}

func (p ArbitraryPolynomial) Add(q ArbitraryPolynomial) ArbitraryPolynomial {
	y := p.clone()
	for i, c := range q.k {
		y.set(i, y.Coeff(i)+c)
	}
	return y
}

func (p ArbitraryPolynomial) Sub(q ArbitraryPolynomial) ArbitraryPolynomial {
	return p.Add(q.Neg())
}

func (p ArbitraryPolynomial) AddScalar(k float64) ArbitraryPolynomial {
	y := p.clone()
	y.set(0, y.Coeff(0)+k)
	return y
}

func (p ArbitraryPolynomial) Scale(k float64) ArbitraryPolynomial {
	y := ArbitraryPolynomial{k: make(map[int]float64, len(p.k))}
	for i, c := range p.k {
		y.set(i, c*k)
	}
	return y
}

func (p ArbitraryPolynomial) Neg() ArbitraryPolynomial {
	return p.Scale(-1)
}

func (p ArbitraryPolynomial) Mul(q ArbitraryPolynomial) ArbitraryPolynomial {
	y := ArbitraryPolynomial{k: make(map[int]float64)}
	qs := q.Exponents()
	for _, i := range p.Exponents() {
		for _, j := range qs {
			y.k[i+j] += p.k[i] * q.k[j]
		}
	}
	for i, c := range y.k {
		if c == 0 {
			delete(y.k, i)
		}
	}
	return y
}

// Div divides p by the monomial kxⁿ.
func (p ArbitraryPolynomial) Div(n int, k float64) ArbitraryPolynomial {
	y := ArbitraryPolynomial{k: make(map[int]float64, len(p.k))}
	for i, c := range p.k {
		y.set(i-n, c/k)
	}
	return y
}

func (p ArbitraryPolynomial) Derivative() ArbitraryPolynomial {
	y := ArbitraryPolynomial{k: make(map[int]float64, len(p.k))}
	for i, c := range p.k {
		y.set(i-1, float64(i)*c)
	}
	return y
}

// IntegralBetween returns the definite integral over [lo,hi].
func (p ArbitraryPolynomial) IntegralBetween(lo, hi float64) float64 {
	return p.Polynomial().IntegralBetween(lo, hi)
}

// Distance is the root mean square difference between p and q over [lo,hi].
func (p ArbitraryPolynomial) Distance(q ArbitraryPolynomial, lo, hi float64) float64 {
	return p.Polynomial().Distance(q.Polynomial(), lo, hi)
}

// Polynomial converts p to a dense polynomial over its narrowest range.
func (p ArbitraryPolynomial) Polynomial() Polynomial {
	is := p.Exponents()
	if len(is) == 0 {
		return Constant(0)
	}
	y := NewPolynomial(is[0], is[len(is)-1])
	for _, i := range is {
		y.K[i-y.Lo] = p.k[i]
	}
	return y
}

func (p ArbitraryPolynomial) String() string {
	is := p.Exponents()
	if len(is) == 0 {
		return "0"
	}
	terms := make([]string, len(is))
	for n, i := range is {
		terms[n] = fmt.Sprintf("%vx^%d", p.k[i], i)
	}
	return strings.Join(terms, " + ")
}
