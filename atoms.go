package analytic

import "fmt"

// Identity is f(x)=x.
type Identity struct{}

// Scaling is f(x)=ax.
type Scaling struct {
	Factor float64
}

// Shifting is f(x)=x+b.
type Shifting struct {
	Offset float64
}

// ScaledComplement is f(x)=1-x/k, the complement of x scaled to k.
// Use Of to build g(1-x/k) for a polynomial g.
type ScaledComplement struct {
	Scale float64
}

func (Identity) F(x float64) float64           { return x }
func (f Scaling) F(x float64) float64          { return f.Factor * x }
func (f Shifting) F(x float64) float64         { return x + f.Offset }
func (f ScaledComplement) F(x float64) float64 { return 1 - x/f.Scale }

// Polynomial returns the lowest degree polynomial equal to the atom.
func (Identity) Polynomial() Polynomial { return Monomial(1, 1) }

func (f Scaling) Polynomial() Polynomial { return Monomial(1, f.Factor) }

func (f Shifting) Polynomial() Polynomial { return NewPolynomial(0, 1, f.Offset, 1) }

func (f ScaledComplement) Polynomial() Polynomial {
	return NewPolynomial(0, 1, 1, -1/f.Scale)
}

// Of returns g(1-x/k).
func (f ScaledComplement) Of(g Polynomial) Polynomial {
	return g.Compose(f.Polynomial())
}

// Inverse returns the scaling that undoes f.
func (f Scaling) Inverse() Scaling { return Scaling{Factor: 1 / f.Factor} }

// Inverse returns the shifting that undoes f.
func (f Shifting) Inverse() Shifting { return Shifting{Offset: -f.Offset} }

func (Identity) String() string  { return "x" }
func (f Scaling) String() string { return fmt.Sprintf("%vx", f.Factor) }
func (f Shifting) String() string {
	return fmt.Sprintf("x + %v", f.Offset)
}
func (f ScaledComplement) String() string {
	return fmt.Sprintf("1 - x/%v", f.Scale)
}
