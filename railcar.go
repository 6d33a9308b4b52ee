package analytic

import (
	"fmt"
	"math"
)

// Railcar is a function that is only valid on [Lo,Hi) and is 0 elsewhere.
// Railcars cannot be divided by one another: the quotient of two railcars
// would be undefined everywhere outside their intersection.
type Railcar[C Content[C]] struct {
	Lo, Hi  float64
	Content C
}

// NewRailcar creates a railcar. It panics unless lo<hi.
func NewRailcar[C Content[C]](lo, hi float64, content C) Railcar[C] {
	if !(lo < hi) {
		panic(fmt.Sprintf("railcar bounds must satisfy lo<hi, got [%v,%v)", lo, hi))
	}
	return Railcar[C]{Lo: lo, Hi: hi, Content: content}
}

// Contains reports whether x lies in [Lo,Hi).
func (r Railcar[C]) Contains(x float64) bool {
	return r.Lo <= x && x < r.Hi
}

func (r Railcar[C]) F(x float64) float64 {
	if r.Contains(x) {
		return r.Content.F(x)
	}
	return 0
}

// Mul returns the product of r and s over the intersection of their bounds.
// ok is false when the bounds do not intersect.
func (r Railcar[C]) Mul(s Railcar[C]) (y Railcar[C], ok bool) {
	lo, hi := math.Max(r.Lo, s.Lo), math.Min(r.Hi, s.Hi)
	if !(lo < hi) {
		return y, false
	}
	return Railcar[C]{Lo: lo, Hi: hi, Content: r.Content.Mul(s.Content)}, true
}

// AddContent adds c to the content of r, keeping the bounds of r.
func (r Railcar[C]) AddContent(c C) Railcar[C] {
	return Railcar[C]{Lo: r.Lo, Hi: r.Hi, Content: r.Content.Add(c)}
}

func (r Railcar[C]) SubContent(c C) Railcar[C] {
	return Railcar[C]{Lo: r.Lo, Hi: r.Hi, Content: r.Content.Sub(c)}
}

func (r Railcar[C]) MulContent(c C) Railcar[C] {
	return Railcar[C]{Lo: r.Lo, Hi: r.Hi, Content: r.Content.Mul(c)}
}

func (r Railcar[C]) Scale(k float64) Railcar[C] {
	return Railcar[C]{Lo: r.Lo, Hi: r.Hi, Content: r.Content.Scale(k)}
}

func (r Railcar[C]) Neg() Railcar[C] {
	return r.Scale(-1)
}

func (r Railcar[C]) Derivative() Railcar[C] {
	return Railcar[C]{Lo: r.Lo, Hi: r.Hi, Content: r.Content.Derivative()}
}

// DerivativeAt returns the derivative at x, 0 outside the bounds.
func (r Railcar[C]) DerivativeAt(x float64) float64 {
	if r.Contains(x) {
		return r.Content.Derivative().F(x)
	}
	return 0
}

// ComposeScaling returns x ↦ r(ax). The bounds move to where ax lies in
// [Lo,Hi), and are swapped when a is negative. It panics when a is 0.
func (r Railcar[C]) ComposeScaling(g Scaling) Railcar[C] {
	if g.Factor == 0 {
		panic("cannot compose a railcar with a zero scaling")
	}
	inv := g.Inverse()
	lo, hi := inv.F(r.Lo), inv.F(r.Hi)
	if lo > hi {
		lo, hi = hi, lo
	}
	return Railcar[C]{Lo: lo, Hi: hi, Content: r.Content.ComposeScaling(g)}
}

// ComposeShifting returns x ↦ r(x+b), whose bounds are [Lo-b,Hi-b).
func (r Railcar[C]) ComposeShifting(g Shifting) Railcar[C] {
	inv := g.Inverse()
	return Railcar[C]{Lo: inv.F(r.Lo), Hi: inv.F(r.Hi), Content: r.Content.ComposeShifting(g)}
}

// Rational converts the content of r to a rational.
func (r Railcar[C]) Rational() Railcar[Rational] {
	return Railcar[Rational]{Lo: r.Lo, Hi: r.Hi, Content: r.Content.Rational()}
}

// Railyard returns a railyard holding only r.
func (r Railcar[C]) Railyard() Railyard[C] {
	return NewRailyard(r)
}

func (r Railcar[C]) String() string {
	return fmt.Sprintf("[%v, %v): %v", r.Lo, r.Hi, r.Content)
}

// RailcarIntegral returns the integral of r over [lo,hi], counting only
// the part that overlaps the bounds of r.
func RailcarIntegral(r Railcar[Polynomial], lo, hi float64) float64 {
	a, b := math.Max(lo, r.Lo), math.Min(hi, r.Hi)
	if !(a < b) {
		return 0
	}
	return r.Content.IntegralBetween(a, b)
}
