package analytic

// Content is a function that railcars, railyards and trains can be built
// from. Polynomial and Rational satisfy it.
type Content[C any] interface {
	F(x float64) float64
	Add(C) C
	Sub(C) C
	Mul(C) C
	Scale(k float64) C
	Neg() C
	// Zero returns the additive identity of the content type.
	Zero() C
	Derivative() C
	Compose(g Polynomial) C
	ComposeScaling(g Scaling) C
	// ComposeShifting may panic for a Polynomial with negative exponents,
	// whose shift is only a Rational.
	ComposeShifting(g Shifting) C
	Rational() Rational
	// SquaredDifference returns ∫(f-g)² over [lo,hi], or the closest
	// polynomial quantity the content type supports.
	SquaredDifference(g C, lo, hi float64) float64
	String() string
}
