package analytic

import (
	"math"
	"slices"

	"github.com/pkg/errors"
)

// Expression is any function of one real variable.
//
// Every type in this package is an Expression. Add, Sub, Mul, Div, Compose
// and Distance accept any pair of them: both operands are first promoted to
// a common content (scalar, then polynomial, then rational) and a common
// structure (plain, then railcar, then railyard, then train). Two sparse
// operands are the exception: they combine into a sparse result.
type Expression interface {
	F(x float64) float64
}

// Scalar is a constant function.
type Scalar float64

func (k Scalar) F(float64) float64 { return float64(k) }

type kind int

const (
	scalarKind kind = iota
	polynomialKind
	rationalKind
)

type structure int

const (
	plainStructure structure = iota
	railcarStructure
	railyardStructure
	trainStructure
)

type operator int

const (
	addOperator operator = iota
	subOperator
	mulOperator
	divOperator
)

func (op operator) String() string {
	switch op {
	case addOperator:
		return "add"
	case subOperator:
		return "subtract"
	case mulOperator:
		return "multiply"
	case divOperator:
		return "divide"
	}
	panic("unhandled operator")
}

func (op operator) apply(a, b float64) float64 {
	switch op {
	case addOperator:
		return a + b
	case subOperator:
		return a - b
	case mulOperator:
		return a * b
	case divOperator:
		return a / b
	}
	panic("unhandled operator")
}

// classify returns the content and structure of e, converting atoms and
// sparse functions to their dense forms on the way.
func classify(e Expression) (kind, structure, Expression, error) {
	switch v := e.(type) {
	case Scalar:
		return scalarKind, plainStructure, v, nil
	case Polynomial:
		return polynomialKind, plainStructure, v, nil
	case Rational:
		return rationalKind, plainStructure, v, nil
	case Railcar[Polynomial]:
		return polynomialKind, railcarStructure, v, nil
	case Railcar[Rational]:
		return rationalKind, railcarStructure, v, nil
	case Railyard[Polynomial]:
		return polynomialKind, railyardStructure, v, nil
	case Railyard[Rational]:
		return rationalKind, railyardStructure, v, nil
	case Train[Polynomial]:
		return polynomialKind, trainStructure, v, nil
	case Train[Rational]:
		return rationalKind, trainStructure, v, nil
	case ArbitraryRational:
		return rationalKind, plainStructure, v.Rational(), nil
	case interface{ Polynomial() Polynomial }:
		// Identity, Scaling, Shifting, ScaledComplement and ArbitraryPolynomial
		return polynomialKind, plainStructure, v.Polynomial(), nil
	}
	return 0, 0, nil, errors.Wrapf(ErrUnsupported, "%T is not a known function type", e)
}

func promoteKind(e Expression, k kind) Expression {
	switch k {
	case polynomialKind:
		if v, ok := e.(Scalar); ok {
			return Constant(float64(v))
		}
	case rationalKind:
		switch v := e.(type) {
		case Scalar:
			return Constant(float64(v)).Rational()
		case Polynomial:
			return v.Rational()
		case Railcar[Polynomial]:
			return v.Rational()
		case Railyard[Polynomial]:
			return v.Rational()
		case Train[Polynomial]:
			return v.Rational()
		}
	}
	return e
}

// promoteStructure lifts e to a train when s is a train, and a railcar to a
// railyard when s is a railyard. Plain contents are otherwise left alone since
// railcars and railyards combine with them directly.
func promoteStructure[C Content[C]](e Expression, s structure) Expression {
	switch s {
	case railyardStructure:
		if v, ok := e.(Railcar[C]); ok {
			return v.Railyard()
		}
	case trainStructure:
		switch v := e.(type) {
		case C:
			return TrainOf(v)
		case Railcar[C]:
			return ToTrain(v.Railyard())
		case Railyard[C]:
			return ToTrain(v)
		}
	}
	return e
}

func promote(f, g Expression) (kind, Expression, Expression, error) {
	kf, sf, f, err := classify(f)
	if err != nil {
		return 0, nil, nil, err
	}
	kg, sg, g, err := classify(g)
	if err != nil {
		return 0, nil, nil, err
	}
	k, s := max(kf, kg), max(sf, sg)
	f, g = promoteKind(f, k), promoteKind(g, k)
	switch k {
	case polynomialKind:
		f, g = promoteStructure[Polynomial](f, s), promoteStructure[Polynomial](g, s)
	case rationalKind:
		f, g = promoteStructure[Rational](f, s), promoteStructure[Rational](g, s)
	}
	return k, f, g, nil
}

// Add returns f+g.
func Add(f, g Expression) (Expression, error) {
	return binary(addOperator, f, g)
}

// Sub returns f-g.
func Sub(f, g Expression) (Expression, error) {
	return binary(subOperator, f, g)
}

// Mul returns f·g. Railcars multiply over the intersection of their bounds.
func Mul(f, g Expression) (Expression, error) {
	return binary(mulOperator, f, g)
}

// Div returns f/g as a rational of the common structure. Division by a
// railcar or railyard is unsupported, as is division of one railcar or
// railyard by another: the quotient would be undefined outside of the cars.
// Trains divide segment by segment.
func Div(f, g Expression) (Expression, error) {
	return binary(divOperator, f, g)
}

func binary(op operator, f, g Expression) (Expression, error) {
	if y, ok := sparseArithmetic(op, f, g); ok {
		return y, nil
	}
	k, f, g, err := promote(f, g)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot %v", op)
	}
	if k == scalarKind {
		return Scalar(op.apply(float64(f.(Scalar)), float64(g.(Scalar)))), nil
	}
	if op == divOperator {
		if k == polynomialKind {
			f, g = promoteKind(f, rationalKind), promoteKind(g, rationalKind)
		}
		return divide(f, g)
	}
	if k == rationalKind {
		return arithmetic[Rational](op, f, g)
	}
	return arithmetic[Polynomial](op, f, g)
}

// sparseArithmetic combines two sparse operands without densifying them.
// Sparse polynomials stay sparse polynomials unless divided, and anything
// involving a quotient is a sparse rational.
func sparseArithmetic(op operator, f, g Expression) (Expression, bool) {
	if p, ok := f.(ArbitraryPolynomial); ok {
		if q, ok := g.(ArbitraryPolynomial); ok {
			switch op {
			case addOperator:
				return p.Add(q), true
			case subOperator:
				return p.Sub(q), true
			case mulOperator:
				return p.Mul(q), true
			}
			return p.Quo(q), true
		}
	}
	r, ok := sparseRational(f)
	if !ok {
		return nil, false
	}
	s, ok := sparseRational(g)
	if !ok {
		return nil, false
	}
	switch op {
	case addOperator:
		return r.Add(s), true
	case subOperator:
		return r.Sub(s), true
	case mulOperator:
		return r.Mul(s), true
	}
	return r.Div(s), true
}

func sparseRational(e Expression) (ArbitraryRational, bool) {
	switch v := e.(type) {
	case ArbitraryPolynomial:
		return v.Quo(sparseOne()), true
	case ArbitraryRational:
		return v, true
	}
	return ArbitraryRational{}, false
}

func arithmetic[C Content[C]](op operator, f, g Expression) (Expression, error) {
	switch f := f.(type) {
	case C:
		switch g := g.(type) {
		case C:
			return contentArithmetic(op, f, g), nil
		case Railcar[C]:
			// a plain content only combines with a railcar within its bounds
			switch op {
			case addOperator:
				return g.AddContent(f), nil
			case subOperator:
				return g.Neg().AddContent(f), nil
			case mulOperator:
				return g.MulContent(f), nil
			}
		case Railyard[C]:
			switch op {
			case addOperator:
				return g.AddContent(f), nil
			case subOperator:
				return g.Neg().AddContent(f), nil
			case mulOperator:
				return g.MulContent(f), nil
			}
		}
	case Railcar[C]:
		switch g := g.(type) {
		case C:
			switch op {
			case addOperator:
				return f.AddContent(g), nil
			case subOperator:
				return f.SubContent(g), nil
			case mulOperator:
				return f.MulContent(g), nil
			}
		case Railcar[C]:
			switch op {
			case addOperator:
				return NewRailyard(f, g), nil
			case subOperator:
				return NewRailyard(f, g.Neg()), nil
			case mulOperator:
				if car, ok := f.Mul(g); ok {
					return car, nil
				}
				return Railyard[C]{}, nil
			}
		}
	case Railyard[C]:
		switch g := g.(type) {
		case C:
			switch op {
			case addOperator:
				return f.AddContent(g), nil
			case subOperator:
				return f.SubContent(g), nil
			case mulOperator:
				return f.MulContent(g), nil
			}
		case Railyard[C]:
			switch op {
			case addOperator:
				return f.Add(g), nil
			case subOperator:
				return f.Sub(g), nil
			case mulOperator:
				return f.Mul(g), nil
			}
		}
	case Train[C]:
		if g, ok := g.(Train[C]); ok {
			switch op {
			case addOperator:
				return f.Add(g), nil
			case subOperator:
				return f.Sub(g), nil
			case mulOperator:
				return f.Mul(g), nil
			}
		}
	}
	return nil, errors.Wrapf(ErrUnsupported, "cannot %v %T and %T", op, f, g)
}

func contentArithmetic[C Content[C]](op operator, f, g C) C {
	switch op {
	case addOperator:
		return f.Add(g)
	case subOperator:
		return f.Sub(g)
	case mulOperator:
		return f.Mul(g)
	}
	panic("unhandled operator")
}

func divide(f, g Expression) (Expression, error) {
	switch f := f.(type) {
	case Rational:
		if g, ok := g.(Rational); ok {
			return f.Div(g), nil
		}
	case Railcar[Rational]:
		if g, ok := g.(Rational); ok {
			return NewRailcar(f.Lo, f.Hi, f.Content.Div(g)), nil
		}
	case Railyard[Rational]:
		if g, ok := g.(Rational); ok {
			cars := make([]Railcar[Rational], len(f.Cars))
			for i, car := range f.Cars {
				cars[i] = NewRailcar(car.Lo, car.Hi, car.Content.Div(g))
			}
			return Railyard[Rational]{Cars: cars}, nil
		}
	case Train[Rational]:
		if g, ok := g.(Train[Rational]); ok {
			return Quo(f, g), nil
		}
	}
	return nil, errors.Wrapf(ErrUnsupported, "cannot divide %T by %T", f, g)
}

// Compose returns f∘g, the function x ↦ f(g(x)).
//
// Scalings and shiftings compose exactly with every structure, moving the
// bounds of railcars and trains. A general polynomial, railyard or train
// of polynomials may be composed into plain contents, railyards and trains,
// which are aligned with g on the union of their couplers first.
// Composition into a railcar needs an inner scaling or shifting, and an inner
// rational is never supported. An outer polynomial with negative exponents is
// composed as a rational, except under a scaling which keeps it a polynomial.
// An inner polynomial with negative exponents is not supported.
func Compose(f, g Expression) (Expression, error) {
	kf, sf, f, err := classify(f)
	if err != nil {
		return nil, errors.Wrap(err, "cannot compose")
	}
	if kf == scalarKind {
		return f, nil
	}
	if kf == polynomialKind && laurent(f) {
		if _, ok := g.(Scaling); !ok {
			f, kf = promoteKind(f, rationalKind), rationalKind
		}
	}
	switch g := g.(type) {
	case Identity:
		return f, nil
	case Scaling:
		if g.Factor == 0 && sf != plainStructure {
			return nil, errors.Wrapf(ErrUnsupported, "cannot compose %T with a zero scaling", f)
		}
		return composeScaling(f, g)
	case Shifting:
		return composeShifting(f, g)
	}
	kg, _, g, err := classify(g)
	if err != nil {
		return nil, errors.Wrap(err, "cannot compose")
	}
	switch kg {
	case scalarKind:
		return Scalar(f.F(float64(g.(Scalar)))), nil
	case rationalKind:
		return nil, errors.Wrapf(ErrUnsupported, "cannot compose %T with the rational %T", f, g)
	}
	if laurent(g) {
		return nil, errors.Wrapf(ErrUnsupported, "cannot compose %T with %T, which has negative exponents", f, g)
	}
	if kf == rationalKind {
		return compose[Rational](f, g)
	}
	return compose[Polynomial](f, g)
}

// laurent reports whether any polynomial held by e has negative exponents.
func laurent(e Expression) bool {
	negative := func(p Polynomial) bool { return p.Lo < 0 }
	switch v := e.(type) {
	case Polynomial:
		return negative(v)
	case Railcar[Polynomial]:
		return negative(v.Content)
	case Railyard[Polynomial]:
		return slices.ContainsFunc(v.Cars, func(car Railcar[Polynomial]) bool { return negative(car.Content) })
	case Train[Polynomial]:
		return slices.ContainsFunc(v.Contents, negative)
	}
	return false
}

func compose[C Content[C]](f, g Expression) (Expression, error) {
	everywhere := func(c C) Railyard[C] { return NewRailyard(NewRailcar(negInf, posInf, c)) }
	switch f := f.(type) {
	case C:
		switch g := g.(type) {
		case Polynomial:
			return f.Compose(g), nil
		case Railcar[Polynomial]:
			return everywhere(f).Compose(g.Railyard()), nil
		case Railyard[Polynomial]:
			return everywhere(f).Compose(g), nil
		case Train[Polynomial]:
			return TrainOf(f).ComposeTrain(g), nil
		}
	case Railcar[C]:
		switch g := g.(type) {
		case Railcar[Polynomial]:
			return f.Railyard().Compose(g.Railyard()), nil
		case Railyard[Polynomial]:
			return f.Railyard().Compose(g), nil
		case Train[Polynomial]:
			return ToTrain(f.Railyard()).ComposeTrain(g), nil
		}
	case Railyard[C]:
		switch g := g.(type) {
		case Polynomial:
			return f.Compose(NewRailyard(NewRailcar(negInf, posInf, g))), nil
		case Railcar[Polynomial]:
			return f.Compose(g.Railyard()), nil
		case Railyard[Polynomial]:
			return f.Compose(g), nil
		case Train[Polynomial]:
			return ToTrain(f).ComposeTrain(g), nil
		}
	case Train[C]:
		switch g := g.(type) {
		case Polynomial:
			return f.Compose(g), nil
		case Railcar[Polynomial]:
			return f.ComposeTrain(ToTrain(g.Railyard())), nil
		case Railyard[Polynomial]:
			return f.ComposeTrain(ToTrain(g)), nil
		case Train[Polynomial]:
			return f.ComposeTrain(g), nil
		}
	}
	return nil, errors.Wrapf(ErrUnsupported, "cannot compose %T with %T", f, g)
}

func composeScaling(f Expression, g Scaling) (Expression, error) {
	switch f := f.(type) {
	case Polynomial:
		return f.ComposeScaling(g), nil
	case Rational:
		return f.ComposeScaling(g), nil
	case Railcar[Polynomial]:
		return f.ComposeScaling(g), nil
	case Railcar[Rational]:
		return f.ComposeScaling(g), nil
	case Railyard[Polynomial]:
		return f.ComposeScaling(g), nil
	case Railyard[Rational]:
		return f.ComposeScaling(g), nil
	case Train[Polynomial]:
		return f.ComposeScaling(g), nil
	case Train[Rational]:
		return f.ComposeScaling(g), nil
	}
	return nil, errors.Wrapf(ErrUnsupported, "cannot scale %T", f)
}

func composeShifting(f Expression, g Shifting) (Expression, error) {
	switch f := f.(type) {
	case Polynomial:
		return f.ComposeShifting(g), nil
	case Rational:
		return f.ComposeShifting(g), nil
	case Railcar[Polynomial]:
		return f.ComposeShifting(g), nil
	case Railcar[Rational]:
		return f.ComposeShifting(g), nil
	case Railyard[Polynomial]:
		return f.ComposeShifting(g), nil
	case Railyard[Rational]:
		return f.ComposeShifting(g), nil
	case Train[Polynomial]:
		return f.ComposeShifting(g), nil
	case Train[Rational]:
		return f.ComposeShifting(g), nil
	}
	return nil, errors.Wrapf(ErrUnsupported, "cannot shift %T", f)
}

// Distance returns the root mean square difference between f and g over [lo,hi].
// Rationals are compared through their cross multiplied numerators.
func Distance(f, g Expression, lo, hi float64) (float64, error) {
	k, f, g, err := promote(f, g)
	if err != nil {
		return 0, errors.Wrap(err, "cannot measure distance")
	}
	switch k {
	case scalarKind:
		return math.Abs(float64(f.(Scalar)) - float64(g.(Scalar))), nil
	case polynomialKind:
		return distance[Polynomial](f, g, lo, hi)
	}
	return distance[Rational](f, g, lo, hi)
}

func distance[C Content[C]](f, g Expression, lo, hi float64) (float64, error) {
	if f, ok := f.(C); ok {
		if g, ok := g.(C); ok {
			return math.Sqrt(math.Max(0, f.SquaredDifference(g, lo, hi)) / (hi - lo)), nil
		}
	}
	t, u := promoteStructure[C](f, trainStructure), promoteStructure[C](g, trainStructure)
	if t, ok := t.(Train[C]); ok {
		if u, ok := u.(Train[C]); ok {
			return t.Distance(u, lo, hi), nil
		}
	}
	return 0, errors.Wrapf(ErrUnsupported, "cannot measure distance between %T and %T", f, g)
}
