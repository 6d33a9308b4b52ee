package analytic

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Train is a piecewise function that covers the whole real line without
// overlap. Contents[i] is valid on [Couplers[i],Couplers[i+1]), so Couplers
// runs strictly upward from -Inf to +Inf and holds one more value than Contents.
type Train[C Content[C]] struct {
	Couplers []float64
	Contents []C
}

// NewTrain creates a train, panicking if the couplers are out of order,
// do not span the real line, or do not match the number of contents.
func NewTrain[C Content[C]](couplers []float64, contents []C) Train[C] {
	validCouplers(couplers, len(contents))
	return Train[C]{Couplers: slices.Clone(couplers), Contents: slices.Clone(contents)}
}

// TrainOf returns the train that is c everywhere.
func TrainOf[C Content[C]](c C) Train[C] {
	return Train[C]{Couplers: []float64{negInf, posInf}, Contents: []C{c}}
}

// ToTrain merges the cars of y at the union of their bounds. Each segment
// holds the sum of every car that covers it, or zero where none do.
func ToTrain[C Content[C]](y Railyard[C]) Train[C] {
	cs := Couplers([]float64{negInf, posInf}, y.Couplers())
	contents := make([]C, len(cs)-1)
	var zero C
	for i := range contents {
		c, ok := y.local(cs[i], cs[i+1])
		if !ok {
			c = zero.Zero()
		}
		contents[i] = c
	}
	return Train[C]{Couplers: cs, Contents: contents}
}

// combine applies op to the contents of f and g that are active on each
// segment of the union of their couplers.
func combine[A Content[A], B Content[B], R Content[R]](f Train[A], g Train[B], op func(A, B) R) Train[R] {
	cs := Couplers(f.Couplers, g.Couplers)
	contents := make([]R, len(cs)-1)
	for i := range contents {
		// a coupler of the union lies inside, or at the start of, exactly one segment of each operand
		a := cs[i]
		contents[i] = op(f.Contents[segmentIndex(f.Couplers, a)], g.Contents[segmentIndex(g.Couplers, a)])
	}
	return Train[R]{Couplers: cs, Contents: contents}
}

func (t Train[C]) each(f func(C) C) Train[C] {
	contents := make([]C, len(t.Contents))
	for i, c := range t.Contents {
		contents[i] = f(c)
	}
	return Train[C]{Couplers: slices.Clone(t.Couplers), Contents: contents}
}

// Len returns the number of segments.
func (t Train[C]) Len() int {
	return len(t.Contents)
}

// Segment returns the bounds and content of segment i.
func (t Train[C]) Segment(i int) (lo, hi float64, c C) {
	return t.Couplers[i], t.Couplers[i+1], t.Contents[i]
}

func (t Train[C]) F(x float64) float64 {
	if len(t.Contents) == 0 {
		return 0
	}
	return t.Contents[segmentIndex(t.Couplers, x)].F(x)
}

func (t Train[C]) Add(u Train[C]) Train[C] {
	return combine(t, u, func(a, b C) C { return a.Add(b) })
}

func (t Train[C]) Sub(u Train[C]) Train[C] {
	return combine(t, u, func(a, b C) C { return a.Sub(b) })
}

func (t Train[C]) Mul(u Train[C]) Train[C] {
	return combine(t, u, func(a, b C) C { return a.Mul(b) })
}

// Quo divides t by u segment by segment. Zeros of a denominator are not
// checked for and evaluate to ±Inf or NaN.
func Quo[C Content[C]](t, u Train[C]) Train[Rational] {
	return combine(t, u, func(a, b C) Rational { return a.Rational().Div(b.Rational()) })
}

func (t Train[C]) AddContent(c C) Train[C] {
	return t.each(func(a C) C { return a.Add(c) })
}

func (t Train[C]) SubContent(c C) Train[C] {
	return t.each(func(a C) C { return a.Sub(c) })
}

func (t Train[C]) MulContent(c C) Train[C] {
	return t.each(func(a C) C { return a.Mul(c) })
}

func (t Train[C]) Scale(k float64) Train[C] {
	return t.each(func(a C) C { return a.Scale(k) })
}

func (t Train[C]) Neg() Train[C] {
	return t.Scale(-1)
}

func (t Train[C]) Derivative() Train[C] {
	return t.each(func(a C) C { return a.Derivative() })
}

func (t Train[C]) DerivativeAt(x float64) float64 {
	if len(t.Contents) == 0 {
		return 0
	}
	return t.Contents[segmentIndex(t.Couplers, x)].Derivative().F(x)
}

// Compose composes every segment with g, keeping the couplers.
func (t Train[C]) Compose(g Polynomial) Train[C] {
	return t.each(func(a C) C { return a.Compose(g) })
}

// ComposeTrain aligns t and g on the union of their couplers and composes
// the contents active on each segment.
func (t Train[C]) ComposeTrain(g Train[Polynomial]) Train[C] {
	return combine(t, g, func(a C, b Polynomial) C { return a.Compose(b) })
}

// ComposeScaling returns x ↦ t(ax). The couplers move to c/a, and a negative
// a reverses the order of the segments. Segments stay closed below, so under a
// negative a each coupler takes the value of the segment to its right, which
// was the segment to its left before. It panics when a is 0.
func (t Train[C]) ComposeScaling(g Scaling) Train[C] {
	if g.Factor == 0 {
		panic("cannot compose a train with a zero scaling")
	}
	inv := g.Inverse()
	cs := make([]float64, len(t.Couplers))
	contents := make([]C, len(t.Contents))
	for i, c := range t.Couplers {
		cs[i] = inv.F(c)
	}
	for i, c := range t.Contents {
		contents[i] = c.ComposeScaling(g)
	}
	if g.Factor < 0 {
		slices.Reverse(cs)
		slices.Reverse(contents)
	}
	return Train[C]{Couplers: cs, Contents: contents}
}

// ComposeShifting returns x ↦ t(x+b), whose couplers are c-b.
func (t Train[C]) ComposeShifting(g Shifting) Train[C] {
	inv := g.Inverse()
	y := t.each(func(a C) C { return a.ComposeShifting(g) })
	for i, c := range y.Couplers {
		y.Couplers[i] = inv.F(c)
	}
	return y
}

// Restriction returns t on [lo,hi) and zero outside of it.
func (t Train[C]) Restriction(lo, hi float64) Train[C] {
	cs := Couplers([]float64{negInf, lo, hi, posInf}, t.Couplers)
	contents := make([]C, len(cs)-1)
	var zero C
	for i := range contents {
		if lo <= cs[i] && cs[i+1] <= hi {
			contents[i] = t.Contents[segmentIndex(t.Couplers, cs[i])]
		} else {
			contents[i] = zero.Zero()
		}
	}
	return Train[C]{Couplers: cs, Contents: contents}
}

// Railyard returns one car per segment of t.
func (t Train[C]) Railyard() Railyard[C] {
	cars := make([]Railcar[C], len(t.Contents))
	for i := range t.Contents {
		lo, hi, c := t.Segment(i)
		cars[i] = NewRailcar(lo, hi, c)
	}
	return Railyard[C]{Cars: cars}
}

// Rational converts every segment of t to a rational.
func (t Train[C]) Rational() Train[Rational] {
	contents := make([]Rational, len(t.Contents))
	for i, c := range t.Contents {
		contents[i] = c.Rational()
	}
	return Train[Rational]{Couplers: slices.Clone(t.Couplers), Contents: contents}
}

// squaredDifferences returns ∫(t-u)² over each segment of the union of the
// couplers of t and u that overlaps [lo,hi].
func (t Train[C]) squaredDifferences(u Train[C], lo, hi float64) []float64 {
	cs := Couplers(t.Couplers, u.Couplers)
	var sqs []float64
	for i := 0; i+1 < len(cs); i++ {
		a, b := math.Max(lo, cs[i]), math.Min(hi, cs[i+1])
		if !(a < b) {
			continue
		}
		f := t.Contents[segmentIndex(t.Couplers, cs[i])]
		g := u.Contents[segmentIndex(u.Couplers, cs[i])]
		sqs = append(sqs, f.SquaredDifference(g, a, b))
	}
	return sqs
}

// Distance is the root mean square difference between t and u over [lo,hi]:
//
//	sqrt(Σᵢ∫(t-u)²dx / (hi-lo))
//
// where the sum runs over the segments that overlap [lo,hi]. For polynomial
// trains it satisfies the triangle inequality.
func (t Train[C]) Distance(u Train[C], lo, hi float64) float64 {
	sum := 0.0
	for _, sq := range t.squaredDifferences(u, lo, hi) {
		sum += sq
	}
	return math.Sqrt(math.Max(0, sum) / (hi - lo))
}

// SegmentwiseDistance sums the root mean square difference of every segment
// that overlaps [lo,hi], each measured against the full width hi-lo.
// It can exceed the sum of the distances through a third train.
func (t Train[C]) SegmentwiseDistance(u Train[C], lo, hi float64) float64 {
	sum := 0.0
	for _, sq := range t.squaredDifferences(u, lo, hi) {
		sum += math.Sqrt(math.Max(0, sq) / (hi - lo))
	}
	return sum
}

func (t Train[C]) String() string {
	segments := make([]string, len(t.Contents))
	for i := range t.Contents {
		lo, hi, c := t.Segment(i)
		segments[i] = fmt.Sprintf("[%v, %v): %v", lo, hi, c)
	}
	return strings.Join(segments, "\n")
}

// TrainIntegral returns the integral of t over [lo,hi].
func TrainIntegral(t Train[Polynomial], lo, hi float64) float64 {
	sum := 0.0
	for i := range t.Contents {
		a, b, c := t.Segment(i)
		a, b = math.Max(lo, a), math.Min(hi, b)
		if a < b {
			sum += c.IntegralBetween(a, b)
		}
	}
	return sum
}

// IntegrateTrain returns the antiderivative of t that is 0 at the finite x=lo.
func IntegrateTrain(t Train[Polynomial], lo float64) Train[Polynomial] {
	return ToTrain(IntegrateRailyard(t.Railyard(), lo))
}

// Dot is the integral of the product of t and u over [lo,hi],
// treating them as vectors of a function space.
func Dot(t, u Train[Polynomial], lo, hi float64) float64 {
	return TrainIntegral(t.Mul(u), lo, hi)
}

// Length is the root of the dot product of t with itself.
func Length(t Train[Polynomial], lo, hi float64) float64 {
	return math.Sqrt(math.Max(0, Dot(t, t, lo, hi)))
}

// Similarity is the cosine of the angle between t and u,
// their dot product divided by both lengths.
func Similarity(t, u Train[Polynomial], lo, hi float64) float64 {
	return Dot(t, u, lo, hi) / (Length(t, lo, hi) * Length(u, lo, hi))
}

// TrainMaximum returns the x in [lo,hi] where t is greatest.
func TrainMaximum(t Train[Polynomial], lo, hi float64) (float64, error) {
	return trainExtreme(t, lo, hi, Polynomial.Maximum, func(a, b float64) bool { return a > b })
}

// TrainMinimum returns the x in [lo,hi] where t is least.
func TrainMinimum(t Train[Polynomial], lo, hi float64) (float64, error) {
	return trainExtreme(t, lo, hi, Polynomial.Minimum, func(a, b float64) bool { return a < b })
}

func trainExtreme(
	t Train[Polynomial],
	lo, hi float64,
	extreme func(p Polynomial, lo, hi float64) (float64, error),
	better func(a, b float64) bool,
) (float64, error) {
	if !(lo <= hi) {
		return 0, errors.Errorf("cannot search the empty interval [%v,%v]", lo, hi)
	}
	best, bestY := math.NaN(), math.NaN()
	for i := range t.Contents {
		a, b, c := t.Segment(i)
		a, b = math.Max(lo, a), math.Min(hi, b)
		if a > b || (a == b && a != hi) {
			continue
		}
		x, err := extreme(c, a, b)
		if err != nil {
			return 0, errors.Wrapf(err, "segment %d", i)
		}
		if y := c.F(x); math.IsNaN(best) || better(y, bestY) {
			best, bestY = x, y
		}
	}
	return best, nil
}
