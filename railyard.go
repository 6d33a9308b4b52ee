package analytic

import (
	"math"
	"strings"
)

// Railyard is a sum of railcars that may overlap. It evaluates to the sum of
// every car that holds x, and 0 where no car does. No merging takes place
// until the railyard is converted to a Train.
type Railyard[C Content[C]] struct {
	Cars []Railcar[C]
}

func NewRailyard[C Content[C]](cars ...Railcar[C]) Railyard[C] {
	return Railyard[C]{Cars: append([]Railcar[C](nil), cars...)}
}

// Clamped returns a railyard equal to f on [lo,hi) and to the value of f
// at the nearest end outside of it.
func Clamped(f Polynomial, lo, hi float64) Railyard[Polynomial] {
	return NewRailyard(
		NewRailcar(negInf, lo, Constant(f.F(lo))),
		NewRailcar(lo, hi, f),
		NewRailcar(hi, posInf, Constant(f.F(hi))),
	)
}

func (y Railyard[C]) F(x float64) float64 {
	sum := 0.0
	for _, car := range y.Cars {
		sum += car.F(x)
	}
	return sum
}

// Couplers returns the sorted bounds of every car.
func (y Railyard[C]) Couplers() []float64 {
	bounds := make([]float64, 0, 2*len(y.Cars))
	for _, car := range y.Cars {
		bounds = append(bounds, car.Lo, car.Hi)
	}
	return Couplers(bounds)
}

// local returns the sum of the contents of every car that overlaps [lo,hi),
// and whether there were any.
func (y Railyard[C]) local(lo, hi float64) (sum C, found bool) {
	for _, car := range y.Cars {
		if !overlaps(car.Lo, car.Hi, lo, hi) {
			continue
		}
		if !found {
			sum, found = car.Content, true
			continue
		}
		sum = sum.Add(car.Content)
	}
	return sum, found
}

func (y Railyard[C]) each(f func(Railcar[C]) Railcar[C]) Railyard[C] {
	cars := make([]Railcar[C], len(y.Cars))
	for i, car := range y.Cars {
		cars[i] = f(car)
	}
	return Railyard[C]{Cars: cars}
}

func (y Railyard[C]) Add(z Railyard[C]) Railyard[C] {
	cars := make([]Railcar[C], 0, len(y.Cars)+len(z.Cars))
	cars = append(cars, y.Cars...)
	return Railyard[C]{Cars: append(cars, z.Cars...)}
}

func (y Railyard[C]) Sub(z Railyard[C]) Railyard[C] {
	return y.Add(z.Neg())
}

// AddCar returns y with one more car.
func (y Railyard[C]) AddCar(car Railcar[C]) Railyard[C] {
	return y.Add(NewRailyard(car))
}

// AddContent adds c everywhere, as a car over the whole real line.
func (y Railyard[C]) AddContent(c C) Railyard[C] {
	return y.AddCar(NewRailcar(negInf, posInf, c))
}

func (y Railyard[C]) SubContent(c C) Railyard[C] {
	return y.AddContent(c.Neg())
}

// Mul multiplies every car of y with every car of z,
// dropping the pairs whose bounds do not intersect.
func (y Railyard[C]) Mul(z Railyard[C]) Railyard[C] {
	var cars []Railcar[C]
	for _, a := range y.Cars {
		for _, b := range z.Cars {
			if car, ok := a.Mul(b); ok {
				cars = append(cars, car)
			}
		}
	}
	return Railyard[C]{Cars: cars}
}

// MulContent multiplies the content of every car by c.
func (y Railyard[C]) MulContent(c C) Railyard[C] {
	return y.each(func(car Railcar[C]) Railcar[C] { return car.MulContent(c) })
}

func (y Railyard[C]) Scale(k float64) Railyard[C] {
	return y.each(func(car Railcar[C]) Railcar[C] { return car.Scale(k) })
}

func (y Railyard[C]) Neg() Railyard[C] {
	return y.Scale(-1)
}

func (y Railyard[C]) Derivative() Railyard[C] {
	return y.each(func(car Railcar[C]) Railcar[C] { return car.Derivative() })
}

func (y Railyard[C]) DerivativeAt(x float64) float64 {
	sum := 0.0
	for _, car := range y.Cars {
		sum += car.DerivativeAt(x)
	}
	return sum
}

func (y Railyard[C]) ComposeScaling(g Scaling) Railyard[C] {
	return y.each(func(car Railcar[C]) Railcar[C] { return car.ComposeScaling(g) })
}

func (y Railyard[C]) ComposeShifting(g Shifting) Railyard[C] {
	return y.each(func(car Railcar[C]) Railcar[C] { return car.ComposeShifting(g) })
}

// Compose returns y∘g. Both railyards are aligned on the union of their
// couplers first. Within each pair of consecutive couplers the cars of y and
// of g that overlap it are summed, and the sums are composed into one car.
func (y Railyard[C]) Compose(g Railyard[Polynomial]) Railyard[C] {
	cs := Couplers(y.Couplers(), g.Couplers())
	var cars []Railcar[C]
	for i := 0; i+1 < len(cs); i++ {
		lo, hi := cs[i], cs[i+1]
		f, ok := y.local(lo, hi)
		if !ok {
			continue
		}
		h, ok := g.local(lo, hi)
		if !ok {
			h = Constant(0)
		}
		cars = append(cars, NewRailcar(lo, hi, f.Compose(h)))
	}
	return Railyard[C]{Cars: cars}
}

// Restriction returns the cars of y cut to [lo,hi), dropping cars that fall outside.
func (y Railyard[C]) Restriction(lo, hi float64) Railyard[C] {
	var cars []Railcar[C]
	for _, car := range y.Cars {
		a, b := math.Max(lo, car.Lo), math.Min(hi, car.Hi)
		if a < b {
			cars = append(cars, Railcar[C]{Lo: a, Hi: b, Content: car.Content})
		}
	}
	return Railyard[C]{Cars: cars}
}

// Rational converts the content of every car to a rational.
func (y Railyard[C]) Rational() Railyard[Rational] {
	cars := make([]Railcar[Rational], len(y.Cars))
	for i, car := range y.Cars {
		cars[i] = car.Rational()
	}
	return Railyard[Rational]{Cars: cars}
}

// Train merges the cars of y into a train.
func (y Railyard[C]) Train() Train[C] {
	return ToTrain(y)
}

// Distance is the root mean square difference between y and z over [lo,hi].
func (y Railyard[C]) Distance(z Railyard[C], lo, hi float64) float64 {
	return ToTrain(y).Distance(ToTrain(z), lo, hi)
}

func (y Railyard[C]) String() string {
	cars := make([]string, len(y.Cars))
	for i, car := range y.Cars {
		cars[i] = car.String()
	}
	return strings.Join(cars, "\n")
}

// RailyardIntegral returns the integral of y over [lo,hi].
func RailyardIntegral(y Railyard[Polynomial], lo, hi float64) float64 {
	sum := 0.0
	for _, car := range y.Cars {
		sum += RailcarIntegral(car, lo, hi)
	}
	return sum
}

// IntegrateRailyard returns the antiderivative of y that is 0 at x=lo, which must be finite.
// Each car contributes its own integral inside its bounds and the constant
// total it accumulated once x has passed it.
func IntegrateRailyard(y Railyard[Polynomial], lo float64) Railyard[Polynomial] {
	var cars []Railcar[Polynomial]
	for _, car := range y.Cars {
		start := math.Max(lo, car.Lo)
		if !(start < car.Hi) {
			continue
		}
		I := car.Content.Integral()
		cars = append(cars, NewRailcar(start, car.Hi, I.SubScalar(I.F(start))))
		if !math.IsInf(car.Hi, 1) {
			cars = append(cars, NewRailcar(car.Hi, posInf, Constant(car.Content.IntegralBetween(start, car.Hi))))
		}
	}
	return Railyard[Polynomial]{Cars: cars}
}
