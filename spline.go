package analytic

import (
	"cmp"
	"fmt"
	"slices"
)

// Point is a tabulated value Y at X.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Table is a tabulated function that interpolates its points with a spline
// of order 0 (steps), 1 (lines), 2 (parabolas) or 3 (natural cubic).
// Outside its points it is clamped to the nearest tabulated value.
type Table struct {
	order int
	P     []Point
}

// NewTable creates an empty table interpolated with a natural cubic spline.
func NewTable() *Table {
	return &Table{order: 3}
}

// Spline returns the train interpolating points with a spline of the given order.
func Spline(points []Point, order int) Train[Polynomial] {
	t := NewTable()
	t.SetOrder(order)
	for _, p := range points {
		t.AddPoint(p.X, p.Y)
	}
	return t.Train()
}

func (t *Table) SetOrder(order int) {
	if order < 0 || order > 3 {
		panic(fmt.Sprintf("unhandled spline order %d", order))
	}
	t.order = order
}

func (t *Table) Order() int {
	return t.order
}

func (t *Table) Len() int {
	return len(t.P)
}

func comparePoints(a, b Point) int {
	return cmp.Compare(a.X, b.X)
}

// AddPoint inserts a point, keeping the points sorted by X.
// A point at an X that is already tabulated is averaged with it.
// It returns the value stored at X.
func (t *Table) AddPoint(x, y float64) float64 {
	i, found := slices.BinarySearchFunc(t.P, Point{X: x}, comparePoints)
	if found {
		t.P[i].Y = (t.P[i].Y + y) / 2
		return t.P[i].Y
	}
	t.P = slices.Insert(t.P, i, Point{X: x, Y: y})
	return y
}

// Merge adds every point of m.
func (t *Table) Merge(m *Table) {
	for _, p := range m.P {
		t.AddPoint(p.X, p.Y)
	}
}

// Bounds returns the smallest and largest tabulated X.
func (t *Table) Bounds() (lo, hi float64) {
	if len(t.P) == 0 {
		return 0, 0
	}
	return t.P[0].X, t.P[len(t.P)-1].X
}

func (t *Table) F(x float64) float64 {
	return t.Train().F(x)
}

// Integrate returns the integral of the spline between the first and last points.
func (t *Table) Integrate() float64 {
	lo, hi := t.Bounds()
	return TrainIntegral(t.Train(), lo, hi)
}

// coefficients returns b, c and d for every point, so that on
// [X_i,X_i+1) the spline is y_i + r(b_i + r(c_i + r·d_i)) with r = x-X_i.
func (t *Table) coefficients() (b, c, d []float64) {
	n := len(t.P)
	b, c, d = make([]float64, n), make([]float64, n), make([]float64, n)
	j := n - 1
	if t.order == 0 || j < 1 {
		return b, c, d
	}
	h := make([]float64, j)
	for i := 0; i < j; i++ {
		h[i] = t.P[i+1].X - t.P[i].X
	}
	switch t.order {
	case 1:
		for i := 0; i < j; i++ {
			b[i] = (t.P[i+1].Y - t.P[i].Y) / h[i]
		}
		return b, c, d
	case 2:
		for i := 0; i <= j-2; i++ {
			x1 := t.P[i+1].X - t.P[i].X
			x2 := t.P[i+2].X - t.P[i].X
			y1 := t.P[i+1].Y - t.P[i].Y
			y2 := t.P[i+2].Y - t.P[i].Y
			det := 1 / (x1 * x2 * (x2 - x1))
			b[i] = (y1*x2*x2 - y2*x1*x1) * det
			c[i] = (y2*x1 - y1*x2) * det
		}
		b[j-1] = (t.P[j].Y - t.P[j-1].Y) / h[j-1]
		c[j-1] = 0
		return b, c, d
	}
	alpha := make([]float64, n)
	l := make([]float64, n)
	mu := make([]float64, n)
	z := make([]float64, n)
	for i := 1; i <= j-1; i++ {
		alpha[i] = 3/h[i]*(t.P[i+1].Y-t.P[i].Y) - 3/h[i-1]*(t.P[i].Y-t.P[i-1].Y)
	}
	l[0] = 1
	for i := 1; i <= j-1; i++ {
		l[i] = 2*(t.P[i+1].X-t.P[i-1].X) - h[i-1]*mu[i-1]
		mu[i] = h[i] / l[i]
		z[i] = (alpha[i] - h[i-1]*z[i-1]) / l[i]
	}
	for i := j - 1; i >= 0; i-- {
		c[i] = z[i] - mu[i]*c[i+1]
		b[i] = (t.P[i+1].Y-t.P[i].Y)/h[i] - h[i]*(c[i+1]+2*c[i])/3
		d[i] = (c[i+1] - c[i]) / 3 / h[i]
	}
	return b, c, d
}

// Train returns the spline as a train with one segment between each pair of
// consecutive points, plus a constant segment at either end.
func (t *Table) Train() Train[Polynomial] {
	n := len(t.P)
	if n == 0 {
		return TrainOf(Constant(0))
	}
	b, c, d := t.coefficients()
	couplers := make([]float64, 0, n+2)
	contents := make([]Polynomial, 0, n+1)
	couplers = append(couplers, negInf)
	contents = append(contents, Constant(t.P[0].Y))
	for i := 0; i < n-1; i++ {
		local := NewPolynomial(0, 3, t.P[i].Y, b[i], c[i], d[i])
		couplers = append(couplers, t.P[i].X)
		contents = append(contents, local.ComposeShifting(Shifting{Offset: -t.P[i].X}))
	}
	couplers = append(couplers, t.P[n-1].X, posInf)
	contents = append(contents, Constant(t.P[n-1].Y))
	return NewTrain(couplers, contents)
}

func (t *Table) String() string {
	s := "\nTabulated function:\n"
	s = fmt.Sprintf("%s\torder: %v\n", s, t.order)
	s = fmt.Sprintf("%s\tpoints: %v\n", s, t.P)
	return s
}
