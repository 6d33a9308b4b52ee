package analytic

import (
	"encoding/json"
	"math"
	"slices"

	"github.com/pkg/errors"
)

// PolynomialDump is a serializable representation of a Polynomial.
type PolynomialDump struct {
	Lo int       `json:"lo"`
	Hi int       `json:"hi"`
	K  []float64 `json:"k"`
}

// Dump generates a serializable dump for a polynomial.
func (p Polynomial) Dump() *PolynomialDump {
	return &PolynomialDump{Lo: p.Lo, Hi: p.Hi, K: p.widen(p.Lo, p.Hi).K}
}

// FromDump restores a polynomial from a dump.
func (p *Polynomial) FromDump(d *PolynomialDump) error {
	if d.Lo > d.Hi {
		return errors.Errorf("polynomial exponents must satisfy lo<=hi, got [%d,%d]", d.Lo, d.Hi)
	}
	if len(d.K) != d.Hi-d.Lo+1 {
		return errors.Errorf("polynomial over [%d,%d] needs %d coefficients, got %d", d.Lo, d.Hi, d.Hi-d.Lo+1, len(d.K))
	}
	*p = NewPolynomial(d.Lo, d.Hi, d.K...)
	return nil
}

func (p Polynomial) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Dump())
}

func (p *Polynomial) UnmarshalJSON(bytes []byte) error {
	var dump PolynomialDump
	if err := json.Unmarshal(bytes, &dump); err != nil {
		return errors.Wrap(err, "polynomial")
	}
	return p.FromDump(&dump)
}

// RationalDump is a serializable representation of a Rational.
type RationalDump struct {
	P Polynomial `json:"p"`
	Q Polynomial `json:"q"`
}

func (r Rational) Dump() *RationalDump {
	return &RationalDump{P: r.P, Q: r.Q}
}

func (r *Rational) FromDump(d *RationalDump) {
	*r = NewRational(d.P, d.Q)
}

func (r Rational) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Dump())
}

func (r *Rational) UnmarshalJSON(bytes []byte) error {
	var dump RationalDump
	if err := json.Unmarshal(bytes, &dump); err != nil {
		return errors.Wrap(err, "rational")
	}
	r.FromDump(&dump)
	return nil
}

// RailcarDump is a serializable representation of a Railcar.
// JSON has no infinities, so an unbounded end is left out.
type RailcarDump[C Content[C]] struct {
	Lo      *float64 `json:"lo,omitempty"`
	Hi      *float64 `json:"hi,omitempty"`
	Content C        `json:"content"`
}

func bound(x float64) *float64 {
	if math.IsInf(x, 0) {
		return nil
	}
	return &x
}

func unbound(x *float64, inf float64) float64 {
	if x == nil {
		return inf
	}
	return *x
}

func (r Railcar[C]) Dump() *RailcarDump[C] {
	return &RailcarDump[C]{Lo: bound(r.Lo), Hi: bound(r.Hi), Content: r.Content}
}

func (r *Railcar[C]) FromDump(d *RailcarDump[C]) error {
	lo, hi := unbound(d.Lo, negInf), unbound(d.Hi, posInf)
	if !(lo < hi) {
		return errors.Errorf("railcar bounds must satisfy lo<hi, got [%v,%v)", lo, hi)
	}
	*r = NewRailcar(lo, hi, d.Content)
	return nil
}

func (r Railcar[C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Dump())
}

func (r *Railcar[C]) UnmarshalJSON(bytes []byte) error {
	var dump RailcarDump[C]
	if err := json.Unmarshal(bytes, &dump); err != nil {
		return errors.Wrap(err, "railcar")
	}
	return r.FromDump(&dump)
}

// RailyardDump is a serializable representation of a Railyard.
type RailyardDump[C Content[C]] struct {
	Cars []Railcar[C] `json:"cars"`
}

func (y Railyard[C]) Dump() *RailyardDump[C] {
	return &RailyardDump[C]{Cars: slices.Clone(y.Cars)}
}

func (y *Railyard[C]) FromDump(d *RailyardDump[C]) {
	*y = NewRailyard(d.Cars...)
}

func (y Railyard[C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(y.Dump())
}

func (y *Railyard[C]) UnmarshalJSON(bytes []byte) error {
	var dump RailyardDump[C]
	if err := json.Unmarshal(bytes, &dump); err != nil {
		return errors.Wrap(err, "railyard")
	}
	y.FromDump(&dump)
	return nil
}

// TrainDump is a serializable representation of a Train.
// Only the finite couplers between segments are kept.
type TrainDump[C Content[C]] struct {
	Couplers []float64 `json:"couplers"`
	Contents []C       `json:"contents"`
}

func (t Train[C]) Dump() *TrainDump[C] {
	d := &TrainDump[C]{Couplers: []float64{}, Contents: slices.Clone(t.Contents)}
	if len(t.Couplers) > 2 {
		d.Couplers = slices.Clone(t.Couplers[1 : len(t.Couplers)-1])
	}
	return d
}

// FromDump restores a train from a dump, which may come from an untrusted
// source and so is checked before use.
func (t *Train[C]) FromDump(d *TrainDump[C]) error {
	if len(d.Contents) != len(d.Couplers)+1 {
		return errors.Errorf("a train with %d couplers needs %d contents, got %d", len(d.Couplers), len(d.Couplers)+1, len(d.Contents))
	}
	cs := make([]float64, 0, len(d.Couplers)+2)
	cs = append(cs, negInf)
	cs = append(cs, d.Couplers...)
	cs = append(cs, posInf)
	for i := 1; i < len(cs); i++ {
		if !(cs[i-1] < cs[i]) {
			return errors.Errorf("train couplers must be strictly increasing, got %v then %v", cs[i-1], cs[i])
		}
	}
	*t = NewTrain(cs, d.Contents)
	return nil
}

func (t Train[C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Dump())
}

func (t *Train[C]) UnmarshalJSON(bytes []byte) error {
	var dump TrainDump[C]
	if err := json.Unmarshal(bytes, &dump); err != nil {
		return errors.Wrap(err, "train")
	}
	return t.FromDump(&dump)
}

// TableDump is a serializable representation of a Table.
type TableDump struct {
	Order  int     `json:"order"`
	Points []Point `json:"points"`
}

// FromDump restores a table from a dump.
// It ensures the points are sorted by X and that no X repeats.
func (t *Table) FromDump(d *TableDump) error {
	if d.Order < 0 || d.Order > 3 {
		return errors.Errorf("unhandled spline order %d", d.Order)
	}
	t.order = d.Order
	t.P = slices.Clone(d.Points)

	// Ensure points are sorted, as they may come from an untrusted source.
	slices.SortFunc(t.P, comparePoints)
	for i := 1; i < len(t.P); i++ {
		if t.P[i-1].X == t.P[i].X {
			return errors.Errorf("point at x=%v is tabulated twice", t.P[i].X)
		}
	}
	return nil
}

// Dump generates a serializable dump for a table.
func (t *Table) Dump() *TableDump {
	return &TableDump{
		Order:  t.order,
		Points: slices.Clone(t.P),
	}
}

func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Dump())
}

func (t *Table) UnmarshalJSON(bytes []byte) error {
	var dump TableDump
	if err := json.Unmarshal(bytes, &dump); err != nil {
		return errors.Wrap(err, "table")
	}
	return t.FromDump(&dump)
}
