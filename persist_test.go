package analytic

import (
	"encoding/json"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theothertomelliott/acyclic"
)

func TestPolynomialJSON(t *testing.T) {
	p := NewPolynomial(-1, 2, 0.5, 1, 0, -3)
	bytes, err := json.Marshal(p)
	require.NoError(t, err)
	t.Logf("%s", bytes)

	var q Polynomial
	require.NoError(t, json.Unmarshal(bytes, &q))
	if diff := pretty.Compare(p, q); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}

	// the zero value has no coefficients but still restores as 0
	bytes, err = json.Marshal(Polynomial{})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(bytes, &q))
	assert.Equal(t, 0.0, q.F(3))
}

func TestPolynomialJSONErrors(t *testing.T) {
	var p Polynomial
	assert.Error(t, json.Unmarshal([]byte(`{"lo":2,"hi":1,"k":[]}`), &p))
	assert.Error(t, json.Unmarshal([]byte(`{"lo":0,"hi":2,"k":[1]}`), &p))
	assert.Error(t, json.Unmarshal([]byte(`{"lo":"x"}`), &p))
}

func TestRationalJSON(t *testing.T) {
	r := NewRational(NewPolynomial(0, 1, 1, 1), Monomial(2, 3))
	bytes, err := json.Marshal(r)
	require.NoError(t, err)

	var s Rational
	require.NoError(t, json.Unmarshal(bytes, &s))
	if diff := pretty.Compare(r, s); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestRailyardJSON(t *testing.T) {
	y := NewRailyard(
		NewRailcar(0, 2, NewPolynomial(0, 1, 1, 1)),
		NewRailcar(negInf, 1, Constant(3)),
		NewRailcar(-1, posInf, Monomial(2, 1)),
	)
	bytes, err := json.Marshal(y)
	require.NoError(t, err)
	t.Logf("%s", bytes)

	var raw struct {
		Cars []map[string]json.RawMessage `json:"cars"`
	}
	require.NoError(t, json.Unmarshal(bytes, &raw))
	require.Len(t, raw.Cars, 3)
	assert.NotContains(t, raw.Cars[1], "lo")
	assert.Contains(t, raw.Cars[1], "hi")
	assert.NotContains(t, raw.Cars[2], "hi")

	var z Railyard[Polynomial]
	require.NoError(t, json.Unmarshal(bytes, &z))
	require.NoError(t, acyclic.Check(z))
	if diff := pretty.Compare(y, z); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
	for _, x := range []float64{-5, 0.5, 1.5, 10} {
		assert.Equal(t, y.F(x), z.F(x))
	}
}

func TestRailcarJSONErrors(t *testing.T) {
	var car Railcar[Polynomial]
	assert.Error(t, json.Unmarshal([]byte(`{"lo":2,"hi":1,"content":{"lo":0,"hi":0,"k":[1]}}`), &car))
	assert.Error(t, json.Unmarshal([]byte(`{"lo":1,"hi":1,"content":{"lo":0,"hi":0,"k":[1]}}`), &car))
	require.NoError(t, json.Unmarshal([]byte(`{"content":{"lo":0,"hi":0,"k":[1]}}`), &car))
	assert.Equal(t, 1.0, car.F(-1e300))
}

func TestTrainJSON(t *testing.T) {
	tr := NewTrain(
		[]float64{negInf, 0, 1.5, posInf},
		[]Rational{Constant(1).Rational(), NewRational(Monomial(1, 1), NewPolynomial(0, 1, 1, 1)), Constant(-2).Rational()},
	)
	bytes, err := json.Marshal(tr)
	require.NoError(t, err)
	t.Logf("%s", bytes)

	var u Train[Rational]
	require.NoError(t, json.Unmarshal(bytes, &u))
	require.NoError(t, acyclic.Check(u))
	if diff := pretty.Compare(tr, u); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}

	bytes, err = json.Marshal(TrainOf(Constant(4)))
	require.NoError(t, err)
	var one Train[Polynomial]
	require.NoError(t, json.Unmarshal(bytes, &one))
	assert.Equal(t, 1, one.Len())
	assert.Equal(t, 4.0, one.F(100))
}

func TestTrainJSONErrors(t *testing.T) {
	c := `{"lo":0,"hi":0,"k":[1]}`
	var tr Train[Polynomial]
	assert.Error(t, json.Unmarshal([]byte(`{"couplers":[1],"contents":[`+c+`]}`), &tr))
	assert.Error(t, json.Unmarshal([]byte(`{"couplers":[2,1],"contents":[`+c+`,`+c+`,`+c+`]}`), &tr))
	assert.Error(t, json.Unmarshal([]byte(`{"couplers":[1,1],"contents":[`+c+`,`+c+`,`+c+`]}`), &tr))
	assert.NoError(t, json.Unmarshal([]byte(`{"couplers":[1,2],"contents":[`+c+`,`+c+`,`+c+`]}`), &tr))
}

func TestTableJSON(t *testing.T) {
	tab := NewTable()
	tab.SetOrder(1)
	tab.AddPoint(2, 4)
	tab.AddPoint(0, 0)
	tab.AddPoint(1, 1)

	bytes, err := json.Marshal(tab)
	require.NoError(t, err)
	t.Logf("%s", bytes)

	restored := NewTable()
	require.NoError(t, json.Unmarshal(bytes, restored))
	require.NoError(t, acyclic.Check(restored))
	if diff := pretty.Compare(tab.Dump(), restored.Dump()); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, restored.Order())
	assert.InDelta(t, 2.5, restored.F(1.5), 1e-12)
}

func TestTableFromDump(t *testing.T) {
	tab := NewTable()
	require.NoError(t, tab.FromDump(&TableDump{Order: 2, Points: []Point{{3, 9}, {1, 1}, {2, 4}}}))
	assert.Equal(t, []Point{{1, 1}, {2, 4}, {3, 9}}, tab.P)

	assert.Error(t, tab.FromDump(&TableDump{Order: 4}))
	assert.Error(t, tab.FromDump(&TableDump{Order: 1, Points: []Point{{1, 1}, {1, 2}}}))
}
