package analytic

import (
	"math"
	"slices"
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// Couplers returns the sorted union of the given boundaries with duplicates removed.
func Couplers(bounds ...[]float64) []float64 {
	n := 0
	for _, b := range bounds {
		n += len(b)
	}
	cs := make([]float64, 0, n)
	for _, b := range bounds {
		cs = append(cs, b...)
	}
	slices.Sort(cs)
	return slices.Compact(cs)
}

// segmentIndex returns the index of the half-open segment [cs[i],cs[i+1])
// that holds x. Values outside the couplers fall in the first or last segment.
func segmentIndex(cs []float64, x float64) int {
	i, found := slices.BinarySearch(cs, x)
	if !found {
		i--
	}
	return min(max(i, 0), len(cs)-2)
}

// overlaps reports whether [lo1,hi1) and [lo2,hi2) share any points.
func overlaps(lo1, hi1, lo2, hi2 float64) bool {
	return math.Max(lo1, lo2) < math.Min(hi1, hi2)
}

// validCouplers panics unless cs is a strictly increasing cover of the real line.
func validCouplers(cs []float64, contents int) {
	if len(cs) != contents+1 {
		panic("a train needs exactly one more coupler than contents")
	}
	if cs[0] != negInf || cs[len(cs)-1] != posInf {
		panic("train couplers must start at -Inf and end at +Inf")
	}
	for i := 1; i < len(cs); i++ {
		if !(cs[i-1] < cs[i]) {
			panic("train couplers must be strictly increasing")
		}
	}
}
