package olsbench

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// CoefficientSummary describes the Monte Carlo distribution of one
// coefficient's estimates across replications: the tabular stand-in for a
// sampling-distribution histogram.
type CoefficientSummary struct {
	Index  int     // coefficient position, 0 = intercept
	True   float64 // the value used to generate the data
	Mean   float64
	StdDev float64
	P5     float64
	P50    float64
	P95    float64
}

// Summarize computes the distribution summary for coefficient i.
func Summarize(res *ReplicationResult, i int) CoefficientSummary {
	draws := res.Coeff(i)
	mean, std := stat.MeanStdDev(draws, nil)

	return CoefficientSummary{
		Index:  i,
		True:   res.Beta[i],
		Mean:   mean,
		StdDev: std,
		P5:     quantile(draws, 0.05),
		P50:    quantile(draws, 0.50),
		P95:    quantile(draws, 0.95),
	}
}

// SummarizeAll returns one summary per coefficient.
func SummarizeAll(res *ReplicationResult) []CoefficientSummary {
	out := make([]CoefficientSummary, len(res.Beta))
	for i := range out {
		out[i] = Summarize(res, i)
	}
	return out
}

// quantile returns the empirical q-quantile of samples (0 ≤ q ≤ 1) using
// linear interpolation between order statistics. The input is not modified.
func quantile(samples []float64, q float64) float64 {
	n := len(samples)
	if n == 0 {
		return math.NaN()
	}

	tmp := make([]float64, n)
	copy(tmp, samples)
	sort.Float64s(tmp)

	if q <= 0 {
		return tmp[0]
	}
	if q >= 1 {
		return tmp[n-1]
	}

	pos := q * float64(n-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return tmp[lower]
	}

	weight := pos - float64(lower)
	return tmp[lower]*(1-weight) + tmp[upper]*weight
}
