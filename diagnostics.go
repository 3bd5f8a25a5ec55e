package olsbench

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// EmpiricalMean returns the mean of β̂ across replications, per coefficient.
// By the Law of Large Numbers it converges to the true β as the replication
// count grows.
func EmpiricalMean(res *ReplicationResult) []float64 {
	means := make([]float64, len(res.Beta))
	for i := range means {
		means[i] = stat.Mean(res.Coeff(i), nil)
	}
	return means
}

// EmpiricalBias returns EmpiricalMean minus the true β, per coefficient.
func EmpiricalBias(res *ReplicationResult) []float64 {
	bias := EmpiricalMean(res)
	for i := range bias {
		bias[i] -= res.Beta[i]
	}
	return bias
}

// Coverage returns, per coefficient, the fraction of replications whose Wald
// interval β̂ ± z_{1−α/2}·se covers the true value. For a well-calibrated
// estimator it approaches 1−α.
func Coverage(res *ReplicationResult, alpha float64) []float64 {
	z := distuv.UnitNormal.Quantile(1 - alpha/2)
	cover := make([]float64, len(res.Beta))
	for i := range cover {
		hits := 0
		for _, fm := range res.Fits {
			lo := fm.Coeff[i] - z*fm.StdErr[i]
			hi := fm.Coeff[i] + z*fm.StdErr[i]
			if lo <= res.Beta[i] && res.Beta[i] <= hi {
				hits++
			}
		}
		cover[i] = float64(hits) / float64(len(res.Fits))
	}
	return cover
}

// RejectionRate returns, per coefficient, the fraction of replications in
// which the two-sided z-test |β̂_i / se(β̂_i)| > z_{1−α/2} rejects
// H0: β_i = 0. Under a true null it approaches α; far from the null it
// approaches 1.
func RejectionRate(res *ReplicationResult, alpha float64) []float64 {
	z := distuv.UnitNormal.Quantile(1 - alpha/2)
	reject := make([]float64, len(res.Beta))
	for i := range reject {
		hits := 0
		for _, fm := range res.Fits {
			if fm.StdErr[i] > 0 && math.Abs(fm.Coeff[i]/fm.StdErr[i]) > z {
				hits++
			}
		}
		reject[i] = float64(hits) / float64(len(res.Fits))
	}
	return reject
}

// ScaledDeviationCovariance returns the sample covariance across
// replications of √n(β̂ − β). By the Central Limit Theorem it approaches
// σ²·E[xx']⁻¹ as the sample size grows.
func ScaledDeviationCovariance(res *ReplicationResult) *mat.SymDense {
	k := len(res.Beta)
	rn := math.Sqrt(float64(res.SampleSize))

	dev := mat.NewDense(len(res.Fits), k, nil)
	for r, fm := range res.Fits {
		for i := 0; i < k; i++ {
			dev.Set(r, i, rn*(fm.Coeff[i]-res.Beta[i]))
		}
	}

	cov := mat.NewSymDense(k, nil)
	stat.CovarianceMatrix(cov, dev, nil)
	return cov
}
