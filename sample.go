package olsbench

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sample is one independently drawn dataset: the design matrix X (n×k, with
// a leading intercept column of ones) and the response vector Y.
type Sample struct {
	X *mat.Dense
	Y *mat.VecDense
}

// Dims returns the number of observations n and coefficients k (intercept
// included).
func (s *Sample) Dims() (n, k int) {
	return s.X.Dims()
}

// DrawSample generates n observations from fixed marginals. For each
// observation it draws one value per regressor generator (in column order),
// then one noise value u, and sets y = x'β + u with the implicit leading 1
// for the intercept. The draw order is part of the reproducibility contract.
//
// beta must have len(regressors)+1 entries, intercept first.
func DrawSample(n int, beta []float64, regressors []Generator, noise Generator) (*Sample, error) {
	k := len(regressors) + 1
	if len(beta) != k {
		return nil, fmt.Errorf("olsbench: beta has %d coefficients, want %d (intercept + %d regressors)",
			len(beta), k, len(regressors))
	}
	if n < 1 {
		return nil, fmt.Errorf("olsbench: sample size %d, want at least 1", n)
	}

	X := mat.NewDense(n, k, nil)
	Y := mat.NewVecDense(n, nil)

	for i := 0; i < n; i++ {
		X.Set(i, 0, 1)
		y := beta[0]
		for j, g := range regressors {
			x := g.Rand()
			X.Set(i, j+1, x)
			y += beta[j+1] * x
		}
		Y.SetVec(i, y+noise.Rand())
	}

	return &Sample{X: X, Y: Y}, nil
}
