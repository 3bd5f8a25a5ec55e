package olsbench

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingularDesign reports a design matrix whose normal equations cannot be
// solved: perfectly collinear regressors, or fewer observations than
// coefficients. Match it with errors.Is.
var ErrSingularDesign = errors.New("singular design matrix")

// SingularDesignError carries the dimensions of the offending design matrix.
type SingularDesignError struct {
	N int // observations
	K int // coefficients, intercept included
}

func (e *SingularDesignError) Error() string {
	return fmt.Sprintf("olsbench: singular design matrix (%d observations, %d coefficients)", e.N, e.K)
}

func (e *SingularDesignError) Unwrap() error { return ErrSingularDesign }

// FittedModel holds the OLS estimates from one Sample. Created once per
// Sample, never mutated.
type FittedModel struct {
	Coeff  []float64 // β̂, intercept first
	StdErr []float64 // homoskedastic standard errors √(s²·(X'X)⁻¹ᵢᵢ)
	Sigma2 float64   // residual variance estimate s² = û'û / (n−k)
	DF     int       // residual degrees of freedom n−k
}

// Fit estimates β̂ = (X'X)⁻¹X'Y for one sample.
//
// The normal equations are solved by a Cholesky factorization of X'X rather
// than an explicit inverse; the same factorization yields the coefficient
// covariance s²(X'X)⁻¹ whose diagonal gives the standard errors. Standard
// errors assume homoskedastic noise, matching the constant-variance
// data-generating processes this package simulates.
//
// Returns a SingularDesignError when n < k or the factorization fails;
// degenerate designs never produce NaN estimates.
func Fit(s *Sample) (*FittedModel, error) {
	n, k := s.Dims()
	if n < k {
		return nil, &SingularDesignError{N: n, K: k}
	}

	var xtx mat.SymDense
	xtx.SymOuterK(1, s.X.T())

	var chol mat.Cholesky
	if !chol.Factorize(&xtx) {
		return nil, &SingularDesignError{N: n, K: k}
	}

	var xty mat.VecDense
	xty.MulVec(s.X.T(), s.Y)

	var beta mat.VecDense
	if err := chol.SolveVecTo(&beta, &xty); err != nil {
		return nil, &SingularDesignError{N: n, K: k}
	}

	var fitted mat.VecDense
	fitted.MulVec(s.X, &beta)
	var resid mat.VecDense
	resid.SubVec(s.Y, &fitted)

	// At n == k the fit is exact and the residuals vanish identically;
	// define s² = 0 there instead of dividing zero by zero.
	df := n - k
	sigma2 := 0.0
	if df > 0 {
		sigma2 = mat.Dot(&resid, &resid) / float64(df)
	}

	var xtxInv mat.SymDense
	if err := chol.InverseTo(&xtxInv); err != nil {
		return nil, &SingularDesignError{N: n, K: k}
	}

	coeff := make([]float64, k)
	se := make([]float64, k)
	for i := 0; i < k; i++ {
		coeff[i] = beta.AtVec(i)
		se[i] = math.Sqrt(sigma2 * xtxInv.At(i, i))
	}

	return &FittedModel{Coeff: coeff, StdErr: se, Sigma2: sigma2, DF: df}, nil
}
