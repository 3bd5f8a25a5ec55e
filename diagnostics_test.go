package olsbench

import (
	"math"
	"testing"
)

// TestEmpiricalMean_LawOfLargeNumbers: the mean of β̂ across many
// replications converges to the true β.
func TestEmpiricalMean_LawOfLargeNumbers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleSize = 40
	cfg.Replications = 4000
	cfg.Beta = []float64{1, 2}
	cfg.Regressors = []Distribution{Normal(0, 1)}
	cfg.Noise = Uniform(-1, 1)
	cfg.Seed = 101
	cfg.Workers = 4

	res, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	acfg := DefaultAssertionConfig()
	acfg.BiasTolerance = 0.02
	AssertUnbiased(t, res, acfg)

	PrintDiagnostics(t, res, 0.05)
}

// TestCoverage_WaldIntervals: 95% intervals cover the truth at close to
// their nominal rate.
func TestCoverage_WaldIntervals(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleSize = 100
	cfg.Replications = 2000
	cfg.Beta = []float64{1, 2}
	cfg.Regressors = []Distribution{Normal(0, 1)}
	cfg.Noise = Normal(0, 1)
	cfg.Seed = 2024
	cfg.Workers = 4

	res, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	acfg := DefaultAssertionConfig()
	acfg.CoverageTolerance = 0.03
	AssertCoverage(t, res, acfg)

	for i, c := range Coverage(res, 0.05) {
		t.Logf("coefficient %d: coverage %.4f (nominal 0.95)", i, c)
	}
}

// TestRejectionRates: the z-test rejects H0: β_i = 0 almost always when the
// true coefficient is far from zero, and near rate α when it is zero.
func TestRejectionRates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleSize = 50
	cfg.Replications = 1500
	cfg.Beta = []float64{0, 5} // true-zero intercept, strong slope
	cfg.Regressors = []Distribution{Normal(0, 1)}
	cfg.Noise = Normal(0, 1)
	cfg.Seed = 77
	cfg.Workers = 4

	res, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	acfg := DefaultAssertionConfig()
	AssertPower(t, res, acfg)
	AssertSize(t, res, acfg)

	reject := RejectionRate(res, 0.05)
	t.Logf("rejection rates: intercept (β=0) %.4f, slope (β=5) %.4f", reject[0], reject[1])
}

// TestScaledDeviationCovariance_CentralLimitTheorem: with x ~ N(0,1) and
// noise ~ U(-1,1), Q = E[xx'] = I and σ² = 1/3, so the covariance of
// √n(β̂ − β) approaches (1/3)·I at large n.
func TestScaledDeviationCovariance_CentralLimitTheorem(t *testing.T) {
	const sigma2 = 1.0 / 3.0

	cfg := DefaultConfig()
	cfg.SampleSize = 2000
	cfg.Replications = 800
	cfg.Beta = []float64{1, 2}
	cfg.Regressors = []Distribution{Normal(0, 1)}
	cfg.Noise = Uniform(-1, 1)
	cfg.Seed = 31
	cfg.Workers = 4

	res, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	cov := ScaledDeviationCovariance(res)

	for i := 0; i < 2; i++ {
		got := cov.At(i, i)
		if math.Abs(got-sigma2)/sigma2 > 0.25 {
			t.Errorf("Var(√n(β̂_%d − β_%d)) = %.4f, want %.4f ± 25%%", i, i, got, sigma2)
		}
	}
	if off := math.Abs(cov.At(0, 1)); off > 0.05 {
		t.Errorf("off-diagonal %.4f, want ~0 (regressor independent of intercept)", off)
	}

	t.Logf("✓ CLT: scaled covariance diag = [%.4f %.4f] (target %.4f), off-diag %.4f",
		cov.At(0, 0), cov.At(1, 1), sigma2, cov.At(0, 1))
}

// TestEmpiricalBias_SubtractsTruth is a plain bookkeeping check.
func TestEmpiricalBias_SubtractsTruth(t *testing.T) {
	res := &ReplicationResult{
		Beta:       []float64{1, -2},
		SampleSize: 10,
		Fits: []*FittedModel{
			{Coeff: []float64{1.5, -2.5}, StdErr: []float64{1, 1}},
			{Coeff: []float64{0.5, -1.5}, StdErr: []float64{1, 1}},
		},
	}

	bias := EmpiricalBias(res)
	if bias[0] != 0 || bias[1] != 0 {
		t.Errorf("bias = %v, want [0 0]", bias)
	}
}
