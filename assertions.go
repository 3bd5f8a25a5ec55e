package olsbench

import (
	"math"
	"testing"
)

// AssertionConfig contains tolerances for the asymptotic properties.
type AssertionConfig struct {
	// Maximum |empirical bias| per coefficient
	BiasTolerance float64

	// Maximum |coverage − (1−α)| per coefficient
	CoverageTolerance float64

	// Minimum rejection rate for coefficients with β_i ≠ 0
	MinPower float64

	// Maximum rejection rate for coefficients with β_i = 0
	MaxSize float64

	// Significance level for coverage and rejection checks
	Alpha float64
}

// DefaultAssertionConfig returns conservative tolerances suitable for
// replication counts in the low thousands.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		BiasTolerance:     0.05,
		CoverageTolerance: 0.05,
		MinPower:          0.90,
		MaxSize:           0.10,
		Alpha:             0.05,
	}
}

// AssertUnbiased verifies the mean of β̂ across replications is close to the
// true β (Law of Large Numbers over the replication index).
//
// Mathematical property:
//
//	(1/R) Σ_r β̂_r → β as R → ∞
func AssertUnbiased(t *testing.T, res *ReplicationResult, cfg AssertionConfig) {
	t.Helper()

	bias := EmpiricalBias(res)
	for i, b := range bias {
		if math.Abs(b) > cfg.BiasTolerance {
			t.Errorf("Coefficient %d biased: |%.5f| > %.5f (true β=%.3f)\n"+
				"Increase replications or loosen BiasTolerance.",
				i, b, cfg.BiasTolerance, res.Beta[i])
		}
	}

	t.Logf("✓ Unbiased: max |bias| within %.4f over %d replications", cfg.BiasTolerance, len(res.Fits))
}

// AssertCoverage verifies the Wald interval β̂ ± z·se covers the true value
// at its nominal rate 1−α.
func AssertCoverage(t *testing.T, res *ReplicationResult, cfg AssertionConfig) {
	t.Helper()

	nominal := 1 - cfg.Alpha
	cover := Coverage(res, cfg.Alpha)
	for i, c := range cover {
		if math.Abs(c-nominal) > cfg.CoverageTolerance {
			t.Errorf("Coefficient %d: coverage %.4f (nominal %.4f ± %.4f)\n"+
				"Wald intervals are miscalibrated at n=%d.",
				i, c, nominal, cfg.CoverageTolerance, res.SampleSize)
		}
	}

	t.Logf("✓ Coverage: all coefficients within %.4f ± %.4f", nominal, cfg.CoverageTolerance)
}

// AssertPower verifies the two-sided z-test of H0: β_i = 0 rejects almost
// always for every coefficient whose true value is nonzero. Only meaningful
// when |β_i| is large relative to the sampling standard deviation of β̂_i.
func AssertPower(t *testing.T, res *ReplicationResult, cfg AssertionConfig) {
	t.Helper()

	reject := RejectionRate(res, cfg.Alpha)
	for i, r := range reject {
		if res.Beta[i] == 0 {
			continue
		}
		if r < cfg.MinPower {
			t.Errorf("Coefficient %d (β=%.3f): rejection rate %.4f < %.4f\n"+
				"Test lacks power; the effect may be small relative to se at n=%d.",
				i, res.Beta[i], r, cfg.MinPower, res.SampleSize)
		}
	}

	t.Logf("✓ Power: nonzero coefficients rejected at rate ≥ %.2f", cfg.MinPower)
}

// AssertSize verifies the two-sided z-test of H0: β_i = 0 rejects at roughly
// the nominal rate α for every coefficient whose true value is zero.
func AssertSize(t *testing.T, res *ReplicationResult, cfg AssertionConfig) {
	t.Helper()

	reject := RejectionRate(res, cfg.Alpha)
	checked := 0
	for i, r := range reject {
		if res.Beta[i] != 0 {
			continue
		}
		checked++
		if r > cfg.MaxSize {
			t.Errorf("Coefficient %d (true zero): rejection rate %.4f > %.4f\n"+
				"Test over-rejects under the null at n=%d.",
				i, r, cfg.MaxSize, res.SampleSize)
		}
	}

	if checked == 0 {
		t.Logf("AssertSize: no true-zero coefficients to check")
		return
	}
	t.Logf("✓ Size: %d true-zero coefficient(s) rejected at rate ≤ %.2f", checked, cfg.MaxSize)
}

// AssertCalibrated runs all inference assertions with the given config.
func AssertCalibrated(t *testing.T, res *ReplicationResult, cfg AssertionConfig) {
	t.Helper()

	t.Run("Unbiased", func(t *testing.T) {
		AssertUnbiased(t, res, cfg)
	})

	t.Run("Coverage", func(t *testing.T) {
		AssertCoverage(t, res, cfg)
	})

	t.Run("Power", func(t *testing.T) {
		AssertPower(t, res, cfg)
	})

	t.Run("Size", func(t *testing.T) {
		AssertSize(t, res, cfg)
	})
}

// PrintDiagnostics outputs the per-coefficient Monte Carlo table to the test log.
func PrintDiagnostics(t *testing.T, res *ReplicationResult, alpha float64) {
	t.Helper()

	cover := Coverage(res, alpha)
	reject := RejectionRate(res, alpha)

	t.Logf("\n=== Monte Carlo OLS Diagnostics (n=%d, R=%d, α=%.2f) ===",
		res.SampleSize, len(res.Fits), alpha)
	t.Logf("  i   true      mean      bias      sd        p5        p95       coverage  reject")

	for i := range res.Beta {
		s := Summarize(res, i)
		t.Logf("  %-3d %9.4f %9.4f %9.5f %9.5f %9.4f %9.4f %9.4f %7.4f",
			i, s.True, s.Mean, s.Mean-s.True, s.StdDev, s.P5, s.P95, cover[i], reject[i])
	}
}
