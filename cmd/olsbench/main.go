// Command olsbench runs a Monte Carlo OLS scenario and reports the
// asymptotic diagnostics: empirical bias, Wald coverage, and rejection rates.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/alexshd/olsbench"
)

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		}),
	))

	root := &cobra.Command{
		Use:           "olsbench",
		Short:         "Monte Carlo verification of OLS asymptotics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(runCmd())

	if err := root.Execute(); err != nil {
		slog.Error("olsbench failed", "err", err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var (
		scenarioPath string
		alpha        float64
		workers      int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a scenario file and report Monte Carlo diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(scenarioPath)
			if err != nil {
				return fmt.Errorf("reading scenario: %w", err)
			}

			cfg, err := olsbench.ParseScenario(data)
			if err != nil {
				return err
			}
			if workers > 0 {
				cfg.Workers = workers
			}

			start := time.Now()
			res, err := olsbench.Run(cfg)
			if err != nil {
				return err
			}

			slog.Info("run complete",
				"n", cfg.SampleSize,
				"replications", cfg.Replications,
				"seed", cfg.Seed,
				"elapsed", time.Since(start).Round(time.Millisecond))

			report(res, alpha)
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "path to a YAML scenario file")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.05, "significance level for coverage and z-tests")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel replications (0 = as in scenario)")
	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}

func report(res *olsbench.ReplicationResult, alpha float64) {
	cover := olsbench.Coverage(res, alpha)
	reject := olsbench.RejectionRate(res, alpha)

	for i, s := range olsbench.SummarizeAll(res) {
		slog.Info(fmt.Sprintf("coefficient %d", i),
			"true", fmt.Sprintf("%.4f", s.True),
			"mean", fmt.Sprintf("%.4f", s.Mean),
			"bias", fmt.Sprintf("%.5f", s.Mean-s.True),
			"sd", fmt.Sprintf("%.5f", s.StdDev),
			"p5", fmt.Sprintf("%.4f", s.P5),
			"p95", fmt.Sprintf("%.4f", s.P95),
			"coverage", fmt.Sprintf("%.4f", cover[i]),
			"reject_h0_zero", fmt.Sprintf("%.4f", reject[i]))
	}
}
