package main

import (
	"encoding/json"
	"fmt"
	"os"

	"firm-investment/internal/analysis"
	"firm-investment/internal/investment"

	"github.com/spf13/cobra"
)

var buildJSON bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the model and print steady states and grid diagnostics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		m, err := investment.Build(cfg.Params, buildOptions(cfg, logger)...)
		if err != nil {
			return err
		}
		s := analysis.Summarize(m)

		if buildJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"name":          cfg.Name,
				"params":        m.Params,
				"steady_states": map[string]any{"mean": m.Mean, "low": m.Low, "high": m.High},
				"summary":       s,
			})
		}

		fmt.Printf("Model %q: NK=%d NA=%d NI=%d mode=%s beta=%.3f\n",
			cfg.Name, s.NK, s.NA, s.NI, m.Problem.Mode(), m.Problem.Discount())
		fmt.Printf("%-6s %-10s %-10s %-12s %-6s\n", "level", "a", "q", "K", "iters")
		for _, ss := range []struct {
			name string
			a    float64
			q    float64
			k    float64
			it   int
		}{
			{"low", m.Low.A, m.Low.Q, m.Low.K, m.Low.Iterations},
			{"mean", m.Mean.A, m.Mean.Q, m.Mean.K, m.Mean.Iterations},
			{"high", m.High.A, m.High.Q, m.High.K, m.High.Iterations},
		} {
			fmt.Printf("%-6s %-10.4f %-10.4f %-12.4f %-6d\n", ss.name, ss.a, ss.q, ss.k, ss.it)
		}
		fmt.Printf("Capital grid [%.4f, %.4f] geomean=%.4f p05=%.4f p95=%.4f\n",
			s.KMin, s.KMax, s.KGeoMean, s.KP05, s.KP95)
		fmt.Printf("K_ss=%.4f in grid=%t ln(geomean/K_ss)=%.4f\n", s.KSteadyState, s.SteadyStateInGrid, s.LogGap)
		fmt.Printf("Productivity [%.4f, %.4f] stdev=%.4f  rate step=%.4f\n",
			s.ProductivityMin, s.ProductivityMax, s.ProductivityStdev, s.RateStep)
		return nil
	},
}

func init() {
	buildCmd.Flags().BoolVar(&buildJSON, "json", false, "print JSON instead of a table")
	rootCmd.AddCommand(buildCmd)
}
