package main

import (
	"fmt"

	"firm-investment/internal/analysis"
	"firm-investment/internal/config"
	"firm-investment/internal/model"

	"github.com/spf13/cobra"
)

var sweepParam string

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Build one model per parameter value and rank by steady-state capital",
	Example: `  cli sweep --param theta=0.5,0.6,0.7
  cli sweep -c examples/config.yaml --param gamma=0,1,2,4`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, values, err := config.ParseSweep(sweepParam)
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		vars := make([]analysis.Variation, 0, len(values))
		for _, v := range values {
			p := cfg.Params
			if err := config.SetParam(&p, name, v); err != nil {
				return err
			}
			vars = append(vars, analysis.Variation{Name: fmt.Sprintf("%s=%g", name, v), Params: p})
		}

		// Variations are complete parameter sets, so explicit zeros apply.
		replace := func(_, override model.Params) model.Params { return override }
		results := analysis.Sweep(cfg.Params, vars, replace, buildOptions(cfg, logger)...)

		fmt.Printf("%-4s %-16s %-12s %-12s %-12s %-8s %s\n", "rank", "variation", "K_ss", "K_min", "K_max", "in_grid", "error")
		for i, r := range results {
			if r.Err != nil {
				fmt.Printf("%-4s %-16s %-12s %-12s %-12s %-8s %v\n", "-", r.Name, "-", "-", "-", "-", r.Err)
				continue
			}
			fmt.Printf("%-4d %-16s %-12.4f %-12.4f %-12.4f %-8t\n",
				i+1, r.Name, r.Summary.KSteadyState, r.Summary.KMin, r.Summary.KMax, r.Summary.SteadyStateInGrid)
		}
		return nil
	},
}

func init() {
	sweepCmd.Flags().StringVarP(&sweepParam, "param", "p", "", "parameter and values, e.g. theta=0.5,0.6,0.7")
	_ = sweepCmd.MarkFlagRequired("param")
	rootCmd.AddCommand(sweepCmd)
}
