package main

import (
	"fmt"
	"os"
	"path/filepath"

	"firm-investment/internal/investment"
	"firm-investment/internal/tabulate"

	"github.com/spf13/cobra"
)

var tableOut string

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Evaluate reward and transition on every (K, a, i) and write CSV",
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
		res, err := tabulate.New().Run(m)
		if err != nil {
			return err
		}

		// ensure output dir exists
		if err := os.MkdirAll(filepath.Dir(tableOut), 0o755); err != nil {
			return err
		}
		if err := tabulate.WriteCSV(tableOut, res.Rows); err != nil {
			return err
		}

		fmt.Printf("Wrote %d rows to %s\n", len(res.Rows), tableOut)
		fmt.Printf("Next capital off grid: %d of %d\n", res.OffGrid, len(res.Rows))
		return nil
	},
}

func init() {
	tableCmd.Flags().StringVarP(&tableOut, "out", "o", "results/table.csv", "output CSV path")
	rootCmd.AddCommand(tableCmd)
}
