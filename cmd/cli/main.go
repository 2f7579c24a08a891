package main

import (
	"os"

	"firm-investment/internal/config"
	"firm-investment/internal/investment"
	"firm-investment/internal/model"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgPath string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cli",
	Short: "Build and inspect the firm investment model.",
	Long: `Builds the discretized firm investment problem (grids, reward, transition) ` +
		`from a YAML calibration and reports steady states, grid diagnostics and sweeps. ` +
		`Without --config the default calibration is used.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to YAML config (defaults when empty)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log steady-state solves")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// loadConfig returns the calibration at --config, or the defaults.
func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return &config.Config{Name: "default", Params: model.Default()}, nil
	}
	return config.Load(cfgPath)
}

func buildOptions(cfg *config.Config, logger *zap.Logger) []investment.Option {
	return []investment.Option{
		investment.WithLogger(logger),
		investment.WithSolverConfig(cfg.Solver),
	}
}
