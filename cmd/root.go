package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Sr31bu/avocado-predictor/pkg/avocado"
	"github.com/Sr31bu/avocado-predictor/pkg/config"
	"github.com/Sr31bu/avocado-predictor/pkg/dataset"
	"github.com/Sr31bu/avocado-predictor/pkg/logger"
	"github.com/Sr31bu/avocado-predictor/pkg/profiler"
)

var (
	configFile  string
	projectRoot string
	profile     bool
)

var rootCmd = &cobra.Command{
	Use:   "avocado",
	Short: "Avocado predictor - naive Bayes good-to-eat scoring",
	Long: `Avocado predictor fits a naive Bayes model on a labeled CSV dataset of
avocado observations (color, softness, good to eat) and scores new
observations against it.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "Avocado Predictor")
		fmt.Fprintln(cmd.OutOrStdout(), "Use 'avocado --help' for usage information")
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&projectRoot, "root", "", "Project root holding the data directory (default: current directory)")
	rootCmd.PersistentFlags().BoolVar(&profile, "profile", false, "Print stage timings after the command")

	rootCmd.AddCommand(fitCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(datasetCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads configuration and installs the logger. The returned cleanup
// must be called when the command finishes.
func setup() (*config.Config, func(), error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	closeLog, err := logger.Setup(cfg.Logging, os.Stderr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	return cfg, func() { _ = closeLog() }, nil
}

func resolveRoot() string {
	if projectRoot != "" {
		return projectRoot
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	abs, _ := filepath.Abs(wd)
	return abs
}

// loadExamples reads the training set from the configured backend.
func loadExamples(ctx context.Context, cfg *config.Config, prof *profiler.Profiler) ([]avocado.Example, error) {
	timer := prof.Start("load")
	defer timer.Stop()

	loader, err := dataset.NewLoader(ctx, cfg.Dataset, resolveRoot())
	if err != nil {
		return nil, err
	}
	defer loader.Close()

	examples, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	logger.L().Info("dataset.loaded", "backend", cfg.Dataset.Backend, "examples", len(examples))
	return examples, nil
}

// printProfile writes the stage timings when --profile is set.
func printProfile(w io.Writer, prof *profiler.Profiler) {
	if !profile {
		return
	}
	fmt.Fprintln(w)
	prof.PrintReport(w)
}
