package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sr31bu/avocado-predictor/pkg/learning"
	"github.com/Sr31bu/avocado-predictor/pkg/logger"
	"github.com/Sr31bu/avocado-predictor/pkg/profiler"
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit the model and print its probability tables",
	Long: `Load the training dataset, fit the naive Bayes model and print the
good-to-eat prior and the color and softness conditional tables.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, cleanup, err := setup()
		if err != nil {
			return err
		}
		defer cleanup()

		prof := profiler.NewProfiler()
		examples, err := loadExamples(cmd.Context(), cfg, prof)
		if err != nil {
			return err
		}

		timer := prof.Start("fit")
		m, err := learning.NewPredictor().Fit(examples)
		if err != nil {
			return fmt.Errorf("failed to fit model: %w", err)
		}
		logger.L().Info("model.fitted", "examples", len(examples), "duration", timer.Stop())

		m.PrintTables(cmd.OutOrStdout())
		printProfile(cmd.OutOrStdout(), prof)
		return nil
	},
}
