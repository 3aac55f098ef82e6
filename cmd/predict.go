package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Sr31bu/avocado-predictor/pkg/avocado"
	"github.com/Sr31bu/avocado-predictor/pkg/learning"
	"github.com/Sr31bu/avocado-predictor/pkg/logger"
	"github.com/Sr31bu/avocado-predictor/pkg/profiler"
)

var (
	predictNoScores   bool
	predictNoAccuracy bool
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Score the training observations by color and by softness",
	Long: `Fit the model on the training dataset, then score every training
observation once by color alone and once by softness alone.

Scores use the batch's own value frequencies as the evidence term, so they
compare labels within a batch and are not calibrated probabilities.`,
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

		colors := make([]avocado.Color, len(examples))
		softness := make([]avocado.Softness, len(examples))
		actual := make([]avocado.GoodToEat, len(examples))
		for i, ex := range examples {
			colors[i] = ex.Color
			softness[i] = ex.Softness
			actual[i] = ex.Label
		}

		out := cmd.OutOrStdout()
		showScores := cfg.Report.ShowScores && !predictNoScores
		showAccuracy := cfg.Report.ShowAccuracy && !predictNoAccuracy

		timer = prof.Start("score")
		colorScores, err := m.PredictColorProba(colors)
		if err != nil {
			return fmt.Errorf("failed to score colors: %w", err)
		}
		softnessScores, err := m.PredictSoftnessProba(softness)
		if err != nil {
			return fmt.Errorf("failed to score softness: %w", err)
		}
		timer.Stop()

		if showScores {
			fmt.Fprintf(out, "Scores by color:\n")
			learning.PrintScores(out, colors, colorScores)
			fmt.Fprintf(out, "\nScores by softness:\n")
			learning.PrintScores(out, softness, softnessScores)
			fmt.Fprintf(out, "\n")
		}

		if showAccuracy {
			if err := printAccuracy(out, m, colors, softness, actual); err != nil {
				return err
			}
		}

		logger.L().Info("predict.done", "queries", len(examples))
		printProfile(out, prof)
		return nil
	},
}

func printAccuracy(w io.Writer, m *learning.Predictor, colors []avocado.Color, softness []avocado.Softness, actual []avocado.GoodToEat) error {
	byColor, err := m.PredictColor(colors)
	if err != nil {
		return err
	}
	bySoftness, err := m.PredictSoftness(softness)
	if err != nil {
		return err
	}

	colorAcc, err := learning.Accuracy(byColor, actual)
	if err != nil {
		return err
	}
	softnessAcc, err := learning.Accuracy(bySoftness, actual)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "accuracy when predicting only on color: %.4f\n", colorAcc)
	fmt.Fprintf(w, "accuracy when predicting only on softness: %.4f\n", softnessAcc)
	return nil
}

func init() {
	predictCmd.Flags().BoolVar(&predictNoScores, "no-scores", false, "Do not print per-example scores")
	predictCmd.Flags().BoolVar(&predictNoAccuracy, "no-accuracy", false, "Do not print accuracy")
}
