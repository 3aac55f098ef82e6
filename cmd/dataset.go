package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sr31bu/avocado-predictor/pkg/dataset"
	"github.com/Sr31bu/avocado-predictor/pkg/logger"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Dataset management",
	Long:  `Manage the training dataset stored in Redis`,
}

var datasetImportCmd = &cobra.Command{
	Use:   "import <csv-file>",
	Short: "Import a CSV dataset into Redis",
	Long: `Parse a color,softness,good_to_eat CSV file and replace the Redis list
configured under dataset.redis with its records.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, cleanup, err := setup()
		if err != nil {
			return err
		}
		defer cleanup()

		file, err := os.Open(args[0])
		if os.IsNotExist(err) {
			return &dataset.MissingDataError{Path: args[0]}
		}
		if err != nil {
			return fmt.Errorf("failed to open dataset: %w", err)
		}
		defer file.Close()

		examples, err := dataset.ParseRecords(file)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		store, err := dataset.NewRedisStore(cmd.Context(), cfg.Dataset.Redis)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Import(cmd.Context(), examples)
		if err != nil {
			return err
		}
		logger.L().Info("dataset.imported", "key", store.Key(), "examples", n)

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d examples into %s\n", n, store.Key())
		return nil
	},
}

func init() {
	datasetCmd.AddCommand(datasetImportCmd)
}
