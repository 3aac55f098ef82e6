package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sr31bu/avocado-predictor/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long:  `Generate and inspect avocado predictor configuration files`,
}

var configGenCmd = &cobra.Command{
	Use:   "generate [config-file]",
	Short: "Generate default configuration file",
	Long:  `Generate a configuration file holding every option at its default value`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := "config.yaml"
		if len(args) > 0 {
			configPath = args[0]
		}

		if _, err := os.Stat(configPath); err == nil {
			overwrite, _ := cmd.Flags().GetBool("force")
			if !overwrite {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", configPath)
			}
		}

		if err := config.DefaultConfig().SaveConfig(configPath); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✅ Configuration file generated: %s\n", configPath)
		fmt.Fprintf(out, "🚀 Use 'avocado fit --config %s' to use the configuration\n", configPath)
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <config-file>",
	Short: "Validate configuration file",
	Long:  `Validate a configuration file for syntax and logical errors`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(args[0])
		if err != nil {
			return fmt.Errorf("❌ Configuration validation failed: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✅ Configuration is valid: %s\n", args[0])

		if warnings := validateConfigLogic(cfg); len(warnings) > 0 {
			fmt.Fprintf(out, "\n⚠️  Warnings:\n")
			for _, warning := range warnings {
				fmt.Fprintf(out, "  - %s\n", warning)
			}
		}
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show [config-file]",
	Short: "Show current configuration",
	Long:  `Display the configuration with all values`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		var cfg *config.Config
		if len(args) > 0 {
			var err error
			cfg, err = config.LoadConfig(args[0])
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			fmt.Fprintf(out, "Configuration: %s\n\n", args[0])
		} else {
			cfg = config.DefaultConfig()
			fmt.Fprintf(out, "Default Configuration:\n\n")
		}

		printConfig(out, cfg)
		return nil
	},
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "📂 Dataset:\n")
	fmt.Fprintf(w, "  Backend: %s\n", cfg.Dataset.Backend)
	switch cfg.Dataset.Backend {
	case "redis":
		r := cfg.Dataset.Redis
		fmt.Fprintf(w, "  Redis URL: %s (db %d)\n", r.RedisURL, r.DatabaseNum)
		fmt.Fprintf(w, "  Key: %s:examples\n", r.KeyPrefix)
		fmt.Fprintf(w, "  Dial timeout: %s\n", r.DialTimeout)
		fmt.Fprintf(w, "  Batch size: %d\n", r.BatchSize)
	default:
		fmt.Fprintf(w, "  Directory: %s\n", cfg.Dataset.File.Dir)
		fmt.Fprintf(w, "  File: %s\n", cfg.Dataset.File.Name)
	}

	fmt.Fprintf(w, "\n📝 Logging:\n")
	fmt.Fprintf(w, "  Level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(w, "  Format: %s\n", cfg.Logging.Format)
	if cfg.Logging.File != "" {
		fmt.Fprintf(w, "  File: %s\n", cfg.Logging.File)
	} else {
		fmt.Fprintf(w, "  File: (stderr)\n")
	}

	fmt.Fprintf(w, "\n📊 Report:\n")
	fmt.Fprintf(w, "  Show scores: %v\n", cfg.Report.ShowScores)
	fmt.Fprintf(w, "  Show accuracy: %v\n", cfg.Report.ShowAccuracy)
}

// validateConfigLogic reports settings that are valid but probably unintended
func validateConfigLogic(cfg *config.Config) []string {
	var warnings []string

	if !cfg.Report.ShowScores && !cfg.Report.ShowAccuracy {
		warnings = append(warnings, "Both report.show_scores and report.show_accuracy are off - predict prints nothing")
	}

	if cfg.Dataset.Backend == "redis" {
		if d, err := cfg.Dataset.Redis.Timeout(); err == nil && d == 0 {
			warnings = append(warnings, "No Redis dial timeout set - connection attempts use the client default")
		}
	}

	if cfg.Logging.Level == "debug" && cfg.Logging.File == "" {
		warnings = append(warnings, "Debug logging to stderr interleaves with command output")
	}

	return warnings
}

func init() {
	configCmd.AddCommand(configGenCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)

	configGenCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
