package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Sr31bu/avocado-predictor/pkg/config"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	configFile, projectRoot, profile = "", "", false
	predictNoScores, predictNoAccuracy = false, false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeProject(t *testing.T, content string) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "data")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "train_avacados.txt"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return root
}

const smallCSV = "GREEN,SOFT,YES\nBLACK,HARD,NO\nGREEN,HARD,NO\n"

func TestFitCommand(t *testing.T) {
	root := writeProject(t, smallCSV)

	out, err := runCommand(t, "fit", "--root", root, "--profile")
	if err != nil {
		t.Fatalf("fit failed: %v\n%s", err, out)
	}
	for _, want := range []string{"Examples: 3", "YES 0.3333", "Stage Timings", "load", "fit"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n%s", want, out)
		}
	}
}

func TestPredictCommand(t *testing.T) {
	root := writeProject(t, smallCSV)

	out, err := runCommand(t, "predict", "--root", root)
	if err != nil {
		t.Fatalf("predict failed: %v\n%s", err, out)
	}
	for _, want := range []string{"Scores by color:", "Scores by softness:", "accuracy when predicting only on softness: 1.0000"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n%s", want, out)
		}
	}
}

func TestPredictCommandNoScores(t *testing.T) {
	root := writeProject(t, smallCSV)

	out, err := runCommand(t, "predict", "--root", root, "--no-scores")
	if err != nil {
		t.Fatalf("predict failed: %v\n%s", err, out)
	}
	if strings.Contains(out, "Scores by color") {
		t.Errorf("scores printed with --no-scores\n%s", out)
	}
}

func TestFitCommandMissingData(t *testing.T) {
	out, err := runCommand(t, "fit", "--root", t.TempDir())
	if err == nil {
		t.Fatalf("expected error for missing data\n%s", out)
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestConfigGenerateAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if out, err := runCommand(t, "config", "generate", path); err != nil {
		t.Fatalf("generate failed: %v\n%s", err, out)
	}
	if _, err := runCommand(t, "config", "generate", path); err == nil {
		t.Error("expected error when config exists without --force")
	}

	out, err := runCommand(t, "config", "validate", path)
	if err != nil {
		t.Fatalf("validate failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Configuration is valid") {
		t.Errorf("unexpected output\n%s", out)
	}
}

func TestConfigShow(t *testing.T) {
	out, err := runCommand(t, "config", "show")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(out, "Backend: file") || !strings.Contains(out, "train_avacados.txt") {
		t.Errorf("unexpected output\n%s", out)
	}
}

func TestValidateConfigLogic(t *testing.T) {
	cfg := config.DefaultConfig()
	if w := validateConfigLogic(cfg); len(w) != 0 {
		t.Errorf("expected no warnings for defaults, got %v", w)
	}

	cfg.Report.ShowScores = false
	cfg.Report.ShowAccuracy = false
	cfg.Logging.Level = "debug"
	if w := validateConfigLogic(cfg); len(w) != 2 {
		t.Errorf("expected 2 warnings, got %v", w)
	}
}
