package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// TestNewAnalyzeCmd tests the analyze command creation.
func TestNewAnalyzeCmd(t *testing.T) {
	t.Parallel()

	cmd := NewAnalyzeCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "analyze [url]..." {
			t.Errorf("expected use 'analyze [url]...', got %q", cmd.Use)
		}
	})

	t.Run("has descriptions", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
		if cmd.Long == "" {
			t.Error("expected non-empty long description")
		}
	})

	t.Run("has timeout flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("timeout")
		if flag == nil {
			t.Fatal("expected timeout flag")
		}
		if flag.Shorthand != "t" {
			t.Errorf("expected shorthand 't', got %q", flag.Shorthand)
		}
	})

	t.Run("has batch flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("batch")
		if flag == nil {
			t.Fatal("expected batch flag")
		}
		if flag.Shorthand != "b" {
			t.Errorf("expected shorthand 'b', got %q", flag.Shorthand)
		}
	})

	t.Run("has user-agent flag", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("user-agent") == nil {
			t.Fatal("expected user-agent flag")
		}
	})

	t.Run("has report flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"json", "markdown", "output", "config", "max-body-size"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %s flag", name)
			}
		}
	})
}

// TestBuildConfig tests config construction from flags.
func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cmd := NewAnalyzeCmd()
		cfg, err := buildConfig(cmd, []string{"https://example.com"})
		if err != nil {
			t.Fatalf("buildConfig() error = %v", err)
		}

		if cfg.Timeout != 30*time.Second {
			t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
		}
		if cfg.BatchSize != 5 {
			t.Errorf("BatchSize = %d, want 5", cfg.BatchSize)
		}
		if len(cfg.Targets) != 1 || cfg.Targets[0] != "https://example.com" {
			t.Errorf("Targets = %v, want the positional argument", cfg.Targets)
		}
		if cfg.Weights == nil {
			t.Error("Weights is nil, want default table")
		}
	})

	t.Run("flag overrides", func(t *testing.T) {
		t.Parallel()

		cmd := NewAnalyzeCmd()
		if err := cmd.Flags().Set("timeout", "5s"); err != nil {
			t.Fatal(err)
		}
		if err := cmd.Flags().Set("batch", "2"); err != nil {
			t.Fatal(err)
		}
		if err := cmd.Flags().Set("json", "true"); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"https://example.com"})
		if err != nil {
			t.Fatalf("buildConfig() error = %v", err)
		}

		if cfg.Timeout != 5*time.Second {
			t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
		}
		if cfg.BatchSize != 2 {
			t.Errorf("BatchSize = %d, want 2", cfg.BatchSize)
		}
		if !cfg.JSONReport {
			t.Error("JSONReport = false, want true")
		}
	})

	t.Run("missing explicit config file fails", func(t *testing.T) {
		t.Parallel()

		cmd := NewAnalyzeCmd()
		if err := cmd.Flags().Set("config", "/nonexistent/webboost.yaml"); err != nil {
			t.Fatal(err)
		}

		if _, err := buildConfig(cmd, []string{"https://example.com"}); err == nil {
			t.Error("buildConfig() error = nil, want error for missing config file")
		}
	})

	t.Run("config file weights applied", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		content := "weights:\n  readability: 0.30\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewAnalyzeCmd()
		if err := cmd.Flags().Set("config", path); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"https://example.com"})
		if err != nil {
			t.Fatalf("buildConfig() error = %v", err)
		}

		if got := cfg.Weights[model.CriterionReadability]; got != 0.30 {
			t.Errorf("readability weight = %v, want 0.30", got)
		}
		if got := cfg.Weights[model.CriterionSEOKeywords]; got != 0.10 {
			t.Errorf("seo weight = %v, want default 0.10", got)
		}
	})
}

// TestOutputReportToFile tests writing a report to a file path.
func TestOutputReportToFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "report.json")

	cmd := NewAnalyzeCmd()
	if err := cmd.Flags().Set("json", "true"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("output", path); err != nil {
		t.Fatal(err)
	}

	cfg, err := buildConfig(cmd, []string{"https://example.com"})
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}

	analysisReport := model.NewAnalysisReport("https://example.com")
	analysisReport.OverallScore = 72.5

	if err := outputReport(cfg, analysisReport); err != nil {
		t.Fatalf("outputReport() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("report file is empty")
	}
}
