package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/krishirajsinh-p/WebBoost/internal/config"
	"github.com/krishirajsinh-p/WebBoost/internal/loader"
	wblog "github.com/krishirajsinh-p/WebBoost/internal/log"
	"github.com/krishirajsinh-p/WebBoost/internal/model"
	"github.com/krishirajsinh-p/WebBoost/internal/pipeline"
	"github.com/krishirajsinh-p/WebBoost/internal/report"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [url]...",
		Short: "Analyze web pages and score their quality",
		Long: `Analyze fetches one or more web pages and scores their quality.

Each page is scored on nine criteria (readability, informativeness,
engagement, uniqueness, discoverability, ad experience, social
integration, layout quality, SEO) and receives a weighted overall score
from 0 to 100 with prioritized improvement recommendations.

Examples:
  # Analyze a single page
  webboost analyze https://example.com/article

  # Analyze multiple pages concurrently
  webboost analyze https://a.example https://b.example https://c.example

  # Output JSON report
  webboost analyze --json https://example.com

  # Write a Markdown report to a file
  webboost analyze --markdown -o report.md https://example.com

  # Use a custom configuration file
  webboost analyze -c myconfig.yaml https://example.com

Configuration file (.webboost) example:
  sites:
    example.com:
      cookie: "session_id=abc123"
      headers:
        Authorization: "Bearer token"
  weights:
    readability: 0.20
    seo_keywords: 0.05`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	// Fetch behavior flags
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Fetch timeout for each page")
	cmd.Flags().StringP("user-agent", "u", config.DefaultUserAgent,
		"User-Agent header sent with page fetches")
	cmd.Flags().Int64("max-body-size", config.DefaultMaxBodySize,
		"Maximum response body size in bytes")

	// Batch analysis flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent page analyses")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .webboost in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := wblog.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runAnalyze(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.UserAgent, err = cmd.Flags().GetString("user-agent")
	if err != nil {
		return nil, err
	}

	cfg.MaxBodySize, err = cmd.Flags().GetInt64("max-body-size")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load site-specific configurations from config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty config if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.SiteConfigs, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.SiteConfigs = &config.File{
			Sites: make(map[string]config.SiteConfig),
		}
	}

	// Apply criterion weight overrides from the config file.
	cfg.Weights = cfg.SiteConfigs.ApplyWeights(cfg.Weights)

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	// Get positional arguments (page URLs)
	cfg.Targets = args

	return cfg, nil
}

// runAnalyze executes the analysis.
func runAnalyze(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting analysis",
		"targets", cfg.Targets,
		"batchSize", cfg.BatchSize,
		"timeout", cfg.Timeout,
	)

	client := &http.Client{}

	// Use batch processor for parallel analysis if multiple targets
	if len(cfg.Targets) > 1 && cfg.BatchSize > 1 {
		return runBatchAnalyze(ctx, cfg, client, logger)
	}

	return runSequentialAnalyze(ctx, cfg, client, logger)
}

// runSequentialAnalyze analyzes targets one at a time.
func runSequentialAnalyze(ctx context.Context, cfg *config.Config, client *http.Client, logger *slog.Logger) error {
	for _, target := range cfg.Targets {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		p := createPipeline(cfg, client, logger)
		analysisReport := model.NewAnalysisReport(target)

		fmt.Printf("Analyzing %s...\n", target)
		startTime := time.Now()

		if err := p.Execute(ctx, analysisReport); err != nil {
			logger.Error("analysis failed", "target", target, "error", err)
			fmt.Fprintf(os.Stderr, "Analysis error for %s: %v\n", target, err)
			continue
		}

		elapsed := time.Since(startTime)
		fmt.Printf("Analysis completed in %s\n\n", elapsed.Round(time.Millisecond))

		if err := outputReport(cfg, analysisReport); err != nil {
			logger.Error("report failed", "target", target, "error", err)
		}
	}

	return nil
}

// runBatchAnalyze analyzes multiple targets concurrently using BatchProcessor.
func runBatchAnalyze(ctx context.Context, cfg *config.Config, client *http.Client, logger *slog.Logger) error {
	fmt.Printf("Starting batch analysis of %d pages (concurrency: %d)...\n\n",
		len(cfg.Targets), cfg.BatchSize)

	startTime := time.Now()

	bp := pipeline.NewBatchProcessor(
		func() *pipeline.Pipeline {
			return createPipeline(cfg, client, logger)
		},
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	// Process with callback for streaming output
	var mu sync.Mutex
	err := bp.ProcessBatchWithCallback(ctx, cfg.Targets, func(analysisReport *model.AnalysisReport, index int) {
		mu.Lock()
		defer mu.Unlock()

		fmt.Printf("[%d/%d] Analysis completed: %s (%.2f/100)\n",
			index+1, len(cfg.Targets), analysisReport.URL, analysisReport.OverallScore)

		if err := outputReport(cfg, analysisReport); err != nil {
			logger.Error("report failed", "target", analysisReport.URL, "error", err)
		}
	})

	elapsed := time.Since(startTime)
	fmt.Printf("\nBatch analysis completed in %s\n", elapsed.Round(time.Millisecond))

	return err
}

// createPipeline creates the full analysis pipeline for one page.
func createPipeline(cfg *config.Config, client *http.Client, logger *slog.Logger) *pipeline.Pipeline {
	pageLoader := loader.New(client,
		loader.WithUserAgent(cfg.UserAgent),
		loader.WithMaxBodySize(cfg.MaxBodySize),
		loader.WithTimeout(cfg.Timeout),
		loader.WithSiteConfigs(cfg.SiteConfigs),
	)

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(
		pipeline.NewFetchStep(pageLoader),
		pipeline.NewCollectStep(pipeline.WithCollectLogger(logger)),
		pipeline.NewScoreStep(pipeline.WithWeights(cfg.Weights)),
		pipeline.NewRecommendStep(),
	)
	return p
}

// outputReport outputs the analysis report in the requested format.
func outputReport(cfg *config.Config, analysisReport *model.AnalysisReport) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	// JSON output (full report with version metadata)
	if cfg.JSONReport {
		writer := report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
		_, err := writer.Write(analysisReport)
		return err
	}

	// Markdown output
	if cfg.MarkdownReport {
		writer := report.NewMarkdownWriter(output)
		_, err := writer.Write(analysisReport)
		return err
	}

	// Human-readable report (default)
	writer := report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	_, err := writer.Write(analysisReport)
	return err
}
