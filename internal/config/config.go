package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// Default configuration values.
const (
	// DefaultTimeout is the fetch timeout per page. 30 seconds is generous
	// enough for slow origin servers while keeping batch runs bounded.
	DefaultTimeout = 30 * time.Second

	// DefaultBatchSize of 5 concurrent page analyses balances throughput
	// with politeness toward the analyzed sites and local CPU usage
	// during parsing.
	DefaultBatchSize = 5

	// DefaultMaxBodySize limits the response body read per page.
	// 5MB covers virtually all HTML documents while preventing memory
	// exhaustion from unexpectedly large responses.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultUserAgent identifies the analyzer in HTTP requests so site
	// operators can recognize the traffic in their logs.
	DefaultUserAgent = "WebBoost/1.0 (+https://github.com/krishirajsinh-p/WebBoost)"

	// AppName is the application name used for XDG directory paths.
	AppName = "webboost"
)

// Config holds all options for an analysis run.
// It is populated from CLI flags and passed through the application via
// dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., FetchConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without benefit.
type Config struct {
	// Timeout is the HTTP timeout for each page fetch.
	Timeout time.Duration

	// BatchSize is the number of pages analyzed concurrently when
	// multiple URLs are given.
	BatchSize int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// UserAgent is the User-Agent header sent with page fetches.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	// Responses larger than this are truncated. Zero means the default.
	MaxBodySize int64

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .webboost in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// SiteConfigs holds per-site overrides loaded from the config file.
	SiteConfigs *File

	// Weights is the criterion weight table applied during aggregation.
	// Defaults to the fixed production table; the config file may
	// override individual weights.
	Weights model.WeightTable

	// JSONReport enables JSON report output instead of human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string

	// Targets is the list of page URLs to analyze.
	Targets []string
}

// NewConfig creates a Config with default values.
//
// Design decision: We use a constructor instead of relying on zero
// values because most defaults are non-zero. This also documents what
// the defaults are.
func NewConfig() *Config {
	return &Config{
		Timeout:     DefaultTimeout,
		BatchSize:   DefaultBatchSize,
		UserAgent:   DefaultUserAgent,
		MaxBodySize: DefaultMaxBodySize,
		Weights:     model.DefaultWeights(),
	}
}

// XDGConfigDir returns the XDG config directory for the analyzer.
// On Linux: ~/.config/webboost
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for the analyzer.
// On Linux: ~/.cache/webboost
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks if the configuration is valid and returns a specific
// error describing the first problem found. Called once after CLI
// parsing, before any fetching begins.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTarget
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	for _, w := range c.Weights {
		if w < 0 {
			return ErrInvalidWeight
		}
	}
	return nil
}
