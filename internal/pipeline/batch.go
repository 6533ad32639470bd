package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// BatchProcessor handles concurrent analysis of multiple pages.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchProcessor rather than adding
// batch functionality to Pipeline because:
// 1. It keeps the Pipeline focused on single-page execution
// 2. It allows different batch strategies (e.g., rate limiting, retries)
// 3. It provides cleaner separation of concerns
type BatchProcessor struct {
	// pipelineFactory creates a new pipeline for each analysis.
	// A factory ensures each page gets a fresh pipeline instance.
	pipelineFactory func() *Pipeline

	// concurrency is the maximum number of concurrent analyses.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results stores completed reports, ordered like the input URLs.
	results []*model.AnalysisReport
	mu      sync.Mutex
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent analyses.
// Default is 5 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
//
// The pipelineFactory function is called for each page to create a
// fresh pipeline instance. This ensures that pipeline state doesn't
// leak between analyses.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     5,
		results:         make([]*model.AnalysisReport, 0),
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch analyzes multiple pages concurrently.
// It respects the configured concurrency limit and context cancellation.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Each URL gets its own goroutine, but only 'concurrency' goroutines
// run simultaneously.
//
// Returns all reports collected, even for pages that failed; a failed
// analysis is a report carrying its error. The error return indicates
// whether the batch itself was cancelled.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, urls []string) ([]*model.AnalysisReport, error) {
	bp.logger.Info("starting batch analysis",
		"total_pages", len(urls),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice to maintain input order
	bp.results = make([]*model.AnalysisReport, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, url := range urls {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			bp.logger.Info("analyzing page",
				"url", url,
				"index", i+1,
				"total", len(urls),
			)

			report := model.NewAnalysisReport(url)

			pipeline := bp.pipelineFactory()
			err := pipeline.Execute(ctx, report)

			// Store the report regardless of error; it carries the
			// failure details when the analysis did not finish.
			bp.mu.Lock()
			bp.results[i] = report
			bp.mu.Unlock()

			if err != nil {
				bp.logger.Warn("analysis failed",
					"url", url,
					"error", err,
				)
				// Don't return the error to errgroup; one failed page
				// must not cancel the remaining analyses.
				return nil
			}

			bp.logger.Info("analysis completed",
				"url", url,
				"overall_score", report.OverallScore,
			)

			return nil
		})
	}

	err := g.Wait()

	elapsed := time.Since(startTime)
	bp.logger.Info("batch analysis complete",
		"total_pages", len(urls),
		"elapsed", elapsed,
	)

	return bp.results, err
}

// ProcessBatchWithCallback analyzes multiple pages and calls a callback
// for each completed analysis. This is useful for streaming results.
//
// The callback receives the report and the index of the URL in the
// original slice. The callback is called from the goroutine that
// completed the analysis, so it must be safe for concurrent use if it
// accesses shared state.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	urls []string,
	callback func(report *model.AnalysisReport, index int),
) error {
	bp.logger.Info("starting batch analysis with callback",
		"total_pages", len(urls),
		"concurrency", bp.concurrency,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, url := range urls {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			report := model.NewAnalysisReport(url)
			pipeline := bp.pipelineFactory()
			_ = pipeline.Execute(ctx, report) //nolint:errcheck // Error is stored in report

			callback(report, i)

			return nil
		})
	}

	return g.Wait()
}
