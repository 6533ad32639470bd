package collect

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// Collector derives one named signal bag from a page snapshot.
//
// Design decision: Collectors return an error for observability, but
// the gather layer converts every failure into an empty bag. Scorers
// therefore never see a collector error, only absent data.
type Collector interface {
	// Collect derives the signal bag from the page.
	Collect(ctx context.Context, page *model.PageDocument) (model.DataBag, error)

	// Source returns the signal source name this collector fills.
	Source() string
}

// Gather runs all collectors concurrently and assembles the Signals
// mapping. Every source named by a collector is always present in the
// result; a collector that fails or returns nil leaves an empty bag.
func Gather(ctx context.Context, page *model.PageDocument, logger *slog.Logger, collectors ...Collector) *model.Signals {
	if logger == nil {
		logger = slog.Default()
	}

	signals := model.NewSignals()
	bags := make([]model.DataBag, len(collectors))

	g, ctx := errgroup.WithContext(ctx)
	for i, c := range collectors {
		g.Go(func() error {
			bag, err := c.Collect(ctx, page)
			if err != nil {
				logger.Warn("signal collection failed; continuing with empty bag",
					"source", c.Source(),
					"error", err,
				)
				return nil
			}
			bags[i] = bag
			return nil
		})
	}

	// Collectors never return errors through the group, so Wait cannot
	// fail; it only synchronizes completion.
	_ = g.Wait()

	for i, c := range collectors {
		signals.Set(c.Source(), bags[i])
	}
	return signals
}

// DefaultCollectors returns the standard collector set in source order.
func DefaultCollectors() []Collector {
	return []Collector{
		&PerformanceCollector{},
		&MobileCollector{},
		&SEOCollector{},
		&SecurityCollector{},
		&SocialCollector{},
	}
}
