package collect

import (
	"context"
	"errors"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// ErrNoPage is returned when a collector receives no page snapshot.
var ErrNoPage = errors.New("collect: no page snapshot")

// PerformanceCollector derives load-time and payload metrics from the
// fetch itself. No external provider is queried; the numbers come from
// what the loader already measured.
type PerformanceCollector struct{}

// Source returns the signal source name.
func (c *PerformanceCollector) Source() string { return model.SignalPerformance }

// Collect fills the performance bag.
func (c *PerformanceCollector) Collect(_ context.Context, page *model.PageDocument) (model.DataBag, error) {
	if page == nil {
		return nil, ErrNoPage
	}

	loadSeconds := page.LoadTime.Seconds()

	// Grade the load time on the usual web-performance bands.
	var grade string
	switch {
	case loadSeconds == 0:
		grade = "unknown"
	case loadSeconds <= 1:
		grade = "fast"
	case loadSeconds <= 3:
		grade = "moderate"
	default:
		grade = "slow"
	}

	return model.DataBag{
		"load_time":       loadSeconds,
		"page_size_bytes": len(page.HTML),
		"grade":           grade,
	}, nil
}
