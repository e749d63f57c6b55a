package sim

import (
	"context"
	"sync"

	"github.com/san-kum/storycards/internal/confetti"
	"github.com/san-kum/storycards/internal/metrics"
)

// Ensemble runs the same burst for consecutive seeds in parallel. Each run
// gets its own surface and metric set from the factories.
type Ensemble struct {
	newSurface func() confetti.Surface
	newMetrics func() []metrics.Metric
	numRuns    int
	seedStart  int64
}

func NewEnsemble(newSurface func() confetti.Surface, newMetrics func() []metrics.Metric, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{
		newSurface: newSurface,
		newMetrics: newMetrics,
		numRuns:    numRuns,
		seedStart:  seedStart,
	}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfgCopy := cfg
			cfgCopy.Seed = e.seedStart + int64(idx)

			s := New(e.newSurface())
			if e.newMetrics != nil {
				for _, m := range e.newMetrics() {
					s.AddMetric(m)
				}
			}
			results[idx], errs[idx] = s.Run(ctx, cfgCopy)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// Mean averages a metric over results.
func Mean(results []*Result, name string) float64 {
	if len(results) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range results {
		sum += r.Metrics[name]
	}
	return sum / float64(len(results))
}
