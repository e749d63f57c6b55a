// Package sim runs confetti bursts without a terminal: on an offscreen
// surface, driven by a simulated clock, with metrics and observers attached.
package sim

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/san-kum/storycards/internal/confetti"
	"github.com/san-kum/storycards/internal/metrics"
)

type Simulator struct {
	surface   confetti.Surface
	metrics   []metrics.Metric
	observers []Observer
}

func New(surface confetti.Surface) *Simulator {
	return &Simulator{
		surface:   surface,
		metrics:   make([]metrics.Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m metrics.Metric) { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer)     { s.observers = append(s.observers, o) }

// Run plays one full burst. Frames are spaced by cfg.FrameInterval on a
// simulated clock, so the frame count only depends on the interval.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Seed:    cfg.Seed,
		Metrics: make(map[string]float64),
	}
	for _, m := range s.metrics {
		m.Reset()
	}

	engine := confetti.New(s.surface, rand.New(rand.NewSource(cfg.Seed)))
	start := time.Unix(0, 0)
	result.Generation = engine.Burst(start, cfg.Width, cfg.Height, cfg.Scale)

	for now := start; engine.Frame(result.Generation, now); now = now.Add(cfg.FrameInterval) {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		x := engine.Positions()
		if !x.IsValid() {
			return result, fmt.Errorf("frame %d: particle state is not finite", result.Frames)
		}
		for _, m := range s.metrics {
			m.Observe(x, nil, float64(result.Frames))
		}
		for _, obs := range s.observers {
			obs.OnFrame(result.Frames, x)
		}
		result.Frames++
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %gx%g", cfg.Width, cfg.Height)
	}
	if cfg.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %f", cfg.Scale)
	}
	if cfg.FrameInterval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %v", cfg.FrameInterval)
	}
	return nil
}
