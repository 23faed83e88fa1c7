package sim

import (
	"context"
	"fmt"
)

// Simulator steps a clock one day at a time and records what a sampler sees.
type Simulator struct {
	clock     Clock
	sampler   Sampler
	metrics   []Metric
	observers []Observer
}

func New(clock Clock, sampler Sampler) *Simulator {
	return &Simulator{
		clock:     clock,
		sampler:   sampler,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Samples: make([]Sample, 0, cfg.Days),
		Metrics: make(map[string]float64),
	}
	for _, m := range s.metrics {
		m.Reset()
	}

	err := s.RunWithCallback(ctx, cfg, func(day int, samples []Sample) bool {
		result.Samples = append(result.Samples, samples...)
		result.Days++
		return true
	})

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, err
}

// RunWithCallback runs day by day until cfg.Days have passed, the context
// ends or callback returns false. Metrics and observers see every day.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, callback func(day int, samples []Sample) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	for i := 0; i < cfg.Days; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		day := s.clock.Day()
		samples, err := s.Step(ctx)
		if err != nil {
			return err
		}
		if !callback(day, samples) {
			return nil
		}
	}
	return nil
}

// Step advances the clock by one day and feeds the sampler's samples to every
// metric and observer.
func (s *Simulator) Step(ctx context.Context) ([]Sample, error) {
	day := s.clock.Day()
	if err := s.clock.RunDays(ctx, 1); err != nil {
		return nil, fmt.Errorf("day %d: %w", day, err)
	}

	samples := s.sampler(day)
	for _, m := range s.metrics {
		for _, sample := range samples {
			m.Observe(sample)
		}
	}
	for _, obs := range s.observers {
		obs.OnDay(day, samples)
	}
	return samples, nil
}

// Metrics returns the current value of every metric.
func (s *Simulator) Metrics() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

func validateConfig(cfg Config) error {
	if cfg.Days <= 0 {
		return fmt.Errorf("days must be positive, got %d", cfg.Days)
	}
	return nil
}
