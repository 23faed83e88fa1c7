package metrics

import "github.com/san-kum/plantctl/internal/sim"

// MeanProfit averages reported weekly profits, skipping the first warmup
// days of every firm.
type MeanProfit struct {
	warmup  int
	sum     float64
	samples int
}

func NewMeanProfit(warmup int) *MeanProfit {
	return &MeanProfit{warmup: warmup}
}

func (m *MeanProfit) Name() string { return "mean_profit" }

func (m *MeanProfit) Observe(s sim.Sample) {
	if s.Day < m.warmup {
		return
	}
	m.sum += s.Profit
	m.samples++
}

func (m *MeanProfit) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanProfit) Reset() {
	m.sum = 0
	m.samples = 0
}

// TargetError is the mean absolute gap between workforce and target.
type TargetError struct {
	sum     float64
	samples int
}

func NewTargetError() *TargetError { return &TargetError{} }

func (t *TargetError) Name() string { return "target_error" }

func (t *TargetError) Observe(s sim.Sample) {
	gap := s.Workers - s.Target
	if gap < 0 {
		gap = -gap
	}
	t.sum += float64(gap)
	t.samples++
}

func (t *TargetError) Value() float64 {
	if t.samples == 0 {
		return 0
	}
	return t.sum / float64(t.samples)
}

func (t *TargetError) Reset() {
	t.sum = 0
	t.samples = 0
}

// Default returns the metrics recorded by every run.
func Default(warmup int) []sim.Metric {
	return []sim.Metric{
		NewMeanProfit(warmup),
		NewTargetError(),
		NewWageEffort(),
		NewStability(1),
	}
}
