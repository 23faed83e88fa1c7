package metrics

import (
	"math"

	"github.com/san-kum/plantctl/internal/sim"
)

// WageEffort is the mean absolute day to day wage change, summed over firms.
type WageEffort struct {
	name    string
	last    map[string]int64
	sum     float64
	samples int
}

func NewWageEffort() *WageEffort {
	return &WageEffort{
		name: "wage_effort",
		last: make(map[string]int64),
	}
}

func (w *WageEffort) Name() string {
	return w.name
}

func (w *WageEffort) Observe(s sim.Sample) {
	if prev, ok := w.last[s.Firm]; ok {
		w.sum += math.Abs(float64(s.Wage - prev))
		w.samples++
	}
	w.last[s.Firm] = s.Wage
}

func (w *WageEffort) Value() float64 {
	if w.samples == 0 {
		return 0
	}
	return w.sum / float64(w.samples)
}

func (w *WageEffort) Reset() {
	w.last = make(map[string]int64)
	w.sum = 0
	w.samples = 0
}
