package sim

import "context"

// Sample is the state of one firm at the end of a day.
type Sample struct {
	Day     int     `json:"day"`
	Firm    string  `json:"firm"`
	Wage    int64   `json:"wage"`
	Workers int     `json:"workers"`
	Target  int     `json:"target"`
	Profit  float64 `json:"profit"`
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
}

// Clock advances the world. *sched.Engine implements it.
type Clock interface {
	RunDays(ctx context.Context, days int) error
	Day() int
}

// Sampler reads one sample per firm after each day.
type Sampler func(day int) []Sample

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

type Observer interface {
	OnDay(day int, samples []Sample)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(day int, samples []Sample)

func (f ObserverFunc) OnDay(day int, samples []Sample) { f(day, samples) }

type Config struct {
	Days int
	Seed int64
}

type Result struct {
	Days    int
	Samples []Sample
	Metrics map[string]float64
}

// Firm returns the samples of one firm in day order.
func (r *Result) Firm(id string) []Sample {
	var out []Sample
	for _, s := range r.Samples {
		if s.Firm == id {
			out = append(out, s)
		}
	}
	return out
}

// Series extracts one column of samples.
func Series(samples []Sample, field func(Sample) float64) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = field(s)
	}
	return out
}

func Workers(s Sample) float64 { return float64(s.Workers) }
func Wage(s Sample) float64    { return float64(s.Wage) }
func Target(s Sample) float64  { return float64(s.Target) }
func Profit(s Sample) float64  { return s.Profit }
