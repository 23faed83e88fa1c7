package maximizer

import (
	"math"

	"github.com/san-kum/plantctl/internal/plant"
)

// Default gradient step scaling.
const (
	DefaultGradientGain = 0.1
	DefaultMaxStep      = 5
)

// GradientOption configures a Gradient climber.
type GradientOption func(*Gradient)

// WithGradientGain sets the workers moved per unit of profit slope.
func WithGradientGain(gain float64) GradientOption {
	return func(g *Gradient) {
		if gain > 0 {
			g.gain = gain
		}
	}
}

// WithMaxStep caps a single move.
func WithMaxStep(step int) GradientOption {
	return func(g *Gradient) {
		if step > 0 {
			g.maxStep = step
		}
	}
}

// Gradient is a hill climber whose step grows with the profit slope
// between the last two workforces, from one worker up to a cap.
type Gradient struct {
	*HillClimber
	gain    float64
	maxStep int
}

func NewGradient(u plant.Unit, opts ...GradientOption) *Gradient {
	g := &Gradient{
		HillClimber: NewHillClimber(u),
		gain:        DefaultGradientGain,
		maxStep:     DefaultMaxStep,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gradient) ChooseTarget(current, previous ProfitObservation) (int, error) {
	noisy := g.memory.Put(current.Target, current.Profit)
	return g.move(current, previous, moveParams{
		direction:   g.direction(current, previous),
		step:        g.stepSize(current, previous),
		noisy:       noisy,
		bounded:     true,
		checkMemory: true,
	})
}

// stepSize is gain·|Δprofit/Δtarget| rounded into [1, maxStep]. Without a
// change in workforce there is no slope and the step is one.
func (g *Gradient) stepSize(current, previous ProfitObservation) int {
	dt := current.Target - previous.Target
	if dt == 0 {
		return 1
	}
	slope := math.Abs((current.Profit - previous.Profit) / float64(dt))
	step := math.Round(g.gain * slope)
	if math.IsNaN(step) || step < 1 {
		return 1
	}
	return int(min(step, float64(g.maxStep)))
}
