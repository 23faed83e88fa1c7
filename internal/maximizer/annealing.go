package maximizer

import (
	"math/rand"

	"github.com/san-kum/plantctl/internal/plant"
)

// Default annealing schedule.
const (
	DefaultInitialTemperature = 1.0
	DefaultTemperatureDecay   = 0.7
)

const (
	// below this temperature a climber standing at zero workers may stop
	stopTemperature = 0.1
	// above this temperature the climber never jumps back to its best memory
	recallTemperature = 0.2
)

// AnnealingOption configures an Annealing climber.
type AnnealingOption func(*Annealing)

// WithTemperature sets the starting temperature and how much of it is kept
// after every decision.
func WithTemperature(initial, decay float64) AnnealingOption {
	return func(a *Annealing) {
		if initial >= 0 {
			a.initial = initial
			a.temperature = initial
		}
		if decay > 0 && decay <= 1 {
			a.decay = decay
		}
	}
}

// WithReheating makes noisy profits, a remembered workforce earning
// something different from last time, restore the starting temperature.
func WithReheating(on bool) AnnealingOption {
	return func(a *Annealing) { a.reheat = on }
}

// Annealing is a hill climber that, with probability equal to its
// temperature, steps against the direction that raised profits. The
// temperature decays after every decision. A misstep ignores the profit
// memory so the climber can leave a local optimum.
type Annealing struct {
	*HillClimber
	rand *rand.Rand

	initial     float64
	decay       float64
	temperature float64
	reheat      bool
	misStep     bool
}

func NewAnnealing(u plant.Unit, r *rand.Rand, opts ...AnnealingOption) *Annealing {
	a := &Annealing{
		HillClimber: NewHillClimber(u),
		rand:        r,
		initial:     DefaultInitialTemperature,
		decay:       DefaultTemperatureDecay,
		temperature: DefaultInitialTemperature,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewAnnealingReacting is an Annealing climber that reheats on noise.
func NewAnnealingReacting(u plant.Unit, r *rand.Rand, opts ...AnnealingOption) *Annealing {
	return NewAnnealing(u, r, append([]AnnealingOption{WithReheating(true)}, opts...)...)
}

func (a *Annealing) Temperature() float64 { return a.temperature }

// MisStepped reports whether the last decision went against the profits.
func (a *Annealing) MisStepped() bool { return a.misStep }

func (a *Annealing) ChooseTarget(current, previous ProfitObservation) (int, error) {
	noisy := a.memory.Put(current.Target, current.Profit)
	if noisy && a.reheat {
		a.temperature = a.initial
	}

	a.misStep = a.rand.Float64() < a.temperature
	direction := a.direction(current, previous)
	if direction <= 0 && current.Target == 0 && a.temperature > stopTemperature {
		direction = 1
	}
	if a.misStep {
		switch {
		case direction != 0:
			direction = -direction
		case a.rand.Intn(2) == 0:
			direction = 1
		default:
			direction = -1
		}
	}

	target, err := a.move(current, previous, moveParams{
		direction:   direction,
		step:        a.step,
		noisy:       noisy,
		bounded:     true,
		checkMemory: !a.misStep,
		skipRecall:  a.temperature > recallTemperature,
	})
	a.temperature *= a.decay
	return target, err
}

// Reset also restores the starting temperature.
func (a *Annealing) Reset(u plant.Unit) {
	a.HillClimber.Reset(u)
	a.temperature = a.initial
	a.misStep = false
}
