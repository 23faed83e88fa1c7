package maximizer

import (
	"fmt"

	"github.com/san-kum/plantctl/internal/plant"
	"github.com/san-kum/plantctl/internal/plantcontrol"
)

// HillClimberOption configures a HillClimber.
type HillClimberOption func(*HillClimber)

// WithStepSize sets how many workers a single move adds or removes.
func WithStepSize(step int) HillClimberOption {
	return func(h *HillClimber) {
		if step > 0 {
			h.step = step
		}
	}
}

// HillClimber moves the target one step in the direction that raised
// profits last time. A memory of past profits vetoes moves towards
// workforces that already did worse and, when results turn out noisy, sends
// the climber back to the best workforce it remembers.
type HillClimber struct {
	unit   plant.Unit
	memory *ProfitMemory
	step   int

	oldDirection int
}

func NewHillClimber(u plant.Unit, opts ...HillClimberOption) *HillClimber {
	h := &HillClimber{
		unit:         u,
		memory:       NewProfitMemory(float64(u.WeeklyFixedCosts())),
		step:         1,
		oldDirection: 1,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *HillClimber) Memory() *ProfitMemory { return h.memory }

func (h *HillClimber) ChooseTarget(current, previous ProfitObservation) (int, error) {
	noisy := h.memory.Put(current.Target, current.Profit)
	direction := h.direction(current, previous)
	return h.move(current, previous, moveParams{
		direction:   direction,
		step:        h.step,
		noisy:       noisy,
		bounded:     true,
		checkMemory: true,
	})
}

// direction is sign(Δprofit)·sign(Δtarget). Unchanged profits keep the
// previous direction.
func (h *HillClimber) direction(current, previous ProfitObservation) int {
	profits := sign(current.Profit - previous.Profit)
	if profits == 0 {
		return h.oldDirection
	}
	return profits * signInt(current.Target-previous.Target)
}

type moveParams struct {
	direction   int
	step        int
	noisy       bool
	bounded     bool
	checkMemory bool
	// skipRecall keeps a standing climber in place instead of sending it
	// to the best workforce in memory.
	skipRecall bool
}

func (h *HillClimber) move(current, previous ProfitObservation, p moveParams) (int, error) {
	if p.direction < -1 || p.direction > 1 {
		return current.Target, fmt.Errorf("hill climber direction %d: %w",
			p.direction, plantcontrol.ErrInvariantViolation)
	}
	h.oldDirection = p.direction

	future := current.Target + p.step*p.direction
	if future == current.Target {
		if !p.skipRecall && (p.noisy || (previous.Target == current.Target && previous.Profit != current.Profit)) {
			if best, ok := h.memory.Best(); ok {
				return best, nil
			}
		}
		return future, nil
	}

	if p.bounded {
		future = max(future, 0)
		future = min(future, h.unit.MaximumWorkersPossible())
		if future > 0 {
			future = max(future, h.unit.MinimumWorkersNeeded())
		}
	}
	if !p.checkMemory || h.memory.Accepts(future, current.Profit) {
		return future, nil
	}
	return current.Target, nil
}

// Reset forgets everything learned under the old machinery.
func (h *HillClimber) Reset(u plant.Unit) {
	h.unit = u
	h.memory.Seed(float64(u.WeeklyFixedCosts()))
}

func (h *HillClimber) TurnOff() {
	h.memory.Clear()
}

// AlwaysMoving uses the hill climbing direction rule with a step of one and
// no memory. It never proposes the current target: a zero direction keeps
// the last one and a move pinned at a bound turns around.
type AlwaysMoving struct {
	unit         plant.Unit
	oldDirection int
}

func NewAlwaysMoving(u plant.Unit) *AlwaysMoving {
	return &AlwaysMoving{unit: u, oldDirection: 1}
}

func (a *AlwaysMoving) ChooseTarget(current, previous ProfitObservation) (int, error) {
	direction := sign(current.Profit-previous.Profit) * signInt(current.Target-previous.Target)
	if direction == 0 {
		direction = a.oldDirection
	}

	future := a.bound(current.Target + direction)
	if future == current.Target {
		direction = -direction
		future = a.bound(current.Target + direction)
	}
	a.oldDirection = direction
	return future, nil
}

func (a *AlwaysMoving) bound(target int) int {
	target = min(max(target, 0), a.unit.MaximumWorkersPossible())
	if target > 0 {
		target = max(target, a.unit.MinimumWorkersNeeded())
	}
	return target
}

func (a *AlwaysMoving) Reset(u plant.Unit) {
	a.unit = u
	a.oldDirection = 1
}

func (a *AlwaysMoving) TurnOff() {}
