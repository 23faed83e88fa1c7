package maximizer

import (
	"math"

	"github.com/san-kum/plantctl/internal/control"
	"github.com/san-kum/plantctl/internal/plant"
)

// DefaultClimberGains drive PIDClimber.
var DefaultClimberGains = control.Gains{Kp: 0.5, Ki: 0.3, Kd: 0.01}

// PIDClimber sets the target with a PID on the observed efficiency of the
// last move, the change in revenues over the change in costs, against an
// efficiency of one. Unlike Marginal it needs no estimator: it only reads
// the two observations.
type PIDClimber struct {
	unit       plant.Unit
	pid        *control.PID
	efficiency float64
}

// NewPIDClimber biases the PID one worker above workers. Reset re-biases
// it the same way.
func NewPIDClimber(u plant.Unit, g control.Gains, workers int) *PIDClimber {
	return &PIDClimber{
		unit:       u,
		pid:        control.NewPIDFromGains(g, control.WithOffset(float64(workers+1))),
		efficiency: 1,
	}
}

func (p *PIDClimber) Controller() *control.PID { return p.pid }

// Efficiency is the last observed efficiency. It starts neutral and only
// changes when the workforce did.
func (p *PIDClimber) Efficiency() float64 { return p.efficiency }

func (p *PIDClimber) ChooseTarget(current, previous ProfitObservation) (int, error) {
	if current.Target != previous.Target {
		if dc := current.Cost - previous.Cost; dc != 0 {
			p.efficiency = min(max((current.Revenue-previous.Revenue)/dc, MinEfficiency), MaxEfficiency)
		}
	}
	p.pid.AdjustResidual(p.efficiency - 1)
	target := int(math.Round(p.pid.CurrentMV()))
	return min(max(target, 0), p.unit.MaximumWorkersPossible()), nil
}

func (p *PIDClimber) Reset(u plant.Unit) {
	p.unit = u
	p.pid.SetOffset(float64(u.NumberOfWorkers() + 1))
	p.pid.Reset()
	p.efficiency = 1
}

func (p *PIDClimber) TurnOff() {}
