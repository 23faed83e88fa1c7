package maximizer

import (
	"math"

	"github.com/san-kum/plantctl/internal/control"
	"github.com/san-kum/plantctl/internal/plant"
)

// Marginal compares the marginal profit of one more and one less worker and
// moves towards the better one, staying put when both lose money.
type Marginal struct {
	unit      plant.Unit
	estimator Estimator
}

func NewMarginal(u plant.Unit, e Estimator) *Marginal {
	return &Marginal{unit: u, estimator: e}
}

func (m *Marginal) ChooseTarget(current, _ ProfitObservation) (int, error) {
	cur := current.Target
	up, down := math.Inf(-1), math.Inf(-1)
	var err error
	if cur < m.unit.MaximumWorkersPossible() {
		if up, err = MarginalProfits(m.estimator, cur, cur+1); err != nil {
			return cur, err
		}
	}
	if cur > m.unit.MinimumWorkersNeeded() {
		if down, err = MarginalProfits(m.estimator, cur, cur-1); err != nil {
			return cur, err
		}
	}

	switch {
	case up < 0 && down < 0:
		return cur, nil
	case up >= down:
		return cur + 1, nil
	default:
		return cur - 1, nil
	}
}

func (m *Marginal) Reset(u plant.Unit) { m.unit = u }

func (m *Marginal) TurnOff() {}

// Robust runs Marginal from the workforce the unit actually employs rather
// than the target, and applies the resulting one worker move to the target.
// A targeter lagging behind its target then cannot push Marginal into
// judging a workforce that never existed.
type Robust struct {
	*Marginal
}

func NewRobust(m *Marginal) *Robust { return &Robust{Marginal: m} }

func (r *Robust) ChooseTarget(current, previous ProfitObservation) (int, error) {
	employed := current
	employed.Target = r.unit.NumberOfWorkers()
	future, err := r.Marginal.ChooseTarget(employed, previous)
	if err != nil {
		return current.Target, err
	}
	return current.Target + future - employed.Target, nil
}

// DefaultMarginalProfitGains scale a marginal profit, a money amount, into
// workers.
var DefaultMarginalProfitGains = control.Gains{Kp: 0.0525, Ki: 0.0735, Kd: 0.0001}

// MarginalAndPID stays put like Marginal when one more and one less worker
// would both lose money. Otherwise it feeds the marginal profit of one more
// worker to a PID biased at the starting workforce.
type MarginalAndPID struct {
	unit      plant.Unit
	estimator Estimator
	pid       *control.PID
}

func NewMarginalAndPID(u plant.Unit, e Estimator, g control.Gains, workers int) *MarginalAndPID {
	return &MarginalAndPID{
		unit:      u,
		estimator: e,
		pid:       control.NewPIDFromGains(g, control.WithOffset(float64(workers))),
	}
}

func (m *MarginalAndPID) Controller() *control.PID { return m.pid }

func (m *MarginalAndPID) ChooseTarget(current, _ ProfitObservation) (int, error) {
	cur := current.Target
	up, down := math.Inf(-1), math.Inf(-1)
	var err error
	if cur < m.unit.MaximumWorkersPossible() {
		if up, err = MarginalProfits(m.estimator, cur, cur+1); err != nil {
			return cur, err
		}
	}
	if cur > m.unit.MinimumWorkersNeeded() {
		if down, err = MarginalProfits(m.estimator, cur, cur-1); err != nil {
			return cur, err
		}
	}
	if up < 0 && down < 0 {
		return cur, nil
	}

	residual := up
	if math.IsInf(up, -1) {
		// at capacity only shrinking is on the table
		residual = -down
	}
	m.pid.AdjustResidual(residual)
	target := int(math.Round(m.pid.CurrentMV()))
	return min(max(target, 0), m.unit.MaximumWorkersPossible()), nil
}

func (m *MarginalAndPID) Reset(u plant.Unit) {
	m.unit = u
	m.pid.SetOffset(float64(u.NumberOfWorkers()))
	m.pid.Reset()
}

func (m *MarginalAndPID) TurnOff() {}

// Efficiency bounds for MarginalPID.
const (
	MaxEfficiency = 10
	MinEfficiency = -0.5
)

// DefaultMarginalGains were tuned on a single firm selling to a linear
// demand.
var DefaultMarginalGains = control.Gains{Kp: 5.25, Ki: 7.35, Kd: 0.01}

// MarginalPIDOption configures a MarginalPID.
type MarginalPIDOption func(*MarginalPID)

func WithMarginalGains(g control.Gains) MarginalPIDOption {
	return func(m *MarginalPID) { m.gains = g }
}

// WithSigmoid toggles comparing efficiencies through Sigmoid. On by default.
func WithSigmoid(on bool) MarginalPIDOption {
	return func(m *MarginalPID) { m.sigmoid = on }
}

func WithTargetEfficiency(e float64) MarginalPIDOption {
	return func(m *MarginalPID) { m.targetEfficiency = e }
}

// MarginalPID drives the workforce with a PID on marginal efficiency, the
// revenue of one more worker's output over its cost, against a target
// efficiency of one.
type MarginalPID struct {
	unit      plant.Unit
	estimator Estimator
	gains     control.Gains
	pid       *control.PID

	targetEfficiency float64
	sigmoid          bool
	efficiency       float64
}

// NewMarginalPID biases the PID at workers so the first decision starts
// from the current workforce.
func NewMarginalPID(u plant.Unit, e Estimator, workers int, opts ...MarginalPIDOption) *MarginalPID {
	m := &MarginalPID{
		unit:             u,
		estimator:        e,
		gains:            DefaultMarginalGains,
		targetEfficiency: 1,
		sigmoid:          true,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.pid = control.NewPIDFromGains(m.gains,
		control.WithOffset(float64(workers)),
		control.WithWindupStop(false))
	return m
}

func (m *MarginalPID) Controller() *control.PID { return m.pid }

// Efficiency is the bounded efficiency of the last decision.
func (m *MarginalPID) Efficiency() float64 { return m.efficiency }

func (m *MarginalPID) TargetEfficiency() float64 { return m.targetEfficiency }

func (m *MarginalPID) SetTargetEfficiency(e float64) { m.targetEfficiency = e }

func (m *MarginalPID) ChooseTarget(current, _ ProfitObservation) (int, error) {
	cur := current.Target
	production := m.estimator.MarginalProduction(cur, cur+1)
	wages, err := m.estimator.WageCosts(cur, cur+1)
	if err != nil {
		return cur, err
	}
	inputs, err := m.estimator.InputCosts(cur, cur+1)
	if err != nil {
		return cur, err
	}
	revenue, err := m.estimator.MarginalRevenue(cur, cur+1, inputs.Total, wages.Total)
	if err != nil {
		return cur, err
	}

	m.efficiency = efficiency(revenue, wages.Marginal+inputs.Marginal, production)
	if m.sigmoid {
		m.pid.AdjustResidual(Sigmoid(m.efficiency) - Sigmoid(m.targetEfficiency))
	} else {
		m.pid.AdjustResidual(m.efficiency - m.targetEfficiency)
	}

	target := int(math.Round(m.pid.CurrentMV()))
	return min(max(target, 0), m.unit.MaximumWorkersPossible()), nil
}

// efficiency is per unit benefit over per unit cost, bounded to
// [MinEfficiency, MaxEfficiency]. Degenerate ratios saturate by the sign of
// the revenue.
func efficiency(revenue, cost, production float64) float64 {
	if production != 0 {
		revenue /= production
		cost /= production
	}
	e := revenue / cost
	if !control.Finite(e) {
		if revenue > 0 {
			return MaxEfficiency
		}
		return MinEfficiency
	}
	return min(max(e, MinEfficiency), MaxEfficiency)
}

// Reset re-biases the PID at the unit's current workforce.
func (m *MarginalPID) Reset(u plant.Unit) {
	m.unit = u
	m.pid.SetOffset(float64(u.NumberOfWorkers()))
	m.pid.Reset()
}

func (m *MarginalPID) TurnOff() {}

// ChangeIndicator reports a smoothed relative price change.
type ChangeIndicator interface {
	Change() float64
}

// LookAhead configures the outer loop of CascadeEfficiency. The zero value,
// LookAheadDisabled, keeps the target efficiency at one.
type LookAhead struct {
	Indicator ChangeIndicator
	Gains     control.Gains
}

// LookAheadDisabled turns CascadeEfficiency into a plain MarginalPID.
var LookAheadDisabled = LookAhead{}

func (l LookAhead) Enabled() bool { return l.Indicator != nil }

// CascadeEfficiency raises the target efficiency of a MarginalPID when a
// downstream price trends up and lowers it when the price trends down.
type CascadeEfficiency struct {
	*MarginalPID
	indicator ChangeIndicator
	lookAhead *control.PID
}

func NewCascadeEfficiency(m *MarginalPID, la LookAhead) *CascadeEfficiency {
	c := &CascadeEfficiency{MarginalPID: m}
	if la.Enabled() {
		c.indicator = la.Indicator
		c.lookAhead = control.NewPIDFromGains(la.Gains,
			control.WithCanGoNegative(true),
			control.WithWindupStop(false))
	}
	return c
}

// LookAhead returns the outer PID, nil when disabled.
func (c *CascadeEfficiency) LookAhead() *control.PID { return c.lookAhead }

func (c *CascadeEfficiency) ChooseTarget(current, previous ProfitObservation) (int, error) {
	if c.lookAhead != nil {
		c.lookAhead.Adjust(c.indicator.Change(), 0)
		c.SetTargetEfficiency(max(1+c.lookAhead.CurrentMV(), 0))
	}
	return c.MarginalPID.ChooseTarget(current, previous)
}
