package maximizer

import (
	"errors"

	"github.com/san-kum/plantctl/internal/eventlog"
	"github.com/san-kum/plantctl/internal/plant"
	"github.com/san-kum/plantctl/internal/plantcontrol"
	"github.com/san-kum/plantctl/internal/sched"
)

// LoopState is the phase of the slow loop.
type LoopState int

const (
	WaitingForTarget LoopState = iota
	Observing
	Adjusting
)

func (s LoopState) String() string {
	switch s {
	case WaitingForTarget:
		return "waiting_for_target"
	case Observing:
		return "observing"
	case Adjusting:
		return "adjusting"
	}
	return "unknown"
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithObservationWeeks sets how many weeks profits are observed at a reached
// target before the algorithm is consulted.
func WithObservationWeeks(weeks int) LoopOption {
	return func(l *Loop) {
		if weeks >= 0 {
			l.weeks = weeks
		}
	}
}

// WithCheckInterval sets the mean number of days between checks.
func WithCheckInterval(days int) LoopOption {
	return func(l *Loop) {
		if days > 0 {
			l.interval = days
		}
	}
}

// WithJitter sets the maximum random deviation from the check interval.
func WithJitter(days int) LoopOption {
	return func(l *Loop) {
		if days >= 0 {
			l.jitter = days
		}
	}
}

// WithRandomSpeed replaces fixed delays with daily coin flips of the same
// mean.
func WithRandomSpeed(on bool) LoopOption {
	return func(l *Loop) { l.randomSpeed = on }
}

// WithPeriodic makes every check consult the algorithm without waiting for
// the target to be reached or observing it first. Only an empty unit still
// short of its target is given another day.
func WithPeriodic(on bool) LoopOption {
	return func(l *Loop) { l.periodic = on }
}

func WithLogger(log eventlog.Logger) LoopOption {
	return func(l *Loop) { l.log = log }
}

// Loop sets a target, waits for the targeter to reach it, observes the
// profits it makes and then asks the algorithm where to go next.
type Loop struct {
	ctx       *sched.Context
	control   plantcontrol.Control
	unit      plant.Unit
	firm      plant.Firm
	algorithm Algorithm
	log       eventlog.Logger

	weeks       int
	interval    int
	jitter      int
	randomSpeed bool
	periodic    bool

	state      LoopState
	previous   ProfitObservation
	cycle      int
	generation int
	active     bool
}

func NewLoop(ctx *sched.Context, c plantcontrol.Control, firm plant.Firm, a Algorithm, opts ...LoopOption) *Loop {
	l := &Loop{
		ctx:       ctx,
		control:   c,
		unit:      c.Unit(),
		firm:      firm,
		algorithm: a,
		log:       eventlog.Nop,
		weeks:     3,
		interval:  7,
		jitter:    3,
		active:    true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loop) State() LoopState { return l.state }

func (l *Loop) Algorithm() Algorithm { return l.algorithm }

// Previous is the observation the next decision will compare against.
func (l *Loop) Previous() ProfitObservation { return l.previous }

// Start aims at one worker and schedules the first check. Calling it again
// abandons checks scheduled by earlier calls.
func (l *Loop) Start() {
	if !l.active {
		return
	}
	l.generation++
	l.state = WaitingForTarget
	l.previous = ProfitObservation{Profit: -float64(l.unit.WeeklyFixedCosts())}
	l.control.SetTarget(ClampTarget(1, l.unit))
	l.ctx.Scheduler.ScheduleSoon(sched.Think, l.callback())
}

func (l *Loop) callback() sched.Action {
	generation := l.generation
	return func() {
		if !l.active || generation != l.generation {
			return
		}
		l.check()
	}
}

func (l *Loop) reschedule(days int) {
	if !l.active {
		return
	}
	days = max(days, 1)
	if l.randomSpeed {
		l.ctx.Scheduler.ScheduleWithProbability(sched.Think, l.callback(), 1/float64(days))
		return
	}
	l.ctx.Scheduler.ScheduleInDays(sched.Think, l.callback(), days)
}

func (l *Loop) nextCheck() int {
	next := l.interval
	if l.jitter > 0 {
		next += l.ctx.Rand.Intn(2*l.jitter+1) - l.jitter
	}
	return next
}

func (l *Loop) check() {
	next := l.nextCheck()
	workers := l.unit.NumberOfWorkers()
	target := l.control.Target()

	if l.periodic {
		if workers == 0 && target != 0 {
			l.reschedule(1)
			return
		}
	} else if workers != target {
		l.state = WaitingForTarget
		l.reschedule(next)
		return
	}
	if l.state == WaitingForTarget && !l.periodic {
		l.state = Observing
		l.reschedule(next + l.weeks*7)
		return
	}

	l.state = Adjusting
	current := ProfitObservation{
		Profit:  l.firm.PlantProfits(l.unit),
		Revenue: l.firm.PlantRevenues(l.unit),
		Cost:    l.firm.PlantCosts(l.unit),
		Target:  target,
		Cycle:   l.cycle,
	}

	future, err := l.algorithm.ChooseTarget(current, l.previous)
	switch {
	case errors.Is(err, ErrInsufficientInformation):
		l.logEvent(eventlog.MaximizerWaiting, "not enough information, observing longer", map[string]any{
			"target": target,
			"error":  err.Error(),
		})
		l.reschedule(next + l.weeks*7)
	case err != nil:
		l.logEvent(eventlog.InvariantViolation, "algorithm failed, target unchanged", map[string]any{
			"target": target,
			"error":  err.Error(),
		})
		l.state = WaitingForTarget
		l.reschedule(next)
	default:
		future = ClampTarget(future, l.unit)
		l.logEvent(eventlog.ChangeInTarget, "new workforce target", map[string]any{
			"old_target": target,
			"new_target": future,
			"profit":     current.Profit,
			"old_profit": l.previous.Profit,
		})
		l.previous = current
		l.cycle++
		l.state = WaitingForTarget
		l.control.SetTarget(future)
		l.reschedule(next)
	}
}

func (l *Loop) logEvent(kind eventlog.Kind, msg string, fields map[string]any) {
	l.log.Log(eventlog.Event{
		Day:     l.ctx.Now(),
		Source:  "maximizer:" + l.unit.ID(),
		Kind:    kind,
		Message: msg,
		Fields:  fields,
	})
}

// TurnOff is permanent and also turns the algorithm off.
func (l *Loop) TurnOff() {
	if !l.active {
		return
	}
	l.active = false
	l.algorithm.TurnOff()
}

func (l *Loop) ChangeInWorkforceEvent(plant.Unit, int, int) {}

func (l *Loop) ChangeInWageEvent(plant.Unit, int, int64) {}

// ChangeInMachineryEvent forgets what the algorithm learned and starts over.
func (l *Loop) ChangeInMachineryEvent(u plant.Unit, _ plant.Machinery) {
	if !l.active {
		return
	}
	l.algorithm.Reset(u)
	l.Start()
}

func (l *Loop) PlantShutdownEvent(plant.Unit) { l.TurnOff() }
