package targeter

import (
	"sort"

	"github.com/san-kum/plantctl/internal/eventlog"
	"github.com/san-kum/plantctl/internal/plant"
	"github.com/san-kum/plantctl/internal/plantcontrol"
	"github.com/san-kum/plantctl/internal/sched"
)

// State is the phase of a MarketLook targeter.
type State int

const (
	Idle State = iota
	Hiring
	Firing
	AtTarget
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Hiring:
		return "hiring"
	case Firing:
		return "firing"
	case AtTarget:
		return "at_target"
	}
	return "unknown"
}

// maxPasses bounds how often one evaluation re-runs because its own actions
// changed the workforce.
const maxPasses = 16

// MarketLookOption configures a MarketLook.
type MarketLookOption func(*MarketLook)

// WithSpeed adds days between hiring re-checks.
func WithSpeed(days int) MarketLookOption {
	return func(t *MarketLook) {
		if days >= 0 {
			t.speed = days
		}
	}
}

// WithJitter adds up to days random days to every re-check delay.
func WithJitter(days int) MarketLookOption {
	return func(t *MarketLook) {
		if days >= 0 {
			t.jitter = days
		}
	}
}

// WithLogger sets the event sink.
func WithLogger(l eventlog.Logger) MarketLookOption {
	return func(t *MarketLook) { t.log = l }
}

// MarketLook hires at the lowest wage asked on the labor market and, when
// over target, cuts the wage to the minimum wage of the last worker it wants
// to keep.
type MarketLook struct {
	ctx     *sched.Context
	control plantcontrol.Control
	hr      plant.HumanResources
	unit    plant.Unit
	log     eventlog.Logger

	target int
	state  State
	speed  int
	jitter int

	active  bool
	pending bool
	acting  bool
	dirty   bool
}

// NewMarketLook builds a targeter acting through c, which should be the
// outermost control so decorators see every wage change.
func NewMarketLook(ctx *sched.Context, c plantcontrol.Control, opts ...MarketLookOption) *MarketLook {
	t := &MarketLook{
		ctx:     ctx,
		control: c,
		hr:      c.HR(),
		unit:    c.Unit(),
		log:     eventlog.Nop,
		jitter:  1,
		active:  true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *MarketLook) State() State { return t.state }

func (t *MarketLook) Target() int { return t.target }

// SetTarget records the target and immediately starts hiring or firing.
func (t *MarketLook) SetTarget(workers int) {
	t.target = workers
	t.evaluate()
}

// Start does nothing: the targeter only acts on targets and events.
func (t *MarketLook) Start() {}

// TurnOff is permanent. Pending re-checks become no-ops.
func (t *MarketLook) TurnOff() { t.active = false }

func (t *MarketLook) ChangeInWorkforceEvent(plant.Unit, int, int) { t.evaluate() }

func (t *MarketLook) ChangeInWageEvent(plant.Unit, int, int64) {}

func (t *MarketLook) ChangeInMachineryEvent(plant.Unit, plant.Machinery) { t.evaluate() }

func (t *MarketLook) PlantShutdownEvent(plant.Unit) {}

// evaluate hires or fires toward the target. Workforce events raised by our
// own hiring or firing are folded into another pass instead of recursing.
func (t *MarketLook) evaluate() {
	if !t.active {
		return
	}
	if t.acting {
		t.dirty = true
		return
	}
	t.acting = true
	defer func() { t.acting = false }()

	for pass := 0; pass < maxPasses; pass++ {
		t.dirty = false
		workers := t.unit.NumberOfWorkers()
		switch {
		case t.target > workers:
			t.hire()
		case t.target < workers:
			t.fire()
		default:
			t.reached()
		}
		if !t.dirty || !t.active {
			return
		}
	}
}

func (t *MarketLook) reached() {
	if t.state != AtTarget || t.control.CanBuy() {
		t.control.SetCanBuy(false)
	}
	t.state = AtTarget
}

func (t *MarketLook) hire() {
	t.state = Hiring
	lowest, ok := t.hr.Market().BestAsk()
	if !ok {
		t.logEvent(eventlog.NoOffer, "no worker on the market", map[string]any{
			"target":  t.target,
			"workers": t.unit.NumberOfWorkers(),
			"error":   plant.ErrNoOffer.Error(),
		})
		t.scheduleRetry()
		return
	}

	t.control.SetCurrentWage(lowest)
	if !t.control.CanBuy() {
		t.control.SetCanBuy(true)
		t.hr.Buy(t.control.MaxPrice(t.hr.Market().GoodType()))
	}
	t.logEvent(eventlog.HireAttempt, "hiring at lowest ask", map[string]any{
		"wage":   lowest,
		"target": t.target,
	})
	t.scheduleRetry()
}

func (t *MarketLook) scheduleRetry() {
	if t.pending || !t.active {
		return
	}
	t.pending = true
	delay := 1 + t.speed
	if t.jitter > 0 {
		delay += t.ctx.Rand.Intn(t.jitter + 1)
	}
	t.ctx.Scheduler.ScheduleInDays(sched.Trade, t.retry, delay)
}

func (t *MarketLook) retry() {
	t.pending = false
	t.evaluate()
}

func (t *MarketLook) fire() {
	t.state = Firing
	t.control.SetCanBuy(false)

	if t.target <= 0 {
		for _, w := range t.unit.Workers() {
			if t.unit.RemoveWorker(w) {
				t.lostWorker(w, "target is zero")
			}
		}
		t.state = AtTarget
		return
	}

	workers := SortByMinimumWage(t.unit.Workers())
	toFire := len(workers) - t.target
	if toFire <= 0 {
		return
	}
	newWage := workers[len(workers)-toFire-1].MinimumWage
	t.control.SetCurrentWage(newWage)

	if !t.hr.FixedPayStructure() {
		t.hr.FireEveryoneAskingMoreThan(newWage, t.target)
	}
	// workers tied at the cutoff wage are not asking more than it
	for _, w := range releaseAboveTarget(t.unit, workers, t.target) {
		t.lostWorker(w, "over target")
	}
	if t.unit.NumberOfWorkers() == t.target {
		t.state = AtTarget
	}
}

func (t *MarketLook) lostWorker(w plant.Worker, why string) {
	t.logEvent(eventlog.LostWorker, why, map[string]any{
		"worker":       w.ID,
		"minimum_wage": w.MinimumWage,
	})
}

func (t *MarketLook) logEvent(kind eventlog.Kind, msg string, fields map[string]any) {
	t.log.Log(eventlog.Event{
		Day:     t.ctx.Now(),
		Source:  "targeter:" + t.unit.ID(),
		Kind:    kind,
		Message: msg,
		Fields:  fields,
	})
}

// SortByMinimumWage returns a copy of workers sorted by ascending minimum
// wage. Ties keep their original order.
func SortByMinimumWage(workers []plant.Worker) []plant.Worker {
	sorted := make([]plant.Worker, len(workers))
	copy(sorted, workers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinimumWage < sorted[j].MinimumWage
	})
	return sorted
}
