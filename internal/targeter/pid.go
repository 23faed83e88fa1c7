package targeter

import (
	"math"

	"github.com/san-kum/plantctl/internal/control"
	"github.com/san-kum/plantctl/internal/eventlog"
	"github.com/san-kum/plantctl/internal/plant"
	"github.com/san-kum/plantctl/internal/plantcontrol"
	"github.com/san-kum/plantctl/internal/sched"
)

// DefaultPIDGains are used when a PID targeter is built without gains.
var DefaultPIDGains = control.Gains{Kp: 0.8, Ki: 0.16, Kd: -0.08}

// Default WithCascade gains.
var (
	DefaultCascadeMaster = control.Gains{Kp: 0.5}
	DefaultCascadeSlave  = control.Gains{Kp: 1, Ki: 0.5}
)

// overTargetSlack is how far above target the workforce may sit before a
// PID targeter stops re-posting quotes.
const overTargetSlack = 1.2

// PIDOption configures a PID targeter.
type PIDOption func(*PID)

// WithGains replaces DefaultPIDGains.
func WithGains(g control.Gains) PIDOption {
	return func(t *PID) { t.gains = g }
}

// WithQuickFiring makes the targeter fire immediately when over target
// instead of waiting for the wage to push workers out.
func WithQuickFiring(on bool) PIDOption {
	return func(t *PID) { t.quickFiring = on }
}

// WithPIDSpeed sets the adjustment speed passed to control.Reschedule.
func WithPIDSpeed(speed float64) PIDOption {
	return func(t *PID) { t.speed = speed }
}

// WithCascade sets the wage through a cascade instead of a single loop. The
// master turns the workforce error into a wanted daily change in workers
// and the slave turns the miss on that change into the wage. Quick firing
// still moves the slave offset.
func WithCascade(master, slave control.Gains) PIDOption {
	return func(t *PID) {
		t.master, t.slave = master, slave
		t.cascaded = true
	}
}

// WithPIDLogger sets the event sink.
func WithPIDLogger(l eventlog.Logger) PIDOption {
	return func(t *PID) { t.log = l }
}

// PID sets the wage as the manipulated variable of a PID whose error is
// target minus workforce. It adjusts once per AdjustPrices phase.
type PID struct {
	ctx     *sched.Context
	control plantcontrol.Control
	hr      plant.HumanResources
	unit    plant.Unit
	log     eventlog.Logger

	gains       control.Gains
	speed       float64
	quickFiring bool
	pid         *control.PID

	cascaded      bool
	master, slave control.Gains
	cascade       *control.Cascade
	lastWorkers   int

	target int
	active bool
}

func NewPID(ctx *sched.Context, c plantcontrol.Control, opts ...PIDOption) *PID {
	t := &PID{
		ctx:         ctx,
		control:     c,
		hr:          c.HR(),
		unit:        c.Unit(),
		log:         eventlog.Nop,
		gains:       DefaultPIDGains,
		quickFiring: true,
		active:      true,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.pid = control.NewPIDFromGains(t.gains, control.WithSpeed(t.speed))
	if t.cascaded {
		t.cascade = control.NewCascade(t.master, t.slave, control.WithSpeed(t.speed))
	}
	return t
}

func (t *PID) Controller() *control.PID { return t.pid }

// Cascade is nil unless the targeter was built WithCascade.
func (t *PID) Cascade() *control.Cascade { return t.cascade }

func (t *PID) setOffset(offset float64) {
	t.pid.SetOffset(offset)
	if t.cascade != nil {
		t.cascade.SetOffset(offset)
	}
}

// adjust runs the wage loop and returns the proposed wage.
func (t *PID) adjust() float64 {
	workers := t.unit.NumberOfWorkers()
	if t.cascade == nil {
		t.pid.Adjust(float64(t.target), float64(workers))
		return t.pid.CurrentMV()
	}
	flow := float64(workers - t.lastWorkers)
	t.lastWorkers = workers
	t.cascade.Adjust(float64(t.target), float64(workers), flow)
	return t.cascade.CurrentMV()
}

func (t *PID) speedNow() float64 {
	if t.cascade != nil {
		return t.cascade.Speed()
	}
	return t.pid.Speed()
}

func (t *PID) Target() int { return t.target }

func (t *PID) SetTarget(workers int) { t.target = workers }

func (t *PID) Start() {
	t.lastWorkers = t.unit.NumberOfWorkers()
	t.ctx.Scheduler.ScheduleSoon(sched.AdjustPrices, t.step)
}

func (t *PID) TurnOff() { t.active = false }

func (t *PID) step() {
	if !t.active {
		return
	}
	goodType := t.hr.Market().GoodType()
	oldWage := t.control.MaxPrice(goodType)

	if t.quickFiring && t.target < t.unit.NumberOfWorkers() {
		if t.target == 0 {
			t.setOffset(0)
			for _, w := range t.unit.Workers() {
				if t.unit.RemoveWorker(w) {
					t.logEvent(eventlog.LostWorker, "target is zero", map[string]any{"worker": w.ID})
				}
			}
		} else {
			t.quickFire()
		}
	}

	newWage := int64(math.Round(t.adjust()))
	if newWage != oldWage && newWage >= 0 {
		t.control.SetCurrentWage(newWage)
		t.logEvent(eventlog.ChangeInPolicy, "wage adjusted", map[string]any{
			"old_wage": oldWage,
			"new_wage": newWage,
			"target":   t.target,
			"workers":  t.unit.NumberOfWorkers(),
		})
	}
	control.Reschedule(t.ctx.Scheduler, sched.AdjustPrices, t.step, t.speedNow())
}

// quickFire cuts the wage to the minimum wage of the last worker kept and
// moves the PID offset there so the integral does not fight the cut.
func (t *PID) quickFire() {
	workers := SortByMinimumWage(t.unit.Workers())
	toFire := len(workers) - t.target
	if toFire <= 0 {
		return
	}
	newWage := workers[len(workers)-toFire-1].MinimumWage
	t.setOffset(float64(newWage))
	t.control.SetCurrentWage(newWage)
	if !t.hr.FixedPayStructure() {
		t.hr.FireEveryoneAskingMoreThan(newWage, t.target)
	}
	for _, w := range releaseAboveTarget(t.unit, workers, t.target) {
		t.logEvent(eventlog.LostWorker, "over target", map[string]any{
			"worker":       w.ID,
			"minimum_wage": w.MinimumWage,
		})
	}
}

// ChangeInWorkforceEvent re-posts a quote after a hire unless the unit is
// already well above target.
func (t *PID) ChangeInWorkforceEvent(_ plant.Unit, now, _ int) {
	if !t.active {
		return
	}
	if t.control.CanBuy() && float64(now) <= float64(t.target)*overTargetSlack {
		t.hr.Buy(t.control.MaxPrice(t.hr.Market().GoodType()))
	}
}

func (t *PID) ChangeInWageEvent(plant.Unit, int, int64) {}

func (t *PID) ChangeInMachineryEvent(u plant.Unit, _ plant.Machinery) {
	if !t.active {
		return
	}
	if u.NumberOfWorkers() < u.MaximumWorkersPossible() && t.control.CanBuy() {
		t.hr.Buy(t.control.MaxPrice(t.hr.Market().GoodType()))
	}
}

func (t *PID) PlantShutdownEvent(plant.Unit) {}

func (t *PID) logEvent(kind eventlog.Kind, msg string, fields map[string]any) {
	t.log.Log(eventlog.Event{
		Day:     t.ctx.Now(),
		Source:  "targeter:" + t.unit.ID(),
		Kind:    kind,
		Message: msg,
		Fields:  fields,
	})
}
