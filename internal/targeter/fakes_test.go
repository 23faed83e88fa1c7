package targeter

import (
	"fmt"
	"testing"

	"github.com/san-kum/plantctl/internal/eventlog"
	"github.com/san-kum/plantctl/internal/plant"
	"github.com/san-kum/plantctl/internal/plantcontrol"
	"github.com/san-kum/plantctl/internal/sched"
	"github.com/stretchr/testify/require"
)

type fakeUnit struct {
	workers   []plant.Worker
	max       int
	listeners []plant.Listener
	nextID    int
}

func (u *fakeUnit) ID() string                   { return "unit" }
func (u *fakeUnit) NumberOfWorkers() int         { return len(u.workers) }
func (u *fakeUnit) MinimumWorkersNeeded() int    { return 0 }
func (u *fakeUnit) MaximumWorkersPossible() int  { return u.max }
func (u *fakeUnit) WeeklyFixedCosts() int64      { return 0 }
func (u *fakeUnit) Throughput(w int) float64     { return float64(w) }
func (u *fakeUnit) WeeklyInputNeeds(int) float64 { return 0 }

func (u *fakeUnit) Workers() []plant.Worker {
	out := make([]plant.Worker, len(u.workers))
	copy(out, u.workers)
	return out
}

func (u *fakeUnit) hire(wage int64) {
	u.nextID++
	before := len(u.workers)
	u.workers = append(u.workers, plant.Worker{ID: fmt.Sprintf("w%d", u.nextID), MinimumWage: wage})
	u.notify(before)
}

func (u *fakeUnit) RemoveWorker(w plant.Worker) bool {
	for i, have := range u.workers {
		if have.ID == w.ID {
			before := len(u.workers)
			u.workers = append(u.workers[:i], u.workers[i+1:]...)
			u.notify(before)
			return true
		}
	}
	return false
}

func (u *fakeUnit) notify(before int) {
	for _, l := range append([]plant.Listener(nil), u.listeners...) {
		l.ChangeInWorkforceEvent(u, len(u.workers), before)
	}
}

func (u *fakeUnit) AddListener(l plant.Listener) { u.listeners = append(u.listeners, l) }

func (u *fakeUnit) RemoveListener(l plant.Listener) bool {
	for i, have := range u.listeners {
		if have == l {
			u.listeners = append(u.listeners[:i], u.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// fakeMarket sells workers at the asks, cheapest first.
type fakeMarket struct {
	asks []int64
}

func (m *fakeMarket) GoodType() string { return "labor" }

func (m *fakeMarket) BestAsk() (int64, bool) {
	if len(m.asks) == 0 {
		return 0, false
	}
	return m.asks[0], true
}

func (m *fakeMarket) BestBid() (int64, string, bool)           { return 0, "", false }
func (m *fakeMarket) BestBidVisible() bool                     { return false }
func (m *fakeMarket) LastPrice() (int64, bool)                 { return 0, false }
func (m *fakeMarket) AddBidListener(plant.BidListener)         {}
func (m *fakeMarket) RemoveBidListener(plant.BidListener) bool { return false }

type fireCall struct {
	wage   int64
	target int
}

// fakeHR fills its quote in the Production phase when the cheapest ask is
// at or below it.
type fakeHR struct {
	s      sched.Scheduler
	unit   *fakeUnit
	market *fakeMarket
	fixed  bool

	quote    int64
	hasQuote bool
	buys     []int64
	fires    []fireCall
}

func (h *fakeHR) FirmID() string            { return "firm" }
func (h *fakeHR) Unit() plant.Unit          { return h.unit }
func (h *fakeHR) Market() plant.Market      { return h.market }
func (h *fakeHR) CancelQuote()              { h.hasQuote = false }
func (h *fakeHR) HasQuote() bool            { return h.hasQuote }
func (h *fakeHR) UpdateEmployeeWages(int64) {}
func (h *fakeHR) FixedPayStructure() bool   { return h.fixed }

func (h *fakeHR) UpdateOfferPrices(wage int64) {
	if h.hasQuote {
		h.quote = wage
	}
}

func (h *fakeHR) Buy(wage int64) {
	h.buys = append(h.buys, wage)
	h.quote = wage
	h.hasQuote = true
	h.s.ScheduleSoon(sched.Production, h.fill)
}

func (h *fakeHR) fill() {
	ask, ok := h.market.BestAsk()
	if !h.hasQuote || !ok || ask > h.quote {
		return
	}
	h.market.asks = h.market.asks[1:]
	h.hasQuote = false
	h.unit.hire(ask)
}

func (h *fakeHR) FireEveryoneAskingMoreThan(wage int64, target int) {
	h.fires = append(h.fires, fireCall{wage, target})
	for _, w := range SortByMinimumWage(h.unit.Workers()) {
		if h.unit.NumberOfWorkers() <= target {
			return
		}
		if w.MinimumWage > wage {
			h.unit.RemoveWorker(w)
		}
	}
}

type idleMaximizer struct{}

func (idleMaximizer) ChangeInWorkforceEvent(plant.Unit, int, int)        {}
func (idleMaximizer) ChangeInWageEvent(plant.Unit, int, int64)           {}
func (idleMaximizer) ChangeInMachineryEvent(plant.Unit, plant.Machinery) {}
func (idleMaximizer) PlantShutdownEvent(plant.Unit)                      {}
func (idleMaximizer) Start()                                             {}
func (idleMaximizer) TurnOff()                                           {}

// recorder is a decorator remembering every wage and canBuy change.
type recorder struct {
	*plantcontrol.Decorator
	wages  []int64
	canBuy []bool
}

func (r *recorder) SetCurrentWage(wage int64) {
	r.wages = append(r.wages, wage)
	r.Decorator.SetCurrentWage(wage)
}

func (r *recorder) SetCanBuy(canBuy bool) {
	r.canBuy = append(r.canBuy, canBuy)
	r.Decorator.SetCanBuy(canBuy)
}

type world struct {
	engine    *sched.Engine
	unit      *fakeUnit
	market    *fakeMarket
	hr        *fakeHR
	composite *plantcontrol.Composite
	control   *recorder
	log       *eventlog.Recorder
}

func newWorld(t *testing.T, fixed bool, asks []int64, employed ...int64) *world {
	t.Helper()
	e := sched.NewEngine(7)
	w := &world{
		engine: e,
		unit:   &fakeUnit{max: 10},
		market: &fakeMarket{asks: asks},
		log:    eventlog.NewRecorder(),
	}
	for _, wage := range employed {
		w.unit.nextID++
		w.unit.workers = append(w.unit.workers, plant.Worker{
			ID:          fmt.Sprintf("w%d", w.unit.nextID),
			MinimumWage: wage,
		})
	}
	w.hr = &fakeHR{s: e, unit: w.unit, market: w.market, fixed: fixed}
	w.composite = plantcontrol.NewComposite(w.hr)
	w.control = &recorder{Decorator: plantcontrol.NewDecorator(w.composite)}
	return w
}

func (w *world) bind(t *testing.T, tg plantcontrol.Targeter) {
	t.Helper()
	require.NoError(t, w.composite.Bind(tg, idleMaximizer{}))
	w.composite.Listen(w.control)
	w.control.Start()
}

func (w *world) minimumWages() []int64 {
	out := make([]int64, 0, len(w.unit.workers))
	for _, worker := range SortByMinimumWage(w.unit.workers) {
		out = append(out, worker.MinimumWage)
	}
	return out
}
