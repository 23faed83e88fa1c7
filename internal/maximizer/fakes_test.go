package maximizer

import (
	"github.com/san-kum/plantctl/internal/plant"
	"github.com/san-kum/plantctl/internal/plantcontrol"
)

type fakeUnit struct {
	workers    int
	min, max   int
	fixedCosts int64
	perWorker  float64
}

func newFakeUnit(lo, hi int, fixedCosts int64) *fakeUnit {
	return &fakeUnit{min: lo, max: hi, fixedCosts: fixedCosts, perWorker: 7}
}

func (u *fakeUnit) ID() string                  { return "unit" }
func (u *fakeUnit) NumberOfWorkers() int        { return u.workers }
func (u *fakeUnit) Workers() []plant.Worker     { return nil }
func (u *fakeUnit) MinimumWorkersNeeded() int   { return u.min }
func (u *fakeUnit) MaximumWorkersPossible() int { return u.max }
func (u *fakeUnit) WeeklyFixedCosts() int64     { return u.fixedCosts }
func (u *fakeUnit) Throughput(w int) float64    { return u.perWorker * float64(w) }
func (u *fakeUnit) WeeklyInputNeeds(w int) float64 {
	return 2 * float64(w)
}
func (u *fakeUnit) RemoveWorker(plant.Worker) bool     { return false }
func (u *fakeUnit) AddListener(plant.Listener)         {}
func (u *fakeUnit) RemoveListener(plant.Listener) bool { return false }

type fakeFirm struct {
	unit   *fakeUnit
	profit func(workers int) float64
	peers  []plant.Peer
}

func (f *fakeFirm) ID() string                      { return "firm" }
func (f *fakeFirm) PlantProfits(plant.Unit) float64 { return f.profit(f.unit.workers) }
func (f *fakeFirm) PlantRevenues(plant.Unit) float64 {
	return f.profit(f.unit.workers) + 1
}
func (f *fakeFirm) PlantCosts(plant.Unit) float64 { return 1 }
func (f *fakeFirm) Peers() []plant.Peer           { return f.peers }

// instantControl reaches every target at once.
type instantControl struct {
	plantcontrol.Control
	unit    *fakeUnit
	target  int
	targets []int
	instant bool
}

func (c *instantControl) Unit() plant.Unit { return c.unit }
func (c *instantControl) Target() int      { return c.target }

func (c *instantControl) SetTarget(workers int) {
	c.target = workers
	c.targets = append(c.targets, workers)
	if c.instant {
		c.unit.workers = workers
	}
}

type choice struct {
	current, previous ProfitObservation
}

// scriptedAlgorithm records its inputs and answers with next.
type scriptedAlgorithm struct {
	next    func(current ProfitObservation) (int, error)
	choices []choice
	resets  int
	off     bool
}

func (a *scriptedAlgorithm) ChooseTarget(current, previous ProfitObservation) (int, error) {
	a.choices = append(a.choices, choice{current, previous})
	return a.next(current)
}

func (a *scriptedAlgorithm) Reset(plant.Unit) { a.resets++ }
func (a *scriptedAlgorithm) TurnOff()         { a.off = true }

type fakeEstimator struct {
	production             float64
	wageUp, wageDown       float64
	inputUp, inputDown     float64
	revenueUp, revenueDown float64
	err                    error
}

func (e *fakeEstimator) MarginalProduction(current, target int) float64 {
	if target > current {
		return e.production
	}
	return -e.production
}

func (e *fakeEstimator) WageCosts(current, target int) (CostEstimate, error) {
	if e.err != nil {
		return CostEstimate{}, e.err
	}
	if target > current {
		return CostEstimate{Marginal: e.wageUp, Total: e.wageUp}, nil
	}
	return CostEstimate{Marginal: e.wageDown}, nil
}

func (e *fakeEstimator) InputCosts(current, target int) (CostEstimate, error) {
	if target > current {
		return CostEstimate{Marginal: e.inputUp, Total: e.inputUp}, nil
	}
	return CostEstimate{Marginal: e.inputDown}, nil
}

func (e *fakeEstimator) MarginalRevenue(current, target int, _, _ float64) (float64, error) {
	if target > current {
		return e.revenueUp, nil
	}
	return e.revenueDown, nil
}

type fakeMarket struct {
	plant.Market
	last int64
}

func (m *fakeMarket) LastPrice() (int64, bool) { return m.last, m.last > 0 }

type fixedChange float64

func (c fixedChange) Change() float64 { return float64(c) }

type fakePurchases struct{ up, down, same float64 }

func (p fakePurchases) PurchasePriceWhenIncreasing() float64 { return p.up }
func (p fakePurchases) PurchasePriceWhenDecreasing() float64 { return p.down }
func (p fakePurchases) PurchasePriceWhenUnchanged() float64  { return p.same }

type fakeSales struct{ same, up, down float64 }

func (s fakeSales) SalePriceWhenUnchanged() float64               { return s.same }
func (s fakeSales) SalePriceAfterIncreasing(float64, int) float64 { return s.up }
func (s fakeSales) SalePriceAfterDecreasing(float64, int) float64 { return s.down }
