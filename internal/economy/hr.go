package economy

import (
	"sort"

	"github.com/san-kum/plantctl/internal/plant"
)

// Buyer is what HR asks before re-posting a quote after a hire.
type Buyer interface {
	CanBuy() bool
	MaxPrice(goodType string) int64
}

// HR is the human resources department of one plant.
type HR struct {
	firmID   string
	plant    *Plant
	pool     *LaborPool
	fixedPay bool
	buyer    Buyer

	pay   int64
	wages map[string]int64
}

// NewHR registers itself to receive the plant's released workers, which go
// back to the pool.
func NewHR(firmID string, p *Plant, pool *LaborPool, fixedPay bool) *HR {
	h := &HR{
		firmID:   firmID,
		plant:    p,
		pool:     pool,
		fixedPay: fixedPay,
		wages:    map[string]int64{},
	}
	p.OnRelease(func(w plant.Worker) {
		delete(h.wages, w.ID)
		pool.Enroll(w)
	})
	return h
}

// Bind sets the control consulted after every hire.
func (h *HR) Bind(b Buyer) { h.buyer = b }

func (h *HR) FirmID() string { return h.firmID }

func (h *HR) Unit() plant.Unit { return h.plant }

func (h *HR) Market() plant.Market { return h.pool }

func (h *HR) Buy(wage int64) { h.pool.quote(h, wage) }

func (h *HR) CancelQuote() { h.pool.cancel(h) }

func (h *HR) HasQuote() bool { return h.pool.hasQuote(h) }

func (h *HR) UpdateOfferPrices(wage int64) {
	if h.HasQuote() {
		h.pool.quote(h, wage)
	}
}

// UpdateEmployeeWages sets the pay of new hires and, under fixed pay, of
// everyone already employed.
func (h *HR) UpdateEmployeeWages(wage int64) {
	h.pay = wage
	if h.fixedPay {
		for id := range h.wages {
			h.wages[id] = wage
		}
	}
	h.plant.notifyWage(wage)
}

func (h *HR) Pay() int64 { return h.pay }

func (h *HR) FixedPayStructure() bool { return h.fixedPay }

// FireEveryoneAskingMoreThan releases the most expensive workers first.
func (h *HR) FireEveryoneAskingMoreThan(wage int64, target int) {
	workers := h.plant.Workers()
	sort.SliceStable(workers, func(i, j int) bool {
		return workers[i].MinimumWage > workers[j].MinimumWage
	})
	for _, w := range workers {
		if h.plant.NumberOfWorkers() <= target || w.MinimumWage <= wage {
			return
		}
		h.plant.RemoveWorker(w)
	}
}

// WageBill is what the plant pays its workers per day.
func (h *HR) WageBill() int64 {
	var total int64
	for _, w := range h.wages {
		total += w
	}
	return total
}

// fill hires w at price. A full plant sends w back to the pool.
func (h *HR) fill(w plant.Worker, price int64) bool {
	wage := price
	if h.fixedPay && h.pay > 0 {
		wage = max(h.pay, price)
	}
	h.wages[w.ID] = wage
	if err := h.plant.Hire(w); err != nil {
		delete(h.wages, w.ID)
		h.pool.Enroll(w)
		return false
	}
	if h.buyer != nil && h.buyer.CanBuy() {
		h.Buy(h.buyer.MaxPrice(LaborGood))
	}
	return true
}

// quits lets go of workers paid below their minimum wage.
func (h *HR) quits() {
	for _, w := range h.plant.Workers() {
		if h.wages[w.ID] < w.MinimumWage {
			h.plant.RemoveWorker(w)
		}
	}
}
