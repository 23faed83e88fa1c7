package economy

import (
	"fmt"
	"sort"

	"github.com/san-kum/plantctl/internal/plant"
)

// LaborGood is the good type traded on the labor pool.
const LaborGood = "labor"

type quote struct {
	buyer *HR
	price int64
	seq   uint64
}

// LaborPool is the labor market: idle workers ask their minimum wage and
// human resources departments post one quote each. Clear matches the
// highest quote with the cheapest worker until no quote covers an ask.
type LaborPool struct {
	idle       []plant.Worker
	quotes     map[string]*quote
	listeners  []plant.BidListener
	bidVisible bool

	seq     uint64
	last    int64
	hasLast bool
	volume  int
}

func NewLaborPool(workers []plant.Worker) *LaborPool {
	p := &LaborPool{quotes: map[string]*quote{}, bidVisible: true}
	for _, w := range workers {
		p.Enroll(w)
	}
	return p
}

// UniformWorkers returns n workers whose minimum wages are evenly spread
// over [lo, hi].
func UniformWorkers(n int, lo, hi int64) []plant.Worker {
	workers := make([]plant.Worker, n)
	for i := range workers {
		wage := lo
		if n > 1 {
			wage = lo + (hi-lo)*int64(i)/int64(n-1)
		}
		workers[i] = plant.Worker{ID: fmt.Sprintf("w%04d", i), MinimumWage: wage}
	}
	return workers
}

// SetBidVisible hides or publishes the best bid.
func (p *LaborPool) SetBidVisible(v bool) { p.bidVisible = v }

// Enroll puts w among the idle workers.
func (p *LaborPool) Enroll(w plant.Worker) {
	i := sort.Search(len(p.idle), func(i int) bool {
		o := p.idle[i]
		return o.MinimumWage > w.MinimumWage || (o.MinimumWage == w.MinimumWage && o.ID > w.ID)
	})
	p.idle = append(p.idle, plant.Worker{})
	copy(p.idle[i+1:], p.idle[i:])
	p.idle[i] = w
}

func (p *LaborPool) Idle() int { return len(p.idle) }

// Volume is the number of workers hired since the pool was created.
func (p *LaborPool) Volume() int { return p.volume }

func (p *LaborPool) GoodType() string { return LaborGood }

func (p *LaborPool) BestAsk() (int64, bool) {
	if len(p.idle) == 0 {
		return 0, false
	}
	return p.idle[0].MinimumWage, true
}

func (p *LaborPool) bestQuote() *quote {
	var best *quote
	for _, q := range p.quotes {
		if best == nil || q.price > best.price || (q.price == best.price && q.seq < best.seq) {
			best = q
		}
	}
	return best
}

func (p *LaborPool) BestBid() (int64, string, bool) {
	q := p.bestQuote()
	if q == nil {
		return 0, "", false
	}
	return q.price, q.buyer.FirmID(), true
}

func (p *LaborPool) BestBidVisible() bool { return p.bidVisible }

func (p *LaborPool) LastPrice() (int64, bool) { return p.last, p.hasLast }

func (p *LaborPool) AddBidListener(l plant.BidListener) { p.listeners = append(p.listeners, l) }

func (p *LaborPool) RemoveBidListener(l plant.BidListener) bool {
	for i, have := range p.listeners {
		if have == l {
			p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (p *LaborPool) bidListeners() []plant.BidListener {
	return append([]plant.BidListener(nil), p.listeners...)
}

func (p *LaborPool) quote(b *HR, price int64) {
	p.seq++
	p.quotes[b.FirmID()] = &quote{buyer: b, price: price, seq: p.seq}
	for _, l := range p.bidListeners() {
		l.NewBidEvent(b.FirmID(), price)
	}
}

func (p *LaborPool) cancel(b *HR) {
	if _, ok := p.quotes[b.FirmID()]; !ok {
		return
	}
	delete(p.quotes, b.FirmID())
	for _, l := range p.bidListeners() {
		l.RemovedBidEvent(b.FirmID())
	}
}

func (p *LaborPool) hasQuote(b *HR) bool {
	_, ok := p.quotes[b.FirmID()]
	return ok
}

// Clear matches quotes with idle workers and returns the number of hires.
// Quotes posted by buyers while being filled take part in the same clearing.
func (p *LaborPool) Clear() int {
	hired := 0
	for len(p.idle) > 0 {
		q := p.bestQuote()
		if q == nil || q.price < p.idle[0].MinimumWage {
			break
		}
		w := p.idle[0]
		p.idle = p.idle[1:]
		delete(p.quotes, q.buyer.FirmID())

		for _, l := range p.bidListeners() {
			l.TradeEvent(q.buyer.FirmID(), w.ID, q.price)
		}
		if q.buyer.fill(w, q.price) {
			p.last, p.hasLast = q.price, true
			p.volume++
			hired++
		}
	}
	return hired
}
