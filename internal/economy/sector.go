package economy

import (
	"fmt"

	"github.com/san-kum/plantctl/internal/plant"
	"github.com/san-kum/plantctl/internal/sched"
)

// FirmSpec describes one firm of a sector.
type FirmSpec struct {
	ID             string
	Machinery      plant.Machinery
	Production     ProductionFunction
	InputPerWorker float64
	FixedPay       bool
	ProfitLag      int
}

// Sector is a set of firms sharing a labor pool and a goods market.
type Sector struct {
	ctx   *sched.Context
	Labor *LaborPool
	Goods *GoodsMarket
	Input *FixedPriceMarket

	firms   []*Firm
	started bool
}

// NewSector wires the markets. input may be nil when plants consume
// nothing.
func NewSector(ctx *sched.Context, labor *LaborPool, goods *GoodsMarket, input *FixedPriceMarket) *Sector {
	return &Sector{ctx: ctx, Labor: labor, Goods: goods, Input: input}
}

// AddFirm creates a firm with its plant and human resources.
func (s *Sector) AddFirm(spec FirmSpec) (*Firm, error) {
	if spec.ID == "" {
		return nil, fmt.Errorf("firm needs an id")
	}
	for _, f := range s.firms {
		if f.id == spec.ID {
			return nil, fmt.Errorf("duplicate firm %q", spec.ID)
		}
	}
	if spec.Machinery.MaxWorkers < spec.Machinery.MinWorkers || spec.Machinery.MaxWorkers <= 0 {
		return nil, fmt.Errorf("firm %q: invalid machinery %+v", spec.ID, spec.Machinery)
	}
	if spec.ProfitLag < 0 {
		return nil, fmt.Errorf("firm %q: negative profit lag", spec.ID)
	}
	p := NewPlant("plant-"+spec.ID, spec.Machinery, spec.Production, spec.InputPerWorker)
	f := &Firm{
		id:     spec.ID,
		plant:  p,
		hr:     NewHR(spec.ID, p, s.Labor, spec.FixedPay),
		sector: s,
		lag:    spec.ProfitLag,
	}
	s.firms = append(s.firms, f)
	return f, nil
}

func (s *Sector) Firms() []*Firm { return s.firms }

// Peers lists every plant of the sector with its reported profits.
func (s *Sector) Peers() []plant.Peer {
	peers := make([]plant.Peer, 0, len(s.firms))
	for _, f := range s.firms {
		peers = append(peers, plant.Peer{
			ID:      f.plant.ID(),
			Profit:  f.PlantProfits(f.plant),
			Workers: f.plant.NumberOfWorkers(),
		})
	}
	return peers
}

// Start schedules the daily routine. Later calls do nothing.
func (s *Sector) Start() {
	if s.started {
		return
	}
	s.started = true
	s.daily(sched.Dawn, func() {
		for _, f := range s.firms {
			f.hr.quits()
		}
	})
	s.daily(sched.Trade, func() { s.Labor.Clear() })
	s.daily(sched.Production, func() {
		inputPrice := 0.0
		if s.Input != nil {
			inputPrice = float64(s.Input.Price())
		}
		for _, f := range s.firms {
			f.produce(s.Goods, inputPrice)
		}
	})
	s.daily(sched.Cleanup, func() {
		revenue := s.Goods.Clear()
		for _, f := range s.firms {
			f.book(revenue[f.id])
		}
	})
}

func (s *Sector) daily(p sched.Phase, a sched.Action) {
	var repeat sched.Action
	repeat = func() {
		a()
		s.ctx.Scheduler.ScheduleTomorrow(p, repeat)
	}
	s.ctx.Scheduler.ScheduleSoon(p, repeat)
}
