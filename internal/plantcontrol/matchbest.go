package plantcontrol

import (
	"fmt"

	"github.com/san-kum/plantctl/internal/plant"
)

// MatchBest matches the best wage bid of competitors on the labor market.
// While matching a better bid it stops buying; once the wage asked by the
// inner loops is the best again, their buying flag is restored.
type MatchBest struct {
	*Decorator
	market plant.Market
	firmID string

	bestMarketOffer int64
	originalOffer   int64
	originalCanBuy  bool
	off             bool
}

// NewMatchBest needs a fixed pay structure and a market that publishes its
// best bid.
func NewMatchBest(inner Control) (*MatchBest, error) {
	hr := inner.HR()
	if !hr.FixedPayStructure() {
		return nil, fmt.Errorf("match best needs a fixed pay structure: %w", ErrInconsistentConfiguration)
	}
	market := hr.Market()
	if !market.BestBidVisible() {
		return nil, fmt.Errorf("match best needs a visible best bid: %w", ErrInconsistentConfiguration)
	}

	m := &MatchBest{
		Decorator:       NewDecorator(inner),
		market:          market,
		firmID:          hr.FirmID(),
		bestMarketOffer: -1,
		originalOffer:   inner.CurrentWage(),
		originalCanBuy:  true,
	}
	market.AddBidListener(m)
	return m, nil
}

// MatchBestDecorator adapts NewMatchBest to DecoratorFunc.
func MatchBestDecorator(inner Control) (Control, error) {
	return NewMatchBest(inner)
}

func (m *MatchBest) SetCurrentWage(wage int64) {
	m.originalOffer = wage
	m.updateCanBuy()
	m.updateCurrentWage()
}

func (m *MatchBest) SetCanBuy(canBuy bool) {
	m.originalCanBuy = canBuy
	m.updateCanBuy()
}

// BestMarketOffer is the competitor bid being tracked, -1 when none.
func (m *MatchBest) BestMarketOffer() int64 { return m.bestMarketOffer }

func (m *MatchBest) matching() bool { return m.originalOffer < m.bestMarketOffer }

func (m *MatchBest) updateCurrentWage() {
	if m.matching() {
		m.Inner().SetCurrentWage(m.bestMarketOffer)
		return
	}
	m.Inner().SetCurrentWage(m.originalOffer)
}

func (m *MatchBest) updateCanBuy() {
	if m.matching() {
		m.Inner().SetCanBuy(false)
		return
	}
	m.Inner().SetCanBuy(m.originalCanBuy)
}

func (m *MatchBest) updateBestMarketOffer() {
	price, buyer, ok := m.market.BestBid()
	switch {
	case !ok:
		m.bestMarketOffer = -1
	case buyer != m.firmID:
		m.bestMarketOffer = price
	}
}

func (m *MatchBest) NewBidEvent(buyer string, price int64) {
	if m.off {
		return
	}
	m.updateBestMarketOffer()
	m.updateCanBuy()
	m.updateCurrentWage()
}

func (m *MatchBest) RemovedBidEvent(buyer string) {
	if m.off {
		return
	}
	m.updateBestMarketOffer()
}

func (m *MatchBest) TradeEvent(buyer, seller string, price int64) {
	if m.off {
		return
	}
	m.updateBestMarketOffer()
}

func (m *MatchBest) TurnOff() {
	if !m.off {
		m.off = true
		m.market.RemoveBidListener(m)
	}
	m.Inner().TurnOff()
}
