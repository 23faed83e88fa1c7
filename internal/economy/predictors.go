package economy

import (
	"math/rand"

	"github.com/san-kum/plantctl/internal/maximizer"
)

// LaborPredictor expects one more worker to cost the cheapest idle ask,
// paid to everyone under fixed pay, and fewer workers to keep today's pay.
type LaborPredictor struct {
	hr *HR
}

func (p LaborPredictor) PurchasePriceWhenIncreasing() float64 {
	ask, ok := p.hr.pool.BestAsk()
	if !ok {
		return -1
	}
	return float64(max(ask, p.hr.pay))
}

func (p LaborPredictor) PurchasePriceWhenDecreasing() float64 {
	return p.PurchasePriceWhenUnchanged()
}

func (p LaborPredictor) PurchasePriceWhenUnchanged() float64 {
	if p.hr.pay <= 0 {
		return -1
	}
	return float64(p.hr.pay)
}

// FixedPricePredictor predicts one price whatever happens.
type FixedPricePredictor float64

func (p FixedPricePredictor) PurchasePriceWhenIncreasing() float64 { return float64(p) }
func (p FixedPricePredictor) PurchasePriceWhenDecreasing() float64 { return float64(p) }
func (p FixedPricePredictor) PurchasePriceWhenUnchanged() float64  { return float64(p) }

// DemandPredictor moves the last price along the known demand slope.
type DemandPredictor struct {
	market *GoodsMarket
}

func (p DemandPredictor) SalePriceWhenUnchanged() float64 {
	last, ok := p.market.LastPrice()
	if !ok {
		return -1
	}
	return float64(last)
}

func (p DemandPredictor) SalePriceAfterIncreasing(_ float64, dailyChange int) float64 {
	last := p.SalePriceWhenUnchanged()
	if last < 0 {
		return -1
	}
	return max(0, last-p.market.demand.Slope*float64(dailyChange))
}

func (p DemandPredictor) SalePriceAfterDecreasing(_ float64, dailyChange int) float64 {
	last := p.SalePriceWhenUnchanged()
	if last < 0 {
		return -1
	}
	return last + p.market.demand.Slope*float64(dailyChange)
}

// Estimator returns a marginal estimator over the firm's markets.
func (f *Firm) Estimator(policy maximizer.RandomizationPolicy, r *rand.Rand) *maximizer.PredictorEstimator {
	e := &maximizer.PredictorEstimator{
		Unit:        f.plant,
		Wages:       LaborPredictor{hr: f.hr},
		LaborMarket: f.sector.Labor,
		Sales:       DemandPredictor{market: f.sector.Goods},
		SalesMarket: f.sector.Goods,
		Policy:      policy,
		Rand:        r,
	}
	if f.sector.Input != nil && f.plant.inputPerWorker > 0 {
		e.Inputs = FixedPricePredictor(f.sector.Input.Price())
		e.InputMarket = f.sector.Input
	}
	return e
}
