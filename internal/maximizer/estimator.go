package maximizer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/plantctl/internal/plant"
)

// RandomizationPolicy decides what replaces a price prediction that is not
// available yet.
type RandomizationPolicy int

const (
	// MoreTime gives up with ErrInsufficientInformation.
	MoreTime RandomizationPolicy = iota
	// Random guesses a price in [0, 100).
	Random
	// MarketThenRandom uses the last closing price, guessing when there is
	// none.
	MarketThenRandom
)

func (p RandomizationPolicy) String() string {
	switch p {
	case MoreTime:
		return "more_time"
	case Random:
		return "random"
	case MarketThenRandom:
		return "market_then_random"
	}
	return "unknown"
}

// ParseRandomizationPolicy is the inverse of String.
func ParseRandomizationPolicy(s string) (RandomizationPolicy, error) {
	for _, p := range []RandomizationPolicy{MoreTime, Random, MarketThenRandom} {
		if p.String() == s {
			return p, nil
		}
	}
	return MoreTime, fmt.Errorf("unknown randomization policy %q", s)
}

const randomPriceCeiling = 100

// Replace returns a stand-in for an unknown prediction on market m.
func (p RandomizationPolicy) Replace(m plant.Market, r *rand.Rand) (float64, error) {
	switch p {
	case MarketThenRandom:
		if m != nil {
			if last, ok := m.LastPrice(); ok && last > 0 {
				return float64(last), nil
			}
		}
		return float64(r.Int63n(randomPriceCeiling)), nil
	case Random:
		return float64(r.Int63n(randomPriceCeiling)), nil
	}
	return 0, ErrInsufficientInformation
}

// PurchasePredictor forecasts the price paid for an input, labor included.
// Negative predictions mean unknown.
type PurchasePredictor interface {
	PurchasePriceWhenIncreasing() float64
	PurchasePriceWhenDecreasing() float64
	PurchasePriceWhenUnchanged() float64
}

// SalesPredictor forecasts the price received for the unit's output.
// Negative predictions mean unknown.
type SalesPredictor interface {
	SalePriceWhenUnchanged() float64
	SalePriceAfterIncreasing(unitCost float64, dailyChange int) float64
	SalePriceAfterDecreasing(unitCost float64, dailyChange int) float64
}

// CostEstimate splits the cost of a workforce change into its marginal part
// and the total after the change.
type CostEstimate struct {
	Marginal float64
	Total    float64
}

// Estimator computes the marginal quantities of moving from current to
// target workers. Weekly figures are divided by seven where noted.
type Estimator interface {
	// MarginalProduction is the rounded weekly output difference.
	MarginalProduction(current, target int) float64
	WageCosts(current, target int) (CostEstimate, error)
	// InputCosts is daily.
	InputCosts(current, target int) (CostEstimate, error)
	// MarginalRevenue is daily.
	MarginalRevenue(current, target int, totalInputCosts, totalWageCosts float64) (float64, error)
}

// PredictorEstimator is an Estimator built on price predictors. Inputs may
// be nil for units that consume nothing.
type PredictorEstimator struct {
	Unit        plant.Unit
	Wages       PurchasePredictor
	LaborMarket plant.Market
	Inputs      PurchasePredictor
	InputMarket plant.Market
	Sales       SalesPredictor
	SalesMarket plant.Market
	Policy      RandomizationPolicy
	Rand        *rand.Rand
}

func (e *PredictorEstimator) known(v float64, m plant.Market) (float64, error) {
	if v >= 0 {
		return v, nil
	}
	return e.Policy.Replace(m, e.Rand)
}

func (e *PredictorEstimator) MarginalProduction(current, target int) float64 {
	return math.Round(e.Unit.Throughput(target) - e.Unit.Throughput(current))
}

func (e *PredictorEstimator) WageCosts(current, target int) (CostEstimate, error) {
	future := e.Wages.PurchasePriceWhenDecreasing()
	if target > current {
		future = e.Wages.PurchasePriceWhenIncreasing()
	}
	future, err := e.known(future, e.LaborMarket)
	if err != nil {
		return CostEstimate{}, fmt.Errorf("future wage: %w", err)
	}
	old := 0.0
	if current != 0 {
		old = e.Wages.PurchasePriceWhenUnchanged()
	}
	total := future * float64(target)
	return CostEstimate{Marginal: total - float64(current)*old, Total: total}, nil
}

func (e *PredictorEstimator) InputCosts(current, target int) (CostEstimate, error) {
	if e.Inputs == nil {
		return CostEstimate{}, nil
	}
	needed := e.Unit.WeeklyInputNeeds(target)
	oldNeeds := e.Unit.WeeklyInputNeeds(current)

	cost := e.Inputs.PurchasePriceWhenDecreasing()
	if target > current {
		cost = e.Inputs.PurchasePriceWhenIncreasing()
	}
	oldCost := e.Inputs.PurchasePriceWhenUnchanged()
	cost, err := e.known(cost, e.InputMarket)
	if err != nil {
		return CostEstimate{}, fmt.Errorf("input price: %w", err)
	}
	total := cost * needed
	return CostEstimate{
		Marginal: (total - oldCost*oldNeeds) / 7,
		Total:    total / 7,
	}, nil
}

func (e *PredictorEstimator) MarginalRevenue(current, target int, totalInputCosts, totalWageCosts float64) (float64, error) {
	newOutput := e.Unit.Throughput(target)
	oldOutput := e.Unit.Throughput(current)

	oldPrice, err := e.known(e.Sales.SalePriceWhenUnchanged(), e.SalesMarket)
	if err != nil {
		return 0, fmt.Errorf("current sale price: %w", err)
	}

	unitCost := 0.0
	if newOutput > 0 {
		unitCost = (math.Round(totalInputCosts) + math.Round(totalWageCosts) +
			float64(e.Unit.WeeklyFixedCosts())) / newOutput
	}
	var price float64
	if target > current {
		price = e.Sales.SalePriceAfterIncreasing(unitCost, int(math.Round((newOutput-oldOutput)/7)))
	} else {
		price = e.Sales.SalePriceAfterDecreasing(unitCost, int(math.Round((oldOutput-newOutput)/7)))
	}
	price, err = e.known(price, e.SalesMarket)
	if err != nil {
		return 0, fmt.Errorf("future sale price: %w", err)
	}
	return (newOutput*price - oldOutput*oldPrice) / 7, nil
}

// MarginalProfits is marginal revenue minus marginal wage and input costs of
// moving from current to target.
func MarginalProfits(e Estimator, current, target int) (float64, error) {
	if current == target {
		return 0, nil
	}
	wages, err := e.WageCosts(current, target)
	if err != nil {
		return 0, err
	}
	inputs, err := e.InputCosts(current, target)
	if err != nil {
		return 0, err
	}
	revenue, err := e.MarginalRevenue(current, target, inputs.Total, wages.Total)
	if err != nil {
		return 0, err
	}
	return revenue - wages.Marginal - inputs.Marginal, nil
}

// Sigmoid squashes x into x/(1+x).
func Sigmoid(x float64) float64 {
	return x / (1 + x)
}
