package economy

import (
	"math"
	"sort"

	"github.com/san-kum/plantctl/internal/plant"
)

// Demand is a linear inverse demand: price = Intercept − Slope·quantity.
type Demand struct {
	Intercept float64 `yaml:"intercept" json:"intercept"`
	Slope     float64 `yaml:"slope" json:"slope"`
}

func (d Demand) Price(quantity float64) float64 {
	return max(0, d.Intercept-d.Slope*quantity)
}

// GoodsMarket sells everything offered in a day at the price demand pays
// for the total.
type GoodsMarket struct {
	goodType string
	demand   Demand
	offered  map[string]float64

	last    int64
	hasLast bool
}

func NewGoodsMarket(goodType string, d Demand) *GoodsMarket {
	return &GoodsMarket{goodType: goodType, demand: d, offered: map[string]float64{}}
}

func (m *GoodsMarket) Demand() Demand { return m.demand }

// Offer adds units to what seller sells today.
func (m *GoodsMarket) Offer(seller string, units float64) {
	m.offered[seller] += units
}

// Clear sells the day's offers and returns revenue by seller.
func (m *GoodsMarket) Clear() map[string]float64 {
	sellers := make([]string, 0, len(m.offered))
	total := 0.0
	for s, units := range m.offered {
		sellers = append(sellers, s)
		total += units
	}
	sort.Strings(sellers)

	price := m.demand.Price(total)
	revenue := make(map[string]float64, len(sellers))
	for _, s := range sellers {
		revenue[s] = m.offered[s] * price
	}
	if total > 0 {
		m.last, m.hasLast = int64(math.Round(price)), true
	}
	m.offered = map[string]float64{}
	return revenue
}

func (m *GoodsMarket) GoodType() string { return m.goodType }

// BestAsk is the last price: buyers can always buy at the demand price.
func (m *GoodsMarket) BestAsk() (int64, bool) { return m.last, m.hasLast }

func (m *GoodsMarket) BestBid() (int64, string, bool) { return 0, "", false }

func (m *GoodsMarket) BestBidVisible() bool { return false }

func (m *GoodsMarket) LastPrice() (int64, bool) { return m.last, m.hasLast }

func (m *GoodsMarket) AddBidListener(plant.BidListener) {}

func (m *GoodsMarket) RemoveBidListener(plant.BidListener) bool { return false }

// FixedPriceMarket supplies any quantity of an input at one price.
type FixedPriceMarket struct {
	goodType string
	price    int64
}

func NewFixedPriceMarket(goodType string, price int64) *FixedPriceMarket {
	return &FixedPriceMarket{goodType: goodType, price: price}
}

func (m *FixedPriceMarket) GoodType() string { return m.goodType }

func (m *FixedPriceMarket) Price() int64 { return m.price }

func (m *FixedPriceMarket) BestAsk() (int64, bool) { return m.price, true }

func (m *FixedPriceMarket) BestBid() (int64, string, bool) { return 0, "", false }

func (m *FixedPriceMarket) BestBidVisible() bool { return false }

func (m *FixedPriceMarket) LastPrice() (int64, bool) { return m.price, m.price > 0 }

func (m *FixedPriceMarket) AddBidListener(plant.BidListener) {}

func (m *FixedPriceMarket) RemoveBidListener(plant.BidListener) bool { return false }
