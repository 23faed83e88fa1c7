package economy

import (
	"github.com/san-kum/plantctl/internal/plant"
)

// entry is one day of a firm's books.
type entry struct {
	revenue float64
	cost    float64
}

// Firm owns one plant and keeps daily books. Profits reported to controls
// are the sum over a week that ended lag days ago, modeling the delay
// between hiring and selling.
type Firm struct {
	id     string
	plant  *Plant
	hr     *HR
	sector *Sector
	lag    int

	books []entry
	today entry
}

func (f *Firm) ID() string { return f.id }

func (f *Firm) Plant() *Plant { return f.plant }

func (f *Firm) HR() *HR { return f.hr }

// window sums the last complete week before the lag.
func (f *Firm) window() entry {
	end := len(f.books) - f.lag
	if end <= 0 {
		return entry{}
	}
	var sum entry
	for _, e := range f.books[max(0, end-7):end] {
		sum.revenue += e.revenue
		sum.cost += e.cost
	}
	return sum
}

func (f *Firm) PlantProfits(plant.Unit) float64 {
	w := f.window()
	return w.revenue - w.cost
}

func (f *Firm) PlantRevenues(plant.Unit) float64 { return f.window().revenue }

func (f *Firm) PlantCosts(plant.Unit) float64 { return f.window().cost }

func (f *Firm) Peers() []plant.Peer { return f.sector.Peers() }

// LastDay returns the most recent booked revenue and cost.
func (f *Firm) LastDay() (revenue, cost float64) {
	if len(f.books) == 0 {
		return 0, 0
	}
	e := f.books[len(f.books)-1]
	return e.revenue, e.cost
}

func (f *Firm) produce(goods *GoodsMarket, inputPrice float64) {
	workers := f.plant.NumberOfWorkers()
	f.today.cost = float64(f.hr.WageBill()) +
		f.plant.WeeklyInputNeeds(workers)/7*inputPrice +
		float64(f.plant.WeeklyFixedCosts())/7
	goods.Offer(f.id, f.plant.Throughput(workers)/7)
}

func (f *Firm) book(revenue float64) {
	f.today.revenue = revenue
	f.books = append(f.books, f.today)
	f.today = entry{}
}
