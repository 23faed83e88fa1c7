package plant

// Market exposes the order book of one good type to its traders.
type Market interface {
	GoodType() string

	// BestAsk is the lowest price a seller accepts. ok is false when no
	// seller is visible.
	BestAsk() (price int64, ok bool)
	// BestBid is the highest standing buy quote and who posted it.
	BestBid() (price int64, buyer string, ok bool)
	// BestBidVisible reports whether BestBid is published at all.
	BestBidVisible() bool
	// LastPrice is the last closing price.
	LastPrice() (price int64, ok bool)

	AddBidListener(l BidListener)
	RemoveBidListener(l BidListener) bool
}

// BidListener is notified about changes in the buy side of a market.
type BidListener interface {
	NewBidEvent(buyer string, price int64)
	RemovedBidEvent(buyer string)
	TradeEvent(buyer, seller string, price int64)
}

// HumanResources buys labor for one unit on one market.
type HumanResources interface {
	FirmID() string
	Unit() Unit
	Market() Market

	// Buy posts a quote for one worker at wage, replacing any standing one.
	Buy(wage int64)
	CancelQuote()
	HasQuote() bool
	// UpdateOfferPrices moves a standing quote to wage.
	UpdateOfferPrices(wage int64)
	// UpdateEmployeeWages sets the pay of current employees.
	UpdateEmployeeWages(wage int64)

	// FixedPayStructure is true when every employee earns the same wage.
	FixedPayStructure() bool
	// FireEveryoneAskingMoreThan releases workers whose minimum wage exceeds
	// wage, most expensive first, never going below target.
	FireEveryoneAskingMoreThan(wage int64, target int)
}

// Peer is a snapshot of a competing unit as seen by neighbors.
type Peer struct {
	ID      string
	Profit  float64
	Workers int
}

// Firm owns units and keeps their books.
type Firm interface {
	ID() string
	PlantProfits(u Unit) float64
	PlantRevenues(u Unit) float64
	PlantCosts(u Unit) float64
	// Peers lists every unit producing the same good, including our own.
	Peers() []Peer
}
