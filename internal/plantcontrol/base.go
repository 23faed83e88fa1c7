package plantcontrol

import "github.com/san-kum/plantctl/internal/plant"

// Base owns the wage posted by a unit's human resources and whether they may
// keep buying labor. It is embedded by Composite.
type Base struct {
	hr       plant.HumanResources
	unit     plant.Unit
	wage     int64
	canBuy   bool
	active   bool
	listener plant.Listener
}

func NewBase(hr plant.HumanResources) *Base {
	return &Base{
		hr:     hr,
		unit:   hr.Unit(),
		canBuy: true,
		active: true,
	}
}

// Listen registers l, normally the outermost decorator, for unit events.
// TurnOff removes it again.
func (b *Base) Listen(l plant.Listener) {
	if b.listener != nil {
		b.unit.RemoveListener(b.listener)
	}
	b.listener = l
	b.unit.AddListener(l)
}

func (b *Base) MaxPrice(goodType string) int64 { return b.wage }

func (b *Base) MaxPriceFor(g plant.Good) int64 { return b.MaxPrice(g.Type) }

// SetCurrentWage reprices quotes and employees, then buys if allowed. A
// wage equal to the current one does nothing.
func (b *Base) SetCurrentWage(wage int64) {
	if wage == b.wage {
		return
	}
	b.wage = wage
	b.hr.UpdateOfferPrices(wage)
	b.hr.UpdateEmployeeWages(wage)
	if b.CanBuy() {
		b.hr.Buy(wage)
	}
}

func (b *Base) CurrentWage() int64 { return b.wage }

// CanBuy is false once the unit is full regardless of the flag.
func (b *Base) CanBuy() bool {
	return b.canBuy && b.unit.NumberOfWorkers() < b.unit.MaximumWorkersPossible()
}

// SetCanBuy(false) also withdraws any standing quote.
func (b *Base) SetCanBuy(canBuy bool) {
	b.canBuy = canBuy
	if !canBuy && b.hr.HasQuote() {
		b.hr.CancelQuote()
	}
}

func (b *Base) HR() plant.HumanResources { return b.hr }

func (b *Base) Unit() plant.Unit { return b.unit }

func (b *Base) Active() bool { return b.active }

// TurnOff stops listening to the unit. Later calls are no-ops.
func (b *Base) TurnOff() {
	if !b.active {
		return
	}
	b.active = false
	if b.listener != nil {
		b.unit.RemoveListener(b.listener)
		b.listener = nil
	}
}
