package plantcontrol

import (
	"fmt"

	"github.com/san-kum/plantctl/internal/plant"
)

// Composite drives a unit with one Targeter and one Maximizer. Lifecycle
// calls and unit events reach the targeter first, then the maximizer.
type Composite struct {
	*Base
	targeter  Targeter
	maximizer Maximizer
}

func NewComposite(hr plant.HumanResources) *Composite {
	return &Composite{Base: NewBase(hr)}
}

// Bind attaches the two loops. It fails if either is missing or if the
// composite already has loops.
func (c *Composite) Bind(t Targeter, m Maximizer) error {
	if t == nil || m == nil {
		return fmt.Errorf("composite needs a targeter and a maximizer: %w", ErrInconsistentConfiguration)
	}
	if c.targeter != nil || c.maximizer != nil {
		return fmt.Errorf("composite already bound: %w", ErrInconsistentConfiguration)
	}
	c.targeter = t
	c.maximizer = m
	return nil
}

func (c *Composite) Targeter() Targeter { return c.targeter }

func (c *Composite) Maximizer() Maximizer { return c.maximizer }

func (c *Composite) Start() {
	if !c.Active() {
		return
	}
	c.targeter.Start()
	c.maximizer.Start()
}

func (c *Composite) TurnOff() {
	if !c.Active() {
		return
	}
	c.Base.TurnOff()
	if c.targeter != nil {
		c.targeter.TurnOff()
	}
	if c.maximizer != nil {
		c.maximizer.TurnOff()
	}
}

func (c *Composite) SetTarget(workers int) { c.targeter.SetTarget(workers) }

func (c *Composite) Target() int { return c.targeter.Target() }

func (c *Composite) ChangeInWorkforceEvent(u plant.Unit, now, before int) {
	c.targeter.ChangeInWorkforceEvent(u, now, before)
	c.maximizer.ChangeInWorkforceEvent(u, now, before)
}

func (c *Composite) ChangeInWageEvent(u plant.Unit, workers int, wage int64) {
	c.targeter.ChangeInWageEvent(u, workers, wage)
	c.maximizer.ChangeInWageEvent(u, workers, wage)
}

func (c *Composite) ChangeInMachineryEvent(u plant.Unit, m plant.Machinery) {
	c.targeter.ChangeInMachineryEvent(u, m)
	c.maximizer.ChangeInMachineryEvent(u, m)
}

func (c *Composite) PlantShutdownEvent(u plant.Unit) {
	c.targeter.PlantShutdownEvent(u)
	c.maximizer.PlantShutdownEvent(u)
}

// RateCurrentLevel is Acceptable while the composite still wants to buy
// labor, Danger otherwise.
func (c *Composite) RateCurrentLevel() Level {
	if c.CanBuy() {
		return Acceptable
	}
	return Danger
}
