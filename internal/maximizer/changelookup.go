package maximizer

import (
	"github.com/san-kum/plantctl/internal/plant"
	"github.com/san-kum/plantctl/internal/sched"
)

// ChangeLookup samples a market's last price once a day and averages the
// relative day to day change over the last window samples. Non-positive
// prices are skipped.
type ChangeLookup struct {
	market plant.Market
	window int

	changes []float64
	last    float64
	active  bool
}

// NewChangeLookup starts sampling at the next Cleanup phase.
func NewChangeLookup(ctx *sched.Context, market plant.Market, window int) *ChangeLookup {
	c := NewChangeLookupWindow(window)
	c.market = market
	var sample sched.Action
	sample = func() {
		if !c.active {
			return
		}
		if price, ok := c.market.LastPrice(); ok {
			c.Observe(float64(price))
		}
		ctx.Scheduler.ScheduleTomorrow(sched.Cleanup, sample)
	}
	ctx.Scheduler.ScheduleSoon(sched.Cleanup, sample)
	return c
}

// NewChangeLookupWindow returns an unscheduled lookup fed through Observe.
func NewChangeLookupWindow(window int) *ChangeLookup {
	return &ChangeLookup{window: max(window, 1), active: true}
}

// Observe feeds one price.
func (c *ChangeLookup) Observe(price float64) {
	if price <= 0 {
		return
	}
	if c.last > 0 {
		c.changes = append(c.changes, (price-c.last)/c.last)
		if len(c.changes) > c.window {
			c.changes = c.changes[len(c.changes)-c.window:]
		}
	}
	c.last = price
}

// Change is the moving average, zero until two valid prices were seen.
func (c *ChangeLookup) Change() float64 {
	if len(c.changes) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range c.changes {
		sum += v
	}
	return sum / float64(len(c.changes))
}

// TurnOff stops daily sampling.
func (c *ChangeLookup) TurnOff() { c.active = false }
