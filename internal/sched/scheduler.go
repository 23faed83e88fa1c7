package sched

import "math/rand"

// Action is a callback run by the scheduler.
type Action func()

// Scheduler registers callbacks against a phase of a future day.
//
// Callbacks scheduled for the same day and phase run in a seeded random
// order, never FIFO.
type Scheduler interface {
	Day() int
	Phase() Phase

	// ScheduleSoon runs a today if p has not passed yet, tomorrow otherwise.
	ScheduleSoon(p Phase, a Action)
	ScheduleTomorrow(p Phase, a Action)
	// ScheduleInDays runs a at phase p, days from now. Zero or less behaves
	// like ScheduleSoon.
	ScheduleInDays(p Phase, a Action, days int)
	// ScheduleWithProbability flips a daily coin with the given success
	// probability, starting tomorrow, and runs a on the first success.
	ScheduleWithProbability(p Phase, a Action, probability float64)
}

// Context is handed to every object that needs randomness, the clock or the
// scheduler.
type Context struct {
	Scheduler Scheduler
	Rand      *rand.Rand
}

// NewContext pairs a scheduler with a random source.
func NewContext(s Scheduler, r *rand.Rand) *Context {
	return &Context{Scheduler: s, Rand: r}
}

// Now returns the current simulated day.
func (c *Context) Now() int {
	return c.Scheduler.Day()
}
