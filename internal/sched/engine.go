package sched

import (
	"context"
	"fmt"
	"math/rand"
)

// maxProbabilisticDelay caps the geometric draw of ScheduleWithProbability.
const maxProbabilisticDelay = 10000

// Engine is a single threaded, seeded Scheduler. It processes events in
// (day, phase, random key) order.
type Engine struct {
	queue *eventQueue
	rng   *rand.Rand
	day   int
	phase Phase
	seq   uint64
}

// NewEngine creates an engine whose ordering and Context randomness derive
// from seed.
func NewEngine(seed int64) *Engine {
	return &Engine{
		queue: newEventQueue(),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Context returns a Context bound to this engine and its random source.
func (e *Engine) Context() *Context {
	return NewContext(e, e.rng)
}

func (e *Engine) Day() int { return e.day }

func (e *Engine) Phase() Phase { return e.phase }

// Pending returns the number of queued callbacks.
func (e *Engine) Pending() int { return e.queue.len() }

func (e *Engine) schedule(day int, p Phase, a Action) {
	if day < e.day || (day == e.day && p < e.phase) {
		panic(fmt.Sprintf("sched: cannot schedule in the past, day %d %s, now day %d %s",
			day, p, e.day, e.phase))
	}
	e.seq++
	e.queue.push(&event{
		day:    day,
		phase:  p,
		key:    e.rng.Int63(),
		seq:    e.seq,
		action: a,
	})
}

func (e *Engine) ScheduleSoon(p Phase, a Action) {
	if p < e.phase {
		e.schedule(e.day+1, p, a)
		return
	}
	e.schedule(e.day, p, a)
}

func (e *Engine) ScheduleTomorrow(p Phase, a Action) {
	e.schedule(e.day+1, p, a)
}

func (e *Engine) ScheduleInDays(p Phase, a Action, days int) {
	if days <= 0 {
		e.ScheduleSoon(p, a)
		return
	}
	e.schedule(e.day+days, p, a)
}

func (e *Engine) ScheduleWithProbability(p Phase, a Action, probability float64) {
	if probability <= 0 || probability > 1 {
		panic(fmt.Sprintf("sched: probability %f outside (0,1]", probability))
	}
	days := 1
	for days < maxProbabilisticDelay && e.rng.Float64() >= probability {
		days++
	}
	e.schedule(e.day+days, p, a)
}

// EveryDay runs a at phase p every day, starting today when possible.
func (e *Engine) EveryDay(p Phase, a Action) {
	var repeat Action
	repeat = func() {
		a()
		e.ScheduleTomorrow(p, repeat)
	}
	e.ScheduleSoon(p, repeat)
}

// Step runs the next queued callback. It returns false when the queue is
// empty.
func (e *Engine) Step() bool {
	evt := e.queue.pop()
	if evt == nil {
		return false
	}
	e.day = evt.day
	e.phase = evt.phase
	evt.action()
	return true
}

// RunDays processes every callback due in the next days days and leaves the
// clock at dawn of the first day after them.
func (e *Engine) RunDays(ctx context.Context, days int) error {
	if days <= 0 {
		return nil
	}
	end := e.day + days
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		next := e.queue.peek()
		if next == nil || next.day >= end {
			break
		}
		e.Step()
	}
	e.day = end
	e.phase = Dawn
	return nil
}
