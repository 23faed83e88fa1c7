package control

import (
	"math"

	"github.com/san-kum/plantctl/internal/sched"
)

// Reschedule queues a for the next adjustment of a loop running at speed.
// Speed zero means tomorrow, an integer speed n means n+1 days from now, and
// a fractional speed turns into a daily coin flip with probability
// 1/(speed+1), which has the same mean delay.
func Reschedule(s sched.Scheduler, p sched.Phase, a sched.Action, speed float64) {
	switch {
	case speed <= 0:
		s.ScheduleTomorrow(p, a)
	case speed == math.Trunc(speed):
		s.ScheduleInDays(p, a, int(speed)+1)
	default:
		s.ScheduleWithProbability(p, a, 1/(speed+1))
	}
}
