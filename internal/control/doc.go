// Package control provides the discrete feedback loops used by plant
// controls:
//
//   - [PID]: Proportional-Integral-Derivative loop with offset, windup stop
//     and output clamping
//   - [Cascade]: two PIDs chained so the master output is the slave setpoint
//
// Loops only recompute when adjusted. Callers decide when that happens; see
// [Reschedule] for mapping a loop speed onto the day scheduler.
//
// # Usage
//
//	pid := control.NewPID(0.1, 0.05, 0, control.WithOffset(float64(workers)))
//	pid.Adjust(target, float64(workers))
//	wage := math.Round(pid.CurrentMV())
//
// Both loops support live tuning through GetParams and SetParam.
package control
