package control

import (
	"fmt"
	"math"
)

// Option configures a PID.
type Option func(*PID)

// WithOffset sets the bias added to every output. Callers usually pass the
// current measured value so the first output does not jump.
func WithOffset(offset float64) Option {
	return func(p *PID) {
		p.offset = offset
		p.mv = offset
	}
}

// WithWindupStop toggles freezing the integral while the output is saturated.
func WithWindupStop(stop bool) Option {
	return func(p *PID) { p.windupStop = stop }
}

// WithCanGoNegative allows negative outputs.
func WithCanGoNegative(allowed bool) Option {
	return func(p *PID) { p.canGoNegative = allowed }
}

// WithCeiling bounds the output from above.
func WithCeiling(ceiling float64) Option {
	return func(p *PID) {
		p.ceiling = ceiling
		p.hasCeiling = true
	}
}

// WithSpeed sets the number of days between adjustments. Fractional speeds
// are realized probabilistically by Reschedule.
func WithSpeed(speed float64) Option {
	return func(p *PID) { p.speed = speed }
}

// Gains groups the three PID coefficients.
type Gains struct {
	Kp float64 `yaml:"kp"`
	Ki float64 `yaml:"ki"`
	Kd float64 `yaml:"kd"`
}

// PID is a discrete proportional-integral-derivative loop. The integral is a
// plain running sum of errors and the derivative the difference between
// consecutive errors; there is no time step.
type PID struct {
	Kp float64
	Ki float64
	Kd float64

	offset        float64
	integral      float64
	prevErr       float64
	hasPrev       bool
	mv            float64
	windupStop    bool
	canGoNegative bool
	ceiling       float64
	hasCeiling    bool
	speed         float64
}

// NewPID returns a loop with windup stop on and non-negative output.
func NewPID(kp, ki, kd float64, opts ...Option) *PID {
	p := &PID{
		Kp:         kp,
		Ki:         ki,
		Kd:         kd,
		windupStop: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewPIDFromGains is NewPID for a Gains value.
func NewPIDFromGains(g Gains, opts ...Option) *PID {
	return NewPID(g.Kp, g.Ki, g.Kd, opts...)
}

// Adjust recomputes the output for the error target-measured.
func (p *PID) Adjust(target, measured float64) {
	p.AdjustResidual(target - measured)
}

// AdjustResidual recomputes the output for an already computed error.
func (p *PID) AdjustResidual(residual float64) {
	derivative := 0.0
	if p.hasPrev {
		derivative = residual - p.prevErr
	}

	// saturation is judged with the integral from before this sample
	if !p.windupStop || !p.saturated(p.formula(residual, derivative)) {
		p.integral += residual
	}

	p.mv = p.clamp(p.formula(residual, derivative))
	p.prevErr = residual
	p.hasPrev = true
}

func (p *PID) formula(residual, derivative float64) float64 {
	return p.offset + p.Kp*residual + p.Ki*p.integral + p.Kd*derivative
}

func (p *PID) saturated(v float64) bool {
	if !p.canGoNegative && v < 0 {
		return true
	}
	return p.hasCeiling && v > p.ceiling
}

func (p *PID) clamp(v float64) float64 {
	if !p.canGoNegative && v < 0 {
		v = 0
	}
	if p.hasCeiling && v > p.ceiling {
		v = p.ceiling
	}
	return v
}

// CurrentMV returns the last output without recomputing it.
func (p *PID) CurrentMV() float64 {
	return p.mv
}

// SetOffset re-biases the loop. The integral and error history are kept and
// the output is refreshed on the next adjustment.
func (p *PID) SetOffset(offset float64) {
	p.offset = offset
}

func (p *PID) Offset() float64 { return p.offset }

func (p *PID) Integral() float64 { return p.integral }

func (p *PID) Speed() float64 { return p.speed }

func (p *PID) SetSpeed(speed float64) { p.speed = speed }

// Reset clears integral and error history and falls back to the offset.
func (p *PID) Reset() {
	p.integral = 0
	p.prevErr = 0
	p.hasPrev = false
	p.mv = p.clamp(p.offset)
}

// GetParams returns tunable parameters for live adjustment
func (p *PID) GetParams() map[string]float64 {
	return map[string]float64{
		"Kp":     p.Kp,
		"Ki":     p.Ki,
		"Kd":     p.Kd,
		"Offset": p.offset,
		"Speed":  p.speed,
	}
}

// SetParam adjusts a PID parameter
func (p *PID) SetParam(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("pid: %s must be finite, got %v", name, value)
	}
	switch name {
	case "Kp":
		p.Kp = value
	case "Ki":
		p.Ki = value
	case "Kd":
		p.Kd = value
	case "Offset":
		p.offset = value
	case "Speed":
		if value < 0 {
			return fmt.Errorf("pid: speed must be non-negative, got %v", value)
		}
		p.speed = value
	default:
		return fmt.Errorf("pid: unknown parameter %q", name)
	}
	return nil
}

// Finite reports whether every value is a usable loop input.
func Finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
