package config

import (
	"fmt"
	"math"
	"sort"
)

// params maps tunable names to the field they set. Integer fields are
// rounded.
var params = map[string]func(c *Config, v float64){
	"pid.kp":                func(c *Config, v float64) { c.Control.PID.Kp = v },
	"pid.ki":                func(c *Config, v float64) { c.Control.PID.Ki = v },
	"pid.kd":                func(c *Config, v float64) { c.Control.PID.Kd = v },
	"pid.speed":             func(c *Config, v float64) { c.Control.PIDSpeed = v },
	"marginal.kp":           func(c *Config, v float64) { c.Control.Marginal.Gains.Kp = v },
	"marginal.ki":           func(c *Config, v float64) { c.Control.Marginal.Gains.Ki = v },
	"marginal.kd":           func(c *Config, v float64) { c.Control.Marginal.Gains.Kd = v },
	"marginal.efficiency":   func(c *Config, v float64) { c.Control.Marginal.TargetEfficiency = v },
	"look_ahead.kp":         func(c *Config, v float64) { c.Control.LookAhead.Gains.Kp = v },
	"look_ahead.ki":         func(c *Config, v float64) { c.Control.LookAhead.Gains.Ki = v },
	"look_ahead.kd":         func(c *Config, v float64) { c.Control.LookAhead.Gains.Kd = v },
	"particle.inertia":      func(c *Config, v float64) { c.Control.Particle.Inertia = v },
	"particle.personal":     func(c *Config, v float64) { c.Control.Particle.Personal = v },
	"particle.neighbor":     func(c *Config, v float64) { c.Control.Particle.Neighbor = v },
	"particle.best":         func(c *Config, v float64) { c.Control.Particle.Best = v },
	"annealing.temperature": func(c *Config, v float64) { c.Control.Annealing.Temperature = v },
	"annealing.decay":       func(c *Config, v float64) { c.Control.Annealing.Decay = v },
	"gradient.gain":         func(c *Config, v float64) { c.Control.Gradient.Gain = v },
	"gradient.max_step":     func(c *Config, v float64) { c.Control.Gradient.MaxStep = round(v) },
	"climber_pid.kp":        func(c *Config, v float64) { c.Control.ClimberPID.Kp = v },
	"climber_pid.ki":        func(c *Config, v float64) { c.Control.ClimberPID.Ki = v },
	"climber_pid.kd":        func(c *Config, v float64) { c.Control.ClimberPID.Kd = v },
	"periodic_interval":     func(c *Config, v float64) { c.Control.PeriodicInterval = round(v) },
	"observation_weeks":     func(c *Config, v float64) { c.Control.ObservationWeeks = round(v) },
	"check_interval":        func(c *Config, v float64) { c.Control.CheckInterval = round(v) },
	"step_size":             func(c *Config, v float64) { c.Control.StepSize = round(v) },
	"targeter_speed":        func(c *Config, v float64) { c.Control.TargeterSpeed = round(v) },
	"demand.intercept":      func(c *Config, v float64) { c.Scenario.Demand.Intercept = v },
	"demand.slope":          func(c *Config, v float64) { c.Scenario.Demand.Slope = v },
	"production.a":          func(c *Config, v float64) { c.Scenario.Production.A = v },
	"production.b":          func(c *Config, v float64) { c.Scenario.Production.B = v },
	"profit_lag_days":       func(c *Config, v float64) { c.Scenario.ProfitLagDays = round(v) },
}

func round(v float64) int { return int(math.Round(v)) }

// SetParam sets a tunable by name.
func (c *Config) SetParam(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be finite, got %v: %w", name, value, ErrInvalid)
	}
	set, ok := params[name]
	if !ok {
		return fmt.Errorf("unknown parameter %q: %w", name, ErrInvalid)
	}
	set(c, value)
	return nil
}

// ParamNames lists what SetParam accepts.
func ParamNames() []string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
