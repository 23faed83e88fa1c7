package config

import "sort"

// Presets groups named scenario tweaks by the algorithm family they
// showcase. Each tweak is applied on top of DefaultConfig.
var Presets = map[string]map[string]func(*Config){
	"hill-climber": {
		"baseline": func(c *Config) {},
		"pid-targeter": func(c *Config) {
			c.Control.Targeter = "pid"
		},
		"pid-cascade": func(c *Config) {
			c.Control.Targeter = "pid"
			c.Control.PIDCascade.Enabled = true
		},
		"lagged": func(c *Config) {
			c.Scenario.ProfitLagDays = 7
			c.Control.ObservationWeeks = 4
		},
		"always-moving": func(c *Config) {
			c.Control.Algorithm = "always-moving"
		},
		"annealing": func(c *Config) {
			c.Control.Algorithm = "annealing"
		},
		"annealing-reacting": func(c *Config) {
			c.Control.Algorithm = "annealing-reacting"
			c.Scenario.ProfitLagDays = 7
		},
		"gradient": func(c *Config) {
			c.Control.Algorithm = "gradient"
		},
		"pid-climber": func(c *Config) {
			c.Control.Algorithm = "pid-climber"
		},
		"periodic": func(c *Config) {
			c.Control.Maximizer = "periodic"
		},
	},
	"particle": {
		"swarm": func(c *Config) {
			c.Scenario.Firms = 4
			c.Scenario.Workers = 200
			c.Scenario.Demand.Intercept = 120
			c.Control.Algorithm = "particle"
		},
		"match-best": func(c *Config) {
			c.Scenario.Firms = 3
			c.Scenario.Workers = 150
			c.Control.Algorithm = "particle"
			c.Control.Decorators = []string{"match-best"}
		},
	},
	"marginal": {
		"plain": func(c *Config) {
			c.Control.Algorithm = "marginal"
		},
		"pid": func(c *Config) {
			c.Control.Algorithm = "marginal-pid"
			c.Control.Maximizer = "try-again"
		},
		"robust": func(c *Config) {
			c.Control.Algorithm = "robust-marginal"
			c.Control.Targeter = "pid"
		},
		"and-pid": func(c *Config) {
			c.Control.Algorithm = "marginal-and-pid"
		},
		"cascade": func(c *Config) {
			c.Control.Algorithm = "cascade-efficiency"
			c.Control.LookAhead.Enabled = true
		},
		"with-inputs": func(c *Config) {
			c.Control.Algorithm = "marginal"
			c.Scenario.InputPrice = 2
			c.Scenario.InputPerWorker = 1
		},
	},
}

// GetPreset returns a fresh config with the preset applied, nil when the
// group or name is unknown.
func GetPreset(group, name string) *Config {
	groupPresets, ok := Presets[group]
	if !ok {
		return nil
	}
	apply, ok := groupPresets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets(group string) []string {
	groupPresets, ok := Presets[group]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(groupPresets))
	for name := range groupPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ListGroups() []string {
	groups := make([]string, 0, len(Presets))
	for g := range Presets {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}
