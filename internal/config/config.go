package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/plantctl/internal/control"
	"github.com/san-kum/plantctl/internal/economy"
	"github.com/san-kum/plantctl/internal/maximizer"
	"github.com/san-kum/plantctl/internal/plant"
	"github.com/san-kum/plantctl/internal/targeter"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

const (
	DefaultDays             = 365
	DefaultFirms            = 1
	DefaultWorkers          = 100
	DefaultMinWage          = 10
	DefaultMaxWage          = 110
	DefaultMaxWorkers       = 40
	DefaultFixedCosts       = 700
	DefaultA                = 10.0
	DefaultB                = 0.05
	DefaultIntercept        = 60.0
	DefaultSlope            = 0.2
	DefaultObservationWeeks = 3
	DefaultCheckInterval    = 7
	DefaultJitter           = 3
	DefaultStepSize         = 1
	DefaultTargeterSpeed    = 0
	DefaultPIDSpeed         = 0
	DefaultLookAheadWindow  = 20
	DefaultPeriodicInterval = 20
)

type Config struct {
	Scenario ScenarioConfig `yaml:"scenario"`
	Control  ControlConfig  `yaml:"control"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ScenarioConfig describes the simulated sector.
type ScenarioConfig struct {
	Days           int                        `yaml:"days"`
	Seed           int64                      `yaml:"seed"`
	Firms          int                        `yaml:"firms"`
	Workers        int                        `yaml:"workers"`
	MinWage        int64                      `yaml:"min_wage"`
	MaxWage        int64                      `yaml:"max_wage"`
	Machinery      plant.Machinery            `yaml:"machinery"`
	Production     economy.ProductionFunction `yaml:"production"`
	Demand         economy.Demand             `yaml:"demand"`
	InputPrice     int64                      `yaml:"input_price"`
	InputPerWorker float64                    `yaml:"input_per_worker"`
	ProfitLagDays  int                        `yaml:"profit_lag_days"`
	FixedPay       bool                       `yaml:"fixed_pay"`
	HideBestBid    bool                       `yaml:"hide_best_bid"`
}

// ControlConfig picks the loops of every firm and tunes them.
type ControlConfig struct {
	Targeter   string   `yaml:"targeter"`
	Maximizer  string   `yaml:"maximizer"`
	Algorithm  string   `yaml:"algorithm"`
	Decorators []string `yaml:"decorators"`

	TargeterSpeed  int           `yaml:"targeter_speed"`
	TargeterJitter int           `yaml:"targeter_jitter"`
	PID            control.Gains `yaml:"pid"`
	PIDSpeed       float64       `yaml:"pid_speed"`
	QuickFiring    bool          `yaml:"quick_firing"`
	// PIDCascade replaces the single wage loop of the pid targeter.
	PIDCascade CascadeConfig `yaml:"pid_cascade"`

	ObservationWeeks int  `yaml:"observation_weeks"`
	CheckInterval    int  `yaml:"check_interval"`
	Jitter           int  `yaml:"jitter"`
	RandomSpeed      bool `yaml:"random_speed"`
	StepSize         int  `yaml:"step_size"`
	// PeriodicInterval is the mean days between decisions of the periodic
	// maximizer.
	PeriodicInterval int `yaml:"periodic_interval"`

	Marginal   MarginalConfig  `yaml:"marginal"`
	LookAhead  LookAheadConfig `yaml:"look_ahead"`
	Particle   ParticleConfig  `yaml:"particle"`
	Annealing  AnnealingConfig `yaml:"annealing"`
	Gradient   GradientConfig  `yaml:"gradient"`
	ClimberPID control.Gains   `yaml:"climber_pid"`
}

type MarginalConfig struct {
	Gains            control.Gains `yaml:"gains"`
	Sigmoid          bool          `yaml:"sigmoid"`
	Policy           string        `yaml:"policy"`
	TargetEfficiency float64       `yaml:"target_efficiency"`
}

// LookAheadConfig drives the outer loop of cascade-efficiency from the
// goods price trend.
type LookAheadConfig struct {
	Enabled bool          `yaml:"enabled"`
	Window  int           `yaml:"window"`
	Gains   control.Gains `yaml:"gains"`
}

type ParticleConfig struct {
	ExplorationDays int     `yaml:"exploration_days"`
	Inertia         float64 `yaml:"inertia"`
	Personal        float64 `yaml:"personal"`
	Neighbor        float64 `yaml:"neighbor"`
	Best            float64 `yaml:"best"`
}

type CascadeConfig struct {
	Enabled bool          `yaml:"enabled"`
	Master  control.Gains `yaml:"master"`
	Slave   control.Gains `yaml:"slave"`
}

type AnnealingConfig struct {
	Temperature float64 `yaml:"temperature"`
	Decay       float64 `yaml:"decay"`
}

type GradientConfig struct {
	Gain    float64 `yaml:"gain"`
	MaxStep int     `yaml:"max_step"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	// EventsDir enables the SQLite event log when set.
	EventsDir string `yaml:"events_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario: ScenarioConfig{
			Days:     DefaultDays,
			Firms:    DefaultFirms,
			Workers:  DefaultWorkers,
			MinWage:  DefaultMinWage,
			MaxWage:  DefaultMaxWage,
			FixedPay: true,
			Machinery: plant.Machinery{
				MaxWorkers:       DefaultMaxWorkers,
				WeeklyFixedCosts: DefaultFixedCosts,
			},
			Production: economy.ProductionFunction{A: DefaultA, B: DefaultB},
			Demand:     economy.Demand{Intercept: DefaultIntercept, Slope: DefaultSlope},
		},
		Control: ControlConfig{
			Targeter:       "market-look",
			Maximizer:      "try-again",
			Algorithm:      "hill-climber",
			TargeterSpeed:  DefaultTargeterSpeed,
			TargeterJitter: 1,
			PID:            targeter.DefaultPIDGains,
			PIDSpeed:       DefaultPIDSpeed,
			QuickFiring:    true,
			PIDCascade: CascadeConfig{
				Master: targeter.DefaultCascadeMaster,
				Slave:  targeter.DefaultCascadeSlave,
			},
			ObservationWeeks: DefaultObservationWeeks,
			CheckInterval:    DefaultCheckInterval,
			Jitter:           DefaultJitter,
			StepSize:         DefaultStepSize,
			Marginal: MarginalConfig{
				Gains:            maximizer.DefaultMarginalGains,
				Sigmoid:          true,
				Policy:           maximizer.MarketThenRandom.String(),
				TargetEfficiency: 1,
			},
			LookAhead: LookAheadConfig{
				Window: DefaultLookAheadWindow,
				Gains:  control.Gains{Kp: 1},
			},
			Particle: ParticleConfig{
				ExplorationDays: 100,
				Inertia:         maximizer.DefaultInertia,
				Personal:        maximizer.DefaultPersonalAttraction,
				Neighbor:        maximizer.DefaultNeighborAttraction,
				Best:            maximizer.DefaultBestAttraction,
			},
			PeriodicInterval: DefaultPeriodicInterval,
			Annealing: AnnealingConfig{
				Temperature: maximizer.DefaultInitialTemperature,
				Decay:       maximizer.DefaultTemperatureDecay,
			},
			Gradient: GradientConfig{
				Gain:    maximizer.DefaultGradientGain,
				MaxStep: maximizer.DefaultMaxStep,
			},
			ClimberPID: maximizer.DefaultClimberGains,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks what the run cannot start without. Component names are
// resolved later by the registry.
func (c *Config) Validate() error {
	s := c.Scenario
	switch {
	case s.Days <= 0:
		return fmt.Errorf("days must be positive, got %d: %w", s.Days, ErrInvalid)
	case s.Firms <= 0:
		return fmt.Errorf("firms must be positive, got %d: %w", s.Firms, ErrInvalid)
	case s.Workers < 0:
		return fmt.Errorf("workers must not be negative, got %d: %w", s.Workers, ErrInvalid)
	case s.MinWage < 0 || s.MaxWage < s.MinWage:
		return fmt.Errorf("wage range [%d, %d] is empty: %w", s.MinWage, s.MaxWage, ErrInvalid)
	case s.Machinery.MaxWorkers <= 0 || s.Machinery.MinWorkers < 0 || s.Machinery.MinWorkers > s.Machinery.MaxWorkers:
		return fmt.Errorf("machinery needs 0 <= min <= max and max > 0, got %d..%d: %w",
			s.Machinery.MinWorkers, s.Machinery.MaxWorkers, ErrInvalid)
	case s.ProfitLagDays < 0:
		return fmt.Errorf("profit lag must not be negative: %w", ErrInvalid)
	case s.Demand.Slope < 0:
		return fmt.Errorf("demand slope must not be negative: %w", ErrInvalid)
	}

	ctl := c.Control
	switch {
	case ctl.Targeter == "" || ctl.Maximizer == "" || ctl.Algorithm == "":
		return fmt.Errorf("targeter, maximizer and algorithm are required: %w", ErrInvalid)
	case ctl.ObservationWeeks <= 0:
		return fmt.Errorf("observation weeks must be positive: %w", ErrInvalid)
	case ctl.CheckInterval <= 0:
		return fmt.Errorf("check interval must be positive: %w", ErrInvalid)
	case ctl.Jitter < 0 || ctl.TargeterJitter < 0 || ctl.TargeterSpeed < 0 || ctl.PIDSpeed < 0:
		return fmt.Errorf("speeds and jitters must not be negative: %w", ErrInvalid)
	case ctl.StepSize <= 0:
		return fmt.Errorf("step size must be positive: %w", ErrInvalid)
	case !control.Finite(ctl.PID.Kp, ctl.PID.Ki, ctl.PID.Kd,
		ctl.Marginal.Gains.Kp, ctl.Marginal.Gains.Ki, ctl.Marginal.Gains.Kd):
		return fmt.Errorf("gains must be finite: %w", ErrInvalid)
	}
	if _, err := maximizer.ParseRandomizationPolicy(ctl.Marginal.Policy); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalid)
	}
	if ctl.LookAhead.Enabled && ctl.LookAhead.Window <= 0 {
		return fmt.Errorf("look-ahead window must be positive: %w", ErrInvalid)
	}
	return nil
}
