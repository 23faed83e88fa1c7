package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/plantctl/internal/config"
	"github.com/san-kum/plantctl/internal/economy"
	"github.com/san-kum/plantctl/internal/eventlog"
	"github.com/san-kum/plantctl/internal/metrics"
	"github.com/san-kum/plantctl/internal/sched"
	"github.com/san-kum/plantctl/internal/sim"
)

// Goods traded by the simulated sector.
const (
	OutputGood = "widget"
	InputGood  = "input"
)

// Experiment is one simulated sector whose firms are driven by controls
// built from a config.
type Experiment struct {
	cfg        *config.Config
	engine     *sched.Engine
	sector     *economy.Sector
	assemblies []*Assembly
	simulator  *sim.Simulator
	started    bool
}

// New wires the world described by cfg without starting it.
func New(cfg *config.Config, reg *Registry, log eventlog.Logger) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = eventlog.Nop
	}

	s := cfg.Scenario
	engine := sched.NewEngine(s.Seed)
	ctx := engine.Context()

	pool := economy.NewLaborPool(economy.UniformWorkers(s.Workers, s.MinWage, s.MaxWage))
	pool.SetBidVisible(!s.HideBestBid)
	var input *economy.FixedPriceMarket
	if s.InputPerWorker > 0 {
		input = economy.NewFixedPriceMarket(InputGood, s.InputPrice)
	}
	sector := economy.NewSector(ctx, pool, economy.NewGoodsMarket(OutputGood, s.Demand), input)

	e := &Experiment{cfg: cfg, engine: engine, sector: sector}
	for i := 0; i < s.Firms; i++ {
		firm, err := sector.AddFirm(economy.FirmSpec{
			ID:             fmt.Sprintf("firm%02d", i),
			Machinery:      s.Machinery,
			Production:     s.Production,
			InputPerWorker: s.InputPerWorker,
			FixedPay:       s.FixedPay,
			ProfitLag:      s.ProfitLagDays,
		})
		if err != nil {
			return nil, err
		}
		a, err := reg.Build(Env{
			Ctx:    ctx,
			Firm:   firm,
			Sector: sector,
			Config: cfg.Control,
			Log:    log,
		})
		if err != nil {
			return nil, fmt.Errorf("firm %s: %w", firm.ID(), err)
		}
		e.assemblies = append(e.assemblies, a)
	}

	e.simulator = sim.New(engine, e.sample)
	for _, m := range metrics.Default(cfg.Control.ObservationWeeks * 7) {
		e.simulator.AddMetric(m)
	}
	return e, nil
}

func (e *Experiment) sample(day int) []sim.Sample {
	samples := make([]sim.Sample, 0, len(e.assemblies))
	for _, a := range e.assemblies {
		u := a.Firm.Plant()
		samples = append(samples, sim.Sample{
			Day:     day,
			Firm:    a.Firm.ID(),
			Wage:    a.Control.CurrentWage(),
			Workers: u.NumberOfWorkers(),
			Target:  a.Control.Target(),
			Profit:  a.Firm.PlantProfits(u),
			Revenue: a.Firm.PlantRevenues(u),
			Cost:    a.Firm.PlantCosts(u),
		})
	}
	return samples
}

// Start begins trading and control. Later calls do nothing.
func (e *Experiment) Start() {
	if e.started {
		return
	}
	e.started = true
	e.sector.Start()
	for _, a := range e.assemblies {
		a.Control.Start()
	}
}

// Run starts the experiment if needed and simulates the configured days.
func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	e.Start()
	return e.simulator.Run(ctx, sim.Config{Days: e.cfg.Scenario.Days, Seed: e.cfg.Scenario.Seed})
}

// Step starts the experiment if needed and simulates a single day.
func (e *Experiment) Step(ctx context.Context) ([]sim.Sample, error) {
	e.Start()
	return e.simulator.Step(ctx)
}

// Metrics returns the running value of every metric.
func (e *Experiment) Metrics() map[string]float64 {
	return e.simulator.Metrics()
}

// TurnOff stops every control. The sector keeps trading if run further.
func (e *Experiment) TurnOff() {
	for _, a := range e.assemblies {
		a.Control.TurnOff()
	}
}

// GetSimulator returns the underlying simulator for adding observers
func (e *Experiment) GetSimulator() *sim.Simulator {
	return e.simulator
}

func (e *Experiment) Assemblies() []*Assembly { return e.assemblies }

func (e *Experiment) Sector() *economy.Sector { return e.sector }

func (e *Experiment) Day() int { return e.engine.Day() }

func (e *Experiment) Config() *config.Config { return e.cfg }

// Ensemble repeats cfg under numRuns consecutive seeds in parallel.
func Ensemble(ctx context.Context, cfg *config.Config, reg *Registry, numRuns int) ([]*sim.Result, error) {
	build := func(seed int64) (*sim.Simulator, error) {
		c := *cfg
		c.Scenario.Seed = seed
		exp, err := New(&c, reg, nil)
		if err != nil {
			return nil, err
		}
		exp.Start()
		return exp.simulator, nil
	}
	return sim.NewEnsemble(build, numRuns, cfg.Scenario.Seed).Run(ctx, sim.Config{Days: cfg.Scenario.Days})
}
