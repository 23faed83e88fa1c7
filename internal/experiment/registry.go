package experiment

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/plantctl/internal/config"
	"github.com/san-kum/plantctl/internal/economy"
	"github.com/san-kum/plantctl/internal/eventlog"
	"github.com/san-kum/plantctl/internal/maximizer"
	"github.com/san-kum/plantctl/internal/plantcontrol"
	"github.com/san-kum/plantctl/internal/sched"
	"github.com/san-kum/plantctl/internal/targeter"
)

// Env is what factories may use to build the loops of one firm.
type Env struct {
	Ctx    *sched.Context
	Firm   *economy.Firm
	Sector *economy.Sector
	Config config.ControlConfig
	Log    eventlog.Logger
}

type (
	TargeterFactory  func(env Env, c plantcontrol.Control) (plantcontrol.Targeter, error)
	AlgorithmFactory func(env Env) (maximizer.Algorithm, error)
	MaximizerFactory func(env Env, c plantcontrol.Control, a maximizer.Algorithm) (plantcontrol.Maximizer, error)
)

// Registry maps component identifiers to factories.
type Registry struct {
	targeters  map[string]TargeterFactory
	maximizers map[string]MaximizerFactory
	algorithms map[string]AlgorithmFactory
	decorators map[string]plantcontrol.DecoratorFunc
}

func NewRegistry() *Registry {
	r := &Registry{
		targeters:  make(map[string]TargeterFactory),
		maximizers: make(map[string]MaximizerFactory),
		algorithms: make(map[string]AlgorithmFactory),
		decorators: make(map[string]plantcontrol.DecoratorFunc),
	}

	r.targeters["market-look"] = func(env Env, c plantcontrol.Control) (plantcontrol.Targeter, error) {
		return targeter.NewMarketLook(env.Ctx, c,
			targeter.WithSpeed(env.Config.TargeterSpeed),
			targeter.WithJitter(env.Config.TargeterJitter),
			targeter.WithLogger(env.Log)), nil
	}
	r.targeters["pid"] = func(env Env, c plantcontrol.Control) (plantcontrol.Targeter, error) {
		opts := []targeter.PIDOption{
			targeter.WithGains(env.Config.PID),
			targeter.WithQuickFiring(env.Config.QuickFiring),
			targeter.WithPIDSpeed(env.Config.PIDSpeed),
			targeter.WithPIDLogger(env.Log),
		}
		if cas := env.Config.PIDCascade; cas.Enabled {
			opts = append(opts, targeter.WithCascade(cas.Master, cas.Slave))
		}
		return targeter.NewPID(env.Ctx, c, opts...), nil
	}

	r.maximizers["try-again"] = func(env Env, c plantcontrol.Control, a maximizer.Algorithm) (plantcontrol.Maximizer, error) {
		return maximizer.NewLoop(env.Ctx, c, env.Firm, a,
			maximizer.WithObservationWeeks(env.Config.ObservationWeeks),
			maximizer.WithCheckInterval(env.Config.CheckInterval),
			maximizer.WithJitter(env.Config.Jitter),
			maximizer.WithRandomSpeed(env.Config.RandomSpeed),
			maximizer.WithLogger(env.Log)), nil
	}

	r.maximizers["periodic"] = func(env Env, c plantcontrol.Control, a maximizer.Algorithm) (plantcontrol.Maximizer, error) {
		return maximizer.NewLoop(env.Ctx, c, env.Firm, a,
			maximizer.WithPeriodic(true),
			maximizer.WithObservationWeeks(0),
			maximizer.WithCheckInterval(env.Config.PeriodicInterval),
			maximizer.WithJitter(0),
			maximizer.WithRandomSpeed(true),
			maximizer.WithLogger(env.Log)), nil
	}
	r.maximizers["every-week"] = func(env Env, c plantcontrol.Control, a maximizer.Algorithm) (plantcontrol.Maximizer, error) {
		return maximizer.NewLoop(env.Ctx, c, env.Firm, a,
			maximizer.WithPeriodic(true),
			maximizer.WithObservationWeeks(0),
			maximizer.WithCheckInterval(7),
			maximizer.WithJitter(0),
			maximizer.WithRandomSpeed(env.Config.RandomSpeed),
			maximizer.WithLogger(env.Log)), nil
	}

	r.algorithms["hill-climber"] = func(env Env) (maximizer.Algorithm, error) {
		return maximizer.NewHillClimber(env.Firm.Plant(), maximizer.WithStepSize(env.Config.StepSize)), nil
	}
	r.algorithms["always-moving"] = func(env Env) (maximizer.Algorithm, error) {
		return maximizer.NewAlwaysMoving(env.Firm.Plant()), nil
	}
	r.algorithms["annealing"] = func(env Env) (maximizer.Algorithm, error) {
		a := env.Config.Annealing
		return maximizer.NewAnnealing(env.Firm.Plant(), env.Ctx.Rand,
			maximizer.WithTemperature(a.Temperature, a.Decay)), nil
	}
	r.algorithms["annealing-reacting"] = func(env Env) (maximizer.Algorithm, error) {
		a := env.Config.Annealing
		return maximizer.NewAnnealingReacting(env.Firm.Plant(), env.Ctx.Rand,
			maximizer.WithTemperature(a.Temperature, a.Decay)), nil
	}
	r.algorithms["gradient"] = func(env Env) (maximizer.Algorithm, error) {
		g := env.Config.Gradient
		return maximizer.NewGradient(env.Firm.Plant(),
			maximizer.WithGradientGain(g.Gain),
			maximizer.WithMaxStep(g.MaxStep)), nil
	}
	r.algorithms["pid-climber"] = func(env Env) (maximizer.Algorithm, error) {
		unit := env.Firm.Plant()
		return maximizer.NewPIDClimber(unit, env.Config.ClimberPID, unit.NumberOfWorkers()), nil
	}
	r.algorithms["particle"] = func(env Env) (maximizer.Algorithm, error) {
		p := env.Config.Particle
		return maximizer.NewParticle(env.Ctx, env.Firm.Plant(), env.Firm,
			maximizer.WithExplorationDays(p.ExplorationDays),
			maximizer.WithSwarmWeights(p.Inertia, p.Personal, p.Neighbor, p.Best)), nil
	}
	r.algorithms["marginal"] = func(env Env) (maximizer.Algorithm, error) {
		est, err := estimator(env)
		if err != nil {
			return nil, err
		}
		return maximizer.NewMarginal(env.Firm.Plant(), est), nil
	}
	r.algorithms["robust-marginal"] = func(env Env) (maximizer.Algorithm, error) {
		est, err := estimator(env)
		if err != nil {
			return nil, err
		}
		return maximizer.NewRobust(maximizer.NewMarginal(env.Firm.Plant(), est)), nil
	}
	r.algorithms["marginal-and-pid"] = func(env Env) (maximizer.Algorithm, error) {
		est, err := estimator(env)
		if err != nil {
			return nil, err
		}
		unit := env.Firm.Plant()
		return maximizer.NewMarginalAndPID(unit, est, maximizer.DefaultMarginalProfitGains, unit.NumberOfWorkers()), nil
	}
	r.algorithms["marginal-pid"] = func(env Env) (maximizer.Algorithm, error) {
		return marginalPID(env)
	}
	r.algorithms["cascade-efficiency"] = func(env Env) (maximizer.Algorithm, error) {
		m, err := marginalPID(env)
		if err != nil {
			return nil, err
		}
		la := env.Config.LookAhead
		if !la.Enabled {
			return maximizer.NewCascadeEfficiency(m, maximizer.LookAheadDisabled), nil
		}
		lookup := maximizer.NewChangeLookup(env.Ctx, env.Sector.Goods, la.Window)
		c := maximizer.NewCascadeEfficiency(m, maximizer.LookAhead{Indicator: lookup, Gains: la.Gains})
		return stopping{Algorithm: c, stop: lookup.TurnOff}, nil
	}

	r.decorators["match-best"] = plantcontrol.MatchBestDecorator

	return r
}

// stopping also stops a helper when the algorithm is turned off.
type stopping struct {
	maximizer.Algorithm
	stop func()
}

func (s stopping) TurnOff() {
	s.Algorithm.TurnOff()
	s.stop()
}

func estimator(env Env) (*maximizer.PredictorEstimator, error) {
	policy, err := maximizer.ParseRandomizationPolicy(env.Config.Marginal.Policy)
	if err != nil {
		return nil, err
	}
	return env.Firm.Estimator(policy, env.Ctx.Rand), nil
}

func marginalPID(env Env) (*maximizer.MarginalPID, error) {
	est, err := estimator(env)
	if err != nil {
		return nil, err
	}
	m := env.Config.Marginal
	unit := env.Firm.Plant()
	return maximizer.NewMarginalPID(unit, est, unit.NumberOfWorkers(),
		maximizer.WithMarginalGains(m.Gains),
		maximizer.WithSigmoid(m.Sigmoid),
		maximizer.WithTargetEfficiency(m.TargetEfficiency)), nil
}

func (r *Registry) RegisterTargeter(name string, f TargeterFactory)   { r.targeters[name] = f }
func (r *Registry) RegisterMaximizer(name string, f MaximizerFactory) { r.maximizers[name] = f }
func (r *Registry) RegisterAlgorithm(name string, f AlgorithmFactory) { r.algorithms[name] = f }
func (r *Registry) RegisterDecorator(name string, f plantcontrol.DecoratorFunc) {
	r.decorators[name] = f
}

func (r *Registry) GetTargeter(name string) (TargeterFactory, error) {
	fn, ok := r.targeters[name]
	if !ok {
		return nil, fmt.Errorf("unknown targeter: %s: %w", name, plantcontrol.ErrInconsistentConfiguration)
	}
	return fn, nil
}

func (r *Registry) GetMaximizer(name string) (MaximizerFactory, error) {
	fn, ok := r.maximizers[name]
	if !ok {
		return nil, fmt.Errorf("unknown maximizer: %s: %w", name, plantcontrol.ErrInconsistentConfiguration)
	}
	return fn, nil
}

func (r *Registry) GetAlgorithm(name string) (AlgorithmFactory, error) {
	fn, ok := r.algorithms[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %s: %w", name, plantcontrol.ErrInconsistentConfiguration)
	}
	return fn, nil
}

func (r *Registry) GetDecorator(name string) (plantcontrol.DecoratorFunc, error) {
	fn, ok := r.decorators[name]
	if !ok {
		return nil, fmt.Errorf("unknown decorator: %s: %w", name, plantcontrol.ErrInconsistentConfiguration)
	}
	return fn, nil
}

func (r *Registry) ListTargeters() []string  { return sortedKeys(r.targeters) }
func (r *Registry) ListMaximizers() []string { return sortedKeys(r.maximizers) }
func (r *Registry) ListAlgorithms() []string { return sortedKeys(r.algorithms) }
func (r *Registry) ListDecorators() []string { return sortedKeys(r.decorators) }

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Assembly is the control of one firm with its parts.
type Assembly struct {
	Firm      *economy.Firm
	Control   plantcontrol.Control
	Composite *plantcontrol.Composite
	Targeter  plantcontrol.Targeter
	Maximizer plantcontrol.Maximizer
	Algorithm maximizer.Algorithm
}

// Build assembles the control of env.Firm. Decorators wrap the base
// composite in order and both loops are built against the outermost
// wrapper, so their wage and buying decisions pass through every
// decorator. The result is wired to the plant and its human resources but
// not started.
func (r *Registry) Build(env Env) (*Assembly, error) {
	cc := env.Config
	if env.Log == nil {
		env.Log = eventlog.Nop
	}

	tf, err := r.GetTargeter(cc.Targeter)
	if err != nil {
		return nil, err
	}
	mf, err := r.GetMaximizer(cc.Maximizer)
	if err != nil {
		return nil, err
	}
	af, err := r.GetAlgorithm(cc.Algorithm)
	if err != nil {
		return nil, err
	}
	fns := make([]plantcontrol.DecoratorFunc, 0, len(cc.Decorators))
	for _, name := range cc.Decorators {
		fn, err := r.GetDecorator(name)
		if err != nil {
			return nil, err
		}
		fns = append(fns, fn)
	}

	base := plantcontrol.NewComposite(env.Firm.HR())
	outer, err := plantcontrol.Decorate(base, fns...)
	if err != nil {
		return nil, inconsistent(err)
	}

	// decorators may already listen to markets, so every later failure
	// turns the chain off again
	t, err := tf(env, outer)
	if err != nil {
		outer.TurnOff()
		return nil, fmt.Errorf("targeter %s: %w", cc.Targeter, inconsistent(err))
	}
	a, err := af(env)
	if err != nil {
		outer.TurnOff()
		return nil, fmt.Errorf("algorithm %s: %w", cc.Algorithm, inconsistent(err))
	}
	m, err := mf(env, outer, a)
	if err != nil {
		a.TurnOff()
		outer.TurnOff()
		return nil, fmt.Errorf("maximizer %s: %w", cc.Maximizer, inconsistent(err))
	}
	if err := base.Bind(t, m); err != nil {
		outer.TurnOff()
		return nil, err
	}

	base.Listen(outer)
	env.Firm.HR().Bind(outer)

	return &Assembly{
		Firm:      env.Firm,
		Control:   outer,
		Composite: base,
		Targeter:  t,
		Maximizer: m,
		Algorithm: a,
	}, nil
}

func inconsistent(err error) error {
	if errors.Is(err, plantcontrol.ErrInconsistentConfiguration) {
		return err
	}
	return fmt.Errorf("%w: %w", plantcontrol.ErrInconsistentConfiguration, err)
}
