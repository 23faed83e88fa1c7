package maximizer

import (
	"math"

	"github.com/san-kum/plantctl/internal/plant"
	"github.com/san-kum/plantctl/internal/sched"
)

// Default particle swarm weights.
const (
	DefaultInertia            = 0.75
	DefaultPersonalAttraction = 0.15
	DefaultNeighborAttraction = 0.15
	DefaultBestAttraction     = 0.5
)

// ParticleOption configures a Particle.
type ParticleOption func(*Particle)

// WithExplorationDays sets the day after which the particle stops hill
// climbing and starts swarming.
func WithExplorationDays(days int) ParticleOption {
	return func(p *Particle) { p.explorationDays = days }
}

// WithSwarmWeights overrides the velocity weights.
func WithSwarmWeights(inertia, personal, neighbor, best float64) ParticleOption {
	return func(p *Particle) {
		p.inertia = inertia
		p.personal = personal
		p.neighbor = neighbor
		p.best = best
	}
}

// Particle hill climbs until the exploration threshold and then moves by a
// velocity pulled towards its own best workforce, a randomly sampled
// competitor and the most profitable competitor.
//
// Competitor profits and workforces are read straight from the firm's peer
// list, which models them as public information.
type Particle struct {
	*HillClimber

	ctx  *sched.Context
	firm plant.Firm

	explorationDays int
	velocity        float64
	inertia         float64
	personal        float64
	neighbor        float64
	best            float64
}

func NewParticle(ctx *sched.Context, u plant.Unit, firm plant.Firm, opts ...ParticleOption) *Particle {
	p := &Particle{
		HillClimber: NewHillClimber(u),
		ctx:         ctx,
		firm:        firm,
		inertia:     DefaultInertia,
		personal:    DefaultPersonalAttraction,
		neighbor:    DefaultNeighborAttraction,
		best:        DefaultBestAttraction,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Particle) Velocity() float64 { return p.velocity }

func (p *Particle) swarming() bool {
	return p.ctx.Now() > p.explorationDays
}

func (p *Particle) ChooseTarget(current, previous ProfitObservation) (int, error) {
	if !p.swarming() {
		return p.HillClimber.ChooseTarget(current, previous)
	}

	noisy := p.memory.Put(current.Target, current.Profit)
	cur := float64(current.Target)
	memBest, _ := p.memory.Best()

	r := p.ctx.Rand
	p.velocity = r.Float64()*p.inertia*p.velocity +
		r.Float64()*p.personal*(float64(memBest)-cur) +
		r.Float64()*p.neighbor*(float64(p.sampleNeighbor(current))-cur) +
		r.Float64()*p.best*(float64(p.bestNeighbor(current))-cur)

	return p.move(current, previous, moveParams{
		direction: 1,
		step:      int(math.Round(p.velocity)),
		noisy:     noisy,
	})
}

// sampleNeighbor draws a random peer and returns its workforce, or ours when
// the draw is us or we earn more.
func (p *Particle) sampleNeighbor(current ProfitObservation) int {
	peers := p.firm.Peers()
	if len(peers) == 0 {
		return current.Target
	}
	peer := peers[p.ctx.Rand.Intn(len(peers))]
	if peer.ID == p.unit.ID() || current.Profit > peer.Profit {
		return current.Target
	}
	return peer.Workers
}

// bestNeighbor returns the workforce of the most profitable peer.
func (p *Particle) bestNeighbor(current ProfitObservation) int {
	best, bestProfit := current.Target, math.Inf(-1)
	for _, peer := range p.firm.Peers() {
		if peer.Profit > bestProfit {
			best, bestProfit = peer.Workers, peer.Profit
		}
	}
	return best
}

func (p *Particle) Reset(u plant.Unit) {
	p.HillClimber.Reset(u)
	p.velocity = 0
}
