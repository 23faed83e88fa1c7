package economy

import (
	"errors"
	"fmt"

	"github.com/san-kum/plantctl/internal/plant"
)

var ErrPlantFull = errors.New("economy: plant is full")

// ProductionFunction maps a workforce to weekly output 7·(A·w − B·w²),
// floored at zero.
type ProductionFunction struct {
	A float64 `yaml:"a" json:"a"`
	B float64 `yaml:"b" json:"b"`
}

func (f ProductionFunction) Weekly(workers int) float64 {
	w := float64(workers)
	return max(0, 7*(f.A*w-f.B*w*w))
}

// Plant is a production unit with machinery bounds and a workforce.
type Plant struct {
	id             string
	machinery      plant.Machinery
	production     ProductionFunction
	inputPerWorker float64

	workers   []plant.Worker
	listeners []plant.Listener
	release   func(plant.Worker)
	shut      bool
}

// NewPlant builds an empty plant. inputPerWorker is the daily input each
// worker consumes.
func NewPlant(id string, m plant.Machinery, f ProductionFunction, inputPerWorker float64) *Plant {
	return &Plant{
		id:             id,
		machinery:      m,
		production:     f,
		inputPerWorker: inputPerWorker,
	}
}

func (p *Plant) ID() string { return p.id }

func (p *Plant) NumberOfWorkers() int { return len(p.workers) }

func (p *Plant) Workers() []plant.Worker {
	out := make([]plant.Worker, len(p.workers))
	copy(out, p.workers)
	return out
}

func (p *Plant) MinimumWorkersNeeded() int { return p.machinery.MinWorkers }

func (p *Plant) MaximumWorkersPossible() int { return p.machinery.MaxWorkers }

func (p *Plant) WeeklyFixedCosts() int64 { return p.machinery.WeeklyFixedCosts }

func (p *Plant) Machinery() plant.Machinery { return p.machinery }

func (p *Plant) Throughput(workers int) float64 { return p.production.Weekly(workers) }

func (p *Plant) WeeklyInputNeeds(workers int) float64 {
	return 7 * p.inputPerWorker * float64(workers)
}

// Hire adds w and notifies listeners.
func (p *Plant) Hire(w plant.Worker) error {
	if p.shut {
		return fmt.Errorf("hire %s into %s: plant is shut down", w.ID, p.id)
	}
	if len(p.workers) >= p.machinery.MaxWorkers {
		return fmt.Errorf("hire %s into %s: %w", w.ID, p.id, ErrPlantFull)
	}
	before := len(p.workers)
	p.workers = append(p.workers, w)
	p.notifyWorkforce(before)
	return nil
}

// RemoveWorker releases w back to whoever registered with OnRelease.
func (p *Plant) RemoveWorker(w plant.Worker) bool {
	for i, have := range p.workers {
		if have.ID != w.ID {
			continue
		}
		before := len(p.workers)
		p.workers = append(p.workers[:i], p.workers[i+1:]...)
		if p.release != nil {
			p.release(have)
		}
		p.notifyWorkforce(before)
		return true
	}
	return false
}

// OnRelease sets the callback receiving every removed worker.
func (p *Plant) OnRelease(fn func(plant.Worker)) { p.release = fn }

// SetMachinery swaps the machinery and tells listeners.
func (p *Plant) SetMachinery(m plant.Machinery) {
	p.machinery = m
	for _, l := range p.snapshot() {
		l.ChangeInMachineryEvent(p, m)
	}
}

// Shutdown stops hiring and tells listeners. It is idempotent.
func (p *Plant) Shutdown() {
	if p.shut {
		return
	}
	p.shut = true
	for _, l := range p.snapshot() {
		l.PlantShutdownEvent(p)
	}
}

func (p *Plant) AddListener(l plant.Listener) { p.listeners = append(p.listeners, l) }

func (p *Plant) RemoveListener(l plant.Listener) bool {
	for i, have := range p.listeners {
		if have == l {
			p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Plant) snapshot() []plant.Listener {
	return append([]plant.Listener(nil), p.listeners...)
}

func (p *Plant) notifyWorkforce(before int) {
	now := len(p.workers)
	for _, l := range p.snapshot() {
		l.ChangeInWorkforceEvent(p, now, before)
	}
}

func (p *Plant) notifyWage(wage int64) {
	for _, l := range p.snapshot() {
		l.ChangeInWageEvent(p, len(p.workers), wage)
	}
}
