// Package plant defines what plant controls consume from the rest of the
// economy: the production unit, its labor market, the human resources
// department that trades on it and the firm that owns them.
package plant

import "errors"

// ErrNoOffer is reported when a market has no visible seller.
var ErrNoOffer = errors.New("plant: no offer available")

// Worker is a hired or hireable person. MinimumWage is the daily wage below
// which the worker refuses to work.
type Worker struct {
	ID          string
	MinimumWage int64
}

// Machinery bounds the workforce of a unit and fixes its weekly costs.
type Machinery struct {
	MinWorkers       int   `yaml:"min_workers" json:"min_workers"`
	MaxWorkers       int   `yaml:"max_workers" json:"max_workers"`
	WeeklyFixedCosts int64 `yaml:"weekly_fixed_costs" json:"weekly_fixed_costs"`
}

// Listener receives unit events. Units keep listeners as plain references;
// listeners unregister themselves when turned off.
type Listener interface {
	ChangeInWorkforceEvent(u Unit, now, before int)
	ChangeInWageEvent(u Unit, workers int, wage int64)
	ChangeInMachineryEvent(u Unit, machinery Machinery)
	PlantShutdownEvent(u Unit)
}

// Unit is a production unit.
type Unit interface {
	ID() string
	NumberOfWorkers() int
	Workers() []Worker
	MinimumWorkersNeeded() int
	MaximumWorkersPossible() int
	WeeklyFixedCosts() int64

	// Throughput is the weekly output with the given workforce.
	Throughput(workers int) float64
	// WeeklyInputNeeds is the weekly input consumed with the given workforce.
	WeeklyInputNeeds(workers int) float64

	// RemoveWorker releases w. It reports false when w is not employed here.
	RemoveWorker(w Worker) bool

	AddListener(l Listener)
	RemoveListener(l Listener) bool
}

// Good is a single traded item.
type Good struct {
	Type string
	ID   string
	Cost int64
}
