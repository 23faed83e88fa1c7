package plantcontrol

import (
	"errors"

	"github.com/san-kum/plantctl/internal/plant"
)

var (
	// ErrInconsistentConfiguration is returned when a control cannot be
	// assembled from the requested parts.
	ErrInconsistentConfiguration = errors.New("plantcontrol: inconsistent configuration")

	// ErrInvariantViolation reports a computation that produced an
	// impossible value.
	ErrInvariantViolation = errors.New("plantcontrol: invariant violation")
)

// Level rates how adequate the current workforce is.
type Level int

const (
	Danger Level = iota
	Barely
	Acceptable
	TooMuch
)

func (l Level) String() string {
	switch l {
	case Danger:
		return "danger"
	case Barely:
		return "barely"
	case Acceptable:
		return "acceptable"
	case TooMuch:
		return "too_much"
	}
	return "unknown"
}

// Control is the surface every plant control and decorator implements.
type Control interface {
	plant.Listener

	MaxPrice(goodType string) int64
	MaxPriceFor(g plant.Good) int64
	SetCurrentWage(wage int64)
	CurrentWage() int64
	CanBuy() bool
	SetCanBuy(canBuy bool)

	Start()
	TurnOff()

	SetTarget(workers int)
	Target() int

	RateCurrentLevel() Level

	HR() plant.HumanResources
	Unit() plant.Unit
}

// Targeter adjusts the wage until the workforce matches the target.
type Targeter interface {
	plant.Listener
	SetTarget(workers int)
	Target() int
	Start()
	TurnOff()
}

// Maximizer decides the workforce target.
type Maximizer interface {
	plant.Listener
	Start()
	TurnOff()
}
