package maximizer

import (
	"errors"

	"github.com/san-kum/plantctl/internal/plant"
)

// ErrInsufficientInformation asks the loop to observe longer and try again.
var ErrInsufficientInformation = errors.New("maximizer: insufficient information")

// ProfitObservation is what a unit earned over one observation window while
// its workforce sat at Target.
type ProfitObservation struct {
	Profit  float64 `json:"profit"`
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
	Target  int     `json:"target"`
	Cycle   int     `json:"cycle"`
}

// Algorithm proposes the next workforce target from the latest and the
// previous observation.
type Algorithm interface {
	ChooseTarget(current, previous ProfitObservation) (int, error)
	// Reset is called when the unit's machinery changes.
	Reset(u plant.Unit)
	TurnOff()
}

// ClampTarget maps target into {0} ∪ [min, max] of the unit.
func ClampTarget(target int, u plant.Unit) int {
	if target <= 0 {
		return 0
	}
	if hi := u.MaximumWorkersPossible(); target > hi {
		target = hi
	}
	if lo := u.MinimumWorkersNeeded(); target > 0 && target < lo {
		target = lo
	}
	return target
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func signInt(v int) int {
	return sign(float64(v))
}
