package sched

// Phase orders the work done within one simulated day.
type Phase int

const (
	Dawn Phase = iota
	AdjustPrices
	Trade
	Production
	Think
	Cleanup
)

var phaseNames = [...]string{"dawn", "adjust_prices", "trade", "production", "think", "cleanup"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Phases lists every phase in execution order.
func Phases() []Phase {
	return []Phase{Dawn, AdjustPrices, Trade, Production, Think, Cleanup}
}
