package targeter

import "github.com/san-kum/plantctl/internal/plant"

// releaseAboveTarget removes workers from the top of sorted, a snapshot in
// ascending minimum wage order, until the unit is down to target. Workers
// that already left are skipped. It returns the workers it removed.
func releaseAboveTarget(unit plant.Unit, sorted []plant.Worker, target int) []plant.Worker {
	var removed []plant.Worker
	for i := len(sorted) - 1; i >= 0 && unit.NumberOfWorkers() > target; i-- {
		if unit.RemoveWorker(sorted[i]) {
			removed = append(removed, sorted[i])
		}
	}
	return removed
}
