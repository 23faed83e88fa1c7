package maximizer

import "sort"

// ProfitMemory maps a workforce to the last profit observed with it.
type ProfitMemory struct {
	profits map[int]float64
}

// NewProfitMemory returns a memory seeded with the loss of running without
// workers.
func NewProfitMemory(weeklyFixedCosts float64) *ProfitMemory {
	m := &ProfitMemory{}
	m.Seed(weeklyFixedCosts)
	return m
}

// Seed forgets everything but the zero workforce entry.
func (m *ProfitMemory) Seed(weeklyFixedCosts float64) {
	m.profits = map[int]float64{0: -weeklyFixedCosts}
}

// Put overwrites the entry for workers. It reports whether an existing
// different profit was replaced, which signals noise.
func (m *ProfitMemory) Put(workers int, profit float64) bool {
	old, ok := m.profits[workers]
	m.profits[workers] = profit
	return ok && old != profit
}

func (m *ProfitMemory) Get(workers int) (float64, bool) {
	p, ok := m.profits[workers]
	return p, ok
}

// Accepts reports whether moving to workers is allowed when currently
// earning profit: unknown workforces are always allowed, known ones only if
// they did at least as well.
func (m *ProfitMemory) Accepts(workers int, profit float64) bool {
	p, ok := m.profits[workers]
	return !ok || p >= profit
}

// Best returns the workforce with the highest remembered profit. Ties go to
// the smallest workforce. ok is false on an empty memory.
func (m *ProfitMemory) Best() (workers int, ok bool) {
	keys := make([]int, 0, len(m.profits))
	for k := range m.profits {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		if !ok || m.profits[k] > m.profits[workers] {
			workers, ok = k, true
		}
	}
	return workers, ok
}

func (m *ProfitMemory) Len() int { return len(m.profits) }

func (m *ProfitMemory) Clear() {
	m.profits = map[int]float64{}
}
