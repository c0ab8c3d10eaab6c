package policies

import "gonum.org/v1/gonum/floats"

// estimates tracks the running sample mean of the rewards observed for
// each arm, together with the per-arm pull counts.
type estimates struct {
	values []float64
	counts []int
	prior  float64
}

func newEstimates(k int, prior float64) *estimates {
	e := &estimates{
		values: make([]float64, k),
		counts: make([]int, k),
		prior:  prior,
	}
	e.reset()
	return e
}

func (e *estimates) reset() {
	for i := range e.values {
		e.values[i] = e.prior
		e.counts[i] = 0
	}
}

// update folds a reward into the arm's running mean. The recursion
// reproduces the arithmetic mean of all rewards observed for the arm.
func (e *estimates) update(arm int, reward float64) {
	e.counts[arm]++
	e.values[arm] += (reward - e.values[arm]) / float64(e.counts[arm])
}

// argMax returns the arm with the highest estimate, first index on ties.
func (e *estimates) argMax() int {
	return floats.MaxIdx(e.values)
}

func (e *estimates) len() int {
	return len(e.values)
}

func (e *estimates) copyValues() []float64 {
	out := make([]float64, len(e.values))
	copy(out, e.values)
	return out
}
