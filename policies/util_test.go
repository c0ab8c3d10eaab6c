package policies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	erand "golang.org/x/exp/rand"
)

func TestEstimatesInitialValues(t *testing.T) {
	e := newEstimates(4, 1.0)
	for i := 0; i < 4; i++ {
		assert.Equal(t, 1.0, e.values[i])
		assert.Equal(t, 0, e.counts[i])
	}
}

func TestRunningMeanMatchesArithmeticMean(t *testing.T) {
	rng := erand.New(erand.NewSource(5))
	e := newEstimates(3, 1.0)

	sum := float64(0)
	n := 200
	for i := 0; i < n; i++ {
		reward := float64(rng.Intn(2))
		sum += reward
		e.update(1, reward)
	}

	assert.Equal(t, n, e.counts[1])
	assert.InDelta(t, sum/float64(n), e.values[1], 1e-9)
	// Untouched arms keep the prior.
	assert.Equal(t, 1.0, e.values[0])
	assert.Equal(t, 1.0, e.values[2])
}

func TestArgMaxFirstIndexTieBreak(t *testing.T) {
	e := newEstimates(4, 1.0)
	assert.Equal(t, 0, e.argMax())

	e.values[2] = 2.0
	e.values[3] = 2.0
	assert.Equal(t, 2, e.argMax())
}

func TestEstimatesReset(t *testing.T) {
	e := newEstimates(2, 0.5)
	e.update(0, 1)
	e.update(1, 0)
	e.reset()
	assert.Equal(t, []float64{0.5, 0.5}, e.values)
	assert.Equal(t, []int{0, 0}, e.counts)
}
