package core

import (
	"fmt"

	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// BernoulliBandit models K independent arms, each with an unknown success
// probability drawn uniformly from [0,1) at construction. The probability
// table is never mutated afterwards, so concurrent reads are safe.
type BernoulliBandit struct {
	k        int
	probs    []float64
	bestArm  int
	bestProb float64

	rand *erand.Rand
}

func NewBernoulliBandit(k int, rng *erand.Rand) (*BernoulliBandit, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: arm count must be positive, got %d", ErrInvalidConfiguration, k)
	}
	probs := make([]float64, k)
	for i := range probs {
		probs[i] = rng.Float64()
	}
	best := floats.MaxIdx(probs)
	return &BernoulliBandit{
		k:        k,
		probs:    probs,
		bestArm:  best,
		bestProb: probs[best],
		rand:     rng,
	}, nil
}

func (b *BernoulliBandit) K() int {
	return b.k
}

// BestArm is the index of the arm with the highest success probability,
// first index on ties.
func (b *BernoulliBandit) BestArm() int {
	return b.bestArm
}

func (b *BernoulliBandit) BestProb() float64 {
	return b.bestProb
}

// Prob exposes the hidden ground-truth probability of an arm. It is an
// oracle for regret accounting and must not be consulted by policies.
func (b *BernoulliBandit) Prob(arm int) (float64, error) {
	if arm < 0 || arm >= b.k {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidArm, arm, b.k)
	}
	return b.probs[arm], nil
}

// Pull draws a reward for the given arm: 1 with the arm's success
// probability, 0 otherwise.
func (b *BernoulliBandit) Pull(arm int) (int, error) {
	if arm < 0 || arm >= b.k {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidArm, arm, b.k)
	}
	if b.rand.Float64() < b.probs[arm] {
		return 1, nil
	}
	return 0, nil
}
