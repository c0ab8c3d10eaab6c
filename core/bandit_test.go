package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

func TestBanditProbabilities(t *testing.T) {
	rng := erand.New(erand.NewSource(1))
	for _, k := range []int{1, 2, 10, 100} {
		bandit, err := NewBernoulliBandit(k, rng)
		require.NoError(t, err)
		require.Equal(t, k, bandit.K())

		probs := make([]float64, k)
		for arm := 0; arm < k; arm++ {
			p, err := bandit.Prob(arm)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, p, 0.0)
			assert.Less(t, p, 1.0)
			probs[arm] = p
		}
		assert.Equal(t, floats.Max(probs), bandit.BestProb())
		assert.Equal(t, probs[bandit.BestArm()], bandit.BestProb())
	}
}

func TestBanditInvalidArmCount(t *testing.T) {
	rng := erand.New(erand.NewSource(1))
	for _, k := range []int{0, -1, -10} {
		_, err := NewBernoulliBandit(k, rng)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	}
}

func TestBanditInvalidArm(t *testing.T) {
	rng := erand.New(erand.NewSource(1))
	bandit, err := NewBernoulliBandit(5, rng)
	require.NoError(t, err)

	for _, arm := range []int{-1, 5, 100} {
		_, err := bandit.Pull(arm)
		assert.ErrorIs(t, err, ErrInvalidArm)
		_, err = bandit.Prob(arm)
		assert.ErrorIs(t, err, ErrInvalidArm)
	}
}

func TestBanditPullRewards(t *testing.T) {
	rng := erand.New(erand.NewSource(42))
	bandit, err := NewBernoulliBandit(3, rng)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		reward, err := bandit.Pull(i % 3)
		require.NoError(t, err)
		assert.Contains(t, []int{0, 1}, reward)
	}
}
