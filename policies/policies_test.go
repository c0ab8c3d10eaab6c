package policies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	erand "golang.org/x/exp/rand"

	"github.com/zeu5/bandit-regret-testing/core"
)

// With a single arm every policy must always select arm 0 and accumulate
// zero regret.
func TestSingleArmZeroRegret(t *testing.T) {
	egreedy, err := NewEpsilonGreedyPolicyConstructor(EpsilonGreedyParams{Epsilon: 0.01, InitProb: 1.0})
	require.NoError(t, err)
	ucb, err := NewUCBPolicyConstructor(UCBParams{Coef: 1, InitProb: 1.0})
	require.NoError(t, err)
	softmax, err := NewSoftMaxPolicyConstructor(SoftMaxParams{Temperature: 0.1, InitProb: 1.0})
	require.NoError(t, err)

	constructors := map[string]core.PolicyConstructor{
		"EpsilonGreedy":         egreedy,
		"DecayingEpsilonGreedy": NewDecayingEpsilonGreedyPolicyConstructor(DecayingEpsilonGreedyParams{InitProb: 1.0}),
		"UCB":                   ucb,
		"SoftMax":               softmax,
		"Random":                &RandomPolicyConstructor{},
	}

	for name, constructor := range constructors {
		rng := erand.New(erand.NewSource(1))
		bandit, err := core.NewBernoulliBandit(1, rng)
		require.NoError(t, err)

		solver := core.NewSolver(bandit, constructor.NewPolicy(bandit.K(), rng))
		require.NoError(t, solver.Run(300), name)

		assert.Equal(t, 300, solver.Counts()[0], name)
		assert.Zero(t, solver.Regret(), name)
		history := solver.History()
		for i := 0; i < history.Len(); i++ {
			assert.Equal(t, 0, history.Arm(i), name)
		}
	}
}
