package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	erand "golang.org/x/exp/rand"
)

// fixedArmPolicy always pulls the same arm.
type fixedArmPolicy struct {
	arm     int
	updates int
}

func (p *fixedArmPolicy) SelectArm() int { return p.arm }

func (p *fixedArmPolicy) Update(_ int, _ int) { p.updates++ }

func (p *fixedArmPolicy) Reset() { p.updates = 0 }

// cyclingPolicy walks over the arms round-robin.
type cyclingPolicy struct {
	k    int
	next int
}

func (p *cyclingPolicy) SelectArm() int { return p.next }

func (p *cyclingPolicy) Update(_ int, _ int) { p.next = (p.next + 1) % p.k }

func (p *cyclingPolicy) Reset() { p.next = 0 }

func TestSolverCounts(t *testing.T) {
	rng := erand.New(erand.NewSource(1))
	bandit, err := NewBernoulliBandit(5, rng)
	require.NoError(t, err)

	policy := &fixedArmPolicy{arm: 2}
	solver := NewSolver(bandit, policy)
	require.NoError(t, solver.Run(100))

	counts := solver.Counts()
	assert.Equal(t, 100, counts[2])
	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, 100, total)
	assert.Equal(t, 100, solver.Rounds())
	assert.Equal(t, 100, policy.updates)
}

func TestSolverRegretAccounting(t *testing.T) {
	rng := erand.New(erand.NewSource(7))
	bandit, err := NewBernoulliBandit(4, rng)
	require.NoError(t, err)

	solver := NewSolver(bandit, &cyclingPolicy{k: 4})
	require.NoError(t, solver.Run(200))

	history := solver.History()
	require.Equal(t, 200, history.Len())

	// Regret after round t equals bestProb*t minus the summed true
	// probabilities of the arms pulled so far.
	pulled := float64(0)
	prev := float64(0)
	for i := 0; i < history.Len(); i++ {
		prob, err := bandit.Prob(history.Arm(i))
		require.NoError(t, err)
		pulled += prob

		regret := history.Regret(i)
		assert.InDelta(t, bandit.BestProb()*float64(i+1)-pulled, regret, 1e-9)
		assert.GreaterOrEqual(t, regret, prev-1e-9)
		prev = regret
	}
	assert.InDelta(t, prev, solver.Regret(), 1e-9)
}

func TestSolverRunExtends(t *testing.T) {
	rng := erand.New(erand.NewSource(3))
	bandit, err := NewBernoulliBandit(3, rng)
	require.NoError(t, err)

	solver := NewSolver(bandit, &fixedArmPolicy{arm: 0})
	require.NoError(t, solver.Run(10))
	require.NoError(t, solver.Run(15))
	assert.Equal(t, 25, solver.Rounds())
	assert.Equal(t, 25, solver.Counts()[0])
}

func TestSolverInvalidRounds(t *testing.T) {
	rng := erand.New(erand.NewSource(3))
	bandit, err := NewBernoulliBandit(3, rng)
	require.NoError(t, err)

	solver := NewSolver(bandit, &fixedArmPolicy{arm: 0})
	assert.ErrorIs(t, solver.Run(-1), ErrInvalidConfiguration)
	assert.NoError(t, solver.Run(0))
	assert.Equal(t, 0, solver.Rounds())
}

func TestSolverSingleArm(t *testing.T) {
	rng := erand.New(erand.NewSource(11))
	bandit, err := NewBernoulliBandit(1, rng)
	require.NoError(t, err)
	assert.Equal(t, 0, bandit.BestArm())

	solver := NewSolver(bandit, &fixedArmPolicy{arm: 0})
	require.NoError(t, solver.Run(500))

	assert.Equal(t, 500, solver.Counts()[0])
	assert.Zero(t, solver.Regret())
	history := solver.History()
	for i := 0; i < history.Len(); i++ {
		assert.Zero(t, history.Regret(i))
	}
}
