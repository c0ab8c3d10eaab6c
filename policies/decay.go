package policies

import (
	"fmt"

	erand "golang.org/x/exp/rand"

	"github.com/zeu5/bandit-regret-testing/core"
)

type DecayingEpsilonGreedyParams struct {
	InitProb float64
}

// explorationRate is the schedule 0.01 - 1/t for the policy's t'th round
// (1-indexed). It is negative for t < 100 and exactly zero at t = 100, so
// the policy is purely greedy for its first hundred rounds and only then
// starts exploring, approaching 0.01 as t grows. The reference regret
// curves depend on this exact shape.
func explorationRate(t int) float64 {
	return 0.01 - 1/float64(t)
}

// DecayingEpsilonGreedyPolicy is epsilon-greedy with the exploration
// probability following explorationRate over the policy's own rounds.
type DecayingEpsilonGreedyPolicy struct {
	estimates *estimates
	played    int
	rand      *erand.Rand
}

var _ core.Policy = &DecayingEpsilonGreedyPolicy{}

func NewDecayingEpsilonGreedyPolicy(k int, params DecayingEpsilonGreedyParams, rng *erand.Rand) (*DecayingEpsilonGreedyPolicy, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: arm count must be positive, got %d", core.ErrInvalidConfiguration, k)
	}
	return &DecayingEpsilonGreedyPolicy{
		estimates: newEstimates(k, params.InitProb),
		rand:      rng,
	}, nil
}

func (p *DecayingEpsilonGreedyPolicy) SelectArm() int {
	// The round counter advances in Update, so the current round is
	// played+1.
	if p.rand.Float64() < explorationRate(p.played+1) {
		return p.rand.Intn(p.estimates.len())
	}
	return p.estimates.argMax()
}

func (p *DecayingEpsilonGreedyPolicy) Update(arm int, reward int) {
	p.played++
	p.estimates.update(arm, float64(reward))
}

func (p *DecayingEpsilonGreedyPolicy) Reset() {
	p.played = 0
	p.estimates.reset()
}

func (p *DecayingEpsilonGreedyPolicy) Estimates() []float64 {
	return p.estimates.copyValues()
}

type DecayingEpsilonGreedyPolicyConstructor struct {
	params DecayingEpsilonGreedyParams
}

var _ core.PolicyConstructor = &DecayingEpsilonGreedyPolicyConstructor{}

func NewDecayingEpsilonGreedyPolicyConstructor(params DecayingEpsilonGreedyParams) *DecayingEpsilonGreedyPolicyConstructor {
	return &DecayingEpsilonGreedyPolicyConstructor{params: params}
}

func (c *DecayingEpsilonGreedyPolicyConstructor) NewPolicy(k int, rng *erand.Rand) core.Policy {
	return &DecayingEpsilonGreedyPolicy{
		estimates: newEstimates(k, c.params.InitProb),
		rand:      rng,
	}
}
