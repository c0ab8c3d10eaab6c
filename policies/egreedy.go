package policies

import (
	"fmt"

	erand "golang.org/x/exp/rand"

	"github.com/zeu5/bandit-regret-testing/core"
)

type EpsilonGreedyParams struct {
	Epsilon  float64
	InitProb float64
}

func (p EpsilonGreedyParams) validate() error {
	if p.Epsilon <= 0 || p.Epsilon >= 1 {
		return fmt.Errorf("%w: epsilon must be in (0,1), got %f", core.ErrInvalidConfiguration, p.Epsilon)
	}
	return nil
}

// EpsilonGreedyPolicy explores a uniformly random arm with a constant
// probability epsilon and exploits the best current estimate otherwise.
type EpsilonGreedyPolicy struct {
	estimates *estimates
	params    EpsilonGreedyParams
	rand      *erand.Rand
}

var _ core.Policy = &EpsilonGreedyPolicy{}

func NewEpsilonGreedyPolicy(k int, params EpsilonGreedyParams, rng *erand.Rand) (*EpsilonGreedyPolicy, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: arm count must be positive, got %d", core.ErrInvalidConfiguration, k)
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &EpsilonGreedyPolicy{
		estimates: newEstimates(k, params.InitProb),
		params:    params,
		rand:      rng,
	}, nil
}

func (p *EpsilonGreedyPolicy) SelectArm() int {
	if p.rand.Float64() < p.params.Epsilon {
		return p.rand.Intn(p.estimates.len())
	}
	return p.estimates.argMax()
}

func (p *EpsilonGreedyPolicy) Update(arm int, reward int) {
	p.estimates.update(arm, float64(reward))
}

func (p *EpsilonGreedyPolicy) Reset() {
	p.estimates.reset()
}

func (p *EpsilonGreedyPolicy) Estimates() []float64 {
	return p.estimates.copyValues()
}

type EpsilonGreedyPolicyConstructor struct {
	params EpsilonGreedyParams
}

var _ core.PolicyConstructor = &EpsilonGreedyPolicyConstructor{}

func NewEpsilonGreedyPolicyConstructor(params EpsilonGreedyParams) (*EpsilonGreedyPolicyConstructor, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &EpsilonGreedyPolicyConstructor{params: params}, nil
}

func (c *EpsilonGreedyPolicyConstructor) NewPolicy(k int, rng *erand.Rand) core.Policy {
	return &EpsilonGreedyPolicy{
		estimates: newEstimates(k, c.params.InitProb),
		params:    c.params,
		rand:      rng,
	}
}
