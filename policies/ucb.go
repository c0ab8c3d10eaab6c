package policies

import (
	"fmt"
	"math"

	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/zeu5/bandit-regret-testing/core"
)

type UCBParams struct {
	// Coef weighs the uncertainty bonus against the estimate.
	Coef     float64
	InitProb float64
}

func (p UCBParams) validate() error {
	if p.Coef < 0 {
		return fmt.Errorf("%w: coef must be non-negative, got %f", core.ErrInvalidConfiguration, p.Coef)
	}
	return nil
}

// ucbBonus is the uncertainty term for an arm pulled count times after t
// total rounds. It shrinks as the arm accumulates pulls.
func ucbBonus(coef float64, t int, count int) float64 {
	return coef * math.Sqrt(math.Log(float64(t))/(2*float64(count+1)))
}

// UCBPolicy scores every arm with its estimate plus an uncertainty bonus
// and picks the highest score, first index on ties.
type UCBPolicy struct {
	estimates *estimates
	played    int
	params    UCBParams
}

var _ core.Policy = &UCBPolicy{}

func NewUCBPolicy(k int, params UCBParams) (*UCBPolicy, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: arm count must be positive, got %d", core.ErrInvalidConfiguration, k)
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &UCBPolicy{
		estimates: newEstimates(k, params.InitProb),
		params:    params,
	}, nil
}

func (p *UCBPolicy) SelectArm() int {
	// played+1 counts the current round, keeping the log argument >= 1.
	t := p.played + 1
	scores := make([]float64, p.estimates.len())
	for i, est := range p.estimates.values {
		scores[i] = est + ucbBonus(p.params.Coef, t, p.estimates.counts[i])
	}
	return floats.MaxIdx(scores)
}

func (p *UCBPolicy) Update(arm int, reward int) {
	p.played++
	p.estimates.update(arm, float64(reward))
}

func (p *UCBPolicy) Reset() {
	p.played = 0
	p.estimates.reset()
}

func (p *UCBPolicy) Estimates() []float64 {
	return p.estimates.copyValues()
}

type UCBPolicyConstructor struct {
	params UCBParams
}

var _ core.PolicyConstructor = &UCBPolicyConstructor{}

func NewUCBPolicyConstructor(params UCBParams) (*UCBPolicyConstructor, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &UCBPolicyConstructor{params: params}, nil
}

func (c *UCBPolicyConstructor) NewPolicy(k int, _ *erand.Rand) core.Policy {
	return &UCBPolicy{
		estimates: newEstimates(k, c.params.InitProb),
		params:    c.params,
	}
}
