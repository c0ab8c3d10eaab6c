package policies

import (
	"fmt"
	"math"

	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/zeu5/bandit-regret-testing/core"
)

type SoftMaxParams struct {
	// Temperature flattens the distribution as it grows; as it approaches
	// zero the policy becomes greedy.
	Temperature float64
	InitProb    float64
}

func (p SoftMaxParams) validate() error {
	if p.Temperature <= 0 {
		return fmt.Errorf("%w: temperature must be positive, got %f", core.ErrInvalidConfiguration, p.Temperature)
	}
	return nil
}

// SoftMaxPolicy samples an arm with probability proportional to
// exp(estimate/temperature).
type SoftMaxPolicy struct {
	estimates *estimates
	params    SoftMaxParams
	rand      *erand.Rand
}

var _ core.Policy = &SoftMaxPolicy{}

func NewSoftMaxPolicy(k int, params SoftMaxParams, rng *erand.Rand) (*SoftMaxPolicy, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: arm count must be positive, got %d", core.ErrInvalidConfiguration, k)
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &SoftMaxPolicy{
		estimates: newEstimates(k, params.InitProb),
		params:    params,
		rand:      rng,
	}, nil
}

func (p *SoftMaxPolicy) SelectArm() int {
	vals := p.estimates.copyValues()

	// Shift by the largest value before exponentiating to keep the
	// weights finite.
	largest := vals[0]
	for _, v := range vals {
		if v > largest {
			largest = v
		}
	}
	sum := float64(0)
	weights := make([]float64, len(vals))
	for i, v := range vals {
		weights[i] = math.Exp((v - largest) / p.params.Temperature)
		sum += weights[i]
	}
	for i := range weights {
		weights[i] /= sum
	}

	i, ok := sampleuv.NewWeighted(weights, p.rand).Take()
	if !ok {
		return p.estimates.argMax()
	}
	return i
}

func (p *SoftMaxPolicy) Update(arm int, reward int) {
	p.estimates.update(arm, float64(reward))
}

func (p *SoftMaxPolicy) Reset() {
	p.estimates.reset()
}

func (p *SoftMaxPolicy) Estimates() []float64 {
	return p.estimates.copyValues()
}

type SoftMaxPolicyConstructor struct {
	params SoftMaxParams
}

var _ core.PolicyConstructor = &SoftMaxPolicyConstructor{}

func NewSoftMaxPolicyConstructor(params SoftMaxParams) (*SoftMaxPolicyConstructor, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &SoftMaxPolicyConstructor{params: params}, nil
}

func (c *SoftMaxPolicyConstructor) NewPolicy(k int, rng *erand.Rand) core.Policy {
	return &SoftMaxPolicy{
		estimates: newEstimates(k, c.params.InitProb),
		params:    c.params,
		rand:      rng,
	}
}
