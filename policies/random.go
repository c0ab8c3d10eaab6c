package policies

import (
	erand "golang.org/x/exp/rand"

	"github.com/zeu5/bandit-regret-testing/core"
)

// RandomPolicy pulls a uniformly random arm every round. It is the
// exploration-only baseline the learning policies are compared against.
type RandomPolicy struct {
	k    int
	rand *erand.Rand
}

var _ core.Policy = &RandomPolicy{}

func NewRandomPolicy(k int, rng *erand.Rand) *RandomPolicy {
	return &RandomPolicy{k: k, rand: rng}
}

func (r *RandomPolicy) SelectArm() int {
	return r.rand.Intn(r.k)
}

func (r *RandomPolicy) Update(_ int, _ int) {}

func (r *RandomPolicy) Reset() {}

type RandomPolicyConstructor struct{}

var _ core.PolicyConstructor = &RandomPolicyConstructor{}

func (r *RandomPolicyConstructor) NewPolicy(k int, rng *erand.Rand) core.Policy {
	return NewRandomPolicy(k, rng)
}
