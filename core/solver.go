package core

import (
	"fmt"

	"github.com/zeu5/bandit-regret-testing/util"
)

// Solver drives the learning loop for one policy against a bandit: query
// the policy for an arm, pull it, feed the reward back and account regret
// against the hidden optimum. The regret accounting reads the bandit's
// ground-truth probabilities, which the policy never sees.
type Solver struct {
	bandit *BernoulliBandit
	policy Policy

	counts  []int
	regret  float64
	history *History
}

func NewSolver(bandit *BernoulliBandit, policy Policy) *Solver {
	return &Solver{
		bandit:  bandit,
		policy:  policy,
		counts:  make([]int, bandit.K()),
		history: NewHistory(),
	}
}

// Run executes the given number of rounds. Calling Run again extends the
// same history rather than resetting it.
func (s *Solver) Run(rounds int) error {
	if rounds < 0 {
		return fmt.Errorf("%w: rounds must be non-negative, got %d", ErrInvalidConfiguration, rounds)
	}
	for i := 0; i < rounds; i++ {
		arm := s.policy.SelectArm()
		reward, err := s.bandit.Pull(arm)
		if err != nil {
			return err
		}
		s.policy.Update(arm, reward)
		s.counts[arm]++

		prob, err := s.bandit.Prob(arm)
		if err != nil {
			return err
		}
		s.regret += s.bandit.BestProb() - prob
		s.history.Add(arm, s.regret)
	}
	return nil
}

func (s *Solver) Counts() []int {
	return util.CopyIntSlice(s.counts)
}

// Regret is the cumulative regret over all rounds executed so far.
func (s *Solver) Regret() float64 {
	return s.regret
}

func (s *Solver) Rounds() int {
	return s.history.Len()
}

func (s *Solver) History() *History {
	return s.history
}
