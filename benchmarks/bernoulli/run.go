package bernoulli

import (
	"github.com/zeu5/bandit-regret-testing/analysis"
	"github.com/zeu5/bandit-regret-testing/benchmarks/common"
	"github.com/zeu5/bandit-regret-testing/core"
	"github.com/zeu5/bandit-regret-testing/policies"
)

// PrepareRegretComparison wires the policy experiments and the regret
// analyses for a Bernoulli bandit run.
func PrepareRegretComparison(flags *common.Flags) (*core.Comparison, error) {
	cmp := core.NewComparison()

	egreedy, err := policies.NewEpsilonGreedyPolicyConstructor(policies.EpsilonGreedyParams{
		Epsilon:  flags.Epsilon,
		InitProb: flags.InitProb,
	})
	if err != nil {
		return nil, err
	}
	ucb, err := policies.NewUCBPolicyConstructor(policies.UCBParams{
		Coef:     flags.Coef,
		InitProb: flags.InitProb,
	})
	if err != nil {
		return nil, err
	}
	softmax, err := policies.NewSoftMaxPolicyConstructor(policies.SoftMaxParams{
		Temperature: flags.Temperature,
		InitProb:    flags.InitProb,
	})
	if err != nil {
		return nil, err
	}

	cmp.AddAnalysis("regret", analysis.NewRegretAnalyzer(), analysis.NewRegretComparator(flags.SavePath))
	cmp.AddAnalysis("chart", analysis.NewRegretAnalyzer(), analysis.NewChartComparator(flags.SavePath))
	cmp.AddAnalysis("report", analysis.NewRegretAnalyzer(), analysis.NewReportComparator())

	cmp.AddExperiment(&core.Experiment{
		Name:   "EpsilonGreedy",
		Policy: egreedy,
	})
	cmp.AddExperiment(&core.Experiment{
		Name: "DecayingEpsilonGreedy",
		Policy: policies.NewDecayingEpsilonGreedyPolicyConstructor(policies.DecayingEpsilonGreedyParams{
			InitProb: flags.InitProb,
		}),
	})
	cmp.AddExperiment(&core.Experiment{
		Name:   "UCB",
		Policy: ucb,
	})
	cmp.AddExperiment(&core.Experiment{
		Name:   "SoftMax",
		Policy: softmax,
	})
	cmp.AddExperiment(&core.Experiment{
		Name:   "Random",
		Policy: &policies.RandomPolicyConstructor{},
	})

	return cmp, nil
}
