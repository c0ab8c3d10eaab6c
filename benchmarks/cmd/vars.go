package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zeu5/bandit-regret-testing/benchmarks/common"
)

var (
	flags       *common.Flags = common.DefaultFlags()
	savePath    string
	arms        int
	epsilon     float64
	coef        float64
	initProb    float64
	temperature float64

	numRuns       int
	rounds        int
	progressEvery int
	seed          uint64
)

func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&savePath, "save-path", flags.SavePath, "Path to save results")
	cmd.PersistentFlags().IntVar(&arms, "arms", flags.Arms, "Number of bandit arms")
	cmd.PersistentFlags().Float64Var(&epsilon, "epsilon", flags.Epsilon, "Exploration probability for epsilon-greedy")
	cmd.PersistentFlags().Float64Var(&coef, "coef", flags.Coef, "Exploration weight for UCB")
	cmd.PersistentFlags().Float64Var(&initProb, "init-prob", flags.InitProb, "Initial reward estimate for every arm")
	cmd.PersistentFlags().Float64Var(&temperature, "temperature", flags.Temperature, "Temperature for softmax sampling")

	cmd.PersistentFlags().IntVar(&numRuns, "num-runs", flags.NumRuns, "Number of runs")
	cmd.PersistentFlags().IntVar(&rounds, "rounds", flags.Rounds, "Number of rounds per run")
	cmd.PersistentFlags().IntVar(&progressEvery, "progress-every", flags.ProgressEvery, "Rounds between progress updates")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", flags.Seed, "Seed for the random source")
}

func UpdateFlags() {
	flags.SavePath = savePath
	flags.Arms = arms
	flags.Epsilon = epsilon
	flags.Coef = coef
	flags.InitProb = initProb
	flags.Temperature = temperature

	flags.NumRuns = numRuns
	flags.Rounds = rounds
	flags.ProgressEvery = progressEvery
	flags.Seed = seed
}
