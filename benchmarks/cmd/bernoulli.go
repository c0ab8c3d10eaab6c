package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/zeu5/bandit-regret-testing/benchmarks/bernoulli"
	"github.com/zeu5/bandit-regret-testing/core"
)

func BernoulliCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bernoulli",
		Short: "Compare action-selection policies on a Bernoulli bandit",
		RunE: func(cmd *cobra.Command, args []string) error {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt) // channel for interrupts from os

			doneCh := make(chan struct{}) // channel for done signal from application

			ctx, cancel := context.WithCancel(context.Background())
			go func() {
				select {
				case <-sigCh:
				case <-doneCh:
				}
				cancel()
			}()

			cmp, err := bernoulli.PrepareRegretComparison(flags)
			if err != nil {
				return err
			}
			err = cmp.Run(ctx, flags.NumRuns, &core.RunConfig{
				Arms:          flags.Arms,
				Rounds:        flags.Rounds,
				Seed:          flags.Seed,
				ProgressEvery: flags.ProgressEvery,
			})
			close(doneCh)
			return err
		},
	}

	return cmd
}
