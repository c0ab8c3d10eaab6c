package core

import (
	"context"
	"fmt"
	"time"

	erand "golang.org/x/exp/rand"

	"github.com/zeu5/bandit-regret-testing/util"
)

type experimentRunContext struct {
	run       int
	ctx       context.Context
	analyzers map[string]Analyzer
	out       *util.ProgressOutput

	*RunConfig
}

func (e *Experiment) run(ctx *experimentRunContext, bandit *BernoulliBandit, rng *erand.Rand) (*Solver, error) {
	solver := NewSolver(bandit, e.Policy.NewPolicy(bandit.K(), rng))
	rCtx := &RunContext{Run: ctx.run, Bandit: bandit}

	chunk := ctx.ProgressEvery
	if chunk <= 0 {
		chunk = ctx.Rounds
	}
	for done := 0; done < ctx.Rounds; {
		select {
		case <-ctx.ctx.Done():
			return nil, ctx.ctx.Err()
		default:
		}

		if err := solver.Run(util.MinInt(chunk, ctx.Rounds-done)); err != nil {
			return nil, err
		}
		done = solver.Rounds()

		for _, a := range ctx.analyzers {
			a.Analyze(rCtx, solver)
		}
		ctx.out.Set(fmt.Sprintf(
			"Experiment: %s, Run %d, Rounds: %d/%d, Regret: %.4f",
			e.Name, ctx.run, done, ctx.Rounds, solver.Regret(),
		))
	}
	return solver, nil
}

// Run executes every experiment of the comparison sequentially, once per
// run, against a bandit shared by all experiments of that run. A single
// random source, seeded once from the config, feeds both the environment
// and the policies.
func (c *Comparison) Run(ctx context.Context, runs int, cfg *RunConfig) error {
	if cfg.Rounds <= 0 {
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalidConfiguration, cfg.Rounds)
	}

	rng := erand.New(erand.NewSource(cfg.Seed))

	printer := util.NewTerminalPrinter(500 * time.Millisecond)
	outputs := make(map[string]*util.ProgressOutput, len(c.Experiments))
	for _, e := range c.Experiments {
		outputs[e.Name] = printer.NewOutput()
	}
	printer.Start(ctx)
	defer printer.Stop()

	for run := 0; run < runs; run++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		bandit, err := NewBernoulliBandit(cfg.Arms, rng)
		if err != nil {
			return err
		}

		names := make([]string, 0, len(c.Experiments))
		datasets := make(map[string][]DataSet)

		for _, e := range c.Experiments {
			eCtx := &experimentRunContext{
				run:       run,
				ctx:       ctx,
				analyzers: make(map[string]Analyzer),
				out:       outputs[e.Name],
				RunConfig: cfg,
			}
			for name, a := range c.Analyzers {
				a.Reset()
				eCtx.analyzers[name] = a
			}

			if _, err := e.run(eCtx, bandit, rng); err != nil {
				return err
			}

			names = append(names, e.Name)
			for name, a := range eCtx.analyzers {
				datasets[name] = append(datasets[name], a.DataSet())
			}
		}

		for name, cmp := range c.Comparators {
			cmp.Compare(names, datasets[name])
		}
	}
	return nil
}
