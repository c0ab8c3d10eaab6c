package analysis

import (
	"fmt"
	"path"

	"github.com/zeu5/bandit-regret-testing/core"
	"github.com/zeu5/bandit-regret-testing/util"
)

type regretDataset struct {
	Arms        int
	BestArm     int
	BestProb    float64
	Rounds      []int
	Regrets     []float64
	FinalRegret float64
}

func (d *regretDataset) Copy() *regretDataset {
	return &regretDataset{
		Arms:        d.Arms,
		BestArm:     d.BestArm,
		BestProb:    d.BestProb,
		Rounds:      util.CopyIntSlice(d.Rounds),
		Regrets:     util.CopyFloatSlice(d.Regrets),
		FinalRegret: d.FinalRegret,
	}
}

// RegretAnalyzer captures the cumulative regret trajectory of a solver
// together with the environment's ground-truth optimum.
type RegretAnalyzer struct {
	dataset  *regretDataset
	lastSeen int
}

var _ core.Analyzer = &RegretAnalyzer{}

func NewRegretAnalyzer() *RegretAnalyzer {
	return &RegretAnalyzer{
		dataset: &regretDataset{
			Rounds:  make([]int, 0),
			Regrets: make([]float64, 0),
		},
	}
}

func (a *RegretAnalyzer) Reset() {
	a.dataset = &regretDataset{
		Rounds:  make([]int, 0),
		Regrets: make([]float64, 0),
	}
	a.lastSeen = 0
}

func (a *RegretAnalyzer) Analyze(rCtx *core.RunContext, solver *core.Solver) {
	a.dataset.Arms = rCtx.Bandit.K()
	a.dataset.BestArm = rCtx.Bandit.BestArm()
	a.dataset.BestProb = rCtx.Bandit.BestProb()

	h := solver.History()
	for i := a.lastSeen; i < h.Len(); i++ {
		a.dataset.Rounds = append(a.dataset.Rounds, i+1)
		a.dataset.Regrets = append(a.dataset.Regrets, h.Regret(i))
	}
	a.lastSeen = h.Len()
	if len(a.dataset.Regrets) > 0 {
		a.dataset.FinalRegret = a.dataset.Regrets[len(a.dataset.Regrets)-1]
	}
}

func (a *RegretAnalyzer) DataSet() core.DataSet {
	return a.dataset.Copy()
}

// RegretComparator writes the regret datasets of all experiments to a
// JSON file, one file per run.
type RegretComparator struct {
	savePath string
	runs     int
}

var _ core.Comparator = &RegretComparator{}

func NewRegretComparator(savePath string) *RegretComparator {
	return &RegretComparator{savePath: savePath}
}

func (r *RegretComparator) Compare(experiments []string, datasets []core.DataSet) {
	out := make(map[string]*regretDataset)
	for i, name := range experiments {
		if ds, ok := datasets[i].(*regretDataset); ok {
			out[name] = ds
		}
	}

	util.SaveJson(path.Join(r.savePath, fmt.Sprintf("regret_comparison_%d.json", r.runs)), out)
	r.runs++
}
