package core

// Experiment names a policy to compare against the others.
type Experiment struct {
	Name   string
	Policy PolicyConstructor
}

type DataSet interface{}

type Analyzer interface {
	Analyze(*RunContext, *Solver)
	DataSet() DataSet
	Reset()
}

type Comparator interface {
	Compare([]string, []DataSet)
}

// RunContext carries the run number and the environment the run is
// measured against.
type RunContext struct {
	Run    int
	Bandit *BernoulliBandit
}

type RunConfig struct {
	Arms   int
	Rounds int
	Seed   uint64

	// ProgressEvery is the chunk size between progress updates and
	// analyzer calls. Zero means a single chunk for the whole run.
	ProgressEvery int
}

type Comparison struct {
	Experiments []*Experiment
	Analyzers   map[string]Analyzer
	Comparators map[string]Comparator
}

func NewComparison() *Comparison {
	return &Comparison{
		Experiments: make([]*Experiment, 0),
		Analyzers:   make(map[string]Analyzer),
		Comparators: make(map[string]Comparator),
	}
}

func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

func (c *Comparison) AddAnalysis(name string, a Analyzer, cmp Comparator) {
	c.Analyzers[name] = a
	c.Comparators[name] = cmp
}
