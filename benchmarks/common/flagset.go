package common

import (
	"path"

	"github.com/zeu5/bandit-regret-testing/util"
)

type Flags struct {
	BanditFlags
	RunFlags
	SavePath string
}

type BanditFlags struct {
	Arms        int
	Epsilon     float64
	Coef        float64
	InitProb    float64
	Temperature float64
}

type RunFlags struct {
	NumRuns       int
	Rounds        int
	ProgressEvery int
	Seed          uint64
}

func DefaultFlags() *Flags {
	return &Flags{
		BanditFlags: BanditFlags{
			Arms:        10,
			Epsilon:     0.01,
			Coef:        1,
			InitProb:    1.0,
			Temperature: 0.1,
		},
		RunFlags: RunFlags{
			NumRuns:       1,
			Rounds:        5000,
			ProgressEvery: 500,
			Seed:          1,
		},
		SavePath: "results",
	}
}

func (f *Flags) Record() {
	util.SaveJson(path.Join(f.SavePath, "config.json"), f)
}
