package analysis

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/zeu5/bandit-regret-testing/core"
)

// ReportComparator prints the final cumulative regret of every
// experiment, highlighting the lowest one.
type ReportComparator struct{}

var _ core.Comparator = &ReportComparator{}

func NewReportComparator() *ReportComparator {
	return &ReportComparator{}
}

func (r *ReportComparator) Compare(experiments []string, datasets []core.DataSet) {
	best := -1
	for i := range experiments {
		ds, ok := datasets[i].(*regretDataset)
		if !ok {
			continue
		}
		if best == -1 || ds.FinalRegret < datasets[best].(*regretDataset).FinalRegret {
			best = i
		}
	}
	if best == -1 {
		return
	}

	header := datasets[best].(*regretDataset)
	fmt.Println(aurora.Bold(fmt.Sprintf(
		"Best arm: %d with probability %.4f",
		header.BestArm, header.BestProb,
	)))
	for i, name := range experiments {
		ds, ok := datasets[i].(*regretDataset)
		if !ok {
			continue
		}
		row := fmt.Sprintf("%s: final cumulative regret %.4f", name, ds.FinalRegret)
		if i == best {
			fmt.Println(aurora.Green(row))
		} else {
			fmt.Println(row)
		}
	}
}
