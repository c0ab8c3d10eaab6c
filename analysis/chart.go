package analysis

import (
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/zeu5/bandit-regret-testing/core"
	"github.com/zeu5/bandit-regret-testing/util"
)

// ChartComparator renders the cumulative regret curves of every
// experiment into a single HTML line chart, one file per run.
type ChartComparator struct {
	savePath string
	runs     int
}

var _ core.Comparator = &ChartComparator{}

func NewChartComparator(savePath string) *ChartComparator {
	return &ChartComparator{savePath: savePath}
}

func (c *ChartComparator) Compare(experiments []string, datasets []core.DataSet) {
	line := charts.NewLine()

	arms := 0
	var rounds []string
	for i, name := range experiments {
		ds, ok := datasets[i].(*regretDataset)
		if !ok {
			continue
		}
		if rounds == nil {
			arms = ds.Arms
			rounds = make([]string, len(ds.Rounds))
			for j, r := range ds.Rounds {
				rounds[j] = strconv.Itoa(r)
			}
		}

		items := make([]opts.LineData, len(ds.Regrets))
		for j, regret := range ds.Regrets {
			items[j] = opts.LineData{Value: regret}
		}
		line.AddSeries(name, items)
	}
	if rounds == nil {
		return
	}

	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%d-armed bandit cumulative regret", arms),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)
	line.SetXAxis(rounds)

	page := components.NewPage()
	page.AddCharts(line)

	if err := util.EnsureDir(c.savePath); err != nil {
		return
	}
	file, err := os.Create(path.Join(c.savePath, fmt.Sprintf("regret_%d.html", c.runs)))
	if err != nil {
		return
	}
	defer file.Close()
	page.Render(file)
	c.runs++
}
