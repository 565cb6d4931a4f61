package amplicon

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func GenerateLineItems(vs []int) []opts.LineData {
	var items = make([]opts.LineData, 0)
	for _, v := range vs {
		items = append(items, opts.LineData{Value: v})
	}
	return items
}

// PlotConsLine renders the per-position A/C/G/T counts of the conservation
// table as an HTML line chart.
func PlotConsLine(path string, consList []map[byte]int) {
	var (
		line   = charts.NewLine()
		xaxis  = make([]int, len(consList))
		series = map[byte][]int{'A': nil, 'C': nil, 'G': nil, 'T': nil}
		output = osUtil.Create(path)
	)
	defer simpleUtil.DeferClose(output)

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    "A C G T Conservation",
			Subtitle: "per MCP position",
		}))

	for i, countDict := range consList {
		xaxis[i] = i + 1
		for _, b := range []byte{'A', 'C', 'G', 'T'} {
			series[b] = append(series[b], countDict[b])
		}
	}

	line.SetXAxis(xaxis).
		AddSeries("A", GenerateLineItems(series['A'])).
		AddSeries("C", GenerateLineItems(series['C'])).
		AddSeries("G", GenerateLineItems(series['G'])).
		AddSeries("T", GenerateLineItems(series['T']))
	simpleUtil.CheckErr(line.Render(output))
}

// PlotConfidence saves the per-position confidence values as a PNG line plot.
// Forced-gap positions are absent from confs, so x runs over emitted entries.
func PlotConfidence(path string, confs []float64) error {
	p := plot.New()
	p.Title.Text = "Consensus confidence"
	p.X.Label.Text = "position"
	p.Y.Label.Text = "confidence"

	points := plotter.XYs{}
	for i, c := range confs {
		points = append(points, plotter.XY{X: float64(i + 1), Y: c})
	}

	line, _, err := plotter.NewLinePoints(points)
	if err != nil {
		return err
	}
	line.Color = plotutil.Color(1)
	p.Add(line)
	p.Legend.Add("confidence", line)

	return p.Save(16*vg.Inch, 9*vg.Inch, path)
}
