// Package charts draws learning curves of experiments
package charts

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Series is a named sequence of per-episode values
type Series struct {
	Name string
	Data []float64
}

// MovingAverage returns the trailing moving average of data over window
// values. The first window-1 averages are taken over all values seen so
// far.
func MovingAverage(data []float64, window int) []float64 {
	avg := make([]float64, len(data))
	if window <= 1 {
		copy(avg, data)
		return avg
	}

	for i := range data {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		avg[i] = stat.Mean(data[start:i+1], nil)
	}
	return avg
}

// LearningCurvePNG plots each series against the episode number and
// saves the plot as an image at filename. The image format is determined
// by the extension of filename.
func LearningCurvePNG(filename, title string, series ...Series) error {
	p := plot.New()

	p.Title.Text = title
	p.X.Label.Text = "Episode"
	p.Y.Label.Text = "Value"

	for i, s := range series {
		pts := make(plotter.XYs, len(s.Data))
		for j := range s.Data {
			pts[j].X = float64(j + 1)
			pts[j].Y = s.Data[j]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("learningCurvePNG: could not create line "+
				"for %v: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)

		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, filename); err != nil {
		return fmt.Errorf("learningCurvePNG: could not save plot: %w", err)
	}
	return nil
}

// LearningCurveHTML writes an interactive HTML page plotting each series
// against the episode number to w
func LearningCurveHTML(w io.Writer, title string, series ...Series) error {
	episodes := 0
	for _, s := range series {
		if len(s.Data) > episodes {
			episodes = len(s.Data)
		}
	}
	x := make([]int, episodes)
	for i := range x {
		x[i] = i + 1
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title,
			Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true),
			Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Episode"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)
	line.SetXAxis(x)

	for _, s := range series {
		data := make([]opts.LineData, len(s.Data))
		for i, v := range s.Data {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.Name, data,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))
	}

	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(line)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("learningCurveHTML: could not render page: %w", err)
	}
	return nil
}
