package decomposer

import (
	"errors"
	"time"

	"github.com/aouyang1/go-decomposer/timedataset"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var (
	ErrEmptySeries       = errors.New("no points to plot")
	ErrSeriesLenMismatch = errors.New("time and values have different lengths")
)

// LineSeries generates an echart line chart of a single series against time. Undefined values
// are left out of the line along with their time point.
func LineSeries(title, name string, t []time.Time, y []timedataset.Value, opt *PlotOptions) (*charts.Line, error) {
	if len(y) == 0 {
		return nil, ErrEmptySeries
	}
	if len(t) != len(y) {
		return nil, ErrSeriesLenMismatch
	}
	if opt == nil {
		opt = NewDefaultPlotOptions()
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(
			opts.Initialization{
				PageTitle:  opt.PageTitle,
				Theme:      opt.Theme,
				Width:      opt.Width,
				Height:     opt.Height,
				AssetsHost: opt.AssetsHost,
			},
		),
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
		charts.WithTooltipOpts(
			opts.Tooltip{
				Trigger: "axis",
			},
		),
		charts.WithXAxisOpts(
			opts.XAxis{
				Name: "Time",
			},
		),
		charts.WithYAxisOpts(
			opts.YAxis{
				Name: "Value",
			},
		),
	)

	filteredT := make([]string, 0, len(t))
	lineData := make([]opts.LineData, 0, len(y))
	for i := 0; i < len(y); i++ {
		if !y[i].Valid {
			continue
		}
		filteredT = append(filteredT, t[i].Format(opt.TimeFormat))
		lineData = append(lineData, opts.LineData{Value: y[i].Float64})
	}

	line.SetXAxis(filteredT).
		AddSeries(name, lineData)
	return line, nil
}
