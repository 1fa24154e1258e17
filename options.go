package decomposer

import (
	"fmt"

	"github.com/aouyang1/go-decomposer/decompose"
	"github.com/aouyang1/go-decomposer/timedataset"
)

// OutlierOptions sets the Tukey fences used to flag irregular points in the summary
type OutlierOptions struct {
	LowerPercentile float64 `json:"lower_percentile"`
	UpperPercentile float64 `json:"upper_percentile"`
	TukeyFactor     float64 `json:"tukey_factor"`
}

func NewOutlierOptions() *OutlierOptions {
	return &OutlierOptions{
		LowerPercentile: 0.25,
		UpperPercentile: 0.75,
		TukeyFactor:     1.5,
	}
}

// PlotOptions configures the echarts output
type PlotOptions struct {
	PageTitle  string `json:"page_title"`
	Theme      string `json:"theme"`
	Width      string `json:"width"`
	Height     string `json:"height"`
	AssetsHost string `json:"assets_host"`
	TimeFormat string `json:"time_format"`
}

func NewDefaultPlotOptions() *PlotOptions {
	return &PlotOptions{
		PageTitle:  "Introduction to Time Series",
		Theme:      "white",
		Width:      "100%",
		Height:     "420px",
		AssetsHost: "https://go-echarts.github.io/go-echarts-assets/assets/",
		TimeFormat: "Jan 2006",
	}
}

// Options configures the synthetic series, how it is decomposed and how it is plotted
type Options struct {
	SeriesOptions    *timedataset.SyntheticOptions `json:"series_options"`
	DecomposeOptions *decompose.Options            `json:"decompose_options"`
	OutlierOptions   *OutlierOptions               `json:"outlier_options"`
	PlotOptions      *PlotOptions                  `json:"plot_options"`
}

func NewDefaultOptions() *Options {
	return &Options{
		SeriesOptions:    timedataset.NewDefaultSyntheticOptions(),
		DecomposeOptions: decompose.NewDefaultOptions(),
		OutlierOptions:   NewOutlierOptions(),
		PlotOptions:      NewDefaultPlotOptions(),
	}
}

// setDefaults fills in any unset option group
func (o *Options) setDefaults() {
	if o.SeriesOptions == nil {
		o.SeriesOptions = timedataset.NewDefaultSyntheticOptions()
	}
	if o.DecomposeOptions == nil {
		o.DecomposeOptions = decompose.NewDefaultOptions()
	}
	if o.OutlierOptions == nil {
		o.OutlierOptions = NewOutlierOptions()
	}
	if o.PlotOptions == nil {
		o.PlotOptions = NewDefaultPlotOptions()
	}
}

// Validate checks that the options describe a series long enough to be decomposed. Unset
// option groups are filled with defaults first.
func (o *Options) Validate() error {
	o.setDefaults()

	if err := o.SeriesOptions.Validate(); err != nil {
		return err
	}
	if err := o.DecomposeOptions.Validate(); err != nil {
		return err
	}
	if n, period := o.SeriesOptions.Length, o.DecomposeOptions.Period; n < 2*period {
		return fmt.Errorf("series length %d for a period of %d, %w", n, period, decompose.ErrInsufficientData)
	}
	return nil
}
