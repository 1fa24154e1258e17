package decomposer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aouyang1/go-decomposer/decompose"
	"github.com/aouyang1/go-decomposer/timedataset"
)

// Decomposer generates the synthetic series and decomposes it. Every call to Run starts from
// scratch so results never depend on a previous call.
type Decomposer struct {
	opt *Options
}

// New creates a new instance of a Decomposer using the provided options. If no options are
// provided a default is used. Invalid options fail here rather than on Run.
func New(opt *Options) (*Decomposer, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}

	if err := opt.Validate(); err != nil {
		return nil, fmt.Errorf("unable to initialize decomposer, %w", err)
	}
	return &Decomposer{opt: opt}, nil
}

// Options returns the options the decomposer was created with
func (d *Decomposer) Options() *Options {
	return d.opt
}

// Run generates the series, decomposes it with the configured method and summarizes the
// result. The alternate method is run on the same series to report how closely they agree.
func (d *Decomposer) Run() (*Results, error) {
	td, err := timedataset.Generate(d.opt.SeriesOptions)
	if err != nil {
		return nil, fmt.Errorf("unable to generate series, %w", err)
	}

	res, err := decompose.Decompose(td, d.opt.DecomposeOptions)
	if err != nil {
		return nil, fmt.Errorf("unable to decompose series, %w", err)
	}

	agreement, err := d.crossCheck(td, res)
	if err != nil {
		return nil, err
	}

	summary, err := NewSummary(res, agreement, d.opt.OutlierOptions)
	if err != nil {
		return nil, fmt.Errorf("unable to summarize decomposition, %w", err)
	}

	return &Results{
		Decomposition: res,
		Summary:       summary,
	}, nil
}

func (d *Decomposer) crossCheck(td *timedataset.TimeDataset, res *decompose.Result) (*decompose.Agreement, error) {
	otherOpt := *d.opt.DecomposeOptions
	otherOpt.Method = res.Method.Other()

	other, err := decompose.Decompose(td, &otherOpt)
	if errors.Is(err, decompose.ErrUnsupportedPeriod) || errors.Is(err, decompose.ErrNonMonthly) {
		slog.Warn("skipping method agreement", "method", otherOpt.Method, "error", err.Error())
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to decompose series with %s method, %w", otherOpt.Method, err)
	}

	agreement, err := decompose.Compare(res, other)
	if err != nil {
		return nil, fmt.Errorf("unable to compare decomposition methods, %w", err)
	}
	return agreement, nil
}

// Render runs the pipeline and writes the dashboard page to w
func (d *Decomposer) Render(w io.Writer) (*Results, error) {
	res, err := d.Run()
	if err != nil {
		return nil, err
	}
	if err := RenderPage(w, res, d.opt.PlotOptions); err != nil {
		return nil, err
	}
	return res, nil
}

var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// RenderFile runs the pipeline and writes the dashboard page to an html file at path
func (d *Decomposer) RenderFile(path string) (res *Results, err error) {
	file, err := createFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			res, err = nil, fmt.Errorf("unable to close %s, %w", path, cerr)
		}
	}()

	return d.Render(file)
}
