// Package decompose splits a regularly spaced time series into trend, seasonal and irregular
// components using the classical additive model, y = T + S + I.
package decompose

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/aouyang1/go-decomposer/timedataset"
)

var (
	ErrEmptyTimeDataset  = errors.New("no timedataset or uninitialized")
	ErrInsufficientData  = errors.New("need at least two full periods of data")
	ErrUnsupportedPeriod = errors.New("manual decomposition groups by calendar month and requires a period of 12")
	ErrNonMonthly        = errors.New("manual decomposition requires consecutive monthly time points")
	ErrAdditiveIdentity  = errors.New("observed does not equal trend + seasonal + irregular")
)

// Components holds the estimated series, index aligned with the input. Trend and
// Irregular are undefined at the edges where the centered window does not fit.
type Components struct {
	Trend     []timedataset.Value `json:"trend"`
	Seasonal  []timedataset.Value `json:"seasonal"`
	Irregular []timedataset.Value `json:"irregular"`

	// SeasonalIndex is the seasonal pattern starting at the first observation, one value per
	// position in the period. The values sum to zero.
	SeasonalIndex []float64 `json:"seasonal_index"`
}

type estimator interface {
	estimate(td *timedataset.TimeDataset, period int) (*Components, error)
}

// Result is a decomposition of a single time series
type Result struct {
	Method   Method      `json:"method"`
	Period   int         `json:"period"`
	T        []time.Time `json:"time"`
	Observed []float64   `json:"observed"`
	Components
}

// Decompose estimates the additive components of td. If no options are provided the
// defaults are used.
func Decompose(td *timedataset.TimeDataset, opt *Options) (*Result, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	if td.Len() == 0 {
		return nil, ErrEmptyTimeDataset
	}
	if td.Len() < 2*opt.Period {
		return nil, fmt.Errorf(
			"%d points for a period of %d, %w",
			td.Len(), opt.Period, ErrInsufficientData,
		)
	}

	var est estimator
	switch opt.Method {
	case MethodManual:
		est = manual{}
	case MethodLibrary:
		est = library{}
	}

	comp, err := est.estimate(td, opt.Period)
	if err != nil {
		return nil, fmt.Errorf("unable to decompose with %s method, %w", opt.Method, err)
	}

	td = td.Copy()
	return &Result{
		Method:     opt.Method,
		Period:     opt.Period,
		T:          td.T,
		Observed:   td.Y,
		Components: *comp,
	}, nil
}

// TrendBounds returns the first and last index with a defined trend. Both are -1 if the
// trend is never defined.
func (r *Result) TrendBounds() (int, int) {
	first, last := -1, -1
	for i, v := range r.Trend {
		if !v.Valid {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	return first, last
}

// Check verifies the additive identity at every point where all components are defined.
func (r *Result) Check(tol float64) error {
	for i, y := range r.Observed {
		trend, seasonal, irregular := r.Trend[i], r.Seasonal[i], r.Irregular[i]
		if !trend.Valid || !seasonal.Valid {
			continue
		}
		if !irregular.Valid {
			return fmt.Errorf("irregular undefined at %d, %w", i, ErrAdditiveIdentity)
		}
		sum := trend.Float64 + seasonal.Float64 + irregular.Float64
		if math.Abs(y-sum) > tol {
			return fmt.Errorf("off by %g at %d, %w", y-sum, i, ErrAdditiveIdentity)
		}
	}
	return nil
}
