package decompose

import (
	"github.com/aouyang1/go-decomposer/timedataset"
)

// manual estimates the components with explicit loops. Seasonal values are grouped by the
// calendar month of each time point rather than by position.
type manual struct{}

func (manual) estimate(td *timedataset.TimeDataset, period int) (*Components, error) {
	if period != MonthsPerYear {
		return nil, ErrUnsupportedPeriod
	}
	if !timedataset.TimeSlice(td.T).IsMonthly() {
		return nil, ErrNonMonthly
	}

	n := td.Len()
	trend := movingAverage(td.Y, period)

	var sums, counts [MonthsPerYear]float64
	for i := 0; i < n; i++ {
		if !trend[i].Valid {
			continue
		}
		m := int(td.T[i].Month()) - 1
		sums[m] += td.Y[i] - trend[i].Float64
		counts[m]++
	}

	var monthly [MonthsPerYear]float64
	var total float64
	for m := 0; m < MonthsPerYear; m++ {
		if counts[m] == 0 {
			return nil, ErrInsufficientData
		}
		monthly[m] = sums[m] / counts[m]
		total += monthly[m]
	}

	// center so a full year of seasonal effects sums to zero
	offset := total / MonthsPerYear
	for m := range monthly {
		monthly[m] -= offset
	}

	seasonal := make([]timedataset.Value, n)
	irregular := make([]timedataset.Value, n)
	for i := 0; i < n; i++ {
		s := monthly[int(td.T[i].Month())-1]
		seasonal[i] = timedataset.NewValue(s)
		if trend[i].Valid {
			irregular[i] = timedataset.NewValue(td.Y[i] - trend[i].Float64 - s)
		}
	}

	index := make([]float64, period)
	for k := 0; k < period; k++ {
		index[k] = seasonal[k].Float64
	}

	return &Components{
		Trend:         trend,
		Seasonal:      seasonal,
		Irregular:     irregular,
		SeasonalIndex: index,
	}, nil
}

// movingAverage computes a centered moving average over period points. An even period uses
// the 2xperiod average, weighting both ends of the window by half, so the window stays
// centered on the point. The first and last period/2 points are undefined.
func movingAverage(y []float64, period int) []timedataset.Value {
	n := len(y)
	half := period / 2
	trend := make([]timedataset.Value, n)
	for i := half; i < n-half; i++ {
		var sum float64
		if period%2 == 0 {
			sum = 0.5*y[i-half] + 0.5*y[i+half]
			for j := i - half + 1; j < i+half; j++ {
				sum += y[j]
			}
		} else {
			for j := i - half; j <= i+half; j++ {
				sum += y[j]
			}
		}
		trend[i] = timedataset.NewValue(sum / float64(period))
	}
	return trend
}
