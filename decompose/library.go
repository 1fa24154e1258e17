package decompose

import (
	"github.com/aouyang1/go-decomposer/timedataset"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// library estimates the components with gonum primitives: the trend is a symmetric
// convolution filter and the seasonal index is the mean of each positional bucket.
type library struct{}

func (library) estimate(td *timedataset.TimeDataset, period int) (*Components, error) {
	n := td.Len()

	filt := trendFilter(period)
	half := len(filt) / 2

	trend := make([]timedataset.Value, n)
	detrended := make([]float64, n)
	for i := half; i < n-half; i++ {
		t := floats.Dot(filt, td.Y[i-half:i+half+1])
		trend[i] = timedataset.NewValue(t)
		detrended[i] = td.Y[i] - t
	}

	buckets := make([][]float64, period)
	for i := half; i < n-half; i++ {
		k := i % period
		buckets[k] = append(buckets[k], detrended[i])
	}

	index := make([]float64, period)
	for k, bucket := range buckets {
		if len(bucket) == 0 {
			return nil, ErrInsufficientData
		}
		index[k] = stat.Mean(bucket, nil)
	}
	floats.AddConst(-stat.Mean(index, nil), index)

	seasonal := make([]timedataset.Value, n)
	for i := 0; i < n; i++ {
		seasonal[i] = timedataset.NewValue(index[i%period])
	}

	irregular := make([]timedataset.Value, n)
	for i := half; i < n-half; i++ {
		irregular[i] = timedataset.NewValue(detrended[i] - index[i%period])
	}

	return &Components{
		Trend:         trend,
		Seasonal:      seasonal,
		Irregular:     irregular,
		SeasonalIndex: index,
	}, nil
}

// trendFilter returns the weights of a centered moving average over period points. Even
// periods need period+1 weights with half weight at both ends.
func trendFilter(period int) []float64 {
	if period%2 == 1 {
		filt := make([]float64, period)
		floats.AddConst(1.0/float64(period), filt)
		return filt
	}
	filt := make([]float64, period+1)
	floats.AddConst(1.0/float64(period), filt)
	filt[0] /= 2
	filt[period] /= 2
	return filt
}
