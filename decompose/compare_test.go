package decompose

import (
	"math"
	"testing"

	"github.com/aouyang1/go-decomposer/timedataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	base := &Result{
		Observed: []float64{1, 2, 3},
		Components: Components{
			Trend:     timedataset.Values([]float64{math.NaN(), 2, math.NaN()}),
			Seasonal:  timedataset.Values([]float64{0.5, -0.5, 0.5}),
			Irregular: timedataset.Values([]float64{math.NaN(), 0.5, math.NaN()}),
		},
	}

	testData := map[string]struct {
		other    *Result
		expected *Agreement
		err      error
	}{
		"identical": {
			other:    base,
			expected: &Agreement{},
		},
		"shifted": {
			other: &Result{
				Observed: []float64{1, 2, 3},
				Components: Components{
					Trend:     timedataset.Values([]float64{math.NaN(), 2.25, math.NaN()}),
					Seasonal:  timedataset.Values([]float64{0.5, -0.5, 0.25}),
					Irregular: timedataset.Values([]float64{math.NaN(), 0.5, math.NaN()}),
				},
			},
			expected: &Agreement{Trend: 0.25, Seasonal: 0.25},
		},
		"length mismatch": {
			other: &Result{Observed: []float64{1}},
			err:   ErrResLenMismatch,
		},
		"boundary mismatch": {
			other: &Result{
				Observed: []float64{1, 2, 3},
				Components: Components{
					Trend:     timedataset.Values([]float64{1, 2, math.NaN()}),
					Seasonal:  timedataset.Values([]float64{0.5, -0.5, 0.5}),
					Irregular: timedataset.Values([]float64{math.NaN(), 0.5, math.NaN()}),
				},
			},
			err: ErrBoundaryMismatch,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := Compare(base, td.other)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.expected, res)
		})
	}
}

func TestAgreementMax(t *testing.T) {
	assert.Equal(t, 3.0, Agreement{Trend: 1, Seasonal: 3, Irregular: 2}.Max())
}
