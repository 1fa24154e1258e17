package stats

import (
	"math"
	"testing"

	"github.com/aouyang1/go-decomposer/timedataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectOutliers(t *testing.T) {
	testData := map[string]struct {
		y         []float64
		lowerPerc float64
		upperPerc float64
		tukey     float64
		expected  []int
	}{
		"empty": {},
		"no outliers": {
			y:         []float64{1, 2, 3, 4, 5, 6, 7, 8},
			lowerPerc: 0.25, upperPerc: 0.75, tukey: 1.5,
		},
		"spike and dip": {
			y:         []float64{1, 2, 3, 100, 2, 1, 3, 2, -100, 1, 2, 3},
			lowerPerc: 0.25, upperPerc: 0.75, tukey: 1.5,
			expected: []int{3, 8},
		},
		"full range percentiles": {
			y:         []float64{1, 2, 3},
			lowerPerc: 0.0, upperPerc: 1.0, tukey: 0,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res := DetectOutliers(td.y, td.lowerPerc, td.upperPerc, td.tukey)
			assert.Equal(t, td.expected, res)
		})
	}
}

func TestStrength(t *testing.T) {
	nan := math.NaN()
	testData := map[string]struct {
		component []timedataset.Value
		irregular []timedataset.Value
		expected  float64
		err       error
	}{
		"length mismatch": {
			component: timedataset.Values([]float64{1, 2}),
			irregular: timedataset.Values([]float64{1}),
			err:       ErrComponentLenMismatch,
		},
		"too few defined": {
			component: timedataset.Values([]float64{1, 2, 3}),
			irregular: timedataset.Values([]float64{nan, 1, nan}),
			err:       ErrInsufficientPoints,
		},
		"no irregular variation": {
			component: timedataset.Values([]float64{1, 2, 3, 4}),
			irregular: timedataset.Values([]float64{0, 0, 0, 0}),
			expected:  1,
		},
		"all irregular": {
			component: timedataset.Values([]float64{0, 0, 0, 0}),
			irregular: timedataset.Values([]float64{1, -1, 1, -1}),
			expected:  0,
		},
		"constant": {
			component: timedataset.Values([]float64{1, 1, 1}),
			irregular: timedataset.Values([]float64{0, 0, 0}),
			expected:  0,
		},
		"skips undefined": {
			component: timedataset.Values([]float64{nan, 1, 2, 3, nan}),
			irregular: timedataset.Values([]float64{5, 0, 0, 0, 5}),
			expected:  1,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := Strength(td.component, td.irregular)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, td.expected, res, 1e-9)
		})
	}
}
