// Package stats contains summary statistics of a decomposed series
package stats

import (
	"errors"
	"math"
	"sort"

	"github.com/aouyang1/go-decomposer/timedataset"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrComponentLenMismatch = errors.New("components have different lengths")
	ErrInsufficientPoints   = errors.New("need at least 2 defined points")
)

// DetectOutliers returns the indices of y that fall outside the Tukey fences built from the
// lower and upper percentiles. The inner range is widened by tukeyFactor on both sides.
func DetectOutliers(y []float64, lowerPerc, upperPerc, tukeyFactor float64) []int {
	if len(y) == 0 {
		return nil
	}
	lowerPerc = math.Max(lowerPerc, 0.0)
	upperPerc = math.Min(upperPerc, 1.0)
	tukeyFactor = math.Max(tukeyFactor, 0.0)

	yCopy := make([]float64, len(y))
	copy(yCopy, y)
	sort.Float64s(yCopy)
	lowerIdx := int(math.Floor(float64(len(yCopy)) * lowerPerc))
	upperIdx := int(math.Ceil(float64(len(yCopy)) * upperPerc))
	upperIdx = min(upperIdx, len(yCopy)-1)
	lowerIdx = min(lowerIdx, upperIdx)

	lower := yCopy[lowerIdx]
	upper := yCopy[upperIdx]
	innerRange := upper - lower
	lower -= innerRange * tukeyFactor
	upper += innerRange * tukeyFactor

	var outlierIdx []int
	for i := 0; i < len(y); i++ {
		if y[i] > upper || y[i] < lower {
			outlierIdx = append(outlierIdx, i)
		}
	}
	return outlierIdx
}

// Strength measures how much of the variation a component explains relative to the
// irregular remainder, 1 - Var(I)/Var(C+I), clamped to [0, 1]. Only points where both the
// component and irregular are defined are used.
func Strength(component, irregular []timedataset.Value) (float64, error) {
	if len(component) != len(irregular) {
		return 0, ErrComponentLenMismatch
	}

	combined := make([]float64, 0, len(component))
	remainder := make([]float64, 0, len(component))
	for i := range component {
		if !component[i].Valid || !irregular[i].Valid {
			continue
		}
		combined = append(combined, component[i].Float64)
		remainder = append(remainder, irregular[i].Float64)
	}
	if len(remainder) < 2 {
		return 0, ErrInsufficientPoints
	}
	floats.Add(combined, remainder)

	total := stat.Variance(combined, nil)
	if total == 0 {
		return 0, nil
	}
	return math.Max(0, 1-stat.Variance(remainder, nil)/total), nil
}
