package decompose

import (
	"errors"
	"fmt"
	"math"

	"github.com/aouyang1/go-decomposer/timedataset"
)

var (
	ErrResLenMismatch   = errors.New("results have different lengths")
	ErrBoundaryMismatch = errors.New("results are defined at different points")
)

// Agreement is the largest absolute difference between two decompositions per component
type Agreement struct {
	Trend     float64 `json:"trend"`
	Seasonal  float64 `json:"seasonal"`
	Irregular float64 `json:"irregular"`
}

// Max returns the largest difference across all components
func (a Agreement) Max() float64 {
	return math.Max(a.Trend, math.Max(a.Seasonal, a.Irregular))
}

// Compare measures how closely two decompositions of the same series agree. Both must
// leave the same points undefined.
func Compare(a, b *Result) (*Agreement, error) {
	if len(a.Observed) != len(b.Observed) {
		return nil, fmt.Errorf("expected %d, but got %d, %w", len(a.Observed), len(b.Observed), ErrResLenMismatch)
	}

	trend, err := maxAbsDiff(a.Trend, b.Trend)
	if err != nil {
		return nil, fmt.Errorf("unable to compare trend, %w", err)
	}
	seasonal, err := maxAbsDiff(a.Seasonal, b.Seasonal)
	if err != nil {
		return nil, fmt.Errorf("unable to compare seasonal, %w", err)
	}
	irregular, err := maxAbsDiff(a.Irregular, b.Irregular)
	if err != nil {
		return nil, fmt.Errorf("unable to compare irregular, %w", err)
	}
	return &Agreement{
		Trend:     trend,
		Seasonal:  seasonal,
		Irregular: irregular,
	}, nil
}

func maxAbsDiff(a, b []timedataset.Value) (float64, error) {
	var maxDiff float64
	for i := range a {
		if a[i].Valid != b[i].Valid {
			return 0, fmt.Errorf("index %d, %w", i, ErrBoundaryMismatch)
		}
		if !a[i].Valid {
			continue
		}
		maxDiff = math.Max(maxDiff, math.Abs(a[i].Float64-b[i].Float64))
	}
	return maxDiff, nil
}
