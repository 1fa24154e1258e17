package decomposer

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/aouyang1/go-decomposer/decompose"
	"github.com/aouyang1/go-decomposer/stats"
	"github.com/aouyang1/go-decomposer/timedataset"
	"github.com/aouyang1/go-decomposer/util"
)

// SeasonalEffect is the seasonal index for one position in the period
type SeasonalEffect struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Summary describes a decomposition for the closing note of the dashboard
type Summary struct {
	Method decompose.Method `json:"method"`
	Period int              `json:"period"`
	Start  time.Time        `json:"start"`
	End    time.Time        `json:"end"`

	// first and last points with a defined trend
	TrendStart time.Time `json:"trend_start"`
	TrendEnd   time.Time `json:"trend_end"`

	SeasonalIndex    []SeasonalEffect     `json:"seasonal_index"`
	TrendStrength    float64              `json:"trend_strength"`
	SeasonalStrength float64              `json:"seasonal_strength"`
	Outliers         []time.Time          `json:"outliers"`
	Agreement        *decompose.Agreement `json:"agreement,omitempty"`
}

// NewSummary computes summary statistics of res. agreement may be nil when the alternate
// method could not be run.
func NewSummary(res *decompose.Result, agreement *decompose.Agreement, opt *OutlierOptions) (*Summary, error) {
	if res == nil || len(res.T) == 0 {
		return nil, decompose.ErrEmptyTimeDataset
	}
	if opt == nil {
		opt = NewOutlierOptions()
	}

	tSlice := timedataset.TimeSlice(res.T)
	s := &Summary{
		Method:    res.Method,
		Period:    res.Period,
		Start:     tSlice.StartTime(),
		End:       tSlice.EndTime(),
		Agreement: agreement,
	}

	first, last := res.TrendBounds()
	if first >= 0 {
		s.TrendStart = res.T[first]
		s.TrendEnd = res.T[last]
	}

	monthly := tSlice.IsMonthly()
	s.SeasonalIndex = make([]SeasonalEffect, len(res.SeasonalIndex))
	for k, v := range res.SeasonalIndex {
		label := fmt.Sprintf("t+%d", k)
		if monthly {
			label = res.T[k].Month().String()
		}
		s.SeasonalIndex[k] = SeasonalEffect{Label: label, Value: v}
	}

	var err error
	s.TrendStrength, err = stats.Strength(res.Trend, res.Irregular)
	if err != nil {
		return nil, fmt.Errorf("unable to compute trend strength, %w", err)
	}
	s.SeasonalStrength, err = stats.Strength(res.Seasonal, res.Irregular)
	if err != nil {
		return nil, fmt.Errorf("unable to compute seasonal strength, %w", err)
	}

	idxs, irregular := timedataset.Defined(res.Irregular)
	outlierIdxs := stats.DetectOutliers(irregular, opt.LowerPercentile, opt.UpperPercentile, opt.TukeyFactor)
	s.Outliers = make([]time.Time, 0, len(outlierIdxs))
	for _, idx := range outlierIdxs {
		s.Outliers = append(s.Outliers, res.T[idxs[idx]])
	}

	return s, nil
}

// TablePrint writes a human readable version of the summary
func (s *Summary) TablePrint(w io.Writer, prefix, indent string, indentGrowth int) error {
	pad := prefix + util.IndentExpand(indent, indentGrowth)
	padInner := prefix + util.IndentExpand(indent, indentGrowth+1)

	fmt.Fprintf(w, "%sSummary:\n", pad)
	fmt.Fprintf(w, "%sMethod: %s\n", padInner, s.Method)
	fmt.Fprintf(w, "%sRange: %s to %s\n", padInner, s.Start.Format(time.DateOnly), s.End.Format(time.DateOnly))
	fmt.Fprintf(w, "%sTrend Range: %s to %s\n", padInner, s.TrendStart.Format(time.DateOnly), s.TrendEnd.Format(time.DateOnly))
	fmt.Fprintf(w, "%sTrend Strength: %.3f\n", padInner, s.TrendStrength)
	fmt.Fprintf(w, "%sSeasonal Strength: %.3f\n", padInner, s.SeasonalStrength)
	fmt.Fprintf(w, "%sIrregular Outliers: %d\n", padInner, len(s.Outliers))
	if s.Agreement != nil {
		fmt.Fprintf(w, "%sMax Method Difference: %.3g\n", padInner, s.Agreement.Max())
	}

	fmt.Fprintf(w, "%sSeasonal Index:\n", padInner)
	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	padTbl := prefix + util.IndentExpand(indent, indentGrowth+2)
	fmt.Fprintf(tbl, "%sPeriod\tValue\t\n", padTbl)
	for _, effect := range s.SeasonalIndex {
		fmt.Fprintf(tbl, "%s%s\t%.3f\t\n", padTbl, effect.Label, effect.Value)
	}
	return tbl.Flush()
}
