package decompose

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/aouyang1/go-decomposer/util"
)

// MonthsPerYear is the seasonal period of monthly data
const MonthsPerYear = 12

var (
	ErrUnknownMethod = errors.New("unknown decomposition method")
	ErrInvalidPeriod = errors.New("period must be at least 2")
)

// Method selects how the components are estimated.
type Method string

const (
	// MethodManual computes the moving average and calendar month averages directly.
	MethodManual Method = "manual"

	// MethodLibrary delegates filtering and averaging to gonum.
	MethodLibrary Method = "library"
)

// ParseMethod converts a configuration string into a Method
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MethodManual, MethodLibrary:
		return m, nil
	}
	return "", fmt.Errorf("%q, %w", s, ErrUnknownMethod)
}

// Other returns the alternate method, used when cross checking results.
func (m Method) Other() Method {
	if m == MethodLibrary {
		return MethodManual
	}
	return MethodLibrary
}

// Options configures an additive decomposition.
type Options struct {
	Method Method `json:"method"`
	Period int    `json:"period"`
}

// NewDefaultOptions returns a manual decomposition of monthly data with a yearly season
func NewDefaultOptions() *Options {
	return &Options{
		Method: MethodManual,
		Period: MonthsPerYear,
	}
}

// Validate checks the method and period
func (o *Options) Validate() error {
	if _, err := ParseMethod(string(o.Method)); err != nil {
		return err
	}
	if o.Period < 2 {
		return fmt.Errorf("got %d, %w", o.Period, ErrInvalidPeriod)
	}
	return nil
}

func (o *Options) TablePrint(w io.Writer, prefix, indent string, indentGrowth int) error {
	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "%s%sDecomposition:\n", prefix, util.IndentExpand(indent, indentGrowth))
	fmt.Fprintf(tbl, "%s%sMethod\tPeriod\t\n", prefix, util.IndentExpand(indent, indentGrowth+1))
	fmt.Fprintf(tbl, "%s%s%s\t%d\t\n", prefix, util.IndentExpand(indent, indentGrowth+1), o.Method, o.Period)
	return tbl.Flush()
}
