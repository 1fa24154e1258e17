package timedataset

import (
	"math"

	"github.com/goccy/go-json"
)

// Value is a float that may be undefined, e.g. the edges of a centered moving average.
// An undefined value encodes to JSON null.
type Value struct {
	Float64 float64
	Valid   bool
}

// NewValue returns a defined value unless v is NaN
func NewValue(v float64) Value {
	if math.IsNaN(v) {
		return Value{}
	}
	return Value{Float64: v, Valid: true}
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Float64)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Value{Float64: f, Valid: true}
	return nil
}

// Values wraps every element of y, treating NaN as undefined.
func Values(y []float64) []Value {
	res := make([]Value, len(y))
	for i, v := range y {
		res[i] = NewValue(v)
	}
	return res
}

// Defined returns the indices and values of all defined points in v.
func Defined(v []Value) ([]int, []float64) {
	idxs := make([]int, 0, len(v))
	vals := make([]float64, 0, len(v))
	for i, val := range v {
		if !val.Valid {
			continue
		}
		idxs = append(idxs, i)
		vals = append(vals, val.Float64)
	}
	return idxs, vals
}
