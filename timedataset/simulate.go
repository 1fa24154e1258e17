package timedataset

import (
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/rickar/cal/v2"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrInvalidLength = errors.New("series length must be greater than zero")
	ErrInvalidPeriod = errors.New("seasonal period must be greater than zero")
)

// SyntheticOptions configures the synthetic monthly series made of a linear trend, a sine
// seasonal term and gaussian noise.
type SyntheticOptions struct {
	Length      int       `json:"length"`
	Start       time.Time `json:"start"`
	Seed        uint64    `json:"seed"`
	TrendStart  float64   `json:"trend_start"`
	TrendEnd    float64   `json:"trend_end"`
	Amplitude   float64   `json:"amplitude"`
	Period      float64   `json:"period"`
	NoiseStdDev float64   `json:"noise_std_dev"`
}

// NewDefaultSyntheticOptions returns six years of monthly data starting January 2016
func NewDefaultSyntheticOptions() *SyntheticOptions {
	return &SyntheticOptions{
		Length:      72,
		Start:       time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC),
		Seed:        42,
		TrendStart:  100.0,
		TrendEnd:    200.0,
		Amplitude:   15.0,
		Period:      12.0,
		NoiseStdDev: 6.0,
	}
}

func (o *SyntheticOptions) Validate() error {
	if o.Length <= 0 {
		return ErrInvalidLength
	}
	if o.Period <= 0 {
		return ErrInvalidPeriod
	}
	return nil
}

// Generate builds the synthetic dataset. A fresh random source is seeded on every call so
// repeated calls with the same options return identical values.
func Generate(opt *SyntheticOptions) (*TimeDataset, error) {
	if opt == nil {
		opt = NewDefaultSyntheticOptions()
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(opt.Seed, opt.Seed))

	t := GenerateMonthlyT(opt.Length, opt.Start)
	y := make(Series, opt.Length)
	y.Add(GenerateLinearY(opt.Length, opt.TrendStart, opt.TrendEnd)).
		Add(GenerateWaveY(opt.Length, opt.Amplitude, opt.Period)).
		Add(GenerateNoise(opt.Length, opt.NoiseStdDev, rng))

	return NewUnivariateDataset(t, y)
}

// GenerateMonthlyT returns n month end dates beginning with the month containing start.
func GenerateMonthlyT(n int, start time.Time) []time.Time {
	t := make([]time.Time, 0, n)
	first := cal.MonthStart(start)
	for i := 0; i < n; i++ {
		t = append(t, cal.DayStart(cal.MonthEnd(first.AddDate(0, i, 0))))
	}
	return t
}

type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

// GenerateLinearY returns n evenly spaced values from start to end inclusive.
func GenerateLinearY(n int, start, end float64) Series {
	y := make([]float64, n)
	if n == 1 {
		y[0] = start
		return Series(y)
	}
	floats.Span(y, start, end)
	return Series(y)
}

// GenerateWaveY returns amp*sin(2*pi*i/period) for each index i.
func GenerateWaveY(n int, amp, period float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		val := amp * math.Sin(2.0*math.Pi*float64(i)/period)
		y = append(y, val)
	}
	return Series(y)
}

// GenerateNoise draws n zero mean gaussian samples with the given standard deviation from rng.
func GenerateNoise(n int, stdDev float64, rng *rand.Rand) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, rng.NormFloat64()*stdDev)
	}
	return Series(y)
}
