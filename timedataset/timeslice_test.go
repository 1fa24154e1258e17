package timedataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartTime(t *testing.T) {
	testData := map[string]struct {
		tSlice   TimeSlice
		expected time.Time
	}{
		"nil input for start time": {
			tSlice:   nil,
			expected: time.Time{},
		},
		"valid start time": {
			tSlice: TimeSlice([]time.Time{
				time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 3, 0, 0, 0, 0, time.UTC),
			}),
			expected: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res := td.tSlice.StartTime()
			assert.Equal(t, td.expected, res)
		})
	}
}

func TestEndTime(t *testing.T) {
	testData := map[string]struct {
		tSlice   TimeSlice
		expected time.Time
	}{
		"nil input for end time": {
			tSlice:   nil,
			expected: time.Time{},
		},
		"valid end time": {
			tSlice: TimeSlice([]time.Time{
				time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 3, 0, 0, 0, 0, time.UTC),
			}),
			expected: time.Date(1970, 1, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res := td.tSlice.EndTime()
			assert.Equal(t, td.expected, res)
		})
	}
}

func TestIsMonthly(t *testing.T) {
	testData := map[string]struct {
		tSlice   TimeSlice
		expected bool
	}{
		"nil input is monthly": {
			tSlice:   nil,
			expected: true,
		},
		"month ends": {
			tSlice: TimeSlice([]time.Time{
				time.Date(2016, 1, 31, 0, 0, 0, 0, time.UTC),
				time.Date(2016, 2, 29, 0, 0, 0, 0, time.UTC),
				time.Date(2016, 3, 31, 0, 0, 0, 0, time.UTC),
			}),
			expected: true,
		},
		"across year boundary": {
			tSlice: TimeSlice([]time.Time{
				time.Date(2016, 12, 31, 0, 0, 0, 0, time.UTC),
				time.Date(2017, 1, 31, 0, 0, 0, 0, time.UTC),
			}),
			expected: true,
		},
		"skipped month": {
			tSlice: TimeSlice([]time.Time{
				time.Date(2016, 1, 31, 0, 0, 0, 0, time.UTC),
				time.Date(2016, 3, 31, 0, 0, 0, 0, time.UTC),
			}),
			expected: false,
		},
		"daily": {
			tSlice: TimeSlice([]time.Time{
				time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC),
			}),
			expected: false,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, td.tSlice.IsMonthly())
		})
	}
}
