package timedataset

import "time"

type TimeSlice []time.Time

func (t TimeSlice) StartTime() time.Time {
	var startTime time.Time
	if len(t) < 1 {
		return startTime
	}
	return t[0]
}

func (t TimeSlice) EndTime() time.Time {
	var lastTime time.Time
	if len(t) < 1 {
		return lastTime
	}

	lastTime = t[len(t)-1]
	return lastTime
}

// IsMonthly reports whether every consecutive pair of points falls in adjacent calendar
// months. A slice with fewer than two points is trivially monthly.
func (t TimeSlice) IsMonthly() bool {
	for i := 1; i < len(t); i++ {
		prevY, prevM, _ := t[i-1].Date()
		currY, currM, _ := t[i].Date()
		if currY*12+int(currM)-(prevY*12+int(prevM)) != 1 {
			return false
		}
	}
	return true
}
