package relative

import (
	"math"
	"time"
)

// Units in ascending order of size.
const (
	Second = "second"
	Minute = "minute"
	Hour   = "hour"
	Day    = "day"
	Month  = "month"
	Year   = "year"
)

var units = []string{Second, Minute, Hour, Day, Month, Year}

// Report holds the signed distance from one instant to another expressed
// in every unit. Positive values are in the future.
type Report struct {
	Second float64
	Minute float64
	Hour   float64
	Day    float64
	Month  float64
	Year   float64
}

// Diff measures the distance from from to to. Each unit is rounded from
// the previous one, so 90 seconds count as 2 minutes.
func Diff(from, to time.Time) Report {
	ms := float64(to.Sub(from).Milliseconds())

	r := Report{}
	r.Second = jsRound(ms / 1000)
	r.Minute = jsRound(r.Second / 60)
	r.Hour = jsRound(r.Minute / 60)
	r.Day = jsRound(r.Hour / 24)

	years := r.Day * 400 / 146097
	r.Month = jsRound(years * 12)
	r.Year = jsRound(years)

	return r
}

// Get returns the distance in the named unit.
func (r Report) Get(unit string) float64 {
	switch unit {
	case Second:
		return r.Second
	case Minute:
		return r.Minute
	case Hour:
		return r.Hour
	case Day:
		return r.Day
	case Month:
		return r.Month
	default:
		return r.Year
	}
}

// jsRound rounds half up, so -2.5 becomes -2.
func jsRound(x float64) float64 {
	return math.Floor(x + 0.5)
}
