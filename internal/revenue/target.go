// Package revenue computes the synthetic daily sales figure the order
// synthesizer tries to reach. Target is pure given its noise input so
// the model stays auditable and testable with a fixed noise value.
package revenue

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Baseline and caps, in centavos.
const (
	BaseDaily   = 1_200_000 // ₱12,000 before multipliers
	AbsoluteCap = 2_800_000 // ₱28,000 hard ceiling
	SundayCap   = 350_000   // ₱3,500 ceiling on Sundays
)

// Noise bounds for the uniform daily jitter factor.
const (
	noiseMin = 0.70
	noiseMax = 1.30
)

// monthMultiplier models the seasonal curve of a Philippine hardware
// store: slow start after the holidays, a summer construction bump, a
// rainy-season dip, and a strong ber-months finish. Index 1..12.
var monthMultiplier = [13]float64{
	0,
	0.85, // Jan
	0.90, // Feb
	1.00, // Mar
	1.05, // Apr
	1.10, // May
	0.95, // Jun
	0.90, // Jul
	0.90, // Aug
	1.00, // Sep
	1.05, // Oct
	1.10, // Nov
	1.20, // Dec
}

// weekdayMultiplier, indexed by time.Weekday (Sunday = 0). Saturdays
// carry the week; Sundays the store is mostly closed.
var weekdayMultiplier = [7]float64{0.30, 1.00, 0.95, 0.95, 1.00, 1.10, 1.25}

// yearMultiplier models year-over-year growth.
var yearMultiplier = map[int]float64{
	2023: 0.75,
	2024: 1.00,
	2025: 1.15,
}

// annualOverrides apply every year, keyed by "MM-DD".
var annualOverrides = map[string]float64{
	"11-01": 0.25, // All Saints' Day
	"12-25": 0.05, // Christmas Day
	"12-31": 0.40, // New Year's Eve
}

// dateOverrides apply to one specific date, keyed by "2006-01-02".
var dateOverrides = map[string]float64{
	"2024-05-15": 1.80, // store anniversary sale
}

// holyWeek holds the Maundy Thursday through Easter Sunday window per year.
var holyWeek = map[int][2]string{
	2023: {"2023-04-06", "2023-04-09"},
	2024: {"2024-03-28", "2024-03-31"},
	2025: {"2025-04-17", "2025-04-20"},
	2026: {"2026-04-02", "2026-04-05"},
}

// Noise draws the daily jitter factor, uniform in [0.70, 1.30).
func Noise(rng *rand.Rand) float64 {
	return noiseMin + rng.Float64()*(noiseMax-noiseMin)
}

// Target computes the revenue goal in centavos for one calendar date.
// Pure: the same date and noise value always yield the same figure.
func Target(date time.Time, noise float64) int64 {
	f := float64(BaseDaily)
	f *= monthMultiplier[date.Month()]
	f *= weekdayMultiplier[date.Weekday()]
	if y, ok := yearMultiplier[date.Year()]; ok {
		f *= y
	}
	f *= noise
	f *= calendarFactor(date)

	target := int64(math.Round(f))
	if target > AbsoluteCap {
		target = AbsoluteCap
	}
	if date.Weekday() == time.Sunday && target > SundayCap {
		target = SundayCap
	}
	if target < 0 {
		target = 0
	}
	return target
}

// calendarFactor folds the fixed holiday and event windows into one
// multiplicative override.
func calendarFactor(date time.Time) float64 {
	f := 1.0

	// New Year slump: first week of January.
	if date.Month() == time.January && date.Day() <= 7 {
		f *= 0.15
	}

	if inHolyWeek(date) {
		f *= 0.10
	}

	// Christmas-season boost up to the 23rd; the 24th onward is covered
	// by the single-day overrides.
	if date.Month() == time.December && date.Day() <= 23 {
		f *= 1.10
	}

	if m, ok := annualOverrides[date.Format("01-02")]; ok {
		f *= m
	}
	if m, ok := dateOverrides[date.Format("2006-01-02")]; ok {
		f *= m
	}
	return f
}

func inHolyWeek(date time.Time) bool {
	window, ok := holyWeek[date.Year()]
	if !ok {
		return false
	}
	key := date.Format("2006-01-02")
	return key >= window[0] && key <= window[1]
}

// DateRange returns every date from start to end inclusive, at day
// granularity. It errors when the bounds are inverted.
func DateRange(start, end time.Time) ([]time.Time, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("date range end %s before start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates, nil
}
