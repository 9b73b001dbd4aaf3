// Package randutil provides the categorical-draw helper shared by item
// count, tier, and status selection.
package randutil

// Choice pairs an outcome with its cumulative probability threshold.
// Tables are declared in ascending threshold order with the last entry
// at 1.0.
type Choice[T any] struct {
	Outcome T
	Cum     float64
}

// Pick returns the outcome of the first choice whose cumulative
// threshold is greater than or equal to draw. The final choice acts as
// a catch-all for draws past the last threshold, so a draw of exactly
// 1.0 (or a table whose thresholds do not quite reach 1.0) still
// resolves.
func Pick[T any](choices []Choice[T], draw float64) T {
	for _, c := range choices {
		if draw <= c.Cum {
			return c.Outcome
		}
	}
	return choices[len(choices)-1].Outcome
}
