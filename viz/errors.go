package viz

import "errors"

var (
	// ErrEmptySeries indicates a chart was requested for a series with no
	// data points.
	ErrEmptySeries = errors.New("viz: series has no data points")
	// ErrMismatchedSeries indicates a series whose sizes, times and errors
	// slices differ in length.
	ErrMismatchedSeries = errors.New("viz: series slices differ in length")
)
