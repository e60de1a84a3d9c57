package perf

import "errors"

var (
	// ErrBadIterations indicates a Tester configured with iterations < 1.
	ErrBadIterations = errors.New("perf: iterations must be at least 1")
	// ErrNonPositiveSize indicates Classify received a previous result with
	// input size <= 0, which would make the size ratio undefined.
	ErrNonPositiveSize = errors.New("perf: previous input size must be positive")
	// ErrNoSamples indicates a TimingResult was constructed without samples.
	ErrNoSamples = errors.New("perf: timing result needs at least one sample")
)
