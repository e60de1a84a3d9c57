package perf

// Suite is the accumulated output of one full benchmark run: an ordered
// mapping from benchmark name (e.g. "stack_search") to that benchmark's
// TimingResult series, ascending by input size.
//
// A Suite is built once by Tester.RunAll and read-only afterwards. It is
// owned by a single caller; sharing one across goroutines is unsupported.
type Suite struct {
	names   []string
	results map[string][]TimingResult
}

func newSuite() *Suite {
	return &Suite{results: make(map[string][]TimingResult)}
}

// ensure registers a benchmark name, preserving first-seen order.
func (s *Suite) ensure(name string) {
	if _, ok := s.results[name]; !ok {
		s.names = append(s.names, name)
		s.results[name] = nil
	}
}

// add appends one result to a benchmark's series.
func (s *Suite) add(name string, res TimingResult) {
	s.ensure(name)
	s.results[name] = append(s.results[name], res)
}

// Names returns the benchmark names in execution order.
func (s *Suite) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}

// Results returns the TimingResult series for one benchmark, ascending by
// input size, or nil for a name the suite does not contain.
func (s *Suite) Results(name string) []TimingResult {
	series := s.results[name]
	out := make([]TimingResult, len(series))
	copy(out, series)

	return out
}

// Len returns the number of benchmarks in the suite.
func (s *Suite) Len() int {
	return len(s.names)
}

// GrowthRatios derives the consecutive-pair growth ratios for one
// benchmark: a series of length k yields k-1 entries. Unknown names and
// series shorter than two both yield an empty slice — absent data is a
// boundary condition of a measurement tool, not an error.
//
// Input sizes are positive by construction in RunAll, so the
// ErrNonPositiveSize path of Classify cannot trigger here; a zero mean
// simply produces an infinite time ratio.
func (s *Suite) GrowthRatios(name string) []GrowthRatio {
	series := s.results[name]
	if len(series) < 2 {
		return nil
	}

	ratios := make([]GrowthRatio, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		gr, err := Classify(series[i-1], series[i])
		if err != nil {
			// Only reachable with a non-positive input size, which RunAll
			// never produces. Skip the pair rather than poison the report.
			continue
		}
		ratios = append(ratios, gr)
	}

	return ratios
}
