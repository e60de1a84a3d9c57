package perf_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/structbench/perf"
)

// TestTime_NonNegative: even a no-op yields a non-negative duration on
// the monotonic clock.
func TestTime_NonNegative(t *testing.T) {
	elapsed := perf.Time(func() {})
	assert.GreaterOrEqual(t, elapsed, 0.0)
}

// TestTime_MeasuresSleep bounds a known sleep from below; the upper bound
// is left to scheduling, which a unit test must not assume.
func TestTime_MeasuresSleep(t *testing.T) {
	elapsed := perf.Time(func() { time.Sleep(10 * time.Millisecond) })
	assert.GreaterOrEqual(t, elapsed, 0.010, "a 10ms sleep cannot measure under 10ms")
}

// TestTime_RunsOpExactlyOnce guards the single-invocation contract.
func TestTime_RunsOpExactlyOnce(t *testing.T) {
	calls := 0
	perf.Time(func() { calls++ })
	assert.Equal(t, 1, calls)
}
