// Package harness provides the timing loop and result accumulator
// shared by every benchmark scenario.
package harness

import "time"

// DefaultWarmup is the number of unmeasured invocations performed
// before the timed loop starts.
const DefaultWarmup = 3

// Time runs op warmup times without measurement, then exactly n more
// times while measuring wall-clock elapsed time. time.Since reads the
// monotonic clock, so the measurement is immune to wall-clock jumps.
// The first error returned by op aborts the loop immediately; partial
// timings are never reported.
func Time(op func() error, warmup, n int) (time.Duration, error) {
	for i := 0; i < warmup; i++ {
		if err := op(); err != nil {
			return 0, err
		}
	}

	start := time.Now()

	for i := 0; i < n; i++ {
		if err := op(); err != nil {
			return 0, err
		}
	}

	return time.Since(start), nil
}

// Rate converts n operations over elapsed into operations per second.
func Rate(n int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}

	return float64(n) / elapsed.Seconds()
}
