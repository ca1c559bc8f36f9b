package main

import (
	"fmt"
	"io"

	"advent/internal/driver"
	"advent/internal/observ"
)

// printTimings writes the phase table followed by a one-line cache tally.
func printTimings(out io.Writer, timer *observ.Timer, results []driver.DayResult) {
	if out == nil || timer == nil {
		return
	}
	fmt.Fprint(out, timer.Summary())
	if len(results) > 0 {
		fmt.Fprintf(out, "cache: %d of %d day(s) reused\n", driver.CachedCount(results), len(results))
	}
}
