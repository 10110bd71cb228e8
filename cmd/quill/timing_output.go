package main

import (
	"fmt"
	"io"
	"time"

	"quill/internal/observ"
	"quill/internal/progress"
)

// printTimings writes the --timings report. stages is nil for single-file
// runs, where the timer already holds every phase.
func printTimings(out io.Writer, timer *observ.Timer, stages *progress.Timings) {
	if timer == nil {
		return
	}
	if stages != nil {
		for _, stage := range []progress.Stage{progress.StageCache, progress.StageLex} {
			if d := stages.Duration(stage); d > 0 {
				fmt.Fprintf(out, "%s %.1f ms (sum over files)\n", stage, toMillis(d))
			}
		}
	}
	fmt.Fprint(out, timer.Summary())
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
