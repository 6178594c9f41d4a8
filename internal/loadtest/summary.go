package loadtest

import (
	"fmt"
	"io"
	"time"
)

// WriteSummary prints a short human readable account of report.
func WriteSummary(w io.Writer, mode string, report *Report) {
	fmt.Fprintf(w, "=== Chat load test (%s) ===\n", mode)
	fmt.Fprintf(w, "Requests:    %d\n", report.Total())
	fmt.Fprintf(w, "Succeeded:   %d\n", report.Succeeded())
	fmt.Fprintf(w, "Failed:      %d\n", report.Failed())
	fmt.Fprintf(w, "Elapsed:     %s\n", report.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "Max latency: %s\n", report.MaxLatency().Round(time.Millisecond))

	for _, res := range report.Results {
		if res.Err != nil {
			fmt.Fprintf(w, "  #%d %s: %v\n", res.Index, res.UserID, res.Err)
		}
	}
}
