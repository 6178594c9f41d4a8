package loadtest

import (
	"errors"
	"fmt"
	"time"
)

// Result is the outcome of one chat request.
type Result struct {
	Index    int
	UserID   string
	Response string
	Err      error
	// Offset is when the request started, relative to the run start.
	Offset  time.Duration
	Latency time.Duration
}

// Report aggregates a run. Results are indexed by request, not by
// completion order.
type Report struct {
	Results []Result
	Elapsed time.Duration
}

func (r *Report) Total() int {
	return len(r.Results)
}

func (r *Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}
	return n
}

func (r *Report) Failed() int {
	return r.Total() - r.Succeeded()
}

// Responses returns the replies of successful requests in request order.
func (r *Report) Responses() []string {
	out := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		if res.Err == nil {
			out = append(out, res.Response)
		}
	}
	return out
}

// MaxLatency is the slowest single request of the run.
func (r *Report) MaxLatency() time.Duration {
	var max time.Duration
	for _, res := range r.Results {
		if res.Latency > max {
			max = res.Latency
		}
	}
	return max
}

// Err joins the errors of every failed request, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("request %d (%s): %w", res.Index, res.UserID, res.Err))
		}
	}
	return errors.Join(errs...)
}
