// Package loadtest drives concurrent traffic against the chat endpoint.
//
// A batch of (user, message) pairs is built deterministically from the
// request index. Burst fires every request at once; Paced spreads the
// batch evenly over a window, starting request i at i*(window/n) after
// the run begins. Each request runs in its own goroutine and only the
// aggregate Report is inspected, never completion order.
//
//	batch := loadtest.NewBatch(100, 10)
//	report := harness.Paced(ctx, batch, time.Minute)
//	if err := report.Err(); err != nil {
//	    // at least one request failed
//	}
package loadtest
