package loadtest

import (
	"context"
	"time"

	"github.com/futig/vectordb-client/internal/entity"
	"github.com/futig/vectordb-client/internal/pkg/logger"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ChatSender interface {
	Send(ctx context.Context, req entity.ChatRequest) (string, error)
}

// Harness fans chat requests out over goroutines. It holds no state
// between runs, so one Harness can serve several runs.
type Harness struct {
	sender ChatSender
}

func NewHarness(sender ChatSender) *Harness {
	return &Harness{
		sender: sender,
	}
}

// Burst starts every request of batch immediately and waits for all.
func (h *Harness) Burst(ctx context.Context, batch []entity.ChatRequest) *Report {
	ctxzap.Info(ctx, "starting burst run", zap.Int("requests", len(batch)))
	return h.run(ctx, batch, 0)
}

// Paced starts request i at i*(window/len(batch)) after the run begins,
// so the batch is spread evenly over window. Requests still pending when
// ctx is cancelled are recorded with ctx's error.
func (h *Harness) Paced(ctx context.Context, batch []entity.ChatRequest, window time.Duration) *Report {
	if len(batch) == 0 {
		return &Report{}
	}

	interval := window / time.Duration(len(batch))
	ctxzap.Info(ctx, "starting paced run",
		zap.Int("requests", len(batch)),
		zap.Duration("window", window),
		zap.Duration("interval", interval),
	)
	return h.run(ctx, batch, interval)
}

func (h *Harness) run(ctx context.Context, batch []entity.ChatRequest, interval time.Duration) *Report {
	results := make([]Result, len(batch))
	start := time.Now()

	// Goroutines return nil so one failure never cancels its siblings;
	// errors are kept per request in results.
	var g errgroup.Group
	for i, req := range batch {
		g.Go(func() error {
			results[i] = h.send(ctx, start, i, req, time.Duration(i)*interval)
			return nil
		})
	}
	_ = g.Wait()

	report := &Report{
		Results: results,
		Elapsed: time.Now().Sub(start),
	}

	ctxzap.Info(ctx, "load run finished",
		zap.Int("succeeded", report.Succeeded()),
		zap.Int("failed", report.Failed()),
		zap.Duration("elapsed", report.Elapsed),
	)

	return report
}

func (h *Harness) send(ctx context.Context, start time.Time, i int, req entity.ChatRequest, delay time.Duration) Result {
	res := Result{Index: i, UserID: req.UserID}
	ctx = logger.AddFields(ctx, zap.Int("index", i), zap.String("user_id", req.UserID))

	if wait := delay - time.Now().Sub(start); wait > 0 {
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			res.Err = ctx.Err()
			return res
		case <-timer.C:
		}
	}

	sent := time.Now()
	res.Offset = sent.Sub(start)
	res.Response, res.Err = h.sender.Send(ctx, req)
	res.Latency = time.Now().Sub(sent)

	if res.Err != nil {
		ctxzap.Warn(ctx, "chat request failed", zap.Error(res.Err))
	}

	return res
}
