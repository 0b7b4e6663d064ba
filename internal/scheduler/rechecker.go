package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/servicecheck/internal/domain"
	"github.com/hamed0406/servicecheck/internal/health"
	"github.com/hamed0406/servicecheck/internal/repo"
)

// Rechecker re-evaluates a fixed target list on an interval and snapshots
// the results into the store. Targets are checked one at a time, in order.
type Rechecker struct {
	Logger    *zap.Logger
	Evaluator *health.Evaluator
	Targets   []domain.Target
	Results   repo.ResultStore
	Interval  time.Duration
}

func New(logger *zap.Logger, e *health.Evaluator, targets []domain.Target, rs repo.ResultStore, interval time.Duration) *Rechecker {
	return &Rechecker{
		Logger:    logger,
		Evaluator: e,
		Targets:   targets,
		Results:   rs,
		Interval:  interval,
	}
}

// Run starts the loop. It does an immediate pass, then runs each tick.
// Stops when ctx is cancelled. Interval 0 means a single pass only.
func (r *Rechecker) Run(ctx context.Context) {
	r.RunOnce(ctx)
	if r.Interval == 0 {
		r.Logger.Info("rechecker_single_pass")
		return
	}

	t := time.NewTicker(r.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			r.Logger.Info("rechecker_stopped")
			return
		case <-t.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce evaluates every target sequentially and stores the results.
func (r *Rechecker) RunOnce(ctx context.Context) {
	results := r.Evaluator.EvaluateAll(ctx, r.Targets)
	for _, res := range results {
		if err := r.Results.Put(ctx, res); err != nil {
			r.Logger.Warn("rechecker_store_error",
				zap.String("service", res.Target.Name),
				zap.Error(err),
			)
		}
	}
	healthy, total := health.Summary(results)
	r.Logger.Info("recheck_pass",
		zap.Int("healthy", healthy),
		zap.Int("total", total),
	)
}
