// Package worker drains the mirror task table, replaying orders into the
// hosted secondary store. The primary database stays authoritative; a task
// that keeps failing is parked as FAILED after MaxAttempts and never affects
// the order that produced it.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"greengrow-storefront/internal/client"
	"greengrow-storefront/internal/model"
	"greengrow-storefront/internal/repository"
)

var mirrorTasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mirror_tasks_total",
	Help: "Mirror task outcomes by result.",
}, []string{"result"})

type MirrorWorker struct {
	Log    zerolog.Logger
	Tasks  repository.MirrorTaskRepository
	Mirror client.MirrorClient

	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
	BackoffBase  time.Duration
	BackoffMax   time.Duration
}

// Run polls until ctx is cancelled.
func (w *MirrorWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	w.Log.Info().
		Dur("poll_interval", w.PollInterval).
		Int("batch_size", w.BatchSize).
		Int("max_attempts", w.MaxAttempts).
		Msg("mirror worker started")

	for {
		select {
		case <-ctx.Done():
			w.Log.Info().Msg("mirror worker stopped")
			return
		case <-ticker.C:
			if err := w.DrainOnce(ctx); err != nil {
				w.Log.Error().Err(err).Msg("drain mirror tasks")
			}
		}
	}
}

// DrainOnce processes one batch of due tasks.
func (w *MirrorWorker) DrainOnce(ctx context.Context) error {
	tasks, err := w.Tasks.FindDue(ctx, time.Now(), w.BatchSize)
	if err != nil {
		return fmt.Errorf("find due tasks: %w", err)
	}

	for _, task := range tasks {
		w.processTask(ctx, task)
	}
	return nil
}

func (w *MirrorWorker) processTask(ctx context.Context, task *model.MirrorTask) {
	err := w.replay(ctx, task)
	if err == nil {
		if err := w.Tasks.MarkDone(ctx, task.ID); err != nil {
			w.Log.Error().Err(err).Uint("task_id", task.ID).Msg("mark task done")
			return
		}
		mirrorTasksTotal.WithLabelValues("done").Inc()
		w.Log.Info().Str("order_id", task.OrderID).Msg("order mirrored")
		return
	}

	attempts := task.Attempts + 1
	if attempts >= w.MaxAttempts {
		if markErr := w.Tasks.MarkFailed(ctx, task.ID, attempts, err.Error()); markErr != nil {
			w.Log.Error().Err(markErr).Uint("task_id", task.ID).Msg("mark task failed")
			return
		}
		mirrorTasksTotal.WithLabelValues("failed").Inc()
		w.Log.Error().Err(err).
			Str("order_id", task.OrderID).
			Int("attempts", attempts).
			Msg("mirror task gave up")
		return
	}

	next := time.Now().Add(w.backoff(attempts))
	if markErr := w.Tasks.MarkRetry(ctx, task.ID, attempts, next, err.Error()); markErr != nil {
		w.Log.Error().Err(markErr).Uint("task_id", task.ID).Msg("mark task retry")
		return
	}
	mirrorTasksTotal.WithLabelValues("retry").Inc()
	w.Log.Warn().Err(err).
		Str("order_id", task.OrderID).
		Int("attempts", attempts).
		Time("next_attempt_at", next).
		Msg("mirror task retry scheduled")
}

func (w *MirrorWorker) replay(ctx context.Context, task *model.MirrorTask) error {
	var rec client.MirrorOrderRecord
	if err := json.Unmarshal(task.Payload, &rec); err != nil {
		return fmt.Errorf("decode task payload: %w", err)
	}

	customerID, err := w.Mirror.EnsureCustomer(ctx, rec.CustomerEmail, rec.CustomerName, rec.CustomerPhone)
	if err != nil {
		return err
	}

	return w.Mirror.CreateOrder(ctx, customerID, &rec)
}

// backoff doubles per attempt from BackoffBase, capped at BackoffMax.
func (w *MirrorWorker) backoff(attempts int) time.Duration {
	d := w.BackoffBase
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= w.BackoffMax {
			return w.BackoffMax
		}
	}
	if d > w.BackoffMax {
		return w.BackoffMax
	}
	return d
}
