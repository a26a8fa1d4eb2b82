package syncqueue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultMaxRetries = 3
	DefaultItemDelay  = time.Second
)

// RunReport summarizes one reconciliation pass.
type RunReport struct {
	Synced    int `json:"synced"`
	Failed    int `json:"failed"`
	Abandoned int `json:"abandoned"`
	Skipped   int `json:"skipped"`
}

type ReconcilerOption func(*Reconciler)

// WithMaxRetries sets how many failed attempts a periodic pass makes before giving up on an entry.
func WithMaxRetries(n int) ReconcilerOption {
	return func(r *Reconciler) {
		if n > 0 {
			r.maxRetries = n
		}
	}
}

// WithItemDelay sets the pause between two entries of a pass.
func WithItemDelay(d time.Duration) ReconcilerOption {
	return func(r *Reconciler) {
		if d >= 0 {
			r.itemDelay = d
		}
	}
}

// WithOnSynced registers the callback run after the server accepted a queued status and the
// entry was removed. It is not called when a newer status replaced the entry during the push.
func WithOnSynced(fn func(id int64, success bool)) ReconcilerOption {
	return func(r *Reconciler) { r.onSynced = fn }
}

// WithOnAbandoned registers the callback run when an entry runs out of attempts.
func WithOnAbandoned(fn func(id int64, success bool)) ReconcilerOption {
	return func(r *Reconciler) { r.onAbandoned = fn }
}

// Reconciler pushes queued statuses to the server, bounded by a retry count per entry.
type Reconciler struct {
	queue       *Queue
	pusher      StatusPusher
	logger      *zap.Logger
	maxRetries  int
	itemDelay   time.Duration
	onSynced    func(id int64, success bool)
	onAbandoned func(id int64, success bool)

	runMu sync.Mutex
}

func NewReconciler(queue *Queue, pusher StatusPusher, logger *zap.Logger, opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{
		queue:      queue,
		pusher:     pusher,
		logger:     logger,
		maxRetries: DefaultMaxRetries,
		itemDelay:  DefaultItemDelay,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Reconciler) MaxRetries() int { return r.maxRetries }

// Run makes one attempt for every queued entry that still has attempts left.
// Only one pass runs at a time; a concurrent call returns ErrPassInProgress.
func (r *Reconciler) Run(ctx context.Context) (RunReport, error) {
	var report RunReport

	if !r.runMu.TryLock() {
		return report, ErrPassInProgress
	}
	defer r.runMu.Unlock()

	entries := r.queue.Entries()
	if len(entries) == 0 {
		return report, nil
	}

	r.logger.Info("Sync pass started", zap.Int("entries", len(entries)))

	for i, e := range entries {
		if i > 0 && r.itemDelay > 0 {
			select {
			case <-ctx.Done():
				return report, fmt.Errorf("sync pass interrupted: %w", ctx.Err())
			case <-time.After(r.itemDelay):
			}
		}
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("sync pass interrupted: %w", err)
		}

		// The entry may have been retried manually or cleared since the copy was taken.
		success, queued := r.queue.Desired(e.ID)
		if !queued || r.queue.Attempts(e.ID) >= r.maxRetries {
			report.Skipped++
			continue
		}

		log := r.logger.With(zap.Int64("smsID", e.ID), zap.Bool("success", success))

		if err := r.pusher.PushStatus(ctx, e.ID, success); err != nil {
			attempts := r.queue.Fail(e.ID)
			report.Failed++
			log.Warn("Sync attempt failed", zap.Int("attempt", attempts), zap.Error(err))

			if attempts >= r.maxRetries && r.queue.removeIf(e.ID, success) {
				report.Abandoned++
				log.Error("Sync abandoned after max retries", zap.Int("maxRetries", r.maxRetries))
				if r.onAbandoned != nil {
					r.onAbandoned(e.ID, success)
				}
			}
			continue
		}

		report.Synced++
		if !r.queue.removeIf(e.ID, success) {
			log.Info("Sync succeeded but a newer status is queued")
			continue
		}
		log.Info("Sync succeeded")
		if r.onSynced != nil {
			r.onSynced(e.ID, success)
		}
	}

	r.logger.Info("Sync pass finished",
		zap.Int("synced", report.Synced),
		zap.Int("failed", report.Failed),
		zap.Int("abandoned", report.Abandoned))
	return report, nil
}

// RetryOne makes a single immediate attempt for id. A failure leaves the entry and its
// attempt count untouched.
func (r *Reconciler) RetryOne(ctx context.Context, id int64) error {
	success, queued := r.queue.Desired(id)
	if !queued {
		return ErrNotQueued
	}

	if err := r.pusher.PushStatus(ctx, id, success); err != nil {
		r.logger.Warn("Manual sync failed", zap.Int64("smsID", id), zap.Error(err))
		return fmt.Errorf("failed to sync message %d: %w", id, err)
	}

	if !r.queue.removeIf(id, success) {
		r.logger.Info("Manual sync succeeded but a newer status is queued", zap.Int64("smsID", id))
		return nil
	}
	r.logger.Info("Manual sync succeeded", zap.Int64("smsID", id), zap.Bool("success", success))
	if r.onSynced != nil {
		r.onSynced(id, success)
	}
	return nil
}
