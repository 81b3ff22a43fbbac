package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/pkg/lock"
)

// Locks are refreshed every half TTL while a job runs, so the TTL only
// bounds how long a crashed runner blocks the next one.
const (
	reconcileLockTTL  = time.Minute
	quotaResetLockTTL = time.Minute
)

var errLockLost = errors.New("job lock lost")

// Runner is the single entry point for both jobs. The manual triggers and the
// cron schedule go through the same lock, so one job runs at a time across
// every replica sharing the locker.
type Runner struct {
	reconciler *Reconciler
	resetter   *QuotaResetter
	locker     lock.Locker
	cron       *cron.Cron

	reconcileTTL  time.Duration
	quotaResetTTL time.Duration
}

func NewRunner(reconciler *Reconciler, resetter *QuotaResetter, locker lock.Locker) *Runner {
	return &Runner{
		reconciler: reconciler,
		resetter:   resetter,
		locker:     locker,
		cron:       cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),

		reconcileTTL:  reconcileLockTTL,
		quotaResetTTL: quotaResetLockTTL,
	}
}

func (r *Runner) guard(ctx context.Context, job string, ttl time.Duration, fn func(ctx context.Context) error) error {
	lease, err := r.locker.Obtain(ctx, "jobs:"+job, ttl)
	if errors.Is(err, lock.ErrNotObtained) {
		zap.L().Info("job already running, skipped", zap.String("job", job))
		return fmt.Errorf("%s is already running: %w", job, domain.ErrConflict)
	}
	if err != nil {
		zap.L().Error("can't obtain job lock", zap.String("job", job), zap.Error(err))
		return err
	}
	defer func() {
		if err := lease.Release(context.WithoutCancel(ctx)); err != nil {
			zap.L().Warn("can't release job lock", zap.String("job", job), zap.Error(err))
		}
	}()

	jobCtx, cancel := context.WithCancelCause(ctx)
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		keepAlive(jobCtx, cancel, lease, job, ttl)
	}()

	err = fn(jobCtx)
	cause := context.Cause(jobCtx)
	cancel(nil)
	<-stopped
	if err != nil && errors.Is(cause, errLockLost) {
		return cause
	}
	return err
}

// keepAlive refreshes the lease until ctx ends. A failed refresh cancels ctx
// with errLockLost since another runner may already hold the lock.
func keepAlive(ctx context.Context, cancel context.CancelCauseFunc, lease lock.Lease, job string, ttl time.Duration) {
	ticker := time.NewTicker(ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := lease.Refresh(ctx, ttl); err != nil {
				if ctx.Err() != nil {
					return
				}
				zap.L().Error("can't refresh job lock", zap.String("job", job), zap.Error(err))
				cancel(fmt.Errorf("%s: %w: %v", job, errLockLost, err))
				return
			}
		}
	}
}

func (r *Runner) Reconcile(ctx context.Context) (*ReconcileReport, error) {
	var report *ReconcileReport
	err := r.guard(ctx, reconcileJob, r.reconcileTTL, func(ctx context.Context) (err error) {
		report, err = r.reconciler.Run(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (r *Runner) ResetQuotas(ctx context.Context) (int64, error) {
	var n int64
	err := r.guard(ctx, quotaResetJob, r.quotaResetTTL, func(ctx context.Context) (err error) {
		n, err = r.resetter.Run(ctx)
		return err
	})
	return n, err
}

// Start schedules the quota reset with a standard five-field cron spec.
func (r *Runner) Start(schedule string) error {
	_, err := r.cron.AddFunc(schedule, func() {
		if _, err := r.ResetQuotas(context.Background()); err != nil {
			zap.L().Error("scheduled quota reset failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid quota reset schedule %q: %w", schedule, err)
	}
	r.cron.Start()
	zap.L().Info("job scheduler started", zap.String("quotaReset", schedule))
	return nil
}

// Stop halts the scheduler and waits for a running job to finish or ctx to
// expire.
func (r *Runner) Stop(ctx context.Context) {
	select {
	case <-r.cron.Stop().Done():
	case <-ctx.Done():
		zap.L().Warn("scheduler stop timed out", zap.Error(ctx.Err()))
	}
}
