package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/internal/pg"
	"github.com/GlebRadaev/fuelfleet/pkg/metrics"
)

//go:generate mockgen -source=reconcile.go -destination=mock_reconcile.go -package=jobs

const reconcileJob = "reconcile"

type TankRepo interface {
	List(ctx context.Context) ([]domain.Tank, error)
	LockByID(ctx context.Context, id string) (*domain.Tank, error)
	Ledger(ctx context.Context, id string) (*domain.TankLedger, error)
	SetLevel(ctx context.Context, id string, level decimal.Decimal) error
}

type TankResult struct {
	TankID   string          `json:"tankId"`
	Previous decimal.Decimal `json:"previous"`
	Level    decimal.Decimal `json:"level"`
	Error    string          `json:"error,omitempty"`
}

// Changed reports whether the run rewrote the stored level.
func (r TankResult) Changed() bool {
	return r.Error == "" && !r.Previous.Equal(r.Level)
}

type ReconcileReport struct {
	StartedAt time.Time    `json:"startedAt"`
	Duration  string       `json:"duration"`
	Tanks     int          `json:"tanks"`
	Corrected int          `json:"corrected"`
	Failed    int          `json:"failed"`
	Results   []TankResult `json:"results"`
}

// Reconciler rebuilds every tank's stored level from its order and
// transaction history. Tanks are independent: each one is folded and written
// in its own transaction and a failure on one tank does not stop the others.
type Reconciler struct {
	tanks     TankRepo
	txManager pg.TXManager
	workers   int
}

func NewReconciler(tanks TankRepo, txManager pg.TXManager, workers int) *Reconciler {
	return &Reconciler{
		tanks:     tanks,
		txManager: txManager,
		workers:   workers,
	}
}

func (r *Reconciler) Run(ctx context.Context) (report *ReconcileReport, err error) {
	defer func() { metrics.JobRun(reconcileJob, err) }()

	start := time.Now()
	tanks, err := r.tanks.List(ctx)
	if err != nil {
		zap.L().Error("failed to list tanks for reconciliation", zap.Error(err))
		return nil, err
	}

	results := make([]TankResult, len(tanks))
	wp := NewWorkerPool(r.workers)
	defer wp.Close()

	var mu sync.Mutex
	for i, tank := range tanks {
		i, id := i, tank.ID
		err := wp.AddTask(ctx, func() {
			res := r.reconcileTank(ctx, id)
			mu.Lock()
			results[i] = res
			mu.Unlock()
		})
		if err != nil {
			results[i] = TankResult{TankID: id, Error: err.Error()}
			metrics.JobItem(reconcileJob, err)
		}
	}
	wp.Wait()

	report = &ReconcileReport{
		StartedAt: start,
		Tanks:     len(tanks),
		Results:   results,
	}
	for _, res := range results {
		switch {
		case res.Error != "":
			report.Failed++
		case res.Changed():
			report.Corrected++
		}
	}
	report.Duration = time.Since(start).String()
	zap.L().Info("reconciliation finished",
		zap.Int("tanks", report.Tanks),
		zap.Int("corrected", report.Corrected),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

func (r *Reconciler) reconcileTank(ctx context.Context, id string) TankResult {
	res := TankResult{TankID: id}
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.tanks.LockByID(ctx, id); err != nil {
			return err
		}
		ledger, err := r.tanks.Ledger(ctx, id)
		if err != nil {
			return err
		}
		res.Previous = ledger.Stored
		res.Level = ledger.Derived()
		if ledger.Drift().IsZero() {
			return nil
		}
		return r.tanks.SetLevel(ctx, id, res.Level)
	})
	metrics.JobItem(reconcileJob, err)
	if err != nil {
		zap.L().Error("failed to reconcile tank", zap.String("tank", id), zap.Error(err))
		res.Error = err.Error()
		return res
	}
	drift, _ := res.Previous.Sub(res.Level).Float64()
	metrics.SetTankDrift(id, drift)
	if res.Changed() {
		zap.L().Warn("tank level corrected",
			zap.String("tank", id),
			zap.Stringer("stored", res.Previous),
			zap.Stringer("derived", res.Level),
			zap.Float64("drift", drift),
		)
	}
	return res
}
