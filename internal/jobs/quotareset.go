package jobs

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/fuelfleet/pkg/metrics"
)

//go:generate mockgen -source=quotareset.go -destination=mock_quotareset.go -package=jobs

const quotaResetJob = "quota_reset"

type EmployeeRepo interface {
	ResetQuotas(ctx context.Context) (int64, error)
}

// QuotaResetter sets every employee's remaining quota back to the initial
// allowance in one statement. Running it twice is the same as running it once.
type QuotaResetter struct {
	employees EmployeeRepo
}

func NewQuotaResetter(employees EmployeeRepo) *QuotaResetter {
	return &QuotaResetter{employees: employees}
}

func (q *QuotaResetter) Run(ctx context.Context) (n int64, err error) {
	defer func() { metrics.JobRun(quotaResetJob, err) }()

	n, err = q.employees.ResetQuotas(ctx)
	if err != nil {
		zap.L().Error("failed to reset quotas", zap.Error(err))
		return 0, err
	}
	zap.L().Info("employee quotas reset", zap.Int64("employees", n))
	return n, nil
}
