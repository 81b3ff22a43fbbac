package transactionservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/internal/pg"
	"github.com/GlebRadaev/fuelfleet/pkg/metrics"
)

//go:generate mockgen -source=transactionservice.go -destination=mock_transactionservice.go -package=transactionservice

type Repo interface {
	Create(ctx context.Context, tr *domain.Transaction) error
	FindByID(ctx context.Context, id string) (*domain.Transaction, error)
	LockByID(ctx context.Context, id string) (*domain.Transaction, error)
	List(ctx context.Context) ([]domain.Transaction, error)
	ListDetailsByStatus(ctx context.Context, status domain.TransactionStatus) ([]domain.TransactionDetails, error)
	CountByStatus(ctx context.Context, status domain.TransactionStatus) (int64, error)
	Update(ctx context.Context, tr *domain.Transaction) error
	Delete(ctx context.Context, id string) error
}

type TankRepo interface {
	LockByID(ctx context.Context, id string) (*domain.Tank, error)
	AdjustLevel(ctx context.Context, id string, delta decimal.Decimal) (*domain.Tank, error)
}

type EmployeeRepo interface {
	LockByID(ctx context.Context, id string) (*domain.Employee, error)
	AdjustQuota(ctx context.Context, id string, delta decimal.Decimal) (*domain.Employee, error)
}

type CarRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Car, error)
}

type Service struct {
	repo      Repo
	tanks     TankRepo
	employees EmployeeRepo
	cars      CarRepo
	txManager pg.TXManager
	policies  domain.Policies
}

func New(repo Repo, tanks TankRepo, employees EmployeeRepo, cars CarRepo, txManager pg.TXManager, policies domain.Policies) *Service {
	return &Service{
		repo:      repo,
		tanks:     tanks,
		employees: employees,
		cars:      cars,
		txManager: txManager,
		policies:  policies,
	}
}

const workflow = "transaction"

func validate(tr domain.Transaction) error {
	switch {
	case tr.TankID == "":
		return fmt.Errorf("tankId is required: %w", domain.ErrValidation)
	case tr.EmployeeID == "":
		return fmt.Errorf("employeeId is required: %w", domain.ErrValidation)
	case tr.CarID == "":
		return fmt.Errorf("carId is required: %w", domain.ErrValidation)
	case !tr.Amount.IsPositive():
		return fmt.Errorf("amount must be greater than zero: %w", domain.ErrValidation)
	case !tr.Status.Valid():
		return fmt.Errorf("unknown status %q: %w", tr.Status, domain.ErrValidation)
	}
	return domain.CheckLitres("amount", tr.Amount)
}

// balances is the locked state of every tank and employee one workflow call
// touches.
type balances struct {
	tanks     map[string]*domain.Tank
	employees map[string]*domain.Employee
}

// lock takes row locks on the tanks first, then the employees, each in id
// order, so two workflows sharing rows always queue in the same sequence.
func (s *Service) lock(ctx context.Context, tankIDs, employeeIDs []string) (*balances, error) {
	b := &balances{
		tanks:     make(map[string]*domain.Tank),
		employees: make(map[string]*domain.Employee),
	}
	for _, id := range domain.LockOrder(tankIDs...) {
		tank, err := s.tanks.LockByID(ctx, id)
		if err != nil {
			return nil, err
		}
		b.tanks[id] = tank
	}
	for _, id := range domain.LockOrder(employeeIDs...) {
		e, err := s.employees.LockByID(ctx, id)
		if err != nil {
			return nil, err
		}
		b.employees[id] = e
	}
	return b, nil
}

// check applies the fuel and quota policies to the balances a transaction
// would draw from.
func (s *Service) check(tr domain.Transaction, fuel, quota decimal.Decimal, override bool) error {
	if err := s.policies.Fuel.Enforce(tr.Amount.GreaterThan(fuel), override, domain.ErrInsufficientFuel); err != nil {
		return fmt.Errorf("tank %s holds %s, requested %s: %w", tr.TankID, fuel, tr.Amount, err)
	}
	if err := s.policies.Quota.Enforce(tr.Amount.GreaterThan(quota), override, domain.ErrQuotaExceeded); err != nil {
		return fmt.Errorf("employee %s has %s left, requested %s: %w", tr.EmployeeID, quota, tr.Amount, err)
	}
	return nil
}

// apply moves the tank level and the employee quota by sign*amount.
func (s *Service) apply(ctx context.Context, tr domain.Transaction, sign int64) error {
	delta := tr.Amount.Mul(decimal.NewFromInt(sign))
	if _, err := s.tanks.AdjustLevel(ctx, tr.TankID, delta); err != nil {
		return err
	}
	_, err := s.employees.AdjustQuota(ctx, tr.EmployeeID, delta)
	return err
}

func (s *Service) Create(ctx context.Context, in domain.NewTransaction) (tr *domain.Transaction, err error) {
	defer func(start time.Time) { metrics.ObserveWorkflow(workflow, "create", start, err) }(time.Now())

	status := in.Status
	if status == "" {
		status = domain.StatusPending
	}
	tr = &domain.Transaction{
		ID:         uuid.NewString(),
		TankID:     in.TankID,
		EmployeeID: in.EmployeeID,
		CarID:      in.CarID,
		Amount:     in.Amount,
		Status:     status,
		CreatedAt:  time.Now(),
	}
	if err := validate(*tr); err != nil {
		return nil, err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.cars.FindByID(ctx, tr.CarID); err != nil {
			return err
		}
		b, err := s.lock(ctx, []string{tr.TankID}, []string{tr.EmployeeID})
		if err != nil {
			return err
		}
		if err := s.check(*tr, b.tanks[tr.TankID].CurrentLevel, b.employees[tr.EmployeeID].Quota, in.Override); err != nil {
			return err
		}
		if err := s.apply(ctx, *tr, -1); err != nil {
			return err
		}
		return s.repo.Create(ctx, tr)
	})
	if err != nil {
		zap.L().Error("can't create transaction", zap.String("tank", in.TankID), zap.String("employee", in.EmployeeID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("transaction created", zap.String("transaction", tr.ID), zap.Stringer("amount", tr.Amount))
	return tr, nil
}

// Update reverses the stored transaction's effect against its old tank and
// employee, applies the new effect against the new ones and rewrites the row,
// all in one atomic group.
func (s *Service) Update(ctx context.Context, id string, patch domain.TransactionPatch) (updated *domain.Transaction, err error) {
	defer func(start time.Time) { metrics.ObserveWorkflow(workflow, "update", start, err) }(time.Now())

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		old, err := s.repo.LockByID(ctx, id)
		if err != nil {
			return err
		}
		next := patch.Apply(*old)
		if err := validate(next); err != nil {
			return err
		}
		if next.CarID != old.CarID {
			if _, err := s.cars.FindByID(ctx, next.CarID); err != nil {
				return err
			}
		}

		b, err := s.lock(ctx, []string{old.TankID, next.TankID}, []string{old.EmployeeID, next.EmployeeID})
		if err != nil {
			return err
		}

		fuel := b.tanks[next.TankID].CurrentLevel
		if next.TankID == old.TankID {
			fuel = fuel.Add(old.Amount)
		}
		quota := b.employees[next.EmployeeID].Quota
		if next.EmployeeID == old.EmployeeID {
			quota = quota.Add(old.Amount)
		}
		if err := s.check(next, fuel, quota, patch.Override); err != nil {
			return err
		}

		if err := s.apply(ctx, *old, 1); err != nil {
			return err
		}
		if err := s.apply(ctx, next, -1); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, &next); err != nil {
			return err
		}
		updated = &next
		return nil
	})
	if err != nil {
		zap.L().Error("can't update transaction", zap.String("transaction", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) (err error) {
	defer func(start time.Time) { metrics.ObserveWorkflow(workflow, "delete", start, err) }(time.Now())

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		tr, err := s.repo.LockByID(ctx, id)
		if err != nil {
			return err
		}
		if _, err := s.lock(ctx, []string{tr.TankID}, []string{tr.EmployeeID}); err != nil {
			return err
		}
		if err := s.apply(ctx, *tr, 1); err != nil {
			return err
		}
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		zap.L().Error("can't delete transaction", zap.String("transaction", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	tr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get transaction", zap.String("transaction", id), zap.Error(err))
		return nil, err
	}
	return tr, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Transaction, error) {
	transactions, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to get transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

// ListPending returns pending transactions with the tank, employee and car
// each one references.
func (s *Service) ListPending(ctx context.Context) ([]domain.TransactionDetails, error) {
	transactions, err := s.repo.ListDetailsByStatus(ctx, domain.StatusPending)
	if err != nil {
		zap.L().Error("failed to get pending transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) CountPending(ctx context.Context) (int64, error) {
	count, err := s.repo.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		zap.L().Error("failed to count pending transactions", zap.Error(err))
		return 0, err
	}
	return count, nil
}
