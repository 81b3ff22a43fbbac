package employeeservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/internal/pg"
)

//go:generate mockgen -source=employeeservice.go -destination=mock_employeeservice.go -package=employeeservice

type Repo interface {
	Create(ctx context.Context, e *domain.Employee) error
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	LockByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id string) error
}

type CarRepo interface {
	List(ctx context.Context) ([]domain.Car, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Car, error)
}

type Service struct {
	repo      Repo
	cars      CarRepo
	txManager pg.TXManager
}

func New(repo Repo, cars CarRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		cars:      cars,
		txManager: txManager,
	}
}

func validate(e *domain.Employee) error {
	if e.Name == "" {
		return fmt.Errorf("name is required: %w", domain.ErrValidation)
	}
	if e.InitialQuota.IsNegative() {
		return fmt.Errorf("initial quota cannot be negative: %w", domain.ErrValidation)
	}
	if err := domain.CheckLitres("initialQuota", e.InitialQuota); err != nil {
		return err
	}
	return domain.CheckLitres("quota", e.Quota)
}

// Create stores a new employee. A nil quota starts the employee at the
// initial quota.
func (s *Service) Create(ctx context.Context, in domain.Employee, quota *decimal.Decimal) (*domain.Employee, error) {
	now := time.Now()
	e := in
	e.ID = uuid.NewString()
	e.Quota = in.InitialQuota
	if quota != nil {
		e.Quota = *quota
	}
	e.CreatedAt = now
	e.UpdatedAt = now
	e.Cars = nil
	if err := validate(&e); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &e); err != nil {
		zap.L().Error("can't create employee", zap.Error(err))
		return nil, err
	}
	return &e, nil
}

// Update rewrites the employee profile. The remaining quota only changes when
// quota is set; otherwise the row keeps what transactions left it with.
func (s *Service) Update(ctx context.Context, id string, in domain.Employee, quota *decimal.Decimal) (*domain.Employee, error) {
	var updated *domain.Employee
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		e, err := s.repo.LockByID(ctx, id)
		if err != nil {
			return err
		}
		e.Name = in.Name
		e.Phone = in.Phone
		e.Email = in.Email
		e.Team = in.Team
		e.Major = in.Major
		e.InitialQuota = in.InitialQuota
		e.StartDate = in.StartDate
		if quota != nil {
			e.Quota = *quota
		}
		e.UpdatedAt = time.Now()
		if err := validate(e); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, e); err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		zap.L().Error("can't update employee", zap.String("employee", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Employee, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cars, err := s.cars.ListByEmployee(ctx, id)
	if err != nil {
		zap.L().Error("failed to get employee cars", zap.String("employee", id), zap.Error(err))
		return nil, err
	}
	e.Cars = cars
	return e, nil
}

// List returns every employee with their cars attached.
func (s *Service) List(ctx context.Context) ([]domain.Employee, error) {
	var (
		employees []domain.Employee
		cars      []domain.Car
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		employees, err = s.repo.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		cars, err = s.cars.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to get employees", zap.Error(err))
		return nil, err
	}

	byEmployee := make(map[string][]domain.Car)
	for _, car := range cars {
		if car.EmployeeID != nil {
			byEmployee[*car.EmployeeID] = append(byEmployee[*car.EmployeeID], car)
		}
	}
	for i := range employees {
		employees[i].Cars = byEmployee[employees[i].ID]
	}
	return employees, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete employee", zap.String("employee", id), zap.Error(err))
		return err
	}
	return nil
}
