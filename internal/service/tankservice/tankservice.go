package tankservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/internal/pg"
)

//go:generate mockgen -source=tankservice.go -destination=mock_tankservice.go -package=tankservice

type Repo interface {
	Create(ctx context.Context, tank *domain.Tank) error
	FindByID(ctx context.Context, id string) (*domain.Tank, error)
	LockByID(ctx context.Context, id string) (*domain.Tank, error)
	List(ctx context.Context) ([]domain.Tank, error)
	Update(ctx context.Context, tank *domain.Tank) error
	Ledger(ctx context.Context, id string) (*domain.TankLedger, error)
}

type FuelRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Fuel, error)
}

type Service struct {
	repo      Repo
	fuels     FuelRepo
	txManager pg.TXManager
}

func New(repo Repo, fuels FuelRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		fuels:     fuels,
		txManager: txManager,
	}
}

func validate(tank *domain.Tank) error {
	switch {
	case tank.Name == "":
		return fmt.Errorf("name is required: %w", domain.ErrValidation)
	case tank.FuelID == "":
		return fmt.Errorf("fuelId is required: %w", domain.ErrValidation)
	case !tank.Capacity.IsPositive():
		return fmt.Errorf("capacity must be greater than zero: %w", domain.ErrValidation)
	}
	return domain.CheckLitres("capacity", tank.Capacity)
}

// validateLevel bounds a level set by hand. Workflows may leave a tank
// outside these bounds, so it is not rechecked on edits that keep the level.
func validateLevel(tank *domain.Tank) error {
	switch {
	case tank.CurrentLevel.IsNegative():
		return fmt.Errorf("current level cannot be negative: %w", domain.ErrValidation)
	case tank.CurrentLevel.GreaterThan(tank.Capacity):
		return fmt.Errorf("current level %s exceeds capacity %s: %w", tank.CurrentLevel, tank.Capacity, domain.ErrValidation)
	}
	return domain.CheckLitres("currentLevel", tank.CurrentLevel)
}

func (s *Service) Create(ctx context.Context, name, fuelID string, capacity, level decimal.Decimal) (*domain.Tank, error) {
	now := time.Now()
	tank := &domain.Tank{
		ID:           uuid.NewString(),
		Name:         name,
		FuelID:       fuelID,
		Capacity:     capacity,
		CurrentLevel: level,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := validate(tank); err != nil {
		return nil, err
	}
	if err := validateLevel(tank); err != nil {
		return nil, err
	}
	if _, err := s.fuels.FindByID(ctx, fuelID); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, tank); err != nil {
		zap.L().Error("can't create tank", zap.Error(err))
		return nil, err
	}
	return tank, nil
}

// Update rewrites the tank's descriptive fields and, when level is set, its
// stored level. The row is locked so the edit cannot interleave with a
// running workflow.
func (s *Service) Update(ctx context.Context, id, name, fuelID string, capacity decimal.Decimal, level *decimal.Decimal) (*domain.Tank, error) {
	var updated *domain.Tank
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		tank, err := s.repo.LockByID(ctx, id)
		if err != nil {
			return err
		}
		if fuelID != tank.FuelID {
			if _, err := s.fuels.FindByID(ctx, fuelID); err != nil {
				return err
			}
		}
		tank.Name = name
		tank.FuelID = fuelID
		tank.Capacity = capacity
		tank.UpdatedAt = time.Now()
		if err := validate(tank); err != nil {
			return err
		}
		if level != nil {
			tank.CurrentLevel = *level
			if err := validateLevel(tank); err != nil {
				return err
			}
		}
		if err := s.repo.Update(ctx, tank); err != nil {
			return err
		}
		updated = tank
		return nil
	})
	if err != nil {
		zap.L().Error("can't update tank", zap.String("tank", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Tank, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Tank, error) {
	tanks, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to get tanks", zap.Error(err))
		return nil, err
	}
	return tanks, nil
}

// Ledger compares the stored level with the level folded from the tank's
// order and transaction history.
func (s *Service) Ledger(ctx context.Context, id string) (*domain.TankLedger, error) {
	ledger, err := s.repo.Ledger(ctx, id)
	if err != nil {
		zap.L().Error("failed to fold tank ledger", zap.String("tank", id), zap.Error(err))
		return nil, err
	}
	return ledger, nil
}
