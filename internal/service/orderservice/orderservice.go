package orderservice

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

//go:generate mockgen -source=orderservice.go -destination=mock_orderservice.go -package=orderservice

type Repo interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	LockByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id string) error
}

type TankRepo interface {
	LockByID(ctx context.Context, id string) (*domain.Tank, error)
	AdjustLevel(ctx context.Context, id string, delta decimal.Decimal) (*domain.Tank, error)
}

type FuelRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Fuel, error)
}

type Service struct {
	repo      Repo
	tanks     TankRepo
	fuels     FuelRepo
	txManager pg.TXManager
	policies  domain.Policies
}

func New(repo Repo, tanks TankRepo, fuels FuelRepo, txManager pg.TXManager, policies domain.Policies) *Service {
	return &Service{
		repo:      repo,
		tanks:     tanks,
		fuels:     fuels,
		txManager: txManager,
		policies:  policies,
	}
}

const workflow = "order"

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be greater than zero: %w", domain.ErrValidation)
	}
	return domain.CheckLitres("amount", amount)
}

// lockTanks locks the given tanks in id order and returns them keyed by id.
func (s *Service) lockTanks(ctx context.Context, ids ...string) (map[string]*domain.Tank, error) {
	locked := make(map[string]*domain.Tank, len(ids))
	for _, id := range domain.LockOrder(ids...) {
		tank, err := s.tanks.LockByID(ctx, id)
		if err != nil {
			return nil, err
		}
		locked[id] = tank
	}
	return locked, nil
}

// checkLevel applies the capacity and fuel policies to a tank that is about
// to move by delta.
func (s *Service) checkLevel(tank *domain.Tank, delta decimal.Decimal, override bool) error {
	next := tank.CurrentLevel.Add(delta)
	if delta.IsPositive() {
		if err := s.policies.Capacity.Enforce(next.GreaterThan(tank.Capacity), override, domain.ErrCapacityExceeded); err != nil {
			return fmt.Errorf("tank %s would hold %s of %s: %w", tank.ID, next, tank.Capacity, err)
		}
	}
	if delta.IsNegative() {
		if err := s.policies.Fuel.Enforce(next.IsNegative(), override, domain.ErrInsufficientFuel); err != nil {
			return fmt.Errorf("tank %s would drop to %s: %w", tank.ID, next, err)
		}
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in domain.NewOrder) (order *domain.Order, err error) {
	defer func(start time.Time) { metrics.ObserveWorkflow(workflow, "create", start, err) }(time.Now())

	if in.TankID == "" {
		return nil, fmt.Errorf("tankId is required: %w", domain.ErrValidation)
	}
	if err := validateAmount(in.Amount); err != nil {
		return nil, err
	}

	order = &domain.Order{
		ID:        uuid.NewString(),
		Number:    in.Number,
		TankID:    in.TankID,
		FuelID:    in.FuelID,
		Amount:    in.Amount,
		CreatedAt: time.Now(),
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		tank, err := s.tanks.LockByID(ctx, order.TankID)
		if err != nil {
			return err
		}
		if order.FuelID == "" {
			order.FuelID = tank.FuelID
		} else if _, err := s.fuels.FindByID(ctx, order.FuelID); err != nil {
			return err
		}
		if err := s.checkLevel(tank, order.Amount, in.Override); err != nil {
			return err
		}
		if err := s.repo.Create(ctx, order); err != nil {
			return err
		}
		_, err = s.tanks.AdjustLevel(ctx, tank.ID, order.Amount)
		return err
	})
	if err != nil {
		zap.L().Error("can't create order", zap.String("tank", in.TankID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("order created", zap.String("order", order.ID), zap.String("tank", order.TankID), zap.Stringer("amount", order.Amount))
	return order, nil
}

// Update rewrites the order and moves the tank level by the amount delta.
// When the tank changes, the delta stays on the original tank unless the
// move policy is enabled, in which case the old amount leaves the old tank
// and the new amount lands on the new one.
func (s *Service) Update(ctx context.Context, id string, patch domain.OrderPatch) (updated *domain.Order, err error) {
	defer func(start time.Time) { metrics.ObserveWorkflow(workflow, "update", start, err) }(time.Now())

	if patch.Amount != nil {
		if err := validateAmount(*patch.Amount); err != nil {
			return nil, err
		}
	}
	if patch.TankID != nil && *patch.TankID == "" {
		return nil, fmt.Errorf("tankId cannot be empty: %w", domain.ErrValidation)
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		old, err := s.repo.LockByID(ctx, id)
		if err != nil {
			return err
		}
		next := patch.Apply(*old)
		if next.FuelID != old.FuelID {
			if _, err := s.fuels.FindByID(ctx, next.FuelID); err != nil {
				return err
			}
		}

		tanks, err := s.lockTanks(ctx, old.TankID, next.TankID)
		if err != nil {
			return err
		}

		if next.TankID != old.TankID && s.policies.MoveOrderDelta {
			if err := s.checkLevel(tanks[old.TankID], old.Amount.Neg(), patch.Override); err != nil {
				return err
			}
			if err := s.checkLevel(tanks[next.TankID], next.Amount, patch.Override); err != nil {
				return err
			}
			if _, err := s.tanks.AdjustLevel(ctx, old.TankID, old.Amount.Neg()); err != nil {
				return err
			}
			if _, err := s.tanks.AdjustLevel(ctx, next.TankID, next.Amount); err != nil {
				return err
			}
		} else {
			if next.TankID != old.TankID {
				zap.L().Warn("order moved to another tank, delta kept on original tank",
					zap.String("order", id), zap.String("from", old.TankID), zap.String("to", next.TankID))
			}
			delta := next.Amount.Sub(old.Amount)
			if !delta.IsZero() {
				if err := s.checkLevel(tanks[old.TankID], delta, patch.Override); err != nil {
					return err
				}
				if _, err := s.tanks.AdjustLevel(ctx, old.TankID, delta); err != nil {
					return err
				}
			}
		}

		if err := s.repo.Update(ctx, &next); err != nil {
			return err
		}
		updated = &next
		return nil
	})
	if err != nil {
		zap.L().Error("can't update order", zap.String("order", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string, override bool) (err error) {
	defer func(start time.Time) { metrics.ObserveWorkflow(workflow, "delete", start, err) }(time.Now())

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.repo.LockByID(ctx, id)
		if err != nil {
			return err
		}
		tank, err := s.tanks.LockByID(ctx, order.TankID)
		if err != nil {
			return err
		}
		if err := s.checkLevel(tank, order.Amount.Neg(), override); err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			return err
		}
		_, err = s.tanks.AdjustLevel(ctx, order.TankID, order.Amount.Neg())
		return err
	})
	if err != nil {
		zap.L().Error("can't delete order", zap.String("order", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get order", zap.String("order", id), zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}
