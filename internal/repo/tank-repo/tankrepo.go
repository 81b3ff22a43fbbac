package tankrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/internal/pg"
)

const columns = `id, name, fuel_id, capacity, current_level, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanTank(row pgx.Row) (*domain.Tank, error) {
	var tank domain.Tank
	err := row.Scan(&tank.ID, &tank.Name, &tank.FuelID, &tank.Capacity, &tank.CurrentLevel, &tank.CreatedAt, &tank.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &tank, nil
}

func (r *Repository) Create(ctx context.Context, tank *domain.Tank) error {
	query := `
        INSERT INTO tanks (id, name, fuel_id, capacity, current_level, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(ctx, query, tank.ID, tank.Name, tank.FuelID, tank.Capacity, tank.CurrentLevel, tank.CreatedAt, tank.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save tank", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Tank, error) {
	query := `SELECT ` + columns + ` FROM tanks WHERE id = $1`
	tank, err := scanTank(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("tank %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		zap.L().Error("can't find tank", zap.Error(err))
		return nil, err
	}
	return tank, nil
}

// LockByID reads the tank and holds its row lock until the surrounding
// transaction ends.
func (r *Repository) LockByID(ctx context.Context, id string) (*domain.Tank, error) {
	query := `SELECT ` + columns + ` FROM tanks WHERE id = $1 FOR UPDATE`
	tank, err := scanTank(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("tank %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		zap.L().Error("can't lock tank", zap.Error(err))
		return nil, err
	}
	return tank, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Tank, error) {
	query := `SELECT ` + columns + ` FROM tanks ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get tanks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tanks []domain.Tank
	for rows.Next() {
		tank, err := scanTank(rows)
		if err != nil {
			zap.L().Error("can't scan tank row", zap.Error(err))
			return nil, err
		}
		tanks = append(tanks, *tank)
	}
	return tanks, rows.Err()
}

func (r *Repository) Update(ctx context.Context, tank *domain.Tank) error {
	query := `
        UPDATE tanks
        SET name = $1, fuel_id = $2, capacity = $3, current_level = $4, updated_at = $5
        WHERE id = $6
    `
	tag, err := r.db.Exec(ctx, query, tank.Name, tank.FuelID, tank.Capacity, tank.CurrentLevel, tank.UpdatedAt, tank.ID)
	if err != nil {
		zap.L().Error("failed to update tank", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tank %s: %w", tank.ID, domain.ErrNotFound)
	}
	return nil
}

// AdjustLevel adds delta (negative to withdraw) to the tank's level. A
// missing row means the tank vanished inside the atomic group.
func (r *Repository) AdjustLevel(ctx context.Context, id string, delta decimal.Decimal) (*domain.Tank, error) {
	query := `
        UPDATE tanks
        SET current_level = current_level + $1, updated_at = now()
        WHERE id = $2
        RETURNING ` + columns
	tank, err := scanTank(r.db.QueryRow(ctx, query, delta, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("tank %s: %w", id, domain.ErrConflict)
	}
	if err != nil {
		zap.L().Error("failed to adjust tank level", zap.Error(err))
		return nil, err
	}
	return tank, nil
}

func (r *Repository) SetLevel(ctx context.Context, id string, level decimal.Decimal) error {
	query := `UPDATE tanks SET current_level = $1, updated_at = now() WHERE id = $2`
	tag, err := r.db.Exec(ctx, query, level, id)
	if err != nil {
		zap.L().Error("failed to set tank level", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tank %s: %w", id, domain.ErrConflict)
	}
	return nil
}

// Ledger folds the tank's full order and transaction history.
func (r *Repository) Ledger(ctx context.Context, id string) (*domain.TankLedger, error) {
	query := `
        SELECT t.current_level,
               COALESCE((SELECT SUM(o.amount) FROM orders o WHERE o.tank_id = t.id), 0),
               COALESCE((SELECT SUM(tr.amount) FROM transactions tr WHERE tr.tank_id = t.id), 0)
        FROM tanks t
        WHERE t.id = $1
    `
	ledger := domain.TankLedger{TankID: id}
	err := r.db.QueryRow(ctx, query, id).Scan(&ledger.Stored, &ledger.OrdersTotal, &ledger.DispensedSum)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("tank %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		zap.L().Error("can't fold tank ledger", zap.Error(err))
		return nil, err
	}
	return &ledger, nil
}
