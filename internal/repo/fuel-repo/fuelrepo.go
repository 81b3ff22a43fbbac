package fuelrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, fuel *domain.Fuel) error {
	query := `
        INSERT INTO fuels (id, name, price, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, fuel.ID, fuel.Name, fuel.Price, fuel.CreatedAt, fuel.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save fuel", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Fuel, error) {
	var fuel domain.Fuel
	err := r.db.QueryRow(ctx, `SELECT id, name, price, created_at, updated_at FROM fuels WHERE id = $1`, id).
		Scan(&fuel.ID, &fuel.Name, &fuel.Price, &fuel.CreatedAt, &fuel.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("fuel %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		zap.L().Error("can't find fuel", zap.Error(err))
		return nil, err
	}
	return &fuel, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Fuel, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, price, created_at, updated_at FROM fuels ORDER BY created_at ASC`)
	if err != nil {
		zap.L().Error("can't get fuels", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var fuels []domain.Fuel
	for rows.Next() {
		var fuel domain.Fuel
		if err := rows.Scan(&fuel.ID, &fuel.Name, &fuel.Price, &fuel.CreatedAt, &fuel.UpdatedAt); err != nil {
			zap.L().Error("can't scan fuel row", zap.Error(err))
			return nil, err
		}
		fuels = append(fuels, fuel)
	}
	return fuels, rows.Err()
}

func (r *Repository) Update(ctx context.Context, fuel *domain.Fuel) error {
	tag, err := r.db.Exec(ctx, `UPDATE fuels SET name = $1, price = $2, updated_at = $3 WHERE id = $4`,
		fuel.Name, fuel.Price, fuel.UpdatedAt, fuel.ID)
	if err != nil {
		zap.L().Error("failed to update fuel", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("fuel %s: %w", fuel.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM fuels WHERE id = $1`, id)
	if pg.IsReferenced(err) {
		return fmt.Errorf("fuel %s is used by tanks, cars or orders: %w", id, domain.ErrConflict)
	}
	if err != nil {
		zap.L().Error("failed to delete fuel", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("fuel %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
