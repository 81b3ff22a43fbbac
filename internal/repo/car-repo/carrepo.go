package carrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/internal/pg"
)

const columns = `id, employee_id, car_model, plate, fuel_id, is_eaa_car, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) query(ctx context.Context, query string, args ...any) ([]domain.Car, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get cars", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var car domain.Car
		if err := rows.Scan(&car.ID, &car.EmployeeID, &car.CarModel, &car.Plate, &car.FuelID, &car.IsEaaCar, &car.CreatedAt); err != nil {
			zap.L().Error("can't scan car row", zap.Error(err))
			return nil, err
		}
		cars = append(cars, car)
	}
	return cars, rows.Err()
}

func (r *Repository) Create(ctx context.Context, car *domain.Car) error {
	query := `
        INSERT INTO cars (id, employee_id, car_model, plate, fuel_id, is_eaa_car, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(ctx, query, car.ID, car.EmployeeID, car.CarModel, car.Plate, car.FuelID, car.IsEaaCar, car.CreatedAt)
	if err != nil {
		zap.L().Error("can't save car", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, car *domain.Car) error {
	query := `
        UPDATE cars SET employee_id = $1, car_model = $2, plate = $3, fuel_id = $4, is_eaa_car = $5
        WHERE id = $6
    `
	tag, err := r.db.Exec(ctx, query, car.EmployeeID, car.CarModel, car.Plate, car.FuelID, car.IsEaaCar, car.ID)
	if err != nil {
		zap.L().Error("failed to update car", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("car %s: %w", car.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Car, error) {
	var car domain.Car
	err := r.db.QueryRow(ctx, `SELECT `+columns+` FROM cars WHERE id = $1`, id).
		Scan(&car.ID, &car.EmployeeID, &car.CarModel, &car.Plate, &car.FuelID, &car.IsEaaCar, &car.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("car %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		zap.L().Error("can't find car", zap.Error(err))
		return nil, err
	}
	return &car, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Car, error) {
	return r.query(ctx, `SELECT `+columns+` FROM cars ORDER BY created_at ASC`)
}

func (r *Repository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Car, error) {
	return r.query(ctx, `SELECT `+columns+` FROM cars WHERE employee_id = $1 ORDER BY created_at ASC`, employeeID)
}

// ListEaa returns the cars owned by the organisation rather than an employee.
func (r *Repository) ListEaa(ctx context.Context) ([]domain.Car, error) {
	return r.query(ctx, `SELECT `+columns+` FROM cars WHERE is_eaa_car ORDER BY created_at ASC`)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if pg.IsReferenced(err) {
		return fmt.Errorf("car %s has transactions: %w", id, domain.ErrConflict)
	}
	if err != nil {
		zap.L().Error("failed to delete car", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("car %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
