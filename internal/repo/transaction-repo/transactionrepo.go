package transactionrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/internal/pg"
)

const columns = `id, tank_id, employee_id, car_id, amount, status, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var tr domain.Transaction
	err := row.Scan(&tr.ID, &tr.TankID, &tr.EmployeeID, &tr.CarID, &tr.Amount, &tr.Status, &tr.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &tr, nil
}

func (r *Repository) collect(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()
	var transactions []domain.Transaction
	for rows.Next() {
		tr, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *tr)
	}
	return transactions, rows.Err()
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `SELECT ` + columns + ` FROM transactions WHERE id = $1`
	tr, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return tr, nil
}

func (r *Repository) LockByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `SELECT ` + columns + ` FROM transactions WHERE id = $1 FOR UPDATE`
	tr, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		zap.L().Error("can't lock transaction", zap.Error(err))
		return nil, err
	}
	return tr, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + columns + ` FROM transactions ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

// ListDetailsByStatus joins each transaction with its tank, employee, car and
// the car's fuel.
func (r *Repository) ListDetailsByStatus(ctx context.Context, status domain.TransactionStatus) ([]domain.TransactionDetails, error) {
	query := `
		SELECT tr.id, tr.tank_id, tr.employee_id, tr.car_id, tr.amount, tr.status, tr.created_at,
			t.name, t.fuel_id, t.capacity, t.current_level, t.created_at, t.updated_at,
			e.name, e.phone, e.email, e.team, e.major, e.quota, e.initial_quota, e.start_date, e.created_at, e.updated_at,
			c.employee_id, c.car_model, c.plate, c.fuel_id, c.is_eaa_car, c.created_at,
			f.name, f.price, f.created_at, f.updated_at
		FROM transactions tr
		JOIN tanks t ON t.id = tr.tank_id
		JOIN employees e ON e.id = tr.employee_id
		JOIN cars c ON c.id = tr.car_id
		JOIN fuels f ON f.id = c.fuel_id
		WHERE tr.status = $1
		ORDER BY tr.created_at ASC
	`
	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		zap.L().Error("can't get transaction details", zap.String("status", string(status)), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var details []domain.TransactionDetails
	for rows.Next() {
		var d domain.TransactionDetails
		err := rows.Scan(
			&d.ID, &d.TankID, &d.EmployeeID, &d.CarID, &d.Amount, &d.Status, &d.CreatedAt,
			&d.Tank.Name, &d.Tank.FuelID, &d.Tank.Capacity, &d.Tank.CurrentLevel, &d.Tank.CreatedAt, &d.Tank.UpdatedAt,
			&d.Employee.Name, &d.Employee.Phone, &d.Employee.Email, &d.Employee.Team, &d.Employee.Major,
			&d.Employee.Quota, &d.Employee.InitialQuota, &d.Employee.StartDate, &d.Employee.CreatedAt, &d.Employee.UpdatedAt,
			&d.Car.EmployeeID, &d.Car.CarModel, &d.Car.Plate, &d.Car.FuelID, &d.Car.IsEaaCar, &d.Car.CreatedAt,
			&d.CarFuel.Name, &d.CarFuel.Price, &d.CarFuel.CreatedAt, &d.CarFuel.UpdatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan transaction details row", zap.Error(err))
			return nil, err
		}
		d.Tank.ID = d.TankID
		d.Employee.ID = d.EmployeeID
		d.Car.ID = d.CarID
		d.CarFuel.ID = d.Car.FuelID
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *Repository) CountByStatus(ctx context.Context, status domain.TransactionStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE status = $1`, string(status)).Scan(&count)
	if err != nil {
		zap.L().Error("can't count transactions", zap.String("status", string(status)), zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) Create(ctx context.Context, tr *domain.Transaction) error {
	query := `
        INSERT INTO transactions (id, tank_id, employee_id, car_id, amount, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(ctx, query, tr.ID, tr.TankID, tr.EmployeeID, tr.CarID, tr.Amount, string(tr.Status), tr.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, tr *domain.Transaction) error {
	query := `
        UPDATE transactions
        SET tank_id = $1, employee_id = $2, car_id = $3, amount = $4, status = $5
        WHERE id = $6
    `
	tag, err := r.db.Exec(ctx, query, tr.TankID, tr.EmployeeID, tr.CarID, tr.Amount, string(tr.Status), tr.ID)
	if err != nil {
		zap.L().Error("failed to update transaction", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s: %w", tr.ID, domain.ErrConflict)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("failed to delete transaction", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s: %w", id, domain.ErrConflict)
	}
	return nil
}
