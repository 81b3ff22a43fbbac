package employeerepo

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

const columns = `id, name, phone, email, team, major, quota, initial_quota, start_date, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Phone, &e.Email, &e.Team, &e.Major, &e.Quota, &e.InitialQuota, &e.StartDate, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Create(ctx context.Context, e *domain.Employee) error {
	query := `
        INSERT INTO employees (id, name, phone, email, team, major, quota, initial_quota, start_date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	_, err := r.db.Exec(ctx, query, e.ID, e.Name, e.Phone, e.Email, e.Team, e.Major, e.Quota, e.InitialQuota, e.StartDate, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save employee", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	query := `SELECT ` + columns + ` FROM employees WHERE id = $1`
	e, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("employee %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		zap.L().Error("can't find employee", zap.Error(err))
		return nil, err
	}
	return e, nil
}

func (r *Repository) LockByID(ctx context.Context, id string) (*domain.Employee, error) {
	query := `SELECT ` + columns + ` FROM employees WHERE id = $1 FOR UPDATE`
	e, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("employee %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		zap.L().Error("can't lock employee", zap.Error(err))
		return nil, err
	}
	return e, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT ` + columns + ` FROM employees ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get employees", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			zap.L().Error("can't scan employee row", zap.Error(err))
			return nil, err
		}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}

func (r *Repository) Update(ctx context.Context, e *domain.Employee) error {
	query := `
        UPDATE employees
        SET name = $1, phone = $2, email = $3, team = $4, major = $5,
            quota = $6, initial_quota = $7, start_date = $8, updated_at = $9
        WHERE id = $10
    `
	tag, err := r.db.Exec(ctx, query, e.Name, e.Phone, e.Email, e.Team, e.Major, e.Quota, e.InitialQuota, e.StartDate, e.UpdatedAt, e.ID)
	if err != nil {
		zap.L().Error("failed to update employee", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("employee %s: %w", e.ID, domain.ErrNotFound)
	}
	return nil
}

// AdjustQuota adds delta (negative to charge) to the employee's quota.
func (r *Repository) AdjustQuota(ctx context.Context, id string, delta decimal.Decimal) (*domain.Employee, error) {
	query := `
        UPDATE employees
        SET quota = quota + $1, updated_at = now()
        WHERE id = $2
        RETURNING ` + columns
	e, err := scanEmployee(r.db.QueryRow(ctx, query, delta, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("employee %s: %w", id, domain.ErrConflict)
	}
	if err != nil {
		zap.L().Error("failed to adjust employee quota", zap.Error(err))
		return nil, err
	}
	return e, nil
}

// ResetQuotas restores every employee's quota to its initial value in one
// statement and reports how many rows changed.
func (r *Repository) ResetQuotas(ctx context.Context) (int64, error) {
	query := `UPDATE employees SET quota = initial_quota, updated_at = now() WHERE quota <> initial_quota`
	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		zap.L().Error("failed to reset quotas", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Delete removes the employee. An employee still referenced by transactions
// cannot be removed.
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if pg.IsReferenced(err) {
		return fmt.Errorf("employee %s has transactions: %w", id, domain.ErrConflict)
	}
	if err != nil {
		zap.L().Error("failed to delete employee", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("employee %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
