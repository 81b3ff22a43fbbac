package maintenancerepo

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

// Create writes the maintenance row and one join row per type. Callers run
// it inside a transaction so a bad type id leaves nothing behind.
func (r *Repository) Create(ctx context.Context, maintenance *domain.Maintenance) error {
	query := `
		INSERT INTO maintenance (id, car_id, description, cost, odo_meter, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, maintenance.ID, maintenance.CarID, maintenance.Description,
		maintenance.Cost, maintenance.OdoMeter, maintenance.CreatedAt)
	if err != nil {
		zap.L().Error("can't save maintenance", zap.Error(err))
		return err
	}
	return r.linkTypes(ctx, maintenance)
}

// Update rewrites the maintenance row and replaces its type links. Like
// Create it must run inside a transaction.
func (r *Repository) Update(ctx context.Context, maintenance *domain.Maintenance) error {
	query := `
		UPDATE maintenance SET car_id = $1, description = $2, cost = $3, odo_meter = $4
		WHERE id = $5
	`
	tag, err := r.db.Exec(ctx, query, maintenance.CarID, maintenance.Description,
		maintenance.Cost, maintenance.OdoMeter, maintenance.ID)
	if err != nil {
		zap.L().Error("failed to update maintenance", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("maintenance %s: %w", maintenance.ID, domain.ErrNotFound)
	}
	_, err = r.db.Exec(ctx, `DELETE FROM maintenance_type_on_maintenance WHERE maintenance_id = $1`, maintenance.ID)
	if err != nil {
		zap.L().Error("can't unlink maintenance types", zap.Error(err))
		return err
	}
	return r.linkTypes(ctx, maintenance)
}

func (r *Repository) linkTypes(ctx context.Context, maintenance *domain.Maintenance) error {
	for _, mt := range maintenance.Types {
		_, err := r.db.Exec(ctx, `
			INSERT INTO maintenance_type_on_maintenance (maintenance_id, maintenance_type_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, maintenance.ID, mt.ID)
		if err != nil {
			zap.L().Error("can't link maintenance type", zap.String("type", mt.ID), zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Maintenance, error) {
	var m domain.Maintenance
	err := r.db.QueryRow(ctx, `SELECT id, car_id, description, cost, odo_meter, created_at FROM maintenance WHERE id = $1`, id).
		Scan(&m.ID, &m.CarID, &m.Description, &m.Cost, &m.OdoMeter, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("maintenance %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		zap.L().Error("can't find maintenance", zap.Error(err))
		return nil, err
	}
	types, err := r.typesByMaintenance(ctx, `WHERE mtm.maintenance_id = $1`, id)
	if err != nil {
		return nil, err
	}
	m.Types = types[m.ID]
	return &m, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Maintenance, error) {
	rows, err := r.db.Query(ctx, `SELECT id, car_id, description, cost, odo_meter, created_at FROM maintenance ORDER BY created_at DESC`)
	if err != nil {
		zap.L().Error("can't get maintenance records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.Maintenance
	for rows.Next() {
		var m domain.Maintenance
		if err := rows.Scan(&m.ID, &m.CarID, &m.Description, &m.Cost, &m.OdoMeter, &m.CreatedAt); err != nil {
			zap.L().Error("can't scan maintenance row", zap.Error(err))
			return nil, err
		}
		records = append(records, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	types, err := r.typesByMaintenance(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Types = types[records[i].ID]
	}
	return records, nil
}

func (r *Repository) typesByMaintenance(ctx context.Context, where string, args ...any) (map[string][]domain.MaintenanceType, error) {
	query := `
		SELECT mtm.maintenance_id, mt.id, mt.name
		FROM maintenance_type_on_maintenance mtm
		JOIN maintenance_types mt ON mt.id = mtm.maintenance_type_id
		` + where + `
		ORDER BY mt.name
	`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get maintenance types", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	result := make(map[string][]domain.MaintenanceType)
	for rows.Next() {
		var maintenanceID string
		var mt domain.MaintenanceType
		if err := rows.Scan(&maintenanceID, &mt.ID, &mt.Name); err != nil {
			zap.L().Error("can't scan maintenance type row", zap.Error(err))
			return nil, err
		}
		result[maintenanceID] = append(result[maintenanceID], mt)
	}
	return result, rows.Err()
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM maintenance WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("failed to delete maintenance", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("maintenance %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) ListTypes(ctx context.Context) ([]domain.MaintenanceType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM maintenance_types ORDER BY name`)
	if err != nil {
		zap.L().Error("can't get maintenance types", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var types []domain.MaintenanceType
	for rows.Next() {
		var mt domain.MaintenanceType
		if err := rows.Scan(&mt.ID, &mt.Name); err != nil {
			zap.L().Error("can't scan maintenance type row", zap.Error(err))
			return nil, err
		}
		types = append(types, mt)
	}
	return types, rows.Err()
}
