package maintenancerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	m := &domain.Maintenance{
		ID:        "m1",
		CarID:     "c1",
		Cost:      decimal.NewFromInt(90),
		OdoMeter:  120500,
		CreatedAt: now,
		Types:     []domain.MaintenanceType{{ID: "engine-oil"}, {ID: "oil-filter"}},
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Writes record and join rows",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO maintenance (id, car_id, description, cost, odo_meter, created_at)")).
					WithArgs("m1", "c1", "", m.Cost, int64(120500), now).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO maintenance_type_on_maintenance")).
					WithArgs("m1", "engine-oil").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO maintenance_type_on_maintenance")).
					WithArgs("m1", "oil-filter").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Unknown type aborts",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO maintenance (id, car_id, description, cost, odo_meter, created_at)")).
					WithArgs("m1", "c1", "", m.Cost, int64(120500), now).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO maintenance_type_on_maintenance")).
					WithArgs("m1", "engine-oil").
					WillReturnError(errors.New("foreign key violation"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Create(context.Background(), m)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM maintenance ORDER BY created_at DESC")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "car_id", "description", "cost", "odo_meter", "created_at"}).
			AddRow("m1", "c1", "service", "90", int64(120500), now).
			AddRow("m2", "c2", "", "15", int64(3000), now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM maintenance_type_on_maintenance mtm JOIN maintenance_types mt")).
		WillReturnRows(pgxmock.NewRows([]string{"maintenance_id", "id", "name"}).
			AddRow("m1", "engine-oil", "Engine oil").
			AddRow("m1", "oil-filter", "Oil filter"))

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Len(t, records[0].Types, 2)
	assert.Empty(t, records[1].Types)
}

func TestRepository_ListTypes(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM maintenance_types ORDER BY name")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow("brake-pads", "Brake pads"))

	types, err := repo.ListTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.MaintenanceType{{ID: "brake-pads", Name: "Brake pads"}}, types)
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	maintenance := &domain.Maintenance{
		ID:          "m1",
		CarID:       "c1",
		Description: "brakes",
		Cost:        decimal.NewFromInt(140),
		OdoMeter:    130000,
		Types:       []domain.MaintenanceType{{ID: "brake-pads"}},
	}

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
		expectErr   bool
	}{
		{
			name: "Replaces join rows",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE maintenance SET car_id = $1, description = $2, cost = $3, odo_meter = $4")).
					WithArgs("c1", "brakes", maintenance.Cost, int64(130000), "m1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM maintenance_type_on_maintenance WHERE maintenance_id = $1")).
					WithArgs("m1").
					WillReturnResult(pgxmock.NewResult("DELETE", 2))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO maintenance_type_on_maintenance")).
					WithArgs("m1", "brake-pads").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Unknown record",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE maintenance SET")).
					WithArgs("c1", "brakes", maintenance.Cost, int64(130000), "m1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "Unknown type aborts",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE maintenance SET")).
					WithArgs("c1", "brakes", maintenance.Cost, int64(130000), "m1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM maintenance_type_on_maintenance")).
					WithArgs("m1").
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO maintenance_type_on_maintenance")).
					WithArgs("m1", "brake-pads").
					WillReturnError(errors.New("foreign key violation"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Update(context.Background(), maintenance)
			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.expectErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
