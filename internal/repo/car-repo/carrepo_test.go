package carrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
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

var carColumns = []string{"id", "employee_id", "car_model", "plate", "fuel_id", "is_eaa_car", "created_at"}

func TestRepository_ListByEmployee(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	owner := "e1"

	tests := []struct {
		name      string
		mockSetup func()
		expected  int
		expectErr bool
	}{
		{
			name: "Employee has cars",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM cars WHERE employee_id = $1 ORDER BY created_at ASC")).
					WithArgs("e1").
					WillReturnRows(pgxmock.NewRows(carColumns).
						AddRow("c1", &owner, "Hilux", "AA-123", "f1", false, now).
						AddRow("c2", &owner, "Corolla", "AA-456", "f2", false, now))
			},
			expected: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM cars WHERE employee_id = $1")).
					WithArgs("e1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			cars, err := repo.ListByEmployee(context.Background(), "e1")
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, cars, tt.expected)
			assert.Equal(t, "e1", *cars[0].EmployeeID)
		})
	}
}

func TestRepository_ListEaa(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	owner := "e1"

	mock.ExpectQuery(regexp.QuoteMeta("FROM cars WHERE is_eaa_car ORDER BY created_at ASC")).
		WillReturnRows(pgxmock.NewRows(carColumns).AddRow("c9", &owner, "Land Cruiser", "EAA-1", "f1", true, now))

	cars, err := repo.ListEaa(context.Background())
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.True(t, cars[0].IsEaaCar)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cars WHERE id = $1")).
		WithArgs("c1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "c1"), domain.ErrNotFound)
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	owner := "e2"
	car := &domain.Car{ID: "c1", EmployeeID: &owner, CarModel: "Hilux", Plate: "AA-789", FuelID: "f1"}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE cars SET employee_id = $1, car_model = $2, plate = $3, fuel_id = $4, is_eaa_car = $5")).
		WithArgs(&owner, "Hilux", "AA-789", "f1", false, "c1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, repo.Update(context.Background(), car))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE cars SET")).
		WithArgs(&owner, "Hilux", "AA-789", "f1", false, "c1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.Update(context.Background(), car), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
