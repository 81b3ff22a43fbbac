package fuelrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, price, created_at, updated_at FROM fuels WHERE id = $1")).
		WithArgs("f1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "price", "created_at", "updated_at"}).
			AddRow("f1", "Diesel", "1.45", now, now))

	fuel, err := repo.FindByID(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, "Diesel", fuel.Name)
	assert.True(t, fuel.Price.Equal(decimal.RequireFromString("1.45")))

	mock.ExpectQuery(regexp.QuoteMeta("FROM fuels WHERE id = $1")).
		WithArgs("f2").
		WillReturnError(pgx.ErrNoRows)
	_, err = repo.FindByID(context.Background(), "f2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	fuel := &domain.Fuel{ID: "f1", Name: "Petrol 95", Price: decimal.RequireFromString("1.60"), UpdatedAt: time.Now()}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE fuels SET name = $1, price = $2, updated_at = $3 WHERE id = $4")).
		WithArgs("Petrol 95", fuel.Price, fuel.UpdatedAt, "f1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, repo.Update(context.Background(), fuel), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
	}{
		{
			name: "Deleted",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM fuels WHERE id = $1")).
					WithArgs("f1").
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			name: "Still referenced",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM fuels WHERE id = $1")).
					WithArgs("f1").
					WillReturnError(&pgconn.PgError{Code: "23503"})
			},
			expectedErr: domain.ErrConflict,
		},
		{
			name: "Unknown fuel",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM fuels WHERE id = $1")).
					WithArgs("f1").
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Delete(context.Background(), "f1")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
