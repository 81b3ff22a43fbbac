package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
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

var orderColumns = []string{"id", "number", "tank_id", "fuel_id", "amount", "created_at"}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	number := "PO-7"

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr error
		result    *domain.Order
	}{
		{
			name: "Order exists",
			id:   "o1",
			mockSetup: func() {
				rows := pgxmock.NewRows(orderColumns).AddRow("o1", &number, "t1", "f1", "300", now)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, number, tank_id, fuel_id, amount, created_at FROM orders WHERE id = $1")).
					WithArgs("o1").
					WillReturnRows(rows)
			},
			result: &domain.Order{ID: "o1", Number: &number, TankID: "t1", FuelID: "f1", Amount: decimal.NewFromInt(300), CreatedAt: now},
		},
		{
			name: "Order does not exist",
			id:   "o2",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE id = $1")).
					WithArgs("o2").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrNotFound,
		},
		{
			name: "Database error",
			id:   "o3",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE id = $1")).
					WithArgs("o3").
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectErr, domain.ErrNotFound) {
					assert.ErrorIs(t, err, domain.ErrNotFound)
				}
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.result.ID, result.ID)
			assert.Equal(t, *tt.result.Number, *result.Number)
			assert.Equal(t, tt.result.TankID, result.TankID)
			assert.True(t, tt.result.Amount.Equal(result.Amount))
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	number := "PO-1"

	rows := pgxmock.NewRows(orderColumns).
		AddRow("o2", &number, "t1", "f1", "50", now).
		AddRow("o1", &number, "t1", "f1", "300", now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("FROM orders ORDER BY created_at DESC")).WillReturnRows(rows)

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o2", orders[0].ID)
	assert.Equal(t, "o1", orders[1].ID)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	order := &domain.Order{ID: "o1", TankID: "t1", FuelID: "f1", Amount: decimal.NewFromInt(300), CreatedAt: time.Now()}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders (id, number, tank_id, fuel_id, amount, created_at)")).
		WithArgs("o1", order.Number, "t1", "f1", order.Amount, order.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.Create(context.Background(), order))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
		WithArgs("o1", order.Number, "t1", "f1", order.Amount, order.CreatedAt).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Create(context.Background(), order))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateDelete(t *testing.T) {
	repo, mock := NewMock(t)
	order := &domain.Order{ID: "o1", TankID: "t1", FuelID: "f1", Amount: decimal.NewFromInt(500)}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET number = $1, tank_id = $2, fuel_id = $3, amount = $4 WHERE id = $5")).
		WithArgs(order.Number, "t1", "f1", order.Amount, "o1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.Update(context.Background(), order))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders")).
		WithArgs(order.Number, "t1", "f1", order.Amount, "o1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.Update(context.Background(), order), domain.ErrConflict)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders WHERE id = $1")).
		WithArgs("o1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), "o1"))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders WHERE id = $1")).
		WithArgs("o1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "o1"), domain.ErrConflict)

	assert.NoError(t, mock.ExpectationsWereMet())
}
