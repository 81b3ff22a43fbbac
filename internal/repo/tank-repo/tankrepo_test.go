package tankrepo

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

type decimalArg struct{ want decimal.Decimal }

func (a decimalArg) Match(v interface{}) bool {
	d, ok := v.(decimal.Decimal)
	return ok && d.Equal(a.want)
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

var tankColumns = []string{"id", "name", "fuel_id", "capacity", "current_level", "created_at", "updated_at"}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr error
		result    *domain.Tank
	}{
		{
			name: "Tank exists",
			id:   "t1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, fuel_id, capacity, current_level, created_at, updated_at FROM tanks WHERE id = $1`)).
					WithArgs("t1").
					WillReturnRows(pgxmock.NewRows(tankColumns).AddRow("t1", "North", "f1", "1000", "200", now, now))
			},
			result: &domain.Tank{
				ID:           "t1",
				Name:         "North",
				FuelID:       "f1",
				Capacity:     decimal.NewFromInt(1000),
				CurrentLevel: decimal.NewFromInt(200),
				CreatedAt:    now,
				UpdatedAt:    now,
			},
		},
		{
			name: "Tank does not exist",
			id:   "missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM tanks WHERE id = $1`)).
					WithArgs("missing").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.result.ID, result.ID)
			assert.True(t, tt.result.Capacity.Equal(result.Capacity))
			assert.True(t, tt.result.CurrentLevel.Equal(result.CurrentLevel))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_LockByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM tanks WHERE id = $1 FOR UPDATE`)).
		WithArgs("t1").
		WillReturnRows(pgxmock.NewRows(tankColumns).AddRow("t1", "North", "f1", "1000", "200", now, now))

	tank, err := repo.LockByID(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", tank.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AdjustLevel(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		delta     decimal.Decimal
		mockSetup func()
		expectErr error
		expected  decimal.Decimal
	}{
		{
			name:  "Increments level",
			delta: decimal.NewFromInt(300),
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE tanks SET current_level = current_level + $1, updated_at = now() WHERE id = $2 RETURNING`)).
					WithArgs(decimalArg{decimal.NewFromInt(300)}, "t1").
					WillReturnRows(pgxmock.NewRows(tankColumns).AddRow("t1", "North", "f1", "1000", "500", now, now))
			},
			expected: decimal.NewFromInt(500),
		},
		{
			name:  "Tank vanished inside the group",
			delta: decimal.NewFromInt(-120),
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE tanks SET current_level = current_level + $1`)).
					WithArgs(decimalArg{decimal.NewFromInt(-120)}, "t1").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrConflict,
		},
		{
			name:  "Database error",
			delta: decimal.NewFromInt(1),
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE tanks SET current_level = current_level + $1`)).
					WithArgs(decimalArg{decimal.NewFromInt(1)}, "t1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			tank, err := repo.AdjustLevel(context.Background(), "t1", tt.delta)
			if tt.expectErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectErr, domain.ErrConflict) {
					assert.ErrorIs(t, err, domain.ErrConflict)
				}
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(tank.CurrentLevel))
		})
	}
}

func TestRepository_SetLevel(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE tanks SET current_level = $1, updated_at = now() WHERE id = $2`)).
		WithArgs(decimalArg{decimal.NewFromInt(380)}, "t1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.SetLevel(context.Background(), "t1", decimal.NewFromInt(380)))

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE tanks SET current_level = $1, updated_at = now() WHERE id = $2`)).
		WithArgs(decimalArg{decimal.NewFromInt(380)}, "gone").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.SetLevel(context.Background(), "gone", decimal.NewFromInt(380)), domain.ErrConflict)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Ledger(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT t.current_level,`)).
		WithArgs("t1").
		WillReturnRows(pgxmock.NewRows([]string{"current_level", "orders", "dispensed"}).AddRow("450", "500", "120"))

	ledger, err := repo.Ledger(context.Background(), "t1")
	require.NoError(t, err)
	assert.True(t, ledger.Derived().Equal(decimal.NewFromInt(380)))
	assert.True(t, ledger.Drift().Equal(decimal.NewFromInt(70)))
}
