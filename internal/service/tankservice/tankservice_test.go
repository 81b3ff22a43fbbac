package tankservice

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/internal/pg"
	memrepo "github.com/GlebRadaev/fuelfleet/internal/repo/memory-repo"
)

func litres(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func NewMock(t *testing.T) (*Service, *MockRepo, *MockFuelRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	fuels := NewMockFuelRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }).
		AnyTimes()
	return New(repo, fuels, txManager), repo, fuels
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name        string
		capacity    int64
		level       int64
		prepareMock func(repo *MockRepo, fuels *MockFuelRepo)
		expectErr   error
	}{
		{
			name:     "valid tank",
			capacity: 1000,
			level:    200,
			prepareMock: func(repo *MockRepo, fuels *MockFuelRepo) {
				fuels.EXPECT().FindByID(gomock.Any(), "diesel").Return(&domain.Fuel{ID: "diesel"}, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{name: "zero capacity", capacity: 0, level: 0, expectErr: domain.ErrValidation},
		{name: "negative level", capacity: 10, level: -1, expectErr: domain.ErrValidation},
		{name: "level above capacity", capacity: 10, level: 11, expectErr: domain.ErrValidation},
		{
			name:     "unknown fuel",
			capacity: 10,
			prepareMock: func(repo *MockRepo, fuels *MockFuelRepo) {
				fuels.EXPECT().FindByID(gomock.Any(), "diesel").Return(nil, domain.ErrNotFound)
			},
			expectErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, fuels := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(repo, fuels)
			}
			tank, err := svc.Create(context.Background(), "North", "diesel", litres(tt.capacity), litres(tt.level))
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, tank.ID)
		})
	}
}

func TestUpdateAndLedger(t *testing.T) {
	ctx := context.Background()
	store := memrepo.New()
	require.NoError(t, store.Fuels().Create(ctx, &domain.Fuel{ID: "diesel"}))
	svc := New(store.Tanks(), store.Fuels(), store)

	tank, err := svc.Create(ctx, "North", "diesel", litres(1000), litres(200))
	require.NoError(t, err)

	level := litres(1200)
	_, err = svc.Update(ctx, tank.ID, "North", "diesel", litres(1000), &level)
	assert.ErrorIs(t, err, domain.ErrValidation)

	updated, err := svc.Update(ctx, tank.ID, "North bay", "diesel", litres(2000), &level)
	require.NoError(t, err)
	assert.Equal(t, "North bay", updated.Name)

	ledger, err := svc.Ledger(ctx, tank.ID)
	require.NoError(t, err)
	assert.True(t, ledger.Stored.Equal(litres(1200)))
	assert.True(t, ledger.Drift().Equal(litres(1200)))

	_, err = svc.Ledger(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateLitreBounds(t *testing.T) {
	tests := []struct {
		name     string
		capacity string
		level    string
	}{
		{name: "capacity with four decimals", capacity: "1000.0005", level: "0"},
		{name: "level with four decimals", capacity: "1000", level: "0.0005"},
		{name: "capacity too large", capacity: "100000000000", level: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := NewMock(t)
			_, err := svc.Create(context.Background(), "North", "diesel",
				decimal.RequireFromString(tt.capacity), decimal.RequireFromString(tt.level))
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUpdateOverdrawnTank(t *testing.T) {
	ctx := context.Background()
	store := memrepo.New()
	require.NoError(t, store.Fuels().Create(ctx, &domain.Fuel{ID: "diesel"}))
	svc := New(store.Tanks(), store.Fuels(), store)

	tank, err := svc.Create(ctx, "North", "diesel", litres(100), litres(10))
	require.NoError(t, err)
	_, err = store.Tanks().AdjustLevel(ctx, tank.ID, litres(-30))
	require.NoError(t, err)

	renamed, err := svc.Update(ctx, tank.ID, "Renamed", "diesel", litres(100), nil)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", renamed.Name)
	assert.True(t, renamed.CurrentLevel.Equal(litres(-20)))

	negative := litres(-20)
	_, err = svc.Update(ctx, tank.ID, "Renamed", "diesel", litres(100), &negative)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Update(ctx, tank.ID, "Renamed", "diesel", litres(0), nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
