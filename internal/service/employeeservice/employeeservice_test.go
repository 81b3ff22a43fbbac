package employeeservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	memrepo "github.com/GlebRadaev/fuelfleet/internal/repo/memory-repo"
)

func litres(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func ptr[T any](v T) *T { return &v }

func newMemService(t *testing.T) (*Service, *memrepo.Store) {
	t.Helper()
	store := memrepo.New()
	require.NoError(t, store.Fuels().Create(context.Background(), &domain.Fuel{ID: "diesel"}))
	return New(store.Employees(), store.Cars(), store), store
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name      string
		in        domain.Employee
		quota     *decimal.Decimal
		wantQuota int64
		expectErr error
	}{
		{name: "quota defaults to initial", in: domain.Employee{Name: "Ali", InitialQuota: litres(200)}, wantQuota: 200},
		{name: "explicit quota", in: domain.Employee{Name: "Ali", InitialQuota: litres(200)}, quota: ptr(litres(80)), wantQuota: 80},
		{name: "missing name", in: domain.Employee{InitialQuota: litres(200)}, expectErr: domain.ErrValidation},
		{name: "negative initial quota", in: domain.Employee{Name: "Ali", InitialQuota: litres(-1)}, expectErr: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newMemService(t)
			e, err := svc.Create(context.Background(), tt.in, tt.quota)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, e.ID)
			assert.True(t, e.Quota.Equal(litres(tt.wantQuota)))
		})
	}
}

func TestUpdateKeepsQuota(t *testing.T) {
	ctx := context.Background()
	svc, store := newMemService(t)

	e, err := svc.Create(ctx, domain.Employee{Name: "Ali", InitialQuota: litres(200)}, nil)
	require.NoError(t, err)
	_, err = store.Employees().AdjustQuota(ctx, e.ID, litres(-50))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, e.ID, domain.Employee{Name: "Ali H.", Team: "ops", InitialQuota: litres(300)}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Ali H.", updated.Name)
	assert.True(t, updated.Quota.Equal(litres(150)))
	assert.True(t, updated.InitialQuota.Equal(litres(300)))

	updated, err = svc.Update(ctx, e.ID, domain.Employee{Name: "Ali H.", InitialQuota: litres(300)}, ptr(litres(300)))
	require.NoError(t, err)
	assert.True(t, updated.Quota.Equal(litres(300)))

	_, err = svc.Update(ctx, "missing", domain.Employee{Name: "x"}, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListAttachesCars(t *testing.T) {
	ctx := context.Background()
	svc, store := newMemService(t)

	ali, err := svc.Create(ctx, domain.Employee{Name: "Ali", InitialQuota: litres(100)}, nil)
	require.NoError(t, err)
	sara, err := svc.Create(ctx, domain.Employee{Name: "Sara", InitialQuota: litres(100)}, nil)
	require.NoError(t, err)
	require.NoError(t, store.Cars().Create(ctx, &domain.Car{ID: "c1", EmployeeID: &ali.ID, FuelID: "diesel", Plate: "A-1"}))
	require.NoError(t, store.Cars().Create(ctx, &domain.Car{ID: "c2", EmployeeID: &ali.ID, FuelID: "diesel", Plate: "A-2"}))
	require.NoError(t, store.Cars().Create(ctx, &domain.Car{ID: "c3", FuelID: "diesel", IsEaaCar: true}))

	employees, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, ali.ID, employees[0].ID)
	assert.Len(t, employees[0].Cars, 2)
	assert.Equal(t, sara.ID, employees[1].ID)
	assert.Empty(t, employees[1].Cars)

	got, err := svc.Get(ctx, ali.ID)
	require.NoError(t, err)
	assert.Len(t, got.Cars, 2)

	require.NoError(t, svc.Delete(ctx, ali.ID))
	car, err := store.Cars().FindByID(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, car.EmployeeID)
}

func TestList_CarsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	cars := NewMockCarRepo(ctrl)
	svc := New(repo, cars, nil)

	repo.EXPECT().List(gomock.Any()).Return([]domain.Employee{{ID: "e1"}}, nil)
	cars.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

	employees, err := svc.List(context.Background())
	assert.EqualError(t, err, "db down")
	assert.Nil(t, employees)
}

func TestDelete_WithTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	svc := New(repo, NewMockCarRepo(ctrl), nil)

	repo.EXPECT().Delete(gomock.Any(), "e1").Return(domain.ErrConflict)
	assert.ErrorIs(t, svc.Delete(context.Background(), "e1"), domain.ErrConflict)
}
