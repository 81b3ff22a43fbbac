package memrepo

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/internal/pg"
)

func seed(t *testing.T) (*Store, context.Context) {
	t.Helper()
	ctx := context.Background()
	s := New()
	now := time.Now()
	require.NoError(t, s.Fuels().Create(ctx, &domain.Fuel{ID: "diesel", Name: "Diesel", CreatedAt: now}))
	require.NoError(t, s.Tanks().Create(ctx, &domain.Tank{
		ID: "t1", Name: "North", FuelID: "diesel",
		Capacity: decimal.NewFromInt(1000), CurrentLevel: decimal.NewFromInt(200),
		CreatedAt: now,
	}))
	return s, ctx
}

func TestStore_BeginRollsBack(t *testing.T) {
	s, ctx := seed(t)
	boom := errors.New("second step failed")

	err := s.Begin(ctx, func(ctx context.Context) error {
		if err := s.Orders().Create(ctx, &domain.Order{ID: "o1", TankID: "t1", FuelID: "diesel", Amount: decimal.NewFromInt(300)}); err != nil {
			return err
		}
		if _, err := s.Tanks().AdjustLevel(ctx, "t1", decimal.NewFromInt(300)); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Orders().FindByID(ctx, "o1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	tank, err := s.Tanks().FindByID(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, tank.CurrentLevel.Equal(decimal.NewFromInt(200)))
}

func TestStore_BeginRollsBackOnPanic(t *testing.T) {
	s, ctx := seed(t)

	assert.Panics(t, func() {
		_ = s.Begin(ctx, func(ctx context.Context) error {
			_, _ = s.Tanks().AdjustLevel(ctx, "t1", decimal.NewFromInt(-50))
			panic("handler bug")
		})
	})

	tank, err := s.Tanks().FindByID(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, tank.CurrentLevel.Equal(decimal.NewFromInt(200)))
}

func TestStore_NestedBeginJoins(t *testing.T) {
	s, ctx := seed(t)
	var manager pg.TXManager = s

	err := manager.Begin(ctx, func(ctx context.Context) error {
		return manager.Begin(ctx, func(ctx context.Context) error {
			_, err := s.Tanks().AdjustLevel(ctx, "t1", decimal.NewFromInt(5))
			return err
		})
	})
	require.NoError(t, err)

	tank, _ := s.Tanks().FindByID(ctx, "t1")
	assert.True(t, tank.CurrentLevel.Equal(decimal.NewFromInt(205)))
}

func TestStore_ConcurrentGroupsSerialise(t *testing.T) {
	s, ctx := seed(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Begin(ctx, func(ctx context.Context) error {
				tank, err := s.Tanks().LockByID(ctx, "t1")
				if err != nil {
					return err
				}
				return s.Tanks().SetLevel(ctx, "t1", tank.CurrentLevel.Sub(decimal.NewFromInt(1)))
			})
		}()
	}
	wg.Wait()

	tank, _ := s.Tanks().FindByID(ctx, "t1")
	assert.True(t, tank.CurrentLevel.Equal(decimal.NewFromInt(150)))
}

func TestStore_ForeignKeys(t *testing.T) {
	s, ctx := seed(t)

	err := s.Orders().Create(ctx, &domain.Order{ID: "o1", TankID: "missing", FuelID: "diesel", Amount: decimal.NewFromInt(1)})
	assert.True(t, pg.IsReferenced(err))

	err = s.Maintenance().Create(ctx, &domain.Maintenance{ID: "m1", CarID: "nope"})
	assert.True(t, pg.IsReferenced(err))
}

func TestStore_EmployeeDeleteDetachesCars(t *testing.T) {
	s, ctx := seed(t)
	owner := "e1"
	require.NoError(t, s.Employees().Create(ctx, &domain.Employee{ID: "e1", Name: "Sami"}))
	require.NoError(t, s.Cars().Create(ctx, &domain.Car{ID: "c1", EmployeeID: &owner, FuelID: "diesel", Plate: "AA-1"}))

	require.NoError(t, s.Employees().Delete(ctx, "e1"))

	car, err := s.Cars().FindByID(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, car.EmployeeID)
}

func TestStore_ListOrders(t *testing.T) {
	s, ctx := seed(t)
	for _, id := range []string{"o1", "o2", "o3"} {
		require.NoError(t, s.Orders().Create(ctx, &domain.Order{ID: id, TankID: "t1", FuelID: "diesel", Amount: decimal.NewFromInt(1)}))
	}

	orders, err := s.Orders().List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "o3", orders[0].ID)
	assert.Equal(t, "o1", orders[2].ID)
}

func TestStore_Ledger(t *testing.T) {
	s, ctx := seed(t)
	owner := "e1"
	require.NoError(t, s.Employees().Create(ctx, &domain.Employee{ID: "e1"}))
	require.NoError(t, s.Cars().Create(ctx, &domain.Car{ID: "c1", EmployeeID: &owner, FuelID: "diesel"}))
	require.NoError(t, s.Orders().Create(ctx, &domain.Order{ID: "o1", TankID: "t1", FuelID: "diesel", Amount: decimal.NewFromInt(500)}))
	require.NoError(t, s.Transactions().Create(ctx, &domain.Transaction{ID: "tr1", TankID: "t1", EmployeeID: "e1", CarID: "c1", Amount: decimal.NewFromInt(120), Status: domain.StatusPending}))

	ledger, err := s.Tanks().Ledger(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, ledger.Derived().Equal(decimal.NewFromInt(380)))
	assert.True(t, ledger.Drift().Equal(decimal.NewFromInt(-180)))

	count, err := s.Transactions().CountByStatus(ctx, domain.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	details, err := s.Transactions().ListDetailsByStatus(ctx, domain.StatusPending)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "t1", details[0].Tank.ID)
	assert.Equal(t, "e1", details[0].Employee.ID)
	assert.Equal(t, "c1", details[0].Car.ID)
	assert.Equal(t, "diesel", details[0].CarFuel.ID)

	approved, err := s.Transactions().ListDetailsByStatus(ctx, domain.StatusApproved)
	require.NoError(t, err)
	assert.Empty(t, approved)
}

func TestStore_FuelDelete(t *testing.T) {
	s, ctx := seed(t)
	require.NoError(t, s.Fuels().Create(ctx, &domain.Fuel{ID: "petrol", Name: "Petrol"}))

	assert.ErrorIs(t, s.Fuels().Delete(ctx, "diesel"), domain.ErrConflict)
	require.NoError(t, s.Fuels().Delete(ctx, "petrol"))
	assert.ErrorIs(t, s.Fuels().Delete(ctx, "petrol"), domain.ErrNotFound)

	fuels, err := s.Fuels().List(ctx)
	require.NoError(t, err)
	require.Len(t, fuels, 1)
	assert.Equal(t, "diesel", fuels[0].ID)
}

func TestStore_CarUpdate(t *testing.T) {
	s, ctx := seed(t)
	created := time.Now().Add(-time.Hour)
	require.NoError(t, s.Cars().Create(ctx, &domain.Car{ID: "c1", FuelID: "diesel", Plate: "AA-1", CreatedAt: created}))

	missing := "e9"
	err := s.Cars().Update(ctx, &domain.Car{ID: "c1", EmployeeID: &missing, FuelID: "diesel", Plate: "AA-1"})
	assert.True(t, pg.IsReferenced(err))
	assert.ErrorIs(t, s.Cars().Update(ctx, &domain.Car{ID: "c9", FuelID: "diesel"}), domain.ErrNotFound)

	require.NoError(t, s.Cars().Update(ctx, &domain.Car{ID: "c1", FuelID: "diesel", Plate: "BB-2", IsEaaCar: true}))
	car, err := s.Cars().FindByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "BB-2", car.Plate)
	assert.True(t, car.IsEaaCar)
	assert.True(t, car.CreatedAt.Equal(created))
}

func TestStore_MaintenanceUpdate(t *testing.T) {
	s, ctx := seed(t)
	require.NoError(t, s.Cars().Create(ctx, &domain.Car{ID: "c1", FuelID: "diesel", Plate: "AA-1"}))
	require.NoError(t, s.Maintenance().Create(ctx, &domain.Maintenance{
		ID: "m1", CarID: "c1", Types: []domain.MaintenanceType{{ID: "engine-oil"}, {ID: "oil-filter"}},
	}))

	err := s.Maintenance().Update(ctx, &domain.Maintenance{ID: "m1", CarID: "c1", Types: []domain.MaintenanceType{{ID: "unknown"}}})
	assert.True(t, pg.IsReferenced(err))

	require.NoError(t, s.Maintenance().Update(ctx, &domain.Maintenance{
		ID: "m1", CarID: "c1", Description: "brakes", Types: []domain.MaintenanceType{{ID: "brake-pads"}},
	}))
	m, err := s.Maintenance().FindByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "brakes", m.Description)
	require.Len(t, m.Types, 1)
	assert.Equal(t, "Brake pads", m.Types[0].Name)
}

func TestStore_Users(t *testing.T) {
	s, ctx := seed(t)
	_, err := s.Users().Create(ctx, &domain.User{ID: "u1", Login: "dispatcher", PasswordHash: "hash"})
	require.NoError(t, err)

	user, err := s.Users().FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "dispatcher", user.Login)
	assert.Empty(t, user.PasswordHash)

	users, err := s.Users().List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Empty(t, users[0].PasswordHash)

	stored, err := s.Users().FindByLogin(ctx, "dispatcher")
	require.NoError(t, err)
	assert.Equal(t, "hash", stored.PasswordHash)

	require.NoError(t, s.Users().Delete(ctx, "u1"))
	assert.ErrorIs(t, s.Users().Delete(ctx, "u1"), domain.ErrNotFound)
}
