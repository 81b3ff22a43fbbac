package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/internal/pg"
	"github.com/GlebRadaev/fuelfleet/internal/repo"
	memrepo "github.com/GlebRadaev/fuelfleet/internal/repo/memory-repo"
	"github.com/GlebRadaev/fuelfleet/internal/service/authservice"
	"github.com/GlebRadaev/fuelfleet/internal/service/employeeservice"
	"github.com/GlebRadaev/fuelfleet/internal/service/fleetservice"
	"github.com/GlebRadaev/fuelfleet/internal/service/orderservice"
	"github.com/GlebRadaev/fuelfleet/internal/service/tankservice"
	"github.com/GlebRadaev/fuelfleet/internal/service/transactionservice"
	pkgauth "github.com/GlebRadaev/fuelfleet/pkg/auth"
	"github.com/GlebRadaev/fuelfleet/pkg/lock"
)

func litres(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	repos := &repo.Repositories{
		UserRepo:        authservice.NewMockRepo(ctrl),
		OrderRepo:       orderservice.NewMockRepo(ctrl),
		TransactionRepo: transactionservice.NewMockRepo(ctrl),
		MaintenanceRepo: fleetservice.NewMockMaintenanceRepo(ctrl),
		TXManager:       pg.NewMockTXManager(ctrl),
	}

	services := New(repos, Options{Locker: lock.NewLocal(), ReconcileWorkers: 2})

	assert.IsType(t, &authservice.Service{}, services.AuthService)
	assert.IsType(t, &orderservice.Service{}, services.OrderService)
	assert.IsType(t, &transactionservice.Service{}, services.TransactionService)
	assert.IsType(t, &tankservice.Service{}, services.TankService)
	assert.IsType(t, &employeeservice.Service{}, services.EmployeeService)
	assert.IsType(t, &fleetservice.Service{}, services.FleetService)
	assert.NotNil(t, services.Jobs)
}

// The dispense workflow against the memory backend: one order fills the
// tank, one transaction draws from both tank and quota, and a reconcile run
// finds nothing to correct.
func TestBalancesStayConsistent(t *testing.T) {
	ctx := context.Background()
	jwt := pkgauth.NewJWTService("secret")
	s := New(repo.NewMemory(memrepo.New()), Options{
		Policies:         domain.DefaultPolicies(),
		JWT:              jwt,
		TokenTTL:         time.Hour,
		Locker:           lock.NewLocal(),
		ReconcileWorkers: 2,
	})

	fuel, err := s.FleetService.CreateFuel(ctx, "Diesel", decimal.Zero)
	require.NoError(t, err)
	tank, err := s.TankService.Create(ctx, "North yard", fuel.ID, litres(1000), decimal.Zero)
	require.NoError(t, err)
	employee, err := s.EmployeeService.Create(ctx, domain.Employee{Name: "Ali", InitialQuota: litres(200)}, nil)
	require.NoError(t, err)
	car, err := s.FleetService.CreateCar(ctx, &employee.ID, "Hilux", "A-1", fuel.ID, false)
	require.NoError(t, err)

	_, err = s.OrderService.Create(ctx, domain.NewOrder{TankID: tank.ID, Amount: litres(300)})
	require.NoError(t, err)
	_, err = s.TransactionService.Create(ctx, domain.NewTransaction{
		TankID: tank.ID, EmployeeID: employee.ID, CarID: car.ID, Amount: litres(70),
	})
	require.NoError(t, err)

	got, err := s.TankService.Get(ctx, tank.ID)
	require.NoError(t, err)
	assert.True(t, got.CurrentLevel.Equal(litres(230)))
	e, err := s.EmployeeService.Get(ctx, employee.ID)
	require.NoError(t, err)
	assert.True(t, e.Quota.Equal(litres(130)))

	report, err := s.Jobs.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Tanks)
	assert.Zero(t, report.Corrected)

	user, err := s.AuthService.Register(ctx, "Dispatcher", "dispatch", "", "password123")
	require.NoError(t, err)
	token, err := s.AuthService.GenerateToken(user.ID)
	require.NoError(t, err)
	claims, err := jwt.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}
