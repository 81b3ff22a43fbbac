package service

import (
	"time"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/internal/handlers/auth"
	"github.com/GlebRadaev/fuelfleet/internal/handlers/employees"
	"github.com/GlebRadaev/fuelfleet/internal/handlers/fleet"
	"github.com/GlebRadaev/fuelfleet/internal/handlers/orders"
	"github.com/GlebRadaev/fuelfleet/internal/handlers/tanks"
	"github.com/GlebRadaev/fuelfleet/internal/handlers/transactions"
	"github.com/GlebRadaev/fuelfleet/internal/jobs"
	"github.com/GlebRadaev/fuelfleet/internal/repo"
	"github.com/GlebRadaev/fuelfleet/internal/service/authservice"
	"github.com/GlebRadaev/fuelfleet/internal/service/employeeservice"
	"github.com/GlebRadaev/fuelfleet/internal/service/fleetservice"
	"github.com/GlebRadaev/fuelfleet/internal/service/orderservice"
	"github.com/GlebRadaev/fuelfleet/internal/service/tankservice"
	"github.com/GlebRadaev/fuelfleet/internal/service/transactionservice"
	pkgauth "github.com/GlebRadaev/fuelfleet/pkg/auth"
	"github.com/GlebRadaev/fuelfleet/pkg/lock"
)

type Options struct {
	Policies         domain.Policies
	JWT              pkgauth.JWTServiceInterface
	TokenTTL         time.Duration
	Locker           lock.Locker
	ReconcileWorkers int
}

type Services struct {
	AuthService        auth.Service
	OrderService       orders.Service
	TransactionService transactions.Service
	TankService        tanks.Service
	EmployeeService    employees.Service
	FleetService       fleet.Service
	Jobs               *jobs.Runner
}

func New(r *repo.Repositories, opts Options) *Services {
	employeeService := employeeservice.New(r.EmployeeRepo, r.CarRepo, r.TXManager)
	reconciler := jobs.NewReconciler(r.TankRepo, r.TXManager, opts.ReconcileWorkers)
	resetter := jobs.NewQuotaResetter(r.EmployeeRepo)

	return &Services{
		AuthService:        authservice.New(r.UserRepo, &pkgauth.HashService{}, opts.JWT, opts.TokenTTL),
		OrderService:       orderservice.New(r.OrderRepo, r.TankRepo, r.FuelRepo, r.TXManager, opts.Policies),
		TransactionService: transactionservice.New(r.TransactionRepo, r.TankRepo, r.EmployeeRepo, r.CarRepo, r.TXManager, opts.Policies),
		TankService:        tankservice.New(r.TankRepo, r.FuelRepo, r.TXManager),
		EmployeeService:    employeeService,
		FleetService:       fleetservice.New(r.FuelRepo, r.CarRepo, r.MaintenanceRepo, r.TankRepo, employeeService, r.TXManager),
		Jobs:               jobs.NewRunner(reconciler, resetter, opts.Locker),
	}
}
