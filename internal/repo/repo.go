package repo

import (
	"github.com/GlebRadaev/fuelfleet/internal/jobs"
	"github.com/GlebRadaev/fuelfleet/internal/pg"
	carrepo "github.com/GlebRadaev/fuelfleet/internal/repo/car-repo"
	employeerepo "github.com/GlebRadaev/fuelfleet/internal/repo/employee-repo"
	fuelrepo "github.com/GlebRadaev/fuelfleet/internal/repo/fuel-repo"
	maintenancerepo "github.com/GlebRadaev/fuelfleet/internal/repo/maintenance-repo"
	memrepo "github.com/GlebRadaev/fuelfleet/internal/repo/memory-repo"
	orderrepo "github.com/GlebRadaev/fuelfleet/internal/repo/order-repo"
	tankrepo "github.com/GlebRadaev/fuelfleet/internal/repo/tank-repo"
	transactionrepo "github.com/GlebRadaev/fuelfleet/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/fuelfleet/internal/repo/user-repo"
	"github.com/GlebRadaev/fuelfleet/internal/service/authservice"
	"github.com/GlebRadaev/fuelfleet/internal/service/employeeservice"
	"github.com/GlebRadaev/fuelfleet/internal/service/fleetservice"
	"github.com/GlebRadaev/fuelfleet/internal/service/orderservice"
	"github.com/GlebRadaev/fuelfleet/internal/service/tankservice"
	"github.com/GlebRadaev/fuelfleet/internal/service/transactionservice"
)

type FuelRepo interface {
	fleetservice.FuelRepo
	orderservice.FuelRepo
	tankservice.FuelRepo
}

type TankRepo interface {
	tankservice.Repo
	orderservice.TankRepo
	transactionservice.TankRepo
	fleetservice.TankRepo
	jobs.TankRepo
}

type EmployeeRepo interface {
	employeeservice.Repo
	transactionservice.EmployeeRepo
	jobs.EmployeeRepo
}

type CarRepo interface {
	employeeservice.CarRepo
	fleetservice.CarRepo
	transactionservice.CarRepo
}

// Repositories is one storage backend: every repository plus the transaction
// manager that makes their writes atomic.
type Repositories struct {
	UserRepo        authservice.Repo
	FuelRepo        FuelRepo
	TankRepo        TankRepo
	EmployeeRepo    EmployeeRepo
	CarRepo         CarRepo
	OrderRepo       orderservice.Repo
	TransactionRepo transactionservice.Repo
	MaintenanceRepo fleetservice.MaintenanceRepo
	TXManager       pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		FuelRepo:        fuelrepo.New(conn),
		TankRepo:        tankrepo.New(conn),
		EmployeeRepo:    employeerepo.New(conn),
		CarRepo:         carrepo.New(conn),
		OrderRepo:       orderrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		MaintenanceRepo: maintenancerepo.New(conn),
		TXManager:       txManager,
	}
}

// NewMemory backs every repository with the in-process store.
func NewMemory(store *memrepo.Store) *Repositories {
	return &Repositories{
		UserRepo:        store.Users(),
		FuelRepo:        store.Fuels(),
		TankRepo:        store.Tanks(),
		EmployeeRepo:    store.Employees(),
		CarRepo:         store.Cars(),
		OrderRepo:       store.Orders(),
		TransactionRepo: store.Transactions(),
		MaintenanceRepo: store.Maintenance(),
		TXManager:       store,
	}
}
