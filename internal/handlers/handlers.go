package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/fuelfleet/docs"
	authhandlers "github.com/GlebRadaev/fuelfleet/internal/handlers/auth"
	employeehandlers "github.com/GlebRadaev/fuelfleet/internal/handlers/employees"
	fleethandlers "github.com/GlebRadaev/fuelfleet/internal/handlers/fleet"
	jobhandlers "github.com/GlebRadaev/fuelfleet/internal/handlers/jobs"
	orderhandlers "github.com/GlebRadaev/fuelfleet/internal/handlers/orders"
	tankhandlers "github.com/GlebRadaev/fuelfleet/internal/handlers/tanks"
	transactionhandlers "github.com/GlebRadaev/fuelfleet/internal/handlers/transactions"
	"github.com/GlebRadaev/fuelfleet/internal/service"
	"github.com/GlebRadaev/fuelfleet/pkg/auth"
	"github.com/GlebRadaev/fuelfleet/pkg/metrics"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	ValidateToken(w http.ResponseWriter, r *http.Request)
	GetUsers(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	UpdateOrder(w http.ResponseWriter, r *http.Request)
	DeleteOrder(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	CreateTransaction(w http.ResponseWriter, r *http.Request)
	UpdateTransaction(w http.ResponseWriter, r *http.Request)
	DeleteTransaction(w http.ResponseWriter, r *http.Request)
	GetTransaction(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetPending(w http.ResponseWriter, r *http.Request)
	CountPending(w http.ResponseWriter, r *http.Request)
}

type TankHandler interface {
	CreateTank(w http.ResponseWriter, r *http.Request)
	UpdateTank(w http.ResponseWriter, r *http.Request)
	GetTank(w http.ResponseWriter, r *http.Request)
	GetTanks(w http.ResponseWriter, r *http.Request)
	GetLedger(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandler interface {
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployees(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	CreateCar(w http.ResponseWriter, r *http.Request)
	GetCars(w http.ResponseWriter, r *http.Request)
}

type FleetHandler interface {
	CreateFuel(w http.ResponseWriter, r *http.Request)
	UpdateFuel(w http.ResponseWriter, r *http.Request)
	GetFuel(w http.ResponseWriter, r *http.Request)
	GetFuels(w http.ResponseWriter, r *http.Request)
	DeleteFuel(w http.ResponseWriter, r *http.Request)
	CreateCar(w http.ResponseWriter, r *http.Request)
	UpdateCar(w http.ResponseWriter, r *http.Request)
	GetCar(w http.ResponseWriter, r *http.Request)
	GetCars(w http.ResponseWriter, r *http.Request)
	GetEaaCars(w http.ResponseWriter, r *http.Request)
	DeleteCar(w http.ResponseWriter, r *http.Request)
	CreateMaintenance(w http.ResponseWriter, r *http.Request)
	UpdateMaintenance(w http.ResponseWriter, r *http.Request)
	GetMaintenance(w http.ResponseWriter, r *http.Request)
	GetMaintenanceList(w http.ResponseWriter, r *http.Request)
	DeleteMaintenance(w http.ResponseWriter, r *http.Request)
	GetMaintenanceTypes(w http.ResponseWriter, r *http.Request)
	GetEaaBundle(w http.ResponseWriter, r *http.Request)
	GetFormData(w http.ResponseWriter, r *http.Request)
}

type JobHandler interface {
	Reconcile(w http.ResponseWriter, r *http.Request)
	ResetQuotas(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	OrderHandler       OrderHandler
	TransactionHandler TransactionHandler
	TankHandler        TankHandler
	EmployeeHandler    EmployeeHandler
	FleetHandler       FleetHandler
	JobHandler         JobHandler
	JWT                auth.JWTServiceInterface
}

func New(s *service.Services, jwt auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		OrderHandler:       orderhandlers.New(s.OrderService),
		TransactionHandler: transactionhandlers.New(s.TransactionService),
		TankHandler:        tankhandlers.New(s.TankService),
		EmployeeHandler:    employeehandlers.New(s.EmployeeService, s.FleetService),
		FleetHandler:       fleethandlers.New(s.FleetService),
		JobHandler:         jobhandlers.New(s.Jobs),
		JWT:                jwt,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)
		r.Post("/validate-token", h.AuthHandler.ValidateToken)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.JWT))
			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.AuthHandler.GetUsers)
				r.Get("/{id}", h.AuthHandler.GetUser)
				r.Delete("/{id}", h.AuthHandler.DeleteUser)
			})
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.OrderHandler.GetOrders)
				r.Post("/", h.OrderHandler.CreateOrder)
				r.Get("/{id}", h.OrderHandler.GetOrder)
				r.Put("/{id}", h.OrderHandler.UpdateOrder)
				r.Delete("/{id}", h.OrderHandler.DeleteOrder)
			})
			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", h.TransactionHandler.GetTransactions)
				r.Post("/", h.TransactionHandler.CreateTransaction)
				r.Get("/pending", h.TransactionHandler.GetPending)
				r.Get("/pending/count", h.TransactionHandler.CountPending)
				r.Get("/{id}", h.TransactionHandler.GetTransaction)
				r.Put("/{id}", h.TransactionHandler.UpdateTransaction)
				r.Delete("/{id}", h.TransactionHandler.DeleteTransaction)
			})
			r.Route("/tanks", func(r chi.Router) {
				r.Get("/", h.TankHandler.GetTanks)
				r.Post("/", h.TankHandler.CreateTank)
				r.Get("/{id}", h.TankHandler.GetTank)
				r.Put("/{id}", h.TankHandler.UpdateTank)
				r.Get("/{id}/ledger", h.TankHandler.GetLedger)
			})
			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.EmployeeHandler.GetEmployees)
				r.Post("/", h.EmployeeHandler.CreateEmployee)
				r.Get("/{id}", h.EmployeeHandler.GetEmployee)
				r.Put("/{id}", h.EmployeeHandler.UpdateEmployee)
				r.Delete("/{id}", h.EmployeeHandler.DeleteEmployee)
				r.Get("/{id}/cars", h.EmployeeHandler.GetCars)
				r.Post("/{id}/cars", h.EmployeeHandler.CreateCar)
			})
			r.Route("/fuels", func(r chi.Router) {
				r.Get("/", h.FleetHandler.GetFuels)
				r.Post("/", h.FleetHandler.CreateFuel)
				r.Get("/{id}", h.FleetHandler.GetFuel)
				r.Put("/{id}", h.FleetHandler.UpdateFuel)
				r.Delete("/{id}", h.FleetHandler.DeleteFuel)
			})
			r.Route("/cars", func(r chi.Router) {
				r.Get("/", h.FleetHandler.GetCars)
				r.Post("/", h.FleetHandler.CreateCar)
				r.Get("/eaa", h.FleetHandler.GetEaaCars)
				r.Get("/{id}", h.FleetHandler.GetCar)
				r.Put("/{id}", h.FleetHandler.UpdateCar)
				r.Delete("/{id}", h.FleetHandler.DeleteCar)
			})
			r.Route("/maintenance", func(r chi.Router) {
				r.Get("/", h.FleetHandler.GetMaintenanceList)
				r.Post("/", h.FleetHandler.CreateMaintenance)
				r.Get("/types", h.FleetHandler.GetMaintenanceTypes)
				r.Get("/eaa", h.FleetHandler.GetEaaBundle)
				r.Get("/{id}", h.FleetHandler.GetMaintenance)
				r.Put("/{id}", h.FleetHandler.UpdateMaintenance)
				r.Delete("/{id}", h.FleetHandler.DeleteMaintenance)
			})
			r.Get("/data", h.FleetHandler.GetFormData)
			r.Route("/jobs", func(r chi.Router) {
				r.Post("/reconcile", h.JobHandler.Reconcile)
				r.Post("/quota-reset", h.JobHandler.ResetQuotas)
			})
		})
	})

	return r
}
