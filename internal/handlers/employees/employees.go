package employees

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/internal/dto"
	"github.com/GlebRadaev/fuelfleet/internal/handlers/apierr"
	"github.com/GlebRadaev/fuelfleet/pkg/utils"
)

//go:generate mockgen -source=employees.go -destination=mock_employees.go -package=employees

type Service interface {
	Create(ctx context.Context, in domain.Employee, quota *decimal.Decimal) (*domain.Employee, error)
	Update(ctx context.Context, id string, in domain.Employee, quota *decimal.Decimal) (*domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Delete(ctx context.Context, id string) error
}

type CarService interface {
	CreateCar(ctx context.Context, employeeID *string, model, plate, fuelID string, eaa bool) (*domain.Car, error)
	ListCarsByEmployee(ctx context.Context, employeeID string) ([]domain.Car, error)
}

type EmployeeHandler struct {
	employeeService Service
	carService      CarService
}

func New(employeeService Service, carService CarService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		carService:      carService,
	}
}

// CreateEmployee godoc
//
//	@Summary		Add an employee
//	@Description	quota defaults to initialQuota when left out.
//	@Tags			Employees
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.EmployeeRequestDTO	true	"Employee"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.EmployeeResponseDTO
//	@Failure		422	{object}	utils.Response	"Invalid employee"
//	@Router			/api/employees [post]
func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req dto.EmployeeRequestDTO
	if err := apierr.Decode(r, &req); err != nil {
		apierr.Respond(w, err)
		return
	}
	e, err := h.employeeService.Create(r.Context(), req.Employee(), req.Quota)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewEmployeeResponse(*e))
}

// UpdateEmployee godoc
//
//	@Summary		Change an employee
//	@Description	The remaining quota only changes when quota is sent.
//	@Tags			Employees
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"Employee id"
//	@Param			request	body	dto.EmployeeRequestDTO	true	"Employee"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.EmployeeResponseDTO
//	@Failure		404	{object}	utils.Response	"Employee not found"
//	@Router			/api/employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req dto.EmployeeRequestDTO
	if err := apierr.Decode(r, &req); err != nil {
		apierr.Respond(w, err)
		return
	}
	e, err := h.employeeService.Update(r.Context(), chi.URLParam(r, "id"), req.Employee(), req.Quota)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEmployeeResponse(*e))
}

// GetEmployee godoc
//
//	@Summary	Get an employee with their cars
//	@Tags		Employees
//	@Produce	json
//	@Param		id	path	string	true	"Employee id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.EmployeeResponseDTO
//	@Failure	404	{object}	utils.Response	"Employee not found"
//	@Router		/api/employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	e, err := h.employeeService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEmployeeResponse(*e))
}

// GetEmployees godoc
//
//	@Summary	List employees with their cars
//	@Tags		Employees
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.EmployeeResponseDTO
//	@Router		/api/employees [get]
func (h *EmployeeHandler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEmployeesResponse(employees))
}

// DeleteEmployee godoc
//
//	@Summary	Remove an employee
//	@Tags		Employees
//	@Param		id	path	string	true	"Employee id"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Employee not found"
//	@Failure	409	{object}	utils.Response	"Employee has transactions"
//	@Router		/api/employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		apierr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateCar godoc
//
//	@Summary	Assign a new car to an employee
//	@Tags		Employees
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string				true	"Employee id"
//	@Param		request	body	dto.CarRequestDTO	true	"Car"
//	@Security	BearerAuth
//	@Success	201	{object}	dto.CarResponseDTO
//	@Failure	422	{object}	utils.Response	"Invalid car"
//	@Router		/api/employees/{id}/cars [post]
func (h *EmployeeHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var req dto.CarRequestDTO
	if err := apierr.Decode(r, &req); err != nil {
		apierr.Respond(w, err)
		return
	}
	id := chi.URLParam(r, "id")
	car, err := h.carService.CreateCar(r.Context(), &id, req.CarModel, req.Plate, req.FuelID, req.IsEaaCar)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCarResponse(*car))
}

// GetCars godoc
//
//	@Summary	List the cars of an employee
//	@Tags		Employees
//	@Produce	json
//	@Param		id	path	string	true	"Employee id"
//	@Security	BearerAuth
//	@Success	200	{array}	dto.CarResponseDTO
//	@Router		/api/employees/{id}/cars [get]
func (h *EmployeeHandler) GetCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.carService.ListCarsByEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCarsResponse(cars))
}
