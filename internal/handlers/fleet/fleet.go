package fleet

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

//go:generate mockgen -source=fleet.go -destination=mock_fleet.go -package=fleet

type Service interface {
	CreateFuel(ctx context.Context, name string, price decimal.Decimal) (*domain.Fuel, error)
	UpdateFuel(ctx context.Context, id, name string, price decimal.Decimal) (*domain.Fuel, error)
	GetFuel(ctx context.Context, id string) (*domain.Fuel, error)
	ListFuels(ctx context.Context) ([]domain.Fuel, error)
	DeleteFuel(ctx context.Context, id string) error

	CreateCar(ctx context.Context, employeeID *string, model, plate, fuelID string, eaa bool) (*domain.Car, error)
	UpdateCar(ctx context.Context, id string, employeeID *string, model, plate, fuelID string, eaa bool) (*domain.Car, error)
	GetCar(ctx context.Context, id string) (*domain.Car, error)
	ListCars(ctx context.Context) ([]domain.Car, error)
	ListCarsByEmployee(ctx context.Context, employeeID string) ([]domain.Car, error)
	ListEaaCars(ctx context.Context) ([]domain.Car, error)
	DeleteCar(ctx context.Context, id string) error

	CreateMaintenance(ctx context.Context, carID, description string, cost decimal.Decimal, odo int64, typeIDs []string) (*domain.Maintenance, error)
	UpdateMaintenance(ctx context.Context, id, carID, description string, cost decimal.Decimal, odo int64, typeIDs []string) (*domain.Maintenance, error)
	GetMaintenance(ctx context.Context, id string) (*domain.Maintenance, error)
	ListMaintenance(ctx context.Context) ([]domain.Maintenance, error)
	DeleteMaintenance(ctx context.Context, id string) error
	ListMaintenanceTypes(ctx context.Context) ([]domain.MaintenanceType, error)

	EaaBundle(ctx context.Context) (*domain.EaaBundle, error)
	FormData(ctx context.Context) (*domain.FormData, error)
}

// FleetHandler serves the reference data around the balance workflows:
// fuels, cars, maintenance records and the bundles the entry forms load.
type FleetHandler struct {
	fleetService Service
}

func New(fleetService Service) *FleetHandler {
	return &FleetHandler{fleetService: fleetService}
}

// CreateFuel godoc
//
//	@Summary	Add a fuel type
//	@Tags		Fuels
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.FuelRequestDTO	true	"Fuel"
//	@Security	BearerAuth
//	@Success	201	{object}	dto.FuelResponseDTO
//	@Failure	422	{object}	utils.Response	"Invalid fuel"
//	@Router		/api/fuels [post]
func (h *FleetHandler) CreateFuel(w http.ResponseWriter, r *http.Request) {
	var req dto.FuelRequestDTO
	if err := apierr.Decode(r, &req); err != nil {
		apierr.Respond(w, err)
		return
	}
	fuel, err := h.fleetService.CreateFuel(r.Context(), req.Name, req.Price)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewFuelResponse(*fuel))
}

// UpdateFuel godoc
//
//	@Summary	Change a fuel type
//	@Tags		Fuels
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string				true	"Fuel id"
//	@Param		request	body	dto.FuelRequestDTO	true	"Fuel"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.FuelResponseDTO
//	@Failure	404	{object}	utils.Response	"Fuel not found"
//	@Router		/api/fuels/{id} [put]
func (h *FleetHandler) UpdateFuel(w http.ResponseWriter, r *http.Request) {
	var req dto.FuelRequestDTO
	if err := apierr.Decode(r, &req); err != nil {
		apierr.Respond(w, err)
		return
	}
	fuel, err := h.fleetService.UpdateFuel(r.Context(), chi.URLParam(r, "id"), req.Name, req.Price)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewFuelResponse(*fuel))
}

// GetFuel godoc
//
//	@Summary	Get a fuel type
//	@Tags		Fuels
//	@Produce	json
//	@Param		id	path	string	true	"Fuel id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.FuelResponseDTO
//	@Failure	404	{object}	utils.Response	"Fuel not found"
//	@Router		/api/fuels/{id} [get]
func (h *FleetHandler) GetFuel(w http.ResponseWriter, r *http.Request) {
	fuel, err := h.fleetService.GetFuel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewFuelResponse(*fuel))
}

// GetFuels godoc
//
//	@Summary	List fuel types
//	@Tags		Fuels
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.FuelResponseDTO
//	@Router		/api/fuels [get]
func (h *FleetHandler) GetFuels(w http.ResponseWriter, r *http.Request) {
	fuels, err := h.fleetService.ListFuels(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	response := make([]dto.FuelResponseDTO, 0, len(fuels))
	for _, f := range fuels {
		response = append(response, dto.NewFuelResponse(f))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// DeleteFuel godoc
//
//	@Summary	Remove a fuel type
//	@Tags		Fuels
//	@Param		id	path	string	true	"Fuel id"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Fuel not found"
//	@Failure	409	{object}	utils.Response	"Fuel still in use"
//	@Router		/api/fuels/{id} [delete]
func (h *FleetHandler) DeleteFuel(w http.ResponseWriter, r *http.Request) {
	if err := h.fleetService.DeleteFuel(r.Context(), chi.URLParam(r, "id")); err != nil {
		apierr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateCar godoc
//
//	@Summary	Add an organisation car
//	@Tags		Cars
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.CarRequestDTO	true	"Car"
//	@Security	BearerAuth
//	@Success	201	{object}	dto.CarResponseDTO
//	@Failure	422	{object}	utils.Response	"Invalid car"
//	@Router		/api/cars [post]
func (h *FleetHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var req dto.CarRequestDTO
	if err := apierr.Decode(r, &req); err != nil {
		apierr.Respond(w, err)
		return
	}
	car, err := h.fleetService.CreateCar(r.Context(), nil, req.CarModel, req.Plate, req.FuelID, req.IsEaaCar)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCarResponse(*car))
}

// UpdateCar godoc
//
//	@Summary		Change a car
//	@Description	Replaces every field, the owner included. Without employeeId the car belongs to the organisation.
//	@Tags			Cars
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"Car id"
//	@Param			request	body	dto.CarUpdateRequestDTO	true	"Car"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CarResponseDTO
//	@Failure		404	{object}	utils.Response	"Car not found"
//	@Failure		422	{object}	utils.Response	"Invalid car"
//	@Router			/api/cars/{id} [put]
func (h *FleetHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	var req dto.CarUpdateRequestDTO
	if err := apierr.Decode(r, &req); err != nil {
		apierr.Respond(w, err)
		return
	}
	car, err := h.fleetService.UpdateCar(r.Context(), chi.URLParam(r, "id"), req.EmployeeID, req.CarModel, req.Plate, req.FuelID, req.IsEaaCar)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCarResponse(*car))
}

// GetCars godoc
//
//	@Summary	List every car
//	@Tags		Cars
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.CarResponseDTO
//	@Router		/api/cars [get]
func (h *FleetHandler) GetCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.fleetService.ListCars(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCarsResponse(cars))
}

// GetCar godoc
//
//	@Summary	Get a car
//	@Tags		Cars
//	@Produce	json
//	@Param		id	path	string	true	"Car id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.CarResponseDTO
//	@Failure	404	{object}	utils.Response	"Car not found"
//	@Router		/api/cars/{id} [get]
func (h *FleetHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	car, err := h.fleetService.GetCar(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCarResponse(*car))
}

// GetEaaCars godoc
//
//	@Summary	List organisation cars
//	@Tags		Cars
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.CarResponseDTO
//	@Router		/api/cars/eaa [get]
func (h *FleetHandler) GetEaaCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.fleetService.ListEaaCars(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCarsResponse(cars))
}

// DeleteCar godoc
//
//	@Summary	Remove a car and its maintenance records
//	@Tags		Cars
//	@Param		id	path	string	true	"Car id"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Car not found"
//	@Failure	409	{object}	utils.Response	"Car has transactions"
//	@Router		/api/cars/{id} [delete]
func (h *FleetHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	if err := h.fleetService.DeleteCar(r.Context(), chi.URLParam(r, "id")); err != nil {
		apierr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateMaintenance godoc
//
//	@Summary	Record car maintenance
//	@Tags		Maintenance
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.MaintenanceRequestDTO	true	"Maintenance"
//	@Security	BearerAuth
//	@Success	201	{object}	dto.MaintenanceResponseDTO
//	@Failure	404	{object}	utils.Response	"Car not found"
//	@Failure	422	{object}	utils.Response	"Invalid maintenance"
//	@Router		/api/maintenance [post]
func (h *FleetHandler) CreateMaintenance(w http.ResponseWriter, r *http.Request) {
	var req dto.MaintenanceRequestDTO
	if err := apierr.Decode(r, &req); err != nil {
		apierr.Respond(w, err)
		return
	}
	m, err := h.fleetService.CreateMaintenance(r.Context(), req.CarID, req.Description, req.Cost, req.OdoMeter, req.Types)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewMaintenanceResponse(*m))
}

// UpdateMaintenance godoc
//
//	@Summary	Change a maintenance record and its types
//	@Tags		Maintenance
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string						true	"Maintenance id"
//	@Param		request	body	dto.MaintenanceRequestDTO	true	"Maintenance"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.MaintenanceResponseDTO
//	@Failure	404	{object}	utils.Response	"Maintenance or car not found"
//	@Failure	422	{object}	utils.Response	"Invalid maintenance"
//	@Router		/api/maintenance/{id} [put]
func (h *FleetHandler) UpdateMaintenance(w http.ResponseWriter, r *http.Request) {
	var req dto.MaintenanceRequestDTO
	if err := apierr.Decode(r, &req); err != nil {
		apierr.Respond(w, err)
		return
	}
	m, err := h.fleetService.UpdateMaintenance(r.Context(), chi.URLParam(r, "id"), req.CarID, req.Description, req.Cost, req.OdoMeter, req.Types)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMaintenanceResponse(*m))
}

// GetMaintenance godoc
//
//	@Summary	Get a maintenance record
//	@Tags		Maintenance
//	@Produce	json
//	@Param		id	path	string	true	"Maintenance id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.MaintenanceResponseDTO
//	@Failure	404	{object}	utils.Response	"Maintenance not found"
//	@Router		/api/maintenance/{id} [get]
func (h *FleetHandler) GetMaintenance(w http.ResponseWriter, r *http.Request) {
	m, err := h.fleetService.GetMaintenance(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMaintenanceResponse(*m))
}

// GetMaintenanceList godoc
//
//	@Summary	List maintenance records
//	@Tags		Maintenance
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.MaintenanceResponseDTO
//	@Router		/api/maintenance [get]
func (h *FleetHandler) GetMaintenanceList(w http.ResponseWriter, r *http.Request) {
	records, err := h.fleetService.ListMaintenance(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	response := make([]dto.MaintenanceResponseDTO, 0, len(records))
	for _, m := range records {
		response = append(response, dto.NewMaintenanceResponse(m))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// DeleteMaintenance godoc
//
//	@Summary	Remove a maintenance record
//	@Tags		Maintenance
//	@Param		id	path	string	true	"Maintenance id"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Maintenance not found"
//	@Router		/api/maintenance/{id} [delete]
func (h *FleetHandler) DeleteMaintenance(w http.ResponseWriter, r *http.Request) {
	if err := h.fleetService.DeleteMaintenance(r.Context(), chi.URLParam(r, "id")); err != nil {
		apierr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetMaintenanceTypes godoc
//
//	@Summary	List maintenance types
//	@Tags		Maintenance
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	domain.MaintenanceType
//	@Router		/api/maintenance/types [get]
func (h *FleetHandler) GetMaintenanceTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.fleetService.ListMaintenanceTypes(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	if types == nil {
		types = []domain.MaintenanceType{}
	}
	utils.RespondWithJSON(w, http.StatusOK, types)
}

// GetEaaBundle godoc
//
//	@Summary	Organisation cars with maintenance types
//	@Tags		Maintenance
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.EaaBundleResponseDTO
//	@Router		/api/maintenance/eaa [get]
func (h *FleetHandler) GetEaaBundle(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.fleetService.EaaBundle(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	types := bundle.Types
	if types == nil {
		types = []domain.MaintenanceType{}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EaaBundleResponseDTO{
		Cars:  dto.NewCarsResponse(bundle.Cars),
		Types: types,
	})
}

// GetFormData godoc
//
//	@Summary		Reference lists for the dispense form
//	@Description	Employees with their cars, tanks and all cars in one response.
//	@Tags			Transactions
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.FormDataResponseDTO
//	@Router			/api/data [get]
func (h *FleetHandler) GetFormData(w http.ResponseWriter, r *http.Request) {
	data, err := h.fleetService.FormData(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FormDataResponseDTO{
		Employees: dto.NewEmployeesResponse(data.Employees),
		Tanks:     dto.NewTanksResponse(data.Tanks),
		Cars:      dto.NewCarsResponse(data.Cars),
	})
}
