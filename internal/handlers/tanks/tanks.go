package tanks

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

//go:generate mockgen -source=tanks.go -destination=mock_tanks.go -package=tanks

type Service interface {
	Create(ctx context.Context, name, fuelID string, capacity, level decimal.Decimal) (*domain.Tank, error)
	Update(ctx context.Context, id, name, fuelID string, capacity decimal.Decimal, level *decimal.Decimal) (*domain.Tank, error)
	Get(ctx context.Context, id string) (*domain.Tank, error)
	List(ctx context.Context) ([]domain.Tank, error)
	Ledger(ctx context.Context, id string) (*domain.TankLedger, error)
}

type TankHandler struct {
	tankService Service
}

func New(tankService Service) *TankHandler {
	return &TankHandler{tankService: tankService}
}

// CreateTank godoc
//
//	@Summary	Add a storage tank
//	@Tags		Tanks
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.TankRequestDTO	true	"Tank"
//	@Security	BearerAuth
//	@Success	201	{object}	dto.TankResponseDTO
//	@Failure	422	{object}	utils.Response	"Invalid tank"
//	@Router		/api/tanks [post]
func (h *TankHandler) CreateTank(w http.ResponseWriter, r *http.Request) {
	var req dto.TankRequestDTO
	if err := apierr.Decode(r, &req); err != nil {
		apierr.Respond(w, err)
		return
	}
	level := decimal.Zero
	if req.CurrentLevel != nil {
		level = *req.CurrentLevel
	}
	tank, err := h.tankService.Create(r.Context(), req.Name, req.FuelID, req.Capacity, level)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTankResponse(*tank))
}

// UpdateTank godoc
//
//	@Summary		Change a storage tank
//	@Description	currentLevel is an operator correction; leave it out to keep the stored level.
//	@Tags			Tanks
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string				true	"Tank id"
//	@Param			request	body	dto.TankRequestDTO	true	"Tank"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TankResponseDTO
//	@Failure		404	{object}	utils.Response	"Tank not found"
//	@Failure		422	{object}	utils.Response	"Invalid tank"
//	@Router			/api/tanks/{id} [put]
func (h *TankHandler) UpdateTank(w http.ResponseWriter, r *http.Request) {
	var req dto.TankRequestDTO
	if err := apierr.Decode(r, &req); err != nil {
		apierr.Respond(w, err)
		return
	}
	tank, err := h.tankService.Update(r.Context(), chi.URLParam(r, "id"), req.Name, req.FuelID, req.Capacity, req.CurrentLevel)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTankResponse(*tank))
}

// GetTank godoc
//
//	@Summary	Get a storage tank
//	@Tags		Tanks
//	@Produce	json
//	@Param		id	path	string	true	"Tank id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.TankResponseDTO
//	@Failure	404	{object}	utils.Response	"Tank not found"
//	@Router		/api/tanks/{id} [get]
func (h *TankHandler) GetTank(w http.ResponseWriter, r *http.Request) {
	tank, err := h.tankService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTankResponse(*tank))
}

// GetTanks godoc
//
//	@Summary	List storage tanks
//	@Tags		Tanks
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.TankResponseDTO
//	@Router		/api/tanks [get]
func (h *TankHandler) GetTanks(w http.ResponseWriter, r *http.Request) {
	tanks, err := h.tankService.List(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTanksResponse(tanks))
}

// GetLedger godoc
//
//	@Summary		Compare a tank level with its history
//	@Description	Shows the stored level next to the level derived from orders and dispenses.
//	@Tags			Tanks
//	@Produce		json
//	@Param			id	path	string	true	"Tank id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TankLedgerResponseDTO
//	@Failure		404	{object}	utils.Response	"Tank not found"
//	@Router			/api/tanks/{id}/ledger [get]
func (h *TankHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	ledger, err := h.tankService.Ledger(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTankLedgerResponse(*ledger))
}
