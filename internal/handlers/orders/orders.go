package orders

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/internal/dto"
	"github.com/GlebRadaev/fuelfleet/internal/handlers/apierr"
	"github.com/GlebRadaev/fuelfleet/pkg/utils"
)

//go:generate mockgen -source=orders.go -destination=mock_orders.go -package=orders

type Service interface {
	Create(ctx context.Context, in domain.NewOrder) (*domain.Order, error)
	Update(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error)
	Delete(ctx context.Context, id string, override bool) error
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrder godoc
//
//	@Summary		Record a fuel delivery
//	@Description	Inserts the order and raises the tank level by its amount in one transaction.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateOrderRequestDTO	true	"Order"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed body"
//	@Failure		404	{object}	utils.Response	"Unknown tank or fuel"
//	@Failure		409	{object}	utils.Response	"Tank capacity exceeded"
//	@Failure		422	{object}	utils.Response	"Invalid order"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequestDTO
	if err := apierr.Decode(r, &req); err != nil {
		apierr.Respond(w, err)
		return
	}
	order, err := h.orderService.Create(r.Context(), req.Command())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewOrderResponse(*order))
}

// UpdateOrder godoc
//
//	@Summary		Change a fuel delivery
//	@Description	Adjusts the tank level by the difference between the new and the old amount.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"Order id"
//	@Param			request	body	dto.UpdateOrderRequestDTO	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Balance limit exceeded"
//	@Failure		422	{object}	utils.Response	"Invalid order"
//	@Router			/api/orders/{id} [put]
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateOrderRequestDTO
	if err := apierr.Decode(r, &req); err != nil {
		apierr.Respond(w, err)
		return
	}
	order, err := h.orderService.Update(r.Context(), chi.URLParam(r, "id"), req.Patch())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(*order))
}

// DeleteOrder godoc
//
//	@Summary	Remove a fuel delivery
//	@Tags		Orders
//	@Param		id			path	string	true	"Order id"
//	@Param		override	query	bool	false	"Let a soft fuel policy through"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Order not found"
//	@Failure	409	{object}	utils.Response	"Tank would go below zero"
//	@Router		/api/orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	override, _ := strconv.ParseBool(r.URL.Query().Get("override"))
	if err := h.orderService.Delete(r.Context(), chi.URLParam(r, "id"), override); err != nil {
		apierr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetOrder godoc
//
//	@Summary	Get a fuel delivery
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path	string	true	"Order id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.OrderResponseDTO
//	@Failure	404	{object}	utils.Response	"Order not found"
//	@Router		/api/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(*order))
}

// GetOrders godoc
//
//	@Summary	List fuel deliveries, newest first
//	@Tags		Orders
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.OrderResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.List(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for _, order := range orders {
		response = append(response, dto.NewOrderResponse(order))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
