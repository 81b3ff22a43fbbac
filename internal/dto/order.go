package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
)

type CreateOrderRequestDTO struct {
	TankID   string          `json:"tankId" validate:"required" example:"5f0c..."`
	FuelID   string          `json:"fuelId,omitempty" example:"diesel"`
	Amount   decimal.Decimal `json:"amount" validate:"gt=0,litres" swaggertype:"number" example:"300"`
	Number   *string         `json:"number,omitempty" example:"PO-2024-17"`
	Override bool            `json:"override,omitempty"`
}

func (r CreateOrderRequestDTO) Command() domain.NewOrder {
	return domain.NewOrder{
		TankID:   r.TankID,
		FuelID:   r.FuelID,
		Amount:   r.Amount,
		Number:   r.Number,
		Override: r.Override,
	}
}

type UpdateOrderRequestDTO struct {
	TankID   *string          `json:"tankId,omitempty" validate:"omitempty,min=1"`
	FuelID   *string          `json:"fuelId,omitempty" validate:"omitempty,min=1"`
	Amount   *decimal.Decimal `json:"amount,omitempty" validate:"omitempty,gt=0,litres" swaggertype:"number"`
	Number   *string          `json:"number,omitempty"`
	Override bool             `json:"override,omitempty"`
}

func (r UpdateOrderRequestDTO) Patch() domain.OrderPatch {
	return domain.OrderPatch{
		TankID:   r.TankID,
		FuelID:   r.FuelID,
		Amount:   r.Amount,
		Number:   r.Number,
		Override: r.Override,
	}
}

type OrderResponseDTO struct {
	ID        string          `json:"id"`
	Number    *string         `json:"number,omitempty"`
	TankID    string          `json:"tankId"`
	FuelID    string          `json:"fuelId"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"number"`
	CreatedAt time.Time       `json:"createdAt"`
}

func NewOrderResponse(o domain.Order) OrderResponseDTO {
	return OrderResponseDTO{
		ID:        o.ID,
		Number:    o.Number,
		TankID:    o.TankID,
		FuelID:    o.FuelID,
		Amount:    o.Amount,
		CreatedAt: o.CreatedAt,
	}
}
