package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
)

type TankRequestDTO struct {
	Name         string           `json:"name" validate:"required,max=100" example:"North yard"`
	FuelID       string           `json:"fuelId" validate:"required"`
	Capacity     decimal.Decimal  `json:"capacity" validate:"gt=0,litres" swaggertype:"number" example:"1000"`
	CurrentLevel *decimal.Decimal `json:"currentLevel,omitempty" validate:"omitempty,gte=0,litres" swaggertype:"number" example:"200"`
}

type TankResponseDTO struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	FuelID       string          `json:"fuelId"`
	Capacity     decimal.Decimal `json:"capacity" swaggertype:"number"`
	CurrentLevel decimal.Decimal `json:"currentLevel" swaggertype:"number"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func NewTankResponse(t domain.Tank) TankResponseDTO {
	return TankResponseDTO{
		ID:           t.ID,
		Name:         t.Name,
		FuelID:       t.FuelID,
		Capacity:     t.Capacity,
		CurrentLevel: t.CurrentLevel,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func NewTanksResponse(tanks []domain.Tank) []TankResponseDTO {
	out := make([]TankResponseDTO, 0, len(tanks))
	for _, t := range tanks {
		out = append(out, NewTankResponse(t))
	}
	return out
}

type TankLedgerResponseDTO struct {
	TankID       string          `json:"tankId"`
	Stored       decimal.Decimal `json:"stored" swaggertype:"number"`
	OrdersTotal  decimal.Decimal `json:"ordersTotal" swaggertype:"number"`
	DispensedSum decimal.Decimal `json:"dispensedTotal" swaggertype:"number"`
	Derived      decimal.Decimal `json:"derived" swaggertype:"number"`
	Drift        decimal.Decimal `json:"drift" swaggertype:"number"`
}

func NewTankLedgerResponse(l domain.TankLedger) TankLedgerResponseDTO {
	return TankLedgerResponseDTO{
		TankID:       l.TankID,
		Stored:       l.Stored,
		OrdersTotal:  l.OrdersTotal,
		DispensedSum: l.DispensedSum,
		Derived:      l.Derived(),
		Drift:        l.Drift(),
	}
}
