package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
)

type CreateTransactionRequestDTO struct {
	TankID     string                   `json:"tankId" validate:"required"`
	EmployeeID string                   `json:"employeeId" validate:"required"`
	CarID      string                   `json:"carId" validate:"required"`
	Amount     decimal.Decimal          `json:"amount" validate:"gt=0,litres" swaggertype:"number" example:"120"`
	Status     domain.TransactionStatus `json:"status,omitempty" validate:"omitempty,oneof=pending approved completed rejected" swaggertype:"string" example:"pending"`
	Override   bool                     `json:"override,omitempty"`
}

func (r CreateTransactionRequestDTO) Command() domain.NewTransaction {
	return domain.NewTransaction{
		TankID:     r.TankID,
		EmployeeID: r.EmployeeID,
		CarID:      r.CarID,
		Amount:     r.Amount,
		Status:     r.Status,
		Override:   r.Override,
	}
}

type UpdateTransactionRequestDTO struct {
	TankID     *string                   `json:"tankId,omitempty" validate:"omitempty,min=1"`
	EmployeeID *string                   `json:"employeeId,omitempty" validate:"omitempty,min=1"`
	CarID      *string                   `json:"carId,omitempty" validate:"omitempty,min=1"`
	Amount     *decimal.Decimal          `json:"amount,omitempty" validate:"omitempty,gt=0,litres" swaggertype:"number"`
	Status     *domain.TransactionStatus `json:"status,omitempty" validate:"omitempty,oneof=pending approved completed rejected" swaggertype:"string"`
	Override   bool                      `json:"override,omitempty"`
}

func (r UpdateTransactionRequestDTO) Patch() domain.TransactionPatch {
	return domain.TransactionPatch{
		TankID:     r.TankID,
		EmployeeID: r.EmployeeID,
		CarID:      r.CarID,
		Amount:     r.Amount,
		Status:     r.Status,
		Override:   r.Override,
	}
}

type TransactionResponseDTO struct {
	ID         string                   `json:"id"`
	TankID     string                   `json:"tankId"`
	EmployeeID string                   `json:"employeeId"`
	CarID      string                   `json:"carId"`
	Amount     decimal.Decimal          `json:"amount" swaggertype:"number"`
	Status     domain.TransactionStatus `json:"status" swaggertype:"string"`
	CreatedAt  time.Time                `json:"createdAt"`
}

func NewTransactionResponse(tr domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:         tr.ID,
		TankID:     tr.TankID,
		EmployeeID: tr.EmployeeID,
		CarID:      tr.CarID,
		Amount:     tr.Amount,
		Status:     tr.Status,
		CreatedAt:  tr.CreatedAt,
	}
}

func NewTransactionsResponse(trs []domain.Transaction) []TransactionResponseDTO {
	out := make([]TransactionResponseDTO, 0, len(trs))
	for _, tr := range trs {
		out = append(out, NewTransactionResponse(tr))
	}
	return out
}

type CountResponseDTO struct {
	Count int64 `json:"count" example:"3"`
}

type PendingCarDTO struct {
	CarResponseDTO
	Fuel FuelResponseDTO `json:"fuel"`
}

// PendingTransactionResponseDTO is a pending transaction with the records the
// approval table shows next to it.
type PendingTransactionResponseDTO struct {
	TransactionResponseDTO
	Tank     TankResponseDTO     `json:"tank"`
	Employee EmployeeResponseDTO `json:"employee"`
	Car      PendingCarDTO       `json:"car"`
}

func NewPendingResponse(details []domain.TransactionDetails) []PendingTransactionResponseDTO {
	out := make([]PendingTransactionResponseDTO, 0, len(details))
	for _, d := range details {
		out = append(out, PendingTransactionResponseDTO{
			TransactionResponseDTO: NewTransactionResponse(d.Transaction),
			Tank:                   NewTankResponse(d.Tank),
			Employee:               NewEmployeeResponse(d.Employee),
			Car: PendingCarDTO{
				CarResponseDTO: NewCarResponse(d.Car),
				Fuel:           NewFuelResponse(d.CarFuel),
			},
		})
	}
	return out
}
