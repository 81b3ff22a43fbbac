package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
)

type FuelRequestDTO struct {
	Name  string          `json:"name" validate:"required,max=50" example:"Diesel"`
	Price decimal.Decimal `json:"price" validate:"gte=0" swaggertype:"number" example:"0.62"`
}

type FuelResponseDTO struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price" swaggertype:"number"`
}

func NewFuelResponse(f domain.Fuel) FuelResponseDTO {
	return FuelResponseDTO{ID: f.ID, Name: f.Name, Price: f.Price}
}

type CarRequestDTO struct {
	CarModel string `json:"carModel" validate:"max=100" example:"Toyota Hilux"`
	Plate    string `json:"plate" validate:"required,max=20" example:"12345 A"`
	FuelID   string `json:"fuelId" validate:"required"`
	IsEaaCar bool   `json:"isEaaCar,omitempty"`
}

// CarUpdateRequestDTO replaces a car in full. Leaving employeeId out hands
// the car to the organisation.
type CarUpdateRequestDTO struct {
	CarRequestDTO
	EmployeeID *string `json:"employeeId,omitempty" validate:"omitempty,min=1"`
}

type CarResponseDTO struct {
	ID         string    `json:"id"`
	EmployeeID *string   `json:"employeeId,omitempty"`
	CarModel   string    `json:"carModel"`
	Plate      string    `json:"plate"`
	FuelID     string    `json:"fuelId"`
	IsEaaCar   bool      `json:"isEaaCar"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewCarResponse(c domain.Car) CarResponseDTO {
	return CarResponseDTO{
		ID:         c.ID,
		EmployeeID: c.EmployeeID,
		CarModel:   c.CarModel,
		Plate:      c.Plate,
		FuelID:     c.FuelID,
		IsEaaCar:   c.IsEaaCar,
		CreatedAt:  c.CreatedAt,
	}
}

func NewCarsResponse(cars []domain.Car) []CarResponseDTO {
	out := make([]CarResponseDTO, 0, len(cars))
	for _, c := range cars {
		out = append(out, NewCarResponse(c))
	}
	return out
}

type MaintenanceRequestDTO struct {
	CarID       string          `json:"carId" validate:"required"`
	Description string          `json:"description" validate:"max=500"`
	Cost        decimal.Decimal `json:"cost" validate:"gte=0" swaggertype:"number"`
	OdoMeter    int64           `json:"odoMeter" validate:"gte=0"`
	Types       []string        `json:"types" validate:"required,min=1,dive,required"`
}

type MaintenanceResponseDTO struct {
	ID          string                   `json:"id"`
	CarID       string                   `json:"carId"`
	Description string                   `json:"description"`
	Cost        decimal.Decimal          `json:"cost" swaggertype:"number"`
	OdoMeter    int64                    `json:"odoMeter"`
	Types       []domain.MaintenanceType `json:"types"`
	CreatedAt   time.Time                `json:"createdAt"`
}

func NewMaintenanceResponse(m domain.Maintenance) MaintenanceResponseDTO {
	types := m.Types
	if types == nil {
		types = []domain.MaintenanceType{}
	}
	return MaintenanceResponseDTO{
		ID:          m.ID,
		CarID:       m.CarID,
		Description: m.Description,
		Cost:        m.Cost,
		OdoMeter:    m.OdoMeter,
		Types:       types,
		CreatedAt:   m.CreatedAt,
	}
}

type EaaBundleResponseDTO struct {
	Cars  []CarResponseDTO         `json:"cars"`
	Types []domain.MaintenanceType `json:"maintenanceTypes"`
}

type FormDataResponseDTO struct {
	Employees []EmployeeResponseDTO `json:"employees"`
	Tanks     []TankResponseDTO     `json:"tanks"`
	Cars      []CarResponseDTO      `json:"cars"`
}
