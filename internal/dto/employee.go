package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
)

type EmployeeRequestDTO struct {
	Name         string           `json:"name" validate:"required,max=100"`
	Phone        string           `json:"phone,omitempty"`
	Email        string           `json:"email,omitempty" validate:"omitempty,email"`
	Team         string           `json:"team,omitempty"`
	Major        string           `json:"major,omitempty"`
	InitialQuota decimal.Decimal  `json:"initialQuota" validate:"gte=0,litres" swaggertype:"number" example:"200"`
	Quota        *decimal.Decimal `json:"quota,omitempty" validate:"omitempty,litres" swaggertype:"number"`
	StartDate    *time.Time       `json:"startDate,omitempty"`
}

func (r EmployeeRequestDTO) Employee() domain.Employee {
	return domain.Employee{
		Name:         r.Name,
		Phone:        r.Phone,
		Email:        r.Email,
		Team:         r.Team,
		Major:        r.Major,
		InitialQuota: r.InitialQuota,
		StartDate:    r.StartDate,
	}
}

type EmployeeResponseDTO struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Phone        string           `json:"phone,omitempty"`
	Email        string           `json:"email,omitempty"`
	Team         string           `json:"team,omitempty"`
	Major        string           `json:"major,omitempty"`
	Quota        decimal.Decimal  `json:"quota" swaggertype:"number"`
	InitialQuota decimal.Decimal  `json:"initialQuota" swaggertype:"number"`
	StartDate    *time.Time       `json:"startDate,omitempty"`
	Cars         []CarResponseDTO `json:"cars"`
	CreatedAt    time.Time        `json:"createdAt"`
}

func NewEmployeeResponse(e domain.Employee) EmployeeResponseDTO {
	return EmployeeResponseDTO{
		ID:           e.ID,
		Name:         e.Name,
		Phone:        e.Phone,
		Email:        e.Email,
		Team:         e.Team,
		Major:        e.Major,
		Quota:        e.Quota,
		InitialQuota: e.InitialQuota,
		StartDate:    e.StartDate,
		Cars:         NewCarsResponse(e.Cars),
		CreatedAt:    e.CreatedAt,
	}
}

func NewEmployeesResponse(employees []domain.Employee) []EmployeeResponseDTO {
	out := make([]EmployeeResponseDTO, 0, len(employees))
	for _, e := range employees {
		out = append(out, NewEmployeeResponse(e))
	}
	return out
}
