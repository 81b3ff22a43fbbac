package dto

import (
	"time"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
)

type RegisterRequestDTO struct {
	Name     string `json:"name" validate:"max=100"`
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type UserResponseDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Login     string    `json:"login"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUserResponse(u domain.User) UserResponseDTO {
	return UserResponseDTO{ID: u.ID, Name: u.Name, Login: u.Login, Email: u.Email, CreatedAt: u.CreatedAt}
}

type ValidateTokenRequestDTO struct {
	Token string `json:"token" validate:"required"`
}

type ValidateTokenResponseDTO struct {
	Valid     bool       `json:"valid"`
	UserID    string     `json:"userId,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	Error     string     `json:"error,omitempty"`
}
