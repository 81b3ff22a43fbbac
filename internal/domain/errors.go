package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrConflict         = errors.New("conflict")
	ErrCapacityExceeded = errors.New("tank capacity exceeded")
	ErrInsufficientFuel = errors.New("insufficient fuel in tank")
	ErrQuotaExceeded    = errors.New("employee quota exceeded")
)
