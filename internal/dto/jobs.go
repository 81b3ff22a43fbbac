package dto

type QuotaResetResponseDTO struct {
	Reset int64 `json:"reset" example:"12"`
}
