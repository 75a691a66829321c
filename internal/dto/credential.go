package dto

import "time"

type CreateCredentialRequestDTO struct {
	Platform    string     `json:"platform" example:"meta"`
	Name        string     `json:"name" example:"Main ad account"`
	AccessToken string     `json:"access_token" example:"EAAB..."`
	AccountID   string     `json:"account_id" example:"act_1234567890"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty" example:"2026-05-09T12:00:00Z"`
}

type CredentialResponseDTO struct {
	ID           string     `json:"id" example:"0b8e7f5a-5d0c-4c8e-8a3e-4b1f6c2d9a10"`
	Platform     string     `json:"platform" example:"meta"`
	Name         string     `json:"name" example:"Main ad account"`
	AccountID    string     `json:"account_id" example:"act_1234567890"`
	TokenPreview string     `json:"token_preview" example:"EAAB...9xYz"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty" example:"2026-05-09T12:00:00Z"`
	Status       string     `json:"status" example:"active"`
	CreatedAt    time.Time  `json:"created_at" example:"2026-03-10T14:05:00Z"`
}
