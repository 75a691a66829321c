package dto

import "time"

type CreateWebhookRequestDTO struct {
	Platform string `json:"platform" example:"kiwify"`
	Name     string `json:"name" example:"Main store"`
}

type WebhookResponseDTO struct {
	ID        string    `json:"id" example:"7d1f3c1e-2b9c-4f0a-9b7e-2a6f1d0c9e11"`
	Platform  string    `json:"platform" example:"kiwify"`
	Name      string    `json:"name" example:"Main store"`
	Token     string    `json:"token" example:"9b1c0f5e2d7a4c8b9e3f1a2b3c4d5e6f"`
	Status    string    `json:"status" example:"active"`
	CreatedAt time.Time `json:"created_at" example:"2026-03-10T14:05:00Z"`
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status" example:"inactive"`
}
