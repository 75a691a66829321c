package dto

import (
	"encoding/json"
	"time"
)

type TrackRequestDTO struct {
	UserID    json.Number `json:"user_id" swaggertype:"string" example:"42"`
	SessionID string      `json:"session_id" example:"s-1700000000-abc"`
	PageURL   string      `json:"page_url" example:"https://shop.example.com/offer"`
	Action    string      `json:"action" example:"heartbeat"`
}

type TrackResponseDTO struct {
	Success bool `json:"success" example:"true"`
}

type LiveVisitorDTO struct {
	SessionID  string    `json:"session_id" example:"s-1700000000-abc"`
	PageURL    string    `json:"page_url" example:"https://shop.example.com/offer"`
	Country    string    `json:"country" example:"Brazil"`
	Region     string    `json:"region" example:"São Paulo"`
	City       string    `json:"city" example:"Campinas"`
	LastSeenAt time.Time `json:"last_seen_at" example:"2026-03-10T14:05:00Z"`
}

type LiveVisitorsResponseDTO struct {
	Count    int              `json:"count" example:"1"`
	Visitors []LiveVisitorDTO `json:"visitors"`
}
