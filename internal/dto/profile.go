package dto

import "time"

type LimitsDTO struct {
	Webhooks   int `json:"webhooks" example:"3"`
	AdAccounts int `json:"ad_accounts" example:"2"`
}

type ProfileResponseDTO struct {
	UserID        int       `json:"user_id" example:"1"`
	FullName      string    `json:"full_name" example:"Ana Souza"`
	Plan          string    `json:"plan" example:"trial"`
	TrialEndsAt   time.Time `json:"trial_ends_at" example:"2026-03-17T12:00:00Z"`
	TrialDaysLeft int       `json:"trial_days_left" example:"7"`
	Active        bool      `json:"active" example:"true"`
	PeakRevenue   float64   `json:"peak_revenue" example:"1520.9"`
	Limits        LimitsDTO `json:"limits"`
}
