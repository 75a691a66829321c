package dto

import "time"

type OAuthRequestDTO struct {
	Action      string `json:"action" example:"exchange-code"`
	Code        string `json:"code,omitempty" example:"AQD..."`
	RedirectURI string `json:"redirectUri" example:"https://app.example.com/integrations/meta"`
}

type AuthURLResponseDTO struct {
	URL   string `json:"url" example:"https://www.facebook.com/v19.0/dialog/oauth?client_id=..."`
	State string `json:"state" example:"9a7c3c1e-6b0d-4f2a-8a0e-1e2f3a4b5c6d"`
}

type MetaUserDTO struct {
	ID    string `json:"id" example:"1029384756"`
	Name  string `json:"name" example:"Ana Souza"`
	Email string `json:"email,omitempty" example:"ana@example.com"`
}

type MetaAdAccountDTO struct {
	ID            string `json:"id" example:"act_1234567890"`
	AccountID     string `json:"account_id" example:"1234567890"`
	Name          string `json:"name" example:"Main ad account"`
	AccountStatus int    `json:"account_status" example:"1"`
	Currency      string `json:"currency" example:"BRL"`
}

type ExchangeResponseDTO struct {
	AccessToken string             `json:"access_token" example:"EAAB..."`
	ExpiresIn   int64              `json:"expires_in" example:"5184000"`
	ExpiresAt   *time.Time         `json:"expires_at,omitempty" example:"2026-05-09T12:00:00Z"`
	User        MetaUserDTO        `json:"user"`
	AdAccounts  []MetaAdAccountDTO `json:"ad_accounts"`
}
