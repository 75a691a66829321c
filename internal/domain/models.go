package domain

import (
	"encoding/json"
	"time"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Profile struct {
	UserID      int       `db:"user_id"`
	FullName    string    `db:"full_name"`
	Plan        string    `db:"plan"`
	TrialEndsAt time.Time `db:"trial_ends_at"`
	PeakRevenue float64   `db:"peak_revenue"`
	CreatedAt   time.Time `db:"created_at"`
}

type Sale struct {
	ID            string          `db:"id"`
	UserID        int             `db:"user_id"`
	Amount        float64         `db:"amount"`
	Status        string          `db:"status"`
	CustomerEmail string          `db:"customer_email"`
	RawData       json.RawMessage `db:"raw_data"`
	CreatedAt     time.Time       `db:"created_at"`
}

type Webhook struct {
	ID        string    `db:"id"`
	UserID    int       `db:"user_id"`
	Platform  string    `db:"platform"`
	Name      string    `db:"name"`
	Token     string    `db:"token"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

type APICredential struct {
	ID          string     `db:"id"`
	UserID      int        `db:"user_id"`
	Platform    string     `db:"platform"`
	Name        string     `db:"name"`
	AccessToken string     `db:"access_token"`
	AccountID   string     `db:"account_id"`
	ExpiresAt   *time.Time `db:"expires_at"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
}

type LiveVisitor struct {
	SessionID  string    `db:"session_id"`
	UserID     int       `db:"user_id"`
	PageURL    string    `db:"page_url"`
	Country    string    `db:"country"`
	Region     string    `db:"region"`
	City       string    `db:"city"`
	LastSeenAt time.Time `db:"last_seen_at"`
}

type AdSpend struct {
	UserID    int       `db:"user_id"`
	AccountID string    `db:"account_id"`
	Date      time.Time `db:"date"`
	Spend     float64   `db:"spend"`
	UpdatedAt time.Time `db:"updated_at"`
}

const (
	SaleStatusPending     = "pending"
	SaleStatusApproved    = "approved"
	SaleStatusPaid        = "paid"
	SaleStatusRefunded    = "refunded"
	SaleStatusChargedback = "chargedback"
	SaleStatusCancelled   = "cancelled"
	SaleStatusDeclined    = "declined"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

const PlatformMeta = "meta"
