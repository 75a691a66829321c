package dto

import (
	"encoding/json"
	"time"
)

type SaleResponseDTO struct {
	ID            string          `json:"id" example:"5f0c6b8e-8d2a-4a44-9d4f-1f1b2c3d4e5f"`
	Amount        float64         `json:"amount" example:"197"`
	Status        string          `json:"status" example:"approved"`
	CustomerEmail string          `json:"customer_email" example:"buyer@example.com"`
	RawData       json.RawMessage `json:"raw_data" swaggertype:"object"`
	CreatedAt     time.Time       `json:"created_at" example:"2026-03-10T14:05:00-03:00"`
}

type SalesSummaryResponseDTO struct {
	Date        string  `json:"date" example:"2026-03-10"`
	Revenue     float64 `json:"revenue" example:"1520.9"`
	Approved    int     `json:"approved" example:"12"`
	Pending     int     `json:"pending" example:"3"`
	Refunded    int     `json:"refunded" example:"1"`
	Declined    int     `json:"declined" example:"2"`
	RefundRate  float64 `json:"refund_rate" example:"7.69"`
	ARPU        float64 `json:"arpu" example:"126.74"`
	AdSpend     float64 `json:"ad_spend" example:"400"`
	Profit      float64 `json:"profit" example:"1120.9"`
	ROAS        float64 `json:"roas" example:"3.8"`
	ROI         float64 `json:"roi" example:"280.2"`
	PeakRevenue float64 `json:"peak_revenue" example:"2210"`
}

type AttributionRowDTO struct {
	ID            string  `json:"id" example:"120210000000001"`
	Sales         int     `json:"sales" example:"4"`
	Revenue       float64 `json:"revenue" example:"788"`
	RefundedSales int     `json:"refundedSales" example:"1"`
	DeclinedSales int     `json:"declinedSales" example:"0"`
}

type AttributionResponseDTO struct {
	Date      string              `json:"date" example:"2026-03-10"`
	Campaigns []AttributionRowDTO `json:"campaigns"`
	AdSets    []AttributionRowDTO `json:"adSets"`
	Ads       []AttributionRowDTO `json:"ads"`
}
