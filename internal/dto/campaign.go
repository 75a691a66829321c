package dto

type UpdateBudgetRequestDTO struct {
	CredentialID string `json:"credential_id" example:"0b8e7f5a-5d0c-4c8e-8a3e-4b1f6c2d9a10"`
	DailyBudget  string `json:"daily_budget" example:"150,00"`
}

type UpdateBudgetResponseDTO struct {
	CampaignID       string `json:"campaign_id" example:"120210000000001"`
	DailyBudgetCents int64  `json:"daily_budget_cents" example:"15000"`
}
