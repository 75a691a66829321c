package campaigns

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/gerenciaroi/internal/dto"
	"github.com/GlebRadaev/gerenciaroi/internal/meta"
	"github.com/GlebRadaev/gerenciaroi/internal/service/campaignservice"
	"github.com/GlebRadaev/gerenciaroi/pkg/auth"
	"github.com/GlebRadaev/gerenciaroi/pkg/utils"
	"github.com/GlebRadaev/gerenciaroi/pkg/validate"
)

type Service interface {
	UpdateDailyBudget(ctx context.Context, userID int, campaignID, credentialID, budget string) (int64, error)
}

type CampaignHandler struct {
	campaignService Service
}

func New(campaignService Service) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

// UpdateBudget godoc
//
//	@Summary		Change a campaign daily budget
//	@Description	daily_budget is a positive amount with at most two decimals ("150", "150.5", "150,50"). It is sent to the ad platform in cents.
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Campaign id"
//	@Param			request	body		dto.UpdateBudgetRequestDTO	true	"Budget"
//	@Success		200		{object}	dto.UpdateBudgetResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid budget or Graph API error"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Credential not found"
//	@Failure		409		{object}	utils.Response	"Credential inactive or platform unsupported"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{id}/budget [post]
func (h *CampaignHandler) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.UpdateBudgetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	campaignID := chi.URLParam(r, "id")
	cents, err := h.campaignService.UpdateDailyBudget(r.Context(), userID, campaignID, req.CredentialID, req.DailyBudget)
	if err != nil {
		var graphErr *meta.GraphError
		switch {
		case errors.Is(err, validate.ErrBudgetNotNumeric),
			errors.Is(err, validate.ErrBudgetNotPositive),
			errors.Is(err, campaignservice.ErrMissingCampaign):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, campaignservice.ErrCredentialNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, campaignservice.ErrCredentialInactive),
			errors.Is(err, campaignservice.ErrUnsupportedPlatform):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.As(err, &graphErr):
			utils.RespondWithError(w, http.StatusBadRequest, graphErr.Message)
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.UpdateBudgetResponseDTO{
		CampaignID:       campaignID,
		DailyBudgetCents: cents,
	})
}
