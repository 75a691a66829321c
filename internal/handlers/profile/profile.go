package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/gerenciaroi/internal/dto"
	"github.com/GlebRadaev/gerenciaroi/internal/service/profileservice"
	"github.com/GlebRadaev/gerenciaroi/pkg/auth"
	"github.com/GlebRadaev/gerenciaroi/pkg/utils"
)

type Service interface {
	GetOverview(ctx context.Context, userID int) (*profileservice.Overview, error)
}

type ProfileHandler struct {
	profileService Service
}

func New(profileService Service) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile godoc
//
//	@Summary		Get current profile
//	@Description	Plan, plan limits, remaining trial days and peak daily revenue of the authenticated user
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Profile not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	overview, err := h.profileService.GetOverview(r.Context(), userID)
	if err != nil {
		if errors.Is(err, profileservice.ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	p := overview.Profile
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		UserID:        p.UserID,
		FullName:      p.FullName,
		Plan:          p.Plan,
		TrialEndsAt:   p.TrialEndsAt,
		TrialDaysLeft: overview.TrialDaysLeft,
		Active:        overview.Active,
		PeakRevenue:   p.PeakRevenue,
		Limits: dto.LimitsDTO{
			Webhooks:   overview.Limits.Webhooks,
			AdAccounts: overview.Limits.AdAccounts,
		},
	})
}
