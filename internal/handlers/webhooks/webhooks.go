package webhooks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
	"github.com/GlebRadaev/gerenciaroi/internal/dto"
	"github.com/GlebRadaev/gerenciaroi/internal/plans"
	"github.com/GlebRadaev/gerenciaroi/internal/service/webhookservice"
	"github.com/GlebRadaev/gerenciaroi/pkg/auth"
	"github.com/GlebRadaev/gerenciaroi/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, userID int, platform, name string) (*domain.Webhook, error)
	List(ctx context.Context, userID int) ([]domain.Webhook, error)
	SetStatus(ctx context.Context, userID int, id, status string) error
	Delete(ctx context.Context, userID int, id string) error
}

type WebhookHandler struct {
	webhookService Service
}

func New(webhookService Service) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, webhookservice.ErrInvalidWebhook), errors.Is(err, webhookservice.ErrInvalidStatus):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, plans.ErrTrialExpired):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, plans.ErrLimitReached), errors.Is(err, plans.ErrUnknownPlan):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, webhookservice.ErrWebhookNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toDTO(wh domain.Webhook) dto.WebhookResponseDTO {
	return dto.WebhookResponseDTO{
		ID:        wh.ID,
		Platform:  wh.Platform,
		Name:      wh.Name,
		Token:     wh.Token,
		Status:    wh.Status,
		CreatedAt: wh.CreatedAt,
	}
}

// CreateWebhook godoc
//
//	@Summary		Create a sales webhook
//	@Description	Register an ingestion endpoint for a sales platform. Blocked once the trial is over (402) or the plan limit is reached (403).
//	@Tags			Webhooks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateWebhookRequestDTO	true	"Webhook"
//	@Success		201		{object}	dto.WebhookResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Trial period has ended"
//	@Failure		403		{object}	utils.Response	"Plan limit reached"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/webhooks [post]
func (h *WebhookHandler) CreateWebhook(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateWebhookRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	webhook, err := h.webhookService.Create(r.Context(), userID, req.Platform, req.Name)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(*webhook))
}

// GetWebhooks godoc
//
//	@Summary		List webhooks
//	@Tags			Webhooks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WebhookResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/webhooks [get]
func (h *WebhookHandler) GetWebhooks(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	webhooks, err := h.webhookService.List(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	response := make([]dto.WebhookResponseDTO, len(webhooks))
	for i, wh := range webhooks {
		response[i] = toDTO(wh)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateStatus godoc
//
//	@Summary		Enable or disable a webhook
//	@Tags			Webhooks
//	@Security		BearerAuth
//	@Accept			json
//	@Param			id		path	string						true	"Webhook id"
//	@Param			request	body	dto.UpdateStatusRequestDTO	true	"New status"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid status"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Webhook not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/webhooks/{id}/status [patch]
func (h *WebhookHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.webhookService.SetStatus(r.Context(), userID, chi.URLParam(r, "id"), req.Status); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteWebhook godoc
//
//	@Summary		Delete a webhook
//	@Tags			Webhooks
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Webhook id"
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Webhook not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/webhooks/{id} [delete]
func (h *WebhookHandler) DeleteWebhook(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.webhookService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
