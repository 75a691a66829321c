package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
	"github.com/GlebRadaev/gerenciaroi/internal/dto"
	"github.com/GlebRadaev/gerenciaroi/internal/plans"
	"github.com/GlebRadaev/gerenciaroi/internal/service/credentialservice"
	"github.com/GlebRadaev/gerenciaroi/pkg/auth"
	"github.com/GlebRadaev/gerenciaroi/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, userID int, in credentialservice.CreateInput) (*domain.APICredential, error)
	Get(ctx context.Context, userID int, id string) (*domain.APICredential, error)
	List(ctx context.Context, userID int) ([]domain.APICredential, error)
	SetStatus(ctx context.Context, userID int, id, status string) error
	Delete(ctx context.Context, userID int, id string) error
}

type CredentialHandler struct {
	credentialService Service
}

func New(credentialService Service) *CredentialHandler {
	return &CredentialHandler{
		credentialService: credentialService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, credentialservice.ErrInvalidCredential), errors.Is(err, credentialservice.ErrInvalidStatus):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, plans.ErrTrialExpired):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, plans.ErrLimitReached), errors.Is(err, plans.ErrUnknownPlan):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, credentialservice.ErrCredentialNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// tokenPreview never exposes more than the first and last four characters.
func tokenPreview(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

func toDTO(c domain.APICredential) dto.CredentialResponseDTO {
	return dto.CredentialResponseDTO{
		ID:           c.ID,
		Platform:     c.Platform,
		Name:         c.Name,
		AccountID:    c.AccountID,
		TokenPreview: tokenPreview(c.AccessToken),
		ExpiresAt:    c.ExpiresAt,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
	}
}

// CreateCredential godoc
//
//	@Summary		Connect an ad account
//	@Description	Store an ad platform access token. Each credential counts against the plan's ad account limit.
//	@Tags			Credentials
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateCredentialRequestDTO	true	"Credential"
//	@Success		201		{object}	dto.CredentialResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Trial period has ended"
//	@Failure		403		{object}	utils.Response	"Plan limit reached"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/credentials [post]
func (h *CredentialHandler) CreateCredential(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateCredentialRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	credential, err := h.credentialService.Create(r.Context(), userID, credentialservice.CreateInput{
		Platform:    req.Platform,
		Name:        req.Name,
		AccessToken: req.AccessToken,
		AccountID:   req.AccountID,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(*credential))
}

// GetCredentials godoc
//
//	@Summary		List connected ad accounts
//	@Tags			Credentials
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.CredentialResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/credentials [get]
func (h *CredentialHandler) GetCredentials(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	list, err := h.credentialService.List(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	response := make([]dto.CredentialResponseDTO, len(list))
	for i, c := range list {
		response[i] = toDTO(c)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetCredential godoc
//
//	@Summary		Get a connected ad account
//	@Tags			Credentials
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Credential id"
//	@Success		200	{object}	dto.CredentialResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Credential not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/credentials/{id} [get]
func (h *CredentialHandler) GetCredential(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	credential, err := h.credentialService.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(*credential))
}

// UpdateStatus godoc
//
//	@Summary		Enable or disable an ad account
//	@Description	Inactive credentials are skipped by the spend sync and can't change budgets
//	@Tags			Credentials
//	@Security		BearerAuth
//	@Accept			json
//	@Param			id		path	string						true	"Credential id"
//	@Param			request	body	dto.UpdateStatusRequestDTO	true	"New status"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid status"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Credential not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/credentials/{id}/status [patch]
func (h *CredentialHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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

	if err := h.credentialService.SetStatus(r.Context(), userID, chi.URLParam(r, "id"), req.Status); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteCredential godoc
//
//	@Summary		Disconnect an ad account
//	@Tags			Credentials
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Credential id"
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Credential not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/credentials/{id} [delete]
func (h *CredentialHandler) DeleteCredential(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.credentialService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
