package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/gerenciaroi/internal/dto"
	"github.com/GlebRadaev/gerenciaroi/internal/meta"
	"github.com/GlebRadaev/gerenciaroi/internal/service/oauthservice"
	"github.com/GlebRadaev/gerenciaroi/pkg/utils"
)

type Service interface {
	AuthURL(redirectURI string) (*oauthservice.AuthURL, error)
	Exchange(ctx context.Context, code, redirectURI string) (*oauthservice.Connection, error)
}

type OAuthHandler struct {
	oauthService Service
}

func New(oauthService Service) *OAuthHandler {
	return &OAuthHandler{
		oauthService: oauthService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	var graphErr *meta.GraphError
	switch {
	case errors.Is(err, oauthservice.ErrMissingCode),
		errors.Is(err, oauthservice.ErrMissingRedirect),
		errors.Is(err, meta.ErrNotConfigured):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &graphErr):
		utils.RespondWithError(w, http.StatusBadRequest, graphErr.Message)
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// MetaOAuth godoc
//
//	@Summary		Meta OAuth flow
//	@Description	action=get-auth-url returns the login dialog URL. action=exchange-code trades the returned code for a long-lived token and lists the ad accounts it can manage.
//	@Tags			OAuth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OAuthRequestDTO	true	"OAuth action"
//	@Success		200		{object}	dto.ExchangeResponseDTO	"exchange-code result (get-auth-url returns dto.AuthURLResponseDTO)"
//	@Failure		400		{object}	utils.Response	"Invalid action, missing parameters or Graph API error"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/oauth/meta [post]
func (h *OAuthHandler) MetaOAuth(w http.ResponseWriter, r *http.Request) {
	var req dto.OAuthRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch req.Action {
	case oauthservice.ActionGetAuthURL:
		authURL, err := h.oauthService.AuthURL(req.RedirectURI)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, dto.AuthURLResponseDTO{
			URL:   authURL.URL,
			State: authURL.State,
		})
	case oauthservice.ActionExchangeCode:
		conn, err := h.oauthService.Exchange(r.Context(), req.Code, req.RedirectURI)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, toExchangeDTO(conn))
	default:
		utils.RespondWithError(w, http.StatusBadRequest, oauthservice.ErrUnknownAction.Error())
	}
}

func toExchangeDTO(conn *oauthservice.Connection) dto.ExchangeResponseDTO {
	accounts := make([]dto.MetaAdAccountDTO, len(conn.AdAccounts))
	for i, a := range conn.AdAccounts {
		accounts[i] = dto.MetaAdAccountDTO{
			ID:            a.ID,
			AccountID:     a.AccountID,
			Name:          a.Name,
			AccountStatus: a.AccountStatus,
			Currency:      a.Currency,
		}
	}
	return dto.ExchangeResponseDTO{
		AccessToken: conn.AccessToken,
		ExpiresIn:   conn.ExpiresIn,
		ExpiresAt:   conn.ExpiresAt,
		User: dto.MetaUserDTO{
			ID:    conn.User.ID,
			Name:  conn.User.Name,
			Email: conn.User.Email,
		},
		AdAccounts: accounts,
	}
}
