package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
	"github.com/GlebRadaev/gerenciaroi/internal/dto"
	"github.com/GlebRadaev/gerenciaroi/internal/service/visitorservice"
	"github.com/GlebRadaev/gerenciaroi/pkg/auth"
	"github.com/GlebRadaev/gerenciaroi/pkg/utils"
)

type Service interface {
	Track(ctx context.Context, b visitorservice.Beacon) error
	Live(ctx context.Context, userID int) ([]domain.LiveVisitor, error)
}

type TrackingHandler struct {
	visitorService Service
}

func New(visitorService Service) *TrackingHandler {
	return &TrackingHandler{
		visitorService: visitorService,
	}
}

// clientIP expects RemoteAddr to be rewritten by the RealIP middleware when
// the service runs behind a proxy.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Track godoc
//
//	@Summary		Record a visitor beacon
//	@Description	Public endpoint called by the tracking script. action=leave ends the session; anything else refreshes it.
//	@Tags			Tracking
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TrackRequestDTO	true	"Beacon"
//	@Success		200		{object}	dto.TrackResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing user_id or session_id"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/track [post]
func (h *TrackingHandler) Track(w http.ResponseWriter, r *http.Request) {
	var req dto.TrackRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, err := strconv.Atoi(req.UserID.String())
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, visitorservice.ErrInvalidBeacon.Error())
		return
	}

	err = h.visitorService.Track(r.Context(), visitorservice.Beacon{
		UserID:    userID,
		SessionID: req.SessionID,
		PageURL:   req.PageURL,
		Action:    req.Action,
		IP:        clientIP(r),
	})
	if err != nil {
		if errors.Is(err, visitorservice.ErrInvalidBeacon) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TrackResponseDTO{Success: true})
}

// GetLiveVisitors godoc
//
//	@Summary		Live visitors
//	@Description	Sessions of the authenticated user seen within the last 60 seconds
//	@Tags			Tracking
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.LiveVisitorsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/visitors/live [get]
func (h *TrackingHandler) GetLiveVisitors(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	visitors, err := h.visitorService.Live(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.LiveVisitorsResponseDTO{
		Count:    len(visitors),
		Visitors: make([]dto.LiveVisitorDTO, len(visitors)),
	}
	for i, v := range visitors {
		response.Visitors[i] = dto.LiveVisitorDTO{
			SessionID:  v.SessionID,
			PageURL:    v.PageURL,
			Country:    v.Country,
			Region:     v.Region,
			City:       v.City,
			LastSeenAt: v.LastSeenAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
