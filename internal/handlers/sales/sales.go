package sales

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/gerenciaroi/internal/attribution"
	"github.com/GlebRadaev/gerenciaroi/internal/domain"
	"github.com/GlebRadaev/gerenciaroi/internal/dto"
	"github.com/GlebRadaev/gerenciaroi/internal/service/saleservice"
	"github.com/GlebRadaev/gerenciaroi/pkg/auth"
	"github.com/GlebRadaev/gerenciaroi/pkg/utils"
)

type Service interface {
	Day(date string) (time.Time, error)
	List(ctx context.Context, userID int, from, to, status string) ([]domain.Sale, error)
	Delete(ctx context.Context, userID int, id string) error
	Summary(ctx context.Context, userID int, date string) (*saleservice.Summary, error)
	Attribution(ctx context.Context, userID int, date string) (*attribution.Result, error)
}

type SalesHandler struct {
	saleService Service
}

func New(saleService Service) *SalesHandler {
	return &SalesHandler{
		saleService: saleService,
	}
}

func isBadQuery(err error) bool {
	return errors.Is(err, saleservice.ErrInvalidDate) ||
		errors.Is(err, saleservice.ErrInvalidRange) ||
		errors.Is(err, saleservice.ErrInvalidStatus)
}

// GetSales godoc
//
//	@Summary		List sales
//	@Description	Sales of the authenticated user created between from and to (inclusive days, default today), newest first
//	@Tags			Sales
//	@Security		BearerAuth
//	@Produce		json
//	@Param			from	query		string	false	"First day, YYYY-MM-DD"
//	@Param			to		query		string	false	"Last day, YYYY-MM-DD"
//	@Param			status	query		string	false	"Sale status filter"
//	@Success		200		{array}		dto.SaleResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid query"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/sales [get]
func (h *SalesHandler) GetSales(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	q := r.URL.Query()
	sales, err := h.saleService.List(r.Context(), userID, q.Get("from"), q.Get("to"), q.Get("status"))
	if err != nil {
		if isBadQuery(err) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.SaleResponseDTO, len(sales))
	for i, s := range sales {
		response[i] = dto.SaleResponseDTO{
			ID:            s.ID,
			Amount:        s.Amount,
			Status:        s.Status,
			CustomerEmail: s.CustomerEmail,
			RawData:       s.RawData,
			CreatedAt:     s.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// DeleteSale godoc
//
//	@Summary		Delete a sale
//	@Tags			Sales
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Sale id"
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Sale not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/sales/{id} [delete]
func (h *SalesHandler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	err := h.saleService.Delete(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, saleservice.ErrSaleNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSummary godoc
//
//	@Summary		Daily dashboard figures
//	@Description	Revenue, status counts, refund rate, ARPU, ad spend, profit, ROAS, ROI and peak revenue for one day
//	@Tags			Sales
//	@Security		BearerAuth
//	@Produce		json
//	@Param			date	query		string	false	"Day, YYYY-MM-DD (default today)"
//	@Success		200		{object}	dto.SalesSummaryResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid date"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/sales/summary [get]
func (h *SalesHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := h.saleService.Summary(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		if isBadQuery(err) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SalesSummaryResponseDTO{
		Date:        summary.Date.Format(time.DateOnly),
		Revenue:     summary.Revenue,
		Approved:    summary.Approved,
		Pending:     summary.Pending,
		Refunded:    summary.Refunded,
		Declined:    summary.Declined,
		RefundRate:  summary.RefundRate,
		ARPU:        summary.ARPU,
		AdSpend:     summary.AdSpend,
		Profit:      summary.Profit,
		ROAS:        summary.ROAS,
		ROI:         summary.ROI,
		PeakRevenue: summary.PeakRevenue,
	})
}

// GetAttribution godoc
//
//	@Summary		Sales attribution
//	@Description	Sales of one day grouped by campaign, ad set and ad, each list ranked by revenue
//	@Tags			Sales
//	@Security		BearerAuth
//	@Produce		json
//	@Param			date	query		string	false	"Day, YYYY-MM-DD (default today)"
//	@Success		200		{object}	dto.AttributionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid date"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/sales/attribution [get]
func (h *SalesHandler) GetAttribution(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	day, err := h.saleService.Day(r.URL.Query().Get("date"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	date := day.Format(time.DateOnly)

	result, err := h.saleService.Attribution(r.Context(), userID, date)
	if err != nil {
		if isBadQuery(err) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.AttributionResponseDTO{
		Date:      date,
		Campaigns: rows(result.Ranked(attribution.Campaign)),
		AdSets:    rows(result.Ranked(attribution.AdSet)),
		Ads:       rows(result.Ranked(attribution.Ad)),
	})
}

func rows(ranked []attribution.Row) []dto.AttributionRowDTO {
	out := make([]dto.AttributionRowDTO, len(ranked))
	for i, row := range ranked {
		out[i] = dto.AttributionRowDTO{
			ID:            row.ID,
			Sales:         row.Sales,
			Revenue:       row.Revenue,
			RefundedSales: row.RefundedSales,
			DeclinedSales: row.DeclinedSales,
		}
	}
	return out
}
