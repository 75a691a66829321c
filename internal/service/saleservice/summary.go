package saleservice

import (
	"strings"
	"time"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
)

type Summary struct {
	Date        time.Time
	Revenue     float64
	Approved    int
	Pending     int
	Refunded    int
	Declined    int
	RefundRate  float64
	ARPU        float64
	AdSpend     float64
	Profit      float64
	ROAS        float64
	ROI         float64
	PeakRevenue float64
}

// Summarize folds a day of sales and its ad spend into dashboard figures.
// RefundRate and ROI are percentages; ratios over a zero base are zero.
func Summarize(sales []domain.Sale, spend float64) Summary {
	sum := Summary{AdSpend: spend}
	customers := make(map[string]struct{})

	for _, sale := range sales {
		switch strings.ToLower(strings.TrimSpace(sale.Status)) {
		case domain.SaleStatusApproved, domain.SaleStatusPaid:
			sum.Approved++
			sum.Revenue += sale.Amount
			if email := strings.ToLower(strings.TrimSpace(sale.CustomerEmail)); email != "" {
				customers[email] = struct{}{}
			}
		case domain.SaleStatusPending:
			sum.Pending++
		case domain.SaleStatusRefunded, domain.SaleStatusChargedback:
			sum.Refunded++
		case domain.SaleStatusCancelled, domain.SaleStatusDeclined:
			sum.Declined++
		}
	}

	if settled := sum.Approved + sum.Refunded; settled > 0 {
		sum.RefundRate = float64(sum.Refunded) / float64(settled) * 100
	}
	if len(customers) > 0 {
		sum.ARPU = sum.Revenue / float64(len(customers))
	}
	sum.Profit = sum.Revenue - spend
	if spend > 0 {
		sum.ROAS = sum.Revenue / spend
		sum.ROI = sum.Profit / spend * 100
	}
	return sum
}
