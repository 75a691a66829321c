// Package attribution maps sales back to the campaign, ad set and ad that
// produced them.
//
// Ad links are tagged with UTM parameters in the "Name|ID" form, for example
// utm_campaign=Summer|123. Only the part after the last pipe is used as the
// entity key, so renaming a campaign does not split its history.
package attribution

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
)

type Dimension string

const (
	Campaign Dimension = "campaign"
	AdSet    Dimension = "adset"
	Ad       Dimension = "ad"
)

// Payload keys holding the identifier of each dimension.
const (
	CampaignKey = "utm_campaign"
	AdSetKey    = "utm_medium"
	AdKey       = "utm_content"

	trackingKey = "tracking"
)

type Metrics struct {
	Sales         int     `json:"sales"`
	Revenue       float64 `json:"revenue"`
	RefundedSales int     `json:"refundedSales"`
	DeclinedSales int     `json:"declinedSales"`
}

type Result struct {
	Campaigns map[string]Metrics `json:"campaigns"`
	AdSets    map[string]Metrics `json:"adSets"`
	Ads       map[string]Metrics `json:"ads"`
}

type Row struct {
	ID string `json:"id"`
	Metrics
}

type outcome int

const (
	outcomeNone outcome = iota
	outcomeApproved
	outcomeRefunded
	outcomeDeclined
)

func classify(status string) outcome {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case domain.SaleStatusApproved, domain.SaleStatusPaid:
		return outcomeApproved
	case domain.SaleStatusRefunded, domain.SaleStatusChargedback:
		return outcomeRefunded
	case domain.SaleStatusCancelled, domain.SaleStatusDeclined:
		return outcomeDeclined
	default:
		return outcomeNone
	}
}

// ExtractIDFromUTM returns the text after the last pipe of a "Name|ID" value.
func ExtractIDFromUTM(value string) (string, bool) {
	i := strings.LastIndex(value, "|")
	if i < 0 {
		return "", false
	}
	id := strings.TrimSpace(value[i+1:])
	if id == "" {
		return "", false
	}
	return id, true
}

// Aggregate runs a single pass over sales. Sales in a status that is neither
// approved, refunded nor declined (e.g. pending) are ignored.
func Aggregate(sales []domain.Sale) Result {
	res := Result{
		Campaigns: map[string]Metrics{},
		AdSets:    map[string]Metrics{},
		Ads:       map[string]Metrics{},
	}

	for _, sale := range sales {
		kind := classify(sale.Status)
		if kind == outcomeNone {
			continue
		}
		payload := extractPayload(sale.RawData)

		accumulate(res.Campaigns, payload, CampaignKey, kind, sale.Amount)
		accumulate(res.AdSets, payload, AdSetKey, kind, sale.Amount)
		accumulate(res.Ads, payload, AdKey, kind, sale.Amount)
	}
	return res
}

func accumulate(dst map[string]Metrics, payload map[string]any, key string, kind outcome, amount float64) {
	raw, ok := payload[key].(string)
	if !ok {
		return
	}
	id, ok := ExtractIDFromUTM(raw)
	if !ok {
		return
	}

	m := dst[id]
	switch kind {
	case outcomeApproved:
		m.Sales++
		m.Revenue += amount
	case outcomeRefunded:
		m.RefundedSales++
	case outcomeDeclined:
		m.DeclinedSales++
	}
	dst[id] = m
}

// extractPayload prefers the nested "tracking" object and falls back to the
// whole document. Anything that is not a JSON object yields an empty payload.
func extractPayload(raw json.RawMessage) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}
	if tracking, ok := doc[trackingKey].(map[string]any); ok {
		return tracking
	}
	return doc
}

// Ranked flattens one dimension, highest revenue first, ties by id.
func (r Result) Ranked(dim Dimension) []Row {
	var src map[string]Metrics
	switch dim {
	case Campaign:
		src = r.Campaigns
	case AdSet:
		src = r.AdSets
	case Ad:
		src = r.Ads
	}

	rows := make([]Row, 0, len(src))
	for id, m := range src {
		rows = append(rows, Row{ID: id, Metrics: m})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Revenue != rows[j].Revenue {
			return rows[i].Revenue > rows[j].Revenue
		}
		return rows[i].ID < rows[j].ID
	})
	return rows
}
