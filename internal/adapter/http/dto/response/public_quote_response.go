package response

import (
	"fmt"

	"surface_rejuvenators/internal/domain/entities"
	"surface_rejuvenators/internal/usecase"
)

// PublicQuoteResponse is the customer-facing view of a quote: the estimate
// ranges and the tier/add-on menus the estimator configured, nothing from
// the internal job sheet.
type PublicQuoteResponse struct {
	ID              string              `json:"id"`
	CustomerName    string              `json:"customer_name"`
	Address         string              `json:"address"`
	Status          string              `json:"status"`
	Items           []QuoteItemResponse `json:"items"`
	QuoteTotalRange PriceRangeResponse  `json:"quote_total_range"`
	Approved        bool                `json:"approved"`
}

func FromPublicQuote(job entities.Job) PublicQuoteResponse {
	items := make([]QuoteItemResponse, len(job.Items))
	for i, item := range job.Items {
		items[i] = FromQuoteItem(item)
	}
	return PublicQuoteResponse{
		ID:              job.ID,
		CustomerName:    job.Customer.Name,
		Address:         job.Customer.Address,
		Status:          string(job.Status),
		Items:           items,
		QuoteTotalRange: FromPriceRange(job.QuoteTotalRange),
		Approved:        job.CustomerSignature != "",
	}
}

// BreakdownResponse is the running total for the customer's current
// selections. FinalPrice only holds once Complete is true.
type BreakdownResponse struct {
	ItemPrices   map[string]float64 `json:"item_prices"`
	FinalPrice   float64            `json:"final_price"`
	FinalDisplay string             `json:"final_display"`
	Complete     bool               `json:"complete"`
}

func FromBreakdown(bd usecase.QuoteBreakdown) BreakdownResponse {
	return BreakdownResponse{
		ItemPrices:   bd.ItemPrices,
		FinalPrice:   bd.FinalPrice,
		FinalDisplay: fmt.Sprintf("$%.2f", bd.FinalPrice),
		Complete:     bd.Complete,
	}
}
