package response

import "burgerbude/internal/domain/entities"

// QuoteResponse is the pricing breakdown served to the cart UI.
// RequiredMinimum is null when the postal code is not in the configured
// table; in that case MeetsMinimum is always false for delivery.
type QuoteResponse struct {
	Merchandise     float64  `json:"merchandise"`
	Discount        float64  `json:"discount"`
	Surcharges      float64  `json:"surcharges"`
	Total           float64  `json:"total"`
	RequiredMinimum *float64 `json:"required_minimum"`
	PostalCodeKnown bool     `json:"postal_code_known"`
	MeetsMinimum    bool     `json:"meets_minimum"`
}

func FromPricing(p entities.PricingBreakdown) QuoteResponse {
	resp := QuoteResponse{
		Merchandise:     p.Merchandise,
		Discount:        p.Discount,
		Surcharges:      p.Surcharges,
		Total:           p.Total,
		PostalCodeKnown: p.PostalCodeKnown,
		MeetsMinimum:    p.MeetsMinimum,
	}
	if p.PostalCodeKnown {
		min := p.RequiredMinimum
		resp.RequiredMinimum = &min
	}
	return resp
}
