package entities

import "strings"

// categoryKeywords maps free-text item names/categories onto category keys
// used by delivery surcharges and notification grouping. Order matters: first
// match wins.
var categoryKeywords = []struct {
	key   string
	words []string
}{
	{"burger", []string{"burger"}},
	{"drinks", []string{"drink", "getränk", "getraenk", "cola", "wasser", "fritz"}},
	{"sauces", []string{"sauce", "soße", "soßen", "sossen", "sos", "ketchup", "mayo"}},
	{"donuts", []string{"donut", "dessert"}},
	{"hotdogs", []string{"hotdog"}},
	{"vegan", []string{"vegan"}},
	{"bubbleTea", []string{"bubble"}},
	{"extras", []string{"extra"}},
}

// CategoryKey classifies a free-text item name or category into a category
// bucket. Unmatched text is returned lowercased so explicit category names in
// the surcharge table still work.
func CategoryKey(text string) string {
	t := strings.ToLower(text)
	for _, c := range categoryKeywords {
		for _, w := range c.words {
			if strings.Contains(t, w) {
				return c.key
			}
		}
	}
	return t
}

// ClassifierText picks the text fed to CategoryKey: the explicit category
// when present, otherwise the item name.
func (it OrderItem) ClassifierText() string {
	if it.Category != "" {
		return it.Category
	}
	return it.Name
}

// PricingBreakdown is the result of a cart pricing computation.
//
// Monetary fields are rounded to 2 decimals at every accumulation boundary
// (per line, at the merchandise sum, on the discount, on the surcharge sum and
// on the total), not once at the end. Reference totals depend on the
// intermediate rounding.
type PricingBreakdown struct {
	Merchandise     float64 `json:"merchandise"`
	Discount        float64 `json:"discount"`
	Surcharges      float64 `json:"surcharges"`
	Total           float64 `json:"total"`
	RequiredMinimum float64 `json:"required_minimum"`
	PostalCodeKnown bool    `json:"postal_code_known"`
	MeetsMinimum    bool    `json:"meets_minimum"`
}
