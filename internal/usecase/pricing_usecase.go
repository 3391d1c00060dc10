package usecase

import (
	"math"
	"strings"

	"burgerbude/internal/domain/entities"
	"burgerbude/internal/usecase/interfaces"
)

// IPricingUseCase computes cart totals for checkout and for live quote
// previews. Pure with respect to storage; configuration comes from the
// settings provider.

type IPricingUseCase interface {
	Quote(items []entities.OrderItem, mode entities.OrderMode, postalCode string) entities.PricingBreakdown
}

type PricingUseCase struct {
	settings interfaces.ISettingsProvider
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(settings interfaces.ISettingsProvider) *PricingUseCase {
	return &PricingUseCase{settings: settings}
}

// Quote computes the full pricing breakdown.
//
// Minimum-order gating compares the after-discount merchandise value (not the
// surcharged total) against the postal-code minimum. A postal code absent from
// the configured table fails closed: the order does not meet the minimum no
// matter how large the cart. That is a deliberate business rule.
func (u *PricingUseCase) Quote(items []entities.OrderItem, mode entities.OrderMode, postalCode string) entities.PricingBreakdown {
	ov := u.settings.Get().PricingFor(mode)

	merchandise := SumMerchandise(items)
	discount := round2(merchandise * ov.DiscountRate)
	afterDiscount := round2(merchandise - discount)

	code := sanitizePostalCode(postalCode)
	requiredMin, known := ov.PostalMinimums[code]

	var surcharges float64
	if mode == entities.OrderModeDelivery {
		for _, it := range items {
			s := ov.Surcharges[entities.CategoryKey(it.ClassifierText())]
			if s > 0 {
				surcharges += s * qtyOrOne(it.Qty)
			}
		}
	}
	surcharges = round2(surcharges)

	meets := true
	if mode == entities.OrderModeDelivery {
		meets = known && afterDiscount >= requiredMin
	}

	return entities.PricingBreakdown{
		Merchandise:     merchandise,
		Discount:        discount,
		Surcharges:      surcharges,
		Total:           round2(afterDiscount + surcharges),
		RequiredMinimum: requiredMin,
		PostalCodeKnown: known,
		MeetsMinimum:    meets,
	}
}

// SumMerchandise totals the cart lines: (base + add-ons) × qty, rounded per
// line and again on the sum.
func SumMerchandise(items []entities.OrderItem) float64 {
	var sum float64
	for _, it := range items {
		line := it.Price
		for _, a := range it.AddOns {
			line += a.Price
		}
		sum += round2(line * qtyOrOne(it.Qty))
	}
	return round2(sum)
}

// sanitizePostalCode keeps the first five digits of the raw input.
func sanitizePostalCode(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == 5 {
				break
			}
		}
	}
	return b.String()
}

func qtyOrOne(qty int) float64 {
	if qty < 1 {
		return 1
	}
	return float64(qty)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
