package response

import (
	"testing"

	"burgerbude/internal/domain/entities"
)

func TestFromPricing(t *testing.T) {
	p := entities.PricingBreakdown{
		Merchandise:     25.00,
		Discount:        2.50,
		Surcharges:      0.50,
		Total:           23.00,
		RequiredMinimum: 20.00,
		PostalCodeKnown: true,
		MeetsMinimum:    true,
	}

	res := FromPricing(p)
	if res.Merchandise != 25.00 || res.Discount != 2.50 || res.Surcharges != 0.50 {
		t.Fatalf("unexpected amounts: %+v", res)
	}
	if res.Total != 23.00 || !res.MeetsMinimum || !res.PostalCodeKnown {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.RequiredMinimum == nil || *res.RequiredMinimum != 20.00 {
		t.Fatalf("unexpected minimum: %+v", res.RequiredMinimum)
	}
}

func TestFromPricing_UnknownPostalCode(t *testing.T) {
	p := entities.PricingBreakdown{
		Merchandise:     30.00,
		Total:           30.00,
		PostalCodeKnown: false,
		MeetsMinimum:    false,
	}

	res := FromPricing(p)
	if res.RequiredMinimum != nil {
		t.Fatalf("expected nil minimum for unknown postal code, got %v", *res.RequiredMinimum)
	}
	if res.MeetsMinimum || res.PostalCodeKnown {
		t.Fatalf("unexpected flags: %+v", res)
	}
}
