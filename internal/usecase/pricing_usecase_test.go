package usecase

import (
	"testing"

	"burgerbude/internal/domain/entities"
	mock_interfaces "burgerbude/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pricingSettings() entities.ServerSettings {
	return entities.ServerSettings{
		Pricing: map[string]entities.PricingOverrides{
			"delivery": {
				DiscountRate: 0.10,
				Surcharges:   map[string]float64{"drinks": 0.25, "sauces": 0.10},
				PostalMinimums: map[string]float64{
					"10115": 20.00,
					"10247": 25.00,
				},
			},
			"pickup": {
				DiscountRate: 0.10,
			},
		},
	}
}

func newPricingUseCase(t *testing.T) *PricingUseCase {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	settings := mock_interfaces.NewMockISettingsProvider(ctrl)
	settings.EXPECT().Get().Return(pricingSettings()).AnyTimes()
	return NewPricingUseCase(settings)
}

func TestPricingUseCase_Quote(t *testing.T) {
	t.Run("delivery breakdown with known postal code", func(t *testing.T) {
		uc := newPricingUseCase(t)

		items := []entities.OrderItem{
			{Name: "Smash Burger", Category: "burger", Price: 9.50, Qty: 2},
			{Name: "Fritz Kola", Category: "drinks", Price: 3.00, Qty: 2},
		}
		got := uc.Quote(items, entities.OrderModeDelivery, "10115")

		if got.Merchandise != 25.00 {
			t.Fatalf("expected merchandise 25.00, got %v", got.Merchandise)
		}
		if got.Discount != 2.50 {
			t.Fatalf("expected discount 2.50, got %v", got.Discount)
		}
		if got.Surcharges != 0.50 {
			t.Fatalf("expected surcharges 0.50, got %v", got.Surcharges)
		}
		if got.Total != 23.00 {
			t.Fatalf("expected total 23.00, got %v", got.Total)
		}
		if !got.PostalCodeKnown || !got.MeetsMinimum || got.RequiredMinimum != 20.00 {
			t.Fatalf("unexpected minimum gating: %+v", got)
		}
	})

	t.Run("unknown postal code fails closed", func(t *testing.T) {
		uc := newPricingUseCase(t)

		items := []entities.OrderItem{{Name: "Smash Burger", Price: 99.00, Qty: 5}}
		got := uc.Quote(items, entities.OrderModeDelivery, "99999")

		if got.PostalCodeKnown {
			t.Fatalf("expected unknown postal code")
		}
		if got.MeetsMinimum {
			t.Fatalf("unknown postal code must not meet the minimum, got %+v", got)
		}
	})

	t.Run("below minimum after discount", func(t *testing.T) {
		uc := newPricingUseCase(t)

		// 27.00 gross, 24.30 after discount, minimum 25.00.
		items := []entities.OrderItem{{Name: "Smash Burger", Price: 27.00, Qty: 1}}
		got := uc.Quote(items, entities.OrderModeDelivery, "10247")

		if got.MeetsMinimum {
			t.Fatalf("expected below minimum, got %+v", got)
		}
		if got.RequiredMinimum != 25.00 {
			t.Fatalf("expected required minimum 25.00, got %v", got.RequiredMinimum)
		}
	})

	t.Run("pickup skips surcharges and minimum gating", func(t *testing.T) {
		uc := newPricingUseCase(t)

		items := []entities.OrderItem{{Name: "Fritz Kola", Category: "drinks", Price: 3.00, Qty: 2}}
		got := uc.Quote(items, entities.OrderModePickup, "")

		if got.Surcharges != 0 {
			t.Fatalf("pickup must not collect surcharges, got %v", got.Surcharges)
		}
		if !got.MeetsMinimum {
			t.Fatalf("pickup always meets the minimum")
		}
		if got.PostalCodeKnown {
			t.Fatalf("expected no postal lookup hit for pickup")
		}
	})

	t.Run("postal code input is sanitized", func(t *testing.T) {
		uc := newPricingUseCase(t)

		items := []entities.OrderItem{{Name: "Smash Burger", Price: 30.00, Qty: 1}}
		got := uc.Quote(items, entities.OrderModeDelivery, " 10115 Berlin ")

		if !got.PostalCodeKnown {
			t.Fatalf("expected sanitized code to match, got %+v", got)
		}
	})

	t.Run("add-ons and qty fallback", func(t *testing.T) {
		uc := newPricingUseCase(t)

		items := []entities.OrderItem{
			// Qty 0 is priced as 1.
			{Name: "Smash Burger", Price: 9.50, Qty: 0, AddOns: []entities.AddOn{{Name: "Bacon", Price: 1.50}}},
		}
		got := uc.Quote(items, entities.OrderModePickup, "")

		if got.Merchandise != 11.00 {
			t.Fatalf("expected merchandise 11.00, got %v", got.Merchandise)
		}
	})
}

func TestSumMerchandise(t *testing.T) {
	items := []entities.OrderItem{
		{Name: "a", Price: 9.99, Qty: 3},
		{Name: "b", Price: 0.50, Qty: 2, AddOns: []entities.AddOn{{Name: "x", Price: 0.25}}},
	}
	// 29.97 + 1.50
	if got := SumMerchandise(items); got != 31.47 {
		t.Fatalf("expected 31.47, got %v", got)
	}
	if got := SumMerchandise(nil); got != 0 {
		t.Fatalf("expected 0 for empty cart, got %v", got)
	}
}
