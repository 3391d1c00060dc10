package request

import (
	"testing"

	"burgerbude/internal/domain/entities"
)

func TestCreateOrderRequest_ToCommand(t *testing.T) {
	r := CreateOrderRequest{
		Mode:    " Delivery ",
		Channel: "liferando",
		Items: []OrderItemRequest{
			{Name: "Smash Burger", Price: 9.50, Qty: 0, Add: []AddOnRequest{{Name: "Bacon", Price: 1.50}}},
			{Name: "Fritz Kola", Price: 3.00, Qty: 2},
		},
		Customer: CustomerRequest{Name: " Maria ", Address: " Hauptstr. 1 ", PostalCode: " 10115 "},
		Planned:  " 18:30 ",
	}

	cmd := r.ToCommand()
	if cmd.Mode != entities.OrderModeDelivery {
		t.Fatalf("expected delivery, got %q", cmd.Mode)
	}
	if cmd.Channel != entities.OrderChannelLieferando {
		t.Fatalf("expected misspelling normalized, got %q", cmd.Channel)
	}
	if cmd.Items[0].Qty != 1 {
		t.Fatalf("expected qty 0 normalized to 1, got %d", cmd.Items[0].Qty)
	}
	if len(cmd.Items[0].AddOns) != 1 || cmd.Items[0].AddOns[0].Name != "Bacon" {
		t.Fatalf("unexpected add-ons: %+v", cmd.Items[0].AddOns)
	}
	if cmd.Customer.Name != "Maria" || cmd.Customer.PostalCode != "10115" || cmd.Planned != "18:30" {
		t.Fatalf("expected trimmed fields, got %+v", cmd)
	}
}

func TestQuoteRequest_ResolveMode(t *testing.T) {
	if mode, ok := (QuoteRequest{Mode: "PICKUP"}).ResolveMode(); !ok || mode != entities.OrderModePickup {
		t.Fatalf("expected pickup, got %q ok=%v", mode, ok)
	}
	if _, ok := (QuoteRequest{Mode: "drone"}).ResolveMode(); ok {
		t.Fatalf("expected unknown mode rejected")
	}
}
