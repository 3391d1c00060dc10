package request

import (
	"strings"

	"burgerbude/internal/domain/entities"
	"burgerbude/internal/usecase"
)

type AddOnRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type OrderItemRequest struct {
	SKU      string         `json:"sku"`
	Name     string         `json:"name" binding:"required"`
	Category string         `json:"category"`
	Price    float64        `json:"price"`
	Qty      int            `json:"qty"`
	Add      []AddOnRequest `json:"add"`
	Rm       []string       `json:"rm"`
	Note     string         `json:"note"`
}

type CustomerRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
}

// CreateOrderRequest is the checkout payload posted by the cart UI.
type CreateOrderRequest struct {
	Mode     string             `json:"mode" binding:"required"`
	Channel  string             `json:"channel"`
	Items    []OrderItemRequest `json:"items" binding:"required"`
	Customer CustomerRequest    `json:"customer" binding:"required"`
	Planned  string             `json:"planned"`
	Coupon   string             `json:"coupon"`
	Notify   bool               `json:"notify"`
}

// ToCommand translates the payload into the domain checkout command. Unknown
// channels collapse to web; a missing qty means one.
func (r CreateOrderRequest) ToCommand() usecase.CreateOrderCommand {
	return usecase.CreateOrderCommand{
		Mode:    entities.OrderMode(strings.ToLower(strings.TrimSpace(r.Mode))),
		Channel: entities.NormalizeChannel(strings.ToLower(strings.TrimSpace(r.Channel))),
		Items:   toItems(r.Items),
		Customer: entities.Customer{
			Name:       strings.TrimSpace(r.Customer.Name),
			Phone:      strings.TrimSpace(r.Customer.Phone),
			Address:    strings.TrimSpace(r.Customer.Address),
			PostalCode: strings.TrimSpace(r.Customer.PostalCode),
		},
		Planned: strings.TrimSpace(r.Planned),
		Coupon:  strings.TrimSpace(r.Coupon),
		Notify:  r.Notify,
	}
}

func toItems(in []OrderItemRequest) []entities.OrderItem {
	items := make([]entities.OrderItem, 0, len(in))
	for _, it := range in {
		qty := it.Qty
		if qty < 1 {
			qty = 1
		}
		adds := make([]entities.AddOn, 0, len(it.Add))
		for _, a := range it.Add {
			adds = append(adds, entities.AddOn{Name: a.Name, Price: a.Price})
		}
		items = append(items, entities.OrderItem{
			SKU:      it.SKU,
			Name:     it.Name,
			Category: it.Category,
			Price:    it.Price,
			Qty:      qty,
			AddOns:   adds,
			Removed:  it.Rm,
			Note:     it.Note,
		})
	}
	return items
}

// OrderStatusRequest is the dashboard/TV manual status update.
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderEtaRequest adjusts an order's ETA. EtaMin replaces the base estimate
// when positive; AdjustMin is a signed delta (the ±5 buttons).
type OrderEtaRequest struct {
	EtaMin    int `json:"eta_min"`
	AdjustMin int `json:"adjust_min"`
}
