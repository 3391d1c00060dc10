package request

import (
	"strings"

	"burgerbude/internal/domain/entities"
)

// QuoteRequest asks for a pricing preview of the current cart.
type QuoteRequest struct {
	Mode       string             `json:"mode" binding:"required"`
	PostalCode string             `json:"postal_code"`
	Items      []OrderItemRequest `json:"items"`
}

func (r QuoteRequest) ResolveMode() (entities.OrderMode, bool) {
	mode := entities.OrderMode(strings.ToLower(strings.TrimSpace(r.Mode)))
	if mode != entities.OrderModePickup && mode != entities.OrderModeDelivery {
		return "", false
	}
	return mode, true
}

func (r QuoteRequest) ToItems() []entities.OrderItem {
	return toItems(r.Items)
}
