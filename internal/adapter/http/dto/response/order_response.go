package response

import (
	"time"

	"burgerbude/internal/domain/entities"
	"burgerbude/internal/usecase"
)

// OrderResponse is an order as served to the dashboard, TV and tracker UIs.
// Status is the effective (time-derived) status; StoredStatus the coarse
// persisted one.
type OrderResponse struct {
	ID           string                       `json:"id"`
	Status       string                       `json:"status"`
	StoredStatus string                       `json:"stored_status"`
	Mode         string                       `json:"mode"`
	Channel      string                       `json:"channel"`
	CreatedAt    time.Time                    `json:"created_at"`
	EtaMin       int                          `json:"eta_min"`
	EtaAdjustMin int                          `json:"eta_adjust_min,omitempty"`
	RemainingMin int                          `json:"remaining_min"`
	Planned      string                       `json:"planned,omitempty"`
	Items        []entities.OrderItem         `json:"items"`
	Totals       entities.OrderTotals         `json:"totals"`
	Customer     entities.Customer            `json:"customer"`
	Driver       *entities.Driver             `json:"driver,omitempty"`
	History      []entities.StatusHistoryItem `json:"history,omitempty"`
}

func FromOrderView(v usecase.OrderView) OrderResponse {
	return OrderResponse{
		ID:           v.ID,
		Status:       string(v.Effective),
		StoredStatus: string(v.Order.Status),
		Mode:         string(v.Mode),
		Channel:      string(v.Channel),
		CreatedAt:    v.CreatedAt,
		EtaMin:       v.EtaMin,
		EtaAdjustMin: v.EtaAdjustMin,
		RemainingMin: v.RemainingMin,
		Planned:      v.Planned,
		Items:        v.Items,
		Totals:       v.Totals,
		Customer:     v.Customer,
		Driver:       v.Driver,
		History:      v.History,
	}
}

// CreateOrderResponse confirms a checkout.
type CreateOrderResponse struct {
	ID      string        `json:"id"`
	EtaMin  int           `json:"eta_min"`
	Pricing QuoteResponse `json:"pricing"`
}

func FromCreatedOrder(o entities.Order, p entities.PricingBreakdown) CreateOrderResponse {
	return CreateOrderResponse{
		ID:      o.ID,
		EtaMin:  o.EtaMin,
		Pricing: FromPricing(p),
	}
}

// TodayBoardResponse is the kitchen/dashboard listing.
type TodayBoardResponse struct {
	Now    time.Time             `json:"now"`
	Counts usecase.ChannelCounts `json:"counts"`
	Orders []OrderResponse       `json:"orders"`
	Done   []OrderResponse       `json:"done"`
}

func FromTodayBoard(b usecase.TodayBoard) TodayBoardResponse {
	resp := TodayBoardResponse{
		Now:    b.Now,
		Counts: b.Counts,
		Orders: make([]OrderResponse, 0, len(b.Active)),
		Done:   make([]OrderResponse, 0, len(b.Done)),
	}
	for _, v := range b.Active {
		resp.Orders = append(resp.Orders, FromOrderView(v))
	}
	for _, v := range b.Done {
		resp.Done = append(resp.Done, FromOrderView(v))
	}
	return resp
}

// OkResponse acknowledges a successful mutation.
type OkResponse struct {
	OK bool `json:"ok"`
}

func Ok() OkResponse {
	return OkResponse{OK: true}
}
