package entities

import "time"

// OrderStatus represents the coarse persisted lifecycle of an order.
//
// Domain notes:
//   - The persisted status is intentionally coarse; the customer-facing status is
//     derived from elapsed time on every read (see DeriveStatus).
//   - "completed" is terminal. It is the only status written by the derivation
//     path; everything else is either the initial "received" or a manual override.

type OrderStatus string

const (
	OrderStatusReceived  OrderStatus = "received"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusOnTheWay  OrderStatus = "on_the_way"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCompleted OrderStatus = "completed"
)

// allowedStatuses is the full set accepted by the manual status endpoint.
var allowedStatuses = map[OrderStatus]struct{}{
	OrderStatusReceived:  {},
	OrderStatusPreparing: {},
	OrderStatusReady:     {},
	OrderStatusOnTheWay:  {},
	OrderStatusDelivered: {},
	OrderStatusCompleted: {},
}

// IsValidStatus reports whether s is one of the known order statuses.
func IsValidStatus(s OrderStatus) bool {
	_, ok := allowedStatuses[s]
	return ok
}

// NormalizeStatus maps legacy status spellings onto the current set. Unknown
// values fall back to "received" so that old records stay readable.
func NormalizeStatus(s string) OrderStatus {
	switch OrderStatus(s) {
	case OrderStatusReceived, OrderStatusPreparing, OrderStatusReady,
		OrderStatusOnTheWay, OrderStatusDelivered, OrderStatusCompleted:
		return OrderStatus(s)
	}
	switch s {
	case "in_progress":
		return OrderStatusPreparing
	case "done":
		return OrderStatusCompleted
	}
	return OrderStatusReceived
}

// OrderMode distinguishes pickup from delivery orders. Mode decides the ETA
// default, the status derivation thresholds and whether postal-code minimum
// gating applies.

type OrderMode string

const (
	OrderModePickup   OrderMode = "pickup"
	OrderModeDelivery OrderMode = "delivery"
)

// OrderChannel is the sales channel an order arrived through.

type OrderChannel string

const (
	OrderChannelWeb        OrderChannel = "web"
	OrderChannelApollo     OrderChannel = "apollo"
	OrderChannelLieferando OrderChannel = "lieferando"
)

// NormalizeChannel maps raw channel strings (including the historic
// "liferando" misspelling) onto the known set, defaulting to web.
func NormalizeChannel(c string) OrderChannel {
	switch c {
	case string(OrderChannelApollo):
		return OrderChannelApollo
	case string(OrderChannelLieferando), "liferando":
		return OrderChannelLieferando
	}
	return OrderChannelWeb
}

// AddOn is a priced extra attached to a cart line.
type AddOn struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OrderItem is a single cart line.
type OrderItem struct {
	SKU      string   `json:"sku,omitempty"`
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	Price    float64  `json:"price"`
	Qty      int      `json:"qty"`
	AddOns   []AddOn  `json:"add,omitempty"`
	Removed  []string `json:"rm,omitempty"`
	Note     string   `json:"note,omitempty"`
}

// OrderTotals is the persisted pricing snapshot taken at checkout.
type OrderTotals struct {
	Merchandise    float64 `json:"merchandise"`
	Discount       float64 `json:"discount"`
	Surcharges     float64 `json:"surcharges"`
	Total          float64 `json:"total"`
	Coupon         string  `json:"coupon,omitempty"`
	CouponDiscount float64 `json:"coupon_discount,omitempty"`
}

// Customer holds checkout contact data. Address is the merged street/number
// string for delivery orders.
type Customer struct {
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// Driver is an optional delivery driver assignment.
type Driver struct {
	ID         string    `json:"id,omitempty"`
	Name       string    `json:"name,omitempty"`
	DeviceID   string    `json:"device_id,omitempty"`
	AssignedAt time.Time `json:"assigned_at,omitzero"`
}

// StatusHistoryItem records one persisted status transition.
type StatusHistoryItem struct {
	Status OrderStatus `json:"status"`
	At     time.Time   `json:"at"`
}

// Order is the persisted order record.
//
// Records are append-only within a day file: orders are created once at
// checkout and later only mutated (status, ETA, driver), never deleted.
type Order struct {
	ID           string              `json:"id"`
	Status       OrderStatus         `json:"status"`
	StatusManual OrderStatus         `json:"status_manual,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at,omitzero"`
	CompletedAt  time.Time           `json:"completed_at,omitzero"`
	EtaMin       int                 `json:"eta_min"`
	EtaAdjustMin int                 `json:"eta_adjust_min,omitempty"`
	Mode         OrderMode           `json:"mode"`
	Channel      OrderChannel        `json:"channel"`
	Planned      string              `json:"planned,omitempty"`
	Items        []OrderItem         `json:"items"`
	Totals       OrderTotals         `json:"totals"`
	Customer     Customer            `json:"customer"`
	Driver       *Driver             `json:"driver,omitempty"`
	History      []StatusHistoryItem `json:"history,omitempty"`
}

// EffectiveEta is the base ETA plus kitchen adjustments, floored at zero.
func (o Order) EffectiveEta() int {
	eta := o.EtaMin + o.EtaAdjustMin
	if eta < 0 {
		return 0
	}
	return eta
}

// PushHistory appends a status transition, skipping consecutive duplicates.
func (o *Order) PushHistory(status OrderStatus, at time.Time) {
	if n := len(o.History); n > 0 && o.History[n-1].Status == status {
		return
	}
	o.History = append(o.History, StatusHistoryItem{Status: status, At: at})
}
