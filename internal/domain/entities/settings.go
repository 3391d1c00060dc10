package entities

// PricingOverrides carries the mode-specific pricing configuration: discount
// rate, per-category delivery surcharges and the postal-code minimum-order
// table. All read-only to the pricing engine.
type PricingOverrides struct {
	DiscountRate   float64            `json:"discount_rate"`
	Surcharges     map[string]float64 `json:"surcharges,omitempty"`
	PostalMinimums map[string]float64 `json:"postal_minimums,omitempty"`
}

// HoursSettings holds the average fulfilment minutes used as ETA defaults.
type HoursSettings struct {
	AvgPickupMinutes   int `json:"avg_pickup_minutes"`
	AvgDeliveryMinutes int `json:"avg_delivery_minutes"`
}

// OrdersSettings tunes order-record generation.
type OrdersSettings struct {
	IDLength int `json:"id_length"`
}

// TelegramSettings configures the new-order notification bot. Empty token or
// chat id disables notifications.
type TelegramSettings struct {
	BotToken string `json:"bot_token,omitempty"`
	ChatID   string `json:"chat_id,omitempty"`
}

// ServerSettings is the full back-office configuration document.
type ServerSettings struct {
	Hours    HoursSettings               `json:"hours"`
	Orders   OrdersSettings              `json:"orders"`
	Pricing  map[string]PricingOverrides `json:"pricing,omitempty"`
	Telegram TelegramSettings            `json:"telegram"`
}

// PricingFor returns the overrides for a mode, or a zero value when the mode
// has no configuration (zero discount, no surcharges, no known postal codes).
func (s ServerSettings) PricingFor(mode OrderMode) PricingOverrides {
	if s.Pricing == nil {
		return PricingOverrides{}
	}
	return s.Pricing[string(mode)]
}

// EtaFor returns the configured average minutes for a mode, with the
// historical 15/35 fallbacks when unset.
func (s ServerSettings) EtaFor(mode OrderMode) int {
	if mode == OrderModePickup {
		if s.Hours.AvgPickupMinutes > 0 {
			return s.Hours.AvgPickupMinutes
		}
		return 15
	}
	if s.Hours.AvgDeliveryMinutes > 0 {
		return s.Hours.AvgDeliveryMinutes
	}
	return 35
}

// IDLengthOrDefault returns the configured order id length, defaulting to 6.
func (s ServerSettings) IDLengthOrDefault() int {
	if s.Orders.IDLength > 0 {
		return s.Orders.IDLength
	}
	return 6
}
