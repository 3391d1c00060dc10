package entities

import (
	"math"
	"time"
)

// DeriveStatus computes the customer-facing status of an order from elapsed
// time alone. It is pure: persisting the terminal transition is the caller's
// job (see OrderUseCase.sealIfComplete), which keeps derivation trivially
// testable and repeat-read safe.
//
// Thresholds:
//
//	pickup:   ≤60s received, progress <0.6 preparing, <1.0 ready, else completed
//	delivery: ≤60s received, progress <0.5 preparing,
//	          0 < remaining ≤5min delivered, progress <1.0 on_the_way, else completed
//
// A non-positive ETA window yields progress 0, so such orders stay in the
// earliest buckets until resolved manually. A createdAt in the future clamps
// elapsed to zero rather than producing negative progress.
func DeriveStatus(mode OrderMode, createdAt time.Time, etaMin int, now time.Time) OrderStatus {
	window := time.Duration(etaMin) * time.Minute
	elapsed := now.Sub(createdAt)
	if elapsed < 0 {
		elapsed = 0
	}

	var progress float64
	if window > 0 {
		progress = float64(elapsed) / float64(window)
	}

	remainMin := int(math.Ceil(float64(window-elapsed) / float64(time.Minute)))
	if remainMin < 0 {
		remainMin = 0
	}

	if mode == OrderModePickup {
		switch {
		case elapsed <= time.Minute:
			return OrderStatusReceived
		case progress < 0.6:
			return OrderStatusPreparing
		case progress < 1.0:
			return OrderStatusReady
		default:
			return OrderStatusCompleted
		}
	}

	switch {
	case elapsed <= time.Minute:
		return OrderStatusReceived
	case progress < 0.5:
		return OrderStatusPreparing
	case remainMin > 0 && remainMin <= 5:
		return OrderStatusDelivered
	case progress < 1.0:
		return OrderStatusOnTheWay
	default:
		return OrderStatusCompleted
	}
}

// EffectiveStatus resolves the status shown to clients. Stored "completed" and
// a derived terminal state always win; otherwise a manual override set from
// the dashboard takes precedence over the time-derived bucket.
func (o Order) EffectiveStatus(now time.Time) OrderStatus {
	if o.Status == OrderStatusCompleted {
		return OrderStatusCompleted
	}
	derived := DeriveStatus(o.Mode, o.CreatedAt, o.EffectiveEta(), now)
	if derived == OrderStatusCompleted {
		return OrderStatusCompleted
	}
	if o.StatusManual != "" {
		return o.StatusManual
	}
	return derived
}

// RemainingMinutes is the whole minutes left in the ETA window, floored at 0.
func (o Order) RemainingMinutes(now time.Time) int {
	window := time.Duration(o.EffectiveEta()) * time.Minute
	elapsed := now.Sub(o.CreatedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	remain := int(math.Ceil(float64(window-elapsed) / float64(time.Minute)))
	if remain < 0 {
		return 0
	}
	return remain
}
