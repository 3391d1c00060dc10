package interfaces

import (
	"context"
	"time"

	"burgerbude/internal/domain/entities"
)

// IOrderRepository abstracts order persistence (JSON file or DynamoDB).
//
// Conventions shared by all implementations:
//   - lookups return a zero Order with a nil error when the id is unknown;
//     callers check ID == ""
//   - orders are never deleted; history is append-only
//   - each targeted update is a serialized read-modify-write for its backend
//
//go:generate mockgen -source=order_repository_interface.go -destination=mocks/order_repository_mock.go

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	// ListToday returns orders created within the restaurant-local day
	// containing now.
	ListToday(ctx context.Context, now time.Time) ([]entities.Order, error)
	// UpdateStatus persists a coarse status transition (history, completedAt).
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	// SetManualStatus records a dashboard override without touching the
	// coarse status.
	SetManualStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	// SetEta replaces the base ETA when etaMin > 0 and applies adjustDelta
	// to the adjustment minutes.
	SetEta(ctx context.Context, id string, etaMin, adjustDelta int) (entities.Order, error)
}
