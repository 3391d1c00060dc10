package interfaces

import (
	"context"

	"burgerbude/internal/domain/entities"
)

// IOrderNotifier receives a flattened order summary after checkout. Failures
// are logged by the caller, never propagated to the customer.
//
//go:generate mockgen -source=order_notifier_interface.go -destination=mocks/order_notifier_mock.go

type IOrderNotifier interface {
	NotifyNewOrder(ctx context.Context, o entities.Order) error
}
