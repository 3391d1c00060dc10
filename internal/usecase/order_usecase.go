package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"burgerbude/internal/domain/entities"
	"burgerbude/internal/metrics"
	"burgerbude/internal/usecase/interfaces"
	"burgerbude/pkg/orderid"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrEmptyCart       = errors.New("empty cart")
	ErrInvalidMode     = errors.New("invalid order mode")
	ErrMissingCustomer = errors.New("missing customer name")
	ErrMissingAddress  = errors.New("missing delivery address")
	ErrBelowMinimum    = errors.New("order below delivery minimum")
	ErrInvalidStatus   = errors.New("invalid order status")
)

// createIDAttempts bounds retry on an order-id collision. With a 32-char
// alphabet and 6 chars there are ~10^9 codes, so a second attempt is already
// exceptional.
const createIDAttempts = 5

// CreateOrderCommand is the checkout input after transport-level binding.
type CreateOrderCommand struct {
	Mode     entities.OrderMode
	Channel  entities.OrderChannel
	Items    []entities.OrderItem
	Customer entities.Customer
	Planned  string
	Coupon   string
	Notify   bool
}

// OrderView pairs a stored order with its read-time derived state.
type OrderView struct {
	entities.Order
	Effective    entities.OrderStatus
	RemainingMin int
}

// ChannelCounts summarizes today's orders for the dashboard header.
type ChannelCounts struct {
	Lieferando int `json:"lieferando"`
	Apollo     int `json:"apollo"`
	Web        int `json:"web"`
	Active     int `json:"active"`
	Done       int `json:"done"`
}

// TodayBoard is the kitchen/dashboard listing: today's orders with effective
// statuses, split into active and done.
type TodayBoard struct {
	Now    time.Time
	Counts ChannelCounts
	Active []OrderView
	Done   []OrderView
}

// IOrderUseCase exposes the order lifecycle operations.

type IOrderUseCase interface {
	Create(ctx context.Context, cmd CreateOrderCommand) (entities.Order, entities.PricingBreakdown, error)
	ListToday(ctx context.Context) (TodayBoard, error)
	GetByID(ctx context.Context, id string) (OrderView, error)
	SetStatus(ctx context.Context, id, status string) (entities.Order, error)
	AdjustEta(ctx context.Context, id string, etaMin, adjustDelta int) (entities.Order, error)
}

type OrderUseCase struct {
	repo     interfaces.IOrderRepository
	pricing  IPricingUseCase
	settings interfaces.ISettingsProvider
	notifier interfaces.IOrderNotifier
	now      func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	repo interfaces.IOrderRepository,
	pricing IPricingUseCase,
	settings interfaces.ISettingsProvider,
	notifier interfaces.IOrderNotifier,
) *OrderUseCase {
	return &OrderUseCase{
		repo:     repo,
		pricing:  pricing,
		settings: settings,
		notifier: notifier,
		now:      time.Now,
	}
}

// Create prices the cart, enforces the delivery minimum, generates the order
// id, stamps the ETA from the configured averages and persists the record.
// Notification is fire-and-forget: a failed send never fails the checkout.
func (u *OrderUseCase) Create(ctx context.Context, cmd CreateOrderCommand) (entities.Order, entities.PricingBreakdown, error) {
	if len(cmd.Items) == 0 {
		return entities.Order{}, entities.PricingBreakdown{}, ErrEmptyCart
	}
	if cmd.Mode != entities.OrderModePickup && cmd.Mode != entities.OrderModeDelivery {
		return entities.Order{}, entities.PricingBreakdown{}, ErrInvalidMode
	}
	if strings.TrimSpace(cmd.Customer.Name) == "" {
		return entities.Order{}, entities.PricingBreakdown{}, ErrMissingCustomer
	}
	if cmd.Mode == entities.OrderModeDelivery && strings.TrimSpace(cmd.Customer.Address) == "" {
		return entities.Order{}, entities.PricingBreakdown{}, ErrMissingAddress
	}

	pricing := u.pricing.Quote(cmd.Items, cmd.Mode, cmd.Customer.PostalCode)
	if cmd.Mode == entities.OrderModeDelivery && !pricing.MeetsMinimum {
		return entities.Order{}, pricing, ErrBelowMinimum
	}

	settings := u.settings.Get()
	now := u.now()

	o := entities.Order{
		Status:    entities.OrderStatusReceived,
		CreatedAt: now,
		UpdatedAt: now,
		EtaMin:    settings.EtaFor(cmd.Mode),
		Mode:      cmd.Mode,
		Channel:   cmd.Channel,
		Planned:   cmd.Planned,
		Items:     cmd.Items,
		Customer:  cmd.Customer,
		Totals: entities.OrderTotals{
			Merchandise: pricing.Merchandise,
			Discount:    pricing.Discount,
			Surcharges:  pricing.Surcharges,
			Total:       pricing.Total,
			Coupon:      cmd.Coupon,
		},
	}
	o.PushHistory(entities.OrderStatusReceived, now)

	created, err := u.createWithFreshID(ctx, o, settings.IDLengthOrDefault())
	if err != nil {
		return entities.Order{}, pricing, err
	}

	if cmd.Notify && u.notifier != nil {
		go func(o entities.Order) {
			if err := u.notifier.NotifyNewOrder(context.Background(), o); err != nil {
				log.Printf("[order][notify] send failed id=%s err=%v", o.ID, err)
			}
		}(created)
	}

	return created, pricing, nil
}

func (u *OrderUseCase) createWithFreshID(ctx context.Context, o entities.Order, idLength int) (entities.Order, error) {
	var lastErr error
	for i := 0; i < createIDAttempts; i++ {
		o.ID = orderid.New(idLength)
		existing, err := u.repo.GetByID(ctx, o.ID)
		if err != nil {
			return entities.Order{}, err
		}
		if existing.ID != "" {
			continue
		}
		created, err := u.repo.Create(ctx, o)
		if err == nil {
			return created, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errors.New("could not allocate an unused order id")
	}
	return entities.Order{}, lastErr
}

// ListToday returns today's orders with effective statuses. Orders whose
// derivation crossed into completed are sealed: the terminal status is
// persisted exactly once, and repeat reads skip the write because the stored
// status already matches.
func (u *OrderUseCase) ListToday(ctx context.Context) (TodayBoard, error) {
	now := u.now()
	orders, err := u.repo.ListToday(ctx, now)
	if err != nil {
		return TodayBoard{}, err
	}

	board := TodayBoard{Now: now}
	for _, o := range orders {
		o = u.sealIfComplete(ctx, o, now)
		view := OrderView{
			Order:        o,
			Effective:    o.EffectiveStatus(now),
			RemainingMin: o.RemainingMinutes(now),
		}

		switch o.Channel {
		case entities.OrderChannelLieferando:
			board.Counts.Lieferando++
		case entities.OrderChannelApollo:
			board.Counts.Apollo++
		default:
			board.Counts.Web++
		}

		if view.Effective == entities.OrderStatusCompleted {
			board.Counts.Done++
			board.Done = append(board.Done, view)
		} else {
			board.Counts.Active++
			board.Active = append(board.Active, view)
		}
	}
	return board, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (OrderView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return OrderView{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return OrderView{}, err
	}
	if o.ID == "" {
		return OrderView{}, ErrOrderNotFound
	}
	now := u.now()
	o = u.sealIfComplete(ctx, o, now)
	return OrderView{
		Order:        o,
		Effective:    o.EffectiveStatus(now),
		RemainingMin: o.RemainingMinutes(now),
	}, nil
}

// SetStatus applies a dashboard/TV status change. "completed" persists the
// terminal transition; any other valid status is recorded as a manual
// override consulted by the derivation until it reaches completed.
func (u *OrderUseCase) SetStatus(ctx context.Context, id, status string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	s := entities.OrderStatus(strings.ToLower(strings.TrimSpace(status)))
	if !entities.IsValidStatus(s) {
		return entities.Order{}, ErrInvalidStatus
	}

	var (
		updated entities.Order
		err     error
	)
	if s == entities.OrderStatusCompleted {
		updated, err = u.repo.UpdateStatus(ctx, id, s)
	} else {
		updated, err = u.repo.SetManualStatus(ctx, id, s)
	}
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

// AdjustEta replaces the base ETA (etaMin > 0) and/or shifts the adjustment
// minutes by adjustDelta (the dashboard's +5/−5 buttons).
func (u *OrderUseCase) AdjustEta(ctx context.Context, id string, etaMin, adjustDelta int) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	updated, err := u.repo.SetEta(ctx, id, etaMin, adjustDelta)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

// sealIfComplete persists the one-way transition to completed when the
// derived status has reached the terminal state. A failed write is logged and
// the order is still served with its derived status; the next poll retries.
func (u *OrderUseCase) sealIfComplete(ctx context.Context, o entities.Order, now time.Time) entities.Order {
	if o.Status == entities.OrderStatusCompleted {
		return o
	}
	if entities.DeriveStatus(o.Mode, o.CreatedAt, o.EffectiveEta(), now) != entities.OrderStatusCompleted {
		return o
	}
	sealed, err := u.repo.UpdateStatus(ctx, o.ID, entities.OrderStatusCompleted)
	if err != nil || sealed.ID == "" {
		log.Printf("[order][seal] persist completed failed id=%s err=%v", o.ID, err)
		return o
	}
	metrics.OrdersSealedTotal.Inc()
	return sealed
}
