package repository

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"burgerbude/internal/domain/entities"
	"burgerbude/internal/usecase/interfaces"
)

const ordersFileName = "orders.json"

// OrderFileRepository persists orders as a single JSON array on disk.
//
// Every operation is a full read-modify-write under the repository mutex, so
// in-process writers cannot overwrite each other; the write itself goes
// through a temp file + rename. This is the default backend for single-host
// deployments; the DynamoDB repository is the swappable alternative.

type OrderFileRepository struct {
	mu   sync.Mutex
	path string
	loc  *time.Location
}

var _ interfaces.IOrderRepository = (*OrderFileRepository)(nil)

func NewOrderFileRepository(dataDir string) *OrderFileRepository {
	return &OrderFileRepository{
		path: filepath.Join(dataDir, ordersFileName),
		loc:  restaurantLocation(),
	}
}

func (r *OrderFileRepository) readAll() ([]entities.Order, error) {
	var list []entities.Order
	if err := readJSONFile(r.path, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *OrderFileRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.readAll()
	if err != nil {
		return entities.Order{}, err
	}
	for i := range list {
		if list[i].ID == o.ID {
			return entities.Order{}, ErrDuplicateOrderID
		}
	}
	list = append(list, o)
	if err := writeJSONFileAtomic(r.path, list); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderFileRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.readAll()
	if err != nil {
		return entities.Order{}, err
	}
	for i := range list {
		if list[i].ID == id {
			return list[i], nil
		}
	}
	return entities.Order{}, nil
}

func (r *OrderFileRepository) ListToday(_ context.Context, now time.Time) ([]entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.readAll()
	if err != nil {
		return nil, err
	}
	start, end := dayRange(now, r.loc)
	var today []entities.Order
	for i := range list {
		if !list[i].CreatedAt.Before(start) && list[i].CreatedAt.Before(end) {
			today = append(today, list[i])
		}
	}
	return today, nil
}

func (r *OrderFileRepository) UpdateStatus(_ context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	return r.mutate(id, func(o *entities.Order, now time.Time) {
		o.Status = status
		o.PushHistory(status, now)
		if status == entities.OrderStatusCompleted && o.CompletedAt.IsZero() {
			o.CompletedAt = now
		}
	})
}

func (r *OrderFileRepository) SetManualStatus(_ context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	return r.mutate(id, func(o *entities.Order, _ time.Time) {
		o.StatusManual = status
	})
}

func (r *OrderFileRepository) SetEta(_ context.Context, id string, etaMin, adjustDelta int) (entities.Order, error) {
	return r.mutate(id, func(o *entities.Order, _ time.Time) {
		if etaMin > 0 {
			o.EtaMin = etaMin
		}
		o.EtaAdjustMin += adjustDelta
	})
}

// mutate applies fn to the order with the given id and persists the whole
// list. Returns a zero order when the id is unknown, matching the repository
// convention.
func (r *OrderFileRepository) mutate(id string, fn func(o *entities.Order, now time.Time)) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.readAll()
	if err != nil {
		return entities.Order{}, err
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		now := time.Now()
		fn(&list[i], now)
		list[i].UpdatedAt = now
		if err := writeJSONFileAtomic(r.path, list); err != nil {
			return entities.Order{}, err
		}
		return list[i], nil
	}
	return entities.Order{}, nil
}
