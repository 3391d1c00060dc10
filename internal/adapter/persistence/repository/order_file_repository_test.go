package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"burgerbude/internal/domain/entities"
)

func TestOrderFileRepository_CreateAndGet(t *testing.T) {
	repo := NewOrderFileRepository(t.TempDir())
	ctx := context.Background()

	o := entities.Order{
		ID:        "ABC123",
		Status:    entities.OrderStatusReceived,
		CreatedAt: time.Now(),
		EtaMin:    30,
		Mode:      entities.OrderModeDelivery,
		Items:     []entities.OrderItem{{Name: "Smash Burger", Price: 9.50, Qty: 1}},
	}
	if _, err := repo.Create(ctx, o); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, "ABC123")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "ABC123" || len(got.Items) != 1 || got.Items[0].Name != "Smash Burger" {
		t.Fatalf("unexpected order: %+v", got)
	}

	missing, err := repo.GetByID(ctx, "NOPE42")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing.ID != "" {
		t.Fatalf("expected zero order for unknown id, got %+v", missing)
	}
}

func TestOrderFileRepository_DuplicateID(t *testing.T) {
	repo := NewOrderFileRepository(t.TempDir())
	ctx := context.Background()

	o := entities.Order{ID: "ABC123", CreatedAt: time.Now()}
	if _, err := repo.Create(ctx, o); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, o); !errors.Is(err, ErrDuplicateOrderID) {
		t.Fatalf("expected ErrDuplicateOrderID, got %v", err)
	}
}

func TestOrderFileRepository_ListToday(t *testing.T) {
	repo := NewOrderFileRepository(t.TempDir())
	ctx := context.Background()
	now := time.Now()

	for _, o := range []entities.Order{
		{ID: "TODAY1", CreatedAt: now},
		{ID: "OLD001", CreatedAt: now.Add(-48 * time.Hour)},
	} {
		if _, err := repo.Create(ctx, o); err != nil {
			t.Fatalf("create %s: %v", o.ID, err)
		}
	}

	today, err := repo.ListToday(ctx, now)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(today) != 1 || today[0].ID != "TODAY1" {
		t.Fatalf("expected only today's order, got %+v", today)
	}
}

func TestOrderFileRepository_UpdateStatus(t *testing.T) {
	repo := NewOrderFileRepository(t.TempDir())
	ctx := context.Background()

	o := entities.Order{ID: "ABC123", Status: entities.OrderStatusReceived, CreatedAt: time.Now()}
	if _, err := repo.Create(ctx, o); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := repo.UpdateStatus(ctx, "ABC123", entities.OrderStatusCompleted)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != entities.OrderStatusCompleted {
		t.Fatalf("expected completed, got %s", updated.Status)
	}
	if updated.CompletedAt.IsZero() || updated.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps stamped: %+v", updated)
	}
	if n := len(updated.History); n == 0 || updated.History[n-1].Status != entities.OrderStatusCompleted {
		t.Fatalf("expected history entry, got %+v", updated.History)
	}

	// Unknown id follows the zero-order convention.
	missing, err := repo.UpdateStatus(ctx, "NOPE42", entities.OrderStatusCompleted)
	if err != nil {
		t.Fatalf("update missing: %v", err)
	}
	if missing.ID != "" {
		t.Fatalf("expected zero order, got %+v", missing)
	}
}

func TestOrderFileRepository_SetManualStatusAndEta(t *testing.T) {
	repo := NewOrderFileRepository(t.TempDir())
	ctx := context.Background()

	o := entities.Order{ID: "ABC123", Status: entities.OrderStatusReceived, CreatedAt: time.Now(), EtaMin: 30}
	if _, err := repo.Create(ctx, o); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := repo.SetManualStatus(ctx, "ABC123", entities.OrderStatusReady)
	if err != nil {
		t.Fatalf("set manual: %v", err)
	}
	if updated.StatusManual != entities.OrderStatusReady || updated.Status != entities.OrderStatusReceived {
		t.Fatalf("manual override must not touch the coarse status: %+v", updated)
	}

	updated, err = repo.SetEta(ctx, "ABC123", 0, 5)
	if err != nil {
		t.Fatalf("set eta: %v", err)
	}
	if updated.EtaMin != 30 || updated.EtaAdjustMin != 5 {
		t.Fatalf("expected base kept and +5 adjustment, got %+v", updated)
	}

	updated, err = repo.SetEta(ctx, "ABC123", 45, -5)
	if err != nil {
		t.Fatalf("set eta: %v", err)
	}
	if updated.EtaMin != 45 || updated.EtaAdjustMin != 0 {
		t.Fatalf("expected base replaced and adjustment summed, got %+v", updated)
	}
}

func TestOrderFileRepository_ConcurrentWrites(t *testing.T) {
	repo := NewOrderFileRepository(t.TempDir())
	ctx := context.Background()

	if _, err := repo.Create(ctx, entities.Order{ID: "ABC123", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("create: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.SetEta(ctx, "ABC123", 0, 1); err != nil {
				t.Errorf("set eta: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := repo.GetByID(ctx, "ABC123")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.EtaAdjustMin != 20 {
		t.Fatalf("lost updates: expected 20, got %d", got.EtaAdjustMin)
	}
}
