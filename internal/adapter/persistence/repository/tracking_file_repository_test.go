package repository

import (
	"context"
	"testing"
	"time"

	"burgerbude/internal/domain/entities"
)

func TestTrackingFileRepository_MutateSession(t *testing.T) {
	repo := NewTrackingFileRepository(t.TempDir())
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	s, err := repo.MutateSession(ctx, "sess_2025-03-10_dev1", func(s *entities.TrackSession) {
		s.ID = "sess_2025-03-10_dev1"
		s.RecordPing(entities.TrackPoint{Lat: 52.5, Lng: 13.4, TS: now}, []string{"A1"}, "drv-1", nil)
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if len(s.History) != 1 || s.Orders[0] != "A1" {
		t.Fatalf("unexpected session: %+v", s)
	}

	got, err := repo.GetSession(ctx, "sess_2025-03-10_dev1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "sess_2025-03-10_dev1" || got.Last == nil || got.Last.Lat != 52.5 {
		t.Fatalf("round trip lost data: %+v", got)
	}

	sid, err := repo.SessionIDForOrder(ctx, "A1")
	if err != nil {
		t.Fatalf("index lookup: %v", err)
	}
	if sid != "sess_2025-03-10_dev1" {
		t.Fatalf("expected index entry, got %q", sid)
	}
}

func TestTrackingFileRepository_IndexRepointsToLatestSession(t *testing.T) {
	repo := NewTrackingFileRepository(t.TempDir())
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	for _, id := range []string{"sess_2025-03-10_dev1", "sess_2025-03-11_dev1"} {
		if _, err := repo.MutateSession(ctx, id, func(s *entities.TrackSession) {
			s.ID = id
			s.RecordPing(entities.TrackPoint{TS: now}, []string{"A1"}, "", nil)
		}); err != nil {
			t.Fatalf("mutate %s: %v", id, err)
		}
	}

	sid, err := repo.SessionIDForOrder(ctx, "A1")
	if err != nil {
		t.Fatalf("index lookup: %v", err)
	}
	if sid != "sess_2025-03-11_dev1" {
		t.Fatalf("expected index pointing at latest session, got %q", sid)
	}
}

func TestTrackingFileRepository_MissingSession(t *testing.T) {
	repo := NewTrackingFileRepository(t.TempDir())
	ctx := context.Background()

	s, err := repo.GetSession(ctx, "sess_2025-03-10_ghost")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s.ID != "" {
		t.Fatalf("expected zero session, got %+v", s)
	}

	sid, err := repo.SessionIDForOrder(ctx, "NOPE42")
	if err != nil {
		t.Fatalf("index lookup: %v", err)
	}
	if sid != "" {
		t.Fatalf("expected empty index entry, got %q", sid)
	}
}
