package entities

import (
	"fmt"
	"testing"
	"time"
)

func TestSessionID(t *testing.T) {
	day := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	if got := SessionID(day, "dev42"); got != "sess_2025-03-10_dev42" {
		t.Fatalf("unexpected session id: %q", got)
	}
}

func TestTrackSession_RecordPing(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("first ping initializes the session", func(t *testing.T) {
		var s TrackSession
		s.RecordPing(TrackPoint{Lat: 52.5, Lng: 13.4, TS: base}, []string{"A1"}, "drv-1", nil)

		if !s.CreatedAt.Equal(base) {
			t.Fatalf("expected createdAt %v, got %v", base, s.CreatedAt)
		}
		if !s.Active {
			t.Fatalf("nil active must default to true")
		}
		if s.Last == nil || s.Last.Lat != 52.5 {
			t.Fatalf("expected last point set, got %+v", s.Last)
		}
		if len(s.History) != 1 || len(s.Orders) != 1 || s.Orders[0] != "A1" {
			t.Fatalf("unexpected state: history=%d orders=%v", len(s.History), s.Orders)
		}
		if s.DriverID != "drv-1" {
			t.Fatalf("expected driver id recorded, got %q", s.DriverID)
		}
	})

	t.Run("history capped at newest points", func(t *testing.T) {
		var s TrackSession
		total := TrackHistoryLimit + 1
		for i := 0; i < total; i++ {
			s.RecordPing(TrackPoint{Lat: float64(i), TS: base.Add(time.Duration(i) * time.Second)}, nil, "", nil)
		}
		if len(s.History) != TrackHistoryLimit {
			t.Fatalf("expected %d points, got %d", TrackHistoryLimit, len(s.History))
		}
		// Point #0 evicted, #1..#200 kept.
		if s.History[0].Lat != 1 {
			t.Fatalf("expected oldest kept point lat=1, got %v", s.History[0].Lat)
		}
		if s.History[len(s.History)-1].Lat != float64(total-1) {
			t.Fatalf("expected newest point lat=%d, got %v", total-1, s.History[len(s.History)-1].Lat)
		}
	})

	t.Run("order attach is idempotent", func(t *testing.T) {
		var s TrackSession
		s.RecordPing(TrackPoint{TS: base}, []string{"A1", "B2"}, "", nil)
		s.RecordPing(TrackPoint{TS: base.Add(time.Second)}, []string{"A1", "", "C3"}, "", nil)

		if fmt.Sprint(s.Orders) != "[A1 B2 C3]" {
			t.Fatalf("unexpected orders: %v", s.Orders)
		}
	})

	t.Run("driver id sticks to the first reporter", func(t *testing.T) {
		var s TrackSession
		s.RecordPing(TrackPoint{TS: base}, nil, "drv-1", nil)
		s.RecordPing(TrackPoint{TS: base.Add(time.Second)}, nil, "drv-2", nil)
		if s.DriverID != "drv-1" {
			t.Fatalf("expected drv-1, got %q", s.DriverID)
		}
	})

	t.Run("stop ping flips active", func(t *testing.T) {
		var s TrackSession
		s.RecordPing(TrackPoint{TS: base}, nil, "", nil)
		stop := false
		s.RecordPing(TrackPoint{TS: base.Add(time.Second)}, nil, "", &stop)
		if s.Active {
			t.Fatalf("expected inactive after stop ping")
		}
	})
}

func TestTrackSession_Stale(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	var s TrackSession
	s.RecordPing(TrackPoint{TS: base}, nil, "", nil)

	if s.Stale(base.Add(14 * time.Minute)) {
		t.Fatalf("expected fresh session")
	}
	if !s.Stale(base.Add(16 * time.Minute)) {
		t.Fatalf("expected stale session")
	}

	empty := TrackSession{CreatedAt: base}
	if !empty.Stale(base.Add(20 * time.Minute)) {
		t.Fatalf("expected pingless session to go stale from createdAt")
	}
}
