package response

import (
	"testing"
	"time"

	"burgerbude/internal/domain/entities"
	"burgerbude/internal/usecase"
)

func TestFromSessionView(t *testing.T) {
	now := time.Now().UTC()
	last := entities.TrackPoint{Lat: 52.52, Lng: 13.40, TS: now}
	v := usecase.SessionView{
		TrackSession: entities.TrackSession{
			ID:        "sess_2025-03-10_dev42",
			CreatedAt: now,
			Active:    true,
			Last:      &last,
			History:   []entities.TrackPoint{last},
			Orders:    []string{"A1B2C3"},
			DriverID:  "maria",
		},
		Stale: true,
	}

	res := FromSessionView(v)
	if res.ID != "sess_2025-03-10_dev42" || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if !res.Active || !res.Stale {
		t.Fatalf("unexpected flags: %+v", res)
	}
	if res.Last == nil || res.Last.Lat != 52.52 {
		t.Fatalf("unexpected last fix: %+v", res.Last)
	}
	if len(res.History) != 1 || len(res.Orders) != 1 || res.DriverID != "maria" {
		t.Fatalf("unexpected session content: %+v", res)
	}
}

func TestFromSessionView_EmptySlices(t *testing.T) {
	res := FromSessionView(usecase.SessionView{
		TrackSession: entities.TrackSession{ID: "sess_2025-03-10_dev42"},
	})
	// nil would serialize as JSON null; clients expect arrays.
	if res.History == nil || len(res.History) != 0 {
		t.Fatalf("expected empty history slice, got %#v", res.History)
	}
	if res.Orders == nil || len(res.Orders) != 0 {
		t.Fatalf("expected empty orders slice, got %#v", res.Orders)
	}
}

func TestFromSessionByOrder(t *testing.T) {
	res := FromSessionByOrder("sess_2025-03-10_dev42", usecase.SessionView{
		TrackSession: entities.TrackSession{ID: "sess_2025-03-10_dev42"},
	})
	if res.SessionID != "sess_2025-03-10_dev42" || res.Session.ID != res.SessionID {
		t.Fatalf("unexpected mapping: %+v", res)
	}
}
