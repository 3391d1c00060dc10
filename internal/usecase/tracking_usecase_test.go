package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"burgerbude/internal/domain/entities"
	mock_interfaces "burgerbude/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTrackingFixture(t *testing.T) (*mock_interfaces.MockITrackingRepository, *TrackingUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mock_interfaces.NewMockITrackingRepository(ctrl)
	return repo, NewTrackingUseCase(repo)
}

func TestTrackingUseCase_RecordPing(t *testing.T) {
	t.Run("blank session id", func(t *testing.T) {
		_, uc := newTrackingFixture(t)
		_, err := uc.RecordPing(context.Background(), "  ", PingCommand{Lat: 52.5, Lng: 13.4})
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("out of range coordinates", func(t *testing.T) {
		_, uc := newTrackingFixture(t)
		for _, cmd := range []PingCommand{
			{Lat: 91, Lng: 0},
			{Lat: -91, Lng: 0},
			{Lat: 0, Lng: 181},
			{Lat: 0, Lng: -181},
		} {
			if _, err := uc.RecordPing(context.Background(), "sess_2025-03-10_dev1", cmd); !errors.Is(err, ErrInvalidCoordinates) {
				t.Fatalf("expected ErrInvalidCoordinates for %+v, got %v", cmd, err)
			}
		}
	})

	t.Run("first ping creates the session", func(t *testing.T) {
		repo, uc := newTrackingFixture(t)
		now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return now }

		repo.EXPECT().MutateSession(gomock.Any(), "sess_2025-03-10_dev1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, mutate func(*entities.TrackSession)) (entities.TrackSession, error) {
				var s entities.TrackSession
				mutate(&s)
				return s, nil
			},
		)

		s, err := uc.RecordPing(context.Background(), "sess_2025-03-10_dev1", PingCommand{
			Lat:      52.5,
			Lng:      13.4,
			OrderIDs: []string{"A1"},
			DriverID: "drv-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID != "sess_2025-03-10_dev1" {
			t.Fatalf("expected session id assigned, got %q", s.ID)
		}
		if s.Last == nil || !s.Last.TS.Equal(now) {
			t.Fatalf("expected server-side timestamp, got %+v", s.Last)
		}
		if len(s.Orders) != 1 || s.Orders[0] != "A1" {
			t.Fatalf("expected order attached, got %v", s.Orders)
		}
	})
}

func TestTrackingUseCase_GetSession(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		_, uc := newTrackingFixture(t)
		_, err := uc.GetSession(context.Background(), " ")
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo, uc := newTrackingFixture(t)
		repo.EXPECT().GetSession(gomock.Any(), "sess_2025-03-10_ghost").Return(entities.TrackSession{}, nil)
		_, err := uc.GetSession(context.Background(), "sess_2025-03-10_ghost")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("staleness derived on read", func(t *testing.T) {
		repo, uc := newTrackingFixture(t)
		last := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return last.Add(20 * time.Minute) }

		repo.EXPECT().GetSession(gomock.Any(), "sess_2025-03-10_dev1").Return(entities.TrackSession{
			ID:     "sess_2025-03-10_dev1",
			Active: true,
			Last:   &entities.TrackPoint{TS: last},
		}, nil)

		view, err := uc.GetSession(context.Background(), "sess_2025-03-10_dev1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !view.Stale {
			t.Fatalf("expected stale view")
		}
		if !view.Active {
			t.Fatalf("staleness must not flip the active flag")
		}
	})
}

func TestTrackingUseCase_GetSessionByOrder(t *testing.T) {
	t.Run("no index entry", func(t *testing.T) {
		repo, uc := newTrackingFixture(t)
		repo.EXPECT().SessionIDForOrder(gomock.Any(), "A1").Return("", nil)
		_, _, err := uc.GetSessionByOrder(context.Background(), "A1")
		if !errors.Is(err, ErrNoSessionForOrder) {
			t.Fatalf("expected ErrNoSessionForOrder, got %v", err)
		}
	})

	t.Run("dangling index entry", func(t *testing.T) {
		repo, uc := newTrackingFixture(t)
		repo.EXPECT().SessionIDForOrder(gomock.Any(), "A1").Return("sess_2025-03-09_dev1", nil)
		repo.EXPECT().GetSession(gomock.Any(), "sess_2025-03-09_dev1").Return(entities.TrackSession{}, nil)
		_, _, err := uc.GetSessionByOrder(context.Background(), "A1")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("resolves session", func(t *testing.T) {
		repo, uc := newTrackingFixture(t)
		last := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return last.Add(time.Minute) }

		repo.EXPECT().SessionIDForOrder(gomock.Any(), "A1").Return("sess_2025-03-10_dev1", nil)
		repo.EXPECT().GetSession(gomock.Any(), "sess_2025-03-10_dev1").Return(entities.TrackSession{
			ID:     "sess_2025-03-10_dev1",
			Active: true,
			Last:   &entities.TrackPoint{TS: last},
			Orders: []string{"A1"},
		}, nil)

		sid, view, err := uc.GetSessionByOrder(context.Background(), "A1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sid != "sess_2025-03-10_dev1" || view.Stale {
			t.Fatalf("unexpected view: sid=%q stale=%v", sid, view.Stale)
		}
	})
}
