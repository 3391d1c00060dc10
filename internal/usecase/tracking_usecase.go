package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"burgerbude/internal/domain/entities"
	"burgerbude/internal/usecase/interfaces"
)

var (
	ErrInvalidSessionID   = errors.New("invalid session id")
	ErrSessionNotFound    = errors.New("tracking session not found")
	ErrNoSessionForOrder  = errors.New("no session linked to order")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// PingCommand is one driver location report. Lat/Lng are required (a stop
// ping still carries coordinates, the original clients send 0/0); Active nil
// means "keep tracking".
type PingCommand struct {
	Lat      float64
	Lng      float64
	Speed    *float64
	Heading  *float64
	OrderIDs []string
	DriverID string
	Active   *bool
}

// SessionView pairs a session with its read-time staleness.
type SessionView struct {
	entities.TrackSession
	Stale bool
}

// ITrackingUseCase manages per-day-per-device driver location sessions.

type ITrackingUseCase interface {
	RecordPing(ctx context.Context, sessionID string, cmd PingCommand) (entities.TrackSession, error)
	GetSession(ctx context.Context, sessionID string) (SessionView, error)
	// GetSessionByOrder resolves order → session in two steps and reports
	// ErrNoSessionForOrder (no index entry) and ErrSessionNotFound (dangling
	// index entry) as distinct conditions.
	GetSessionByOrder(ctx context.Context, orderID string) (string, SessionView, error)
}

type TrackingUseCase struct {
	repo interfaces.ITrackingRepository
	now  func() time.Time
}

var _ ITrackingUseCase = (*TrackingUseCase)(nil)

func NewTrackingUseCase(repo interfaces.ITrackingRepository) *TrackingUseCase {
	return &TrackingUseCase{repo: repo, now: time.Now}
}

// RecordPing appends the point to the session (creating it on the first ping
// of the day), caps the history at the newest 200 points, attaches new order
// ids exactly once and repoints the order→session index at this session.
func (u *TrackingUseCase) RecordPing(ctx context.Context, sessionID string, cmd PingCommand) (entities.TrackSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.TrackSession{}, ErrInvalidSessionID
	}
	if cmd.Lat < -90 || cmd.Lat > 90 || cmd.Lng < -180 || cmd.Lng > 180 {
		return entities.TrackSession{}, ErrInvalidCoordinates
	}

	point := entities.TrackPoint{
		Lat:     cmd.Lat,
		Lng:     cmd.Lng,
		TS:      u.now(),
		Speed:   cmd.Speed,
		Heading: cmd.Heading,
	}

	return u.repo.MutateSession(ctx, sessionID, func(s *entities.TrackSession) {
		if s.ID == "" {
			s.ID = sessionID
		}
		s.RecordPing(point, cmd.OrderIDs, cmd.DriverID, cmd.Active)
	})
}

func (u *TrackingUseCase) GetSession(ctx context.Context, sessionID string) (SessionView, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return SessionView{}, ErrInvalidSessionID
	}
	s, err := u.repo.GetSession(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	if s.ID == "" {
		return SessionView{}, ErrSessionNotFound
	}
	return SessionView{TrackSession: s, Stale: s.Stale(u.now())}, nil
}

func (u *TrackingUseCase) GetSessionByOrder(ctx context.Context, orderID string) (string, SessionView, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return "", SessionView{}, ErrNoSessionForOrder
	}
	sid, err := u.repo.SessionIDForOrder(ctx, orderID)
	if err != nil {
		return "", SessionView{}, err
	}
	if sid == "" {
		return "", SessionView{}, ErrNoSessionForOrder
	}
	s, err := u.repo.GetSession(ctx, sid)
	if err != nil {
		return "", SessionView{}, err
	}
	if s.ID == "" {
		return sid, SessionView{}, ErrSessionNotFound
	}
	return sid, SessionView{TrackSession: s, Stale: s.Stale(u.now())}, nil
}
