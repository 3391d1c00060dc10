package response

import (
	"time"

	"burgerbude/internal/domain/entities"
	"burgerbude/internal/usecase"
)

// SessionResponse is a tracking session as served to driver and tracker UIs.
// Stale is derived at read time; Active only changes on an explicit stop.
type SessionResponse struct {
	ID        string                `json:"id"`
	CreatedAt time.Time             `json:"created_at"`
	Active    bool                  `json:"active"`
	Stale     bool                  `json:"stale"`
	Last      *entities.TrackPoint  `json:"last,omitempty"`
	History   []entities.TrackPoint `json:"history"`
	Orders    []string              `json:"orders"`
	DriverID  string                `json:"driver_id,omitempty"`
}

func FromSessionView(v usecase.SessionView) SessionResponse {
	history := v.History
	if history == nil {
		history = []entities.TrackPoint{}
	}
	orders := v.Orders
	if orders == nil {
		orders = []string{}
	}
	return SessionResponse{
		ID:        v.ID,
		CreatedAt: v.CreatedAt,
		Active:    v.Active,
		Stale:     v.Stale,
		Last:      v.Last,
		History:   history,
		Orders:    orders,
		DriverID:  v.DriverID,
	}
}

// SessionByOrderResponse pairs the resolved session id with the session.
type SessionByOrderResponse struct {
	SessionID string          `json:"sessionId"`
	Session   SessionResponse `json:"session"`
}

func FromSessionByOrder(sessionID string, v usecase.SessionView) SessionByOrderResponse {
	return SessionByOrderResponse{
		SessionID: sessionID,
		Session:   FromSessionView(v),
	}
}
