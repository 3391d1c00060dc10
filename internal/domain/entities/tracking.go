package entities

import (
	"fmt"
	"time"
)

// TrackHistoryLimit caps the per-session position history. Oldest points are
// evicted first, ring-buffer style.
const TrackHistoryLimit = 200

// StaleAfter is how long a session may go without a ping before reads report
// it as stale. Staleness is derived on read; Active is only ever flipped by an
// explicit stop ping.
const StaleAfter = 15 * time.Minute

// TrackPoint is a single driver GPS fix. Speed and Heading are optional and
// kept as pointers so absent values survive round-trips unchanged.
type TrackPoint struct {
	Lat     float64   `json:"lat"`
	Lng     float64   `json:"lng"`
	TS      time.Time `json:"ts"`
	Speed   *float64  `json:"speed,omitempty"`
	Heading *float64  `json:"heading,omitempty"`
}

// TrackSession aggregates one driver device's pings for one calendar day.
//
// The id is deterministic (see SessionID), so each device gets exactly one
// session per day and a new day silently starts a fresh session with an empty
// order list.
type TrackSession struct {
	ID        string       `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	Active    bool         `json:"active"`
	Last      *TrackPoint  `json:"last,omitempty"`
	History   []TrackPoint `json:"history"`
	Orders    []string     `json:"orders"`
	DriverID  string       `json:"driver_id,omitempty"`
}

// SessionID builds the deterministic per-day-per-device session id.
func SessionID(day time.Time, deviceID string) string {
	return fmt.Sprintf("sess_%s_%s", day.Format("2006-01-02"), deviceID)
}

// RecordPing applies one ping: updates the last fix, appends to the bounded
// history, attaches any new order ids (idempotent) and resolves the active
// flag. active == nil defaults to true.
func (s *TrackSession) RecordPing(point TrackPoint, orderIDs []string, driverID string, active *bool) {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = point.TS
	}
	last := point
	s.Last = &last
	s.Active = active == nil || *active
	if driverID != "" && s.DriverID == "" {
		s.DriverID = driverID
	}

	s.History = append(s.History, point)
	if len(s.History) > TrackHistoryLimit {
		s.History = s.History[len(s.History)-TrackHistoryLimit:]
	}

	for _, oid := range orderIDs {
		if oid == "" || s.hasOrder(oid) {
			continue
		}
		s.Orders = append(s.Orders, oid)
	}
}

func (s *TrackSession) hasOrder(id string) bool {
	for _, o := range s.Orders {
		if o == id {
			return true
		}
	}
	return false
}

// Stale reports whether the session has not pinged within StaleAfter.
func (s TrackSession) Stale(now time.Time) bool {
	if s.Last == nil {
		return now.Sub(s.CreatedAt) > StaleAfter
	}
	return now.Sub(s.Last.TS) > StaleAfter
}
