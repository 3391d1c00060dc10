package interfaces

import (
	"context"

	"burgerbude/internal/domain/entities"
)

// ITrackingRepository abstracts driver tracking persistence.
//
// MutateSession is the single write path: the repository loads the session
// (zero value when new), applies the mutation and stores the result together
// with the order→session index entries for every order id attached to the
// session. The file backend holds its lock across the whole read-modify-write
// so concurrent pings cannot overwrite each other.
//
//go:generate mockgen -source=tracking_repository_interface.go -destination=mocks/tracking_repository_mock.go

type ITrackingRepository interface {
	// GetSession returns a zero session (ID == "") when the id is unknown.
	GetSession(ctx context.Context, id string) (entities.TrackSession, error)
	// SessionIDForOrder returns "" when no session has reported the order.
	SessionIDForOrder(ctx context.Context, orderID string) (string, error)
	MutateSession(ctx context.Context, id string, mutate func(*entities.TrackSession)) (entities.TrackSession, error)
}
