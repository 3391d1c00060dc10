package repository

import (
	"context"
	"path/filepath"
	"sync"

	"burgerbude/internal/domain/entities"
	"burgerbude/internal/usecase/interfaces"
)

const trackingFileName = "tracking.json"

// trackingDB is the on-disk document: all sessions plus the global
// order→session index pointing each order id at the latest session that
// reported it.
type trackingDB struct {
	Sessions       map[string]entities.TrackSession `json:"sessions"`
	OrderToSession map[string]string                `json:"orderToSession"`
}

// TrackingFileRepository persists tracking sessions in a single JSON document.
// MutateSession holds the mutex across the whole read-modify-write, so
// concurrent pings serialize instead of silently dropping each other's points.

type TrackingFileRepository struct {
	mu   sync.Mutex
	path string
}

var _ interfaces.ITrackingRepository = (*TrackingFileRepository)(nil)

func NewTrackingFileRepository(dataDir string) *TrackingFileRepository {
	return &TrackingFileRepository{path: filepath.Join(dataDir, trackingFileName)}
}

func (r *TrackingFileRepository) readDB() (trackingDB, error) {
	db := trackingDB{}
	if err := readJSONFile(r.path, &db); err != nil {
		return trackingDB{}, err
	}
	if db.Sessions == nil {
		db.Sessions = map[string]entities.TrackSession{}
	}
	if db.OrderToSession == nil {
		db.OrderToSession = map[string]string{}
	}
	return db, nil
}

func (r *TrackingFileRepository) GetSession(_ context.Context, id string) (entities.TrackSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	db, err := r.readDB()
	if err != nil {
		return entities.TrackSession{}, err
	}
	return db.Sessions[id], nil
}

func (r *TrackingFileRepository) SessionIDForOrder(_ context.Context, orderID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	db, err := r.readDB()
	if err != nil {
		return "", err
	}
	return db.OrderToSession[orderID], nil
}

func (r *TrackingFileRepository) MutateSession(_ context.Context, id string, mutate func(*entities.TrackSession)) (entities.TrackSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	db, err := r.readDB()
	if err != nil {
		return entities.TrackSession{}, err
	}

	s := db.Sessions[id]
	mutate(&s)
	db.Sessions[id] = s
	for _, oid := range s.Orders {
		db.OrderToSession[oid] = id
	}

	if err := writeJSONFileAtomic(r.path, db); err != nil {
		return entities.TrackSession{}, err
	}
	return s, nil
}
