// Package memory implements the in-memory repositories. All state lives for
// the lifetime of the process.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ecotracker/internal/domain"
)

// DB holds per-session waste logs, the shared community ledger and the
// session table behind a single mutex, so every append is atomic and every
// read sees a consistent copy.
type DB struct {
	mu       sync.Mutex
	logs     map[string][]domain.WasteEntry
	ledger   []domain.ProgressSnapshot
	sessions map[string]*domain.Session

	entryIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		logs:     make(map[string][]domain.WasteEntry),
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.WasteRepository = (*DB)(nil)
var _ domain.LedgerRepository = (*DB)(nil)
var _ domain.SessionRepository = (*DB)(nil)

// --- WasteRepository ---

// AddWasteEntry appends an entry to a live session's log.
func (db *DB) AddWasteEntry(ctx context.Context, sessionID string, e domain.WasteEntry) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.sessions[sessionID]; !ok {
		return 0, fmt.Errorf("add waste entry: %w", domain.ErrSessionNotFound)
	}

	db.entryIDCounter++
	e.ID = db.entryIDCounter
	e.CreatedAt = e.CreatedAt.UTC()
	db.logs[sessionID] = append(db.logs[sessionID], e)
	return e.ID, nil
}

// ListWasteEntries returns a copy of the session's log in insertion order.
func (db *DB) ListWasteEntries(ctx context.Context, sessionID string) ([]domain.WasteEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	src := db.logs[sessionID]
	result := make([]domain.WasteEntry, len(src))
	copy(result, src)
	return result, nil
}

// --- LedgerRepository ---

// AppendSnapshot appends a snapshot to the shared ledger.
func (db *DB) AppendSnapshot(ctx context.Context, s domain.ProgressSnapshot) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	s.CreatedAt = s.CreatedAt.UTC()
	db.ledger = append(db.ledger, s)
	return nil
}

// ListSnapshots returns a copy of the ledger in append order.
func (db *DB) ListSnapshots(ctx context.Context) ([]domain.ProgressSnapshot, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.ProgressSnapshot, len(db.ledger))
	copy(result, db.ledger)
	return result, nil
}

// --- SessionRepository ---

// CreateSession stores a new session with an empty waste log.
func (db *DB) CreateSession(ctx context.Context, s domain.Session) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.sessions[s.ID]; ok {
		return fmt.Errorf("session %s already exists", s.UserID)
	}
	db.sessions[s.ID] = &s
	db.logs[s.ID] = nil
	return nil
}

// GetSession returns a copy of the session, or nil if it does not exist.
func (db *DB) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	s, ok := db.sessions[id]
	if !ok {
		return nil, nil
	}
	ret := *s
	return &ret, nil
}

// TouchSession records activity on a session.
func (db *DB) TouchSession(ctx context.Context, id string, lastSeen, expiresAt time.Time) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	s, ok := db.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	s.LastSeen = lastSeen
	s.ExpiresAt = expiresAt
	return nil
}

// DeleteSession removes a session together with its waste log.
func (db *DB) DeleteSession(ctx context.Context, id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	delete(db.sessions, id)
	delete(db.logs, id)
	return nil
}

// DeleteExpiredSessions removes every session expired at now.
func (db *DB) DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	n := 0
	for id, s := range db.sessions {
		if s.Expired(now) {
			delete(db.sessions, id)
			delete(db.logs, id)
			n++
		}
	}
	return n, nil
}
