package app_test

import (
	"context"
	"time"

	"ecotracker/internal/domain"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

var testSession = &domain.Session{ID: "token", UserID: "user_test"}

type mockWasteRepo struct {
	addFn  func(ctx context.Context, sessionID string, e domain.WasteEntry) (int64, error)
	listFn func(ctx context.Context, sessionID string) ([]domain.WasteEntry, error)
}

func (m *mockWasteRepo) AddWasteEntry(ctx context.Context, sessionID string, e domain.WasteEntry) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, sessionID, e)
	}
	return 1, nil
}

func (m *mockWasteRepo) ListWasteEntries(ctx context.Context, sessionID string) ([]domain.WasteEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, sessionID)
	}
	return nil, nil
}

func entries(items ...domain.WasteEntry) *mockWasteRepo {
	return &mockWasteRepo{
		listFn: func(_ context.Context, _ string) ([]domain.WasteEntry, error) {
			out := make([]domain.WasteEntry, len(items))
			copy(out, items)
			return out, nil
		},
	}
}

type mockLedgerRepo struct {
	appendFn func(ctx context.Context, s domain.ProgressSnapshot) error
	listFn   func(ctx context.Context) ([]domain.ProgressSnapshot, error)
}

func (m *mockLedgerRepo) AppendSnapshot(ctx context.Context, s domain.ProgressSnapshot) error {
	if m.appendFn != nil {
		return m.appendFn(ctx, s)
	}
	return nil
}

func (m *mockLedgerRepo) ListSnapshots(ctx context.Context) ([]domain.ProgressSnapshot, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

type mockSessionRepo struct {
	createFn  func(ctx context.Context, s domain.Session) error
	getFn     func(ctx context.Context, id string) (*domain.Session, error)
	touchFn   func(ctx context.Context, id string, lastSeen, expiresAt time.Time) error
	deleteFn  func(ctx context.Context, id string) error
	expiredFn func(ctx context.Context, now time.Time) (int, error)
}

func (m *mockSessionRepo) CreateSession(ctx context.Context, s domain.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, s)
	}
	return nil
}

func (m *mockSessionRepo) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSessionRepo) TouchSession(ctx context.Context, id string, lastSeen, expiresAt time.Time) error {
	if m.touchFn != nil {
		return m.touchFn(ctx, id, lastSeen, expiresAt)
	}
	return nil
}

func (m *mockSessionRepo) DeleteSession(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error) {
	if m.expiredFn != nil {
		return m.expiredFn(ctx, now)
	}
	return 0, nil
}
