package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecotracker/internal/domain"
)

func newSession(t *testing.T, db *DB, id string, expiresAt time.Time) {
	t.Helper()
	require.NoError(t, db.CreateSession(context.Background(), domain.Session{
		ID: id, UserID: "user_" + id, CreatedAt: time.Now(), ExpiresAt: expiresAt,
	}))
}

func TestWasteRepository(t *testing.T) {
	db := New()
	ctx := context.Background()
	newSession(t, db, "s1", time.Now().Add(time.Hour))

	now := time.Now()
	id, err := db.AddWasteEntry(ctx, "s1", domain.WasteEntry{Category: domain.Plastic, WeightKg: 2, CreatedAt: now})
	require.NoError(t, err)
	assert.NotZero(t, id)
	_, err = db.AddWasteEntry(ctx, "s1", domain.WasteEntry{Category: domain.Paper, WeightKg: 1, Recycled: true, CreatedAt: now.Add(time.Minute)})
	require.NoError(t, err)

	entries, err := db.ListWasteEntries(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.Plastic, entries[0].Category, "insertion order preserved")
	assert.Equal(t, domain.Paper, entries[1].Category)

	// Other session sees nothing
	other, err := db.ListWasteEntries(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, other)

	// Returned slice is a copy
	entries[0].WeightKg = 99
	again, _ := db.ListWasteEntries(ctx, "s1")
	assert.Equal(t, 2.0, again[0].WeightKg)
}

func TestAddWasteEntry_UnknownSession(t *testing.T) {
	db := New()
	_, err := db.AddWasteEntry(context.Background(), "nope", domain.WasteEntry{Category: domain.Glass, WeightKg: 1})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestLedgerRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	snaps, err := db.ListSnapshots(ctx)
	require.NoError(t, err)
	assert.Empty(t, snaps)

	require.NoError(t, db.AppendSnapshot(ctx, domain.ProgressSnapshot{UserID: "a", RecyclingRate: 10}))
	require.NoError(t, db.AppendSnapshot(ctx, domain.ProgressSnapshot{UserID: "b", RecyclingRate: 20}))

	snaps, err = db.ListSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, "a", snaps[0].UserID)
	assert.Equal(t, "b", snaps[1].UserID)
}

func TestLedgerConcurrentAppend(t *testing.T) {
	db := New()
	ctx := context.Background()

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = db.AppendSnapshot(ctx, domain.ProgressSnapshot{UserID: "u", RecyclingRate: 50})
		}()
		go func() {
			defer wg.Done()
			snaps, _ := db.ListSnapshots(ctx)
			for _, s := range snaps {
				assert.Equal(t, "u", s.UserID)
			}
		}()
	}
	wg.Wait()

	snaps, err := db.ListSnapshots(ctx)
	require.NoError(t, err)
	assert.Len(t, snaps, writers)
}

func TestSessionRepository(t *testing.T) {
	db := New()
	ctx := context.Background()
	now := time.Now()

	newSession(t, db, "live", now.Add(time.Hour))
	newSession(t, db, "stale", now.Add(-time.Minute))
	assert.Error(t, db.CreateSession(ctx, domain.Session{ID: "live"}), "duplicate id")

	sess, err := db.GetSession(ctx, "live")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "user_live", sess.UserID)

	later := now.Add(2 * time.Hour)
	require.NoError(t, db.TouchSession(ctx, "live", now, later))
	sess, _ = db.GetSession(ctx, "live")
	assert.Equal(t, later, sess.ExpiresAt)
	assert.ErrorIs(t, db.TouchSession(ctx, "missing", now, later), domain.ErrSessionNotFound)

	_, err = db.AddWasteEntry(ctx, "stale", domain.WasteEntry{Category: domain.Metal, WeightKg: 1})
	require.NoError(t, err)

	n, err := db.DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	sess, _ = db.GetSession(ctx, "stale")
	assert.Nil(t, sess)
	entries, _ := db.ListWasteEntries(ctx, "stale")
	assert.Empty(t, entries, "waste log discarded with session")

	require.NoError(t, db.DeleteSession(ctx, "live"))
	sess, _ = db.GetSession(ctx, "live")
	assert.Nil(t, sess)
}
