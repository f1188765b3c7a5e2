package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/gridsource/internal/database"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestUpsertInsertsAndUpdates(t *testing.T) {
	t.Parallel()
	repo := NewEntryRepo(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, Entry{ID: "e1", Day: "2026-08-24", Title: "first", Kind: "note"}))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	require.NoError(t, repo.Upsert(ctx, Entry{ID: "e1", Day: "2026-08-24", Title: "renamed", Kind: "alert"}))
	n, err = repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "renamed", entries[0].Title)
	require.Equal(t, "alert", entries[0].Kind)
	require.False(t, entries[0].CreatedAt.IsZero())
}

func TestListOrdersNewestDayFirst(t *testing.T) {
	t.Parallel()
	repo := NewEntryRepo(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, Entry{ID: "old", Day: "2026-08-20", Title: "old", Kind: "note"}))
	require.NoError(t, repo.Upsert(ctx, Entry{ID: "new-a", Day: "2026-08-24", Title: "a", Kind: "note"}))
	require.NoError(t, repo.Upsert(ctx, Entry{ID: "new-b", Day: "2026-08-24", Title: "b", Kind: "note"}))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "2026-08-24", entries[0].Day)
	require.Equal(t, "2026-08-24", entries[1].Day)
	require.Equal(t, "2026-08-20", entries[2].Day)
	// Ties on created_at fall back to id, so same-day order is stable.
	require.Equal(t, "new-a", entries[0].ID)
	require.Equal(t, "new-b", entries[1].ID)
}

func TestDeleteRemovesRow(t *testing.T) {
	t.Parallel()
	repo := NewEntryRepo(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, Entry{ID: "e1", Day: "2026-08-24", Title: "t", Kind: "note"}))
	require.NoError(t, repo.Delete(ctx, "e1"))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	// Deleting an absent id is not an error.
	require.NoError(t, repo.Delete(ctx, "e1"))
}
