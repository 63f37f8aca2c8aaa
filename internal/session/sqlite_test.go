package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:sessionstore?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS session (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
DELETE FROM session;
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupDB(t))

	// fresh store: logged out, absence is not an error
	token, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.False(t, store.IsAuthenticated(ctx))

	require.NoError(t, store.Save(ctx, "tok-1"))
	token, err = store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.True(t, store.IsAuthenticated(ctx))

	// a new login overwrites, never merges
	require.NoError(t, store.Save(ctx, "tok-2"))
	token, err = store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)

	require.NoError(t, store.Clear(ctx))
	assert.False(t, store.IsAuthenticated(ctx))

	// clearing an empty store is a no-op
	require.NoError(t, store.Clear(ctx))
}

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	assert.False(t, store.IsAuthenticated(ctx))
	require.NoError(t, store.Save(ctx, "tok"))
	assert.True(t, store.IsAuthenticated(ctx))
	require.NoError(t, store.Clear(ctx))
	token, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}
