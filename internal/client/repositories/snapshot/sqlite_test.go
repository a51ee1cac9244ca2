package snapshot

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
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestSetGet(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, []byte("tok-1")))

	got, err := r.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("tok-1"), got)

	// upsert
	require.NoError(t, r.Set(ctx, KeyToken, []byte("tok-2")))
	got, err = r.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("tok-2"), got)
}

func TestGet_AbsentKeyReturnsNil(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	got, err := r.Get(context.Background(), KeyUser)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDelete(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyAuthenticated, []byte(AuthenticatedValue)))
	require.NoError(t, r.Delete(ctx, KeyAuthenticated))

	got, err := r.Get(ctx, KeyAuthenticated)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClearAndList(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyUser, []byte(`{"id":"1"}`)))
	require.NoError(t, r.Set(ctx, KeyAuthenticated, []byte(AuthenticatedValue)))
	require.NoError(t, r.Set(ctx, KeyToken, []byte("tok")))

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, []byte("tok"), all[KeyToken])

	require.NoError(t, r.Clear(ctx))

	all, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTokenSource(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	ts := NewTokenSource(r)

	// no token persisted yet
	token, err := ts.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, r.Set(ctx, KeyUser, []byte(`{"id":"1"}`)))
	require.NoError(t, r.Set(ctx, KeyToken, []byte("tok-9")))

	token, err = ts.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-9", token)

	// Clear wipes the whole snapshot, not just the token.
	require.NoError(t, ts.Clear(ctx))
	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
