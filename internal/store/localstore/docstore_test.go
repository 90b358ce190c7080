package localstore

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
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(context.Background(), db))
	return db
}

func TestDocStore_PutGetRoundTrip(t *testing.T) {
	db := setupDB(t)
	s := New(db)
	ctx := context.Background()

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, s.Put(ctx, "k", doc{Name: "x", Count: 2}))

	var got doc
	found, err := s.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, doc{Name: "x", Count: 2}, got)
}

func TestDocStore_GetMissing(t *testing.T) {
	db := setupDB(t)
	s := New(db)

	var got map[string]any
	found, err := s.Get(context.Background(), "absent", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestDocStore_CorruptResolvesToMissing(t *testing.T) {
	db := setupDB(t)
	s := New(db)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO documents(key, value) VALUES ('bad', x'7B')`) // lone '{'
	require.NoError(t, err)

	var got map[string]any
	found, err := s.Get(ctx, "bad", &got)
	require.NoError(t, err)
	assert.False(t, found, "corrupt document must behave like a missing one")
}

func TestDocStore_PutReplaces(t *testing.T) {
	db := setupDB(t)
	s := New(db)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "k", []int{1}))
	require.NoError(t, s.Put(ctx, "k", []int{1, 2, 3}))

	var got []int
	found, err := s.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestDocStore_DeleteIsIdempotent(t *testing.T) {
	db := setupDB(t)
	s := New(db)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "k", "v"))
	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "k")) // already gone

	var got string
	found, err := s.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}
