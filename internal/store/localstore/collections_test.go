package localstore

import (
	"context"
	"testing"

	"beervault/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionStore_EmptyLoads(t *testing.T) {
	s := NewCollectionStore(New(setupDB(t)))
	ctx := context.Background()

	entries, err := s.LoadEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)

	accounts, err := s.LoadAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)
	assert.NotNil(t, accounts)
}

func TestCollectionStore_SaveLoadRoundTrip(t *testing.T) {
	s := NewCollectionStore(New(setupDB(t)))
	ctx := context.Background()

	in := []models.Entry{{ID: "e1", Name: "Test Pale", Rating: 4, LikedBy: []string{}, Comments: []models.Comment{}}}
	require.NoError(t, s.SaveEntries(ctx, in))

	out, err := s.LoadEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCollectionStore_ApplyEntries(t *testing.T) {
	s := NewCollectionStore(New(setupDB(t)))
	ctx := context.Background()

	require.NoError(t, s.SaveEntries(ctx, []models.Entry{{ID: "e1", LikedBy: []string{}, Comments: []models.Comment{}}}))

	err := s.ApplyEntries(ctx, func(entries []models.Entry) []models.Entry {
		return append([]models.Entry{{ID: "e2", LikedBy: []string{}, Comments: []models.Comment{}}}, entries...)
	})
	require.NoError(t, err)

	out, err := s.LoadEntries(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "e2", out[0].ID, "mutation result must be persisted wholesale")
	assert.Equal(t, "e1", out[1].ID)
}

func TestCollectionStore_ApplyAccounts(t *testing.T) {
	s := NewCollectionStore(New(setupDB(t)))
	ctx := context.Background()

	require.NoError(t, s.SaveAccounts(ctx, []models.Account{{ID: "u1", WeeklyEntryCount: 1}}))

	err := s.ApplyAccounts(ctx, func(accounts []models.Account) []models.Account {
		for i := range accounts {
			accounts[i].WeeklyEntryCount++
		}
		return accounts
	})
	require.NoError(t, err)

	out, err := s.LoadAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].WeeklyEntryCount)
}
