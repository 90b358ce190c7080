package localstore

import (
	"context"

	"beervault/internal/models"
)

// CollectionStore keeps the two shared collections in the local document
// store. It is the Local-mode backend: single device, synchronous writes,
// one document per collection.
type CollectionStore struct {
	docs *DocStore
}

func NewCollectionStore(docs *DocStore) *CollectionStore {
	return &CollectionStore{docs: docs}
}

func (s *CollectionStore) Name() string { return "local" }

func (s *CollectionStore) LoadEntries(ctx context.Context) ([]models.Entry, error) {
	var entries []models.Entry
	found, err := s.docs.Get(ctx, KeyEntries, &entries)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.Entry{}, nil
	}
	return entries, nil
}

func (s *CollectionStore) LoadAccounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	found, err := s.docs.Get(ctx, KeyAccounts, &accounts)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.Account{}, nil
	}
	return accounts, nil
}

func (s *CollectionStore) ApplyEntries(ctx context.Context, mutate func(entries []models.Entry) []models.Entry) error {
	entries, err := s.LoadEntries(ctx)
	if err != nil {
		return err
	}
	return s.docs.Put(ctx, KeyEntries, mutate(entries))
}

func (s *CollectionStore) ApplyAccounts(ctx context.Context, mutate func(accounts []models.Account) []models.Account) error {
	accounts, err := s.LoadAccounts(ctx)
	if err != nil {
		return err
	}
	return s.docs.Put(ctx, KeyAccounts, mutate(accounts))
}

// SaveEntries replaces the entry document wholesale. Used for seeding.
func (s *CollectionStore) SaveEntries(ctx context.Context, entries []models.Entry) error {
	return s.docs.Put(ctx, KeyEntries, entries)
}

// SaveAccounts replaces the account document wholesale. Used for seeding.
func (s *CollectionStore) SaveAccounts(ctx context.Context, accounts []models.Account) error {
	return s.docs.Put(ctx, KeyAccounts, accounts)
}
