// Package store defines the backend abstraction the coordinator persists
// through, and the factory that selects an implementation once at startup.
//
// The backend only supports whole-document reads and replaces, so every
// mutation goes through ApplyEntries/ApplyAccounts: the implementation reads
// the current collection, runs the mutation, and writes the whole collection
// back. Concurrent writers from different clients race at this seam (last
// write wins); localizing the read-modify-write here keeps that gap in one
// place should a version token ever be added.
package store

import (
	"context"

	"beervault/internal/models"
)

// Store is the uniform persistence surface over the two collections,
// regardless of whether they live in a remote blob service or the local
// document store.
type Store interface {
	// Name identifies the backend in logs ("local" or "remote").
	Name() string

	// LoadEntries returns the persisted entry collection. A store that has
	// never been written returns an empty slice, not an error.
	LoadEntries(ctx context.Context) ([]models.Entry, error)

	// LoadAccounts returns the persisted account collection.
	LoadAccounts(ctx context.Context) ([]models.Account, error)

	// ApplyEntries read-modify-writes the entry collection. The mutation
	// must treat its input as read-only and return the successor collection.
	ApplyEntries(ctx context.Context, mutate func(entries []models.Entry) []models.Entry) error

	// ApplyAccounts read-modify-writes the account collection.
	ApplyAccounts(ctx context.Context, mutate func(accounts []models.Account) []models.Account) error
}
