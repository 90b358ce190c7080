// Package localstore is the per-machine persistence layer: a SQLite-backed
// store of named JSON documents. It holds the collection documents in Local
// mode, and the always-local documents (remembered session, remote document
// identifiers) in every mode.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"beervault/internal/dbx"
	"beervault/internal/store/localstore/migrations"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Document keys. String-keyed JSON blobs, one row per document.
const (
	KeyEntries  = "beervault_entries"
	KeyAccounts = "beervault_accounts"
	KeySession  = "beervault_session"
	KeyBins     = "beervault_bins"
)

// DBFileName is the SQLite file created under the configured data directory.
const DBFileName = "beervault.db"

// DocStore reads and writes named JSON documents. A document that is missing
// or fails to decode resolves to not-found; callers fall back to their
// default rather than treating corruption as an error.
type DocStore struct {
	db dbx.DBTX
}

// New returns a DocStore bound to the given DBTX. The documents table must
// already exist; use Open or RunMigrations for that.
func New(db dbx.DBTX) *DocStore {
	return &DocStore{db: db}
}

// RunMigrations brings the documents schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the document database under dir and runs
// migrations. The caller owns closing the returned *sql.DB.
func Open(ctx context.Context, dir string) (*DocStore, *sql.DB, error) {
	dsn := filepath.Join(dir, DBFileName)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open document store: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to migrate document store: %w", err)
	}

	return New(db), db, nil
}

// Get decodes the document stored under key into out. It returns false when
// the document is absent or does not decode; out is left untouched in both
// cases.
func (s *DocStore) Get(ctx context.Context, key string, out any) (bool, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM documents WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read document %q: %w", key, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		// Corrupt documents resolve to not-found so a bad write never
		// bricks startup; the caller reseeds with its default.
		return false, nil
	}
	return true, nil
}

// Put encodes v and stores it under key, replacing any previous document.
func (s *DocStore) Put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode document %q: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, raw)
	if err != nil {
		return fmt.Errorf("failed to write document %q: %w", key, err)
	}
	return nil
}

// Delete removes the document under key. Deleting an absent document is a
// no-op.
func (s *DocStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete document %q: %w", key, err)
	}
	return nil
}
