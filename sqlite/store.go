package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/hoverdoc"
)

// Compile-time interface verification.
var _ hoverdoc.EntryStore = (*Store)(nil)

// Store implements hoverdoc.EntryStore using SQLite.
type Store struct {
	db *DB
}

// NewStore creates a new Store.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// ReadEntry retrieves the entry stored under key.
func (s *Store) ReadEntry(ctx context.Context, key string) (*hoverdoc.Entry, error) {
	var entry hoverdoc.Entry
	var createdAt, expiresAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT key, payload, created_at, expires_at, format_version
		FROM entries
		WHERE key = ?
	`, key).Scan(&entry.Key, &entry.Payload, &createdAt, &expiresAt, &entry.FormatVersion)

	if err == sql.ErrNoRows {
		return nil, hoverdoc.Errorf(hoverdoc.ENOTFOUND, "cache entry not found")
	}
	if err != nil {
		return nil, err
	}

	if entry.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if entry.ExpiresAt, err = parseRFC3339(expiresAt, "expires_at"); err != nil {
		return nil, err
	}

	return &entry, nil
}

// WriteEntry stores the entry, overwriting any previous record.
func (s *Store) WriteEntry(ctx context.Context, entry *hoverdoc.Entry) error {
	if entry == nil || entry.Key == "" {
		return hoverdoc.Errorf(hoverdoc.EINVALID, "cache entry key required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO entries (key, payload, created_at, expires_at, format_version)
		VALUES (?, ?, ?, ?, ?)
	`, entry.Key, entry.Payload,
		entry.CreatedAt.UTC().Format(time.RFC3339),
		entry.ExpiresAt.UTC().Format(time.RFC3339),
		entry.FormatVersion)

	return err
}

// DeleteEntry removes the entry stored under key. Deleting an absent
// entry is not an error.
func (s *Store) DeleteEntry(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE key = ?`, key)
	return err
}

// EntryKeys lists the keys of all stored entries.
func (s *Store) EntryKeys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM entries ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
