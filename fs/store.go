// Package fs provides a file-based persistent cache tier: one JSON record
// per cache key under a storage root.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/hoverdoc"
)

// Ensure Store implements hoverdoc.EntryStore at compile time.
var _ hoverdoc.EntryStore = (*Store)(nil)

// Store persists cache entries as JSON files. Cache keys contain
// separator characters that are not filename-safe, so the file name is
// the xxhash of the key and the key itself lives inside the record.
type Store struct {
	root   string
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for skipped-record diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a Store rooted at the given directory, creating it if
// needed.
func NewStore(root string, opts ...Option) (*Store, error) {
	if root == "" {
		return nil, hoverdoc.Errorf(hoverdoc.EINVALID, "storage root required")
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}

	s := &Store{root: root, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// path maps a cache key to its record file.
func (s *Store) path(key string) string {
	return filepath.Join(s.root, fmt.Sprintf("%016x.json", xxhash.Sum64String(key)))
}

// ReadEntry retrieves the entry stored under key. Absence is ENOTFOUND;
// an unparsable record is EINVALID so the caller can log it before
// treating it as a miss.
func (s *Store) ReadEntry(ctx context.Context, key string) (*hoverdoc.Entry, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, hoverdoc.Errorf(hoverdoc.ENOTFOUND, "cache entry not found")
		}
		return nil, err
	}

	var entry hoverdoc.Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, hoverdoc.Errorf(hoverdoc.EINVALID, "corrupt cache record for key %q: %v", key, err)
	}
	if entry.Key != key {
		// Hash collision or a record moved between roots.
		return nil, hoverdoc.Errorf(hoverdoc.ENOTFOUND, "cache entry not found")
	}
	return &entry, nil
}

// WriteEntry stores the entry, overwriting any previous record.
func (s *Store) WriteEntry(ctx context.Context, entry *hoverdoc.Entry) error {
	if entry == nil || entry.Key == "" {
		return hoverdoc.Errorf(hoverdoc.EINVALID, "cache entry key required")
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(entry.Key), data, 0644)
}

// DeleteEntry removes the record for key. Deleting an absent entry is
// not an error.
func (s *Store) DeleteEntry(ctx context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// EntryKeys lists the keys of all readable records under the root.
// Unparsable records are logged and skipped.
func (s *Store) EntryKeys(ctx context.Context) ([]string, error) {
	dirents, err := os.ReadDir(s.root)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(dirents))
	for _, dirent := range dirents {
		if dirent.IsDir() || !strings.HasSuffix(dirent.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.root, dirent.Name()))
		if err != nil {
			s.logger.Warn("fs: skipping unreadable cache record", "file", dirent.Name(), "err", err)
			continue
		}

		var entry hoverdoc.Entry
		if err := json.Unmarshal(data, &entry); err != nil || entry.Key == "" {
			s.logger.Warn("fs: skipping corrupt cache record", "file", dirent.Name())
			continue
		}
		keys = append(keys, entry.Key)
	}
	return keys, nil
}
