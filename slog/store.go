package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/hoverdoc"
)

// Ensure LoggingStore implements hoverdoc.EntryStore.
var _ hoverdoc.EntryStore = (*LoggingStore)(nil)

// LoggingStore wraps an EntryStore with debug logging for cache
// persistence operations.
type LoggingStore struct {
	next   hoverdoc.EntryStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next hoverdoc.EntryStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// ReadEntry delegates to the wrapped store and logs the operation.
func (s *LoggingStore) ReadEntry(ctx context.Context, key string) (entry *hoverdoc.Entry, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("store read",
			"key", key,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadEntry(ctx, key)
}

// WriteEntry delegates to the wrapped store and logs the operation.
func (s *LoggingStore) WriteEntry(ctx context.Context, entry *hoverdoc.Entry) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("store write",
			"key", entry.Key,
			"bytes", len(entry.Payload),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteEntry(ctx, entry)
}

// DeleteEntry delegates to the wrapped store and logs the operation.
func (s *LoggingStore) DeleteEntry(ctx context.Context, key string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("store delete",
			"key", key,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteEntry(ctx, key)
}

// EntryKeys delegates to the wrapped store and logs the operation.
func (s *LoggingStore) EntryKeys(ctx context.Context) (keys []string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("store list",
			"count", len(keys),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.EntryKeys(ctx)
}
