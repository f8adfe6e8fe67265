// Package cache provides the two-tier documentation cache: a fast
// in-process map tier in front of a persistent hoverdoc.EntryStore.
//
// The persistent tier is best-effort. Reads that fail for any reason are
// treated as misses and writes that fail are logged, so correctness
// degrades gracefully to "always fetch fresh" when storage misbehaves.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fwojciec/hoverdoc"
)

// TTL is how long a cached documentation payload stays servable.
const TTL = 24 * time.Hour

// FormatVersion stamps every entry written by this build. Bumping it
// invalidates all prior entries, in both tiers, without a migration.
const FormatVersion = "1.0.0"

// Ensure Cache implements hoverdoc.DocCache at compile time.
var _ hoverdoc.DocCache = (*Cache)(nil)

// Cache is the two-tier cache service. It must be constructed with New;
// the zero value is unusable.
//
// GetOrFetch performs no single-flight de-duplication: concurrent calls
// for the same key during a miss may each invoke their producer. Producers
// are idempotent fetches, so last-write-wins is acceptable.
type Cache struct {
	store   hoverdoc.EntryStore
	logger  *slog.Logger
	ttl     time.Duration
	version string
	now     func() time.Time

	mu     sync.RWMutex
	memory map[string]*hoverdoc.Entry
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL overrides the entry lifetime. Defaults to TTL (24h).
func WithTTL(d time.Duration) Option {
	return func(c *Cache) {
		c.ttl = d
	}
}

// WithFormatVersion overrides the format version stamped on new entries.
func WithFormatVersion(v string) Option {
	return func(c *Cache) {
		c.version = v
	}
}

// WithClock overrides the time source. Tests use this to move time past
// entry expiry without sleeping.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// WithLogger sets the logger for persistent-tier diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// New creates a Cache backed by the given persistent store. Constructing
// the cache up front replaces an initialize-before-use singleton contract:
// a nil store is a programming error, reported immediately.
func New(store hoverdoc.EntryStore, opts ...Option) (*Cache, error) {
	if store == nil {
		return nil, hoverdoc.Errorf(hoverdoc.EINVALID, "cache entry store required")
	}

	c := &Cache{
		store:   store,
		logger:  slog.Default(),
		ttl:     TTL,
		version: FormatVersion,
		now:     time.Now,
		memory:  make(map[string]*hoverdoc.Entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetOrFetch returns the payload cached under key, consulting the memory
// tier, then the persistent tier (promoting on hit), and finally invoking
// produce. A fresh payload is written to the memory tier synchronously
// and to the persistent tier best-effort. Producer errors cache nothing
// and propagate to the caller.
func (c *Cache) GetOrFetch(ctx context.Context, key string, produce hoverdoc.Producer) (string, error) {
	if key == "" {
		return "", hoverdoc.Errorf(hoverdoc.EINVALID, "cache key required")
	}
	if produce == nil {
		return "", hoverdoc.Errorf(hoverdoc.EINVALID, "cache producer required")
	}

	now := c.now()

	c.mu.RLock()
	entry := c.memory[key]
	c.mu.RUnlock()
	if entry.Valid(now, c.version) {
		return entry.Payload, nil
	}

	if entry, err := c.store.ReadEntry(ctx, key); err != nil {
		if hoverdoc.ErrorCode(err) != hoverdoc.ENOTFOUND {
			c.logger.Warn("cache: persistent read failed, treating as miss", "key", key, "err", err)
		}
	} else if entry.Valid(now, c.version) {
		c.mu.Lock()
		c.memory[key] = entry
		c.mu.Unlock()
		return entry.Payload, nil
	}

	payload, err := produce(ctx)
	if err != nil {
		return "", err
	}

	entry = &hoverdoc.Entry{
		Key:           key,
		Payload:       payload,
		CreatedAt:     now,
		ExpiresAt:     now.Add(c.ttl),
		FormatVersion: c.version,
	}

	c.mu.Lock()
	c.memory[key] = entry
	c.mu.Unlock()

	if err := c.store.WriteEntry(ctx, entry); err != nil {
		c.logger.Warn("cache: persistent write failed", "key", key, "err", err)
	}

	return payload, nil
}

// CleanExpired sweeps both tiers, deleting entries whose expiry has
// passed. Unreadable persistent entries are logged and skipped, never
// fatal.
func (c *Cache) CleanExpired(ctx context.Context) error {
	now := c.now()

	c.mu.Lock()
	for key, entry := range c.memory {
		if !now.Before(entry.ExpiresAt) {
			delete(c.memory, key)
		}
	}
	c.mu.Unlock()

	keys, err := c.store.EntryKeys(ctx)
	if err != nil {
		return err
	}

	for _, key := range keys {
		entry, err := c.store.ReadEntry(ctx, key)
		if err != nil {
			if hoverdoc.ErrorCode(err) != hoverdoc.ENOTFOUND {
				c.logger.Warn("cache: sweep skipping unreadable entry", "key", key, "err", err)
			}
			continue
		}
		if now.Before(entry.ExpiresAt) {
			continue
		}
		if err := c.store.DeleteEntry(ctx, key); err != nil {
			c.logger.Warn("cache: sweep delete failed", "key", key, "err", err)
		}
	}

	return nil
}

// Close releases the in-memory tier. Persisted entries survive process
// restarts until they expire or a future producer overwrites them.
func (c *Cache) Close() error {
	c.mu.Lock()
	c.memory = make(map[string]*hoverdoc.Entry)
	c.mu.Unlock()
	return nil
}
