package hoverdoc

import (
	"context"
	"time"
)

// Entry is a cached documentation payload together with its expiry and
// format metadata. Entries are immutable once written; a refresh is a full
// overwrite, never a partial mutation.
type Entry struct {
	Key           string    `json:"key"`
	Payload       string    `json:"payload"`
	CreatedAt     time.Time `json:"createdAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
	FormatVersion string    `json:"formatVersion"`
}

// Valid reports whether the entry can still be served. An entry is valid
// only while now is before its expiry AND its format version matches the
// current one; the version check gates expiry, so bumping the format
// version invalidates every prior entry regardless of TTL.
func (e *Entry) Valid(now time.Time, formatVersion string) bool {
	if e == nil {
		return false
	}
	return now.Before(e.ExpiresAt) && e.FormatVersion == formatVersion
}

// EntryStore persists cache entries across process restarts. Absence is
// reported as ENOTFOUND; an unreadable or unparsable record is reported as
// an error the caller treats as a miss.
type EntryStore interface {
	// ReadEntry retrieves the entry stored under key.
	// Returns ENOTFOUND if no entry exists.
	ReadEntry(ctx context.Context, key string) (*Entry, error)

	// WriteEntry stores the entry under entry.Key, overwriting any
	// previous record.
	WriteEntry(ctx context.Context, entry *Entry) error

	// DeleteEntry removes the entry stored under key. Deleting an absent
	// entry is not an error.
	DeleteEntry(ctx context.Context, key string) error

	// EntryKeys lists the keys of all readable stored entries.
	EntryKeys(ctx context.Context) ([]string, error)
}

// Producer computes a payload on a cache miss.
type Producer func(ctx context.Context) (string, error)

// DocCache returns cached payloads or populates them via a producer.
type DocCache interface {
	// GetOrFetch returns the payload cached under key, or invokes produce
	// and caches its result. Producer errors cache nothing and propagate.
	GetOrFetch(ctx context.Context, key string, produce Producer) (string, error)

	// CleanExpired sweeps expired entries from every tier.
	CleanExpired(ctx context.Context) error
}
