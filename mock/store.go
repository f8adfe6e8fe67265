package mock

import (
	"context"

	"github.com/fwojciec/hoverdoc"
)

var _ hoverdoc.EntryStore = (*EntryStore)(nil)

// EntryStore is a mock implementation of hoverdoc.EntryStore.
// Unset function fields behave as an empty store.
type EntryStore struct {
	ReadEntryFn   func(ctx context.Context, key string) (*hoverdoc.Entry, error)
	WriteEntryFn  func(ctx context.Context, entry *hoverdoc.Entry) error
	DeleteEntryFn func(ctx context.Context, key string) error
	EntryKeysFn   func(ctx context.Context) ([]string, error)
}

func (s *EntryStore) ReadEntry(ctx context.Context, key string) (*hoverdoc.Entry, error) {
	if s.ReadEntryFn == nil {
		return nil, hoverdoc.Errorf(hoverdoc.ENOTFOUND, "cache entry not found")
	}
	return s.ReadEntryFn(ctx, key)
}

func (s *EntryStore) WriteEntry(ctx context.Context, entry *hoverdoc.Entry) error {
	if s.WriteEntryFn == nil {
		return nil
	}
	return s.WriteEntryFn(ctx, entry)
}

func (s *EntryStore) DeleteEntry(ctx context.Context, key string) error {
	if s.DeleteEntryFn == nil {
		return nil
	}
	return s.DeleteEntryFn(ctx, key)
}

func (s *EntryStore) EntryKeys(ctx context.Context) ([]string, error) {
	if s.EntryKeysFn == nil {
		return nil, nil
	}
	return s.EntryKeysFn(ctx)
}
