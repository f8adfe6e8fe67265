package mock

import (
	"context"

	"github.com/fwojciec/hoverdoc"
)

var _ hoverdoc.DocCache = (*DocCache)(nil)

// DocCache is a mock implementation of hoverdoc.DocCache.
// An unset GetOrFetchFn passes straight through to the producer.
type DocCache struct {
	GetOrFetchFn   func(ctx context.Context, key string, produce hoverdoc.Producer) (string, error)
	CleanExpiredFn func(ctx context.Context) error
}

func (c *DocCache) GetOrFetch(ctx context.Context, key string, produce hoverdoc.Producer) (string, error) {
	if c.GetOrFetchFn == nil {
		return produce(ctx)
	}
	return c.GetOrFetchFn(ctx, key, produce)
}

func (c *DocCache) CleanExpired(ctx context.Context) error {
	if c.CleanExpiredFn == nil {
		return nil
	}
	return c.CleanExpiredFn(ctx)
}
