package mock

import (
	"context"

	"github.com/fwojciec/hoverdoc"
)

var _ hoverdoc.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of hoverdoc.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *hoverdoc.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *hoverdoc.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
