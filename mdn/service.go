// Package mdn fetches, sanitizes, and assembles MDN documentation for
// HTML elements and attributes.
package mdn

import (
	"context"

	"github.com/fwojciec/hoverdoc"
)

// Ensure Service implements hoverdoc.DocService at compile time.
var _ hoverdoc.DocService = (*Service)(nil)

// Service orchestrates documentation lookups: it derives the page URL and
// cache key from the request, reads through the cache (fetching and
// sanitizing on a miss), and assembles the final RichDoc.
type Service struct {
	Fetcher hoverdoc.Fetcher
	Cache   hoverdoc.DocCache

	// Sanitizers are tried in order; the first one that locates a content
	// region wins. Later entries act as fallbacks for page layouts the
	// earlier ones don't recognize.
	Sanitizers []hoverdoc.Sanitizer

	// Compat is optional; without it docs carry no support summary.
	Compat hoverdoc.CompatService

	// Converter is optional; it enables RenderMarkdown for hover surfaces
	// that render markdown rather than HTML.
	Converter hoverdoc.Converter

	Settings hoverdoc.Settings
}

// NewService creates a Service with default settings. Collaborators are
// assigned by the caller.
func NewService() *Service {
	return &Service{Settings: hoverdoc.DefaultSettings()}
}

// FetchElement returns documentation for an intrinsic element.
func (s *Service) FetchElement(ctx context.Context, name string) (*hoverdoc.RichDoc, error) {
	return s.fetch(ctx, &hoverdoc.DocRequest{
		Kind:     hoverdoc.KindElement,
		Name:     name,
		Language: s.Settings.Language,
	})
}

// FetchGlobalAttribute returns documentation for a global attribute.
func (s *Service) FetchGlobalAttribute(ctx context.Context, name string) (*hoverdoc.RichDoc, error) {
	return s.fetch(ctx, &hoverdoc.DocRequest{
		Kind:     hoverdoc.KindGlobalAttribute,
		Name:     name,
		Language: s.Settings.Language,
	})
}

// FetchElementAttribute returns documentation for an element-specific
// attribute. owningElement narrows the compatibility lookup and may be
// empty when unknown.
func (s *Service) FetchElementAttribute(ctx context.Context, name, owningElement string) (*hoverdoc.RichDoc, error) {
	return s.fetch(ctx, &hoverdoc.DocRequest{
		Kind:          hoverdoc.KindElementAttribute,
		Name:          name,
		OwningElement: owningElement,
		Language:      s.Settings.Language,
	})
}

// RenderMarkdown renders the doc as markdown through the configured
// converter.
func (s *Service) RenderMarkdown(doc *hoverdoc.RichDoc) (string, error) {
	if s.Converter == nil {
		return "", hoverdoc.Errorf(hoverdoc.EINVALID, "no markdown converter configured")
	}
	return s.Converter.Convert(doc.Render())
}

func (s *Service) fetch(ctx context.Context, req *hoverdoc.DocRequest) (*hoverdoc.RichDoc, error) {
	if !s.Settings.Enabled {
		return nil, hoverdoc.Errorf(hoverdoc.ENOTFOUND, "documentation lookups are disabled")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	url := req.URL()
	payload, err := s.Cache.GetOrFetch(ctx, req.CacheKey(), func(ctx context.Context) (string, error) {
		raw, err := s.Fetcher.Fetch(ctx, url)
		if err != nil {
			return "", err
		}
		return s.sanitize(raw)
	})
	if err != nil {
		return nil, err
	}

	doc := &hoverdoc.RichDoc{HTML: payload, ReferenceURL: url}

	support, err := s.summarize(req)
	switch {
	case err == nil:
		doc.Support = support
	case hoverdoc.ErrorCode(err) == hoverdoc.ENOTFOUND:
		// No compatibility data is benign; the doc just omits the line.
	default:
		return nil, err
	}
	return doc, nil
}

// sanitize runs the sanitizer chain. A sanitizer that finds no content
// region passes the page to the next one.
func (s *Service) sanitize(raw string) (string, error) {
	if len(s.Sanitizers) == 0 {
		return "", hoverdoc.Errorf(hoverdoc.EINTERNAL, "no sanitizer configured")
	}

	var lastErr error
	for _, sanitizer := range s.Sanitizers {
		content, err := sanitizer.Sanitize(raw)
		if err == nil {
			return content, nil
		}
		if hoverdoc.ErrorCode(err) != hoverdoc.ENOTFOUND {
			return "", err
		}
		lastErr = err
	}
	return "", lastErr
}

func (s *Service) summarize(req *hoverdoc.DocRequest) ([]hoverdoc.BrowserSupport, error) {
	if s.Compat == nil {
		return nil, hoverdoc.Errorf(hoverdoc.ENOTFOUND, "no compatibility dataset configured")
	}

	switch req.Kind {
	case hoverdoc.KindElement:
		return s.Compat.SummarizeElement(req.Name)
	case hoverdoc.KindGlobalAttribute:
		return s.Compat.SummarizeGlobalAttribute(req.Name)
	case hoverdoc.KindElementAttribute:
		if req.OwningElement == "" {
			return nil, hoverdoc.Errorf(hoverdoc.ENOTFOUND, "owning element unknown")
		}
		return s.Compat.SummarizeElementAttribute(req.OwningElement, req.Name)
	}
	return nil, hoverdoc.Errorf(hoverdoc.EINVALID, "unknown request kind %q", string(req.Kind))
}
