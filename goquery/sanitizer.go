// Package goquery provides the MDN-layout HTML sanitizer. It locates the
// content region of a reference page, rewrites relative links, and strips
// everything outside a small allow-list of tags.
package goquery

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/hoverdoc"
	"golang.org/x/net/html"
)

// Ensure Sanitizer implements hoverdoc.Sanitizer at compile time.
var _ hoverdoc.Sanitizer = (*Sanitizer)(nil)

// allowedTags is the markup that survives sanitization. An element outside
// this set is removed together with its whole subtree; its children are
// not promoted.
var allowedTags = map[string]bool{
	"a":       true,
	"article": true,
	"code":    true,
	"div":     true,
	"p":       true,
	"section": true,
	"span":    true,
	"strong":  true,
}

// Sanitizer extracts and sanitizes the content region of an MDN page.
type Sanitizer struct {
	logger *slog.Logger
}

// Option configures a Sanitizer.
type Option func(*Sanitizer)

// WithLogger sets the logger for removal and fallback diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sanitizer) {
		s.logger = logger
	}
}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer(opts ...Option) *Sanitizer {
	s := &Sanitizer{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sanitize extracts the content region from rawHTML and returns it as a
// sanitized markup string.
func (s *Sanitizer) Sanitize(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", hoverdoc.Errorf(hoverdoc.ENOTFOUND, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		// The underlying parser recovers from malformed markup, so a hard
		// failure means there is nothing to work with.
		s.logger.Warn("sanitize: parse failed", "err", err)
		return "", hoverdoc.Errorf(hoverdoc.ENOTFOUND, "unparsable HTML input")
	}

	region := doc.Find("div.section-content").First()
	if region.Length() == 0 {
		s.logger.Debug("sanitize: no section-content region, trying structural fallback")
		region = doc.Find("section").First()
	}
	if region.Length() == 0 {
		region = doc.Find("article").First()
	}
	if region.Length() == 0 {
		return "", hoverdoc.Errorf(hoverdoc.ENOTFOUND, "no content region found")
	}

	s.rewriteLinks(region)
	scrubAttributes(region.Nodes[0])
	s.strip(region.Nodes[0])

	out, err := goquery.OuterHtml(region)
	if err != nil {
		return "", err
	}
	return out, nil
}

// rewriteLinks prefixes relative hrefs with the canonical documentation
// host so links remain valid outside the page they were scraped from.
func (s *Sanitizer) rewriteLinks(region *goquery.Selection) {
	region.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || strings.HasPrefix(href, "http") {
			return
		}
		sel.SetAttr("href", hoverdoc.Host+href)
	})
}

// strip removes every element outside the allow-list, subtree included,
// and scrubs event-handler attributes from the elements that remain.
// Children are snapshotted before any removal so surviving siblings are
// still visited after a structural edit shifts the child list.
func (s *Sanitizer) strip(n *html.Node) {
	children := make([]*html.Node, 0, 4)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}

	for _, c := range children {
		switch c.Type {
		case html.ElementNode:
			if !allowedTags[c.Data] {
				s.logger.Debug("sanitize: removing disallowed element", "tag", c.Data)
				n.RemoveChild(c)
				continue
			}
			scrubAttributes(c)
			s.strip(c)
		case html.CommentNode:
			n.RemoveChild(c)
		}
	}
}

// scrubAttributes drops inline event handlers and style from an element
// so no surviving node is a script carrier.
func scrubAttributes(n *html.Node) {
	kept := n.Attr[:0]
	for _, attr := range n.Attr {
		key := strings.ToLower(attr.Key)
		if strings.HasPrefix(key, "on") || key == "style" {
			continue
		}
		kept = append(kept, attr)
	}
	n.Attr = kept
}
