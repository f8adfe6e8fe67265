// Package trafilatura provides a generic fallback sanitizer built on
// go-trafilatura's boilerplate-removing content extraction. It is used
// behind the MDN-specific sanitizer for pages whose layout markers are
// missing or have changed.
package trafilatura

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/fwojciec/hoverdoc"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Sanitizer implements hoverdoc.Sanitizer at compile time.
var _ hoverdoc.Sanitizer = (*Sanitizer)(nil)

// allowedTags mirrors the primary sanitizer's allow-list; both
// implementations must uphold the same output invariant.
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

// Sanitizer extracts main content from arbitrary HTML and reduces it to
// the shared allow-list.
type Sanitizer struct {
	logger *slog.Logger
}

// Option configures a Sanitizer.
type Option func(*Sanitizer)

// WithLogger sets the logger for removal diagnostics.
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

// Sanitize extracts the main content region from rawHTML and returns it
// as a sanitized markup string.
func (s *Sanitizer) Sanitize(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", hoverdoc.Errorf(hoverdoc.ENOTFOUND, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		s.logger.Debug("sanitize: trafilatura extraction failed", "err", err)
		return "", hoverdoc.Errorf(hoverdoc.ENOTFOUND, "no content region found")
	}
	if result.ContentNode == nil {
		return "", hoverdoc.Errorf(hoverdoc.ENOTFOUND, "no content region found")
	}

	s.rewriteLinks(result.ContentNode)
	s.strip(result.ContentNode)

	return renderNode(result.ContentNode)
}

// rewriteLinks prefixes relative hrefs with the canonical documentation
// host, same as the primary sanitizer.
func (s *Sanitizer) rewriteLinks(n *html.Node) {
	if n.Type == html.ElementNode && n.Data == "a" {
		for i, attr := range n.Attr {
			if attr.Key != "href" || attr.Val == "" || strings.HasPrefix(attr.Val, "http") {
				continue
			}
			n.Attr[i].Val = hoverdoc.Host + attr.Val
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		s.rewriteLinks(c)
	}
}

// strip removes elements outside the allow-list, subtree included,
// walking a snapshot of each child list so removals never skip siblings.
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

// scrubAttributes drops inline event handlers and styles from a kept
// element.
func scrubAttributes(n *html.Node) {
	kept := n.Attr[:0]
	for _, attr := range n.Attr {
		if attr.Key == "style" || strings.HasPrefix(attr.Key, "on") {
			continue
		}
		kept = append(kept, attr)
	}
	n.Attr = kept
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
