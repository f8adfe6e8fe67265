// Package readability provides a last-resort sanitizer built on
// go-readability's article extraction. It sits behind the MDN-specific
// and trafilatura sanitizers in the fallback chain.
package readability

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/fwojciec/hoverdoc"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Sanitizer implements hoverdoc.Sanitizer at compile time.
var _ hoverdoc.Sanitizer = (*Sanitizer)(nil)

// allowedTags mirrors the primary sanitizer's allow-list; every
// implementation must uphold the same output invariant.
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

// Sanitizer extracts readable content from arbitrary HTML and reduces it
// to the shared allow-list.
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

// Sanitize extracts the readable content from rawHTML and returns it as a
// sanitized markup string.
func (s *Sanitizer) Sanitize(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", hoverdoc.Errorf(hoverdoc.ENOTFOUND, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		s.logger.Debug("sanitize: readability extraction failed", "err", err)
		return "", hoverdoc.Errorf(hoverdoc.ENOTFOUND, "no content region found")
	}
	if strings.TrimSpace(article.Content) == "" {
		return "", hoverdoc.Errorf(hoverdoc.ENOTFOUND, "no content region found")
	}

	// Readability returns serialized markup; re-parse it so link
	// rewriting and stripping work on the same node model as the other
	// sanitizers.
	nodes, err := html.ParseFragment(strings.NewReader(article.Content), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return "", hoverdoc.Errorf(hoverdoc.ENOTFOUND, "no content region found")
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		s.rewriteLinks(n)
		if n.Type == html.ElementNode && !allowedTags[n.Data] {
			continue
		}
		s.strip(n)
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
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
	scrubAttributes(n)

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
