package hoverdoc

import (
	"fmt"
	"strings"
)

// BrowserSupport summarizes one browser's support for an entity.
type BrowserSupport struct {
	// Browser is the human-readable browser name.
	Browser string

	// Version is the version the entity was added in, or removed in when
	// no added version is recorded.
	Version string

	// Supported reports whether the entity is currently supported, i.e.
	// a concrete added-version was present.
	Supported bool
}

// RichDoc is the assembled hover payload: sanitized markup, an optional
// browser-compatibility summary, and the canonical reference link.
type RichDoc struct {
	// HTML is the sanitized content region of the documentation page.
	HTML string

	// Support lists per-browser compatibility in dataset order.
	// Nil or empty when no compatibility data exists for the entity.
	Support []BrowserSupport

	// ReferenceURL is the canonical documentation page for the entity.
	ReferenceURL string
}

// Render serializes the doc as a single HTML fragment: the sanitized
// content, a support paragraph (omitted entirely when Support is empty),
// and the trailing reference link.
func (d *RichDoc) Render() string {
	var b strings.Builder
	b.WriteString(d.HTML)
	if len(d.Support) > 0 {
		b.WriteString("\n<p><strong>Support:</strong> ")
		for i, s := range d.Support {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(s.Browser)
			b.WriteByte(' ')
			b.WriteString(s.Version)
			if !s.Supported {
				b.WriteString(" (removed)")
			}
		}
		b.WriteString("</p>")
	}
	if d.ReferenceURL != "" {
		fmt.Fprintf(&b, "\n<p><a href=%q>MDN Reference</a></p>", d.ReferenceURL)
	}
	return b.String()
}
