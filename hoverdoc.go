// Package hoverdoc provides the core of an editor hover-documentation
// service for HTML. Given an entity (an element, a global attribute, or an
// element-specific attribute) it fetches the matching MDN reference page,
// reduces it to safe renderable markup, attaches a browser-compatibility
// summary, and caches the result in a two-tier (memory + persistent) cache.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, bcd/).
package hoverdoc

// Host is the canonical documentation host. Relative links scraped from a
// page are rewritten against it, and all fetch URLs are built from it.
const Host = "https://developer.mozilla.org"
