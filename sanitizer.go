package hoverdoc

// Sanitizer reduces a raw documentation page to its renderable content.
type Sanitizer interface {
	// Sanitize parses raw HTML into a tree, locates the primary content
	// region, rewrites relative hyperlinks against Host, removes markup
	// outside the allow-list, and returns the serialized region.
	//
	// Returns ENOTFOUND when the input is empty or no content region can
	// be located. A region that is empty after stripping is returned as
	// an empty string, not ENOTFOUND; the caller decides whether empty
	// content is unusable.
	Sanitize(rawHTML string) (string, error)
}
