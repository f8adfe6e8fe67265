package hoverdoc

// Converter converts HTML to Markdown, for hover surfaces that render
// markdown rather than HTML.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from a Sanitizer).
	Convert(html string) (string, error)
}
