package hoverdoc

// CompatService summarizes browser support for HTML entities from a
// static, versioned compatibility dataset loaded once at startup.
//
// Summaries follow the dataset's browser enumeration order and are not
// independently sorted. All three methods return ENOTFOUND when the
// entity has no compatibility data at all.
type CompatService interface {
	SummarizeElement(name string) ([]BrowserSupport, error)
	SummarizeElementAttribute(element, name string) ([]BrowserSupport, error)
	SummarizeGlobalAttribute(name string) ([]BrowserSupport, error)
}
