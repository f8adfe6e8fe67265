package hoverdoc

import "context"

// DocService fetches, sanitizes, and assembles entity documentation.
//
// Benign absence (no page, no renderable content) is reported as
// ENOTFOUND. Transport failures during the fetch are not swallowed; they
// propagate so the caller can decide how to present them.
type DocService interface {
	// FetchElement returns documentation for an intrinsic element.
	FetchElement(ctx context.Context, name string) (*RichDoc, error)

	// FetchGlobalAttribute returns documentation for a global attribute.
	FetchGlobalAttribute(ctx context.Context, name string) (*RichDoc, error)

	// FetchElementAttribute returns documentation for an element-specific
	// attribute. owningElement may be empty when unknown; it is used for
	// compatibility lookup, not for the page URL.
	FetchElementAttribute(ctx context.Context, name, owningElement string) (*RichDoc, error)
}
