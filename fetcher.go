package hoverdoc

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a GET against the URL, following redirects, and
	// returns the response body. Non-2xx responses are reported as
	// ENOTFOUND; transport failures are returned as-is.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
