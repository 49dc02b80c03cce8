package fastfact

import "context"

// Fetcher retrieves raw page content from URLs.
type Fetcher interface {
	// Fetch retrieves the content at the given URL.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// SitemapService discovers page URLs from a site's sitemaps.
type SitemapService interface {
	// DiscoverURLs finds all URLs reachable from the site's sitemaps,
	// restricted to paths under the base URL's path prefix.
	// Returns an empty slice (not nil) if no sitemaps are found.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
