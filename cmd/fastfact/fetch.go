package main

import (
	"fmt"
	"net/url"
	"strings"

	"fastfact"
	"fastfact/bloom"
	"fastfact/fs"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fastfact.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs found in sitemaps.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found %d URLs\n", len(urls))

	// Sitemap indexes routinely list the same page more than once.
	seen := bloom.NewFilter(uint(len(urls)), 0.01)
	writer := fs.NewWriter(c.Out)

	var saved, failed int
	for _, pageURL := range urls {
		if c.Limit > 0 && saved >= c.Limit {
			break
		}
		if seen.Test(pageURL) {
			continue
		}
		seen.Add(pageURL)

		html, err := deps.Fetcher.Fetch(deps.Ctx, pageURL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", pageURL, fastfact.ErrorMessage(err))
			failed++
			continue
		}

		markdown, err := deps.Converter.Convert(html)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", pageURL, fastfact.ErrorMessage(err))
			failed++
			continue
		}

		if err := writer.WritePage(pageURL, pageTitle(pageURL), markdown); err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", pageURL, fastfact.ErrorMessage(err))
			failed++
			continue
		}
		saved++
	}

	fmt.Fprintf(deps.Stdout, "Saved %d pages to %s, ~%d unique URLs visited", saved, c.Out, seen.EstimatedCount())
	if failed > 0 {
		fmt.Fprintf(deps.Stdout, " (%d failed)", failed)
	}
	fmt.Fprintln(deps.Stdout)
	return nil
}

// pageTitle derives a readable title from the URL's last path segment.
func pageTitle(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return pageURL
	}

	path := strings.Trim(u.Path, "/")
	if path == "" {
		return u.Host
	}

	segments := strings.Split(path, "/")
	last := segments[len(segments)-1]
	return strings.ReplaceAll(last, "-", " ")
}
