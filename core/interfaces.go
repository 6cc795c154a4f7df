// Package core defines the scrape pipeline's shared types and stage interfaces.
// Each stage (fetch, extract, normalize, resolve, reconcile, render) lives in
// its own package and depends only on what is declared here.
package core

import "context"

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Renderer converts a Report into a final output format.
type Renderer interface {
	Render(report Report) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
