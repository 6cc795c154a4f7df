package cmd

import (
	"github.com/trailboard/norquay/api"
	"github.com/trailboard/norquay/core/fetch"
	"github.com/trailboard/norquay/internal/config"
)

func newFetcher(c *config.Config) *fetch.HTTPFetcher {
	return fetch.New(fetch.WithTimeout(c.FetchTimeout), fetch.WithUserAgent(c.UserAgent))
}

// newService builds the scrape service with the shared resolver.
func newService(c *config.Config) (*api.Service, error) {
	resolver, err := api.LoadResolver(c)
	if err != nil {
		return nil, err
	}
	return api.NewService(newFetcher(c), c.SourceURL, api.WithResolver(resolver)), nil
}
