package api

import (
	"errors"
	"net/http"

	"github.com/trailboard/norquay/core/fetch"
)

// ErrorBody is the JSON body of every failed request. Status carries the
// upstream HTTP status when the source site answered with one.
type ErrorBody struct {
	Error  string `json:"error"`
	Status int    `json:"status,omitempty"`
}

// classify maps a request failure to its response code and body. Upstream
// failures are 502; everything else is 500.
func classify(err error) (int, ErrorBody) {
	var upstream *fetch.UpstreamError
	if errors.As(err, &upstream) {
		return http.StatusBadGateway, ErrorBody{Error: upstream.Error(), Status: upstream.StatusCode}
	}
	return http.StatusInternalServerError, ErrorBody{Error: err.Error()}
}
