package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers get the full resty surface
// while the rest of the codebase depends on a single local type.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent HTTP client with its own
// configuration and connection pool. Base URL and timeouts are set by
// the caller.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
