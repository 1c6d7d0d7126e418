package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. Embedding exposes the full resty API while
// leaving room for client-wide behavior (base URL, timeouts, cookies) to be
// configured in one place by the caller.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an HTTPClient with a freshly configured underlying
// resty client. Each call yields an independent connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
