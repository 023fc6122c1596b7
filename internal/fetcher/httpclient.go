package fetcher

import (
	"time"

	"resty.dev/v3"
)

// defaultTimeout bounds every outbound request so a hung upstream cannot
// stall a run indefinitely.
const defaultTimeout = 30 * time.Second

// NewHTTPClient creates a new HTTP client for the price API.
// Failed requests are not retried; a failed fetch aborts the current run
// and the next scheduled run tries again from scratch.
func NewHTTPClient(baseURL string) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(defaultTimeout)
}
