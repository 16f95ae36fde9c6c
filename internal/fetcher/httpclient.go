package fetcher

import (
	"log/slog"

	"resty.dev/v3"
)

const userAgent = "marketadapter/1.0"

// NewHTTPClient creates a JSON client for a provider base URL. Requests are
// never retried; the caller's context bounds each call.
func NewHTTPClient(baseURL string) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent).
		SetRetryCount(0).
		AddResponseMiddleware(traceResponse)
}

// traceResponse logs every completed exchange for debugging
func traceResponse(_ *resty.Client, r *resty.Response) error {
	slog.Debug("provider response",
		"method", r.Request.Method,
		"url", r.Request.URL,
		"status_code", r.StatusCode(),
		"duration", r.Duration())
	return nil
}
