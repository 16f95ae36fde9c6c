// Package fmp reads equity data from the Financial Modeling Prep "stable" API
// and returns it as tables with snake_case column names.
package fmp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"resty.dev/v3"

	"marketadapter/internal/fetcher"
	"marketadapter/internal/table"
)

// Name is the provider identifier used on the command line.
const Name = "fmp"

// DefaultBaseURL is the production endpoint.
const DefaultBaseURL = "https://financialmodelingprep.com/stable"

// apiError is the body FMP sends alongside 4xx responses.
type apiError struct {
	Message string `json:"Error Message"`
}

// Client fetches equity tables from FMP
type Client struct {
	apiKey string
	client *resty.Client
}

// NewClient creates a new FMP client
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey: apiKey,
		client: fetcher.NewHTTPClient(baseURL),
	}
}

// get fetches one endpoint and decodes it into a table
func (c *Client) get(ctx context.Context, path string, params map[string]string) (*table.Table, error) {
	var (
		result table.Table
		apiErr apiError
	)

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("apikey", c.apiKey).
		SetQueryParams(params).
		SetExpectResponseContentType("application/json").
		SetResult(&result).
		SetError(&apiErr).
		Get(path)

	if err != nil {
		if resp != nil && resp.RawResponse != nil {
			return nil, fetcher.NewValidationError(Name, fmt.Sprintf("decode %s: %v", path, err))
		}
		return nil, fetcher.NewNetworkError(Name, err)
	}

	if !resp.IsSuccess() {
		fe := fetcher.ClassifyHTTPError(Name, resp.StatusCode())
		if apiErr.Message != "" {
			fe.Message = apiErr.Message
		}
		return nil, fe
	}

	// FMP reports some failures (bad symbol on legacy plans, quota notices)
	// as a 200 with an error object.
	if row, ok := result.Last(); ok && result.Len() == 1 {
		if msg, has := row.Get("Error Message"); has {
			return nil, fetcher.NewValidationError(Name, fmt.Sprint(msg))
		}
	}

	slog.Debug("fmp table", "path", path, "rows", result.Len(), "columns", len(result.Columns))
	return &result, nil
}

// Metrics returns trailing-twelve-month key metrics joined with ratios,
// growth and profile fields, one row per reporting period. Only the key
// metrics request is required; a failed secondary request leaves its columns
// absent unless the context is done.
func (c *Client) Metrics(ctx context.Context, symbol string) (*table.Table, error) {
	params := map[string]string{"symbol": symbol}

	metrics, err := c.get(ctx, "/key-metrics-ttm", params)
	if err != nil {
		return nil, fmt.Errorf("key metrics: %w", err)
	}
	if metrics.Empty() {
		return metrics, nil
	}
	metrics.Rename(columnName)

	secondary := []struct {
		path   string
		params map[string]string
	}{
		{"/ratios-ttm", params},
		{"/financial-growth", map[string]string{"symbol": symbol, "limit": "1"}},
		{"/profile", params},
	}
	for _, s := range secondary {
		t, err := c.get(ctx, s.path, s.params)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%s: %w", strings.TrimPrefix(s.path, "/"), err)
			}
			slog.Debug("fmp secondary endpoint skipped", "path", s.path, "error", err)
			continue
		}
		t.Rename(columnName)
		metrics.Join(t)
	}
	derive(metrics)

	return metrics, nil
}

// Quote returns the latest quote row.
func (c *Client) Quote(ctx context.Context, symbol string) (*table.Table, error) {
	t, err := c.get(ctx, "/quote", map[string]string{"symbol": symbol})
	if err != nil {
		return nil, err
	}
	t.Rename(columnName)
	return t, nil
}

// Profile returns the company profile row.
func (c *Client) Profile(ctx context.Context, symbol string) (*table.Table, error) {
	t, err := c.get(ctx, "/profile", map[string]string{"symbol": symbol})
	if err != nil {
		return nil, err
	}
	t.Rename(columnName)
	return t, nil
}
