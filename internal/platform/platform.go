// Package platform is the data-access layer the adapter talks to. It routes
// equity queries to a named provider and economic series to FRED, and holds
// the provider credentials read at startup.
package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"marketadapter/internal/fmp"
	"marketadapter/internal/fred"
	"marketadapter/internal/table"
)

// ErrUnsupportedProvider is returned for a provider name with no registered client.
var ErrUnsupportedProvider = errors.New("unsupported provider")

// Credentials is the provider credential store.
type Credentials struct {
	FMPAPIKey  string
	FREDAPIKey string
}

// Endpoints holds provider base URLs.
type Endpoints struct {
	FMPBaseURL  string
	FREDBaseURL string
}

type equityProvider interface {
	Metrics(ctx context.Context, symbol string) (*table.Table, error)
	Quote(ctx context.Context, symbol string) (*table.Table, error)
	Profile(ctx context.Context, symbol string) (*table.Table, error)
}

type seriesProvider interface {
	Series(ctx context.Context, seriesID, start, end string) (*table.Table, error)
}

// Client implements Source over the HTTP providers.
type Client struct {
	equity map[string]equityProvider
	series seriesProvider
}

// New builds a Client from credentials and endpoints. Empty base URLs fall
// back to the production endpoints.
func New(creds Credentials, ep Endpoints) *Client {
	if ep.FMPBaseURL == "" {
		ep.FMPBaseURL = fmp.DefaultBaseURL
	}
	if ep.FREDBaseURL == "" {
		ep.FREDBaseURL = fred.DefaultBaseURL
	}
	if creds.FMPAPIKey == "" {
		slog.Debug("no FMP API key configured")
	}
	if creds.FREDAPIKey == "" {
		slog.Debug("no FRED API key configured")
	}

	return &Client{
		equity: map[string]equityProvider{
			fmp.Name: fmp.NewClient(creds.FMPAPIKey, ep.FMPBaseURL),
		},
		series: fred.NewClient(creds.FREDAPIKey, ep.FREDBaseURL),
	}
}

func (c *Client) provider(name string) (equityProvider, error) {
	p, ok := c.equity[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnsupportedProvider, name, strings.Join(c.Providers(), ", "))
	}
	return p, nil
}

// Providers lists the equity provider names.
func (c *Client) Providers() []string {
	names := make([]string, 0, len(c.equity))
	for name := range c.equity {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FundamentalMetrics returns fundamental metrics rows for symbol.
func (c *Client) FundamentalMetrics(ctx context.Context, symbol, provider string) (*table.Table, error) {
	p, err := c.provider(provider)
	if err != nil {
		return nil, err
	}
	return p.Metrics(ctx, symbol)
}

// FredSeries returns a FRED series between start and end.
func (c *Client) FredSeries(ctx context.Context, seriesID, start, end string) (*table.Table, error) {
	return c.series.Series(ctx, seriesID, start, end)
}

// Quote returns quote rows for symbol.
func (c *Client) Quote(ctx context.Context, symbol, provider string) (*table.Table, error) {
	p, err := c.provider(provider)
	if err != nil {
		return nil, err
	}
	return p.Quote(ctx, symbol)
}

// Profile returns company profile rows for symbol.
func (c *Client) Profile(ctx context.Context, symbol, provider string) (*table.Table, error) {
	p, err := c.provider(provider)
	if err != nil {
		return nil, err
	}
	return p.Profile(ctx, symbol)
}
