// Package fred reads economic time series from the St. Louis Fed FRED API.
package fred

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"resty.dev/v3"

	"marketadapter/internal/fetcher"
	"marketadapter/internal/table"
)

// Name is the provider identifier.
const Name = "fred"

// DefaultBaseURL is the production endpoint.
const DefaultBaseURL = "https://api.stlouisfed.org/fred"

// DateLayout is the date format FRED uses for observations and query bounds.
const DateLayout = "2006-01-02"

// missingValue is how FRED marks a date without an observation.
const missingValue = "."

// ObservationsResponse is the FRED series/observations payload
type ObservationsResponse struct {
	ObservationStart string        `json:"observation_start"`
	ObservationEnd   string        `json:"observation_end"`
	Count            int           `json:"count"`
	Observations     []Observation `json:"observations"`
}

// Observation is one dated value of a series
type Observation struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

type apiError struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_message"`
}

// Client fetches FRED series
type Client struct {
	apiKey string
	client *resty.Client
}

// NewClient creates a new FRED client
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey: apiKey,
		client: fetcher.NewHTTPClient(baseURL),
	}
}

// Series returns the observations of seriesID between start and end
// (inclusive, YYYY-MM-DD) as a table indexed by date with a single column
// named after the series.
func (c *Client) Series(ctx context.Context, seriesID, start, end string) (*table.Table, error) {
	var (
		result ObservationsResponse
		apiErr apiError
	)

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"series_id":         seriesID,
			"api_key":           c.apiKey,
			"file_type":         "json",
			"observation_start": start,
			"observation_end":   end,
		}).
		SetExpectResponseContentType("application/json").
		SetResult(&result).
		SetError(&apiErr).
		Get("/series/observations")

	if err != nil {
		if resp != nil && resp.RawResponse != nil {
			return nil, fetcher.NewValidationError(Name, fmt.Sprintf("decode observations: %v", err))
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

	return observationsTable(seriesID, result.Observations)
}

func observationsTable(seriesID string, obs []Observation) (*table.Table, error) {
	t := table.New(seriesID)
	for _, o := range obs {
		var index any = o.Date
		if d, err := time.Parse(DateLayout, o.Date); err == nil {
			index = d
		}

		var value any = table.Missing{}
		if o.Value != missingValue && o.Value != "" {
			d, err := decimal.NewFromString(o.Value)
			if err != nil {
				return nil, fetcher.NewValidationError(Name, fmt.Sprintf("observation %s: invalid value %q", o.Date, o.Value))
			}
			value = d
		}

		if err := t.Append(index, value); err != nil {
			return nil, err
		}
	}
	return t, nil
}
