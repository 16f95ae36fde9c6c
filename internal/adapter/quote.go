package adapter

import (
	"context"
	"fmt"

	"marketadapter/internal/coerce"
)

// Quote is the latest price snapshot for a ticker.
type Quote struct {
	Ticker    string `json:"ticker"`
	Price     any    `json:"price"`
	Volume    any    `json:"volume"`
	Timestamp any    `json:"timestamp"`
}

// Quote fetches the current quote for ticker.
func (a *Adapter) Quote(ctx context.Context, ticker, provider string) (*Quote, error) {
	if provider == "" {
		provider = DefaultProvider
	}

	t, err := a.source.Quote(ctx, ticker, provider)
	if err == nil && t.Empty() {
		err = &UnavailableError{Kind: "quote", Ticker: ticker}
	}
	if err != nil {
		return nil, fmt.Errorf("Failed to fetch quote for %s: %w", ticker, err)
	}

	row, _ := t.Last()
	ts := coerce.Field(row, "timestamp")
	if ts == nil {
		ts = a.timestamp()
	}

	return &Quote{
		Ticker:    ticker,
		Price:     coerce.Field(row, "price", "last_price"),
		Volume:    coerce.Field(row, "volume"),
		Timestamp: ts,
	}, nil
}
