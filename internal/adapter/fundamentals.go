package adapter

import (
	"context"
	"fmt"

	"marketadapter/internal/coerce"
)

// Fundamentals is the normalized view of the most recent metrics row.
type Fundamentals struct {
	Ticker        string `json:"ticker"`
	Provider      string `json:"provider"`
	CompanyName   any    `json:"company_name"`
	Sector        any    `json:"sector"`
	RevenueGrowth any    `json:"revenue_growth"`
	EPSGrowth     any    `json:"eps_growth"`
	PEForward     any    `json:"pe_forward"`
	DebtToEBITDA  any    `json:"debt_to_ebitda"`
	EPS           any    `json:"eps"`
	EBITDA        any    `json:"ebitda"`
	Price         any    `json:"price"`
	MarketCap     any    `json:"market_cap"`
	Timestamp     string `json:"timestamp"`
}

// Fundamentals fetches fundamental metrics for ticker from provider.
func (a *Adapter) Fundamentals(ctx context.Context, ticker, provider string) (*Fundamentals, error) {
	if provider == "" {
		provider = DefaultProvider
	}

	rec, err := a.fundamentals(ctx, ticker, provider)
	if err != nil {
		return nil, fmt.Errorf("Failed to fetch fundamentals for %s from %s: %w", ticker, provider, err)
	}
	return rec, nil
}

func (a *Adapter) fundamentals(ctx context.Context, ticker, provider string) (*Fundamentals, error) {
	t, err := a.source.FundamentalMetrics(ctx, ticker, provider)
	if err != nil {
		return nil, err
	}
	row, ok := t.Last()
	if !ok {
		return nil, &UnavailableError{Ticker: ticker}
	}

	companyName := coerce.Lookup(row, "name", "company_name")
	if companyName == nil {
		companyName = ticker
	}

	return &Fundamentals{
		Ticker:        ticker,
		Provider:      provider,
		CompanyName:   coerce.Native(companyName),
		Sector:        coerce.Field(row, "sector"),
		RevenueGrowth: coerce.Field(row, "revenue_growth"),
		EPSGrowth:     coerce.Field(row, "eps_growth", "earnings_growth"),
		PEForward:     coerce.Field(row, "pe_forward", "forward_pe"),
		DebtToEBITDA:  coerce.Field(row, "debt_to_ebitda", "net_debt_to_ebitda"),
		EPS:           coerce.Field(row, "eps", "earnings_per_share"),
		EBITDA:        coerce.Field(row, "ebitda"),
		Price:         coerce.Field(row, "price", "last_price"),
		MarketCap:     coerce.Field(row, "market_cap"),
		Timestamp:     a.timestamp(),
	}, nil
}
