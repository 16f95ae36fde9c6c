package adapter

import (
	"context"
	"fmt"

	"marketadapter/internal/coerce"
)

// Profile describes a company.
type Profile struct {
	Ticker      string `json:"ticker"`
	CompanyName any    `json:"company_name"`
	Sector      any    `json:"sector"`
	Industry    any    `json:"industry"`
	Description any    `json:"description"`
	Website     any    `json:"website"`
	CEO         any    `json:"ceo"`
}

// Profile fetches the company profile for ticker.
func (a *Adapter) Profile(ctx context.Context, ticker, provider string) (*Profile, error) {
	if provider == "" {
		provider = DefaultProvider
	}

	t, err := a.source.Profile(ctx, ticker, provider)
	if err == nil && t.Empty() {
		err = &UnavailableError{Kind: "profile", Ticker: ticker}
	}
	if err != nil {
		return nil, fmt.Errorf("Failed to fetch profile for %s: %w", ticker, err)
	}

	row, _ := t.Last()
	return &Profile{
		Ticker:      ticker,
		CompanyName: coerce.Field(row, "company_name", "name"),
		Sector:      coerce.Field(row, "sector"),
		Industry:    coerce.Field(row, "industry"),
		Description: coerce.Field(row, "description"),
		Website:     coerce.Field(row, "website"),
		CEO:         coerce.Field(row, "ceo"),
	}, nil
}
