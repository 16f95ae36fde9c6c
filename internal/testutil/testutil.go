package testutil

import (
	"context"

	"marketadapter/internal/platform"
	"marketadapter/internal/table"
)

// FakeSource is a hand-rolled implementation of platform.Source for testing.
// Unset funcs return an empty table.
type FakeSource struct {
	FundamentalMetricsFunc func(ctx context.Context, symbol, provider string) (*table.Table, error)
	FredSeriesFunc         func(ctx context.Context, seriesID, start, end string) (*table.Table, error)
	QuoteFunc              func(ctx context.Context, symbol, provider string) (*table.Table, error)
	ProfileFunc            func(ctx context.Context, symbol, provider string) (*table.Table, error)

	// Calls records the name of every method invoked, in order.
	Calls []string
}

var _ platform.Source = (*FakeSource)(nil)

// FundamentalMetrics implements platform.Source
func (f *FakeSource) FundamentalMetrics(ctx context.Context, symbol, provider string) (*table.Table, error) {
	f.Calls = append(f.Calls, "FundamentalMetrics")
	if f.FundamentalMetricsFunc != nil {
		return f.FundamentalMetricsFunc(ctx, symbol, provider)
	}
	return table.New(), nil
}

// FredSeries implements platform.Source
func (f *FakeSource) FredSeries(ctx context.Context, seriesID, start, end string) (*table.Table, error) {
	f.Calls = append(f.Calls, "FredSeries")
	if f.FredSeriesFunc != nil {
		return f.FredSeriesFunc(ctx, seriesID, start, end)
	}
	return table.New(), nil
}

// Quote implements platform.Source
func (f *FakeSource) Quote(ctx context.Context, symbol, provider string) (*table.Table, error) {
	f.Calls = append(f.Calls, "Quote")
	if f.QuoteFunc != nil {
		return f.QuoteFunc(ctx, symbol, provider)
	}
	return table.New(), nil
}

// Profile implements platform.Source
func (f *FakeSource) Profile(ctx context.Context, symbol, provider string) (*table.Table, error) {
	f.Calls = append(f.Calls, "Profile")
	if f.ProfileFunc != nil {
		return f.ProfileFunc(ctx, symbol, provider)
	}
	return table.New(), nil
}

// NewFakeSource creates a fake whose every method returns tbl and err.
func NewFakeSource(tbl *table.Table, err error) *FakeSource {
	fn := func(context.Context, string, string) (*table.Table, error) {
		return tbl, err
	}
	return &FakeSource{
		FundamentalMetricsFunc: fn,
		FredSeriesFunc: func(context.Context, string, string, string) (*table.Table, error) {
			return tbl, err
		},
		QuoteFunc:   fn,
		ProfileFunc: fn,
	}
}

// SingleRow builds a one-row table from alternating column names and values.
func SingleRow(kv ...any) *table.Table {
	t := table.New()
	keys := make([]string, 0, len(kv)/2)
	values := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		k := kv[i].(string)
		keys = append(keys, k)
		values[k] = kv[i+1]
	}
	t.AppendRecord(0, keys, values)
	return t
}
