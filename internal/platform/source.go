package platform

import (
	"context"

	"marketadapter/internal/table"
)

//go:generate mockgen -package=adapter_test -destination=../adapter/mock_source_test.go -source=source.go Source

// Source is the set of queries the adapter forwards.
type Source interface {
	FundamentalMetrics(ctx context.Context, symbol, provider string) (*table.Table, error)
	FredSeries(ctx context.Context, seriesID, start, end string) (*table.Table, error)
	Quote(ctx context.Context, symbol, provider string) (*table.Table, error)
	Profile(ctx context.Context, symbol, provider string) (*table.Table, error)
}

var _ Source = (*Client)(nil)
