package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"marketadapter/internal/adapter"
)

// CheckSeriesID is the series fetched by the connectivity check.
const CheckSeriesID = "DFF"

// CheckResult is printed by the check command.
type CheckResult struct {
	OK       bool   `json:"ok"`
	SeriesID string `json:"series_id"`
	Points   int    `json:"points"`
}

// Runner executes exactly one query per call.
type Runner struct {
	adapter *adapter.Adapter
	timeout time.Duration
}

// NewRunner creates a Runner. A positive timeout bounds each Run.
func NewRunner(a *adapter.Adapter, timeout time.Duration) *Runner {
	return &Runner{
		adapter: a,
		timeout: timeout,
	}
}

// Run executes q and returns the JSON-serializable result.
func (r *Runner) Run(ctx context.Context, q Query) (any, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	slog.Debug("running query", "command", string(q.Command), "primary", q.Primary, "optional", q.Optional)

	switch q.Command {
	case CommandFundamentals:
		return r.adapter.Fundamentals(ctx, q.Primary, q.Arg(0))
	case CommandFredSeries:
		return r.adapter.FredSeries(ctx, q.Primary, q.Arg(0), q.Arg(1))
	case CommandQuote:
		return r.adapter.Quote(ctx, q.Primary, q.Arg(0))
	case CommandProfile:
		return r.adapter.Profile(ctx, q.Primary, q.Arg(0))
	case CommandCheck:
		obs, err := r.adapter.FredSeries(ctx, CheckSeriesID, "", "")
		if err != nil {
			return nil, err
		}
		return &CheckResult{OK: true, SeriesID: CheckSeriesID, Points: len(obs)}, nil
	default:
		return nil, &UsageError{Message: fmt.Sprintf("Unknown command: %s", q.Command)}
	}
}
