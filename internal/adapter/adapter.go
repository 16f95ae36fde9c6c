// Package adapter turns provider tables into flat JSON records for the four
// supported queries: fundamentals, economic series, quotes and profiles.
package adapter

import (
	"errors"
	"fmt"
	"time"

	"marketadapter/internal/platform"
)

// DefaultProvider is used when the caller names no equity provider.
const DefaultProvider = "fmp"

// SeriesProvider is the provider every economic series is read from.
const SeriesProvider = "fred"

// ErrDataUnavailable is matched by errors reporting an empty provider result.
var ErrDataUnavailable = errors.New("data unavailable")

// UnavailableError reports that a provider returned no rows. Kind names the
// record that was asked for; an empty Kind means fundamentals.
type UnavailableError struct {
	Kind   string
	Ticker string
}

func (e *UnavailableError) Error() string {
	if e.Kind == "" {
		return "No data returned for " + e.Ticker
	}
	return fmt.Sprintf("No %s data for %s", e.Kind, e.Ticker)
}

// Is makes errors.Is(err, ErrDataUnavailable) hold.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrDataUnavailable
}

// Adapter runs queries against a platform.Source.
type Adapter struct {
	source platform.Source
	now    func() time.Time
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithClock overrides the time source used for timestamps and default date windows.
func WithClock(now func() time.Time) Option {
	return func(a *Adapter) {
		a.now = now
	}
}

// New creates an Adapter over source.
func New(source platform.Source, opts ...Option) *Adapter {
	a := &Adapter{source: source, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) timestamp() string {
	return a.now().UTC().Format(time.RFC3339)
}
