package adapter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"marketadapter/internal/coerce"
	"marketadapter/internal/table"
)

const dateLayout = "2006-01-02"

// defaultWindow is how far back a series query reaches when no start date is given.
const defaultWindow = 365 * 24 * time.Hour

// Observation is one dated value of an economic series.
type Observation struct {
	Date     string `json:"date"`
	Value    any    `json:"value"`
	SeriesID string `json:"series_id"`
}

// FredSeries fetches seriesID between start and end (YYYY-MM-DD). An empty
// end means today; an empty start means 365 days before today.
func (a *Adapter) FredSeries(ctx context.Context, seriesID, start, end string) ([]Observation, error) {
	obs, err := a.series(ctx, seriesID, start, end)
	if err != nil {
		return nil, fmt.Errorf("Failed to fetch FRED series %s: %w", seriesID, err)
	}
	return obs, nil
}

func (a *Adapter) series(ctx context.Context, seriesID, start, end string) ([]Observation, error) {
	now := a.now()
	if end == "" {
		end = now.Format(dateLayout)
	}
	if start == "" {
		start = now.Add(-defaultWindow).Format(dateLayout)
	}
	for _, d := range []struct{ name, value string }{{"start", start}, {"end", end}} {
		if _, err := time.Parse(dateLayout, d.value); err != nil {
			return nil, fmt.Errorf("invalid %s date %q: expected YYYY-MM-DD", d.name, d.value)
		}
	}

	t, err := a.source.FredSeries(ctx, seriesID, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]Observation, 0, t.Len())
	for _, row := range t.Rows {
		v, err := seriesValue(row, seriesID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", formatIndex(row.Index), err)
		}
		out = append(out, Observation{
			Date:     formatIndex(row.Index),
			Value:    v,
			SeriesID: seriesID,
		})
	}
	return out, nil
}

// seriesValue reads the column named after the series, then "value", then
// the first column, and converts the result to a float. Missing observations
// become nil.
func seriesValue(row table.Row, seriesID string) (any, error) {
	var raw any
	switch {
	case row.Has(seriesID):
		raw, _ = row.Get(seriesID)
	case row.Has("value"):
		raw, _ = row.Get("value")
	default:
		raw = row.At(0)
	}

	switch v := coerce.Native(raw).(type) {
	case nil:
		return nil, nil
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case bool:
		if v {
			return 1.0, nil
		}
		return 0.0, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q is not a number", v)
		}
		return coerce.Native(f), nil
	default:
		return nil, fmt.Errorf("value of type %T is not a number", v)
	}
}

type dateFormatter interface {
	Format(layout string) string
}

func formatIndex(idx any) string {
	if d, ok := idx.(dateFormatter); ok {
		return d.Format(dateLayout)
	}
	return fmt.Sprint(idx)
}
