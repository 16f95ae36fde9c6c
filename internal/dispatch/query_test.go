package dispatch

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Query
		wantErr string
	}{
		{
			name:    "no command",
			args:    nil,
			wantErr: "Usage: marketadapter <command> <args>",
		},
		{
			name:    "unknown command",
			args:    []string{"foo"},
			wantErr: "Unknown command: foo",
		},
		{
			name:    "fundamentals without ticker",
			args:    []string{"fundamentals"},
			wantErr: "Usage: fundamentals <ticker> [provider]",
		},
		{
			name:    "fred_series without id",
			args:    []string{"fred_series"},
			wantErr: "Usage: fred_series <series_id> [start_date] [end_date]",
		},
		{
			name:    "quote without ticker",
			args:    []string{"quote"},
			wantErr: "Usage: quote <ticker> [provider]",
		},
		{
			name:    "profile with blank ticker",
			args:    []string{"profile", "  "},
			wantErr: "Usage: profile <ticker> [provider]",
		},
		{
			name: "fundamentals ticker is sanitized",
			args: []string{"fundamentals", " aapl "},
			want: Query{Command: CommandFundamentals, Primary: "AAPL", Optional: []string{}},
		},
		{
			name: "quote with provider",
			args: []string{"quote", "msft", "fmp", "ignored"},
			want: Query{Command: CommandQuote, Primary: "MSFT", Optional: []string{"fmp"}},
		},
		{
			name: "fred_series keeps id case",
			args: []string{"fred_series", "DFF", "2024-01-01", "2024-02-01"},
			want: Query{Command: CommandFredSeries, Primary: "DFF", Optional: []string{"2024-01-01", "2024-02-01"}},
		},
		{
			name: "check",
			args: []string{"check", "extra"},
			want: Query{Command: CommandCheck},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args)

			if tt.wantErr != "" {
				var ue *UsageError
				if !errors.As(err, &ue) {
					t.Fatalf("Parse() error = %v, want UsageError", err)
				}
				if ue.Message != tt.wantErr {
					t.Errorf("Parse() error = %q, want %q", ue.Message, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestQueryArg(t *testing.T) {
	q := Query{Command: CommandFredSeries, Primary: "DFF", Optional: []string{"2024-01-01"}}

	if got := q.Arg(0); got != "2024-01-01" {
		t.Errorf("Arg(0) = %q, want %q", got, "2024-01-01")
	}
	if got := q.Arg(1); got != "" {
		t.Errorf("Arg(1) = %q, want empty", got)
	}
	if got := q.Arg(-1); got != "" {
		t.Errorf("Arg(-1) = %q, want empty", got)
	}
}
