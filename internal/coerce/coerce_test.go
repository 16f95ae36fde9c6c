package coerce

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketadapter/internal/table"
)

type flag bool

type shares uint32

func TestNative(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"missing marker", table.Missing{}, nil},
		{"NaN", math.NaN(), nil},
		{"infinity", math.Inf(1), nil},
		{"bool", true, true},
		{"named bool", flag(false), false},
		{"int", 42, int64(42)},
		{"int8", int8(-3), int64(-3)},
		{"uint32 named", shares(7), int64(7)},
		{"huge uint64", uint64(math.MaxUint64), float64(math.MaxUint64)},
		{"float32", float32(1.5), 1.5},
		{"float64", 2.25, 2.25},
		{"json integer", json.Number("1200"), int64(1200)},
		{"json fraction", json.Number("0.125"), 0.125},
		{"json exponent", json.Number("1e3"), 1000.0},
		{"decimal", decimal.RequireFromString("5.33"), 5.33},
		{"null decimal", decimal.NullDecimal{}, nil},
		{"valid null decimal", decimal.NullDecimal{Decimal: decimal.NewFromInt(4), Valid: true}, 4.0},
		{"string", "Technology", "Technology"},
		{"nested", []any{json.Number("1"), table.Missing{}, []any{true}}, []any{int64(1), nil, []any{true}}},
		{"typed slice", []float32{1, 2}, []any{1.0, 2.0}},
		{"array", [2]int{3, 4}, []any{int64(3), int64(4)}},
		{"bytes", []byte("raw"), []byte("raw")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Native(tt.in))
		})
	}
}

func TestNative_JSONRoundTrip(t *testing.T) {
	record := map[string]any{
		"count": Native(json.Number("17")),
		"ratio": Native(decimal.RequireFromString("0.5")),
		"flag":  Native(flag(true)),
		"gone":  Native(math.NaN()),
		"list":  Native([]any{json.Number("2.5"), table.Missing{}}),
		"name":  Native("ACME"),
	}

	b, err := json.Marshal(record)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, json.Unmarshal(b, &back))

	assert.Equal(t, 17.0, back["count"])
	assert.Equal(t, 0.5, back["ratio"])
	assert.Equal(t, true, back["flag"])
	assert.Nil(t, back["gone"])
	assert.Equal(t, []any{2.5, nil}, back["list"])
	assert.Equal(t, "ACME", back["name"])
}

func TestLookup_AliasChain(t *testing.T) {
	tbl := table.New("name", "company_name", "eps", "earnings_per_share", "nan")
	require.NoError(t, tbl.Append(0, nil, "Apple Inc.", table.Missing{}, json.Number("6.1"), math.NaN()))
	row := tbl.Rows[0]

	assert.Equal(t, "Apple Inc.", Lookup(row, "name", "company_name"))
	assert.Equal(t, json.Number("6.1"), Lookup(row, "eps", "earnings_per_share"))
	assert.Equal(t, 6.1, Field(row, "eps", "earnings_per_share"))
	assert.Nil(t, Lookup(row, "nan"))
	assert.Nil(t, Lookup(row, "absent", "also_absent"))
	assert.Nil(t, Lookup(row))
}
