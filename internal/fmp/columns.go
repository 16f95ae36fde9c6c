package fmp

import (
	"encoding/json"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"marketadapter/internal/table"
)

// aliases covers FMP fields whose snake_case form differs from the column
// names the adapter reads.
var aliases = map[string]string{
	"epsgrowth":            "eps_growth",
	"net_income_per_share": "eps",
}

// columnName converts an FMP field name (camelCase, optional TTM suffix) into
// a snake_case column.
func columnName(field string) string {
	field = strings.TrimSuffix(field, "TTM")
	snake := toSnake(field)
	if alias, ok := aliases[snake]; ok {
		return alias
	}
	return snake
}

// toSnake splits on lower-to-upper transitions and at the end of acronym
// runs: netDebtToEBITDA -> net_debt_to_ebitda, evToEBITDA -> ev_to_ebitda.
func toSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// derive fills ebitda from enterprise value over EV/EBITDA when FMP does not
// report it directly. The TTM endpoints carry no forward estimates, so
// forward_pe is left to the provider.
func derive(t *table.Table) {
	for _, row := range t.Rows {
		ev, okEV := number(row, "enterprise_value")
		multiple, okMul := number(row, "ev_to_ebitda")
		if okEV && okMul && !multiple.IsZero() && !row.Has("ebitda") {
			t.Set(row, "ebitda", ev.Div(multiple))
		}
	}
}

func number(row table.Row, column string) (decimal.Decimal, bool) {
	v, ok := row.Get(column)
	if !ok {
		return decimal.Decimal{}, false
	}
	n, ok := v.(json.Number)
	if !ok {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
