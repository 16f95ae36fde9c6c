// Package coerce converts the scalar types produced by provider decoding into
// plain JSON-safe Go values.
package coerce

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/shopspring/decimal"

	"marketadapter/internal/table"
)

// Native returns the JSON-safe equivalent of v:
//   - nil, table.Missing, invalid decimal.NullDecimal and NaN/Inf floats become nil
//   - booleans stay booleans (checked before any numeric type)
//   - integer types and integral json.Number become int64
//   - float types, fractional json.Number and decimal.Decimal become float64
//   - slices and arrays are converted element by element into []any
//   - everything else is returned unchanged
func Native(v any) any {
	switch x := v.(type) {
	case nil, table.Missing:
		return nil
	case bool, string:
		return x
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return finite(f)
		}
		return x.String()
	case decimal.Decimal:
		f, _ := x.Float64()
		return finite(f)
	case decimal.NullDecimal:
		if !x.Valid {
			return nil
		}
		f, _ := x.Decimal.Float64()
		return finite(f)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Native(e)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return float64(u)
		}
		return int64(u)
	case reflect.Float32, reflect.Float64:
		return finite(rv.Float())
	case reflect.Slice:
		if rv.IsNil() || rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		return sequence(rv)
	case reflect.Array:
		return sequence(rv)
	}
	return v
}

func sequence(rv reflect.Value) []any {
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = Native(rv.Index(i).Interface())
	}
	return out
}

func finite(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}

// IsMissing reports whether v carries no value.
func IsMissing(v any) bool {
	switch x := v.(type) {
	case nil, table.Missing:
		return true
	case decimal.NullDecimal:
		return !x.Valid
	case float64:
		return math.IsNaN(x)
	}
	return false
}

// Lookup walks an alias chain and returns the first value present and not
// missing, or nil when none of the names yields one.
func Lookup(row table.Row, names ...string) any {
	for _, name := range names {
		if v, ok := row.Get(name); ok && !IsMissing(v) {
			return v
		}
	}
	return nil
}

// Field is Lookup followed by Native.
func Field(row table.Row, names ...string) any {
	return Native(Lookup(row, names...))
}
