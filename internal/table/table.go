// Package table holds the tabular results returned by data providers: an
// ordered set of named columns and a sequence of rows, each carrying an index
// (a date for time series, the row position otherwise).
package table

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Missing marks a cell the provider reported as absent (FRED's ".", for example).
type Missing struct{}

// Table is an ordered collection of rows sharing a column set.
type Table struct {
	Columns []string
	Rows    []Row

	position map[string]int
}

// Row is a single record of a Table.
type Row struct {
	Index any

	values map[string]any
	table  *Table
}

// New creates an empty table with the given columns.
func New(columns ...string) *Table {
	t := &Table{}
	for _, c := range columns {
		t.addColumn(c)
	}
	return t
}

func (t *Table) addColumn(name string) {
	if t.position == nil {
		t.position = make(map[string]int)
	}
	if _, ok := t.position[name]; ok {
		return
	}
	t.position[name] = len(t.Columns)
	t.Columns = append(t.Columns, name)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return t.Len() == 0
}

// Last returns the most recent row.
func (t *Table) Last() (Row, bool) {
	if t.Empty() {
		return Row{}, false
	}
	return t.Rows[len(t.Rows)-1], true
}

// Append adds a row whose values follow the table's column order. Extra values
// are rejected; missing trailing values are left absent.
func (t *Table) Append(index any, values ...any) error {
	if len(values) > len(t.Columns) {
		return fmt.Errorf("table: %d values for %d columns", len(values), len(t.Columns))
	}
	m := make(map[string]any, len(values))
	for i, v := range values {
		m[t.Columns[i]] = v
	}
	t.Rows = append(t.Rows, Row{Index: index, values: m, table: t})
	return nil
}

// AppendRecord adds a row holding values for keys, extending the column set
// with keys the table has not seen yet.
func (t *Table) AppendRecord(index any, keys []string, values map[string]any) {
	m := make(map[string]any, len(values))
	for _, k := range keys {
		t.addColumn(k)
		m[k] = values[k]
	}
	t.Rows = append(t.Rows, Row{Index: index, values: m, table: t})
}

// Rename maps column names through fn. When two columns map to the same name
// the earlier column keeps it and the later one is dropped.
func (t *Table) Rename(fn func(string) string) {
	cols := t.Columns
	t.Columns, t.position = nil, nil
	kept := make(map[string]string, len(cols))
	for _, c := range cols {
		to := fn(c)
		if _, taken := t.position[to]; taken {
			continue
		}
		t.addColumn(to)
		kept[c] = to
	}
	for i := range t.Rows {
		renamed := make(map[string]any, len(kept))
		for from, v := range t.Rows[i].values {
			if to, ok := kept[from]; ok {
				renamed[to] = v
			}
		}
		t.Rows[i].values = renamed
	}
}

// Join copies the columns of other's last row onto every row of t that does
// not already define them.
func (t *Table) Join(other *Table) {
	src, ok := other.Last()
	if !ok {
		return
	}
	for _, c := range other.Columns {
		v, present := src.values[c]
		if !present {
			continue
		}
		t.addColumn(c)
		for i := range t.Rows {
			if _, exists := t.Rows[i].values[c]; !exists {
				t.Rows[i].values[c] = v
			}
		}
	}
}

// Set stores v under column in row r, adding the column if needed.
func (t *Table) Set(r Row, column string, v any) {
	t.addColumn(column)
	if r.values != nil {
		r.values[column] = v
	}
}

// Get returns the value stored under name and whether the row has that column.
func (r Row) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Has reports whether the row defines the column.
func (r Row) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// At returns the value of the i-th column, or Missing when the row lacks it.
func (r Row) At(i int) any {
	if r.table == nil || i < 0 || i >= len(r.table.Columns) {
		return Missing{}
	}
	v, ok := r.values[r.table.Columns[i]]
	if !ok {
		return Missing{}
	}
	return v
}

// UnmarshalJSON decodes either an array of objects or a single object into
// rows, keeping columns in the order they first appear. Numbers are kept as
// json.Number.
func (t *Table) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("table: %w", err)
	}
	switch tok {
	case nil:
		return nil
	case json.Delim('['):
		for dec.More() {
			open, err := dec.Token()
			if err != nil {
				return fmt.Errorf("table: %w", err)
			}
			if open != json.Delim('{') {
				return fmt.Errorf("table: row %d is not an object", len(t.Rows))
			}
			if err := t.decodeObject(dec); err != nil {
				return err
			}
		}
		_, err = dec.Token()
	case json.Delim('{'):
		err = t.decodeObject(dec)
	default:
		return fmt.Errorf("table: unexpected %v", tok)
	}
	if err != nil {
		return fmt.Errorf("table: %w", err)
	}
	return nil
}

// decodeObject reads the members of an object whose opening brace has been consumed.
func (t *Table) decodeObject(dec *json.Decoder) error {
	var keys []string
	values := make(map[string]any)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected key %v", tok)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return err
		}
		if _, dup := values[key]; !dup {
			keys = append(keys, key)
		}
		values[key] = v
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	t.AppendRecord(len(t.Rows), keys, values)
	return nil
}
