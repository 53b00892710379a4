package table

import (
	perr "gasanalysis/internal/platform/errors"
)

// Field is one flattened key path and its value within a row
type Field struct {
	Name  string
	Value Value
}

// Table stores cells column by column; every column has exactly Len() cells
type Table struct {
	names []string
	index map[string]int
	cols  [][]Value
	rows  int
}

// New returns an empty table
func New() *Table {
	return &Table{index: map[string]int{}}
}

// Len returns the number of rows
func (t *Table) Len() int { return t.rows }

// Columns returns column names in first-seen order
func (t *Table) Columns() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Has reports whether the named column exists
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the cells of the named column. The slice is shared with the table
// and must not be modified
func (t *Table) Column(name string) ([]Value, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.cols[i], true
}

// MustColumn is Column with a MissingColumn error instead of a bool
func (t *Table) MustColumn(name string) ([]Value, error) {
	c, ok := t.Column(name)
	if !ok {
		return nil, perr.MissingColumn(name)
	}
	return c, nil
}

// At returns the cell at row for the named column, Null when the column is absent
func (t *Table) At(row int, name string) Value {
	i, ok := t.index[name]
	if !ok || row < 0 || row >= t.rows {
		return Null
	}
	return t.cols[i][row]
}

// ensure returns the index of name, creating a column of nulls when needed
func (t *Table) ensure(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	t.names = append(t.names, name)
	t.cols = append(t.cols, make([]Value, t.rows))
	t.index[name] = len(t.names) - 1
	return len(t.names) - 1
}

// AppendRow adds one row. Columns missing from fields get a null; a repeated name keeps the last value
func (t *Table) AppendRow(fields ...Field) {
	for i := range t.cols {
		t.cols[i] = append(t.cols[i], Null)
	}
	t.rows++
	for _, f := range fields {
		i := t.ensure(f.Name)
		t.cols[i][t.rows-1] = f.Value
	}
}

// Fill sets every row of the named column to v, adding the column when absent
func (t *Table) Fill(name string, v Value) {
	i := t.ensure(name)
	for r := range t.cols[i] {
		t.cols[i][r] = v
	}
}

// SetColumn replaces or adds the named column; vals must have one cell per row
func (t *Table) SetColumn(name string, vals []Value) error {
	if len(vals) != t.rows {
		return perr.Internalf("column %q has %d values for %d rows", name, len(vals), t.rows)
	}
	i := t.ensure(name)
	cp := make([]Value, len(vals))
	copy(cp, vals)
	t.cols[i] = cp
	return nil
}

// Filter returns a new table with the rows for which keep returns true, in order
func (t *Table) Filter(keep func(row int) bool) *Table {
	out := &Table{
		names: append([]string(nil), t.names...),
		index: make(map[string]int, len(t.index)),
		cols:  make([][]Value, len(t.cols)),
	}
	for k, v := range t.index {
		out.index[k] = v
	}
	for r := 0; r < t.rows; r++ {
		if !keep(r) {
			continue
		}
		for i := range t.cols {
			out.cols[i] = append(out.cols[i], t.cols[i][r])
		}
		out.rows++
	}
	for i := range out.cols {
		if out.cols[i] == nil {
			out.cols[i] = []Value{}
		}
	}
	return out
}

// Where filters on one column's cells; a missing column is an error
func (t *Table) Where(name string, keep func(Value) bool) (*Table, error) {
	col, err := t.MustColumn(name)
	if err != nil {
		return nil, err
	}
	return t.Filter(func(r int) bool { return keep(col[r]) }), nil
}

// Concat stacks tables in order. The result has the union of all columns, ordered by
// first appearance; rows from a table lacking a column hold nulls there
func Concat(ts ...*Table) *Table {
	out := New()
	for _, t := range ts {
		if t == nil {
			continue
		}
		for _, n := range t.names {
			out.ensure(n)
		}
	}
	for _, t := range ts {
		if t == nil {
			continue
		}
		for i, n := range out.names {
			if src, ok := t.Column(n); ok {
				out.cols[i] = append(out.cols[i], src...)
				continue
			}
			out.cols[i] = append(out.cols[i], make([]Value, t.rows)...)
		}
		out.rows += t.rows
	}
	return out
}
