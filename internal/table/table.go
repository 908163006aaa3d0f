// Package table holds the in-memory column model and the pure transforms
// applied to it: merge, deduplicate, identifier insertion and QC reordering.
//
// Every transform returns a new *Table and leaves its input untouched. Cells
// are plain strings; nothing is parsed, trimmed or coerced.
package table

// DefaultIDColumn is the label of the identifier column.
const DefaultIDColumn = "Sample_ID"

// Column is a named run of string cells.
type Column struct {
	Name  string
	Cells []string
}

// Table is an ordered set of columns sharing one row count.
// Source is the path the table was loaded from, if any.
type Table struct {
	Source  string
	Columns []Column
}

// NumRows is the length of the first column, or 0 for a table without columns.
func (t *Table) NumRows() int {
	if t == nil || len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	if t == nil {
		return 0
	}
	return len(t.Columns)
}

// Header returns the column names in order.
func (t *Table) Header() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Name
	}
	return out
}

// Index returns the position of the first column called name, or -1.
func (t *Table) Index(name string) int {
	if t == nil {
		return -1
	}
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Column returns the first column called name.
func (t *Table) Column(name string) (Column, bool) {
	i := t.Index(name)
	if i < 0 {
		return Column{}, false
	}
	return t.Columns[i], true
}

// Row returns a copy of row i in column order. A column shorter than i+1
// contributes an empty cell.
func (t *Table) Row(i int) []string {
	out := make([]string, len(t.Columns))
	for j, c := range t.Columns {
		if i < len(c.Cells) {
			out[j] = c.Cells[i]
		}
	}
	return out
}

// withColumns returns a table sharing t's source with the given columns.
func (t *Table) withColumns(cols []Column) *Table {
	return &Table{Source: t.Source, Columns: cols}
}
