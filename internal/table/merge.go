package table

// CheckAligned returns a *RowMismatchError when any table's row count
// differs from the first table's. Merge does not call it; alignment by row
// position is a precondition the caller decides how to enforce.
func CheckAligned(tables []*Table) error {
	if len(tables) < 2 {
		return nil
	}
	want := tables[0].NumRows()
	var bad []RowCount
	for _, t := range tables[1:] {
		if n := t.NumRows(); n != want {
			bad = append(bad, RowCount{Source: t.Source, Rows: n})
		}
	}
	if len(bad) == 0 {
		return nil
	}
	return &RowMismatchError{Want: want, Mismatched: bad}
}

// Merge places the tables side by side in order, aligning row i of every
// input. The result has as many rows as the longest input; shorter inputs
// are padded at the bottom with empty cells. Column names are kept as-is,
// repeats included.
func Merge(tables []*Table) *Table {
	rows := 0
	width := 0
	for _, t := range tables {
		if n := t.NumRows(); n > rows {
			rows = n
		}
		width += t.NumColumns()
	}

	cols := make([]Column, 0, width)
	for _, t := range tables {
		for _, c := range t.Columns {
			cells := make([]string, rows)
			copy(cells, c.Cells)
			cols = append(cols, Column{Name: c.Name, Cells: cells})
		}
	}
	return &Table{Columns: cols}
}
