package table

// Dedup keeps the first column of each name and drops later repeats,
// returning the new table and the dropped names in scan order.
func Dedup(t *Table) (*Table, []string) {
	seen := make(map[string]struct{}, len(t.Columns))
	kept := make([]Column, 0, len(t.Columns))
	var dropped []string
	for _, c := range t.Columns {
		if _, dup := seen[c.Name]; dup {
			dropped = append(dropped, c.Name)
			continue
		}
		seen[c.Name] = struct{}{}
		kept = append(kept, c)
	}
	return t.withColumns(kept), dropped
}

// InsertIdentifier prepends a column named label holding value in every
// row, unless a column with that label already exists anywhere in t. In that
// case t's columns are returned unchanged and inserted is false.
func InsertIdentifier(t *Table, label, value string) (out *Table, inserted bool) {
	if t.Index(label) >= 0 {
		return t.withColumns(t.Columns), false
	}
	cells := make([]string, t.NumRows())
	for i := range cells {
		cells[i] = value
	}
	cols := make([]Column, 0, len(t.Columns)+1)
	cols = append(cols, Column{Name: label, Cells: cells})
	cols = append(cols, t.Columns...)
	return t.withColumns(cols), true
}
