package table

// DefaultQCValues are the tokens a QC column may hold.
var DefaultQCValues = []string{"PASS", "FAIL"}

// Classification partitions a table's column names.
type Classification struct {
	ID    string // empty when the table has no identifier column
	QC    []string
	Other []string
}

// IsQC reports whether every non-empty cell is one of tokens. Columns with
// no non-empty cells are QC.
func IsQC(cells []string, tokens []string) bool {
	allowed := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		allowed[tok] = struct{}{}
	}
	for _, v := range cells {
		if v == "" {
			continue
		}
		if _, ok := allowed[v]; !ok {
			return false
		}
	}
	return true
}

// Classify splits t's columns into the identifier column (named idLabel),
// QC columns and the rest, each group in table order.
func Classify(t *Table, idLabel string, tokens []string) Classification {
	id, qc, other := partition(t, idLabel, tokens)
	var c Classification
	if id >= 0 {
		c.ID = t.Columns[id].Name
	}
	for _, i := range qc {
		c.QC = append(c.QC, t.Columns[i].Name)
	}
	for _, i := range other {
		c.Other = append(c.Other, t.Columns[i].Name)
	}
	return c
}

// Reorder returns t with the identifier column first, then QC columns, then
// the rest, together with the classification it applied.
func Reorder(t *Table, idLabel string, tokens []string) (*Table, Classification) {
	id, qc, other := partition(t, idLabel, tokens)
	cols := make([]Column, 0, len(t.Columns))
	if id >= 0 {
		cols = append(cols, t.Columns[id])
	}
	for _, i := range qc {
		cols = append(cols, t.Columns[i])
	}
	for _, i := range other {
		cols = append(cols, t.Columns[i])
	}
	return t.withColumns(cols), Classify(&Table{Columns: cols}, idLabel, tokens)
}

func partition(t *Table, idLabel string, tokens []string) (id int, qc, other []int) {
	id = t.Index(idLabel)
	for i, c := range t.Columns {
		if i == id {
			continue
		}
		if IsQC(c.Cells, tokens) {
			qc = append(qc, i)
		} else {
			other = append(other, i)
		}
	}
	return id, qc, other
}
