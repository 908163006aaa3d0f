// internal/output/delimited.go
package output

import (
	"encoding/csv"
	"io"

	"samplereport/internal/table"
)

// WriteDelimited writes a header line and one line per row, fields separated
// by comma (',' for CSV, '\t' for TSV). Fields are quoted only when needed;
// lines end in "\n". A record holding a single empty field is written as `""`
// so it does not read back as a blank line.
func WriteDelimited(w io.Writer, t *table.Table, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := writeRecord(w, cw, t.Header()); err != nil {
		return err
	}
	for i := 0; i < t.NumRows(); i++ {
		if err := writeRecord(w, cw, t.Row(i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeRecord(w io.Writer, cw *csv.Writer, rec []string) error {
	if len(rec) != 1 || rec[0] != "" {
		return cw.Write(rec)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\"\"\n")
	return err
}

// WriteCSV is WriteDelimited with a comma.
func WriteCSV(w io.Writer, t *table.Table) error { return WriteDelimited(w, t, ',') }

// WriteTSV is WriteDelimited with a tab.
func WriteTSV(w io.Writer, t *table.Table) error { return WriteDelimited(w, t, '\t') }
