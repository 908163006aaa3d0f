// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"samplereport/internal/output"
	"samplereport/internal/table"
)

// TableWriterFunc encodes a whole table to w.
type TableWriterFunc func(w io.Writer, t *table.Table) error

// TableWriters maps a format name to its encoder.
var TableWriters = map[string]TableWriterFunc{}

func init() {
	RegisterTable(output.FormatCSV, output.WriteCSV)
	RegisterTable(output.FormatTSV, output.WriteTSV)
	RegisterTable(output.FormatJSONL, output.WriteJSONL)
}

// RegisterTable adds or replaces the encoder for format (last wins).
func RegisterTable(format string, fn TableWriterFunc) { TableWriters[format] = fn }

// RegisteredFormats returns the known format names, sorted.
func RegisteredFormats() []string {
	out := make([]string, 0, len(TableWriters))
	for k := range TableWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// WriteTable dispatches t to the encoder registered for format.
func WriteTable(format string, w io.Writer, t *table.Table) error {
	fn, ok := TableWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, t)
}

// WriteTableFile encodes t as format into path (see ToPath). An unknown
// format is a *WriteError and leaves path untouched.
func WriteTableFile(path, format string, stdout io.Writer, t *table.Table) error {
	if _, ok := TableWriters[format]; !ok {
		return &WriteError{Path: path, Err: fmt.Errorf("unknown output format %q (no writer registered)", format)}
	}
	return ToPath(path, stdout, func(w io.Writer) error {
		return WriteTable(format, w, t)
	})
}
