package output

// Output format names accepted by --format.
const (
	FormatCSV   = "csv"
	FormatTSV   = "tsv"
	FormatJSONL = "jsonl"
)

// Formats lists every output format in help order.
var Formats = []string{FormatCSV, FormatTSV, FormatJSONL}
