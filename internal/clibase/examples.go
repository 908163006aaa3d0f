// internal/clibase/examples.go
package clibase

import (
	"fmt"
	"io"
)

// PrintExamples prints the quickstart followed by a pointer to --help.
func PrintExamples(out io.Writer, name string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", name)
	_, _ = fmt.Fprintf(out, "  # merge QC and annotation tables for one sample\n")
	_, _ = fmt.Fprintf(out, "  %s S1 S1.report.csv S1.qc.csv S1.lineage.csv S1.coverage.csv\n\n", name)
	_, _ = fmt.Fprintf(out, "  # globs are expanded; write TSV plus a YAML summary\n")
	_, _ = fmt.Fprintf(out, "  %s --format tsv --summary S1.summary.yaml S1 S1.report.tsv 'results/S1/*.csv'\n\n", name)
	_, _ = fmt.Fprintf(out, "  # stream to stdout, refuse misaligned inputs\n")
	_, _ = fmt.Fprintf(out, "  %s --strict-rows S1 - a.csv b.csv | head\n", name)
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
