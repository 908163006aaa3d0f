// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"

	"samplereport/internal/version"
)

// UsageCommon installs the grouped help screen on fs. Defaults are read
// back from the registered flags so help never drifts from behavior.
func UsageCommon(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – merge per-sample QC tables into one report\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [flags] <sample_id> <output_path> <input_path>...\n", name)
		fmt.Fprintln(out, "\n  Inputs are joined side by side by row position; every input should")
		fmt.Fprintln(out, "  have the same number of rows. '-' reads stdin, '-' as output writes stdout.")

		fmt.Fprintln(out, "\nReport:")
		fmt.Fprintf(out, "      --id-column string        Identifier column label [%s]\n", def("id-column"))
		fmt.Fprintf(out, "      --qc-values list          Tokens that make a column QC [%s]\n", def("qc-values"))
		fmt.Fprintf(out, "      --input-delimiter string  auto | comma | tab [%s]\n", def("input-delimiter"))
		fmt.Fprintf(out, "      --strict-rows             Fail when inputs have different row counts [%s]\n", def("strict-rows"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "      --format string           csv | tsv | jsonl [%s]\n", def("format"))
		fmt.Fprintln(out, "      --summary path            Write a YAML run summary (JSON if path ends in .json)")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                   Only log errors [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose                 Debug logging [%s]\n", def("verbose"))
		fmt.Fprintln(out, "      --examples                Print a quickstart and exit")
		fmt.Fprintln(out, "  -v, --version                 Print version and exit")
		fmt.Fprintln(out, "  -h, --help                    Show this help and exit")
	}
}
