// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"samplereport/internal/cliutil"
	"samplereport/internal/common"
	"samplereport/internal/output"
	"samplereport/internal/table"
)

// ErrExamples is returned by ParseArgs when --examples was given.
var ErrExamples = errors.New("examples requested")

// ArgumentError reports bad command-line input.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string { return e.Msg }

func argErr(format string, a ...any) error {
	return &ArgumentError{Msg: fmt.Sprintf(format, a...)}
}

// Options holds all CLI flags and positionals.
type Options struct {
	// Positionals
	SampleID string
	Output   string
	Inputs   []string

	// Report
	IDColumn       string
	QCValues       []string
	InputDelimiter string
	StrictRows     bool

	// Output
	Format  string
	Summary string

	// Misc
	Quiet    bool
	Verbose  bool
	Version  bool
	Examples bool
}

// ParseArgs registers flags on fs, parses argv and validates the result.
// Flags may appear anywhere among the positionals
// <sample_id> <output_path> <input_path>...; "--" ends flag parsing.
// Help returns flag.ErrHelp; --examples returns ErrExamples.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var qc string

	fs.StringVar(&opt.IDColumn, "id-column", table.DefaultIDColumn, "identifier column label")
	fs.StringVar(&qc, "qc-values", strings.Join(table.DefaultQCValues, ","), "comma-separated tokens that make a column QC")
	fs.StringVar(&opt.InputDelimiter, "input-delimiter", table.DelimAuto, "input delimiter: auto | comma | tab")
	fs.BoolVar(&opt.StrictRows, "strict-rows", false, "fail when inputs have different row counts")

	fs.StringVar(&opt.Format, "format", output.FormatCSV, "output format: "+strings.Join(output.Formats, " | "))
	fs.StringVar(&opt.Summary, "summary", "", "write a YAML (or .json) run summary to this path")

	fs.BoolVar(&opt.Quiet, "quiet", false, "only log errors")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug logging")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&opt.Examples, "examples", false, "print a quickstart and exit")
	fs.BoolVar(&help, "help", false, "show this help")
	fs.BoolVar(&help, "h", false, "alias of --help")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opt, err
		}
		return opt, &ArgumentError{Msg: err.Error()}
	}
	// Anything the FlagSet did not consume is positional too.
	posArgs = append(posArgs, fs.Args()...)

	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if opt.Examples {
		return opt, ErrExamples
	}
	opt.QCValues = common.SplitList(qc)

	if len(posArgs) > 0 {
		opt.SampleID = posArgs[0]
	}
	if len(posArgs) > 1 {
		opt.Output = posArgs[1]
	}
	if len(posArgs) > 2 {
		in, err := cliutil.ExpandInputs(posArgs[2:])
		if err != nil {
			return opt, &ArgumentError{Msg: err.Error()}
		}
		opt.Inputs = in
	}
	return opt, Validate(opt)
}

// Validate applies the CLI invariants.
func Validate(o Options) error {
	switch {
	case o.SampleID == "":
		return argErr("missing <sample_id>")
	case o.Output == "":
		return argErr("missing <output_path>")
	case len(o.Inputs) == 0:
		return argErr("at least one <input_path> is required")
	}
	if o.IDColumn == "" {
		return argErr("--id-column must not be empty")
	}
	if len(o.QCValues) == 0 {
		return argErr("--qc-values must name at least one token")
	}
	switch o.InputDelimiter {
	case table.DelimAuto, table.DelimComma, table.DelimTab:
	default:
		return argErr("invalid --input-delimiter %q", o.InputDelimiter)
	}
	if !validFormat(o.Format) {
		return argErr("invalid --format %q", o.Format)
	}
	stdin := 0
	for _, in := range o.Inputs {
		if in == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return argErr("'-' (stdin) may be given only once")
	}
	if o.Summary != "" && o.Summary == o.Output && o.Output != "-" {
		return argErr("--summary must differ from <output_path>")
	}
	return nil
}

func validFormat(f string) bool {
	for _, k := range output.Formats {
		if f == k {
			return true
		}
	}
	return false
}
