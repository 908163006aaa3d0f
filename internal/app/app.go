// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"samplereport/internal/cli"
	"samplereport/internal/clibase"
	"samplereport/internal/cmdutil"
	"samplereport/internal/pipeline"
	"samplereport/internal/table"
	"samplereport/internal/version"
	"samplereport/internal/writers"
)

const name = "sample-report"

// RunContext parses argv, builds the report and writes it. It returns the
// process exit code (see ExitCode).
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return printUsage(fs, outw, stderr, ExitOK)
	case errors.Is(err, cli.ErrExamples):
		clibase.PrintExamples(outw, name)
		return flushed(outw, stderr, ExitOK)
	case err != nil:
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return printUsage(fs, outw, stderr, ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flushed(outw, stderr, ExitOK)
	}

	lg := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)
	cfg := pipeline.Config{
		SampleID:   opts.SampleID,
		IDColumn:   opts.IDColumn,
		QCValues:   opts.QCValues,
		Inputs:     opts.Inputs,
		Load:       table.LoadOptions{Delimiter: opts.InputDelimiter},
		StrictRows: opts.StrictRows,
		Log:        lg,
	}

	res, err := pipeline.Build(parent, cfg)
	if err != nil {
		return fail(lg, err)
	}
	if err := writers.WriteTableFile(opts.Output, opts.Format, outw, res.Table); err != nil {
		return fail(lg, err)
	}
	if opts.Summary != "" {
		s := res.Summary(cfg, opts.Output, opts.Format)
		if err := writers.WriteSummary(opts.Summary, outw, s); err != nil {
			return fail(lg, err)
		}
	}
	if err := outw.Flush(); err != nil && !writers.IsBrokenPipe(err) {
		return fail(lg, &writers.WriteError{Path: "-", Err: err})
	}

	lg.WithFields(log.Fields{
		"sample": opts.SampleID,
		"output": opts.Output,
		"rows":   res.Table.NumRows(),
		"qc":     len(res.Classification.QC),
		"other":  len(res.Classification.Other),
	}).Info("report written")
	return ExitOK
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func fail(lg log.FieldLogger, err error) int {
	lg.Error(err)
	return ExitCode(err)
}

func printUsage(fs *flag.FlagSet, outw *bufio.Writer, stderr io.Writer, code int) int {
	fs.SetOutput(outw)
	fs.Usage()
	return flushed(outw, stderr, code)
}

func flushed(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitWrite
	}
	return code
}
