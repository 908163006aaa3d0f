// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFS() *flag.FlagSet {
	fs := NewFlagSet("test")
	fs.SetOutput(io.Discard)
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	require.NoError(t, err)
	return opts
}

func wantArgErr(t *testing.T, args ...string) *ArgumentError {
	t.Helper()
	_, err := ParseArgs(newFS(), args)
	var ae *ArgumentError
	require.True(t, errors.As(err, &ae), "want ArgumentError, got %v", err)
	return ae
}

func TestPositionalsOnly(t *testing.T) {
	o := mustParse(t, "S1", "out.csv", "a.csv", "b.csv")
	assert.Equal(t, "S1", o.SampleID)
	assert.Equal(t, "out.csv", o.Output)
	assert.Equal(t, []string{"a.csv", "b.csv"}, o.Inputs)
	assert.Equal(t, "Sample_ID", o.IDColumn)
	assert.Equal(t, []string{"PASS", "FAIL"}, o.QCValues)
	assert.Equal(t, "csv", o.Format)
	assert.Equal(t, "auto", o.InputDelimiter)
	assert.False(t, o.StrictRows)
}

func TestFlagsAnywhere(t *testing.T) {
	o := mustParse(t,
		"--format", "tsv", "S1", "out.tsv",
		"--strict-rows", "a.csv", "--qc-values", "OK,WARN", "-q",
	)
	assert.Equal(t, "tsv", o.Format)
	assert.True(t, o.StrictRows)
	assert.True(t, o.Quiet)
	assert.Equal(t, []string{"OK", "WARN"}, o.QCValues)
	assert.Equal(t, []string{"a.csv"}, o.Inputs)
}

func TestDoubleDashEndsFlags(t *testing.T) {
	o := mustParse(t, "--", "-S1-", "out.csv", "a.csv")
	assert.Equal(t, "-S1-", o.SampleID)
}

func TestGlobInputs(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"x.csv", "y.csv"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("A\n"), 0o644))
	}
	o := mustParse(t, "S1", "out.csv", filepath.Join(dir, "*.csv"))
	assert.Len(t, o.Inputs, 2)
}

func TestErrorMissingArguments(t *testing.T) {
	assert.Contains(t, wantArgErr(t).Msg, "sample_id")
	assert.Contains(t, wantArgErr(t, "S1").Msg, "output_path")
	assert.Contains(t, wantArgErr(t, "S1", "out.csv").Msg, "input_path")
}

func TestErrorBadValues(t *testing.T) {
	wantArgErr(t, "--format", "xlsx", "S1", "o", "a.csv")
	wantArgErr(t, "--input-delimiter", "pipe", "S1", "o", "a.csv")
	wantArgErr(t, "--qc-values", " , ", "S1", "o", "a.csv")
	wantArgErr(t, "--id-column=", "S1", "o", "a.csv")
	wantArgErr(t, "S1", "o", "-", "-")
	wantArgErr(t, "--summary", "o", "S1", "o", "a.csv")
	wantArgErr(t, "--no-such-flag", "S1", "o", "a.csv")
	wantArgErr(t, "S1", "o", filepath.Join(t.TempDir(), "*.csv"))
}

func TestHelpVersionExamples(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)

	_, err = ParseArgs(newFS(), []string{"--help"})
	assert.ErrorIs(t, err, flag.ErrHelp)

	o, err := ParseArgs(newFS(), []string{"-v"})
	require.NoError(t, err)
	assert.True(t, o.Version)

	_, err = ParseArgs(newFS(), []string{"--examples"})
	assert.ErrorIs(t, err, ErrExamples)
}
