package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"samplereport/internal/table"
	"samplereport/pkg/api"
)

func small() *table.Table {
	return &table.Table{Columns: []table.Column{
		{Name: "Sample_ID", Cells: []string{"S1"}},
		{Name: "Test1", Cells: []string{"PASS"}},
	}}
}

func TestRegisteredFormats(t *testing.T) {
	assert.Equal(t, []string{"csv", "jsonl", "tsv"}, RegisteredFormats())
}

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	err := WriteTable("nope-format", &b, small())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")

	p := filepath.Join(t.TempDir(), "out.csv")
	err = WriteTableFile(p, "nope-format", &b, small())
	var we *WriteError
	require.True(t, errors.As(err, &we))
	assert.Equal(t, p, we.Path)
	_, statErr := os.Stat(p)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "no file created for unknown format")
}

func TestWriteTableFileOverwrites(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(p, []byte("old content that is longer\n"), 0o644))

	require.NoError(t, WriteTableFile(p, "csv", io.Discard, small()))
	got, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "Sample_ID,Test1\nS1,PASS\n", string(got))
}

func TestWriteTableFileStdout(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteTableFile("-", "tsv", &b, small()))
	assert.Equal(t, "Sample_ID\tTest1\nS1\tPASS\n", b.String())
}

func TestWriteTableFileUnwritable(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing-dir", "out.csv")
	err := WriteTableFile(p, "csv", io.Discard, small())

	var we *WriteError
	require.True(t, errors.As(err, &we))
	assert.Equal(t, p, we.Path)
	assert.Contains(t, err.Error(), p)
}

type brokenPipe struct{}

func (brokenPipe) Write([]byte) (int, error) { return 0, syscall.EPIPE }

type failing struct{}

func (failing) Write([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestStdoutBrokenPipeIgnored(t *testing.T) {
	assert.NoError(t, WriteTableFile("-", "csv", brokenPipe{}, small()))
}

func TestStdoutOtherErrorReported(t *testing.T) {
	err := WriteTableFile("-", "csv", failing{}, small())
	var we *WriteError
	require.True(t, errors.As(err, &we))
	assert.Equal(t, "-", we.Path)
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(syscall.EPIPE))
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(nil))
	assert.False(t, IsBrokenPipe(errors.New("x")))
}

func summary() api.SummaryV1 {
	return api.SummaryV1{
		SampleID: "S1", IDColumn: "Sample_ID", IDInserted: true, Rows: 1,
		Inputs:       []api.InputV1{{Path: "a.csv", Rows: 1, Columns: 1}},
		QCColumns:    []string{"Test1"},
		OtherColumns: []string{},
		Output:       "out.csv", Format: "csv",
	}
}

func TestWriteSummaryYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "summary.yaml")
	require.NoError(t, WriteSummary(p, io.Discard, summary()))

	raw, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "sample_id: S1\n")

	var got api.SummaryV1
	require.NoError(t, yaml.Unmarshal(raw, &got))
	assert.Equal(t, summary().QCColumns, got.QCColumns)
	assert.Equal(t, summary().Inputs, got.Inputs)
}

func TestWriteSummaryJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "summary.json")
	require.NoError(t, WriteSummary(p, io.Discard, summary()))

	raw, err := os.ReadFile(p)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "S1", got["sample_id"])
	assert.Equal(t, true, got["id_inserted"])
}
