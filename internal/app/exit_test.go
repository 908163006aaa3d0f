package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"samplereport/internal/cli"
	"samplereport/internal/table"
	"samplereport/internal/writers"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"read", &table.ReadError{Path: "a.csv", Err: errors.New("x")}, ExitRead},
		{"wrapped read", fmt.Errorf("load: %w", &table.ReadError{Path: "a.csv"}), ExitRead},
		{"write", &writers.WriteError{Path: "out.csv", Err: errors.New("x")}, ExitWrite},
		{"argument", &cli.ArgumentError{Msg: "bad"}, ExitUsage},
		{"row mismatch", &table.RowMismatchError{Want: 2}, ExitUsage},
		{"cancelled", context.Canceled, ExitInterrupted},
		{"other", errors.New("boom"), ExitRead},
		{"unknown format", writers.WriteTableFile("out.csv", "nope-format", nil, nil), ExitWrite},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ExitCode(c.err))
		})
	}
}
