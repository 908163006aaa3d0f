package app

import (
	"context"
	"errors"

	"samplereport/internal/cli"
	"samplereport/internal/table"
	"samplereport/internal/writers"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitRead        = 1
	ExitUsage       = 2
	ExitWrite       = 3
	ExitInterrupted = 130
)

// ExitCode maps a run error to the process exit status.
func ExitCode(err error) int {
	var (
		re *table.ReadError
		we *writers.WriteError
		ae *cli.ArgumentError
	)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitInterrupted
	case errors.As(err, &re):
		return ExitRead
	case errors.As(err, &we):
		return ExitWrite
	case errors.As(err, &ae), errors.Is(err, table.ErrRowMismatch):
		return ExitUsage
	}
	return ExitRead
}
