package table

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoHeader is returned for an input that has no header line at all.
var ErrNoHeader = errors.New("no header row")

// ErrRowMismatch is matched (errors.Is) by every *RowMismatchError.
var ErrRowMismatch = errors.New("inputs have different row counts")

// ReadError reports an input that could not be opened or parsed.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// RowCount is one input's row count as seen by CheckAligned.
type RowCount struct {
	Source string
	Rows   int
}

// RowMismatchError lists every input whose row count differs from the first.
type RowMismatchError struct {
	Want       int
	Mismatched []RowCount
}

func (e *RowMismatchError) Error() string {
	parts := make([]string, len(e.Mismatched))
	for i, m := range e.Mismatched {
		parts[i] = fmt.Sprintf("%s has %d", m.Source, m.Rows)
	}
	return fmt.Sprintf("%v: want %d rows, %s", ErrRowMismatch, e.Want, strings.Join(parts, ", "))
}

func (e *RowMismatchError) Is(target error) bool { return target == ErrRowMismatch }
