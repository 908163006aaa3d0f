package writers

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/carbocation/pfx"
)

// WriteError reports an output that could not be created or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ToPath creates (or truncates) path and hands a buffered writer to fill.
// "-" writes to stdout instead; a broken pipe there is not an error.
// The file is written in place, so a failure can leave it truncated.
func ToPath(path string, stdout io.Writer, fill func(io.Writer) error) error {
	if path == "-" {
		bw := bufio.NewWriter(stdout)
		err := fill(bw)
		if err == nil {
			err = bw.Flush()
		}
		if err != nil && !IsBrokenPipe(err) {
			return &WriteError{Path: path, Err: err}
		}
		return nil
	}

	fh, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	bw := bufio.NewWriter(fh)
	if err := fill(bw); err != nil {
		_ = fh.Close()
		return &WriteError{Path: path, Err: pfx.Err(err)}
	}
	if err := bw.Flush(); err != nil {
		_ = fh.Close()
		return &WriteError{Path: path, Err: pfx.Err(err)}
	}
	if err := fh.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
