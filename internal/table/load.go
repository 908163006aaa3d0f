package table

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// Input delimiter modes.
const (
	DelimAuto  = "auto"
	DelimComma = "comma"
	DelimTab   = "tab"
)

// LoadOptions controls how inputs are decoded.
type LoadOptions struct {
	Delimiter string // auto | comma | tab
}

// Comma picks the field separator for path under o.Delimiter.
// auto maps .tsv/.tab/.txt (optionally .gz-compressed) to tab and
// everything else, including "-", to comma.
func (o LoadOptions) Comma(path string) rune {
	switch o.Delimiter {
	case DelimComma:
		return ','
	case DelimTab:
		return '\t'
	}
	name := strings.ToLower(path)
	name = strings.TrimSuffix(name, ".gz")
	switch filepath.Ext(name) {
	case ".tsv", ".tab", ".txt":
		return '\t'
	}
	return ','
}

// Load reads one delimited file. "-" reads standard input.
func Load(path string, o LoadOptions) (*Table, error) {
	rc, err := openInput(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer rc.Close()

	t, err := Read(rc, o.Comma(path))
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	t.Source = path
	return t, nil
}

// LoadAll loads every path in order. ctx is checked between files.
func LoadAll(ctx context.Context, paths []string, o LoadOptions) ([]*Table, error) {
	out := make([]*Table, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t, err := Load(p, o)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Read decodes a header line plus data rows. Every data row must carry
// exactly as many fields as the header. Blank lines are skipped.
func Read(r io.Reader, comma rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = 0

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, pfx.Err(err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	names := normalizeHeader(header)

	cols := make([]Column, len(names))
	for i, n := range names {
		cols[i] = Column{Name: n, Cells: []string{}}
	}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, pfx.Err(err)
		}
		for i, v := range rec {
			cols[i].Cells = append(cols[i].Cells, v)
		}
	}
	return &Table{Columns: cols}, nil
}

// normalizeHeader names blank header cells "Unnamed: <i>" and suffixes
// repeated names within one header as X, X.1, X.2, skipping taken names.
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	taken := make(map[string]bool, len(header))
	for i, h := range header {
		if h == "" {
			h = "Unnamed: " + strconv.Itoa(i)
		}
		out[i] = h
	}
	for _, h := range out {
		taken[h] = false
	}
	counts := make(map[string]int, len(out))
	for i, h := range out {
		if !taken[h] {
			taken[h] = true
			continue
		}
		n := counts[h]
		var name string
		for {
			n++
			name = fmt.Sprintf("%s.%d", h, n)
			if _, used := taken[name]; !used {
				break
			}
		}
		counts[h] = n
		taken[name] = true
		out[i] = name
	}
	return out
}

type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openInput opens path ("-" is stdin) and unwraps gzip when the stream
// starts with the gzip magic number or the name ends in .gz.
func openInput(path string) (io.ReadCloser, error) {
	var src io.ReadCloser
	if path == "-" {
		src = io.NopCloser(os.Stdin)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src = fh
	}
	br := bufio.NewReader(src)
	sig, _ := br.Peek(2)
	isGzip := len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b
	if !isGzip && !strings.HasSuffix(path, ".gz") {
		return &multiReadCloser{Reader: br, closers: []io.Closer{src}}, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = src.Close()
		return nil, pfx.Err(err)
	}
	return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, src}}, nil
}
