// internal/featuretab/reader.go
package featuretab

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"bvsplit/internal/fsutil"
)

// Row is one data line of a PATRIC feature table.
type Row struct {
	GenomeID string // first tab-separated column
	Line     string // whole line, trimmed
}

// Reader yields the rows of a feature table after its header line.
type Reader struct {
	sc     *bufio.Scanner
	header string
	line   int
}

// NewReader consumes the header line of r. An empty input yields an empty header.
func NewReader(r io.Reader) (*Reader, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), fsutil.MaxLine)
	rd := &Reader{sc: sc}
	if sc.Scan() {
		rd.header = strings.TrimSpace(sc.Text())
		rd.line = 1
	} else if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("feature table header: %w", err)
	}
	return rd, nil
}

// Header is the shared column header, trimmed.
func (r *Reader) Header() string { return r.header }

// Next returns the next non-blank row, or io.EOF.
func (r *Reader) Next() (Row, error) {
	for r.sc.Scan() {
		r.line++
		line := strings.TrimSpace(r.sc.Text())
		if line == "" {
			continue
		}
		id := line
		if i := strings.IndexByte(line, '\t'); i >= 0 {
			id = line[:i]
		}
		return Row{GenomeID: id, Line: line}, nil
	}
	if err := r.sc.Err(); err != nil {
		return Row{}, fmt.Errorf("feature table line %d: %w", r.line+1, err)
	}
	return Row{}, io.EOF
}

// Each calls fn for every row until EOF, fn error, or ctx cancellation.
func (r *Reader) Each(ctx context.Context, fn func(Row) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		row, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(row); err != nil {
			return err
		}
	}
}
