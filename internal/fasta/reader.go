// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"bvsplit/internal/fsutil"
)

// Record is one FASTA entry. Header keeps its leading '>'.
type Record struct {
	Header string
	Seq    []byte
}

// Text renders the record as "header\nsequence".
func (r Record) Text() string {
	return r.Header + "\n" + string(r.Seq)
}

// Scan parses FASTA from r and calls emit once per record, in input order.
//
// Every line is whitespace-trimmed. Sequence lines are concatenated without
// separators. A record is emitted only when it has a header and at least one
// following non-header line; lines before the first header are ignored.
// Scan returns promptly when ctx is done.
func Scan(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, fsutil.MaxLine)

	var (
		header  string
		seq     = make([]byte, 0, 1<<16)
		haveSeq bool
	)

	flush := func() error {
		if header == "" || !haveSeq {
			return nil
		}
		return emit(Record{Header: header, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) > 0 && line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			header = string(line)
			seq = seq[:0]
			haveSeq = false
			continue
		}
		seq = append(seq, line...)
		haveSeq = true
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	// last record has no following header to trigger it
	return flush()
}

// ScanPath opens path and runs Scan over it.
func ScanPath(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := fsutil.OpenInput(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	if err := Scan(ctx, rc, emit); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
