// internal/split/report.go
package split

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	extractedHeader = "Successfully Extracted IDs:"
	notFoundHeader  = "Not Found IDs:"
)

// Report is the outcome of one splitter pass. Every distinct target is in
// exactly one of the two lists, in target-list order.
type Report struct {
	Extracted []string
	NotFound  []string
}

// WriteTo renders the extraction log.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	sb.WriteString(extractedHeader + "\n")
	sb.WriteString(strings.Join(r.Extracted, "\n") + "\n")
	sb.WriteString("\n" + notFoundHeader + "\n")
	sb.WriteString(strings.Join(r.NotFound, "\n") + "\n")
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// WriteLog writes the extraction log for r to path.
func WriteLog(path string, r Report) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("extraction log: %w", err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("extraction log %s: %w", path, cerr)
		}
	}()
	w := bufio.NewWriter(fh)
	if _, err := r.WriteTo(w); err != nil {
		return fmt.Errorf("extraction log %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("extraction log %s: %w", path, err)
	}
	return nil
}
