// internal/writers/textfile.go
package writers

import (
	"bufio"
	"fmt"
	"os"
)

// WriteLines writes parts joined by "\n" to path, truncating any existing file.
// With trailingNewline the last part is also terminated.
func WriteLines(path string, parts []string, trailingNewline bool) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(fh)
	for i, p := range parts {
		if i > 0 {
			if err := w.WriteByte('\n'); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
		}
		if _, err := w.WriteString(p); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if trailingNewline && len(parts) > 0 {
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
