// internal/fsutil/dir.go
package fsutil

import (
	"fmt"
	"io"
	"os"
)

// MaxLine bounds a single input line (very long single-line sequences, 64 MiB).
const MaxLine = 64 * 1024 * 1024

// EnsureDir creates path and any missing parents. An existing directory is not an error.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// OpenInput opens path for reading; "-" reads stdin.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}
