// internal/genomes/loader.go
package genomes

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads one genome identifier per line.
// Lines are trimmed and blank lines skipped; order and duplicates are kept.
func Load(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("genome list: %w", err)
	}
	defer fh.Close()

	var ids []string
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		id := strings.TrimSpace(sc.Text())
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("genome list %s: %w", path, err)
	}
	return ids, nil
}

// Unique drops repeated identifiers, keeping first occurrences in order.
func Unique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
