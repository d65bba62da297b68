// internal/fetch/fetch.go
package fetch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"bvsplit/internal/bvbrc"
	"bvsplit/internal/cmdutil"
	"bvsplit/internal/fsutil"
)

// Transport retrieves one remote file into dest.
type Transport interface {
	Fetch(ctx context.Context, url, dest string) error
}

// Fetcher downloads the bulk files of a virus family if they are not
// already present locally.
type Fetcher struct {
	BaseURL   string // defaults to bvbrc.DefaultBaseURL
	Dir       string // local directory; "" is the working directory
	Transport Transport
	Log       io.Writer
	Quiet     bool
}

// URL joins the base location and a filename.
func (f *Fetcher) URL(name string) string {
	base := f.BaseURL
	if base == "" {
		base = bvbrc.DefaultBaseURL
	}
	return strings.TrimRight(base, "/") + "/" + name
}

// FetchFamily makes sure every bulk file of family exists locally and
// returns kind -> local path, whether or not anything was downloaded.
// The first failed transfer aborts.
func (f *Fetcher) FetchFamily(ctx context.Context, family string) (map[bvbrc.Kind]string, error) {
	if family == "" {
		return nil, fmt.Errorf("fetch: empty family name")
	}
	names := bvbrc.FamilyFiles(family)
	paths := make(map[bvbrc.Kind]string, len(names))
	for _, k := range bvbrc.Kinds {
		dest := names[k]
		if f.Dir != "" {
			dest = filepath.Join(f.Dir, names[k])
		}
		paths[k] = dest
		if fsutil.Exists(dest) {
			continue
		}
		if f.Log != nil {
			cmdutil.Infof(f.Log, f.Quiet, "Downloading %s...", names[k])
		}
		url := f.URL(names[k])
		if err := f.Transport.Fetch(ctx, url, dest); err != nil {
			return nil, fmt.Errorf("download %s: %w", url, err)
		}
	}
	return paths, nil
}
