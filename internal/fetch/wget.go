// internal/fetch/wget.go
package fetch

import (
	"context"
	"io"
	"os/exec"
)

// WgetTransport shells out to wget; its exit status decides success.
type WgetTransport struct {
	Binary string    // defaults to "wget"
	Output io.Writer // wget's stdout and stderr
	Quiet  bool
}

func (w WgetTransport) Fetch(ctx context.Context, url, dest string) error {
	bin := w.Binary
	if bin == "" {
		bin = "wget"
	}
	args := []string{url, "-O", dest}
	if w.Quiet {
		args = append(args, "-q")
	}
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = w.Output
	cmd.Stderr = w.Output
	return cmd.Run()
}
