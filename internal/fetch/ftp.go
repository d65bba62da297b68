// internal/fetch/ftp.go
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"github.com/jlaffaye/ftp"
	"gopkg.in/cheggaaa/pb.v1"
)

// FTPTransport retrieves files over anonymous FTP without external tools.
type FTPTransport struct {
	Timeout  time.Duration // dial timeout; 0 means 30s
	Progress io.Writer     // progress bar destination; nil disables it
}

func (t FTPTransport) Fetch(ctx context.Context, rawURL, dest string) (err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	if u.Scheme != "ftp" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	host := u.Host
	if u.Port() == "" {
		host += ":21"
	}
	timeout := t.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	c, err := ftp.Dial(host, ftp.DialWithContext(ctx), ftp.DialWithTimeout(timeout))
	if err != nil {
		return err
	}
	defer func() { _ = c.Quit() }()

	user, pass := "anonymous", "anonymous"
	if u.User != nil {
		user = u.User.Username()
		if p, ok := u.User.Password(); ok {
			pass = p
		}
	}
	if err := c.Login(user, pass); err != nil {
		return err
	}

	size, _ := c.FileSize(u.Path) // size is cosmetic; not every server reports it
	resp, err := c.Retr(u.Path)
	if err != nil {
		return err
	}

	fh, err := os.Create(dest)
	if err != nil {
		_ = resp.Close()
		return err
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	// Close reads the final transfer status (226, or 426/451 on abort).
	defer func() {
		if cerr := resp.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("transfer incomplete: %w", cerr)
		}
	}()

	var src io.Reader = resp
	if t.Progress != nil {
		bar := pb.New64(size).SetUnits(pb.U_BYTES)
		bar.Output = t.Progress
		bar.Start()
		defer bar.Finish()
		src = bar.NewProxyReader(resp)
	}
	_, err = io.Copy(fh, src)
	return err
}
