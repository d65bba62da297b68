// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	warnAttrs  = []color.Attribute{color.FgYellow, color.Bold}
	infoAttrs  = []color.Attribute{color.FgCyan}
	errorAttrs = []color.Attribute{color.FgRed, color.Bold}
)

// colorable reports whether dst is a terminal that accepts escape codes.
// color.NoColor only looks at stdout, and these lines usually go to stderr.
func colorable(dst io.Writer) bool {
	f, ok := dst.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func tag(dst io.Writer, label string, attrs []color.Attribute) string {
	c := color.New(attrs...)
	if colorable(dst) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(label)
}

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, tag(dst, "WARN:", warnAttrs)+" "+format+"\n", a...)
}

func Infof(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, tag(dst, "INFO:", infoAttrs)+" "+format+"\n", a...)
}

// Errorf is never silenced.
func Errorf(dst io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, tag(dst, "ERROR:", errorAttrs)+" "+format+"\n", a...)
}
