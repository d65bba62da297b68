// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"bvsplit/internal/bvbrc"
	"bvsplit/internal/cli"
	"bvsplit/internal/cmdutil"
	"bvsplit/internal/fetch"
	"bvsplit/internal/fsutil"
	"bvsplit/internal/genomes"
	"bvsplit/internal/jsonutil"
	"bvsplit/internal/split"
	"bvsplit/internal/writers"
)

// Exit codes
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitInterrupted = 130
)

// newTransport is replaced in tests to avoid network access.
var newTransport = func(opts cli.Options, stderr io.Writer) fetch.Transport {
	if opts.Fetcher == cli.FetcherFTP {
		t := fetch.FTPTransport{}
		if !opts.Quiet {
			t.Progress = stderr
		}
		return t
	}
	return fetch.WgetTransport{Output: stderr, Quiet: opts.Quiet}
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	cmd := cli.NewCommand(func(ctx context.Context, opts cli.Options) error {
		return run(ctx, opts, outw, stderr)
	})
	cmd.SetOut(outw)
	cmd.SetErr(stderr)
	cmd.SetArgs(argv)

	err := cmd.ExecuteContext(parent)
	if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
		cmdutil.Errorf(stderr, "%v", e)
		return ExitFailure
	}

	var ue cli.UsageError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &ue):
		cmdutil.Errorf(stderr, "%v", err)
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
		return ExitUsage
	case errors.Is(err, context.Canceled):
		cmdutil.Errorf(stderr, "interrupted")
		return ExitInterrupted
	default:
		cmdutil.Errorf(stderr, "%v", err)
		return ExitFailure
	}
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// KindSummary is the per-kind entry of the --json summary.
type KindSummary struct {
	Kind      bvbrc.Kind `json:"kind"`
	Input     string     `json:"input"`
	Dir       string     `json:"dir"`
	Extracted []string   `json:"extracted"`
	NotFound  []string   `json:"not_found"`
}

// run creates the output tree, fetches missing family files, then splits
// every selected kind that has an input file against the genome list.
func run(ctx context.Context, opts cli.Options, stdout, stderr io.Writer) error {
	if err := fsutil.EnsureDir(opts.OutputDir); err != nil {
		return err
	}
	inputs := make(map[bvbrc.Kind]string, len(bvbrc.Kinds))
	for k, p := range opts.Files {
		inputs[k] = p
	}
	if opts.FamilyName != "" {
		f := &fetch.Fetcher{
			BaseURL:   opts.RemoteBase,
			Transport: newTransport(opts, stderr),
			Log:       stderr,
			Quiet:     opts.Quiet,
		}
		downloaded, err := f.FetchFamily(ctx, opts.FamilyName)
		if err != nil {
			return err
		}
		for k, p := range downloaded {
			if inputs[k] == "" {
				inputs[k] = p
			}
		}
	}

	// The genome list is read only once some kind has an input, so a run
	// with nothing to split never touches it.
	var targets []string
	loaded := false
	summary := []KindSummary{}
	for _, k := range bvbrc.Kinds {
		if !opts.Wants(k) {
			continue
		}
		input := inputs[k]
		if input == "" {
			cmdutil.Warnf(stderr, opts.Quiet, "no input file for %s; skipping", k)
			continue
		}
		if !loaded {
			ids, err := genomes.Load(opts.GenomeList)
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				cmdutil.Warnf(stderr, opts.Quiet, "genome list %s has no IDs", opts.GenomeList)
			}
			targets, loaded = ids, true
		}
		rep, err := extract(ctx, k, input, targets, opts.OutputDir)
		if err != nil {
			return err
		}
		summary = append(summary, KindSummary{
			Kind: k, Input: input, Dir: filepath.Join(opts.OutputDir, string(k)),
			Extracted: nonNil(rep.Extracted), NotFound: nonNil(rep.NotFound),
		})
		if !opts.Quiet && !opts.JSON {
			_, _ = fmt.Fprintf(stdout, "%s: %d extracted, %d not found\n", k, len(rep.Extracted), len(rep.NotFound))
		}
	}
	if opts.JSON {
		return jsonutil.EncodePretty(stdout, summary)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// extract writes <outDir>/<kind>/ for one kind.
func extract(ctx context.Context, k bvbrc.Kind, input string, targets []string, outDir string) (split.Report, error) {
	dir := filepath.Join(outDir, string(k))
	if err := fsutil.EnsureDir(dir); err != nil {
		return split.Report{}, err
	}
	logPath := filepath.Join(dir, k.LogName())
	if k.IsSequence() {
		return split.Sequences(ctx, input, targets, dir, string(k), logPath)
	}
	return split.Features(ctx, input, targets, dir, logPath)
}
