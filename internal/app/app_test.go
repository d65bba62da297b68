package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bvsplit/internal/cli"
	"bvsplit/internal/fetch"
)

// servedTransport answers from an in-memory file table.
type servedTransport struct {
	files map[string]string // remote name -> content
	got   []string
}

func (s *servedTransport) Fetch(_ context.Context, url, dest string) error {
	s.got = append(s.got, url)
	name := url[strings.LastIndex(url, "/")+1:]
	body, ok := s.files[name]
	if !ok {
		return errors.New("550 file not found")
	}
	return os.WriteFile(dest, []byte(body), 0o644)
}

func withTransport(t *testing.T, tr fetch.Transport) {
	t.Helper()
	prev := newTransport
	newTransport = func(cli.Options, io.Writer) fetch.Transport { return tr }
	t.Cleanup(func() { newTransport = prev })
}

// chdir moves into dir for the test; the fetcher works in the working directory.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestFamilyDownloadFeedsSplitters(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile("ids.txt", []byte("G1\nG2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// explicit ffn beats the downloaded one
	if err := os.WriteFile("mine.ffn", []byte(">x|G2]\nATG\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tr := &servedTransport{files: map[string]string{
		"Fam.fna":                 ">a|G1]\nAC\nGT\n",
		"Fam.PATRIC.faa":          ">p|G1]\nMK\n",
		"Fam.PATRIC.ffn":          ">g|G1]\nATG\n",
		"Fam.PATRIC.features.tab": "genome_id\tx\nG1\t1\nG2\t2\n",
	}}
	withTransport(t, tr)

	var stdout, stderr bytes.Buffer
	code := Run([]string{
		"--genome_list", "ids.txt",
		"--output_dir", "out",
		"--family_name", "Fam",
		"--ffn_file", "mine.ffn",
	}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	if len(tr.got) != 4 || tr.got[0] != "ftp://ftp.bvbrc.org/viruses/Fam.fna" {
		t.Fatalf("downloads %q", tr.got)
	}
	b, err := os.ReadFile(filepath.Join("out", "fna", "G1.fna"))
	if err != nil || string(b) != ">a|G1]\nACGT" {
		t.Fatalf("G1.fna %q %v", b, err)
	}
	if _, err := os.Stat(filepath.Join("out", "ffn", "G2.ffn")); err != nil {
		t.Fatalf("explicit ffn not used: %v", err)
	}
	if _, err := os.Stat(filepath.Join("out", "ffn", "G1.ffn")); !os.IsNotExist(err) {
		t.Fatalf("downloaded ffn used instead of explicit one")
	}

	// second run reuses the local copies
	tr.got = nil
	if code := Run([]string{"--genome_list", "ids.txt", "--output_dir", "out", "--family_name", "Fam", "-q"}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("rerun exit %d", code)
	}
	if len(tr.got) != 0 {
		t.Fatalf("re-downloaded %q", tr.got)
	}
}

func TestFamilyDownloadFailure(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile("ids.txt", []byte("G1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	withTransport(t, &servedTransport{files: map[string]string{"Fam.fna": ">a|G1]\nA\n"}})

	var stdout, stderr bytes.Buffer
	code := Run([]string{"--genome_list", "ids.txt", "--output_dir", "out", "--family_name", "Fam"}, &stdout, &stderr)
	if code != ExitFailure {
		t.Fatalf("want exit %d, got %d", ExitFailure, code)
	}
	if !strings.Contains(stderr.String(), "Fam.PATRIC.faa") {
		t.Fatalf("stderr %q", stderr.String())
	}
	// nothing was split
	if _, err := os.Stat(filepath.Join("out", "fna")); !os.IsNotExist(err) {
		t.Fatalf("split ran after failed download")
	}
}

func TestCanceledRun(t *testing.T) {
	dir := t.TempDir()
	ids := filepath.Join(dir, "ids.txt")
	in := filepath.Join(dir, "in.fna")
	_ = os.WriteFile(ids, []byte("A\n"), 0o644)
	_ = os.WriteFile(in, []byte(">x|A]\nAC\n"), 0o644)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	code := RunContext(ctx, []string{"--genome_list", ids, "--output_dir", filepath.Join(dir, "out"), "--fna_file", in}, &stdout, &stderr)
	if code != ExitInterrupted {
		t.Fatalf("want exit %d, got %d (%s)", ExitInterrupted, code, stderr.String())
	}
}

func TestNewTransportSelection(t *testing.T) {
	if _, ok := newTransport(cli.Options{Fetcher: cli.FetcherFTP}, io.Discard).(fetch.FTPTransport); !ok {
		t.Fatalf("ftp fetcher not selected")
	}
	if _, ok := newTransport(cli.Options{Fetcher: cli.FetcherWget}, io.Discard).(fetch.WgetTransport); !ok {
		t.Fatalf("wget fetcher not selected")
	}
}

func TestNoInputsSkipsGenomeList(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	var stdout, stderr bytes.Buffer
	code := Run([]string{"--genome_list", filepath.Join(dir, "missing.txt"), "--output_dir", out}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("want exit %d, got %d (%s)", ExitOK, code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "no input file for fna") {
		t.Fatalf("stderr %q", stderr.String())
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output dir not created: %v", err)
	}
}

func TestMissingGenomeListWithInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.fna")
	if err := os.WriteFile(in, []byte(">x|A]\nAC\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	code := Run([]string{"--genome_list", filepath.Join(dir, "missing.txt"), "--output_dir", filepath.Join(dir, "out"), "--fna_file", in}, &stdout, &stderr)
	if code != ExitFailure {
		t.Fatalf("want exit %d, got %d", ExitFailure, code)
	}
	if !strings.Contains(stderr.String(), "missing.txt") {
		t.Fatalf("stderr %q", stderr.String())
	}
}
