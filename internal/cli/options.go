// internal/cli/options.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bvsplit/internal/bvbrc"
	"bvsplit/internal/version"
)

// Download methods
const (
	FetcherWget = "wget"
	FetcherFTP  = "ftp"
)

// EnvPrefix prefixes environment overrides, e.g. BVSPLIT_OUTPUT_DIR.
const EnvPrefix = "BVSPLIT"

// Options holds the resolved configuration of one run.
type Options struct {
	GenomeList string
	OutputDir  string

	// Download
	FamilyName string
	Fetcher    string
	RemoteBase string

	// Explicit inputs by kind; they win over downloaded files.
	Files map[bvbrc.Kind]string

	ExtractTypes []bvbrc.Kind // processing order, no duplicates
	Quiet        bool
	JSON         bool // machine-readable summary on stdout
}

// Wants reports whether k was selected.
func (o Options) Wants(k bvbrc.Kind) bool {
	for _, t := range o.ExtractTypes {
		if t == k {
			return true
		}
	}
	return false
}

// UsageError marks bad invocations, as opposed to failures while running.
type UsageError struct{ Err error }

func (e UsageError) Error() string { return e.Err.Error() }
func (e UsageError) Unwrap() error { return e.Err }

func usagef(format string, a ...any) error {
	return UsageError{Err: fmt.Errorf(format, a...)}
}

func fileFlag(k bvbrc.Kind) string { return string(k) + "_file" }

// NewCommand builds the root command. run receives the resolved Options.
func NewCommand(run func(context.Context, Options) error) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "bvsplit --genome_list FILE --output_dir DIR [flags]",
		Short: "Split BV-BRC bulk sequence and feature files by genome ID",
		Long: `bvsplit: split BV-BRC viral bulk files into one file per genome

Reads the genome IDs in --genome_list and writes, for every selected data
type, <output_dir>/<type>/<genome_id>.<ext> plus an extraction log.
With --family_name the family's bulk files are fetched from BV-BRC first.

Every flag can also be set as BVSPLIT_<FLAG> in the environment or in a
--config file (yaml, toml or json).`,
		Example: `  bvsplit --genome_list ids.txt --output_dir out --family_name Coronaviridae
  bvsplit --genome_list ids.txt --output_dir out --fna_file all.fna --extract_types fna features`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolve(cmd, v, args)
			if err != nil {
				return err
			}
			return run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	registerFlags(f)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return UsageError{Err: err}
	})

	_ = v.BindPFlags(f)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return cmd
}

func registerFlags(f *pflag.FlagSet) {
	f.SortFlags = false
	f.String("genome_list", "", "file containing genome IDs, one per line [*]")
	f.String("output_dir", "", "output directory [*]")
	f.String("family_name", "", "virus family whose bulk files are downloaded when missing")
	f.String(fileFlag(bvbrc.FNA), "", "path to the .fna file")
	f.String(fileFlag(bvbrc.FAA), "", "path to the .PATRIC.faa file")
	f.String(fileFlag(bvbrc.FFN), "", "path to the .PATRIC.ffn file")
	f.String(fileFlag(bvbrc.Features), "", "path to the .PATRIC.features.tab file")
	f.StringSlice("extract_types", kindNames(bvbrc.Kinds), "types of data to extract: fna faa ffn features")
	f.String("fetcher", FetcherWget, "download method: wget | ftp")
	f.String("remote_base", bvbrc.DefaultBaseURL, "remote location of the bulk files")
	f.BoolP("quiet", "q", false, "suppress warnings, progress and the summary")
	f.Bool("json", false, "print the run summary as JSON")
	f.String("config", "", "config file")
}

func resolve(cmd *cobra.Command, v *viper.Viper, args []string) (Options, error) {
	var opt Options
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return opt, usagef("config %s: %v", path, err)
		}
	}

	opt.GenomeList = v.GetString("genome_list")
	opt.OutputDir = v.GetString("output_dir")
	opt.FamilyName = strings.TrimSpace(v.GetString("family_name"))
	opt.Fetcher = v.GetString("fetcher")
	opt.RemoteBase = v.GetString("remote_base")
	opt.Quiet = v.GetBool("quiet")
	opt.JSON = v.GetBool("json")
	opt.Files = make(map[bvbrc.Kind]string, len(bvbrc.Kinds))
	for _, k := range bvbrc.Kinds {
		if p := v.GetString(fileFlag(k)); p != "" {
			opt.Files[k] = p
		}
	}

	// "--extract_types fna faa": pflag takes the first value, the rest
	// arrive as positionals.
	raw := v.GetStringSlice("extract_types")
	if len(args) > 0 {
		if !cmd.Flags().Changed("extract_types") {
			return opt, usagef("unexpected argument %q", args[0])
		}
		raw = append(raw, args...)
	}
	types, err := parseKinds(raw)
	if err != nil {
		return opt, err
	}
	opt.ExtractTypes = types

	switch {
	case opt.GenomeList == "":
		return opt, usagef("--genome_list is required")
	case opt.OutputDir == "":
		return opt, usagef("--output_dir is required")
	case opt.Fetcher != FetcherWget && opt.Fetcher != FetcherFTP:
		return opt, usagef("invalid --fetcher %q", opt.Fetcher)
	}
	return opt, nil
}

// parseKinds accepts space or comma separated names and returns the selected
// kinds in processing order.
func parseKinds(raw []string) ([]bvbrc.Kind, error) {
	selected := map[bvbrc.Kind]bool{}
	for _, r := range raw {
		for _, name := range strings.FieldsFunc(r, func(c rune) bool { return c == ',' || c == ' ' }) {
			k, err := bvbrc.ParseKind(name)
			if err != nil {
				return nil, UsageError{Err: fmt.Errorf("--extract_types: %w", err)}
			}
			selected[k] = true
		}
	}
	if len(selected) == 0 {
		return nil, UsageError{Err: errors.New("--extract_types: no data types selected")}
	}
	var out []bvbrc.Kind
	for _, k := range bvbrc.Kinds {
		if selected[k] {
			out = append(out, k)
		}
	}
	return out, nil
}

func kindNames(ks []bvbrc.Kind) []string {
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = string(k)
	}
	return out
}
