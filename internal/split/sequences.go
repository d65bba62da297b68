// internal/split/sequences.go
package split

import (
	"context"
	"path/filepath"

	"bvsplit/internal/fasta"
	"bvsplit/internal/writers"
)

// Sequences splits the FASTA file at input into <outDir>/<genome>.<ext>,
// one file per targeted genome with at least one record, and writes the
// extraction log to logPath.
func Sequences(ctx context.Context, input string, targets []string, outDir, ext, logPath string) (Report, error) {
	b := NewBuckets(targets)
	err := fasta.ScanPath(ctx, input, func(r fasta.Record) error {
		// untargeted and malformed headers fall through silently
		b.Add(GenomeID(r.Header), r.Text())
		return nil
	})
	if err != nil {
		return Report{}, err
	}

	rep, err := b.Drain(func(id string, recs []string) error {
		return writers.WriteLines(filepath.Join(outDir, id+"."+ext), recs, false)
	})
	if err != nil {
		return rep, err
	}
	return rep, WriteLog(logPath, rep)
}
