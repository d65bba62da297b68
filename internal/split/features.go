// internal/split/features.go
package split

import (
	"context"
	"fmt"
	"path/filepath"

	"bvsplit/internal/featuretab"
	"bvsplit/internal/fsutil"
	"bvsplit/internal/writers"
)

// FeatureExt is the suffix of per-genome feature tables.
const FeatureExt = "features.tab"

// Features splits the feature table at input into
// <outDir>/<genome>.features.tab, each starting with the shared header.
func Features(ctx context.Context, input string, targets []string, outDir, logPath string) (Report, error) {
	rc, err := fsutil.OpenInput(input)
	if err != nil {
		return Report{}, err
	}
	defer rc.Close()

	rd, err := featuretab.NewReader(rc)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", input, err)
	}
	b := NewBuckets(targets)
	err = rd.Each(ctx, func(row featuretab.Row) error {
		b.Add(row.GenomeID, row.Line)
		return nil
	})
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", input, err)
	}

	header := rd.Header()
	rep, err := b.Drain(func(id string, rows []string) error {
		lines := make([]string, 0, len(rows)+1)
		lines = append(lines, header)
		lines = append(lines, rows...)
		return writers.WriteLines(filepath.Join(outDir, id+"."+FeatureExt), lines, true)
	})
	if err != nil {
		return rep, err
	}
	return rep, WriteLog(logPath, rep)
}
