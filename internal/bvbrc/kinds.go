// internal/bvbrc/kinds.go
package bvbrc

import (
	"fmt"
	"strings"
)

// Kind names one of the bulk data files BV-BRC publishes per family.
type Kind string

const (
	FNA      Kind = "fna"      // genome nucleotide sequences
	FAA      Kind = "faa"      // protein sequences
	FFN      Kind = "ffn"      // gene nucleotide sequences
	Features Kind = "features" // feature table
)

// DefaultBaseURL is the BV-BRC viral bulk download area.
const DefaultBaseURL = "ftp://ftp.bvbrc.org/viruses/"

// Kinds lists every kind in processing order.
var Kinds = []Kind{FNA, FAA, FFN, Features}

// IsSequence reports whether k is a FASTA-like kind.
func (k Kind) IsSequence() bool { return k == FNA || k == FAA || k == FFN }

// LogName is the per-kind extraction log filename.
func (k Kind) LogName() string { return string(k) + "_extraction_log.txt" }

// ParseKind validates a user-supplied kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.TrimSpace(s))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown data type %q (want fna, faa, ffn or features)", s)
}

// FamilyFiles returns the well-known bulk filenames for a family.
func FamilyFiles(family string) map[Kind]string {
	return map[Kind]string{
		FNA:      family + ".fna",
		FAA:      family + ".PATRIC.faa",
		FFN:      family + ".PATRIC.ffn",
		Features: family + ".PATRIC.features.tab",
	}
}
