// internal/split/genomeid.go
package split

import "strings"

// GenomeID returns the genome identifier embedded in a BV-BRC FASTA header,
// the last '|' field with leading spaces and trailing ']'/spaces removed:
//
//	>accn|NC_002645   Human coronavirus 229E   [Human coronavirus 229E | 11137.15]  ->  11137.15
//
// Headers without '|' yield "".
func GenomeID(header string) string {
	i := strings.LastIndexByte(header, '|')
	if i < 0 {
		return ""
	}
	return strings.TrimRight(strings.TrimLeft(header[i+1:], " "), " ]")
}
