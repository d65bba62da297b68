// Package split partitions BV-BRC bulk files into one file per genome.
//
// Both splitters make a single streaming pass over their input, collect the
// records of every targeted genome in memory, then write one output file per
// genome that had at least one match plus an extraction log naming the
// genomes that were found and those that were not.
package split
