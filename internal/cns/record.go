// Package cns provides VarScan CNS file parsing functionality.
package cns

// Record represents a single per-position consensus call from a CNS file.
type Record struct {
	Chrom   string  // Chromosome name (e.g., "chr12")
	Pos     int64   // 1-based genomic position
	VarFreq float64 // Variant allele frequency as a percentage (0-100)
}

// RecordParser is the interface for parsers that read per-position calls.
type RecordParser interface {
	// Next reads the next record.
	// Returns nil, nil when there are no more records.
	Next() (*Record, error)

	// Close closes the parser and releases resources.
	Close() error

	// LineNumber returns the current line number being processed.
	LineNumber() int
}
