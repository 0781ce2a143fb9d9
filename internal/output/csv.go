// Package output provides LOH report formatters.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReportRow is one line of the LOH report.
type ReportRow struct {
	Chrom string
	Start int64
	End   int64
	Genes []string // overlapping gene names; empty when no gene table was supplied
}

// CSVWriter writes LOH report rows in CSV format.
type CSVWriter struct {
	w *csv.Writer
}

// NewCSVWriter creates a new CSV report writer.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// WriteHeader writes the header line.
func (cw *CSVWriter) WriteHeader() error {
	return cw.w.Write([]string{"Chromosome", "Start", "End", "Affected_Genes"})
}

// Write writes a single report row. Gene names are joined with commas in
// the order given.
func (cw *CSVWriter) Write(row ReportRow) error {
	return cw.w.Write([]string{
		row.Chrom,
		fmt.Sprintf("%d", row.Start),
		fmt.Sprintf("%d", row.End),
		strings.Join(row.Genes, ","),
	})
}

// Flush flushes any buffered data to the underlying writer.
func (cw *CSVWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}
