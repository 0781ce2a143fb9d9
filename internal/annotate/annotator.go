// Package annotate provides gene overlap annotation for LOH regions.
package annotate

import (
	"sort"

	"go.uber.org/zap"

	"github.com/lohscan/lohscan/internal/loh"
)

// GeneLookup defines the interface for finding gene names overlapping a
// genomic range.
type GeneLookup interface {
	FindGenes(chrom string, start, end int64) []string
}

// Annotator annotates regions with overlapping gene names.
type Annotator struct {
	genes  GeneLookup
	logger *zap.Logger
}

// NewAnnotator creates an annotator backed by the given gene table.
func NewAnnotator(genes GeneLookup) *Annotator {
	return &Annotator{
		genes:  genes,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for debug messages.
func (a *Annotator) SetLogger(l *zap.Logger) {
	a.logger = l
}

// Annotate returns the unique gene names overlapping the region, sorted
// for stable output. A chromosome without table entries yields no genes.
func (a *Annotator) Annotate(r *loh.GenomicRegion) []string {
	names := a.genes.FindGenes(r.Chrom, r.Start, r.End)
	if len(names) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			unique = append(unique, name)
		}
	}
	sort.Strings(unique)

	a.logger.Debug("annotated region",
		zap.String("chrom", r.Chrom),
		zap.Int64("start", r.Start),
		zap.Int64("end", r.End),
		zap.Int("genes", len(unique)))

	return unique
}
