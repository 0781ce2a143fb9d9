// Package loh implements loss-of-heterozygosity region detection from
// per-position variant frequency calls.
package loh

// GenomicRegion is a stretch of consecutive variant calls dominated by
// homozygous positions. Start and End are 1-based inclusive.
type GenomicRegion struct {
	Chrom           string
	Start           int64
	End             int64
	HomozygousCount int
	TotalCount      int
}

// Size returns the inclusive span of the region in base pairs.
func (r *GenomicRegion) Size() int64 {
	return r.End - r.Start + 1
}

// Confidence returns the percentage of calls in the region that were
// homozygous, or 0 when the region holds no calls.
func (r *GenomicRegion) Confidence() float64 {
	if r.TotalCount == 0 {
		return 0
	}
	return float64(r.HomozygousCount) / float64(r.TotalCount) * 100
}
