package loh

// RegionFilter retains candidate regions that meet streak and size
// thresholds, splitting retained regions that straddle a centromere.
type RegionFilter struct {
	minStreak     int
	minRegionSize int64
	centromeres   map[string]int64
}

// NewRegionFilter creates a filter. centromeres maps chromosome name to
// centromere position; chromosomes without an entry are never split.
func NewRegionFilter(minStreak int, minRegionSize int64, centromeres map[string]int64) *RegionFilter {
	return &RegionFilter{
		minStreak:     minStreak,
		minRegionSize: minRegionSize,
		centromeres:   centromeres,
	}
}

// Filter returns the retained regions in input order, split halves
// lower-position-first.
func (f *RegionFilter) Filter(regions []GenomicRegion) []GenomicRegion {
	var kept []GenomicRegion
	for _, r := range regions {
		if r.HomozygousCount < f.minStreak || r.Size() < f.minRegionSize {
			continue
		}

		cen, ok := f.centromeres[r.Chrom]
		if ok && r.Start < cen && cen < r.End {
			// Counts are halved with floor division; for odd counts the
			// remainder unit is dropped from both halves.
			kept = append(kept,
				GenomicRegion{
					Chrom:           r.Chrom,
					Start:           r.Start,
					End:             cen - 1,
					HomozygousCount: r.HomozygousCount / 2,
					TotalCount:      r.TotalCount / 2,
				},
				GenomicRegion{
					Chrom:           r.Chrom,
					Start:           cen,
					End:             r.End,
					HomozygousCount: r.HomozygousCount / 2,
					TotalCount:      r.TotalCount / 2,
				},
			)
			continue
		}

		kept = append(kept, r)
	}
	return kept
}
