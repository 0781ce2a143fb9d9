package loh

// RegionBuilder scans an ordered stream of per-position calls and collects
// candidate LOH regions. It is either idle (no open region) or accumulating
// one open region, which grows in place until it is closed by a chromosome
// change, too many consecutive heterozygous calls, or Finish.
type RegionBuilder struct {
	threshold float64
	maxGap    int

	current  *GenomicRegion
	gapCount int
	regions  []GenomicRegion
}

// NewRegionBuilder creates a builder using the given homozygosity threshold
// and gap tolerance.
func NewRegionBuilder(lohThreshold float64, maxGap int) *RegionBuilder {
	return &RegionBuilder{
		threshold: lohThreshold,
		maxGap:    maxGap,
	}
}

// Observe processes one call. Calls must arrive ordered by position within
// each contiguous chromosome block.
func (b *RegionBuilder) Observe(chrom string, pos int64, varFreq float64) {
	// A chromosome change closes the open region; the same call then
	// continues against the idle state below.
	if b.current != nil && b.current.Chrom != chrom {
		b.close()
	}

	if IsHomozygous(varFreq, b.threshold) {
		if b.current == nil {
			b.current = &GenomicRegion{
				Chrom:           chrom,
				Start:           pos,
				End:             pos,
				HomozygousCount: 1,
				TotalCount:      1,
			}
		} else {
			b.current.End = pos
			b.current.HomozygousCount++
			b.current.TotalCount++
		}
		b.gapCount = 0
		return
	}

	// Heterozygous calls never open a region.
	if b.current == nil {
		return
	}

	b.current.End = pos
	b.current.TotalCount++
	b.gapCount++
	if b.gapCount > b.maxGap {
		b.close()
	}
}

// close emits the open region and returns the builder to the idle state.
func (b *RegionBuilder) close() {
	b.regions = append(b.regions, *b.current)
	b.current = nil
	b.gapCount = 0
}

// Finish closes any open region and returns all candidate regions in
// stream order. The builder must not be reused afterwards.
func (b *RegionBuilder) Finish() []GenomicRegion {
	if b.current != nil {
		b.close()
	}
	return b.regions
}
