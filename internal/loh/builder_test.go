package loh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	homFreq = 5.0  // clearly homozygous at the default threshold
	hetFreq = 50.0 // clearly heterozygous at the default threshold
)

func newTestBuilder() *RegionBuilder {
	return NewRegionBuilder(DefaultLOHThreshold, DefaultMaxGap)
}

func TestBuilder_ContiguousHomozygousRun(t *testing.T) {
	b := newTestBuilder()
	for pos := int64(1); pos <= 10; pos++ {
		b.Observe("chr1", pos, homFreq)
	}

	regions := b.Finish()
	require.Len(t, regions, 1)
	assert.Equal(t, "chr1", regions[0].Chrom)
	assert.Equal(t, int64(1), regions[0].Start)
	assert.Equal(t, int64(10), regions[0].End)
	assert.Equal(t, 10, regions[0].HomozygousCount)
	assert.Equal(t, 10, regions[0].TotalCount)
}

func TestBuilder_HeterozygousNeverOpensRegion(t *testing.T) {
	b := newTestBuilder()
	for pos := int64(1); pos <= 20; pos++ {
		b.Observe("chr1", pos, hetFreq)
	}

	assert.Empty(t, b.Finish())
}

func TestBuilder_GapWithinToleranceKeepsRegionOpen(t *testing.T) {
	b := newTestBuilder()
	b.Observe("chr1", 1, homFreq)
	b.Observe("chr1", 2, homFreq)
	// Exactly maxGap consecutive heterozygous calls: region stays open.
	b.Observe("chr1", 3, hetFreq)
	b.Observe("chr1", 4, hetFreq)
	b.Observe("chr1", 5, homFreq)

	regions := b.Finish()
	require.Len(t, regions, 1)
	assert.Equal(t, int64(1), regions[0].Start)
	assert.Equal(t, int64(5), regions[0].End)
	assert.Equal(t, 3, regions[0].HomozygousCount)
	assert.Equal(t, 5, regions[0].TotalCount)
}

func TestBuilder_GapOverBudgetClosesRegion(t *testing.T) {
	b := newTestBuilder()
	b.Observe("chr1", 1, homFreq)
	b.Observe("chr1", 2, homFreq)
	// maxGap+1 consecutive heterozygous calls close the region.
	b.Observe("chr1", 3, hetFreq)
	b.Observe("chr1", 4, hetFreq)
	b.Observe("chr1", 5, hetFreq)
	b.Observe("chr1", 6, homFreq)

	regions := b.Finish()
	require.Len(t, regions, 2)

	// The closed region includes the trailing heterozygous calls.
	assert.Equal(t, int64(1), regions[0].Start)
	assert.Equal(t, int64(5), regions[0].End)
	assert.Equal(t, 2, regions[0].HomozygousCount)
	assert.Equal(t, 5, regions[0].TotalCount)

	assert.Equal(t, int64(6), regions[1].Start)
	assert.Equal(t, int64(6), regions[1].End)
	assert.Equal(t, 1, regions[1].HomozygousCount)
}

func TestBuilder_GapCounterResetsOnHomozygousHit(t *testing.T) {
	b := newTestBuilder()
	b.Observe("chr1", 1, homFreq)
	// Interleaved heterozygous calls never run consecutively past the
	// budget, so the region survives.
	b.Observe("chr1", 2, hetFreq)
	b.Observe("chr1", 3, hetFreq)
	b.Observe("chr1", 4, homFreq)
	b.Observe("chr1", 5, hetFreq)
	b.Observe("chr1", 6, hetFreq)
	b.Observe("chr1", 7, homFreq)

	regions := b.Finish()
	require.Len(t, regions, 1)
	assert.Equal(t, int64(1), regions[0].Start)
	assert.Equal(t, int64(7), regions[0].End)
	assert.Equal(t, 3, regions[0].HomozygousCount)
	assert.Equal(t, 7, regions[0].TotalCount)
}

func TestBuilder_ChromosomeChangeClosesAndReprocesses(t *testing.T) {
	b := newTestBuilder()
	b.Observe("chr1", 100, homFreq)
	b.Observe("chr1", 200, homFreq)
	// The first chr2 call closes the chr1 region and, being homozygous,
	// opens a chr2 region in the same step.
	b.Observe("chr2", 50, homFreq)

	regions := b.Finish()
	require.Len(t, regions, 2)
	assert.Equal(t, "chr1", regions[0].Chrom)
	assert.Equal(t, int64(200), regions[0].End)
	assert.Equal(t, "chr2", regions[1].Chrom)
	assert.Equal(t, int64(50), regions[1].Start)
	assert.Equal(t, int64(50), regions[1].End)
}

func TestBuilder_ChromosomeChangeWithHeterozygousRecord(t *testing.T) {
	b := newTestBuilder()
	b.Observe("chr1", 100, homFreq)
	// The chr2 call closes the chr1 region; heterozygous, so no new
	// region opens.
	b.Observe("chr2", 50, hetFreq)

	regions := b.Finish()
	require.Len(t, regions, 1)
	assert.Equal(t, "chr1", regions[0].Chrom)
}

func TestBuilder_GapCounterResetsAcrossChromosomes(t *testing.T) {
	b := newTestBuilder()
	b.Observe("chr1", 1, homFreq)
	b.Observe("chr1", 2, hetFreq)
	b.Observe("chr1", 3, hetFreq)
	// Chromosome change resets the gap counter: the chr2 region gets the
	// full gap budget again.
	b.Observe("chr2", 10, homFreq)
	b.Observe("chr2", 11, hetFreq)
	b.Observe("chr2", 12, hetFreq)
	b.Observe("chr2", 13, homFreq)

	regions := b.Finish()
	require.Len(t, regions, 2)
	assert.Equal(t, "chr2", regions[1].Chrom)
	assert.Equal(t, int64(10), regions[1].Start)
	assert.Equal(t, int64(13), regions[1].End)
}

func TestBuilder_FinishWithoutObservations(t *testing.T) {
	assert.Empty(t, newTestBuilder().Finish())
}
