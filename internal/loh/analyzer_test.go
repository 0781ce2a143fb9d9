package loh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lohscan/lohscan/internal/cns"
)

// sliceParser feeds records from memory, implementing cns.RecordParser.
type sliceParser struct {
	records []cns.Record
	next    int
	errAt   int // index at which Next fails; -1 disables
	err     error
}

func newSliceParser(records []cns.Record) *sliceParser {
	return &sliceParser{records: records, errAt: -1}
}

func (p *sliceParser) Next() (*cns.Record, error) {
	if p.errAt >= 0 && p.next == p.errAt {
		return nil, p.err
	}
	if p.next >= len(p.records) {
		return nil, nil
	}
	r := p.records[p.next]
	p.next++
	return &r, nil
}

func (p *sliceParser) Close() error    { return nil }
func (p *sliceParser) LineNumber() int { return p.next + 1 }

func TestAnalyzer_EndToEnd(t *testing.T) {
	// 10 ordered chr1 calls, all homozygous at freq 5%.
	var records []cns.Record
	for pos := int64(1); pos <= 10; pos++ {
		records = append(records, cns.Record{Chrom: "chr1", Pos: pos, VarFreq: 5})
	}

	opts := DefaultOptions()
	opts.MinRegionSize = 1
	a := NewAnalyzer(opts)

	regions, sex, err := a.Analyze(newSliceParser(records), nil)
	require.NoError(t, err)

	require.Len(t, regions, 1)
	assert.Equal(t, "chr1", regions[0].Chrom)
	assert.Equal(t, int64(1), regions[0].Start)
	assert.Equal(t, int64(10), regions[0].End)
	assert.Equal(t, 10, regions[0].HomozygousCount)
	assert.Equal(t, 10, regions[0].TotalCount)

	assert.Equal(t, SexUnknown, sex, "no chrX data")
}

func TestAnalyzer_SexFromChrX(t *testing.T) {
	var records []cns.Record
	// 3 heterozygous of 10 chrX calls: ratio 0.3 > 0.2 -> Female.
	for pos := int64(1); pos <= 7; pos++ {
		records = append(records, cns.Record{Chrom: "chrX", Pos: pos, VarFreq: 100})
	}
	for pos := int64(8); pos <= 10; pos++ {
		records = append(records, cns.Record{Chrom: "chrX", Pos: pos, VarFreq: 50})
	}

	a := NewAnalyzer(DefaultOptions())
	_, sex, err := a.Analyze(newSliceParser(records), nil)
	require.NoError(t, err)
	assert.Equal(t, SexFemale, sex)
}

func TestAnalyzer_CentromereSplit(t *testing.T) {
	var records []cns.Record
	for pos := int64(1_000_000); pos <= 1_000_000+9_000; pos += 1_000 {
		records = append(records, cns.Record{Chrom: "chr5", Pos: pos, VarFreq: 2})
	}

	opts := DefaultOptions()
	opts.MinRegionSize = 1
	a := NewAnalyzer(opts)

	centromeres := map[string]int64{"chr5": 1_004_500}
	regions, _, err := a.Analyze(newSliceParser(records), centromeres)
	require.NoError(t, err)

	require.Len(t, regions, 2)
	assert.Equal(t, int64(1_000_000), regions[0].Start)
	assert.Equal(t, int64(1_004_499), regions[0].End)
	assert.Equal(t, int64(1_004_500), regions[1].Start)
	assert.Equal(t, int64(1_009_000), regions[1].End)
	assert.Equal(t, 5, regions[0].HomozygousCount)
	assert.Equal(t, 5, regions[1].HomozygousCount)
}

func TestAnalyzer_ReadErrorAbortsWithNoRegions(t *testing.T) {
	records := []cns.Record{
		{Chrom: "chr1", Pos: 1, VarFreq: 5},
		{Chrom: "chr1", Pos: 2, VarFreq: 5},
	}
	p := newSliceParser(records)
	p.errAt = 1
	p.err = &cns.ParseError{Line: 3, Message: "invalid position: x"}

	a := NewAnalyzer(DefaultOptions())
	regions, sex, err := a.Analyze(p, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "line 3")
	assert.Nil(t, regions, "no partial region list on failure")
	assert.Equal(t, SexUnknown, sex)
}

func TestAnalyzer_EmptyInput(t *testing.T) {
	a := NewAnalyzer(DefaultOptions())
	regions, sex, err := a.Analyze(newSliceParser(nil), nil)
	require.NoError(t, err)
	assert.Empty(t, regions)
	assert.Equal(t, SexUnknown, sex)
}
