package reference

import "sort"

// GeneInterval is a named genomic span from a gene table.
// Start and End are taken literally from the source table as a closed
// interval; no coordinate-system conversion is performed.
type GeneInterval struct {
	Start int64
	End   int64
	Name  string
}

// GeneIndex provides O(log n + k) interval overlap queries using a
// sorted-slice approach. Intervals are loaded once and never modified
// after build.
type GeneIndex struct {
	intervals []GeneInterval
	maxEnd    []int64 // maxEnd[i] = max(End) for intervals[0..i]
}

// BuildGeneIndex creates a gene index from a slice of intervals.
func BuildGeneIndex(intervals []GeneInterval) *GeneIndex {
	if len(intervals) == 0 {
		return &GeneIndex{}
	}

	sorted := make([]GeneInterval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	// Build prefix-max array: maxEnd[i] = max(end) for intervals[0..i].
	// The overlap scan walks downward, so the bound must cover the
	// indexes still ahead of it, not the ones already visited.
	maxEnd := make([]int64, len(sorted))
	maxEnd[0] = sorted[0].End
	for i := 1; i < len(sorted); i++ {
		maxEnd[i] = sorted[i].End
		if maxEnd[i-1] > maxEnd[i] {
			maxEnd[i] = maxEnd[i-1]
		}
	}

	return &GeneIndex{intervals: sorted, maxEnd: maxEnd}
}

// FindOverlapping returns all intervals that overlap the closed query range
// [start, end]: interval.Start <= end AND interval.End >= start.
func (x *GeneIndex) FindOverlapping(start, end int64) []GeneInterval {
	if len(x.intervals) == 0 {
		return nil
	}

	var result []GeneInterval

	// Binary search: find rightmost interval with Start <= end.
	// All candidates must have Start <= end, so only indexes below that
	// boundary need scanning.
	hi := sort.Search(len(x.intervals), func(i int) bool {
		return x.intervals[i].Start > end
	})

	for i := hi - 1; i >= 0; i-- {
		// Prune: maxEnd[i] bounds every End in intervals[0..i], so once
		// it falls below start no remaining interval can reach the query.
		if x.maxEnd[i] < start {
			break
		}
		if x.intervals[i].End >= start {
			result = append(result, x.intervals[i])
		}
	}

	return result
}

// Len returns the number of indexed intervals.
func (x *GeneIndex) Len() int {
	return len(x.intervals)
}
