package loh

// Default analysis parameters.
const (
	DefaultMinStreak     = 5
	DefaultLOHThreshold  = 35.0
	DefaultMinRegionSize = 1_000_000
	DefaultMaxGap        = 2
	DefaultSexThreshold  = 0.2
)

// IsHomozygous reports whether a variant frequency (a percentage, 0-100)
// indicates a homozygous call. Frequencies at or below the threshold, or at
// or above 100 minus the threshold, are homozygous. A threshold of 50 or
// more classifies every frequency as homozygous.
func IsHomozygous(varFreq, threshold float64) bool {
	return varFreq <= threshold || varFreq >= 100-threshold
}
