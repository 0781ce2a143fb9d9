package loh

// ChromX is the chromosome tracked for sex classification.
const ChromX = "chrX"

// Sex is the inferred sample sex.
type Sex int

const (
	SexUnknown Sex = iota
	SexMale
	SexFemale
)

func (s Sex) String() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	default:
		return "Unknown"
	}
}

// SexClassifier accumulates X-chromosome heterozygosity over one analysis
// pass and classifies sample sex from the heterozygous fraction.
type SexClassifier struct {
	lohThreshold float64
	sexThreshold float64

	hetCount   int
	totalCount int
}

// NewSexClassifier creates a classifier. lohThreshold is the homozygosity
// frequency threshold; sexThreshold is the heterozygous ratio above which
// the sample is called Female.
func NewSexClassifier(lohThreshold, sexThreshold float64) *SexClassifier {
	return &SexClassifier{
		lohThreshold: lohThreshold,
		sexThreshold: sexThreshold,
	}
}

// Observe processes one call. Calls on chromosomes other than chrX are
// ignored.
func (c *SexClassifier) Observe(chrom string, varFreq float64) {
	if chrom != ChromX {
		return
	}
	c.totalCount++
	if !IsHomozygous(varFreq, c.lohThreshold) {
		c.hetCount++
	}
}

// Classify returns the sex call for the observed calls. With no chrX data
// the result is Unknown; a heterozygous ratio exactly at the threshold
// classifies as Male. The bias toward Male absent strong evidence of two X
// copies is deliberate.
func (c *SexClassifier) Classify() Sex {
	if c.totalCount == 0 {
		return SexUnknown
	}
	ratio := float64(c.hetCount) / float64(c.totalCount)
	if ratio > c.sexThreshold {
		return SexFemale
	}
	return SexMale
}

// Counts returns the accumulated (heterozygous, total) chrX call counts.
func (c *SexClassifier) Counts() (het, total int) {
	return c.hetCount, c.totalCount
}
