package loh

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lohscan/lohscan/internal/cns"
)

// Options configures an analysis pass.
type Options struct {
	MinStreak     int     // minimum homozygous calls to retain a region
	LOHThreshold  float64 // frequency percentage defining homozygosity
	MinRegionSize int64   // minimum inclusive span in base pairs
	MaxGap        int     // consecutive heterozygous calls tolerated before closing a region
	SexThreshold  float64 // chrX heterozygous ratio above which sex is called Female
}

// DefaultOptions returns the standard analysis parameters.
func DefaultOptions() Options {
	return Options{
		MinStreak:     DefaultMinStreak,
		LOHThreshold:  DefaultLOHThreshold,
		MinRegionSize: DefaultMinRegionSize,
		MaxGap:        DefaultMaxGap,
		SexThreshold:  DefaultSexThreshold,
	}
}

// Analyzer runs the single-pass LOH scan over a record stream.
type Analyzer struct {
	opts   Options
	logger *zap.Logger
}

// NewAnalyzer creates an analyzer with the given options.
func NewAnalyzer(opts Options) *Analyzer {
	return &Analyzer{
		opts:   opts,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for progress and summary messages.
func (a *Analyzer) SetLogger(l *zap.Logger) {
	a.logger = l
}

// Analyze consumes every record from the parser in input order, feeding the
// region builder and the sex classifier in one pass, then filters the
// candidate regions against the thresholds and centromere table. A read
// error aborts the analysis with no partial region list.
func (a *Analyzer) Analyze(parser cns.RecordParser, centromeres map[string]int64) ([]GenomicRegion, Sex, error) {
	builder := NewRegionBuilder(a.opts.LOHThreshold, a.opts.MaxGap)
	sexClassifier := NewSexClassifier(a.opts.LOHThreshold, a.opts.SexThreshold)

	recordCount := 0
	for {
		rec, err := parser.Next()
		if err != nil {
			return nil, SexUnknown, fmt.Errorf("read record: %w", err)
		}
		if rec == nil {
			break
		}
		recordCount++

		sexClassifier.Observe(rec.Chrom, rec.VarFreq)
		builder.Observe(rec.Chrom, rec.Pos, rec.VarFreq)
	}

	candidates := builder.Finish()
	filter := NewRegionFilter(a.opts.MinStreak, a.opts.MinRegionSize, centromeres)
	regions := filter.Filter(candidates)
	sex := sexClassifier.Classify()

	het, total := sexClassifier.Counts()
	a.logger.Info("analysis complete",
		zap.Int("records", recordCount),
		zap.Int("candidate_regions", len(candidates)),
		zap.Int("retained_regions", len(regions)),
		zap.Int("chrx_heterozygous", het),
		zap.Int("chrx_total", total),
		zap.String("sex", sex.String()))

	return regions, sex, nil
}
