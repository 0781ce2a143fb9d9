package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lohscan/lohscan/internal/annotate"
	"github.com/lohscan/lohscan/internal/cns"
	"github.com/lohscan/lohscan/internal/duckdb"
	"github.com/lohscan/lohscan/internal/loh"
	"github.com/lohscan/lohscan/internal/output"
	"github.com/lohscan/lohscan/internal/reference"
)

// Report policy: the final CSV keeps only autosomal regions with a long
// homozygous streak and high confidence. Regions below these bars stay in
// the analyzer output (and the DuckDB store) but are not reported.
const (
	reportMinStreak     = 40
	reportMinConfidence = 90.0
)

func newAnalyzeCmd() *cobra.Command {
	var (
		centromeresPath string
		genesPath       string
		outputPath      string
		dbPath          string
		sampleName      string
	)

	cmd := &cobra.Command{
		Use:   "analyze <input.cns>",
		Short: "Scan a CNS file for LOH regions and classify sample sex",
		Example: `  lohscan analyze sample.cns
  lohscan analyze --genes genes.bed --centromeres centromeres.json sample.cns
  lohscan analyze --db results.duckdb sample.cns
  cat sample.cns | lohscan analyze -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(args[0], centromeresPath, genesPath, outputPath, dbPath, sampleName)
		},
	}

	cmd.Flags().StringVar(&centromeresPath, "centromeres", "centromeres.json", "centromere positions JSON file")
	cmd.Flags().StringVar(&genesPath, "genes", "", "BED gene table for region annotation")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output CSV file (default <input>.loh.csv)")
	cmd.Flags().StringVar(&dbPath, "db", "", "DuckDB database to record regions in")
	cmd.Flags().StringVar(&sampleName, "sample", "", "sample name for the database (default: input basename)")

	cmd.Flags().Int("min-streak", loh.DefaultMinStreak, "minimum homozygous calls to retain a region")
	cmd.Flags().Float64("loh-threshold", loh.DefaultLOHThreshold, "frequency percentage defining homozygosity")
	cmd.Flags().Int64("min-region-size", loh.DefaultMinRegionSize, "minimum region span in base pairs")
	cmd.Flags().Int("max-gap", loh.DefaultMaxGap, "consecutive heterozygous calls tolerated inside a region")
	cmd.Flags().Float64("sex-threshold", loh.DefaultSexThreshold, "chrX heterozygosity ratio above which sex is Female")

	_ = viper.BindPFlag("min_streak", cmd.Flags().Lookup("min-streak"))
	_ = viper.BindPFlag("loh_threshold", cmd.Flags().Lookup("loh-threshold"))
	_ = viper.BindPFlag("min_region_size", cmd.Flags().Lookup("min-region-size"))
	_ = viper.BindPFlag("max_gap", cmd.Flags().Lookup("max-gap"))
	_ = viper.BindPFlag("sex_determination_threshold", cmd.Flags().Lookup("sex-threshold"))

	return cmd
}

func runAnalyze(inputPath, centromeresPath, genesPath, outputPath, dbPath, sampleName string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	// Reference tables load before any analysis; a load failure is fatal.
	centromeres, err := reference.LoadCentromeres(centromeresPath)
	if err != nil {
		return fmt.Errorf("load centromeres: %w", err)
	}

	var genes reference.GeneTable
	if genesPath != "" {
		genes, err = reference.LoadGeneTable(genesPath)
		if err != nil {
			return fmt.Errorf("load gene table: %w", err)
		}
	}

	parser, err := cns.NewParser(inputPath)
	if err != nil {
		return err
	}
	defer parser.Close()

	analyzer := loh.NewAnalyzer(analysisOptions())
	analyzer.SetLogger(logger)

	regions, sex, err := analyzer.Analyze(parser, centromeres)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", inputPath, err)
	}

	rows := buildReport(regions, genes, genesPath != "")

	outPath := outputPath
	if outPath == "" {
		outPath = defaultOutputPath(inputPath)
	}

	if err := writeReport(outPath, rows); err != nil {
		return err
	}

	if dbPath != "" {
		sample := sampleName
		if sample == "" {
			sample = sampleBaseName(inputPath)
		}
		if err := storeRegions(dbPath, sample, sex, regions); err != nil {
			return err
		}
	}

	logger.Info("report written",
		zap.String("sex", sex.String()),
		zap.Int("reported_regions", len(rows)),
		zap.String("output", outPath))

	return nil
}

// buildReport applies the downstream report policy on top of the analyzer's
// region list: autosomes only, long streaks, high confidence, and — when a
// gene table was supplied — at least one overlapping gene.
func buildReport(regions []loh.GenomicRegion, genes reference.GeneTable, haveGenes bool) []output.ReportRow {
	annotator := annotate.NewAnnotator(genes)

	var rows []output.ReportRow
	for i := range regions {
		r := &regions[i]
		if strings.Contains(r.Chrom, "X") {
			continue
		}
		if r.HomozygousCount <= reportMinStreak || r.Confidence() <= reportMinConfidence {
			continue
		}

		row := output.ReportRow{Chrom: r.Chrom, Start: r.Start, End: r.End}
		if haveGenes {
			row.Genes = annotator.Annotate(r)
			if len(row.Genes) == 0 {
				continue
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func writeReport(path string, rows []output.ReportRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	w := output.NewCSVWriter(f)
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write report row: %w", err)
		}
	}
	return w.Flush()
}

// storeRegions replaces any previously stored results for the sample.
func storeRegions(dbPath, sample string, sex loh.Sex, regions []loh.GenomicRegion) error {
	store, err := duckdb.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open region database: %w", err)
	}
	defer store.Close()

	if err := store.ClearSample(sample); err != nil {
		return fmt.Errorf("clear previous results: %w", err)
	}
	if err := store.WriteRegions(sample, sex, regions); err != nil {
		return fmt.Errorf("store regions: %w", err)
	}
	return nil
}

// defaultOutputPath derives the report path from the input path, e.g.
// sample.cns -> sample.loh.csv.
func defaultOutputPath(inputPath string) string {
	if inputPath == "-" {
		return "stdin.loh.csv"
	}
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return base + ".loh.csv"
}

func sampleBaseName(inputPath string) string {
	if inputPath == "-" {
		return "stdin"
	}
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
