package reference

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// GeneTable maps chr-prefixed chromosome names to gene interval indexes.
// A nil table or a missing chromosome degrades to "no genes".
type GeneTable map[string]*GeneIndex

// FindGenes returns the names of all genes whose interval overlaps the
// closed range [start, end] on the given chromosome. Names may repeat when
// a gene appears in several table rows.
func (t GeneTable) FindGenes(chrom string, start, end int64) []string {
	index, ok := t[chrom]
	if !ok {
		return nil
	}

	overlaps := index.FindOverlapping(start, end)
	names := make([]string, 0, len(overlaps))
	for _, iv := range overlaps {
		names = append(names, iv.Name)
	}
	return names
}

// LoadGeneTable reads a 4-column BED file (chrom, start, end, gene name)
// and builds per-chromosome gene indexes. Chromosome keys are normalized
// with a "chr" prefix.
func LoadGeneTable(path string) (GeneTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bed file: %w", err)
	}
	defer f.Close()

	byChrom := make(map[string][]GeneInterval)
	scanner := bufio.NewScanner(f)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			return nil, fmt.Errorf("bed line %d: expected 4 columns, found %d", lineNumber, len(fields))
		}

		chrom := NormalizeChrom(fields[0])

		start, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bed line %d: invalid start: %s", lineNumber, fields[1])
		}
		end, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bed line %d: invalid end: %s", lineNumber, fields[2])
		}

		byChrom[chrom] = append(byChrom[chrom], GeneInterval{
			Start: start,
			End:   end,
			Name:  fields[3],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan bed file: %w", err)
	}

	table := make(GeneTable, len(byChrom))
	for chrom, intervals := range byChrom {
		table[chrom] = BuildGeneIndex(intervals)
	}

	return table, nil
}

// NormalizeChrom returns the chromosome name with a "chr" prefix.
func NormalizeChrom(chrom string) string {
	if strings.HasPrefix(chrom, "chr") {
		return chrom
	}
	return "chr" + chrom
}
