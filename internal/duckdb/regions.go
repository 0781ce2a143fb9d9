package duckdb

import (
	"context"
	"database/sql/driver"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/lohscan/lohscan/internal/loh"
)

// regionKey is the composite key for deduplicating regions before writing.
type regionKey struct {
	sample, chrom string
	start, end    int64
}

// WriteRegions batch-inserts the regions detected for one sample using the
// Appender API. Duplicate (sample, chrom, start, end) entries are
// deduplicated before writing.
func (s *Store) WriteRegions(sample string, sex loh.Sex, regions []loh.GenomicRegion) error {
	if len(regions) == 0 {
		return nil
	}

	seen := make(map[regionKey]bool, len(regions))
	deduped := make([]loh.GenomicRegion, 0, len(regions))
	for _, r := range regions {
		k := regionKey{sample, r.Chrom, r.Start, r.End}
		if !seen[k] {
			seen[k] = true
			deduped = append(deduped, r)
		}
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "loh_regions")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range deduped {
		if err := appender.AppendRow(
			sample, r.Chrom, r.Start, r.End,
			int64(r.HomozygousCount), int64(r.TotalCount),
			r.Size(), r.Confidence(), sex.String(),
		); err != nil {
			return fmt.Errorf("append region: %w", err)
		}
	}

	return appender.Flush()
}

// RegionsForSample queries all stored regions for a sample, ordered by
// chromosome and start position.
func (s *Store) RegionsForSample(sample string) ([]loh.GenomicRegion, error) {
	rows, err := s.db.Query(`SELECT
		chrom, start_pos, end_pos, homozygous_count, total_count
		FROM loh_regions
		WHERE sample=?
		ORDER BY chrom, start_pos`, sample)
	if err != nil {
		return nil, fmt.Errorf("query regions: %w", err)
	}
	defer rows.Close()

	var regions []loh.GenomicRegion
	for rows.Next() {
		var r loh.GenomicRegion
		var hom, total int64
		if err := rows.Scan(&r.Chrom, &r.Start, &r.End, &hom, &total); err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		r.HomozygousCount = int(hom)
		r.TotalCount = int(total)
		regions = append(regions, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate regions: %w", err)
	}
	return regions, nil
}

// RegionCount returns the number of stored regions for a sample.
func (s *Store) RegionCount(sample string) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM loh_regions WHERE sample=?`, sample,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count regions: %w", err)
	}
	return count, nil
}

// ClearSample removes all stored regions for a sample, so a re-analysis
// can be written without violating the primary key.
func (s *Store) ClearSample(sample string) error {
	_, err := s.db.Exec(`DELETE FROM loh_regions WHERE sample=?`, sample)
	return err
}
