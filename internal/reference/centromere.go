// Package reference loads centromere and gene-interval reference tables.
package reference

import (
	"encoding/json"
	"fmt"
	"os"
)

// Centromeres maps chromosome name to its centromere position.
// A missing chromosome entry means "do not split".
type Centromeres map[string]int64

// LoadCentromeres reads centromere positions from a JSON file of the form
// {"chr1": {"centromere": 123400000}, ...}.
func LoadCentromeres(path string) (Centromeres, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open centromeres file: %w", err)
	}
	defer f.Close()

	var raw map[string]struct {
		Centromere int64 `json:"centromere"`
	}
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode centromeres file: %w", err)
	}

	centromeres := make(Centromeres, len(raw))
	for chrom, entry := range raw {
		centromeres[chrom] = entry.Centromere
	}

	return centromeres, nil
}
