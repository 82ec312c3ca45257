// Package gwas loads external GWAS summary-statistics tables and computes
// the educational-attainment polygenic score against a genotype store.
package gwas

import (
	"errors"
	"fmt"
)

// ErrMissingReferenceData is returned when the summary-statistics file does
// not exist. Callers print a download hint for this case.
var ErrMissingReferenceData = errors.New("summary statistics file not found")

// Row is one variant from a GWAS summary-statistics table.
type Row struct {
	RSID  string
	Chrom string
	Pos   int64
	A1    string // effect allele
	A2    string // other allele
	EAF   float64
	Beta  float64
	SE    float64
	Pval  float64
}

// Selection configures which rows of the table contribute to a score run.
// TopN > 0 selects the N rows with the smallest p-values and overrides
// PThreshold; otherwise rows with Pval < PThreshold are selected. Either way
// ties in p-value break by position in the file, so a selection is
// deterministic for a given table.
type Selection struct {
	PThreshold float64
	TopN       int
}

func (s Selection) String() string {
	if s.TopN > 0 {
		return fmt.Sprintf("Top %d", s.TopN)
	}
	return fmt.Sprintf("p < %g", s.PThreshold)
}

// Engine selects summary-statistics rows from a file. Implementations must
// return rows ordered by ascending p-value with file order breaking ties.
type Engine interface {
	Select(path string, sel Selection) ([]Row, error)
}

// NewEngine returns the engine for a CLI engine name.
func NewEngine(name string) (Engine, error) {
	switch name {
	case "go", "":
		return &StreamEngine{}, nil
	case "duckdb":
		return &DuckDBEngine{}, nil
	default:
		return nil, fmt.Errorf("unknown engine %q (want go or duckdb)", name)
	}
}
