package gwas

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"sync"

	_ "github.com/marcboeker/go-duckdb"
)

// DuckDBEngine selects summary-statistics rows by querying the file through
// DuckDB's CSV reader. For repeated selections over a large table (the
// compare and top-analysis modes) this pushes the filtering and sorting into
// the database instead of re-parsing in Go. The compare and top-analysis
// modes call Select from concurrent goroutines, so the handle is guarded.
type DuckDBEngine struct {
	mu sync.Mutex
	db *sql.DB
}

// Open initializes the in-memory database. Select opens lazily when Open was
// not called.
func (e *DuckDBEngine) Open() error {
	_, err := e.open()
	return err
}

func (e *DuckDBEngine) open() (*sql.DB, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.db != nil {
		return e.db, nil
	}
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	e.db = db
	return db, nil
}

// Close releases the database.
func (e *DuckDBEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.db == nil {
		return nil
	}
	err := e.db.Close()
	e.db = nil
	return err
}

// Select implements Engine. Row numbering over the scan order reproduces the
// file-order tie-break of the streaming engine.
func (e *DuckDBEngine) Select(path string, sel Selection) ([]Row, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (download from SSGAC: https://thessgac.com/)", ErrMissingReferenceData, path)
		}
		return nil, fmt.Errorf("stat summary statistics: %w", err)
	}
	db, err := e.open()
	if err != nil {
		return nil, err
	}

	base := `
		SELECT MarkerName, A1, A2,
		       COALESCE(EAF, 0.5) AS EAF,
		       Beta, COALESCE(SE, 0) AS SE, Pval,
		       row_number() OVER () AS rn
		FROM read_csv_auto(?, delim='\t', header=true, ignore_errors=true,
		                   types={'EAF': 'DOUBLE', 'Beta': 'DOUBLE', 'SE': 'DOUBLE', 'Pval': 'DOUBLE'})
		WHERE MarkerName IS NOT NULL AND Beta IS NOT NULL AND Pval IS NOT NULL`

	var (
		query string
		args  []any
	)
	if sel.TopN > 0 {
		query = fmt.Sprintf(`SELECT * FROM (%s) ORDER BY Pval, rn LIMIT ?`, base)
		args = []any{path, sel.TopN}
	} else {
		query = fmt.Sprintf(`SELECT * FROM (%s) WHERE Pval < ? ORDER BY Pval, rn`, base)
		args = []any{path, sel.PThreshold}
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query summary statistics: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var (
			r  Row
			rn int64
		)
		if err := rows.Scan(&r.RSID, &r.A1, &r.A2, &r.EAF, &r.Beta, &r.SE, &r.Pval, &rn); err != nil {
			return nil, fmt.Errorf("scan summary statistics row: %w", err)
		}
		r.A1 = strings.ToUpper(r.A1)
		r.A2 = strings.ToUpper(r.A2)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read summary statistics rows: %w", err)
	}
	return out, nil
}
