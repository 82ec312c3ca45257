package gwas

import (
	"bufio"
	"compress/gzip"
	"container/heap"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// columnIndices maps summary-statistics columns to field positions.
// -1 means the column is absent.
type columnIndices struct {
	RSID int
	Chr  int
	Pos  int
	A1   int
	A2   int
	EAF  int
	Beta int
	SE   int
	Pval int
}

// assign records the field position for a recognized header name and reports
// whether the name was recognized.
func (c *columnIndices) assign(name string, i int) bool {
	switch name {
	case "markername", "rsid", "snp", "snpid":
		c.RSID = i
	case "chr", "chrom", "chromosome":
		c.Chr = i
	case "pos", "bp", "position":
		c.Pos = i
	case "a1", "effect_allele":
		c.A1 = i
	case "a2", "other_allele":
		c.A2 = i
	case "eaf", "freq", "af", "eaf_a1":
		c.EAF = i
	case "beta", "b":
		c.Beta = i
	case "se":
		c.SE = i
	case "pval", "p", "p_value", "pvalue":
		c.Pval = i
	default:
		return false
	}
	return true
}

// Parser streams rows from a summary-statistics file. The file is
// tab-separated with a header line; gzip compression is detected from the
// magic bytes. Rows that fail to parse are skipped and counted rather than
// aborting the run, since public GWAS exports routinely carry a handful of
// malformed lines.
type Parser struct {
	reader  *bufio.Reader
	closer  io.Closer
	gz      *gzip.Reader
	cols    columnIndices
	line    int
	skipped int
}

// NewParser opens a summary-statistics file and reads its header.
func NewParser(path string) (*Parser, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (download from SSGAC: https://thessgac.com/)", ErrMissingReferenceData, path)
		}
		return nil, fmt.Errorf("open summary statistics: %w", err)
	}

	p := &Parser{closer: f}
	br := bufio.NewReader(f)
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		p.gz = gz
		p.reader = bufio.NewReader(gz)
	} else {
		p.reader = br
	}

	if err := p.parseHeader(); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

// Close releases the underlying file.
func (p *Parser) Close() error {
	if p.gz != nil {
		p.gz.Close()
	}
	if p.closer != nil {
		return p.closer.Close()
	}
	return nil
}

// Skipped returns the number of malformed rows dropped so far.
func (p *Parser) Skipped() int { return p.skipped }

func (p *Parser) parseHeader() error {
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("read summary statistics header: %w", err)
	}
	p.line = 1

	cols := columnIndices{RSID: -1, Chr: -1, Pos: -1, A1: -1, A2: -1, EAF: -1, Beta: -1, SE: -1, Pval: -1}
	for i, name := range strings.Split(strings.TrimRight(line, "\r\n"), "\t") {
		name = strings.ToLower(strings.TrimSpace(name))
		if cols.assign(name, i) {
			continue
		}
		// Multi-trait files suffix column names with the trait, e.g.
		// Beta_EA/Pval_EA. Retry on the part before the underscore.
		if base, _, found := strings.Cut(name, "_"); found {
			cols.assign(base, i)
		}
	}
	if cols.RSID < 0 {
		return fmt.Errorf("summary statistics header has no marker name column")
	}
	if cols.A1 < 0 || cols.Beta < 0 || cols.Pval < 0 {
		return fmt.Errorf("summary statistics header missing effect allele, beta, or p-value column")
	}
	p.cols = cols
	return nil
}

// Next returns the next well-formed row, or nil at end of input.
func (p *Parser) Next() (*Row, error) {
	for {
		line, err := p.reader.ReadString('\n')
		if line == "" && err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, fmt.Errorf("read summary statistics: %w", err)
		}
		p.line++

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		row, ok := p.parseRow(strings.Split(line, "\t"))
		if !ok {
			p.skipped++
			continue
		}
		return row, nil
	}
}

func (p *Parser) parseRow(fields []string) (*Row, bool) {
	get := func(i int) string {
		if i < 0 || i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}

	row := &Row{
		RSID:  get(p.cols.RSID),
		Chrom: get(p.cols.Chr),
		A1:    strings.ToUpper(get(p.cols.A1)),
		A2:    strings.ToUpper(get(p.cols.A2)),
	}
	if row.RSID == "" || row.A1 == "" {
		return nil, false
	}

	var err error
	if row.Beta, err = strconv.ParseFloat(get(p.cols.Beta), 64); err != nil {
		return nil, false
	}
	if row.Pval, err = strconv.ParseFloat(get(p.cols.Pval), 64); err != nil {
		return nil, false
	}
	if s := get(p.cols.Pos); s != "" {
		if row.Pos, err = strconv.ParseInt(s, 10, 64); err != nil {
			return nil, false
		}
	}
	// EAF and SE are optional; a missing frequency falls back to 0.5 so the
	// expected-score arithmetic stays defined.
	row.EAF = 0.5
	if s := get(p.cols.EAF); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			row.EAF = v
		}
	}
	if s := get(p.cols.SE); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			row.SE = v
		}
	}
	return row, true
}

// StreamEngine selects rows with a single pass over the file.
type StreamEngine struct {
	Logger *zap.Logger
}

// Select implements Engine.
func (e *StreamEngine) Select(path string, sel Selection) ([]Row, error) {
	p, err := NewParser(path)
	if err != nil {
		return nil, err
	}
	defer p.Close()

	var rows []Row
	if sel.TopN > 0 {
		rows, err = selectTopN(p, sel.TopN)
	} else {
		rows, err = selectThreshold(p, sel.PThreshold)
	}
	if err != nil {
		return nil, err
	}

	if e.Logger != nil && p.Skipped() > 0 {
		e.Logger.Warn("skipped malformed summary-statistics rows",
			zap.String("path", path),
			zap.Int("skipped", p.Skipped()))
	}
	return rows, nil
}

func selectThreshold(p *Parser, threshold float64) ([]Row, error) {
	var out []Row
	for {
		row, err := p.Next()
		if err != nil {
			return nil, err
		}
		if row == nil {
			break
		}
		if row.Pval < threshold {
			out = append(out, *row)
		}
	}
	// Stable sort keeps file order among equal p-values.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Pval < out[j].Pval })
	return out, nil
}

// rankedRow pairs a row with its position in the file for tie-breaking.
type rankedRow struct {
	row Row
	seq int
}

// topHeap is a max-heap on (Pval, seq) holding the N best rows seen so far.
type topHeap []rankedRow

func (h topHeap) Len() int { return len(h) }
func (h topHeap) Less(i, j int) bool {
	if h[i].row.Pval != h[j].row.Pval {
		return h[i].row.Pval > h[j].row.Pval
	}
	return h[i].seq > h[j].seq
}
func (h topHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *topHeap) Push(x any)        { *h = append(*h, x.(rankedRow)) }
func (h *topHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

func selectTopN(p *Parser, n int) ([]Row, error) {
	h := make(topHeap, 0, n+1)
	seq := 0
	for {
		row, err := p.Next()
		if err != nil {
			return nil, err
		}
		if row == nil {
			break
		}
		heap.Push(&h, rankedRow{row: *row, seq: seq})
		seq++
		if h.Len() > n {
			heap.Pop(&h)
		}
	}

	ranked := []rankedRow(h)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].row.Pval != ranked[j].row.Pval {
			return ranked[i].row.Pval < ranked[j].row.Pval
		}
		return ranked[i].seq < ranked[j].seq
	})
	out := make([]Row, len(ranked))
	for i, r := range ranked {
		out[i] = r.row
	}
	return out, nil
}
