package genotype

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseError reports a problem with the raw-data file contents.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Vendor export layouts. AncestryDNA reports two allele columns; 23andMe
// reports a single genotype column.
const (
	SourceAncestry = "AncestryDNA"
	Source23andMe  = "23andMe"
	SourceGeneric  = "Generic"
)

// Parser reads a consumer genotype export into a Store.
type Parser struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int

	delimiter string
	source    string
	build     int

	// column indices, -1 when absent
	colRSID     int
	colChrom    int
	colPos      int
	colGenotype int
	colAllele1  int
	colAllele2  int
}

// NewParser opens a raw-data file. Gzipped exports are detected by magic
// bytes. Use "-" for stdin.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raw-data file %s: %w", path, err)
	}

	p := &Parser{file: file}

	buf := make([]byte, 2)
	if _, err := file.Read(buf); err != nil {
		file.Close()
		return nil, fmt.Errorf("read raw-data header: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek raw-data file: %w", err)
	}

	if buf[0] == 0x1f && buf[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.reader = bufio.NewReader(p.gzipReader)
	} else {
		p.reader = bufio.NewReader(file)
	}

	if err := p.parseHeader(); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

// NewParserFromReader creates a parser from an io.Reader (e.g., stdin).
func NewParserFromReader(r io.Reader) (*Parser, error) {
	p := &Parser{reader: bufio.NewReader(r)}
	if err := p.parseHeader(); err != nil {
		return nil, err
	}
	return p, nil
}

// Source returns the detected vendor.
func (p *Parser) Source() string { return p.source }

// Build returns the genome build from header comments, 0 if unknown.
func (p *Parser) Build() int { return p.build }

// Close closes the underlying file handles.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

// parseHeader consumes comment lines and the column header, detecting the
// vendor layout and delimiter.
func (p *Parser) parseHeader() error {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return &ParseError{Line: p.lineNumber, Message: "no header line found"}
			}
			return fmt.Errorf("read header: %w", err)
		}
		p.lineNumber++
		line = strings.TrimRight(line, "\r\n")

		if strings.HasPrefix(line, "#") {
			p.sniffComment(line)
			// 23andMe puts its column header inside a comment line.
			if strings.Contains(line, "rsid") && strings.Contains(line, "genotype") {
				return p.parseColumns(strings.TrimLeft(line, "# \t"))
			}
			continue
		}
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		if !strings.Contains(lower, "rsid") {
			return &ParseError{
				Line:    p.lineNumber,
				Message: "unrecognized file format: expected a column header naming rsid",
			}
		}
		return p.parseColumns(line)
	}
}

// sniffComment extracts vendor and build hints from header comments.
func (p *Parser) sniffComment(line string) {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "ancestrydna"):
		p.source = SourceAncestry
	case strings.Contains(lower, "23andme"):
		p.source = Source23andMe
	}
	switch {
	case strings.Contains(lower, "build 37") || strings.Contains(lower, "grch37"):
		p.build = 37
	case strings.Contains(lower, "build 38") || strings.Contains(lower, "grch38"):
		p.build = 38
	}
}

// parseColumns maps the header row to column indices and fixes the delimiter.
func (p *Parser) parseColumns(header string) error {
	// Exports are tab-delimited as shipped, but re-saved files sometimes
	// arrive comma-separated.
	p.delimiter = "\t"
	if !strings.Contains(header, "\t") && strings.Contains(header, ",") {
		p.delimiter = ","
	}

	p.colRSID, p.colChrom, p.colPos, p.colGenotype, p.colAllele1, p.colAllele2 = -1, -1, -1, -1, -1, -1

	for i, name := range strings.Split(header, p.delimiter) {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "rsid":
			p.colRSID = i
		case "chromosome", "chrom", "chr":
			p.colChrom = i
		case "position", "pos":
			p.colPos = i
		case "genotype", "result":
			p.colGenotype = i
		case "allele1":
			p.colAllele1 = i
		case "allele2":
			p.colAllele2 = i
		}
	}

	if p.colRSID < 0 {
		return &ParseError{Line: p.lineNumber, Message: "header has no rsid column"}
	}
	switch {
	case p.colAllele1 >= 0 && p.colAllele2 >= 0:
		if p.source == "" {
			p.source = SourceAncestry
		}
	case p.colGenotype >= 0:
		if p.source == "" {
			p.source = SourceGeneric
		}
	default:
		return &ParseError{
			Line:    p.lineNumber,
			Message: "header has neither a genotype column nor allele1/allele2 columns",
		}
	}
	return nil
}

// Next returns the next called observation, or nil at EOF. No-call rows are
// skipped.
func (p *Parser) Next() (*Observation, error) {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read line: %w", err)
		}
		if line == "" && err == io.EOF {
			return nil, nil
		}
		p.lineNumber++
		line = strings.TrimRight(line, "\r\n")

		if line == "" || strings.HasPrefix(line, "#") {
			if err == io.EOF {
				return nil, nil
			}
			continue
		}

		fields := strings.Split(line, p.delimiter)
		obs, perr := p.parseRow(fields)
		if perr != nil {
			return nil, perr
		}
		if obs == nil {
			// no-call
			if err == io.EOF {
				return nil, nil
			}
			continue
		}
		return obs, nil
	}
}

func (p *Parser) parseRow(fields []string) (*Observation, error) {
	need := p.colRSID
	if p.colGenotype > need {
		need = p.colGenotype
	}
	if p.colAllele2 > need {
		need = p.colAllele2
	}
	if len(fields) <= need {
		return nil, &ParseError{
			Line:    p.lineNumber,
			Message: fmt.Sprintf("expected at least %d columns, got %d", need+1, len(fields)),
		}
	}

	obs := &Observation{RSID: strings.TrimSpace(fields[p.colRSID])}
	if p.colChrom >= 0 && p.colChrom < len(fields) {
		obs.Chrom = normalizeChrom(fields[p.colChrom])
	}
	if p.colPos >= 0 && p.colPos < len(fields) {
		if pos, err := strconv.ParseInt(strings.TrimSpace(fields[p.colPos]), 10, 64); err == nil {
			obs.Pos = pos
		}
	}

	var raw string
	if p.colAllele1 >= 0 && p.colAllele2 >= 0 {
		raw = strings.TrimSpace(fields[p.colAllele1]) + strings.TrimSpace(fields[p.colAllele2])
	} else {
		raw = strings.TrimSpace(fields[p.colGenotype])
	}
	if IsNoCall(raw) {
		return nil, nil
	}
	obs.Genotype = NormalizeGenotype(raw)
	return obs, nil
}

// normalizeChrom maps vendor chromosome codes to a common form. AncestryDNA
// uses 23/24/25/26 for X/Y/PAR/MT.
func normalizeChrom(chrom string) string {
	switch strings.TrimSpace(chrom) {
	case "23":
		return "X"
	case "24":
		return "Y"
	case "25":
		return "XY"
	case "26":
		return "MT"
	}
	return strings.TrimSpace(chrom)
}

// Load parses an entire raw-data file into a Store.
func Load(path string) (*Store, error) {
	parser, err := NewParser(path)
	if err != nil {
		return nil, err
	}
	defer parser.Close()
	return LoadFromParser(parser)
}

// LoadFromParser drains a parser into a Store and fills in metadata.
func LoadFromParser(parser *Parser) (*Store, error) {
	store := NewStore()
	for {
		obs, err := parser.Next()
		if err != nil {
			return nil, err
		}
		if obs == nil {
			break
		}
		store.Add(*obs)
	}

	store.Metadata = Metadata{
		Source: parser.Source(),
		Build:  parser.Build(),
		Count:  store.Count(),
		Sex:    inferSex(store),
	}
	return store, nil
}

// inferSex checks for called Y-chromosome data. Consumer arrays carry a few
// thousand Y probes, so a handful of calls is decisive.
func inferSex(store *Store) string {
	yCalls := len(store.ChromObservations("Y"))
	if yCalls >= 50 {
		return "Male"
	}
	if store.Count() > 0 {
		return "Female"
	}
	return ""
}
