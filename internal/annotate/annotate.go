// Package annotate matches observed genotypes against the curated variant
// catalog and produces per-variant findings.
package annotate

import (
	"go.uber.org/zap"

	"github.com/cdrn/snpreport/internal/catalog"
	"github.com/cdrn/snpreport/internal/genotype"
)

// Status classifies the outcome of matching one catalog variant against the
// genotype store.
type Status int

const (
	// StatusMatched means the observed genotype resolved to a catalog
	// interpretation, possibly after strand or order normalization.
	StatusMatched Status = iota
	// StatusUnrecognized means the file has a call for the variant but no
	// orientation of it matches the catalog alleles.
	StatusUnrecognized
	// StatusMissing means the file has no call for the variant.
	StatusMissing
)

func (s Status) String() string {
	switch s {
	case StatusMatched:
		return "matched"
	case StatusUnrecognized:
		return "unrecognized"
	case StatusMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Record is one catalog variant annotated with the user's data.
type Record struct {
	Variant  catalog.Variant
	Status   Status
	Raw      string // genotype as reported in the file, "" if missing
	Genotype string // normalized catalog-orientation genotype, "" unless matched
	Interp   catalog.Interpretation
}

// Summary counts match outcomes across one annotation run.
type Summary struct {
	Matched      int
	Unrecognized int
	Missing      int
}

// Total returns the number of catalog variants considered.
func (s Summary) Total() int {
	return s.Matched + s.Unrecognized + s.Missing
}

// Annotator resolves catalog variants against a genotype store.
type Annotator struct {
	store  *genotype.Store
	logger *zap.Logger
}

// NewAnnotator creates an annotator over the given store.
func NewAnnotator(store *genotype.Store) *Annotator {
	return &Annotator{
		store:  store,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for warning and debug messages.
func (a *Annotator) SetLogger(l *zap.Logger) {
	a.logger = l
}

// Annotate resolves a single catalog variant.
func (a *Annotator) Annotate(v catalog.Variant) Record {
	obs, ok := a.store.Lookup(v.RSID)
	if !ok {
		return Record{Variant: v, Status: StatusMissing}
	}

	gt, ok := MatchGenotype(v, obs.Genotype)
	if !ok {
		a.logger.Debug("genotype does not match catalog alleles",
			zap.String("rsid", v.RSID),
			zap.String("genotype", obs.Genotype))
		return Record{Variant: v, Status: StatusUnrecognized, Raw: obs.Genotype}
	}

	return Record{
		Variant:  v,
		Status:   StatusMatched,
		Raw:      obs.Genotype,
		Genotype: gt,
		Interp:   v.Genotypes[gt],
	}
}

// AnnotateCategory resolves all catalog variants of one category, in catalog
// order.
func (a *Annotator) AnnotateCategory(c catalog.Category) []Record {
	variants := catalog.ByCategory(c)
	out := make([]Record, 0, len(variants))
	for _, v := range variants {
		out = append(out, a.Annotate(v))
	}
	return out
}

// AnnotateAll resolves the full catalog and returns records grouped per
// category plus overall counts.
func (a *Annotator) AnnotateAll() (map[catalog.Category][]Record, Summary) {
	byCat := make(map[catalog.Category][]Record, len(catalog.Categories))
	var sum Summary
	for _, c := range catalog.Categories {
		recs := a.AnnotateCategory(c)
		byCat[c] = recs
		for _, r := range recs {
			switch r.Status {
			case StatusMatched:
				sum.Matched++
			case StatusUnrecognized:
				sum.Unrecognized++
			case StatusMissing:
				sum.Missing++
			}
		}
	}
	a.logger.Info("annotated catalog",
		zap.Int("matched", sum.Matched),
		zap.Int("unrecognized", sum.Unrecognized),
		zap.Int("missing", sum.Missing))
	return byCat, sum
}

// MatchGenotype maps an observed genotype onto a variant's catalog keys.
// Catalog keys are sorted allele pairs, so normalization already absorbs
// allele order; the opposite-strand reading is tried when the direct one
// misses. For minus-strand catalog entries the observed alleles are
// complemented before matching.
func MatchGenotype(v catalog.Variant, observed string) (string, bool) {
	gt := genotype.NormalizeGenotype(observed)
	if len(gt) != 2 {
		return "", false
	}
	if v.MinusStrand {
		gt = genotype.NormalizeGenotype(genotype.ComplementGenotype(gt))
	}

	if _, ok := v.Genotypes[gt]; ok {
		return gt, true
	}
	flipped := genotype.NormalizeGenotype(genotype.ComplementGenotype(gt))
	if _, ok := v.Genotypes[flipped]; ok {
		return flipped, true
	}
	return "", false
}
