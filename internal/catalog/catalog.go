// Package catalog holds the compiled-in table of curated variants and their
// genotype interpretations.
package catalog

import (
	"fmt"
	"strings"
)

// Category groups variants into report sections.
type Category string

const (
	CategoryPharmacogenomic Category = "pharmacogenomic"
	CategoryDiseaseRisk     Category = "disease-risk"
	CategoryMentalHealth    Category = "mental-health"
	CategoryPhysicalTrait   Category = "physical-trait"
	CategoryAncestry        Category = "ancestry"
)

// Categories lists all categories in report order.
var Categories = []Category{
	CategoryPharmacogenomic,
	CategoryDiseaseRisk,
	CategoryMentalHealth,
	CategoryPhysicalTrait,
	CategoryAncestry,
}

// Risk classifies an interpretation for display purposes only.
type Risk int

const (
	RiskUnknown Risk = iota
	RiskGood
	RiskNeutral
	RiskBad
)

// Interpretation is the curated reading of one genotype at one variant.
type Interpretation struct {
	Text   string
	Risk   Risk
	Effect float64 // published odds ratio for this genotype, 0 if none
}

// Variant is one curated catalog entry. Genotype keys are normalized
// unordered pairs (alleles sorted alphabetically) and must cover all three
// combinations of the variant's two known alleles.
type Variant struct {
	RSID     string
	Gene     string
	Category Category
	Group    string // report subsection, e.g. "Dopamine System"
	Trait    string // drug, condition, or trait summary
	Evidence string
	// MinusStrand marks entries whose catalog alleles are on the opposite
	// strand from what some vendors report; observed genotypes are
	// complemented before lookup.
	MinusStrand bool
	Genotypes   map[string]Interpretation
}

// Alleles returns the two distinct alleles covered by the genotype map.
func (v Variant) Alleles() []string {
	seen := map[string]bool{}
	var out []string
	for gt := range v.Genotypes {
		for _, a := range strings.Split(gt, "") {
			if !seen[a] {
				seen[a] = true
				out = append(out, a)
			}
		}
	}
	return out
}

// Validate checks the catalog invariant: three normalized genotype keys over
// exactly two alleles.
func (v Variant) Validate() error {
	if len(v.Genotypes) != 3 {
		return fmt.Errorf("%s: expected 3 genotype keys, have %d", v.RSID, len(v.Genotypes))
	}
	for gt := range v.Genotypes {
		if len(gt) != 2 {
			return fmt.Errorf("%s: genotype key %q is not an allele pair", v.RSID, gt)
		}
		if gt[0] > gt[1] {
			return fmt.Errorf("%s: genotype key %q is not normalized", v.RSID, gt)
		}
	}
	if n := len(v.Alleles()); n != 2 {
		return fmt.Errorf("%s: genotype keys span %d alleles, want 2", v.RSID, n)
	}
	return nil
}

// URL returns the SNPedia reference link for the variant.
func (v Variant) URL() string {
	return "https://www.snpedia.com/index.php/" + v.RSID
}

// All returns every catalog variant in declaration order, grouped by
// category. The returned slice is shared; callers must not mutate it.
func All() []Variant {
	return markers
}

// ByCategory returns the catalog variants of one category in declaration
// order.
func ByCategory(c Category) []Variant {
	var out []Variant
	for _, v := range markers {
		if v.Category == c {
			out = append(out, v)
		}
	}
	return out
}

// ByRSID returns the variant with the given identifier.
func ByRSID(rsid string) (Variant, bool) {
	for _, v := range markers {
		if v.RSID == rsid {
			return v, true
		}
	}
	return Variant{}, false
}
