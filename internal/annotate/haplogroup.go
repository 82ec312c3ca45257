package annotate

import (
	"fmt"
	"sort"

	"github.com/cdrn/snpreport/internal/genotype"
)

// yMarker is a diagnostic Y-chromosome SNP. Y calls are hemizygous, so the
// observed value is a single allele.
type yMarker struct {
	rsid    string
	alleles map[string][]string // allele -> haplogroups it supports
}

var yMarkers = []yMarker{
	{"rs2032636", map[string][]string{"G": {"I"}, "A": {"D"}, "C": {"T"}}},
	{"rs2032654", map[string][]string{"A": {"I"}}},
	{"rs17306671", map[string][]string{"A": {"I1"}, "T": {"not-I1"}}},
	{"rs2032658", map[string][]string{"T": {"R"}}},
	{"rs17222573", map[string][]string{"G": {"R1a"}}},
	{"rs9306841", map[string][]string{"A": {"R1b"}, "C": {"J1"}, "T": {"G/K"}}},
	{"rs3910", map[string][]string{"T": {"J"}}},
	{"rs2032664", map[string][]string{"A": {"J"}}},
	{"rs2032618", map[string][]string{"C": {"E"}}},
	{"rs2032602", map[string][]string{"T": {"E"}}},
	{"rs9341313", map[string][]string{"G": {"B"}}},
	{"rs2032597", map[string][]string{"A": {"O"}}},
	{"rs3900", map[string][]string{"G": {"H"}, "T": {"N"}}},
}

var haplogroupOrigins = map[string]string{
	"R1b":   "Western European origin",
	"R1a":   "Eastern European/Central Asian",
	"R":     "Eurasian",
	"I":     "European origin",
	"I1":    "Scandinavian origin",
	"I2":    "Southeastern European",
	"J":     "Middle Eastern origin",
	"J1":    "Arabian Peninsula",
	"J2":    "Mediterranean/Caucasus",
	"E":     "African/Mediterranean",
	"E1b1a": "Sub-Saharan African",
	"E1b1b": "Mediterranean/Horn of Africa",
	"G":     "Middle Eastern/Caucasus",
	"Q":     "Siberian/Native American",
	"O":     "East Asian origin",
	"N":     "Northern Eurasian",
	"H":     "South Asian origin",
	"B":     "African origin",
}

// Haplogroup is a Y-chromosome haplogroup call with its supporting evidence.
type Haplogroup struct {
	Name       string
	Confidence float64
	Origin     string
	Support    []string            // markers backing the call, "rsid=allele"
	Votes      map[string][]string // all candidate haplogroups and their markers
}

// PredictYHaplogroup estimates the Y haplogroup by majority vote over
// diagnostic markers. It returns false when the store has no sex call of
// Male, no Y-chromosome data, or no diagnostic marker hits.
func PredictYHaplogroup(store *genotype.Store) (Haplogroup, bool) {
	if store.Metadata.Sex != "Male" {
		return Haplogroup{}, false
	}
	if len(store.ChromObservations("Y")) == 0 {
		return Haplogroup{}, false
	}

	votes := make(map[string][]string)
	var order []string
	for _, m := range yMarkers {
		obs, ok := store.Lookup(m.rsid)
		if !ok {
			continue
		}
		// Y calls are hemizygous; some vendors report them as a doubled
		// allele pair.
		allele := obs.Genotype
		if len(allele) == 2 && allele[0] == allele[1] {
			allele = allele[:1]
		}
		hgs, ok := m.alleles[allele]
		if !ok {
			continue
		}
		for _, hg := range hgs {
			if len(hg) > 4 && hg[:4] == "not-" {
				continue
			}
			if _, seen := votes[hg]; !seen {
				order = append(order, hg)
			}
			votes[hg] = append(votes[hg], fmt.Sprintf("%s=%s", m.rsid, obs.Genotype))
		}
	}
	if len(votes) == 0 {
		return Haplogroup{}, false
	}

	// Stable sort keeps marker-table order among equal vote counts, so the
	// call is deterministic.
	sort.SliceStable(order, func(i, j int) bool {
		return len(votes[order[i]]) > len(votes[order[j]])
	})

	best := order[0]
	support := votes[best]
	confidence := 0.20
	switch {
	case len(support) >= 3:
		confidence = 0.65
	case len(support) == 2:
		confidence = 0.40
	}

	return Haplogroup{
		Name:       best,
		Confidence: confidence,
		Origin:     haplogroupOrigins[best],
		Support:    support,
		Votes:      votes,
	}, true
}
