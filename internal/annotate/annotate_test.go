package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdrn/snpreport/internal/catalog"
	"github.com/cdrn/snpreport/internal/genotype"
)

func storeWith(t *testing.T, calls map[string]string) *genotype.Store {
	t.Helper()
	s := genotype.NewStore()
	for rsid, gt := range calls {
		s.Add(genotype.Observation{RSID: rsid, Chrom: "1", Genotype: genotype.NormalizeGenotype(gt)})
	}
	return s
}

func TestMatchGenotypeOrientations(t *testing.T) {
	v, ok := catalog.ByRSID("rs4680") // alleles A/G
	require.True(t, ok)

	tests := []struct {
		observed string
		want     string
	}{
		{"AG", "AG"},
		{"GA", "AG"}, // allele order
		{"ag", "AG"}, // case
		{"CT", "AG"}, // opposite strand
		{"TC", "AG"}, // opposite strand, reversed
		{"AA", "AA"},
		{"TT", "AA"}, // opposite strand homozygote
	}
	for _, tt := range tests {
		got, ok := MatchGenotype(v, tt.observed)
		require.True(t, ok, "observed %q", tt.observed)
		assert.Equal(t, tt.want, got, "observed %q", tt.observed)
	}
}

func TestMatchGenotypeRejectsForeignAlleles(t *testing.T) {
	v, ok := catalog.ByRSID("rs4680") // alleles A/G
	require.True(t, ok)

	// CG complements to CG, neither reading is an A/G pair.
	_, matched := MatchGenotype(v, "CG")
	assert.False(t, matched)

	_, matched = MatchGenotype(v, "A")
	assert.False(t, matched)
}

func TestMatchGenotypeMinusStrand(t *testing.T) {
	v, ok := catalog.ByRSID("rs1344706") // catalog G/T, often reported A/C
	require.True(t, ok)

	got, matched := MatchGenotype(v, "AC")
	require.True(t, matched)
	assert.Equal(t, "GT", got)

	got, matched = MatchGenotype(v, "AA")
	require.True(t, matched)
	assert.Equal(t, "TT", got)
}

func TestAnnotateStatuses(t *testing.T) {
	s := storeWith(t, map[string]string{
		"rs4680":    "GA",
		"rs1801133": "CG", // not a C/T pair in any orientation
	})
	a := NewAnnotator(s)

	matched, ok := catalog.ByRSID("rs4680")
	require.True(t, ok)
	rec := a.Annotate(matched)
	assert.Equal(t, StatusMatched, rec.Status)
	assert.Equal(t, "AG", rec.Genotype)
	assert.Equal(t, "AG", rec.Raw)
	assert.NotEmpty(t, rec.Interp.Text)

	unrec, ok := catalog.ByRSID("rs1801133")
	require.True(t, ok)
	rec = a.Annotate(unrec)
	assert.Equal(t, StatusUnrecognized, rec.Status)
	assert.Equal(t, "CG", rec.Raw)
	assert.Empty(t, rec.Genotype)

	missing, ok := catalog.ByRSID("rs429358")
	require.True(t, ok)
	rec = a.Annotate(missing)
	assert.Equal(t, StatusMissing, rec.Status)
	assert.Empty(t, rec.Raw)
}

func TestAnnotateAllCounts(t *testing.T) {
	s := storeWith(t, map[string]string{
		"rs4680":    "AG",
		"rs1815739": "CT",
		"rs1801133": "CG",
	})
	byCat, sum := NewAnnotator(s).AnnotateAll()

	assert.Equal(t, 2, sum.Matched)
	assert.Equal(t, 1, sum.Unrecognized)
	assert.Equal(t, len(catalog.All())-3, sum.Missing)
	assert.Equal(t, len(catalog.All()), sum.Total())
	assert.Len(t, byCat, len(catalog.Categories))
}

func TestPredictYHaplogroup(t *testing.T) {
	s := genotype.NewStore()
	s.Metadata.Sex = "Male"
	for rsid, allele := range map[string]string{
		"rs2032658":  "T", // R
		"rs9306841":  "A", // R1b
		"rs17306671": "T", // not-I1, no vote
	} {
		s.Add(genotype.Observation{RSID: rsid, Chrom: "Y", Genotype: allele})
	}

	hg, ok := PredictYHaplogroup(s)
	require.True(t, ok)
	// R and R1b both have one vote; marker-table order breaks the tie.
	assert.Equal(t, "R", hg.Name)
	assert.Equal(t, 0.20, hg.Confidence)
	assert.Equal(t, "Eurasian", hg.Origin)
	assert.NotContains(t, hg.Votes, "I1")
}

func TestPredictYHaplogroupRequiresMale(t *testing.T) {
	s := genotype.NewStore()
	s.Metadata.Sex = "Female"
	s.Add(genotype.Observation{RSID: "rs2032658", Chrom: "Y", Genotype: "T"})

	_, ok := PredictYHaplogroup(s)
	assert.False(t, ok)
}

func TestPredictYHaplogroupDoubledAlleles(t *testing.T) {
	s := genotype.NewStore()
	s.Metadata.Sex = "Male"
	s.Add(genotype.Observation{RSID: "rs2032636", Chrom: "Y", Genotype: "GG"})
	s.Add(genotype.Observation{RSID: "rs2032654", Chrom: "Y", Genotype: "AA"})
	s.Add(genotype.Observation{RSID: "rs17306671", Chrom: "Y", Genotype: "AA"})

	hg, ok := PredictYHaplogroup(s)
	require.True(t, ok)
	assert.Equal(t, "I", hg.Name)
	assert.Equal(t, 0.40, hg.Confidence)
	assert.Len(t, hg.Support, 2)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "matched", StatusMatched.String())
	assert.Equal(t, "unrecognized", StatusUnrecognized.String())
	assert.Equal(t, "missing", StatusMissing.String())
}
