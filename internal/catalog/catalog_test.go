package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllMarkersValid(t *testing.T) {
	for _, v := range All() {
		assert.NoError(t, v.Validate(), "marker %s", v.RSID)
	}
}

func TestNoDuplicateRSIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, v := range All() {
		assert.False(t, seen[v.RSID], "duplicate marker %s", v.RSID)
		seen[v.RSID] = true
	}
}

func TestByRSID(t *testing.T) {
	v, ok := ByRSID("rs429358")
	require.True(t, ok)
	assert.Equal(t, "APOE", v.Gene)
	assert.Equal(t, CategoryDiseaseRisk, v.Category)

	_, ok = ByRSID("rs0")
	assert.False(t, ok)
}

func TestByCategoryPartitionsAll(t *testing.T) {
	total := 0
	for _, c := range Categories {
		total += len(ByCategory(c))
	}
	assert.Equal(t, len(All()), total)
}

func TestAlleles(t *testing.T) {
	v, ok := ByRSID("rs1815739")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"C", "T"}, v.Alleles())
}

func TestURL(t *testing.T) {
	v, ok := ByRSID("rs4680")
	require.True(t, ok)
	assert.Equal(t, "https://www.snpedia.com/index.php/rs4680", v.URL())
}

func TestBoneDensityDirection(t *testing.T) {
	// Regression test for a historically inverted risk direction.
	v, ok := ByRSID("rs1800012")
	require.True(t, ok)
	assert.Equal(t, RiskGood, v.Genotypes["GG"].Risk)
	assert.Equal(t, RiskBad, v.Genotypes["TT"].Risk)
}

func TestMinusStrandMarkers(t *testing.T) {
	v, ok := ByRSID("rs1344706")
	require.True(t, ok)
	assert.True(t, v.MinusStrand)
}

func TestValidateRejectsBadVariants(t *testing.T) {
	tests := []struct {
		name string
		v    Variant
	}{
		{
			name: "too few genotypes",
			v: Variant{RSID: "rs1", Genotypes: map[string]Interpretation{
				"AA": {}, "AG": {},
			}},
		},
		{
			name: "unnormalized key",
			v: Variant{RSID: "rs2", Genotypes: map[string]Interpretation{
				"AA": {}, "GA": {}, "GG": {},
			}},
		},
		{
			name: "three alleles",
			v: Variant{RSID: "rs3", Genotypes: map[string]Interpretation{
				"AA": {}, "CT": {}, "GG": {},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.v.Validate())
		})
	}
}

func TestRestoredGroupsPresent(t *testing.T) {
	cases := []struct {
		rsid  string
		group string
		cat   Category
	}{
		{"rs10490770", "COVID-19 & Blood Type", CategoryDiseaseRisk},
		{"rs17070145", "Cognitive Function & Memory", CategoryDiseaseRisk},
		{"rs6746030", "Pain Sensitivity", CategoryDiseaseRisk},
		{"rs279858", "Addiction Susceptibility", CategoryDiseaseRisk},
		{"rs2049045", "Other Neurotransmitter Systems", CategoryMentalHealth},
		{"rs1800975", "Skin Aging & Collagen", CategoryPhysicalTrait},
		{"rs307355", "Taste Perception Extended", CategoryPhysicalTrait},
		{"rs659366", "Thermogenesis", CategoryPhysicalTrait},
	}
	for _, tc := range cases {
		v, ok := ByRSID(tc.rsid)
		require.True(t, ok, tc.rsid)
		assert.Equal(t, tc.group, v.Group, tc.rsid)
		assert.Equal(t, tc.cat, v.Category, tc.rsid)
	}
}

func TestMemoryMarkerInterpretations(t *testing.T) {
	v, ok := ByRSID("rs17070145")
	require.True(t, ok)
	assert.Equal(t, RiskBad, v.Genotypes["CC"].Risk)
	assert.Equal(t, RiskGood, v.Genotypes["TT"].Risk)
}
