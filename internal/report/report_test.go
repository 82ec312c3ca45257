package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdrn/snpreport/internal/annotate"
	"github.com/cdrn/snpreport/internal/catalog"
	"github.com/cdrn/snpreport/internal/genotype"
	"github.com/cdrn/snpreport/internal/gwas"
	"github.com/cdrn/snpreport/internal/score"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func render(fn func(f *Formatter)) string {
	var buf bytes.Buffer
	fn(NewFormatter(&buf))
	return buf.String()
}

func TestWriteHeader(t *testing.T) {
	out := render(func(f *Formatter) {
		f.WriteHeader(genotype.Metadata{Source: "AncestryDNA", Build: 37, Sex: "Male", Count: 650000})
	})

	assert.Contains(t, out, "COMPREHENSIVE DNA REPORT")
	assert.Contains(t, out, "Source: AncestryDNA")
	assert.Contains(t, out, "Total SNPs: 650,000")
	assert.Contains(t, out, "Build: 37")
	assert.Contains(t, out, "Sex: Male")
}

func TestWriteHeaderUnknownSource(t *testing.T) {
	out := render(func(f *Formatter) {
		f.WriteHeader(genotype.Metadata{Count: 12})
	})

	assert.Contains(t, out, "Source: unknown")
	assert.NotContains(t, out, "Build:")
	assert.NotContains(t, out, "Sex:")
}

func TestWriteCategory(t *testing.T) {
	v, ok := catalog.ByRSID("rs4680")
	require.True(t, ok)
	missing, ok := catalog.ByRSID("rs6265")
	require.True(t, ok)

	records := []annotate.Record{
		{Variant: v, Status: annotate.StatusMatched, Raw: "AG", Genotype: "AG", Interp: v.Genotypes["AG"]},
		{Variant: missing, Status: annotate.StatusMissing},
	}

	out := render(func(f *Formatter) {
		f.WriteCategory(catalog.CategoryMentalHealth, records)
	})

	assert.Contains(t, out, "MOOD, MENTAL HEALTH & NEUROTRANSMITTERS")
	assert.Contains(t, out, "COMT")
	assert.Contains(t, out, "(rs4680)")
	assert.Contains(t, out, v.Genotypes["AG"].Text)
	assert.Contains(t, out, "snpedia.com/index.php/rs4680")
	assert.Contains(t, out, "Not covered by this file: rs6265")
	// Missing variants never render a record body.
	assert.NotContains(t, out, "BDNF")
}

func TestWriteRecordEffectSize(t *testing.T) {
	v, ok := catalog.ByRSID("rs2802292")
	require.True(t, ok)

	out := render(func(f *Formatter) {
		f.WriteCategory(catalog.CategoryDiseaseRisk, []annotate.Record{
			{Variant: v, Status: annotate.StatusMatched, Raw: "TT", Genotype: "TT", Interp: v.Genotypes["TT"]},
		})
	})

	assert.Contains(t, out, "Reported effect size: 1.8x")
}

func TestWriteCategoryUnrecognized(t *testing.T) {
	v, ok := catalog.ByRSID("rs4680")
	require.True(t, ok)

	out := render(func(f *Formatter) {
		f.WriteCategory(catalog.CategoryMentalHealth, []annotate.Record{
			{Variant: v, Status: annotate.StatusUnrecognized, Raw: "CC", Genotype: "CC"},
		})
	})

	assert.Contains(t, out, "Unrecognized genotype CC")
	assert.NotContains(t, out, "snpedia.com")
}

func TestWriteCategoryEmpty(t *testing.T) {
	out := render(func(f *Formatter) {
		f.WriteCategory(catalog.CategoryAncestry, nil)
	})
	assert.Empty(t, out)
}

func TestWriteHaplogroup(t *testing.T) {
	out := render(func(f *Formatter) {
		f.WriteHaplogroup(annotate.Haplogroup{
			Name:       "R1b",
			Confidence: 0.65,
			Origin:     "Western Europe",
			Support:    []string{"rs2032658", "rs9306841"},
		})
	})

	assert.Contains(t, out, "Y-CHROMOSOME HAPLOGROUP")
	assert.Contains(t, out, "Predicted Haplogroup: R1b")
	assert.Contains(t, out, "Confidence: 65%")
	assert.Contains(t, out, "Origin: Western Europe")
	assert.Contains(t, out, "rs2032658, rs9306841")
}

func TestWriteSummary(t *testing.T) {
	out := render(func(f *Formatter) {
		f.WriteSummary(annotate.Summary{Matched: 60, Unrecognized: 3, Missing: 20})
	})

	line := strings.Repeat("=", 80)
	want := "\n" + line + "\n ANALYSIS COMPLETE\n" + line + "\n" +
		"All processing done locally - no data transmitted\n" +
		"\nMarkers analyzed: 83\n" +
		"Match outcomes: 60 matched, 3 unrecognized, 20 not covered\n"
	assert.Equal(t, want, out)
}

func TestWriteAthletic(t *testing.T) {
	store := genotype.NewStore()
	store.Add(genotype.Observation{RSID: "rs1815739", Chrom: "11", Pos: 66560624, Genotype: "TT"})
	store.Add(genotype.Observation{RSID: "rs17602729", Chrom: "1", Pos: 115236057, Genotype: "CC"})

	res := score.NewScorer(store).Score(score.ModeLogEffect)

	out := render(func(f *Formatter) {
		f.WriteAthletic(res)
	})

	assert.Contains(t, out, "ATHLETIC PERFORMANCE POLYGENIC SCORE")
	assert.Contains(t, out, "Athletic Type:")
	assert.Contains(t, out, "Scoring Mode: logodds")
	assert.Contains(t, out, "SNPs Analyzed: 2/38")
	assert.Contains(t, out, "ACTN3")
	assert.Contains(t, out, "Alpha-actinin-3 in fast-twitch fibers")
	assert.Contains(t, out, "Missing SNPs:")
	assert.Contains(t, out, "Performance Spectrum:")
	assert.Contains(t, out, "IMPORTANT LIMITATIONS:")
}

func TestWriteCognitiveStandardized(t *testing.T) {
	out := render(func(f *Formatter) {
		f.WriteCognitive(gwas.Result{
			Selection:       gwas.Selection{TopN: 500},
			RawScore:        0.1234,
			NormalizedScore: 0.0456,
			Matched:         120,
			Available:       500,
			Standardized:    true,
			ZScore:          1.1,
			Percentile:      86.4,
			ConfidenceLow:   0.05,
			ConfidenceHigh:  0.2,
			Contributions: []gwas.Contribution{
				{RSID: "rs1001", Genotype: "AA", EffectAllele: "A", AlleleCount: 2, Beta: 0.02, Value: 0.04},
			},
		})
	})

	assert.Contains(t, out, "EDUCATIONAL ATTAINMENT POLYGENIC SCORE")
	assert.Contains(t, out, "Raw Polygenic Score: 0.1234")
	assert.Contains(t, out, "Normalized Score: 0.0456")
	assert.Contains(t, out, "Standardized Score (Z): +1.10 SD")
	assert.Contains(t, out, "higher than 86.4%")
	assert.Contains(t, out, "Above Average")
	assert.Contains(t, out, "Selection: Top 500")
	assert.Contains(t, out, "rs1001")
	assert.Contains(t, out, "Lee et al. (2018)")
}

func TestWriteCognitiveLowCoverage(t *testing.T) {
	out := render(func(f *Formatter) {
		f.WriteCognitive(gwas.Result{
			Selection: gwas.Selection{PThreshold: 5e-8},
			RawScore:  0.01,
			Matched:   4,
			Available: 200,
		})
	})

	assert.Contains(t, out, "not calculated (insufficient coverage)")
	assert.Contains(t, out, "2.0% coverage")
	assert.Contains(t, out, "extreme caution")
	// No percentile bar without standardization.
	assert.NotContains(t, out, "Percentile Distribution")
}

func TestWriteCognitiveNoMatches(t *testing.T) {
	out := render(func(f *Formatter) {
		f.WriteCognitive(gwas.Result{Selection: gwas.Selection{TopN: 10}})
	})
	assert.Contains(t, out, "Insufficient data:")
	assert.NotContains(t, out, "Raw Polygenic Score")
}

func TestWriteComparison(t *testing.T) {
	out := render(func(f *Formatter) {
		f.WriteComparison("THRESHOLD COMPARISON", []gwas.Result{
			{Selection: gwas.Selection{PThreshold: 5e-8}, Matched: 50, Available: 100, RawScore: 0.1, NormalizedScore: 0.05, Standardized: true, ZScore: 0.5, Percentile: 69.1},
			{Selection: gwas.Selection{TopN: 10}, Matched: 2, Available: 10, RawScore: 0.01, NormalizedScore: 0.004},
		})
	})

	assert.Contains(t, out, "THRESHOLD COMPARISON")
	assert.Contains(t, out, "p < 5e-08")
	assert.Contains(t, out, "Top 10")
	assert.Contains(t, out, "+0.50")
	assert.Contains(t, out, "69.1%")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "Interpretation:")
}

func TestPercentileLabels(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{95, "Very High"},
		{80, "Above Average"},
		{65, "Moderately Above Average"},
		{50, "Average"},
		{30, "Moderately Below Average"},
		{15, "Below Average"},
		{5, "Low"},
	}
	for _, tc := range cases {
		label, _ := percentileLabel(tc.pct)
		assert.Equal(t, tc.want, label, "percentile %.0f", tc.pct)
	}
}

func TestSpectrumBarPosition(t *testing.T) {
	out := render(func(f *Formatter) {
		f.writeSpectrum(0)
	})
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "Power")
	assert.Contains(t, out, "Endurance")
}
