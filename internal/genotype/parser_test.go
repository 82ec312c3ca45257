package genotype

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAncestryFile(t *testing.T) {
	store, err := Load("testdata/ancestry.txt")
	require.NoError(t, err)

	assert.Equal(t, SourceAncestry, store.Metadata.Source)
	assert.Equal(t, 37, store.Metadata.Build)
	// rs9939609 is a no-call (0/0) and must not be stored.
	assert.Equal(t, 6, store.Count())

	obs, ok := store.Lookup("rs4680")
	require.True(t, ok)
	assert.Equal(t, "AG", obs.Genotype, "allele pair is normalized")
	assert.Equal(t, "22", obs.Chrom)
	assert.Equal(t, int64(19951271), obs.Pos)

	_, ok = store.Lookup("rs9939609")
	assert.False(t, ok)

	// AncestryDNA codes Y as chromosome 24.
	obs, ok = store.Lookup("rs2032658")
	require.True(t, ok)
	assert.Equal(t, "Y", obs.Chrom)
}

func TestLoad23andMeFile(t *testing.T) {
	store, err := Load("testdata/23andme.txt")
	require.NoError(t, err)

	assert.Equal(t, Source23andMe, store.Metadata.Source)
	assert.Equal(t, 37, store.Metadata.Build)
	assert.Equal(t, 5, store.Count())

	obs, ok := store.Lookup("rs1815739")
	require.True(t, ok)
	assert.Equal(t, "CT", obs.Genotype)

	// Lowercase genotypes normalize on load.
	obs, ok = store.Lookup("rs4988235")
	require.True(t, ok)
	assert.Equal(t, "AG", obs.Genotype)
}

func TestParserFromReaderGeneric(t *testing.T) {
	input := "rsid,chromosome,position,genotype\nrs4680,22,19951271,GA\nrs429358,19,45411941,TT\n"
	p, err := NewParserFromReader(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, SourceGeneric, p.Source())

	obs, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, obs)
	assert.Equal(t, "rs4680", obs.RSID)
	assert.Equal(t, "AG", obs.Genotype)

	obs, err = p.Next()
	require.NoError(t, err)
	require.NotNil(t, obs)
	assert.Equal(t, "rs429358", obs.RSID)

	obs, err = p.Next()
	require.NoError(t, err)
	assert.Nil(t, obs, "EOF yields nil observation")
}

func TestParserRejectsUnknownHeader(t *testing.T) {
	_, err := NewParserFromReader(strings.NewReader("a\tb\tc\n1\t2\t3\n"))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Line)
}

func TestParserRejectsMissingGenotypeColumns(t *testing.T) {
	_, err := NewParserFromReader(strings.NewReader("rsid\tchromosome\tposition\n"))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Message, "genotype")
}

func TestParserReportsShortRows(t *testing.T) {
	input := "rsid\tchromosome\tposition\tgenotype\nrs4680\t22\n"
	p, err := NewParserFromReader(strings.NewReader(input))
	require.NoError(t, err)

	_, err = p.Next()
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
}

func TestParserEmptyInput(t *testing.T) {
	_, err := NewParserFromReader(strings.NewReader(""))
	require.Error(t, err)
}

func TestNormalizeGenotype(t *testing.T) {
	assert.Equal(t, "AG", NormalizeGenotype("GA"))
	assert.Equal(t, "AG", NormalizeGenotype("ag"))
	assert.Equal(t, "CT", NormalizeGenotype(" TC "))
	assert.Equal(t, "T", NormalizeGenotype("T"))
}

func TestComplement(t *testing.T) {
	assert.Equal(t, "CT", ComplementGenotype("AG"))
	assert.Equal(t, "AG", ComplementGenotype(ComplementGenotype("AG")))
	assert.Equal(t, byte('-'), Complement('-'))
}

func TestIsNoCall(t *testing.T) {
	for _, gt := range []string{"", "--", "00", "0", "II", "DD", "DI", "ID"} {
		assert.True(t, IsNoCall(gt), "%q", gt)
	}
	assert.False(t, IsNoCall("AG"))
	assert.False(t, IsNoCall("T"))
}

func TestInferSex(t *testing.T) {
	s := NewStore()
	for i := 0; i < 60; i++ {
		s.Add(Observation{RSID: rsidN(i), Chrom: "Y", Pos: int64(i), Genotype: "T"})
	}
	assert.Equal(t, "Male", inferSex(s))

	s = NewStore()
	s.Add(Observation{RSID: "rs1", Chrom: "1", Genotype: "AG"})
	assert.Equal(t, "Female", inferSex(s))

	assert.Equal(t, "", inferSex(NewStore()))
}

func rsidN(i int) string {
	return "rs" + strings.Repeat("9", 2) + string(rune('a'+i%26)) + string(rune('a'+i/26))
}

func TestChromObservationsSorted(t *testing.T) {
	s := NewStore()
	s.Add(Observation{RSID: "rs3", Chrom: "1", Pos: 300, Genotype: "AA"})
	s.Add(Observation{RSID: "rs1", Chrom: "1", Pos: 100, Genotype: "CC"})
	s.Add(Observation{RSID: "rs2", Chrom: "2", Pos: 200, Genotype: "GG"})

	obs := s.ChromObservations("1")
	require.Len(t, obs, 2)
	assert.Equal(t, "rs1", obs[0].RSID)
	assert.Equal(t, "rs3", obs[1].RSID)
}
