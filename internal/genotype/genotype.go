// Package genotype provides parsing of consumer DNA raw-data exports into an
// in-memory genotype store.
package genotype

import (
	"sort"
	"strings"
)

// Observation is one individual's called genotype at a single variant.
type Observation struct {
	RSID     string
	Chrom    string
	Pos      int64
	Genotype string // normalized unordered pair, e.g. "AG"
}

// Store maps variant identifiers to genotype observations for one individual.
// Exactly one observation per rsid; absent means the variant was not covered
// by the assay or was a no-call.
type Store struct {
	observations map[string]Observation
	Metadata     Metadata
}

// Metadata describes the parsed raw-data file.
type Metadata struct {
	Source string // detected vendor, e.g. "AncestryDNA", "23andMe"
	Build  int    // genome build from header comments, 0 if unknown
	Sex    string // "Male", "Female", or "" if undetermined
	Count  int    // total rows with a called genotype
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{observations: make(map[string]Observation)}
}

// Lookup returns the observation for an rsid, if present.
func (s *Store) Lookup(rsid string) (Observation, bool) {
	obs, ok := s.observations[rsid]
	return obs, ok
}

// Count returns the number of stored observations.
func (s *Store) Count() int {
	return len(s.observations)
}

// ChromObservations returns all observations on the given chromosome.
func (s *Store) ChromObservations(chrom string) []Observation {
	var out []Observation
	for _, obs := range s.observations {
		if obs.Chrom == chrom {
			out = append(out, obs)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pos < out[j].Pos })
	return out
}

// Add inserts or replaces an observation.
func (s *Store) Add(obs Observation) {
	s.observations[obs.RSID] = obs
}

// NormalizeGenotype returns the unordered-pair form of a genotype: alleles
// uppercased and sorted, so "ga" and "AG" both normalize to "AG".
func NormalizeGenotype(gt string) string {
	gt = strings.ToUpper(strings.TrimSpace(gt))
	alleles := strings.Split(gt, "")
	sort.Strings(alleles)
	return strings.Join(alleles, "")
}

// Complement returns the complementary DNA base. Non-ACGT bytes are returned
// unchanged so insertion/deletion codes pass through.
func Complement(base byte) byte {
	switch base {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'C':
		return 'G'
	case 'G':
		return 'C'
	}
	return base
}

// ComplementGenotype complements every allele of a genotype string.
func ComplementGenotype(gt string) string {
	b := []byte(strings.ToUpper(gt))
	for i := range b {
		b[i] = Complement(b[i])
	}
	return string(b)
}

// IsNoCall reports whether a raw genotype value represents a no-call.
func IsNoCall(gt string) bool {
	switch strings.TrimSpace(gt) {
	case "", "--", "00", "0", "II", "DD", "DI", "ID":
		return true
	}
	return false
}
