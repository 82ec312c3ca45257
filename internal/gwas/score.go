package gwas

import (
	"math"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cdrn/snpreport/internal/genotype"
)

// Contribution is one summary-statistics row matched to the user's genotype.
type Contribution struct {
	RSID         string
	Genotype     string
	EffectAllele string
	AlleleCount  int
	Beta         float64
	Pval         float64
	EAF          float64
	Value        float64 // Beta * AlleleCount
}

// Result is the aggregate polygenic score for one selection.
type Result struct {
	Selection       Selection
	RawScore        float64
	NormalizedScore float64 // raw score over the sum of |beta|
	Matched         int
	Available       int
	Contributions   []Contribution // sorted by |Value| descending

	// Standardization against the expected population distribution; only
	// populated when Standardized is true.
	Standardized   bool
	ZScore         float64
	Percentile     float64
	ExpectedMean   float64
	ExpectedSD     float64
	ConfidenceLow  float64
	ConfidenceHigh float64
}

// CoveragePercent is the share of selected rows matched against the store.
func (r Result) CoveragePercent() float64 {
	if r.Available == 0 {
		return 0
	}
	return float64(r.Matched) / float64(r.Available) * 100
}

// minCoveragePercent gates standardization: below this the matched subset is
// too sparse for the expected-distribution arithmetic to mean anything.
const minCoveragePercent = 3.0

// Scorer computes GWAS-driven polygenic scores for one genotype store.
type Scorer struct {
	store  *genotype.Store
	engine Engine
	path   string
	logger *zap.Logger
}

// NewScorer creates a scorer reading summary statistics from path via the
// given engine.
func NewScorer(store *genotype.Store, engine Engine, path string) *Scorer {
	return &Scorer{store: store, engine: engine, path: path, logger: zap.NewNop()}
}

// SetLogger sets the logger for progress and warning messages.
func (s *Scorer) SetLogger(l *zap.Logger) {
	s.logger = l
}

// Score runs one selection and aggregates matched contributions.
func (s *Scorer) Score(sel Selection) (Result, error) {
	rows, err := s.engine.Select(s.path, sel)
	if err != nil {
		return Result{}, err
	}
	s.logger.Info("selected summary-statistics rows",
		zap.String("selection", sel.String()),
		zap.Int("rows", len(rows)))

	res := Result{Selection: sel, Available: len(rows)}
	var sumAbsBeta float64

	for _, row := range rows {
		obs, ok := s.store.Lookup(row.RSID)
		if !ok {
			continue
		}
		count, ok := effectAlleleCount(obs.Genotype, row.A1, row.A2)
		if !ok {
			continue
		}

		c := Contribution{
			RSID:         row.RSID,
			Genotype:     obs.Genotype,
			EffectAllele: row.A1,
			AlleleCount:  count,
			Beta:         row.Beta,
			Pval:         row.Pval,
			EAF:          row.EAF,
			Value:        row.Beta * float64(count),
		}
		res.RawScore += c.Value
		sumAbsBeta += math.Abs(row.Beta)
		res.Contributions = append(res.Contributions, c)
		res.Matched++
	}

	if sumAbsBeta > 0 {
		res.NormalizedScore = res.RawScore / sumAbsBeta
	}
	sort.SliceStable(res.Contributions, func(i, j int) bool {
		return math.Abs(res.Contributions[i].Value) > math.Abs(res.Contributions[j].Value)
	})

	if res.CoveragePercent() > minCoveragePercent {
		standardize(&res)
	} else {
		s.logger.Warn("skipping standardization, coverage too low",
			zap.Float64("coverage_percent", res.CoveragePercent()))
	}
	return res, nil
}

// effectAlleleCount counts copies of the effect allele in the genotype,
// falling back to the complementary strand when the observed alleles are not
// a subset of {A1, A2}. It returns false when neither reading fits.
func effectAlleleCount(gt, a1, a2 string) (int, bool) {
	if allelesSubset(gt, a1, a2) {
		return strings.Count(gt, a1), true
	}
	compA1 := genotype.ComplementGenotype(a1)
	compA2 := genotype.ComplementGenotype(a2)
	if allelesSubset(gt, compA1, compA2) {
		return strings.Count(gt, compA1), true
	}
	return 0, false
}

func allelesSubset(gt, a1, a2 string) bool {
	for i := 0; i < len(gt); i++ {
		al := string(gt[i])
		if al != a1 && al != a2 {
			return false
		}
	}
	return len(gt) > 0
}

// standardize fills the z-score block from the expected per-variant allele
// frequency distribution: mean sum(2*EAF*beta), variance
// sum(2*EAF*(1-EAF)*beta^2). With fewer than 100 matched variants the SD is
// widened by the t/normal critical ratio so small panels report wider
// intervals.
func standardize(res *Result) {
	var mean, variance float64
	for _, c := range res.Contributions {
		mean += c.Beta * 2 * c.EAF
		variance += c.Beta * c.Beta * 2 * c.EAF * (1 - c.EAF)
	}
	sd := math.Sqrt(variance)

	if n := len(res.Contributions); n > 1 && n < 100 {
		t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
		sd *= t.Quantile(0.975) / 1.96
	}
	if sd <= 0 {
		return
	}

	res.Standardized = true
	res.ExpectedMean = mean
	res.ExpectedSD = sd
	res.ZScore = (res.RawScore - mean) / sd
	res.Percentile = distuv.Normal{Mu: 0, Sigma: 1}.CDF(res.ZScore) * 100
	res.ConfidenceLow = res.RawScore - 1.96*sd
	res.ConfidenceHigh = res.RawScore + 1.96*sd
}

// CompareThresholds is the p-value ladder reported by the compare mode.
var CompareThresholds = []float64{5e-8, 1e-5, 1e-3, 0.01, 0.05, 1.0}

// TopNLadder is the selection sizes reported by the top-analysis mode; the
// final genome-wide run (p < 5e-8) is appended by TopNAnalysis.
var TopNLadder = []int{10, 50, 100, 500, 1000, 5000, 10000}

// Compare scores every threshold in CompareThresholds. Runs are independent
// and execute concurrently; results come back in ladder order.
func (s *Scorer) Compare() ([]Result, error) {
	sels := make([]Selection, len(CompareThresholds))
	for i, t := range CompareThresholds {
		sels[i] = Selection{PThreshold: t}
	}
	return s.scoreAll(sels)
}

// TopNAnalysis scores every size in TopNLadder plus a genome-wide
// significant run.
func (s *Scorer) TopNAnalysis() ([]Result, error) {
	sels := make([]Selection, 0, len(TopNLadder)+1)
	for _, n := range TopNLadder {
		sels = append(sels, Selection{TopN: n})
	}
	sels = append(sels, Selection{PThreshold: 5e-8})
	return s.scoreAll(sels)
}

func (s *Scorer) scoreAll(sels []Selection) ([]Result, error) {
	results := make([]Result, len(sels))
	errs := make([]error, len(sels))

	var wg sync.WaitGroup
	wg.Add(len(sels))
	for i, sel := range sels {
		go func(i int, sel Selection) {
			defer wg.Done()
			results[i], errs[i] = s.Score(sel)
		}(i, sel)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
