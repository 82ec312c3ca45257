// Package score computes the athletic endurance/power polygenic score from
// the compiled marker panel.
package score

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/cdrn/snpreport/internal/genotype"
)

// Mode selects the weighting scheme for athletic scoring.
type Mode int

const (
	// ModeLogEffect weights each marker by the natural log of its
	// published odds ratio under an additive allele model.
	ModeLogEffect Mode = iota
	// ModeLegacy gives every marker unit weight regardless of effect
	// size. Kept for comparison against older reports.
	ModeLegacy
)

func (m Mode) String() string {
	switch m {
	case ModeLogEffect:
		return "logodds"
	case ModeLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// ParseMode converts a CLI mode name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "logodds", "":
		return ModeLogEffect, nil
	case "legacy":
		return ModeLegacy, nil
	default:
		return 0, fmt.Errorf("unknown scoring mode %q (want legacy or logodds)", s)
	}
}

// MaxRealisticScore bounds the spectrum display. Summing every marker's full
// weight in one direction lands near this value for a realistic genome.
const MaxRealisticScore = 3.0

// Contribution is one marker's resolved outcome.
type Contribution struct {
	Marker         AthleticMarker
	Genotype       string // normalized observed genotype, "" if missing
	Flipped        bool   // matched only after strand complement
	EnduranceCount int
	PowerCount     int
	Weight         float64
}

// Missing reports whether the marker had no usable call.
func (c Contribution) Missing() bool {
	return c.Genotype == ""
}

// Interpretation describes the contribution for display.
func (c Contribution) Interpretation() string {
	gt := c.Genotype
	if c.Flipped {
		gt = fmt.Sprintf("%s [flip: %s]", c.Genotype, genotype.ComplementGenotype(c.Genotype))
	}
	switch {
	case c.EnduranceCount == 2:
		return fmt.Sprintf("Homozygous endurance (%s)", gt)
	case c.PowerCount == 2:
		return fmt.Sprintf("Homozygous power (%s)", gt)
	case c.EnduranceCount == 1 && c.PowerCount == 1:
		return fmt.Sprintf("Neutral/heterozygous (%s)", gt)
	case c.EnduranceCount == 1:
		return fmt.Sprintf("Endurance advantage (%s)", gt)
	case c.PowerCount == 1:
		return fmt.Sprintf("Power advantage (%s)", gt)
	default:
		return fmt.Sprintf("Unrecognized alleles (%s)", gt)
	}
}

// Result is the aggregate athletic score.
type Result struct {
	Mode          Mode
	Total         float64
	Categories    map[string]float64
	Contributions []Contribution
	Missing       []string // rsids with no usable call
	Analyzed      int
	PanelSize     int
}

// EndurancePercent maps the total onto a 0-100 endurance scale.
func (r Result) EndurancePercent() float64 {
	return clampPercent(r.Total / MaxRealisticScore * 100)
}

// PowerPercent maps the total onto a 0-100 power scale.
func (r Result) PowerPercent() float64 {
	return clampPercent(-r.Total / MaxRealisticScore * 100)
}

func clampPercent(p float64) float64 {
	return math.Max(0, math.Min(100, p))
}

// Type labels the overall score on the endurance/power spectrum.
func (r Result) Type() string {
	switch {
	case r.Total > 1.5:
		return "Strong Endurance"
	case r.Total > 0.5:
		return "Moderate Endurance"
	case r.Total < -1.5:
		return "Strong Power/Sprint"
	case r.Total < -0.5:
		return "Moderate Power/Sprint"
	default:
		return "Balanced/Mixed"
	}
}

// Scorer computes athletic polygenic scores against a genotype store.
type Scorer struct {
	store  *genotype.Store
	logger *zap.Logger
}

// NewScorer creates a scorer over the given store.
func NewScorer(store *genotype.Store) *Scorer {
	return &Scorer{store: store, logger: zap.NewNop()}
}

// SetLogger sets the logger for debug messages.
func (s *Scorer) SetLogger(l *zap.Logger) {
	s.logger = l
}

// Score evaluates the full marker panel under the given mode. Markers with
// no call contribute nothing and are listed in Result.Missing; markers whose
// alleles match neither strand reading contribute zero weight.
func (s *Scorer) Score(mode Mode) Result {
	res := Result{
		Mode:       mode,
		Categories: make(map[string]float64, len(AthleticCategories)),
		PanelSize:  len(athleticMarkers),
	}
	for _, c := range AthleticCategories {
		res.Categories[c] = 0
	}

	for _, m := range athleticMarkers {
		obs, ok := s.store.Lookup(m.RSID)
		if !ok || genotype.IsNoCall(obs.Genotype) {
			res.Missing = append(res.Missing, m.RSID)
			continue
		}

		c := scoreMarker(m, obs.Genotype, mode)
		res.Total += c.Weight
		res.Categories[m.Category] += c.Weight
		res.Contributions = append(res.Contributions, c)
		res.Analyzed++
	}

	s.logger.Debug("athletic score computed",
		zap.String("mode", mode.String()),
		zap.Float64("total", res.Total),
		zap.Int("analyzed", res.Analyzed),
		zap.Int("missing", len(res.Missing)))
	return res
}

// scoreMarker counts endurance and power alleles in the observed genotype,
// trying the complement strand when the direct alleles do not match, then
// weights them under an additive model: each endurance allele adds half the
// marker weight, each power allele subtracts it. Because every panel marker
// pairs an endurance allele with a power allele, a heterozygote nets to
// exactly zero rather than the half weight a single-effect-allele additive
// model would give. That is intentional and matches the published scoring
// this panel was calibrated against; do not change heterozygotes to ln(OR)/2
// without recalibrating the spectrum bounds.
func scoreMarker(m AthleticMarker, observed string, mode Mode) Contribution {
	gt := genotype.NormalizeGenotype(observed)
	c := Contribution{Marker: m, Genotype: gt}

	count := func(s string) (endurance, power int) {
		for i := 0; i < len(s); i++ {
			switch string(s[i]) {
			case m.Endurance:
				endurance++
			case m.Power:
				power++
			}
		}
		return
	}

	c.EnduranceCount, c.PowerCount = count(gt)
	if c.EnduranceCount+c.PowerCount < len(gt) {
		flipped := genotype.ComplementGenotype(gt)
		if e, p := count(flipped); e+p > c.EnduranceCount+c.PowerCount {
			c.EnduranceCount, c.PowerCount = e, p
			c.Flipped = true
		}
	}

	// A genotype with any unrecognized allele is non-interpretable and
	// contributes zero.
	if c.EnduranceCount+c.PowerCount != len(gt) {
		return c
	}

	w := 1.0
	if mode == ModeLogEffect {
		w = 0
		if m.EffectSize > 0 {
			w = math.Log(m.EffectSize)
		}
	}
	c.Weight = float64(c.EnduranceCount-c.PowerCount) / 2 * w
	return c
}
