package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/cdrn/snpreport/internal/gwas"
)

// maxContributorRows bounds the per-SNP table in the cognitive report.
const maxContributorRows = 25

// WriteCognitive prints the educational-attainment polygenic score report.
func (f *Formatter) WriteCognitive(res gwas.Result) {
	f.banner("EDUCATIONAL ATTAINMENT POLYGENIC SCORE")
	fmt.Fprintf(f.w, "%s\n", faint("Based on Lee et al. (2018) - 1.1M-person GWAS of educational attainment"))

	if res.Matched == 0 {
		fmt.Fprintf(f.w, "\n%s %s\n", red(bold("Insufficient data:")),
			"no variants could be matched between your file and the GWAS summary statistics")
		return
	}

	fmt.Fprintf(f.w, "\n%s %.4f\n", bold("Raw Polygenic Score:"), res.RawScore)
	fmt.Fprintf(f.w, "%s %.4f\n", bold("Normalized Score:"), res.NormalizedScore)

	if res.Standardized {
		fmt.Fprintf(f.w, "%s %+.2f SD\n", bold("Standardized Score (Z):"), res.ZScore)
		pc := percentileColor(res.Percentile)
		fmt.Fprintf(f.w, "%s %s (higher than %.1f%% of population)\n",
			bold("Percentile Rank:"), pc(fmt.Sprintf("%.1f", res.Percentile)), res.Percentile)
		fmt.Fprintf(f.w, "%s [%.2f, %.2f]\n", bold("95% Confidence Interval:"), res.ConfidenceLow, res.ConfidenceHigh)
	} else {
		fmt.Fprintf(f.w, "%s %s\n", bold("Standardization:"), yellow("not calculated (insufficient coverage)"))
	}

	coverage := res.CoveragePercent()
	covCol, covMsg := green, ""
	switch {
	case coverage < 5:
		covCol, covMsg = red, " - very low coverage, interpret with extreme caution"
	case coverage < 10:
		covCol, covMsg = yellow, " - low coverage, results uncertain"
	}
	fmt.Fprintf(f.w, "%s %s / %s (%s)%s\n",
		bold("SNPs Matched:"),
		humanize.Comma(int64(res.Matched)),
		humanize.Comma(int64(res.Available)),
		covCol(fmt.Sprintf("%.1f%% coverage", coverage)),
		covMsg)
	fmt.Fprintf(f.w, "%s %s\n", bold("Selection:"), res.Selection.String())

	if res.Standardized {
		f.writePercentileBar(res.Percentile)
		fmt.Fprintf(f.w, "\n%s\n", bold(yellow("Score Interpretation:")))
		label, col := percentileLabel(res.Percentile)
		fmt.Fprintf(f.w, "  %s genetic predisposition for educational attainment\n", col(label))
		fmt.Fprintf(f.w, "  You scored higher than %.1f%% of the reference population\n", res.Percentile)
	}

	fmt.Fprintf(f.w, "\n%s\n", bold(yellow("Important Notes:")))
	fmt.Fprintf(f.w, "  - This score explains ~11-13%% of variance in educational attainment\n")
	fmt.Fprintf(f.w, "  - Environment, motivation, and opportunity matter much more\n")
	fmt.Fprintf(f.w, "  - This is NOT an IQ test - it is a genetic tendency estimate\n")

	f.writeContributors(res)

	fmt.Fprintf(f.w, "\n%s\n", bold("Data Source:"))
	fmt.Fprintf(f.w, "  Lee et al. (2018). Gene discovery and polygenic prediction from a\n")
	fmt.Fprintf(f.w, "  1.1-million-person GWAS of educational attainment.\n")
	fmt.Fprintf(f.w, "  Nature Genetics, 50(8), 1112-1121.\n")
}

func (f *Formatter) writeContributors(res gwas.Result) {
	if len(res.Contributions) == 0 {
		return
	}
	fmt.Fprintf(f.w, "\n%s\n", bold(yellow("Top Contributing SNPs:")))

	tw := tabwriter.NewWriter(f.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  SNP\tGenotype\tEA Allele\tCount\tEffect")
	n := len(res.Contributions)
	if n > maxContributorRows {
		n = maxContributorRows
	}
	for _, c := range res.Contributions[:n] {
		symbol, text := contributionEffect(c.Value)
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%dx%s\t%s %s\n",
			c.RSID, c.Genotype, c.EffectAllele, c.AlleleCount, c.EffectAllele, symbol, text)
	}
	tw.Flush()
}

func contributionEffect(v float64) (string, string) {
	switch {
	case v > 0.01:
		return "↑↑", "Higher educational attainment"
	case v > 0:
		return "↑", "Slightly higher EA"
	case v < -0.01:
		return "↓↓", "Lower educational attainment"
	case v < 0:
		return "↓", "Slightly lower EA"
	default:
		return "→", "Neutral"
	}
}

func (f *Formatter) writePercentileBar(percentile float64) {
	const barLen = 50
	pos := int(percentile / 100 * barLen)
	if pos < 0 {
		pos = 0
	}
	if pos > barLen-1 {
		pos = barLen - 1
	}

	var b strings.Builder
	for i := 0; i < barLen; i++ {
		switch {
		case i == pos:
			b.WriteString(bold("▼"))
		case float64(i) < barLen*0.1:
			b.WriteString(red("█"))
		case float64(i) < barLen*0.25:
			b.WriteString(yellow("█"))
		case float64(i) < barLen*0.75:
			b.WriteString(blue("█"))
		case float64(i) < barLen*0.9:
			b.WriteString(yellow("█"))
		default:
			b.WriteString(green("█"))
		}
	}

	fmt.Fprintf(f.w, "\n%s\n", bold("Percentile Distribution:"))
	fmt.Fprintf(f.w, "  0%%  %s  100%%\n", b.String())
	fmt.Fprintf(f.w, "      %s↑ You (%.1fth)\n", strings.Repeat(" ", pos), percentile)
}

func percentileColor(p float64) func(...any) string {
	switch {
	case p >= 75:
		return green
	case p >= 25:
		return yellow
	default:
		return red
	}
}

func percentileLabel(p float64) (string, func(...any) string) {
	switch {
	case p >= 90:
		return "Very High", green
	case p >= 75:
		return "Above Average", green
	case p >= 60:
		return "Moderately Above Average", yellow
	case p >= 40:
		return "Average", yellow
	case p >= 25:
		return "Moderately Below Average", yellow
	case p >= 10:
		return "Below Average", red
	default:
		return "Low", red
	}
}

// WriteComparison prints one row per selection for the compare and
// top-analysis modes.
func (f *Formatter) WriteComparison(title string, results []gwas.Result) {
	f.banner(title)

	tw := tabwriter.NewWriter(f.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Selection\tSNPs\tMatched\tCoverage\tRaw Score\tNormalized\tZ-score\tPercentile")
	for _, res := range results {
		z, pct := "N/A", "N/A"
		if res.Standardized {
			z = fmt.Sprintf("%+.2f", res.ZScore)
			pct = fmt.Sprintf("%.1f%%", res.Percentile)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.1f%%\t%.4f\t%.4f\t%s\t%s\n",
			res.Selection.String(), res.Available, res.Matched, res.CoveragePercent(),
			res.RawScore, res.NormalizedScore, z, pct)
	}
	tw.Flush()

	fmt.Fprintf(f.w, "\n%s\n", bold("Interpretation:"))
	fmt.Fprintf(f.w, "  - Stable scores across selections suggest a consistent genetic profile\n")
	fmt.Fprintf(f.w, "  - Large variation suggests coverage issues or population stratification\n")
}
