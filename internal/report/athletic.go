package report

import (
	"fmt"
	"strings"

	"github.com/cdrn/snpreport/internal/score"
)

// athleticCategoryNames maps panel categories to display names.
var athleticCategoryNames = map[string]string{
	score.CategoryMuscleEnergy: "Muscle & Energy",
	score.CategoryAdrenergic:   "Adrenergic",
	score.CategoryOxygen:       "Oxygen & Hypoxia",
	score.CategoryNeuromotor:   "Neuromotor",
	score.CategoryInflammation: "Inflammation & Recovery",
	score.CategoryConnective:   "Connective Tissue",
	score.CategoryFuel:         "Fuel & Metabolism",
}

// WriteAthletic prints the endurance/power polygenic score report.
func (f *Formatter) WriteAthletic(res score.Result) {
	f.banner("ATHLETIC PERFORMANCE POLYGENIC SCORE")

	scoreCol := signColor(res.Total)
	fmt.Fprintf(f.w, "%s %s\n", bold("Overall Score:"), scoreCol(fmt.Sprintf("%+.2f", res.Total)))
	fmt.Fprintf(f.w, "%s %s\n", bold("Athletic Type:"), bold(scoreCol(res.Type())))
	fmt.Fprintf(f.w, "%s %s\n", bold("Scoring Mode:"), res.Mode.String())
	fmt.Fprintf(f.w, "%s %d/%d\n", bold("SNPs Analyzed:"), res.Analyzed, res.PanelSize)

	f.writeSpectrum(res.Total)

	fmt.Fprintf(f.w, "\n%s\n", bold(yellow("Category Scores:")))
	for _, cat := range score.AthleticCategories {
		v := res.Categories[cat]
		fmt.Fprintf(f.w, "  %-24s %s\n", athleticCategoryNames[cat], signColor(v)(fmt.Sprintf("%+6.2f", v)))
	}

	fmt.Fprintf(f.w, "\n%s\n", bold(yellow("Individual SNP Results:")))
	for _, cat := range score.AthleticCategories {
		first := true
		for _, c := range res.Contributions {
			if c.Marker.Category != cat {
				continue
			}
			if first {
				fmt.Fprintf(f.w, "\n  %s\n", cyan(strings.ToUpper(athleticCategoryNames[cat])))
				first = false
			}
			symbol := "→"
			if c.Weight > 0 {
				symbol = "▲"
			} else if c.Weight < 0 {
				symbol = "▼"
			}
			fmt.Fprintf(f.w, "    %s %s (%s)\n", bold(c.Marker.Gene), c.Marker.Name, c.Marker.RSID)
			fmt.Fprintf(f.w, "      %s\n", signColor(c.Weight)(symbol+" "+c.Interpretation()))
			fmt.Fprintf(f.w, "      %s\n", faint(c.Marker.Effect))
			fmt.Fprintf(f.w, "      %s\n", faint(c.Marker.Notes))
		}
	}

	if len(res.Missing) > 0 {
		fmt.Fprintf(f.w, "\n%s\n  %s\n", bold(yellow("Missing SNPs:")), faint(strings.Join(res.Missing, ", ")))
	}

	fmt.Fprintf(f.w, "\n%s\n", bold("Interpretation:"))
	for _, line := range athleticAdvice(res.Total) {
		fmt.Fprintf(f.w, "  %s\n", line)
	}

	fmt.Fprintf(f.w, "\n%s\n", bold(red("IMPORTANT LIMITATIONS:")))
	fmt.Fprintf(f.w, "%s\n", yellow(fmt.Sprintf("- This score analyzes only %d SNPs out of 250+ identified in research", res.Analyzed)))
	fmt.Fprintf(f.w, "%s\n", yellow("- Athletic performance is highly polygenic (thousands of variants)"))
	fmt.Fprintf(f.w, "%s\n", yellow("- Genetics explains only ~20-30% of athletic performance"))
	fmt.Fprintf(f.w, "\n%s\n", bold("Training, nutrition, and psychology matter far more than genetics."))
}

// writeSpectrum renders the power/endurance position bar.
func (f *Formatter) writeSpectrum(total float64) {
	const barLen = 40
	center := barLen / 2
	pos := center + int(total/score.MaxRealisticScore*float64(center))
	if pos < 0 {
		pos = 0
	}
	if pos > barLen-1 {
		pos = barLen - 1
	}

	bar := make([]string, barLen)
	for i := range bar {
		bar[i] = "-"
	}
	bar[center] = "|"
	bar[pos] = "●"

	fmt.Fprintf(f.w, "\n%s\n", bold("Performance Spectrum:"))
	fmt.Fprintf(f.w, "Power %s%s%s Endurance\n",
		red(strings.Join(bar[:center], "")),
		yellow(bar[center]),
		green(strings.Join(bar[center+1:], "")))
	fmt.Fprintf(f.w, "      %s↑\n", strings.Repeat(" ", pos))
	fmt.Fprintf(f.w, "      %sYou\n", strings.Repeat(" ", pos))
}

func athleticAdvice(total float64) []string {
	switch {
	case total > 1.5:
		return []string{
			"Your genetics strongly favor endurance activities:",
			"- Marathon, cycling, swimming, triathlon",
			"- Better fat oxidation and aerobic capacity",
			"- Superior fatigue resistance",
		}
	case total > 0.5:
		return []string{
			"Your genetics moderately favor endurance activities:",
			"- Distance running, cycling",
			"- Good aerobic capacity",
			"- Above-average fatigue resistance",
		}
	case total < -1.5:
		return []string{
			"Your genetics strongly favor power/sprint activities:",
			"- Sprinting, weightlifting, throwing",
			"- Fast-twitch muscle fiber dominance",
			"- Explosive power generation",
		}
	case total < -0.5:
		return []string{
			"Your genetics moderately favor power/sprint activities:",
			"- Short sprints, strength training",
			"- Good explosive capacity",
			"- Above-average power output",
		}
	default:
		return []string{
			"Your genetics show a balanced profile:",
			"- Suitable for mixed sports (soccer, basketball, hockey)",
			"- Can excel in both endurance and power with proper training",
			"- Versatile athletic potential",
		}
	}
}

func signColor(v float64) func(...any) string {
	switch {
	case v > 0:
		return green
	case v < 0:
		return red
	default:
		return yellow
	}
}
