// Package report renders analysis results as colored terminal output.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/cdrn/snpreport/internal/annotate"
	"github.com/cdrn/snpreport/internal/catalog"
	"github.com/cdrn/snpreport/internal/genotype"
)

var (
	bold    = color.New(color.Bold).SprintFunc()
	cyan    = color.New(color.FgCyan, color.Bold).SprintFunc()
	green   = color.New(color.FgGreen).SprintFunc()
	yellow  = color.New(color.FgYellow).SprintFunc()
	red     = color.New(color.FgRed).SprintFunc()
	blue    = color.New(color.FgBlue).SprintFunc()
	faint   = color.New(color.Faint).SprintFunc()
	magenta = color.New(color.FgMagenta).SprintFunc()
)

// categoryTitles maps catalog categories to their report section banners.
var categoryTitles = map[catalog.Category]string{
	catalog.CategoryPharmacogenomic: "PHARMACOGENOMICS (FDA RECOGNIZED)",
	catalog.CategoryDiseaseRisk:     "HEALTH & DISEASE RISK",
	catalog.CategoryMentalHealth:    "MOOD, MENTAL HEALTH & NEUROTRANSMITTERS",
	catalog.CategoryPhysicalTrait:   "PHYSICAL TRAITS & CHARACTERISTICS",
	catalog.CategoryAncestry:        "ANCESTRY-INFORMATIVE MARKERS",
}

// Formatter renders reports to a writer.
type Formatter struct {
	w io.Writer
}

// NewFormatter creates a formatter writing to w.
func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) banner(title string) {
	line := strings.Repeat("=", 80)
	fmt.Fprintf(f.w, "\n%s\n%s\n%s\n", cyan(line), cyan(" "+title), cyan(line))
}

func (f *Formatter) section(title string) {
	fmt.Fprintf(f.w, "\n%s\n%s\n", bold(yellow(title+":")), faint(strings.Repeat("-", 80)))
}

// WriteHeader prints the report banner and file metadata.
func (f *Formatter) WriteHeader(meta genotype.Metadata) {
	f.banner("COMPREHENSIVE DNA REPORT")
	f.section("BASIC INFORMATION")
	source := meta.Source
	if source == "" {
		source = "unknown"
	}
	fmt.Fprintf(f.w, "%s %s\n", bold("Source:"), green(source))
	fmt.Fprintf(f.w, "%s %s\n", bold("Total SNPs:"), green(humanize.Comma(int64(meta.Count))))
	if meta.Build > 0 {
		fmt.Fprintf(f.w, "%s %s\n", bold("Build:"), green(fmt.Sprintf("%d", meta.Build)))
	}
	if meta.Sex != "" {
		fmt.Fprintf(f.w, "%s %s\n", bold("Sex:"), green(meta.Sex))
	}
}

// WriteCategory prints one category's records grouped by subsection. Missing
// variants are summarized at the end of the section rather than listed
// inline.
func (f *Formatter) WriteCategory(cat catalog.Category, records []annotate.Record) {
	if len(records) == 0 {
		return
	}
	f.banner(categoryTitles[cat])

	var missing []string
	group := ""
	for _, r := range records {
		if r.Status == annotate.StatusMissing {
			missing = append(missing, r.Variant.RSID)
			continue
		}
		if r.Variant.Group != group {
			group = r.Variant.Group
			f.section(strings.ToUpper(group))
		}
		f.writeRecord(r)
	}

	if len(missing) > 0 {
		fmt.Fprintf(f.w, "\n%s %s\n", faint("Not covered by this file:"), faint(strings.Join(missing, ", ")))
	}
}

func (f *Formatter) writeRecord(r annotate.Record) {
	v := r.Variant
	fmt.Fprintf(f.w, "\n  %s %s %s: %s\n",
		bold(green(v.Gene)),
		magenta("["+v.Trait+"]"),
		faint("("+v.RSID+")"),
		bold(r.Raw))

	if r.Status == annotate.StatusUnrecognized {
		fmt.Fprintf(f.w, "  %s %s\n", bold("→"), yellow(fmt.Sprintf("Unrecognized genotype %s for this variant's alleles", r.Raw)))
		return
	}

	if v.Evidence != "" {
		fmt.Fprintf(f.w, "  %s %s\n", faint("Evidence:"), v.Evidence)
	}
	fmt.Fprintf(f.w, "  %s %s\n", bold("→"), riskColor(r.Interp.Risk)(r.Interp.Text))
	if r.Interp.Effect > 0 {
		fmt.Fprintf(f.w, "  %s\n", faint(fmt.Sprintf("Reported effect size: %gx", r.Interp.Effect)))
	}
	fmt.Fprintf(f.w, "  %s\n", blue(v.URL()))
}

func riskColor(r catalog.Risk) func(...any) string {
	switch r {
	case catalog.RiskGood:
		return green
	case catalog.RiskBad:
		return red
	case catalog.RiskNeutral:
		return yellow
	default:
		return fmt.Sprint
	}
}

// WriteHaplogroup prints the paternal-lineage section.
func (f *Formatter) WriteHaplogroup(hg annotate.Haplogroup) {
	f.banner("Y-CHROMOSOME HAPLOGROUP (PATERNAL LINEAGE)")

	conf := red
	switch {
	case hg.Confidence >= 0.5:
		conf = green
	case hg.Confidence >= 0.3:
		conf = yellow
	}
	fmt.Fprintf(f.w, "%s %s\n", bold("Predicted Haplogroup:"), bold(cyan(hg.Name)))
	fmt.Fprintf(f.w, "%s %s\n", bold("Confidence:"), conf(fmt.Sprintf("%.0f%%", hg.Confidence*100)))
	if hg.Origin != "" {
		fmt.Fprintf(f.w, "%s %s\n", bold("Origin:"), green(hg.Origin))
	}
	fmt.Fprintf(f.w, "%s %s\n", bold("Supporting markers:"), faint(strings.Join(hg.Support, ", ")))
	fmt.Fprintf(f.w, "\n%s Consumer arrays carry few Y-SNPs; for an accurate call use a dedicated Y test.\n", yellow("Note:"))
}

// WriteSummary prints overall match counts.
func (f *Formatter) WriteSummary(sum annotate.Summary) {
	f.banner("ANALYSIS COMPLETE")
	fmt.Fprintf(f.w, "%s\n", green("All processing done locally - no data transmitted"))
	fmt.Fprintf(f.w, "\n%s %s\n", bold("Markers analyzed:"), green(fmt.Sprintf("%d", sum.Total())))
	fmt.Fprintf(f.w, "%s %s matched, %s unrecognized, %s not covered\n",
		bold("Match outcomes:"),
		green(fmt.Sprintf("%d", sum.Matched)),
		yellow(fmt.Sprintf("%d", sum.Unrecognized)),
		faint(fmt.Sprintf("%d", sum.Missing)))
}
