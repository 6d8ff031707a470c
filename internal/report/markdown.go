package report

import (
	"fmt"
	"regexp"
	"strings"

	"catstat/internal/association"
)

var nonAlphanumeric = regexp.MustCompile(`\W+`)

// SanitizeFilename replaces runs of non-alphanumeric characters with a
// single underscore so column names are safe inside artifact names.
func SanitizeFilename(text string) string {
	return nonAlphanumeric.ReplaceAllString(text, "_")
}

// ArtifactNames holds the deterministic artifact file names for a column pair.
type ArtifactNames struct {
	Markdown string
	Chart    string
	PDF      string
}

// NamesFor derives artifact names from the sanitized column names.
func NamesFor(colA, colB string) ArtifactNames {
	a := SanitizeFilename(colA)
	b := SanitizeFilename(colB)
	return ArtifactNames{
		Markdown: fmt.Sprintf("stat_analysis_%s_vs_%s.md", a, b),
		Chart:    fmt.Sprintf("stacked_bar_%s_vs_%s.png", a, b),
		PDF:      fmt.Sprintf("stat_analysis_%s_vs_%s.pdf", a, b),
	}
}

// Markdown renders the analysis report. The output carries no timestamps, so
// repeated runs over the same input are byte-identical.
func Markdown(colA, colB string, res *association.Result, chartFile string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Statistical Analysis: `%s` vs `%s`\n\n", colA, colB)

	sb.WriteString("## 1. Chi-Square Test for Independence\n\n")
	fmt.Fprintf(&sb, "- **Chi-Square Statistic**: %.4f\n", res.ChiSquare)
	fmt.Fprintf(&sb, "- **p-value**: %.4e\n", res.PValue)
	fmt.Fprintf(&sb, "- **Degrees of Freedom**: %d\n\n", res.DegreesOfFreedom)
	sb.WriteString(relatednessConclusion(colA, colB, res))
	sb.WriteString("\n\n")

	sb.WriteString("## 2. Cramér's V (Strength of Association)\n\n")
	fmt.Fprintf(&sb, "- **Cramér's V**: %.4f\n\n", res.CramersV)
	sb.WriteString(strengthConclusion(res))
	sb.WriteString("\n\n")

	sb.WriteString("## 3. Visualization\n\n")
	fmt.Fprintf(&sb, "![Stacked Bar Chart](%s)\n", chartFile)

	return sb.String()
}

func relatednessConclusion(colA, colB string, res *association.Result) string {
	if res.Related() {
		return fmt.Sprintf("**Conclusion:** `%s` and `%s` **are statistically related** (p-value < 0.05).", colA, colB)
	}
	return fmt.Sprintf("**Conclusion:** No significant relationship between `%s` and `%s` (p-value > 0.05).", colA, colB)
}

func strengthConclusion(res *association.Result) string {
	switch res.Strength() {
	case association.StrengthNegligible:
		return "**Conclusion:** The association is **very weak or negligible**."
	case association.StrengthWeak:
		return "**Conclusion:** There is a **weak association**."
	case association.StrengthModerate:
		return "**Conclusion:** There is a **moderate association**."
	default:
		return "**Conclusion:** The association is **strong**."
	}
}
