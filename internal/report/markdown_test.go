package report

import (
	"strings"
	"testing"

	"catstat/domain/contingency"
	"catstat/internal/association"
)

func computedResult(t *testing.T, counts [][]int) *association.Result {
	t.Helper()
	rows := make([]string, len(counts))
	cols := make([]string, len(counts[0]))
	for i := range rows {
		rows[i] = string(rune('a' + i))
	}
	for j := range cols {
		cols[j] = string(rune('x' + j))
	}
	table, err := contingency.FromCounts(rows, cols, counts)
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	res, err := association.Compute(table)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	return res
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Gender", "Gender"},
		{"Purchase Intent", "Purchase_Intent"},
		{"col-name (v2)", "col_name_v2_"},
		{"a!!b??c", "a_b_c"},
		{"already_clean_123", "already_clean_123"},
	}
	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeFilename(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestNamesFor(t *testing.T) {
	names := NamesFor("Gender", "Purchase Intent")

	if names.Markdown != "stat_analysis_Gender_vs_Purchase_Intent.md" {
		t.Errorf("unexpected markdown name: %s", names.Markdown)
	}
	if names.Chart != "stacked_bar_Gender_vs_Purchase_Intent.png" {
		t.Errorf("unexpected chart name: %s", names.Chart)
	}
	if names.PDF != "stat_analysis_Gender_vs_Purchase_Intent.pdf" {
		t.Errorf("unexpected pdf name: %s", names.PDF)
	}
}

func TestMarkdown_Sections(t *testing.T) {
	res := computedResult(t, [][]int{{10, 0}, {0, 10}})
	md := Markdown("Gender", "Purchase", res, "stacked_bar_Gender_vs_Purchase.png")

	for _, want := range []string{
		"# Statistical Analysis: `Gender` vs `Purchase`",
		"## 1. Chi-Square Test for Independence",
		"**Chi-Square Statistic**: 20.0000",
		"**Degrees of Freedom**: 1",
		"**are statistically related**",
		"## 2. Cramér's V (Strength of Association)",
		"**Cramér's V**: 1.0000",
		"The association is **strong**",
		"## 3. Visualization",
		"![Stacked Bar Chart](stacked_bar_Gender_vs_Purchase.png)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q\n---\n%s", want, md)
		}
	}
}

func TestMarkdown_NoAssociationConclusions(t *testing.T) {
	res := computedResult(t, [][]int{{5, 5}, {5, 5}})
	md := Markdown("Gender", "Purchase", res, "chart.png")

	if !strings.Contains(md, "No significant relationship between `Gender` and `Purchase`") {
		t.Errorf("expected no-relationship conclusion:\n%s", md)
	}
	if !strings.Contains(md, "very weak or negligible") {
		t.Errorf("expected negligible strength conclusion:\n%s", md)
	}
}

func TestMarkdown_Idempotent(t *testing.T) {
	res := computedResult(t, [][]int{{8, 2}, {3, 7}})

	first := Markdown("A", "B", res, "chart.png")
	second := Markdown("A", "B", res, "chart.png")
	if first != second {
		t.Fatal("expected byte-identical reports for identical input")
	}
}
