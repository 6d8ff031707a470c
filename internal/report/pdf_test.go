package report

import (
	"bytes"
	"testing"

	"catstat/domain/contingency"
	"catstat/internal/association"
	"catstat/internal/chart"
)

func TestPDF_ProducesDocument(t *testing.T) {
	table, err := contingency.FromCounts(
		[]string{"Male", "Female"},
		[]string{"Yes", "No"},
		[][]int{{5, 0}, {1, 4}},
	)
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	res, err := association.Compute(table)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	png, err := chart.StackedBar(table, "t", "x", "y", chart.Options{WidthInches: 4, HeightInches: 3, DPI: 96})
	if err != nil {
		t.Fatalf("render chart: %v", err)
	}

	md := Markdown("Gender", "Purchase", res, "chart.png")
	pdf, err := PDF(md, png)
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output does not start with PDF header: % x", pdf[:8])
	}
}

func TestPlainLines(t *testing.T) {
	md := "# Title `x`\n\n" +
		"## Section\n\n" +
		"- **Bold**: 1.2345\n" +
		"- plain item\n\n" +
		"**Conclusion:** strong.\n\n" +
		"![Stacked Bar Chart](chart.png)\n"

	lines := plainLines(md)

	want := []pdfLine{
		{text: "Title x", heading: true},
		{text: "Section", heading: true},
		{text: "- Bold: 1.2345"},
		{text: "- plain item"},
		{text: "Conclusion: strong."},
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %+v", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %+v, got %+v", i, want[i], lines[i])
		}
	}
}
