package app

import (
	"fmt"
	"strings"

	"catstat/domain/contingency"
	"catstat/domain/dataset"
	"catstat/internal"
	"catstat/internal/association"
	"catstat/internal/chart"
	"catstat/internal/config"
	"catstat/internal/report"
)

// AnalysisService runs the full categorical association analysis for a
// column pair and writes the report artifacts.
type AnalysisService struct {
	cfg    *config.Config
	writer *report.AtomicWriter
	logger *internal.Logger
}

// NewAnalysisService creates the service from configuration
func NewAnalysisService(cfg *config.Config, logger *internal.Logger) *AnalysisService {
	return &AnalysisService{
		cfg:    cfg,
		writer: report.NewAtomicWriter(cfg.Output.Dir),
		logger: logger,
	}
}

// Outcome collects the computed statistics and the artifact paths written
type Outcome struct {
	Result       *association.Result
	MarkdownPath string
	ChartPath    string
	PDFPath      string // empty unless PDF output is enabled
}

// Run analyzes colA vs colB over tbl: contingency table, chi-square test,
// Cramér's V, markdown report, stacked percentage bar chart, and optionally
// a PDF bundling both. All statistics and rendered bytes are produced before
// the first file is created, so precondition or computation failures leave
// the output directory untouched.
func (s *AnalysisService) Run(tbl dataset.Table, colA, colB string) (*Outcome, error) {
	ct, err := contingency.FromTable(tbl, colA, colB)
	if err != nil {
		return nil, fmt.Errorf("build contingency table for %q vs %q: %w", colA, colB, err)
	}
	s.logger.Debug("contingency table %dx%d over %d observations", ct.Rows(), ct.Cols(), ct.N)

	res, err := association.Compute(ct)
	if err != nil {
		return nil, fmt.Errorf("compute association for %q vs %q: %w", colA, colB, err)
	}

	title := fmt.Sprintf("Stacked Percentage Bar Chart: %s vs %s", colA, colB)
	png, err := chart.StackedBar(ct, title, axisLabel(colA), "Percentage (%)", chart.Options{
		WidthInches:  s.cfg.Chart.WidthInches,
		HeightInches: s.cfg.Chart.HeightInches,
		DPI:          s.cfg.Chart.DPI,
	})
	if err != nil {
		return nil, fmt.Errorf("render chart for %q vs %q: %w", colA, colB, err)
	}

	names := report.NamesFor(colA, colB)
	md := report.Markdown(colA, colB, res, names.Chart)

	outcome := &Outcome{Result: res}
	if outcome.MarkdownPath, err = s.writer.Write(names.Markdown, []byte(md)); err != nil {
		return nil, err
	}
	s.logger.Info("markdown report saved as %s", outcome.MarkdownPath)

	if outcome.ChartPath, err = s.writer.Write(names.Chart, png); err != nil {
		return nil, err
	}
	s.logger.Info("stacked bar chart saved as %s", outcome.ChartPath)

	if s.cfg.Output.WritePDF {
		pdf, err := report.PDF(md, png)
		if err != nil {
			return nil, fmt.Errorf("assemble pdf for %q vs %q: %w", colA, colB, err)
		}
		if outcome.PDFPath, err = s.writer.Write(names.PDF, pdf); err != nil {
			return nil, err
		}
		s.logger.Info("pdf report saved as %s", outcome.PDFPath)
	}

	return outcome, nil
}

// axisLabel turns a column name into an axis label: underscores become
// spaces and each word is title-cased ("purchase_intent" -> "Purchase
// Intent").
func axisLabel(col string) string {
	words := strings.Fields(strings.ReplaceAll(col, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
