package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// PDF renders the markdown report as plain text lines with the chart image
// embedded below, bundling both artifacts into one document.
func PDF(reportMD string, chartPNG []byte) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; the report text carries "Cramér's"
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	for _, line := range plainLines(reportMD) {
		if line.heading {
			doc.SetFont("Helvetica", "B", 14)
		} else {
			doc.SetFont("Helvetica", "", 11)
		}
		doc.MultiCell(0, 6, tr(line.text), "", "L", false)
		doc.Ln(1)
	}

	if len(chartPNG) > 0 {
		opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		doc.RegisterImageOptionsReader("stacked_bar", opts, bytes.NewReader(chartPNG))
		doc.Ln(4)
		doc.ImageOptions("stacked_bar", 15, 0, 180, 0, true, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("assemble pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type pdfLine struct {
	text    string
	heading bool
}

// plainLines flattens the report's markdown AST into renderable text lines,
// one per block-level node. Inline emphasis is dropped, list items keep a
// dash prefix, and the embedded image reference is omitted (the chart is
// attached separately).
func plainLines(md string) []pdfLine {
	doc := parser.New().Parse([]byte(md))

	var lines []pdfLine
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch n := node.(type) {
		case *ast.Heading:
			lines = append(lines, pdfLine{text: nodeText(n), heading: true})
			return ast.SkipChildren
		case *ast.Paragraph:
			text := nodeText(n)
			if text == "" {
				return ast.SkipChildren
			}
			if _, inList := n.GetParent().(*ast.ListItem); inList {
				text = "- " + text
			}
			lines = append(lines, pdfLine{text: text})
			return ast.SkipChildren
		}
		return ast.GoToNext
	})
	return lines
}

// nodeText concatenates the text and inline-code leaves under a node.
func nodeText(node ast.Node) string {
	var sb strings.Builder
	ast.WalkFunc(node, func(n ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch leaf := n.(type) {
		case *ast.Image:
			return ast.SkipChildren
		case *ast.Text:
			sb.Write(leaf.Literal)
		case *ast.Code:
			sb.Write(leaf.Literal)
		}
		return ast.GoToNext
	})
	return sb.String()
}
