package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"catstat/domain/contingency"
)

// Options controls chart geometry. Zero values fall back to 9x5 inches at
// 300 DPI.
type Options struct {
	WidthInches  float64
	HeightInches float64
	DPI          int
}

func (o Options) withDefaults() Options {
	if o.WidthInches <= 0 {
		o.WidthInches = 9
	}
	if o.HeightInches <= 0 {
		o.HeightInches = 5
	}
	if o.DPI <= 0 {
		o.DPI = 300
	}
	return o
}

// StackedBar renders a percentage-stacked bar chart of the contingency table
// as PNG bytes. One bar per row category; segments are the column categories
// stacked by grand-total percentage, labeled with row-normalized percentages.
func StackedBar(t *contingency.Table, title, xLabel, yLabel string, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := StackedBarTo(&buf, t, title, xLabel, yLabel, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// StackedBarTo renders the chart into w. Each call builds its own plot and
// canvas, so successive renders cannot contaminate one another.
func StackedBarTo(w io.Writer, t *contingency.Table, title, xLabel, yLabel string, opts Options) error {
	opts = opts.withDefaults()

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.NominalX(t.RowLabels...)
	p.Legend.Top = true
	p.Legend.Padding = vg.Points(4)

	heights := t.GrandPercentages()
	palette := bluesPalette(t.Cols())

	var prev *plotter.BarChart
	for j := 0; j < t.Cols(); j++ {
		vals := make(plotter.Values, t.Rows())
		for i := range vals {
			vals[i] = heights[i][j]
		}
		bars, err := plotter.NewBarChart(vals, vg.Points(40))
		if err != nil {
			return fmt.Errorf("build bar series %q: %w", t.ColLabels[j], err)
		}
		bars.Color = palette[j]
		bars.LineStyle.Color = color.Black
		bars.LineStyle.Width = vg.Points(0.5)
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(t.ColLabels[j], bars)
		prev = bars
	}

	points, texts, err := segmentLabels(t)
	if err != nil {
		return err
	}
	if len(points) > 0 {
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: texts})
		if err != nil {
			return fmt.Errorf("build segment labels: %w", err)
		}
		for i := range labels.TextStyle {
			labels.TextStyle[i].XAlign = text.XCenter
			labels.TextStyle[i].YAlign = text.YCenter
		}
		p.Add(labels)
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(vg.Length(opts.WidthInches)*vg.Inch, vg.Length(opts.HeightInches)*vg.Inch),
		vgimg.UseDPI(opts.DPI),
	)
	p.Draw(draw.New(canvas))

	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("encode chart png: %w", err)
	}
	return nil
}

// segmentLabels derives in-segment label positions and texts. Positions are
// keyed by the categorical (row, column) cell index, never by drawn
// geometry: X is the row's nominal index, Y the midpoint of the cell's
// stacked span. Zero-count segments get no label.
func segmentLabels(t *contingency.Table) (plotter.XYs, []string, error) {
	heights := t.GrandPercentages()
	rowPct := t.RowPercentages()

	var points plotter.XYs
	var texts []string
	cumulative := make([]float64, t.Rows())

	for j := 0; j < t.Cols(); j++ {
		for i := 0; i < t.Rows(); i++ {
			h := heights[i][j]
			if t.Counts[i][j] > 0 {
				pct, err := stats.Round(rowPct[i][j], 1)
				if err != nil {
					return nil, nil, fmt.Errorf("round label for cell (%d,%d): %w", i, j, err)
				}
				points = append(points, plotter.XY{X: float64(i), Y: cumulative[i] + h/2})
				texts = append(texts, fmt.Sprintf("%.1f%%", pct))
			}
			cumulative[i] += h
		}
	}
	return points, texts, nil
}

// bluesPalette returns a light-to-dark single-hue sequential ramp
// (ColorBrewer Blues endpoints), one color per column category. Ordering is
// stable for a given column order, so repeated renders match.
func bluesPalette(n int) []color.Color {
	light := [3]float64{222, 235, 247}
	dark := [3]float64{8, 48, 107}

	out := make([]color.Color, n)
	for i := 0; i < n; i++ {
		f := 0.0
		if n > 1 {
			f = float64(i) / float64(n-1)
		}
		out[i] = color.RGBA{
			R: uint8(light[0] + (dark[0]-light[0])*f),
			G: uint8(light[1] + (dark[1]-light[1])*f),
			B: uint8(light[2] + (dark[2]-light[2])*f),
			A: 255,
		}
	}
	return out
}
