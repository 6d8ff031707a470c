package contingency

import (
	"catstat/domain/core"
	"catstat/domain/dataset"
)

// Pair is one paired observation of two categorical values.
type Pair struct {
	A string
	B string
}

// Table is a cross-tabulation of two categorical variables. Counts[i][j] is
// the number of observations with row category i and column category j.
// Category order is first-seen order, stable across identical inputs.
//
// INVARIANTS:
// - len(RowLabels) >= 2 and len(ColLabels) >= 2
// - sum of all Counts cells == N, and N > 0
type Table struct {
	RowLabels []string
	ColLabels []string
	Counts    [][]int
	N         int
}

// Build cross-tabulates paired categorical observations into a count matrix.
// Returns ErrEmptyInput for an empty sequence and ErrDegenerateTable when
// either variable has fewer than two distinct categories.
func Build(pairs []Pair) (*Table, error) {
	if len(pairs) == 0 {
		return nil, core.ErrEmptyInput
	}

	rowIndex := make(map[string]int)
	colIndex := make(map[string]int)
	var rowLabels, colLabels []string

	for _, p := range pairs {
		if _, seen := rowIndex[p.A]; !seen {
			rowIndex[p.A] = len(rowLabels)
			rowLabels = append(rowLabels, p.A)
		}
		if _, seen := colIndex[p.B]; !seen {
			colIndex[p.B] = len(colLabels)
			colLabels = append(colLabels, p.B)
		}
	}

	if len(rowLabels) < 2 {
		return nil, core.NewDegenerateTableError("row", len(rowLabels))
	}
	if len(colLabels) < 2 {
		return nil, core.NewDegenerateTableError("column", len(colLabels))
	}

	counts := make([][]int, len(rowLabels))
	for i := range counts {
		counts[i] = make([]int, len(colLabels))
	}
	for _, p := range pairs {
		counts[rowIndex[p.A]][colIndex[p.B]]++
	}

	return &Table{
		RowLabels: rowLabels,
		ColLabels: colLabels,
		Counts:    counts,
		N:         len(pairs),
	}, nil
}

// FromTable builds a contingency table from two named columns of a tabular
// data source.
func FromTable(tbl dataset.Table, colA, colB string) (*Table, error) {
	a, ok := tbl.Column(colA)
	if !ok {
		return nil, core.NewColumnNotFoundError(colA)
	}
	b, ok := tbl.Column(colB)
	if !ok {
		return nil, core.NewColumnNotFoundError(colB)
	}
	if len(a) != len(b) {
		return nil, core.NewColumnMismatchError(colA, len(a), colB, len(b))
	}

	pairs := make([]Pair, len(a))
	for i := range a {
		pairs[i] = Pair{A: a[i], B: b[i]}
	}
	return Build(pairs)
}

// FromCounts builds a table directly from a count matrix. Intended for
// callers that already hold cross-tabulated data.
func FromCounts(rowLabels, colLabels []string, counts [][]int) (*Table, error) {
	if len(rowLabels) < 2 {
		return nil, core.NewDegenerateTableError("row", len(rowLabels))
	}
	if len(colLabels) < 2 {
		return nil, core.NewDegenerateTableError("column", len(colLabels))
	}

	n := 0
	for i := range counts {
		for j := range counts[i] {
			n += counts[i][j]
		}
	}
	if n == 0 {
		return nil, core.ErrEmptyInput
	}

	return &Table{
		RowLabels: rowLabels,
		ColLabels: colLabels,
		Counts:    counts,
		N:         n,
	}, nil
}

// Rows returns the number of row categories
func (t *Table) Rows() int {
	return len(t.RowLabels)
}

// Cols returns the number of column categories
func (t *Table) Cols() int {
	return len(t.ColLabels)
}

// RowTotals returns the marginal total of each row
func (t *Table) RowTotals() []int {
	totals := make([]int, t.Rows())
	for i := range t.Counts {
		for _, c := range t.Counts[i] {
			totals[i] += c
		}
	}
	return totals
}

// ColTotals returns the marginal total of each column
func (t *Table) ColTotals() []int {
	totals := make([]int, t.Cols())
	for i := range t.Counts {
		for j, c := range t.Counts[i] {
			totals[j] += c
		}
	}
	return totals
}

// GrandPercentages returns each cell as a percentage of the grand total N.
// Used for stacked bar segment heights.
func (t *Table) GrandPercentages() [][]float64 {
	out := make([][]float64, t.Rows())
	for i := range t.Counts {
		out[i] = make([]float64, t.Cols())
		for j, c := range t.Counts[i] {
			out[i][j] = float64(c) / float64(t.N) * 100
		}
	}
	return out
}

// RowPercentages returns each cell as a percentage of its own row total, so
// every row sums to 100. Used for in-segment label text.
func (t *Table) RowPercentages() [][]float64 {
	totals := t.RowTotals()
	out := make([][]float64, t.Rows())
	for i := range t.Counts {
		out[i] = make([]float64, t.Cols())
		if totals[i] == 0 {
			continue
		}
		for j, c := range t.Counts[i] {
			out[i][j] = float64(c) / float64(totals[i]) * 100
		}
	}
	return out
}
