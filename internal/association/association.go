package association

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"catstat/domain/contingency"
	"catstat/domain/core"
)

// SignificanceLevel is the fixed p-value cutoff for the relatedness
// conclusion.
const SignificanceLevel = 0.05

// Strength classifies Cramér's V into the conventional bands
type Strength string

const (
	StrengthNegligible Strength = "negligible"
	StrengthWeak       Strength = "weak"
	StrengthModerate   Strength = "moderate"
	StrengthStrong     Strength = "strong"
)

// Result holds the outcome of a Pearson chi-square test of independence
// between two categorical variables, plus the Cramér's V effect size.
// Computed once from a contingency table and never mutated.
type Result struct {
	ChiSquare        float64
	PValue           float64
	DegreesOfFreedom int
	CramersV         float64
	Expected         [][]float64
	N                int
}

// Compute runs the chi-square test of independence over a contingency table.
//
// Expected counts follow the independence null hypothesis:
// expected[i][j] = rowTotal[i] * colTotal[j] / N. A zero expected cell means
// an empty marginal, which Build already rejects; it is still defended
// against and reported as ErrZeroExpectedCell rather than patched with an
// epsilon denominator.
func Compute(t *contingency.Table) (*Result, error) {
	rows, cols := t.Rows(), t.Cols()
	rowTotals := t.RowTotals()
	colTotals := t.ColTotals()
	n := float64(t.N)

	chiSq := 0.0
	expected := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		expected[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			e := float64(rowTotals[i]*colTotals[j]) / n
			if e == 0 {
				return nil, core.NewZeroExpectedCellError(i, j)
			}
			expected[i][j] = e

			d := float64(t.Counts[i][j]) - e
			chiSq += d * d / e
		}
	}

	dof := (rows - 1) * (cols - 1)
	dist := distuv.ChiSquared{K: float64(dof)}
	pValue := dist.Survival(chiSq)

	// Cramér's V = sqrt(χ² / (N * (min(R,C) - 1))), clamped against
	// floating-point overshoot so the [0,1] invariant holds exactly.
	v := math.Sqrt(chiSq / (n * float64(min(rows, cols)-1)))
	if v > 1 {
		v = 1
	}

	return &Result{
		ChiSquare:        chiSq,
		PValue:           pValue,
		DegreesOfFreedom: dof,
		CramersV:         v,
		Expected:         expected,
		N:                t.N,
	}, nil
}

// Related reports whether the variables are statistically related at the
// fixed 0.05 significance level.
func (r *Result) Related() bool {
	return r.PValue < SignificanceLevel
}

// Strength returns the association strength band for the Cramér's V value:
// [0, 0.1) negligible, [0.1, 0.3) weak, [0.3, 0.5) moderate, [0.5, 1] strong.
func (r *Result) Strength() Strength {
	switch {
	case r.CramersV < 0.1:
		return StrengthNegligible
	case r.CramersV < 0.3:
		return StrengthWeak
	case r.CramersV < 0.5:
		return StrengthModerate
	default:
		return StrengthStrong
	}
}
