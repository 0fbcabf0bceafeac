// Package simplex solves linear programs in standard form with a two-phase
// tableau simplex method, plus a revised (basis-matrix) variant.
//
// A tableau is a dense (m+1) x (n+1) matrix: m constraint rows, one
// objective row of reduced costs, n variable columns and one rhs column.
// The objective row's rhs entry holds the negative of the current objective
// value. The basis is implicit: a variable is basic exactly when its column
// is a unit vector, recovered via FindBasicRow rather than stored alongside
// the tableau.
package simplex

import (
	"gonum.org/v1/gonum/mat"
)

const (
	// zeroTol classifies tableau entries as zero in unit-column checks.
	zeroTol = 1e-9
	// pivotTol is the minimum usable pivot magnitude.
	pivotTol = 1e-9
	// costTol is the optimality tolerance on reduced costs.
	costTol = 1e-9
	// ratioTol is the strict-positivity threshold in the ratio test.
	ratioTol = 1e-9
	// phaseTol bounds the auxiliary objective at a feasible optimum.
	phaseTol = 1e-7

	maxIterations = 10000
)

// Status classifies the terminal outcome of a solve.
type Status int

const (
	Optimal Status = iota
	Unbounded
	Infeasible
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Unbounded:
		return "unbounded"
	case Infeasible:
		return "infeasible"
	}
	return "unknown"
}

// newPhaseOneTableau lays out the auxiliary feasibility tableau for a
// normalized problem: structural columns, an identity block of one
// artificial column per constraint row, and b as the rhs column. The
// auxiliary objective (minimize the sum of artificials) is derived
// algebraically: each structural entry is the negated column sum over
// constraint rows, artificial entries are zero, and the objective rhs entry
// is the negated sum of b.
func newPhaseOneTableau(a *mat.Dense, b *mat.Dense, numRows, numCols int) *mat.Dense {
	t := mat.NewDense(numRows+1, numCols+numRows+1, nil)
	for i := 0; i < numRows; i++ {
		for j := 0; j < numCols; j++ {
			t.Set(i, j, a.At(i, j))
		}
		t.Set(i, numCols+i, 1)
		t.Set(i, numCols+numRows, b.At(i, 0))
	}

	for j := 0; j < numCols; j++ {
		sum := float64(0)
		for i := 0; i < numRows; i++ {
			sum += a.At(i, j)
		}
		t.Set(numRows, j, -sum)
	}
	sum := float64(0)
	for i := 0; i < numRows; i++ {
		sum += b.At(i, 0)
	}
	t.Set(numRows, numCols+numRows, -sum)

	return t
}

// FindBasicRow reports the row in which variable col is basic. A variable
// counts as basic only when its column, objective row included, has exactly
// one non-zero entry and that entry equals 1 within tolerance; any other
// pattern reports not basic rather than guessing.
func FindBasicRow(t *mat.Dense, col int) (int, bool) {
	rows, _ := t.Dims()
	row := -1
	for i := 0; i < rows; i++ {
		v := t.At(i, col)
		if v > -zeroTol && v < zeroTol {
			continue
		}
		if row != -1 {
			return 0, false
		}
		if v < 1-zeroTol || v > 1+zeroTol {
			return 0, false
		}
		row = i
	}
	if row == -1 {
		return 0, false
	}
	return row, true
}

// deleteRow builds a new tableau without constraint row r.
func deleteRow(t *mat.Dense, r int) *mat.Dense {
	rows, cols := t.Dims()
	out := mat.NewDense(rows-1, cols, nil)
	for i := 0; i < rows; i++ {
		if i == r {
			continue
		}
		to := i
		if i > r {
			to = i - 1
		}
		for j := 0; j < cols; j++ {
			out.Set(to, j, t.At(i, j))
		}
	}
	return out
}

// dropArtificialColumns builds the narrower Phase II tableau holding only
// the structural columns and the rhs column.
func dropArtificialColumns(t *mat.Dense, numStructural int) *mat.Dense {
	rows, cols := t.Dims()
	out := mat.NewDense(rows, numStructural+1, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < numStructural; j++ {
			out.Set(i, j, t.At(i, j))
		}
		out.Set(i, numStructural, t.At(i, cols-1))
	}
	return out
}
