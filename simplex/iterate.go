package simplex

import (
	"gonum.org/v1/gonum/mat"
)

type pivotChoice int

const (
	pivotContinue pivotChoice = iota
	pivotOptimal
	pivotUnbounded
)

// selectPivot picks the next pivot position. The entering column is the
// first column attaining the most negative reduced cost (Dantzig's rule,
// lowest index on ties). The leaving row is the first row attaining the
// minimum ratio rhs[k] / t[k][p] over rows with a strictly positive entry
// in the entering column. Both tie-breaks are fixed so runs are
// reproducible; neither is proven cycle-free for degenerate inputs.
func selectPivot(t *mat.Dense) (p, q int, choice pivotChoice) {
	rows, cols := t.Dims()
	m := rows - 1
	rhs := cols - 1

	p = -1
	best := -costTol
	for j := 0; j < rhs; j++ {
		if v := t.At(m, j); v < best {
			best = v
			p = j
		}
	}
	if p == -1 {
		return 0, 0, pivotOptimal
	}

	q = -1
	minRatio := 0.0
	for k := 0; k < m; k++ {
		d := t.At(k, p)
		if d <= ratioTol {
			continue
		}
		ratio := t.At(k, rhs) / d
		if q == -1 || ratio < minRatio {
			minRatio = ratio
			q = k
		}
	}
	if q == -1 {
		return p, 0, pivotUnbounded
	}

	return p, q, pivotContinue
}

// Iterate pivots the tableau until the selector declares it optimal or
// unbounded, returning the terminal tableau. The loop is capped at
// maxIterations pivots; exceeding the cap fails with ErrIterationLimit.
func Iterate(t *mat.Dense) (*mat.Dense, Status, error) {
	for _i := 0; _i < maxIterations; _i++ {
		p, q, choice := selectPivot(t)
		switch choice {
		case pivotOptimal:
			return t, Optimal, nil
		case pivotUnbounded:
			return t, Unbounded, nil
		}

		next, err := Pivot(t, p, q)
		if err != nil {
			return t, Optimal, err
		}
		t = next
	}
	return t, Optimal, ErrIterationLimit
}
