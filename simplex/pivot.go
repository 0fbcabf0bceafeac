package simplex

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Pivot performs one Gauss-Jordan elimination step around entry (q, p):
// row q is scaled so the pivot entry becomes exactly 1, then column p is
// zeroed in every other row, making the entering variable basic in row q.
// The input tableau is left untouched; a fresh tableau is returned so
// callers can keep prior tableaux for diagnostics.
func Pivot(t *mat.Dense, p, q int) (*mat.Dense, error) {
	rows, cols := t.Dims()
	if q < 0 || q >= rows || p < 0 || p >= cols-1 {
		return nil, fmt.Errorf("simplex: pivot (%d, %d) outside %d x %d tableau", q, p, rows, cols)
	}
	piv := t.At(q, p)
	if math.Abs(piv) <= pivotTol {
		return nil, fmt.Errorf("pivot entry %g at (%d, %d): %w", piv, q, p, ErrDegeneratePivot)
	}

	out := mat.DenseCopyOf(t)
	for j := 0; j < cols; j++ {
		out.Set(q, j, t.At(q, j)/piv)
	}
	out.Set(q, p, 1)

	for i := 0; i < rows; i++ {
		if i == q {
			continue
		}
		f := t.At(i, p)
		if f == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			out.Set(i, j, t.At(i, j)-f*out.At(q, j))
		}
		out.Set(i, p, 0)
	}

	return out, nil
}
