package simplex

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"q.log/tableau/model"
)

// bigM is the artificial-variable cost in the revised variant, large enough
// to force artificials out of any feasible basis.
const bigM = 1e5

// RevisedResult is the outcome of the basis-matrix variant. X and Objective
// are meaningful only when the status is Optimal.
type RevisedResult struct {
	Status    Status
	X         []float64
	Objective float64
}

// SolveRevised solves the problem with the revised simplex method: the
// basis is kept as an explicit column matrix and repriced through its
// inverse each iteration instead of carrying a full tableau. Artificial
// variables enter with cost bigM and form the initial basis; any artificial
// left at a positive level in the optimal basis certifies infeasibility.
//
// Entering selection takes the first variable with a negative reduced cost;
// ratio-test ties go to the lowest basis index.
func SolveRevised(p *model.Problem) (*RevisedResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p = p.Clone()
	p.Normalize()
	numStructural := p.NumCols

	basis := make([]int, p.NumRows)
	basic := make([]bool, p.NumCols+p.NumRows)
	for r := 0; r < p.NumRows; r++ {
		col := make([]float64, p.NumRows)
		col[r] = 1
		if err := p.AddCol(col, bigM); err != nil {
			return nil, err
		}
		basis[r] = numStructural + r
		basic[numStructural+r] = true
	}

	m := p.NumRows
	xb := make([]float64, m)
	cb := make([]float64, m)
	for i, idx := range basis {
		cb[i] = p.C.At(0, idx)
	}

	for _i := 0; _i < maxIterations; _i++ {
		bMat := extractColumns(p.A, basis)
		var inv mat.Dense
		if err := inv.Inverse(bMat); err != nil {
			return nil, errors.Wrap(ErrSingularBasis, err.Error())
		}

		var xbMat mat.Dense
		xbMat.Mul(&inv, p.B)
		for i := 0; i < m; i++ {
			xb[i] = xbMat.At(i, 0)
			if xb[i] < 0 && xb[i] > -ratioTol {
				xb[i] = 0
			}
		}

		// pricing: y = cb B^-1, reduced cost c_j - y a_j
		cbMat := mat.NewDense(1, m, cb)
		var dual mat.Dense
		dual.Mul(cbMat, &inv)

		entering := -1
		for j := 0; j < p.NumCols; j++ {
			if basic[j] {
				continue
			}
			if p.C.At(0, j)-mat.Dot(dual.RowView(0), p.A.ColView(j)) < -costTol {
				entering = j
				break
			}
		}
		if entering == -1 {
			return revisedResult(p, numStructural, basis, xb), nil
		}

		var u mat.Dense
		u.Mul(&inv, p.A.ColView(entering))

		leaving := -1
		minRatio := math.MaxFloat64
		for i := 0; i < m; i++ {
			d := u.At(i, 0)
			if d <= ratioTol {
				continue
			}
			ratio := xb[i] / d
			if ratio < minRatio-costTol ||
				(leaving != -1 && math.Abs(ratio-minRatio) <= costTol && basis[i] < basis[leaving]) {
				minRatio = ratio
				leaving = i
			}
		}
		if leaving == -1 {
			return &RevisedResult{Status: Unbounded}, nil
		}

		basic[basis[leaving]] = false
		basic[entering] = true
		basis[leaving] = entering
		cb[leaving] = p.C.At(0, entering)
	}

	return nil, ErrIterationLimit
}

func revisedResult(p *model.Problem, numStructural int, basis []int, xb []float64) *RevisedResult {
	x := make([]float64, numStructural)
	obj := float64(0)
	for i, idx := range basis {
		if idx >= numStructural {
			if xb[i] > phaseTol {
				return &RevisedResult{Status: Infeasible}
			}
			continue
		}
		x[idx] = xb[i]
		obj += xb[i] * p.C.At(0, idx)
	}
	return &RevisedResult{Status: Optimal, X: x, Objective: obj}
}

// extractColumns builds a new matrix from the columns of a listed in cols.
func extractColumns(a *mat.Dense, cols []int) *mat.Dense {
	r, _ := a.Dims()
	sub := mat.NewDense(r, len(cols), nil)
	col := make([]float64, r)
	for j, idx := range cols {
		mat.Col(col, idx, a)
		sub.SetCol(j, col)
	}
	return sub
}
