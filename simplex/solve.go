package simplex

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"q.log/tableau/model"
)

// Result is the terminal tableau of a solve together with its
// classification. For Infeasible the tableau is the Phase I terminal
// tableau; Objective and Solution are meaningful only when the status is
// Optimal.
type Result struct {
	Status  Status
	Tableau *mat.Dense

	numStructural int
}

// Objective returns the optimal objective value, the negative of the
// objective row's rhs entry.
func (r *Result) Objective() float64 {
	rows, cols := r.Tableau.Dims()
	return -r.Tableau.At(rows-1, cols-1)
}

// Solution returns the values of the structural variables: the rhs entry of
// the row where each variable is basic, zero otherwise.
func (r *Result) Solution() []float64 {
	rows, cols := r.Tableau.Dims()
	x := make([]float64, r.numStructural)
	for j := 0; j < r.numStructural; j++ {
		if i, ok := FindBasicRow(r.Tableau, j); ok && i < rows-1 {
			x[j] = r.Tableau.At(i, cols-1)
		}
	}
	return x
}

// Solve runs the two-phase tableau simplex method on a standard-form
// problem. Phase I minimizes the sum of artificial variables to find a
// feasible basis; Phase II restarts from that basis with the true costs.
// Unbounded and Infeasible are classifications, not errors: the error
// return covers only numerical failures and the iteration cap.
func Solve(p *model.Problem) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p = p.Clone()
	p.Normalize()

	t := newPhaseOneTableau(p.A, p.B, p.NumRows, p.NumCols)
	t, status, err := Iterate(t)
	if err != nil {
		return nil, errors.Wrap(err, "phase I")
	}
	if status == Unbounded {
		return &Result{Status: Unbounded, Tableau: t, numStructural: p.NumCols}, nil
	}

	// The auxiliary optimum is the negated objective rhs entry; a value
	// above tolerance means no feasible point exists.
	rows, cols := t.Dims()
	if t.At(rows-1, cols-1) < -phaseTol {
		return &Result{Status: Infeasible, Tableau: t, numStructural: p.NumCols}, nil
	}

	t, err = driveOutArtificials(t, p.NumCols, p.NumRows)
	if err != nil {
		return nil, errors.Wrap(err, "phase I cleanup")
	}

	t = dropArtificialColumns(t, p.NumCols)
	rebuildObjective(t, p.C)

	t, status, err = Iterate(t)
	if err != nil {
		return nil, errors.Wrap(err, "phase II")
	}
	return &Result{Status: status, Tableau: t, numStructural: p.NumCols}, nil
}

// driveOutArtificials pivots every artificial variable still basic at the
// Phase I optimum out of the basis. An artificial basic in row r sits at
// value zero there, so pivoting on any non-zero structural entry of r
// preserves feasibility regardless of sign. When row r has no usable
// structural entry the constraint is linearly dependent on the others and
// the row is deleted outright.
func driveOutArtificials(t *mat.Dense, numStructural, numArtificial int) (*mat.Dense, error) {
	for {
		changed := false
		for a := numStructural; a < numStructural+numArtificial; a++ {
			r, ok := FindBasicRow(t, a)
			if !ok {
				continue
			}
			rows, _ := t.Dims()
			if r >= rows-1 {
				continue
			}

			s := -1
			for j := 0; j < numStructural; j++ {
				if _, basic := FindBasicRow(t, j); basic {
					continue
				}
				if v := t.At(r, j); v > zeroTol || v < -zeroTol {
					s = j
					break
				}
			}

			if s == -1 {
				t = deleteRow(t, r)
			} else {
				next, err := Pivot(t, s, r)
				if err != nil {
					return nil, err
				}
				t = next
			}
			changed = true
		}
		if !changed {
			return t, nil
		}
	}
}

// rebuildObjective overwrites the objective row with reduced costs derived
// from the true cost vector against whatever basis survived Phase I: for
// each column the basic-row cost contributions are subtracted from its
// cost, and the objective rhs entry becomes the negated cost of the current
// basic solution. The surviving basis is not necessarily the identity, so
// the row cannot simply be copied from c.
func rebuildObjective(t *mat.Dense, c *mat.Dense) {
	rows, cols := t.Dims()
	m := rows - 1
	n := cols - 1

	cb := make([]float64, m)
	for j := 0; j < n; j++ {
		if i, ok := FindBasicRow(t, j); ok && i < m {
			cb[i] = c.At(0, j)
		}
	}

	for j := 0; j < n; j++ {
		red := c.At(0, j)
		for i := 0; i < m; i++ {
			red -= cb[i] * t.At(i, j)
		}
		t.Set(m, j, red)
	}

	obj := float64(0)
	for i := 0; i < m; i++ {
		obj -= cb[i] * t.At(i, n)
	}
	t.Set(m, n, obj)
}
