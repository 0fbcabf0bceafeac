package instance

import (
	"math"
	"runtime"

	"github.com/lukpank/go-glpk/glpk"
	"github.com/pkg/errors"

	"q.log/tableau/model"
)

// Reader loads an MPS file into a standard-form Problem.
type Reader struct {
	filename string
}

func NewReader(filename string) *Reader {
	return &Reader{
		filename: filename,
	}
}

// ReadProblem parses the MPS file and returns the problem in standard
// equality form: finite non-default variable bounds become constraint rows,
// and every inequality row gets a slack or surplus column. The rhs sign is
// not normalized here; the solvers do that on their own copy.
func (r *Reader) ReadProblem() (*model.Problem, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	lp := glpk.New()
	defer lp.Delete()
	if err := lp.ReadMPS(glpk.MPS_FILE, nil, r.filename); err != nil {
		return nil, errors.Wrapf(err, "reading %s", r.filename)
	}

	numCols := lp.NumCols()
	cVec := make([]float64, 0, numCols)
	for c := 1; c <= numCols; c++ {
		cVec = append(cVec, lp.ObjCoef(c))
	}

	var aVec, rhs []float64
	var signs []string
	for row := 1; row <= lp.NumRows(); row++ {
		rowVec := make([]float64, numCols)
		idxs, vals := lp.MatRow(row)
		for i, v := range idxs {
			if v == 0 {
				continue
			}
			rowVec[v-1] = vals[i]
		}
		switch {
		case lp.RowLB(row) == -math.MaxFloat64:
			signs = append(signs, "<=")
			rhs = append(rhs, lp.RowUB(row))
		case lp.RowUB(row) == math.MaxFloat64:
			signs = append(signs, ">=")
			rhs = append(rhs, lp.RowLB(row))
		default:
			signs = append(signs, "=")
			rhs = append(rhs, lp.RowLB(row))
		}
		aVec = append(aVec, rowVec...)
	}

	for c := 0; c < numCols; c++ {
		if lb := lp.ColLB(c + 1); lb != -math.MaxFloat64 && lb != 0 {
			rowVec := make([]float64, numCols)
			rowVec[c] = 1
			aVec = append(aVec, rowVec...)
			rhs = append(rhs, lb)
			signs = append(signs, ">=")
		}
		if ub := lp.ColUB(c + 1); ub != math.MaxFloat64 && ub != 0 {
			rowVec := make([]float64, numCols)
			rowVec[c] = 1
			aVec = append(aVec, rowVec...)
			rhs = append(rhs, ub)
			signs = append(signs, "<=")
		}
	}

	p, err := model.NewProblem(len(rhs), numCols, aVec, rhs, cVec)
	if err != nil {
		return nil, errors.Wrapf(err, "building problem from %s", r.filename)
	}

	//adds slack and surplus variables so every row is an equality
	for row, sign := range signs {
		if sign == "=" {
			continue
		}
		colVec := make([]float64, p.NumRows)
		if sign == "<=" {
			colVec[row] = 1
		} else {
			colVec[row] = -1
		}
		if err := p.AddCol(colVec, 0); err != nil {
			return nil, err
		}
	}

	return p, nil
}
