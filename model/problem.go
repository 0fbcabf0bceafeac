package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Problem is a linear program in standard form:
//
//	minimize  c'x
//	s.t.      Ax = b, x >= 0
//
// The triple is treated as immutable by the solvers: they clone before
// normalizing or growing it.
type Problem struct {
	//C objective function coefficients, 1 x NumCols
	C *mat.Dense

	//A constraints matrix, NumRows x NumCols
	A *mat.Dense

	//B constraints rhs, NumRows x 1
	B *mat.Dense

	NumRows int
	NumCols int
}

// NewProblem builds a Problem from row-major constraint data and the rhs and
// cost vectors. It rejects inconsistent shapes and non-finite entries before
// any solver state is built.
func NewProblem(numRows, numCols int, aVec, bVec, cVec []float64) (*Problem, error) {
	if numRows <= 0 || numCols <= 0 {
		return nil, ErrDimensionMismatch
	}
	if len(aVec) != numRows*numCols {
		return nil, fmt.Errorf("A is %d entries, want %d*%d: %w", len(aVec), numRows, numCols, ErrDimensionMismatch)
	}
	if len(bVec) != numRows {
		return nil, fmt.Errorf("b is length %d, want %d: %w", len(bVec), numRows, ErrDimensionMismatch)
	}
	if len(cVec) != numCols {
		return nil, fmt.Errorf("c is length %d, want %d: %w", len(cVec), numCols, ErrDimensionMismatch)
	}
	for _, vec := range [][]float64{aVec, bVec, cVec} {
		for _, v := range vec {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNonFinite
			}
		}
	}

	return &Problem{
		C:       mat.NewDense(1, numCols, append([]float64(nil), cVec...)),
		A:       mat.NewDense(numRows, numCols, append([]float64(nil), aVec...)),
		B:       mat.NewDense(numRows, 1, append([]float64(nil), bVec...)),
		NumRows: numRows,
		NumCols: numCols,
	}, nil
}

// Validate checks that the stored matrices agree with the declared row and
// column counts. NewProblem guarantees this; Validate covers hand-built
// Problem values handed straight to a solver.
func (p *Problem) Validate() error {
	ar, ac := p.A.Dims()
	br, bc := p.B.Dims()
	cr, cc := p.C.Dims()
	if ar != p.NumRows || ac != p.NumCols ||
		br != p.NumRows || bc != 1 ||
		cr != 1 || cc != p.NumCols {
		return ErrDimensionMismatch
	}
	return nil
}

// Clone returns an independent copy of the problem.
func (p *Problem) Clone() *Problem {
	return &Problem{
		C:       mat.DenseCopyOf(p.C),
		A:       mat.DenseCopyOf(p.A),
		B:       mat.DenseCopyOf(p.B),
		NumRows: p.NumRows,
		NumCols: p.NumCols,
	}
}

// AddCol appends one column to A with objective coefficient coef. Used to
// grow slack, surplus and artificial variables onto a problem copy.
func (p *Problem) AddCol(cVec []float64, coef float64) error {
	if len(cVec) != p.NumRows {
		return fmt.Errorf("column is length %d, want %d: %w", len(cVec), p.NumRows, ErrDimensionMismatch)
	}

	p.A = mat.DenseCopyOf(p.A.Grow(0, 1))
	p.A.SetCol(p.NumCols, cVec)

	p.C = mat.DenseCopyOf(p.C.Grow(0, 1))
	p.C.Set(0, p.NumCols, coef)

	p.NumCols++
	return nil
}

// MultiplyConstraint scales constraint row and its rhs entry by mul.
func (p *Problem) MultiplyConstraint(row int, mul float64) error {
	if row < 0 || row >= p.NumRows {
		return fmt.Errorf("row %d of %d: %w", row, p.NumRows, ErrDimensionMismatch)
	}

	for col := 0; col < p.NumCols; col++ {
		p.A.Set(row, col, p.A.At(row, col)*mul)
	}
	p.B.Set(row, 0, p.B.At(row, 0)*mul)
	return nil
}

// Normalize flips the sign of every constraint row whose rhs entry is
// negative, so that b >= 0 holds entry-wise. Applied once, before any
// tableau is built.
func (p *Problem) Normalize() {
	for r := 0; r < p.NumRows; r++ {
		if p.B.At(r, 0) < 0 {
			p.MultiplyConstraint(r, -1)
		}
	}
}

func (p *Problem) PrintC() {
	caux := mat.Formatted(p.C, mat.Prefix("    "), mat.Squeeze())
	fmt.Printf("c = %v\n", caux)
}

func (p *Problem) PrintB() {
	caux := mat.Formatted(p.B, mat.Prefix("    "), mat.Squeeze())
	fmt.Printf("b = %v\n", caux)
}

func (p *Problem) PrintA() {
	caux := mat.Formatted(p.A, mat.Prefix("    "), mat.Squeeze())
	fmt.Printf("A = %v\n", caux)
}
