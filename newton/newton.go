// Package newton finds roots of scalar functions by Newton-Raphson
// iteration.
package newton

import (
	"errors"
	"math"
)

const (
	// derivTol is the minimum derivative magnitude a step will divide by.
	derivTol = 1e-12

	defaultTol    = 1e-10
	maxIterations = 100
)

var (
	// ErrZeroDerivative is returned when the derivative at the current
	// iterate is too small to divide by.
	ErrZeroDerivative = errors.New("newton: derivative vanishes at iterate")

	// ErrNoConvergence is returned when the iteration cap is reached before
	// the residual falls under tolerance.
	ErrNoConvergence = errors.New("newton: no convergence within iteration limit")
)

// Step performs a single Newton update x - f(x)/df(x).
func Step(f, df func(float64) float64, x float64) (float64, error) {
	d := df(x)
	if math.Abs(d) <= derivTol {
		return x, ErrZeroDerivative
	}
	return x - f(x)/d, nil
}

// Solve iterates Step from x0 until |f(x)| <= tol, for at most 100
// iterations. A non-positive tol selects the default of 1e-10.
func Solve(f, df func(float64) float64, x0, tol float64) (float64, error) {
	if tol <= 0 {
		tol = defaultTol
	}
	x := x0
	for i := 0; i < maxIterations; i++ {
		if math.Abs(f(x)) <= tol {
			return x, nil
		}
		next, err := Step(f, df, x)
		if err != nil {
			return x, err
		}
		x = next
	}
	if math.Abs(f(x)) <= tol {
		return x, nil
	}
	return x, ErrNoConvergence
}
