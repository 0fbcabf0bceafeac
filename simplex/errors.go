package simplex

import "errors"

var (
	// ErrDegeneratePivot is returned when the chosen pivot entry is
	// numerically indistinguishable from zero. Dividing by it would destroy
	// the accuracy of the basis representation, so the solve attempt fails
	// instead.
	ErrDegeneratePivot = errors.New("simplex: degenerate pivot")

	// ErrIterationLimit is returned when the pivot loop exceeds the safety
	// bound. The first-index tie-breaks are deterministic but not proven
	// cycle-free for degenerate inputs, so the bound turns a potential hang
	// into a reportable failure.
	ErrIterationLimit = errors.New("simplex: iteration limit exceeded")

	// ErrSingularBasis is returned by the revised variant when the current
	// basis matrix cannot be inverted.
	ErrSingularBasis = errors.New("simplex: singular basis matrix")
)
