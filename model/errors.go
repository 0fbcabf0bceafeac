package model

import "errors"

var (
	// ErrDimensionMismatch is returned when the shapes of A, b and c are
	// inconsistent with the declared row and column counts.
	ErrDimensionMismatch = errors.New("model: dimension mismatch")

	// ErrNonFinite is returned when an input entry is NaN or infinite.
	ErrNonFinite = errors.New("model: non-finite entry")
)
