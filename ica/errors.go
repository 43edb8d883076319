package ica

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by the ica package. Match with errors.Is.
var (
	// ErrNilData indicates a nil or empty observation matrix.
	ErrNilData = errors.New("ica: observation data is nil or empty")

	// ErrZeroStdDev indicates a column with zero standard deviation under Standardize.
	// The concrete error is a *ZeroStdDevError carrying the column index.
	ErrZeroStdDev = errors.New("ica: zero standard deviation")

	// ErrNotComputed indicates that results were requested before Compute succeeded.
	ErrNotComputed = errors.New("ica: analysis has not been computed")

	// ErrTooManyComponents indicates a component count above the number of variables.
	ErrTooManyComponents = errors.New("ica: more components requested than variables")

	// ErrDimensionMismatch indicates input whose width does not match the trained model.
	ErrDimensionMismatch = errors.New("ica: dimension mismatch")

	// ErrBadOption indicates an invalid configuration value.
	ErrBadOption = errors.New("ica: invalid option")

	// ErrStaleComponent indicates a Component obtained before the latest Compute.
	ErrStaleComponent = errors.New("ica: component belongs to a previous computation")
)

// ZeroStdDevError reports the column that cannot be standardized.
type ZeroStdDevError struct {
	Column int
}

// Error implements error.
func (e *ZeroStdDevError) Error() string {
	return fmt.Sprintf("ica: column %d has zero standard deviation", e.Column)
}

// Is makes errors.Is(err, ErrZeroStdDev) hold for any *ZeroStdDevError.
func (e *ZeroStdDevError) Is(target error) bool {
	return target == ErrZeroStdDev
}

// icaErrorf tags err with the failing operation, preserving it for errors.Is/As.
func icaErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
