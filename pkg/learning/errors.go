package learning

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFitted is returned by predictions made before Fit.
	ErrNotFitted = errors.New("predictor is not fitted")
	// ErrEmptyDataset is returned by Fit when given no examples.
	ErrEmptyDataset = errors.New("no training examples")
	// ErrEmptyQuery is returned for an empty prediction batch.
	ErrEmptyQuery = errors.New("empty query batch")
	// ErrLengthMismatch is matched by every *LengthMismatchError.
	ErrLengthMismatch = errors.New("length mismatch")
)

// LengthMismatchError reports prediction and label slices of different lengths.
type LengthMismatchError struct {
	Predictions int
	Actual      int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("expected predictions and actual to be same length but got pred=%d and actual=%d",
		e.Predictions, e.Actual)
}

// Is reports whether target is ErrLengthMismatch.
func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}
