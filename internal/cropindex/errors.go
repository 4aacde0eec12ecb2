package cropindex

import "errors"

var (
	// ErrEncoding means the fitted transform rejected the input record
	// (e.g. a categorical level it was never fitted on). Callers treat
	// this as a missing-profile case, not a crash.
	ErrEncoding = errors.New("failed to encode feature vector")

	// ErrUnavailable means the artifact bundle could not be loaded or is
	// internally inconsistent. Startup-time only; fatal.
	ErrUnavailable = errors.New("crop index unavailable")

	// ErrDimensionMismatch means a query vector does not match the width
	// the index was built with.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
)
