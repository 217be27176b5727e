package spine

import "errors"

// Loading and submission errors.
var (
	// ErrLoadFailed wraps the error returned by an asynchronous Resolver.
	// A renderer whose load failed stays unloaded for its lifetime.
	ErrLoadFailed = errors.New("spine: skeleton data resolution failed")

	// ErrNilData is returned when a Resolver reports success without data.
	ErrNilData = errors.New("spine: resolver returned nil skeleton data")

	// ErrNilSubmitter is returned by Draw when no submitter is given.
	ErrNilSubmitter = errors.New("spine: submitter is nil")
)
