package service

import "errors"

// Failure modes of the session state machine. Every failure is terminal for
// that single operation; callers re-initiate, nothing is retried.
var (
	// ErrPermissionDenied means the client reported that location
	// permission was not granted.
	ErrPermissionDenied = errors.New("location permission denied")

	// ErrLocationUnavailable means a location fix could not be obtained
	// or the reported coordinates were out of range.
	ErrLocationUnavailable = errors.New("location unavailable")

	// ErrMissingStartLocation means stop was invoked without a prior
	// successful start.
	ErrMissingStartLocation = errors.New("no start location recorded")

	// ErrAlreadyTracking means start was invoked while a session is
	// already active.
	ErrAlreadyTracking = errors.New("session already tracking")
)
