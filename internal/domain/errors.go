package domain

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrFeedUnavailable wraps every failure to read or parse the Luma event export.
	ErrFeedUnavailable = errors.New("luma event feed unavailable")
)
