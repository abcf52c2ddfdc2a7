package jobs

import "errors"

var (
	// ErrNotFound indicates the job does not exist for this owner.
	ErrNotFound = errors.New("job not found")
	// ErrInvalidInput indicates missing or malformed caller input.
	ErrInvalidInput = errors.New("invalid input")
)
