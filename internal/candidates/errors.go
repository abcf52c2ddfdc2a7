package candidates

import "errors"

var (
	// ErrNotFound indicates the candidate does not exist for this owner.
	ErrNotFound = errors.New("candidate not found")
	// ErrInvalidInput indicates missing or malformed caller input.
	ErrInvalidInput = errors.New("invalid input")
)
