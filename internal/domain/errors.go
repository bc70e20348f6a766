package domain

import "errors"

// Sentinel errors for event operations.
var (
	ErrNotFound           = errors.New("not found")
	ErrDescriptionTooLong = errors.New("description exceeds 200 characters")
)
