package service

import "errors"

var (
	// ErrNotFound means the id has no matching record.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks input the database was never asked to store.
	// Wrap it with the field-level detail: fmt.Errorf("%w: ...", ErrValidation).
	ErrValidation = errors.New("validation failed")
)
