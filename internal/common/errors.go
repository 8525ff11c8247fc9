// Package common defines sentinel errors and small helpers shared by the
// backend layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// repository specific errors
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// request validation
	ErrValidation = errors.New("validation error")
)
