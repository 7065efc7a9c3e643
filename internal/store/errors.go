package store

import "errors"

// Sentinel errors surfaced by repository operations. Operations wrap
// these with detail; callers match with errors.Is.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrBadCredential  = errors.New("invalid credential")
	ErrValidation     = errors.New("invalid input")
)
