package models

import "errors"

// Failure classes the API distinguishes. Services wrap these so controllers
// can map them to HTTP statuses with errors.Is.
var (
	ErrValidation        = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("you do not have permission")
	ErrInvalidTransition = errors.New("illegal status transition")
	ErrPersistence       = errors.New("storage failure")
	ErrAuth              = errors.New("invalid credentials")
)
