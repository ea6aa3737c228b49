package apperrors

import "errors"

// ErrNotFound indicates that a referenced resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrInvalidEvent indicates a malformed or out-of-domain change event
// (non-positive amount, missing identifier). Such events are dropped with a
// logged reason and never retried.
var ErrInvalidEvent = errors.New("invalid event")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")
