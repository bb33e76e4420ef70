package crm

import "errors"

// ErrValidation marks input rejected before any store mutation.
// Callers distinguish it with errors.Is.
var ErrValidation = errors.New("validation")

// ErrNotFound is returned when a contact lookup by id fails on a path
// that does not tolerate dangling references.
var ErrNotFound = errors.New("not found")
