package models

import "errors"

// Sentinel errors shared by repositories and services. Handlers translate
// these into HTTP status codes at the boundary.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)
