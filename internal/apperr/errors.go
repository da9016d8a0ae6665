// Package apperr defines the sentinel errors shared across service and
// store layers. Handlers match them with errors.Is and map them to HTTP
// status codes.
package apperr

import "errors"

var (
	// common
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	// auth
	ErrDuplicateUsername = errors.New("username already registered")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrInvalidToken      = errors.New("invalid token")
	ErrUnauthorized      = errors.New("unauthorized")

	// shop
	ErrDuplicateName     = errors.New("name already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
)
