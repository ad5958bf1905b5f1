package services

import "errors"

// Define common service errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict") // e.g., duplicate email, duplicate application
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidState       = errors.New("invalid state for operation")
	ErrInvalidStatus      = errors.New("invalid status value")
)
