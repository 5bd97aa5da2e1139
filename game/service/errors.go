package service

import "errors"

// Errors shared by the service and its storage backends. Transports map them
// to status codes with errors.Is.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrConfigNotFound  = errors.New("configuration not found")
	ErrOutOfBounds     = errors.New("position out of bounds")
	ErrInvalidInput    = errors.New("invalid input")
)
