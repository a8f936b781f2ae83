package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("Invalid username or password")
	// ErrUsernameTaken indicates a registration conflict.
	ErrUsernameTaken = errors.New("Username is already registered")
)
