package services

import "errors"

// Error values returned by the service layer. Handlers map these to
// HTTP statuses; nothing below the handlers writes a response.
var (
	ErrNotFound           = errors.New("not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrCreationFailed     = errors.New("creation failed")
)
