package services

import "errors"

var (
	ErrMissingFields      = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
