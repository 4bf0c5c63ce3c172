package model

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist
	// or is not visible to the caller.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a unique constraint would be violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidCredentials is returned when a username/password pair does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized is returned when a token is missing, invalid, expired or revoked.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidInput is returned when user supplied data fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUpstream is returned when the movie metadata provider fails.
	ErrUpstream = errors.New("upstream failure")
	// ErrPasswordTooLong is returned when a password exceeds the hashing limit.
	ErrPasswordTooLong = errors.New("password too long")
)
