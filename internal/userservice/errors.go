package userservice

import "errors"

var (
	// ErrInvalidUsername reports a username containing non-letters.
	ErrInvalidUsername = errors.New("username must only contain letters")

	// ErrDuplicateUsername reports a username already registered,
	// compared case-insensitively.
	ErrDuplicateUsername = errors.New("username already exists")
)
