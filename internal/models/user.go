package models

import (
	"fmt"
	"strings"
)

// User represents one credential record from the user store.
// Passwords are kept as plain text because that is the store's
// existing on-disk contract.
type User struct {
	Username string
	Password string
}

// NewUser creates a new User instance with the given username and password.
// Note: No validation is performed here.
func NewUser(username string, password string) *User {
	return &User{
		Username: username,
		Password: password,
	}
}

// Line serializes the user as a single credential-store line.
func (u User) Line() string {
	return u.Username + FieldDelimiter + u.Password
}

// ParseUserLine parses one credential-store line into a User.
func ParseUserLine(line string) (User, error) {
	parts := strings.Split(strings.TrimSpace(line), FieldDelimiter)
	if len(parts) != userFieldCount {
		return User{}, fmt.Errorf("%s: %q", ErrMalformedUserLine, line)
	}
	return User{Username: parts[0], Password: parts[1]}, nil
}
