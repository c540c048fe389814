package models

import "errors"

// ErrInvalidDate is returned when a date value does not match DateLayout.
var ErrInvalidDate = errors.New("invalid date format")

const (
	// Error messages for record parsing
	ErrMalformedUserLine = "malformed credential line"
	ErrMalformedTaskLine = "malformed task line"
	ErrBadAssignedDate   = "bad assigned date"
	ErrBadDueDate        = "bad due date"
)
