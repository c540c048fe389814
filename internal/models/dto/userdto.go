package dto

// RegisterUserRequest carries the collected inputs of a registration.
// Usernames must be purely alphabetic; no constraint is placed on the
// password's content or length.
type RegisterUserRequest struct {
	Username string `validate:"required,alpha"`
	Password string `validate:"required"`
}
