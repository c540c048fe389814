package userservice

const (
	// Error messages for user service operations
	ErrRetrievingUsers      = "error retrieving users"
	ErrFailedToRegisterUser = "failed to register user"
	ErrInvalidCredentials   = "invalid username or password"
)
