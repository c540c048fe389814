package interfaces

import "context"

type UserService interface {
	Exists(ctx context.Context, username string) (bool, error)
	Authenticate(ctx context.Context, username, password string) (bool, error)
	CheckUsername(ctx context.Context, username string) error
	Register(ctx context.Context, username, password string) error
}
