package userservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gio-ZA/task-manager-project/internal/interfaces"
	"github.com/Gio-ZA/task-manager-project/internal/models"
	"github.com/Gio-ZA/task-manager-project/pkg/helper"

	structValidator "github.com/go-playground/validator/v10"
)

// UserService exposes credential operations: existence checks,
// authentication and registration. Usernames are compared
// case-insensitively and stored lower-cased; passwords are compared
// exactly and stored as given.
type UserService struct {
	Credentials interfaces.CredentialRepository
	Logger      interfaces.Logger
	validator   *structValidator.Validate
}

// NewUserService creates a new UserService instance.
func NewUserService(credentials interfaces.CredentialRepository, logger interfaces.Logger,
	validator *structValidator.Validate,
) *UserService {
	return &UserService{
		Credentials: credentials,
		Logger:      logger,
		validator:   validator,
	}
}

// Exists reports whether a credential record matches the username
// case-insensitively.
func (s *UserService) Exists(ctx context.Context, username string) (bool, error) {
	users, err := s.Credentials.List(ctx)
	if err != nil {
		if errors.Is(err, interfaces.ErrStoreNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", ErrRetrievingUsers, err)
	}

	for _, user := range users {
		if strings.EqualFold(user.Username, username) {
			return true, nil
		}
	}
	return false, nil
}

// Authenticate returns true iff a record matches the username
// case-insensitively and the password exactly.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "user", username)

	users, err := s.Credentials.List(ctx)
	if err != nil {
		if !errors.Is(err, interfaces.ErrStoreNotFound) {
			s.Logger.Error(ErrRetrievingUsers, "func", funcName, "error", err)
		}
		return false, err
	}

	for _, user := range users {
		if strings.EqualFold(user.Username, username) && user.Password == password {
			s.Logger.Info("User authenticated successfully", "func", funcName, "user", user.Username)
			return true, nil
		}
	}

	s.Logger.Warn(ErrInvalidCredentials, "func", funcName, "user", username)
	return false, nil
}

// CheckUsername validates a candidate registration username: it must be
// purely alphabetic and not already registered (case-insensitive).
func (s *UserService) CheckUsername(ctx context.Context, username string) error {
	username = strings.ToLower(strings.TrimSpace(username))
	if err := s.validator.Var(username, "required,alpha"); err != nil {
		return ErrInvalidUsername
	}

	exists, err := s.Exists(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateUsername
	}
	return nil
}

// Register validates the username and appends the new credential record
// with the username lower-cased. The password is stored as given; no
// validation is performed on its content or length.
func (s *UserService) Register(ctx context.Context, username, password string) error {
	funcName := helper.GetFuncName()
	s.Logger.Info("Registering user", "func", funcName, "user", username)

	username = strings.ToLower(strings.TrimSpace(username))
	if err := s.CheckUsername(ctx, username); err != nil {
		s.Logger.Warn(ErrFailedToRegisterUser, "func", funcName, "user", username, "error", err)
		return err
	}

	user := models.User{
		Username: username,
		Password: password,
	}
	if err := s.Credentials.Append(ctx, user); err != nil {
		s.Logger.Error(ErrFailedToRegisterUser, "func", funcName, "user", username, "error", err)
		return fmt.Errorf("%s: %w", ErrFailedToRegisterUser, err)
	}

	s.Logger.Info("User registered successfully", "func", funcName, "user", username)
	return nil
}
