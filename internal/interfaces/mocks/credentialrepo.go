package mocks

import (
	"context"

	"github.com/Gio-ZA/task-manager-project/internal/models"
	"github.com/stretchr/testify/mock"
)

// CredentialRepository is a mock implementation of
// interfaces.CredentialRepository.
type CredentialRepository struct {
	mock.Mock
}

func (m *CredentialRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	var users []models.User
	if args.Get(0) != nil {
		users = args.Get(0).([]models.User)
	}
	return users, args.Error(1)
}

func (m *CredentialRepository) Append(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
